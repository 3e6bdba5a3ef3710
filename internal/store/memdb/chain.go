package memdb

import (
	"context"
	"sync"

	"github.com/hedisam/ledgercore/internal/chain"
	"github.com/hedisam/ledgercore/internal/store"
	"github.com/hedisam/ledgercore/internal/types"
)

// ChainStore guards a chain.Chain, seeded with the genesis block, with a single lock.
type ChainStore struct {
	chain *chain.Chain
	mu    sync.RWMutex
}

func NewChainStore(opts ...Option) *ChainStore {
	cfg := newConfig(opts)
	chainLength.Set(1)
	return &ChainStore{
		chain: chain.NewWithCapacity(cfg.memSize),
	}
}

// AppendBlock appends block unconditionally and returns the new chain length.
func (s *ChainStore) AppendBlock(_ context.Context, block *types.Block) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.chain.AppendBlock(*block)
	appendedBlocks.Inc()
	chainLength.Set(float64(s.chain.Len()))
	return s.chain.Len(), nil
}

// Len returns the number of blocks, genesis included.
func (s *ChainStore) Len(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.chain.Len(), nil
}

// GetBlock returns the block at position index (0 is genesis) or store.ErrNotFound.
func (s *ChainStore) GetBlock(_ context.Context, index int) (*types.Block, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	block, ok := s.chain.BlockAt(index)
	if !ok {
		return nil, store.ErrNotFound
	}

	return &block, nil
}

// Head returns the last block of the chain.
func (s *ChainStore) Head(_ context.Context) (*types.Block, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	block, ok := s.chain.Head()
	if !ok {
		return nil, store.ErrNotFound
	}

	return &block, nil
}
