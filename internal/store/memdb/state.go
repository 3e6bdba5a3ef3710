package memdb

import (
	"context"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"

	"github.com/hedisam/ledgercore/internal/state"
	"github.com/hedisam/ledgercore/internal/store"
	"github.com/hedisam/ledgercore/internal/types"
)

// StateStore guards a state.State with a single lock so it can be shared between goroutines.
type StateStore struct {
	state *state.State
	mu    sync.RWMutex
}

func NewStateStore(opts ...Option) *StateStore {
	cfg := newConfig(opts)
	accountsGauge.Set(0)
	return &StateStore{
		state: state.NewWithSize(cfg.memSize),
	}
}

// GetAccount returns a copy of the account at addr or store.ErrNotFound.
func (s *StateStore) GetAccount(_ context.Context, addr common.Address) (*types.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	acc, ok := s.state.GetAccount(addr)
	if !ok {
		return nil, store.ErrNotFound
	}

	return acc, nil
}

// GetStorage returns one storage slot of addr. A missing account or slot is store.ErrNotFound.
func (s *StateStore) GetStorage(_ context.Context, addr common.Address, key *uint256.Int) (*uint256.Int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	acc, ok := s.state.GetAccountMut(addr)
	if !ok {
		return nil, store.ErrNotFound
	}
	v, ok := acc.GetStorage(key)
	if !ok {
		return nil, store.ErrNotFound
	}

	return &v, nil
}

// SetBalance overwrites the balance of addr, creating the account if needed.
func (s *StateStore) SetBalance(_ context.Context, addr common.Address, balance *uint256.Int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.trackCreation(addr)
	s.state.SetBalance(addr, balance)
	return nil
}

// IncrementNonce bumps the nonce of addr, creating the account if needed, and
// returns the new nonce.
func (s *StateStore) IncrementNonce(_ context.Context, addr common.Address) (uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.trackCreation(addr)
	nonce := s.state.IncrementNonce(addr)
	nonceIncrements.Inc()
	return nonce, nil
}

// SetStorage writes one storage slot of addr, creating the account if needed.
func (s *StateStore) SetStorage(_ context.Context, addr common.Address, key, value *uint256.Int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.trackCreation(addr)
	s.state.SetStorage(addr, key, value)
	return nil
}

// CountAccounts returns the number of accounts in the state.
func (s *StateStore) CountAccounts(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.state.Len(), nil
}

// trackCreation must be called with the write lock held, before the mutation.
func (s *StateStore) trackCreation(addr common.Address) {
	if _, ok := s.state.GetAccountMut(addr); !ok {
		createdAccounts.Inc()
		accountsGauge.Set(float64(s.state.Len() + 1))
	}
}
