// Package chain holds the ordered, append-only sequence of blocks.
package chain

import (
	"slices"

	"github.com/hedisam/ledgercore/internal/types"
)

// Chain is an append-only list of blocks. A Chain built with New always holds
// the genesis block at index 0. Like state.State it is single-owner and unsynchronised.
//
// Appended blocks are not checked against the tip: neither the number nor the
// parent hash has to line up.
type Chain struct {
	blocks []types.Block
}

func New() *Chain {
	return NewWithCapacity(1)
}

// NewWithCapacity is New with room for capacity blocks before the first reallocation.
func NewWithCapacity(capacity int) *Chain {
	blocks := make([]types.Block, 0, max(1, capacity))
	return &Chain{
		blocks: append(blocks, types.GenesisBlock()),
	}
}

// AppendBlock adds block at the end of the chain.
func (c *Chain) AppendBlock(block types.Block) {
	c.blocks = append(c.blocks, block)
}

func (c *Chain) Len() int {
	return len(c.blocks)
}

// IsEmpty reports whether the chain has no blocks. Never true for a Chain built with New.
func (c *Chain) IsEmpty() bool {
	return len(c.blocks) == 0
}

// BlockAt returns the block at position index, 0 being genesis.
func (c *Chain) BlockAt(index int) (types.Block, bool) {
	if index < 0 || index >= len(c.blocks) {
		return types.Block{}, false
	}

	return c.blocks[index], true
}

// Head returns the last appended block.
func (c *Chain) Head() (types.Block, bool) {
	return c.BlockAt(len(c.blocks) - 1)
}

// Blocks returns a copy of the whole sequence.
func (c *Chain) Blocks() []types.Block {
	return slices.Clone(c.blocks)
}
