package types

import (
	"github.com/ethereum/go-ethereum/common"
)

// Header carries the identifying metadata of a block.
// ParentHash and StateRoot are opaque values supplied by the caller; nothing
// computes or verifies them.
type Header struct {
	Number     uint64
	ParentHash common.Hash
	StateRoot  common.Hash
	Timestamp  uint64 // unix seconds
}

func NewHeader(number uint64, parentHash, stateRoot common.Hash, timestamp uint64) Header {
	return Header{
		Number:     number,
		ParentHash: parentHash,
		StateRoot:  stateRoot,
		Timestamp:  timestamp,
	}
}

// GenesisHeader returns the header of the genesis block, all fields zeroed.
func GenesisHeader() Header {
	return Header{}
}

// Block wraps a single Header. Both types are comparable, so == is structural equality.
type Block struct {
	Header Header
}

func NewBlock(header Header) Block {
	return Block{Header: header}
}

// NewBlockWithHeader builds the header from raw fields and wraps it.
func NewBlockWithHeader(number uint64, parentHash, stateRoot common.Hash, timestamp uint64) Block {
	return NewBlock(NewHeader(number, parentHash, stateRoot, timestamp))
}

// GenesisBlock returns the block wrapping GenesisHeader.
func GenesisBlock() Block {
	return NewBlock(GenesisHeader())
}
