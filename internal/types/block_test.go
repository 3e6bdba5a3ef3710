package types_test

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"

	"github.com/hedisam/ledgercore/internal/types"
)

func TestGenesisHeader(t *testing.T) {
	h := types.GenesisHeader()
	assert.Zero(t, h.Number)
	assert.Equal(t, common.Hash{}, h.ParentHash)
	assert.Equal(t, common.Hash{}, h.StateRoot)
	assert.Zero(t, h.Timestamp)
}

func TestNewHeader(t *testing.T) {
	parent := common.BigToHash(common.Big1)
	root := common.HexToHash("0x02")

	h := types.NewHeader(42, parent, root, 1234567890)
	assert.Equal(t, uint64(42), h.Number)
	assert.Equal(t, parent, h.ParentHash)
	assert.Equal(t, root, h.StateRoot)
	assert.Equal(t, uint64(1234567890), h.Timestamp)
}

func TestGenesisBlock(t *testing.T) {
	b := types.GenesisBlock()
	assert.Equal(t, types.GenesisHeader(), b.Header)
	assert.Equal(t, types.Block{}, b)
}

func TestNewBlockWithHeader(t *testing.T) {
	parent := common.HexToHash("0x32")
	root := common.HexToHash("0x4b")

	b := types.NewBlockWithHeader(5, parent, root, 5000)
	assert.Equal(t, types.NewBlock(types.NewHeader(5, parent, root, 5000)), b)
	assert.Equal(t, uint64(5), b.Header.Number)
	assert.Equal(t, parent, b.Header.ParentHash)
	assert.Equal(t, root, b.Header.StateRoot)
	assert.Equal(t, uint64(5000), b.Header.Timestamp)
}

func TestBlockEquality(t *testing.T) {
	base := types.NewHeader(1, common.HexToHash("0x0a"), common.HexToHash("0x14"), 1000)

	tests := map[string]struct {
		other    types.Header
		expected bool
	}{
		"identical fields": {
			other:    types.NewHeader(1, common.HexToHash("0x0a"), common.HexToHash("0x14"), 1000),
			expected: true,
		},
		"different number": {
			other: types.NewHeader(2, common.HexToHash("0x0a"), common.HexToHash("0x14"), 1000),
		},
		"different parent hash": {
			other: types.NewHeader(1, common.HexToHash("0x0b"), common.HexToHash("0x14"), 1000),
		},
		"different state root": {
			other: types.NewHeader(1, common.HexToHash("0x0a"), common.HexToHash("0x15"), 1000),
		},
		"different timestamp": {
			other: types.NewHeader(1, common.HexToHash("0x0a"), common.HexToHash("0x14"), 1001),
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, test.expected, base == test.other)
			assert.Equal(t, test.expected, types.NewBlock(base) == types.NewBlock(test.other))
		})
	}
}
