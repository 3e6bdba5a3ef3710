package memdb_test

import (
	"context"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hedisam/ledgercore/internal/store"
	"github.com/hedisam/ledgercore/internal/store/memdb"
	"github.com/hedisam/ledgercore/internal/types"
)

func TestChainStore(t *testing.T) {
	ctx := context.Background()
	s := memdb.NewChainStore(memdb.WithMemSize(4))

	length, err := s.Len(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, length)

	head, err := s.Head(ctx)
	require.NoError(t, err)
	assert.Equal(t, types.GenesisBlock(), *head)

	b1 := types.NewBlockWithHeader(1, common.HexToHash("0x01"), common.Hash{}, 1000)
	b2 := types.NewBlockWithHeader(2, common.HexToHash("0x02"), common.Hash{}, 2000)
	length, err = s.AppendBlock(ctx, &b1)
	require.NoError(t, err)
	assert.Equal(t, 2, length)
	length, err = s.AppendBlock(ctx, &b2)
	require.NoError(t, err)
	assert.Equal(t, 3, length)

	got, err := s.GetBlock(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), got.Header.Number)

	head, err = s.Head(ctx)
	require.NoError(t, err)
	assert.Equal(t, b2, *head)

	_, err = s.GetBlock(ctx, 3)
	require.ErrorIs(t, err, store.ErrNotFound)
	_, err = s.GetBlock(ctx, -1)
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestChainStoreReturnsCopies(t *testing.T) {
	ctx := context.Background()
	s := memdb.NewChainStore()

	genesis, err := s.GetBlock(ctx, 0)
	require.NoError(t, err)
	genesis.Header.Number = 10

	genesis, err = s.GetBlock(ctx, 0)
	require.NoError(t, err)
	assert.Zero(t, genesis.Header.Number)
}
