package memdb

import (
	"context"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hedisam/ledgercore/internal/types"
)

func TestChainLengthGaugeFollowsLatestStore(t *testing.T) {
	ctx := context.Background()

	s := NewChainStore()
	assert.Equal(t, float64(1), testutil.ToFloat64(chainLength))

	_, err := s.AppendBlock(ctx, &types.Block{})
	require.NoError(t, err)
	assert.Equal(t, float64(2), testutil.ToFloat64(chainLength))

	NewChainStore()
	assert.Equal(t, float64(1), testutil.ToFloat64(chainLength))
}

func TestAccountsGaugeFollowsLatestStore(t *testing.T) {
	ctx := context.Background()
	addr := common.HexToAddress("0x01")

	s := NewStateStore()
	assert.Zero(t, testutil.ToFloat64(accountsGauge))

	require.NoError(t, s.SetBalance(ctx, addr, uint256.NewInt(1)))
	require.NoError(t, s.SetBalance(ctx, addr, uint256.NewInt(2)))
	assert.Equal(t, float64(1), testutil.ToFloat64(accountsGauge))

	NewStateStore()
	assert.Zero(t, testutil.ToFloat64(accountsGauge))
}
