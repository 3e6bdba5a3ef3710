package types_test

import (
	"math"
	"testing"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hedisam/ledgercore/internal/types"
)

func TestNewAccount(t *testing.T) {
	tests := map[string]struct {
		balance *uint256.Int
		nonce   uint64
	}{
		"zero values": {
			balance: uint256.NewInt(0),
			nonce:   0,
		},
		"non zero values": {
			balance: uint256.NewInt(1000),
			nonce:   5,
		},
		"max values": {
			balance: new(uint256.Int).SetAllOne(),
			nonce:   math.MaxUint64,
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			acc := types.NewAccount(test.balance, test.nonce)
			assert.True(t, acc.Balance.Eq(test.balance))
			assert.Equal(t, test.nonce, acc.Nonce)
			require.NotNil(t, acc.Storage)
			assert.Empty(t, acc.Storage)
		})
	}
}

func TestNewAccountDoesNotAliasBalance(t *testing.T) {
	balance := uint256.NewInt(10)
	acc := types.NewAccount(balance, 0)

	balance.SetUint64(20)
	assert.Equal(t, uint64(10), acc.Balance.Uint64())
}

func TestNewEmptyAccount(t *testing.T) {
	acc := types.NewEmptyAccount()
	assert.True(t, acc.Balance.IsZero())
	assert.Zero(t, acc.Nonce)
	assert.Empty(t, acc.Storage)
	assert.Equal(t, types.NewAccount(uint256.NewInt(0), 0), acc)
}

func TestAccountMutation(t *testing.T) {
	acc := types.NewAccount(uint256.NewInt(100), 5)

	acc.Balance.SetUint64(500)
	assert.Equal(t, uint64(500), acc.Balance.Uint64())

	acc.Nonce = 10
	require.True(t, acc.IncrementNonce())
	assert.Equal(t, uint64(11), acc.Nonce)
}

func TestAccountIncrementNonceSaturates(t *testing.T) {
	acc := types.NewAccount(nil, math.MaxUint64-1)

	assert.True(t, acc.IncrementNonce())
	assert.Equal(t, uint64(math.MaxUint64), acc.Nonce)

	assert.False(t, acc.IncrementNonce())
	assert.Equal(t, uint64(math.MaxUint64), acc.Nonce)
}

func TestAccountStorage(t *testing.T) {
	acc := types.NewEmptyAccount()
	key := uint256.NewInt(1)

	_, ok := acc.GetStorage(key)
	assert.False(t, ok)

	acc.SetStorage(key, uint256.NewInt(100))
	assert.Len(t, acc.Storage, 1)
	v, ok := acc.GetStorage(key)
	require.True(t, ok)
	assert.Equal(t, uint64(100), v.Uint64())

	acc.SetStorage(key, uint256.NewInt(200))
	assert.Len(t, acc.Storage, 1)
	v, _ = acc.GetStorage(key)
	assert.Equal(t, uint64(200), v.Uint64())
}

func TestAccountSetStorageOnZeroValue(t *testing.T) {
	var acc types.Account
	acc.SetStorage(uint256.NewInt(7), uint256.NewInt(8))

	v, ok := acc.GetStorage(uint256.NewInt(7))
	require.True(t, ok)
	assert.Equal(t, uint64(8), v.Uint64())
}

func TestAccountCopy(t *testing.T) {
	acc := types.NewAccount(uint256.NewInt(42), 3)
	acc.SetStorage(uint256.NewInt(1), uint256.NewInt(2))

	cp := acc.Copy()
	require.True(t, cp.Equal(acc))

	cp.Balance.SetUint64(0)
	cp.Nonce = 0
	cp.SetStorage(uint256.NewInt(1), uint256.NewInt(99))
	cp.SetStorage(uint256.NewInt(5), uint256.NewInt(5))

	assert.Equal(t, uint64(42), acc.Balance.Uint64())
	assert.Equal(t, uint64(3), acc.Nonce)
	assert.Len(t, acc.Storage, 1)
	v, _ := acc.GetStorage(uint256.NewInt(1))
	assert.Equal(t, uint64(2), v.Uint64())
}

func TestAccountEqual(t *testing.T) {
	withSlot := func(acc *types.Account) *types.Account {
		acc.SetStorage(uint256.NewInt(1), uint256.NewInt(1))
		return acc
	}

	tests := map[string]struct {
		a, b     *types.Account
		expected bool
	}{
		"identical fields": {
			a:        types.NewAccount(uint256.NewInt(100), 1),
			b:        types.NewAccount(uint256.NewInt(100), 1),
			expected: true,
		},
		"different balance": {
			a: types.NewAccount(uint256.NewInt(100), 1),
			b: types.NewAccount(uint256.NewInt(101), 1),
		},
		"different nonce": {
			a: types.NewAccount(uint256.NewInt(100), 1),
			b: types.NewAccount(uint256.NewInt(100), 2),
		},
		"different storage": {
			a: withSlot(types.NewAccount(uint256.NewInt(100), 1)),
			b: types.NewAccount(uint256.NewInt(100), 1),
		},
		"identical storage": {
			a:        withSlot(types.NewAccount(uint256.NewInt(100), 1)),
			b:        withSlot(types.NewAccount(uint256.NewInt(100), 1)),
			expected: true,
		},
		"nil and empty storage": {
			a:        &types.Account{},
			b:        types.NewEmptyAccount(),
			expected: true,
		},
		"nil account": {
			a: types.NewEmptyAccount(),
			b: nil,
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, test.expected, test.a.Equal(test.b))
			if test.b != nil {
				assert.Equal(t, test.expected, test.b.Equal(test.a))
			}
		})
	}
}
