package types

import (
	"maps"
	"math"

	"github.com/holiman/uint256"
)

// Storage maps 256-bit storage keys to 256-bit values.
type Storage map[uint256.Int]uint256.Int

// Account holds the balance (in wei), nonce and key/value storage of a single address.
type Account struct {
	Balance uint256.Int
	Nonce   uint64
	Storage Storage
}

// NewAccount returns an account with the given balance and nonce and an empty storage.
func NewAccount(balance *uint256.Int, nonce uint64) *Account {
	acc := &Account{
		Nonce:   nonce,
		Storage: make(Storage),
	}
	if balance != nil {
		acc.Balance.Set(balance)
	}

	return acc
}

// NewEmptyAccount returns an account with zero balance, zero nonce and empty storage.
func NewEmptyAccount() *Account {
	return NewAccount(uint256.NewInt(0), 0)
}

// IncrementNonce bumps the nonce by one. The nonce saturates at math.MaxUint64,
// in which case it is left untouched and false is returned.
func (a *Account) IncrementNonce() bool {
	if a.Nonce == math.MaxUint64 {
		return false
	}
	a.Nonce++
	return true
}

// SetStorage inserts or overwrites the value stored under key.
func (a *Account) SetStorage(key, value *uint256.Int) {
	if a.Storage == nil {
		a.Storage = make(Storage)
	}
	a.Storage[*key] = *value
}

// GetStorage returns the value stored under key, if any.
func (a *Account) GetStorage(key *uint256.Int) (uint256.Int, bool) {
	v, ok := a.Storage[*key]
	return v, ok
}

// Copy returns a deep copy of the account; the storage map is not shared.
func (a *Account) Copy() *Account {
	cp := &Account{
		Balance: a.Balance,
		Nonce:   a.Nonce,
		Storage: make(Storage, len(a.Storage)),
	}
	maps.Copy(cp.Storage, a.Storage)

	return cp
}

// Equal reports whether both accounts have the same balance, nonce and storage.
// A nil and an empty storage are considered equal.
func (a *Account) Equal(other *Account) bool {
	if a == nil || other == nil {
		return a == other
	}

	return a.Balance.Eq(&other.Balance) &&
		a.Nonce == other.Nonce &&
		maps.Equal(a.Storage, other.Storage)
}
