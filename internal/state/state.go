// Package state keeps the address to account mapping of the ledger.
//
// A State is owned by a single writer and does no locking of its own; callers
// sharing one across goroutines must serialise access around the whole value
// (see memdb.StateStore).
package state

import (
	"maps"
	"slices"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"

	"github.com/hedisam/ledgercore/internal/types"
)

type State struct {
	accounts map[common.Address]*types.Account
}

func New() *State {
	return NewWithSize(0)
}

// NewWithSize returns an empty State with room for size accounts.
func NewWithSize(size int) *State {
	return &State{
		accounts: make(map[common.Address]*types.Account, max(0, size)),
	}
}

// GetAccount returns a copy of the account stored at addr. It never creates an account.
func (s *State) GetAccount(addr common.Address) (*types.Account, bool) {
	acc, ok := s.accounts[addr]
	if !ok {
		return nil, false
	}

	return acc.Copy(), true
}

// GetAccountMut returns the live account stored at addr without creating it.
// The returned pointer must not be retained past the next mutating call on the State.
func (s *State) GetAccountMut(addr common.Address) (*types.Account, bool) {
	acc, ok := s.accounts[addr]
	return acc, ok
}

// GetOrCreateAccount returns the live account stored at addr, inserting an empty
// account first if there is none. Same retention rule as GetAccountMut.
func (s *State) GetOrCreateAccount(addr common.Address) *types.Account {
	acc, ok := s.accounts[addr]
	if !ok {
		acc = types.NewEmptyAccount()
		s.accounts[addr] = acc
	}

	return acc
}

// SetBalance overwrites the balance of addr, creating the account if needed.
// A nil balance is zero, as in types.NewAccount.
func (s *State) SetBalance(addr common.Address, balance *uint256.Int) {
	acc := s.GetOrCreateAccount(addr)
	if balance == nil {
		acc.Balance.Clear()
		return
	}
	acc.Balance.Set(balance)
}

// IncrementNonce bumps the nonce of addr by one, creating the account if needed,
// and returns the resulting nonce. The nonce saturates at math.MaxUint64.
func (s *State) IncrementNonce(addr common.Address) uint64 {
	acc := s.GetOrCreateAccount(addr)
	acc.IncrementNonce()
	return acc.Nonce
}

// SetStorage writes one storage slot of addr, creating the account if needed.
func (s *State) SetStorage(addr common.Address, key, value *uint256.Int) {
	s.GetOrCreateAccount(addr).SetStorage(key, value)
}

// Len returns the number of accounts.
func (s *State) Len() int {
	return len(s.accounts)
}

// Addresses returns the known addresses in byte order.
func (s *State) Addresses() []common.Address {
	return slices.SortedFunc(maps.Keys(s.accounts), func(a, b common.Address) int {
		return a.Cmp(b)
	})
}
