package rest

import (
	"context"
	"encoding/hex"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
	"github.com/sirupsen/logrus"

	"github.com/hedisam/ledgercore/internal/store"
	"github.com/hedisam/ledgercore/internal/types"
)

const (
	// InvalidAddrMessage is returned when users make a request with an invalid addr.
	InvalidAddrMessage = "Invalid address. Expected a 40-character hex string, with or without '0x' prefix. Example: 0x12ab34cd56ef7890a1234567890abcdef1234567"
	// InvalidWordMessage is returned for a malformed balance or storage word.
	InvalidWordMessage = "Invalid 256-bit unsigned integer. Expected a decimal string or a '0x' prefixed hex string"
	// InvalidHashMessage is returned for a malformed parent hash or state root.
	InvalidHashMessage = "Invalid hash. Expected up to 64 hex characters, with or without '0x' prefix"
)

type ChainStore interface {
	AppendBlock(ctx context.Context, block *types.Block) (int, error)
	Len(ctx context.Context) (int, error)
	GetBlock(ctx context.Context, index int) (*types.Block, error)
	Head(ctx context.Context) (*types.Block, error)
}

type StateStore interface {
	GetAccount(ctx context.Context, addr common.Address) (*types.Account, error)
	SetBalance(ctx context.Context, addr common.Address, balance *uint256.Int) error
	IncrementNonce(ctx context.Context, addr common.Address) (uint64, error)
	SetStorage(ctx context.Context, addr common.Address, key, value *uint256.Int) error
}

type Server struct {
	logger     *logrus.Logger
	chainStore ChainStore
	stateStore StateStore
}

func NewServer(logger *logrus.Logger, chainStore ChainStore, stateStore StateStore) *Server {
	return &Server{
		logger:     logger,
		chainStore: chainStore,
		stateStore: stateStore,
	}
}

// Register wires all the endpoints of the server on mux.
func (s *Server) Register(mux *http.ServeMux) {
	RegisterFunc(s.logger, mux, http.MethodGet, "/api/v1/chain", s.GetChain)
	RegisterFunc(s.logger, mux, http.MethodGet, "/api/v1/blocks/{index}", s.GetBlock)
	RegisterFunc(s.logger, mux, http.MethodPost, "/api/v1/blocks", s.AppendBlock)
	RegisterFunc(s.logger, mux, http.MethodGet, "/api/v1/accounts/{address}", s.GetAccount)
	RegisterFunc(s.logger, mux, http.MethodPut, "/api/v1/accounts/{address}/balance", s.SetBalance)
	RegisterFunc(s.logger, mux, http.MethodPost, "/api/v1/accounts/{address}/nonce", s.IncrementNonce)
	RegisterFunc(s.logger, mux, http.MethodPut, "/api/v1/accounts/{address}/storage", s.SetStorage)
}

func (s *Server) GetChain(ctx context.Context, _ *GetChainRequest) (*GetChainResponse, error) {
	logger := s.logger.WithContext(ctx)

	length, err := s.chainStore.Len(ctx)
	if err != nil {
		logger.WithError(err).Error("Failed to get chain length from store")
		return nil, NewErrf(http.StatusInternalServerError, "Could not get chain length")
	}

	head, err := s.chainStore.Head(ctx)
	if err != nil {
		logger.WithError(err).Error("Failed to get chain head from store")
		return nil, NewErrf(http.StatusInternalServerError, "Could not get chain head")
	}

	return &GetChainResponse{
		Length: length,
		Head:   convertBlock(head),
	}, nil
}

func (s *Server) GetBlock(ctx context.Context, req *GetBlockRequest) (*GetBlockResponse, error) {
	logger := s.logger.WithContext(ctx).WithField("index", req.Index)

	index, err := strconv.Atoi(strings.TrimSpace(req.Index))
	if err != nil || index < 0 {
		logger.Warn("Invalid block index")
		return nil, NewErrf(http.StatusBadRequest, "Invalid block index, expected a non negative integer")
	}

	block, err := s.chainStore.GetBlock(ctx, index)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, NewErrf(http.StatusNotFound, "Block not found at index %d", index)
		}
		logger.WithError(err).Error("Failed to get block from store")
		return nil, NewErrf(http.StatusInternalServerError, "Could not get block from store")
	}

	return &GetBlockResponse{
		Index: index,
		Block: convertBlock(block),
	}, nil
}

func (s *Server) AppendBlock(ctx context.Context, req *AppendBlockRequest) (*AppendBlockResponse, error) {
	logger := s.logger.WithContext(ctx).WithField("number", req.Number)

	parentHash, valid := parseHash(req.ParentHash)
	if !valid {
		logger.Warn("Invalid parent hash provided to append block")
		return nil, NewErrf(http.StatusBadRequest, InvalidHashMessage)
	}
	stateRoot, valid := parseHash(req.StateRoot)
	if !valid {
		logger.Warn("Invalid state root provided to append block")
		return nil, NewErrf(http.StatusBadRequest, InvalidHashMessage)
	}

	block := types.NewBlockWithHeader(req.Number, parentHash, stateRoot, req.Timestamp)
	length, err := s.chainStore.AppendBlock(ctx, &block)
	if err != nil {
		logger.WithError(err).Error("Failed to append block to store")
		return nil, NewErrf(http.StatusInternalServerError, "Could not append block")
	}

	return &AppendBlockResponse{
		Length: length,
	}, nil
}

func (s *Server) GetAccount(ctx context.Context, req *GetAccountRequest) (*GetAccountResponse, error) {
	logger := s.logger.WithContext(ctx).WithField("addr", req.Address)

	addr, err := parseAddress(req.Address)
	if err != nil {
		logger.Warn("Invalid address provided to get account")
		return nil, err
	}

	acc, err := s.stateStore.GetAccount(ctx, addr)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, NewErrf(http.StatusNotFound, "Account not found")
		}
		logger.WithError(err).Error("Failed to get account from store")
		return nil, NewErrf(http.StatusInternalServerError, "Could not get account from store")
	}

	return &GetAccountResponse{
		Account: convertAccount(addr, acc),
	}, nil
}

func (s *Server) SetBalance(ctx context.Context, req *SetBalanceRequest) (*SetBalanceResponse, error) {
	logger := s.logger.WithContext(ctx).WithField("addr", req.Address)

	addr, err := parseAddress(req.Address)
	if err != nil {
		logger.Warn("Invalid address provided to set balance")
		return nil, err
	}

	if strings.TrimSpace(req.Balance) == "" {
		return nil, NewErrf(http.StatusBadRequest, "Missing required field: 'balance'")
	}
	balance, valid := parseWord(req.Balance)
	if !valid {
		logger.WithField("balance", req.Balance).Warn("Invalid balance provided")
		return nil, NewErrf(http.StatusBadRequest, InvalidWordMessage)
	}

	err = s.stateStore.SetBalance(ctx, addr, balance)
	if err != nil {
		logger.WithError(err).Error("Failed to set account balance in store")
		return nil, NewErrf(http.StatusInternalServerError, "Could not set account balance")
	}

	return &SetBalanceResponse{
		Ok: true,
	}, nil
}

func (s *Server) IncrementNonce(ctx context.Context, req *IncrementNonceRequest) (*IncrementNonceResponse, error) {
	logger := s.logger.WithContext(ctx).WithField("addr", req.Address)

	addr, err := parseAddress(req.Address)
	if err != nil {
		logger.Warn("Invalid address provided to increment nonce")
		return nil, err
	}

	nonce, err := s.stateStore.IncrementNonce(ctx, addr)
	if err != nil {
		logger.WithError(err).Error("Failed to increment account nonce in store")
		return nil, NewErrf(http.StatusInternalServerError, "Could not increment account nonce")
	}

	return &IncrementNonceResponse{
		Nonce: nonce,
	}, nil
}

func (s *Server) SetStorage(ctx context.Context, req *SetStorageRequest) (*SetStorageResponse, error) {
	logger := s.logger.WithContext(ctx).WithField("addr", req.Address)

	addr, err := parseAddress(req.Address)
	if err != nil {
		logger.Warn("Invalid address provided to set storage")
		return nil, err
	}

	if strings.TrimSpace(req.Key) == "" || strings.TrimSpace(req.Value) == "" {
		return nil, NewErrf(http.StatusBadRequest, "Missing required fields: 'key' and 'value'")
	}
	key, validKey := parseWord(req.Key)
	value, validValue := parseWord(req.Value)
	if !validKey || !validValue {
		logger.Warn("Invalid storage key or value provided")
		return nil, NewErrf(http.StatusBadRequest, InvalidWordMessage)
	}

	err = s.stateStore.SetStorage(ctx, addr, key, value)
	if err != nil {
		logger.WithError(err).Error("Failed to set account storage in store")
		return nil, NewErrf(http.StatusInternalServerError, "Could not set account storage")
	}

	return &SetStorageResponse{
		Ok: true,
	}, nil
}

func parseAddress(addr string) (common.Address, error) {
	addr = strings.TrimSpace(addr)
	if addr == "" {
		return common.Address{}, NewErrf(http.StatusBadRequest, "Missing required field: 'address'")
	}
	if !common.IsHexAddress(addr) {
		return common.Address{}, NewErrf(http.StatusBadRequest, InvalidAddrMessage)
	}

	return common.HexToAddress(addr), nil
}

// parseHash accepts up to 32 bytes of hex, left padded. An empty string is the zero hash.
func parseHash(s string) (common.Hash, bool) {
	s = strings.TrimPrefix(strings.ToLower(strings.TrimSpace(s)), "0x")
	if s == "" {
		return common.Hash{}, true
	}
	if len(s) > 2*common.HashLength {
		return common.Hash{}, false
	}
	if len(s)%2 == 1 {
		s = "0" + s
	}

	b, err := hex.DecodeString(s)
	if err != nil {
		return common.Hash{}, false
	}

	return common.BytesToHash(b), true
}

// parseWord accepts a decimal or a 0x prefixed hex string.
func parseWord(s string) (*uint256.Int, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if digits, ok := strings.CutPrefix(s, "0x"); ok {
		if digits == "" {
			return nil, false
		}
		// uint256 rejects leading zeros in hex
		digits = strings.TrimLeft(digits, "0")
		if digits == "" {
			digits = "0"
		}
		v, err := uint256.FromHex("0x" + digits)
		return v, err == nil
	}

	v, err := uint256.FromDecimal(s)
	return v, err == nil
}

func convertBlock(block *types.Block) *Block {
	if block == nil {
		return nil
	}

	return &Block{
		Number:     block.Header.Number,
		ParentHash: block.Header.ParentHash.Hex(),
		StateRoot:  block.Header.StateRoot.Hex(),
		Timestamp:  block.Header.Timestamp,
	}
}

func convertAccount(addr common.Address, acc *types.Account) *Account {
	storage := make(map[string]string, len(acc.Storage))
	for k, v := range acc.Storage {
		storage[k.Hex()] = v.Hex()
	}

	return &Account{
		Address: addr.Hex(),
		Balance: acc.Balance.Dec(),
		Nonce:   acc.Nonce,
		Storage: storage,
	}
}
