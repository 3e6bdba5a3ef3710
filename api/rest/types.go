package rest

// request and response types are defined below
// numbers wider than 64 bits travel as strings: balances in decimal, hashes and storage words in 0x hex

type GetChainRequest struct{}

type GetChainResponse struct {
	Length int    `json:"length"`
	Head   *Block `json:"head"`
}

type GetBlockRequest struct {
	Index string `json:"index"`
}

type GetBlockResponse struct {
	Index int    `json:"index"`
	Block *Block `json:"block"`
}

type AppendBlockRequest struct {
	Number     uint64 `json:"number"`
	ParentHash string `json:"parentHash"`
	StateRoot  string `json:"stateRoot"`
	Timestamp  uint64 `json:"timestamp"`
}

type AppendBlockResponse struct {
	Length int `json:"length"`
}

type Block struct {
	Number     uint64 `json:"number"`
	ParentHash string `json:"parentHash"`
	StateRoot  string `json:"stateRoot"`
	Timestamp  uint64 `json:"timestamp"`
}

type GetAccountRequest struct {
	Address string `json:"address"`
}

type GetAccountResponse struct {
	Account *Account `json:"account"`
}

type Account struct {
	Address string            `json:"address"`
	Balance string            `json:"balance"`
	Nonce   uint64            `json:"nonce"`
	Storage map[string]string `json:"storage"`
}

type SetBalanceRequest struct {
	Address string `json:"address"`
	Balance string `json:"balance"`
}

type SetBalanceResponse struct {
	Ok bool `json:"ok"`
}

type IncrementNonceRequest struct {
	Address string `json:"address"`
}

type IncrementNonceResponse struct {
	Nonce uint64 `json:"nonce"`
}

type SetStorageRequest struct {
	Address string `json:"address"`
	Key     string `json:"key"`
	Value   string `json:"value"`
}

type SetStorageResponse struct {
	Ok bool `json:"ok"`
}
