package rest_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	restapi "github.com/hedisam/ledgercore/api/rest"
	"github.com/hedisam/ledgercore/internal/store/memdb"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	restapi.NewServer(logrus.New(), memdb.NewChainStore(), memdb.NewStateStore()).Register(mux)
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func do(t *testing.T, srv *httptest.Server, method, path, body string, out any) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, srv.URL+path, reader)
	require.NoError(t, err)

	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp
}

func TestHTTPChainEndpoints(t *testing.T) {
	srv := newTestServer(t)

	var chainResp restapi.GetChainResponse
	resp := do(t, srv, http.MethodGet, "/api/v1/chain", "", &chainResp)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 1, chainResp.Length)
	require.NotNil(t, chainResp.Head)
	assert.Zero(t, chainResp.Head.Number)

	_, err := uuid.Parse(resp.Header.Get(restapi.RequestIDHeader))
	assert.NoError(t, err)

	for _, body := range []string{
		`{"number":1,"parentHash":"0x01","timestamp":1000}`,
		`{"number":2,"parentHash":"0x02","timestamp":2000}`,
	} {
		var appendResp restapi.AppendBlockResponse
		resp = do(t, srv, http.MethodPost, "/api/v1/blocks", body, &appendResp)
		require.Equal(t, http.StatusOK, resp.StatusCode)
	}

	resp = do(t, srv, http.MethodGet, "/api/v1/chain", "", &chainResp)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 3, chainResp.Length)
	assert.Equal(t, uint64(2), chainResp.Head.Number)

	var blockResp restapi.GetBlockResponse
	resp = do(t, srv, http.MethodGet, "/api/v1/blocks/1", "", &blockResp)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 1, blockResp.Index)
	assert.Equal(t, uint64(1), blockResp.Block.Number)
	assert.Equal(t, uint64(1000), blockResp.Block.Timestamp)

	var errResp restapi.Err
	resp = do(t, srv, http.MethodGet, "/api/v1/blocks/3", "", &errResp)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Block not found at index 3", errResp.Message)

	resp = do(t, srv, http.MethodPost, "/api/v1/blocks", `{"number":`, &errResp)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Malformed request body", errResp.Message)
}

func TestHTTPAccountEndpoints(t *testing.T) {
	srv := newTestServer(t)
	path := "/api/v1/accounts/" + testAddr

	var errResp restapi.Err
	resp := do(t, srv, http.MethodGet, path, "", &errResp)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Account not found", errResp.Message)

	var okResp restapi.SetBalanceResponse
	resp = do(t, srv, http.MethodPut, path+"/balance", `{"balance":"100"}`, &okResp)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, okResp.Ok)

	var nonceResp restapi.IncrementNonceResponse
	resp = do(t, srv, http.MethodPost, path+"/nonce", "", &nonceResp)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, uint64(1), nonceResp.Nonce)

	var storageResp restapi.SetStorageResponse
	resp = do(t, srv, http.MethodPut, path+"/storage", `{"key":"0x1","value":"0x2a"}`, &storageResp)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, storageResp.Ok)

	// the address in the path wins over the one in the body
	resp = do(t, srv, http.MethodPut, path+"/balance", `{"address":"0x0000000000000000000000000000000000000001","balance":"100"}`, &okResp)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var accResp restapi.GetAccountResponse
	resp = do(t, srv, http.MethodGet, path, "", &accResp)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, &restapi.Account{
		Address: testAddrChecksum,
		Balance: "100",
		Nonce:   1,
		Storage: map[string]string{"0x1": "0x2a"},
	}, accResp.Account)

	resp = do(t, srv, http.MethodGet, "/api/v1/accounts/0x0000000000000000000000000000000000000001", "", &errResp)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
