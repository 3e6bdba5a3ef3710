package eth

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"slices"
	"strconv"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/sirupsen/logrus"

	"github.com/hedisam/pipeline/chans"

	"github.com/hedisam/ledgercore/internal/ringbuffer"
)

const (
	getBlockByNumber rpcMethod = "eth_getBlockByNumber"

	// maxReorgDepth bounds how many emitted headers Stream remembers to link a reorg to.
	maxReorgDepth = 64
)

var (
	// ErrNotFound is returned when we request a block by number that hasn't been minted yet
	ErrNotFound = errors.New("block is not minted")
)

// Client follows the headers of an Ethereum node over JSON-RPC.
type Client struct {
	logger     *logrus.Logger
	httpClient *http.Client
	nodeAddr   string
}

func New(logger *logrus.Logger, httpClient *http.Client, nodeAddr string) *Client {
	return &Client{
		logger:     logger,
		httpClient: httpClient,
		nodeAddr:   nodeAddr,
	}
}

// Stream polls the node every pollTick and emits headers in height order,
// starting from the node's latest block. On each tick it catches up with the
// node before waiting for the next one.
// When a fetched header does not extend the last emitted one, the replaced
// heights are fetched again and emitted ahead of it, oldest first, so a
// downstream ReorgFilter only ever drops the headers that were replaced.
func (c *Client) Stream(ctx context.Context, pollTick time.Duration) <-chan *Header {
	out := make(chan *Header)

	go func() {
		defer close(out)

		t := time.NewTicker(pollTick)
		defer t.Stop()

		emitted := ringbuffer.New[*Header](maxReorgDepth)
		var next *uint64 // nil asks for the latest block
		for range chans.ReceiveOrDoneSeq(ctx, t.C) {
			for {
				header, err := c.HeaderByNumber(ctx, next)
				if err != nil {
					if !errors.Is(err, ErrNotFound) && ctx.Err() == nil {
						c.logger.WithError(err).Error("Failed to get block header")
						failedHeaderRetrievals.Inc()
					}
					break
				}

				headers, err := c.linkToEmitted(ctx, emitted, header)
				if err != nil {
					if ctx.Err() == nil {
						c.logger.WithError(err).Error("Failed to get replaced block headers")
						failedHeaderRetrievals.Inc()
					}
					break
				}

				for _, h := range headers {
					// drop what h replaces
					for back, ok := emitted.Back(); ok && back.Number >= h.Number; back, ok = emitted.Back() {
						emitted.PopBack()
					}
					if emitted.IsFull() {
						emitted.Pop()
					}
					emitted.Push(h)

					c.logger.WithFields(logrus.Fields{
						"number": uint64(h.Number),
						"hash":   h.Hash.Hex(),
					}).Debug("Received block header")
					if !chans.SendOrDone(ctx, out, h) {
						return
					}
					retrievedHeaders.Inc()
				}

				n := uint64(header.Number) + 1
				next = &n
			}
		}
	}()

	return out
}

// linkToEmitted returns header preceded by the canonical headers that replace
// already emitted ones, oldest first. It walks back one height at a time until
// the parent hash matches an emitted header, or the emitted window runs out.
func (c *Client) linkToEmitted(ctx context.Context, emitted *ringbuffer.RingBuffer[*Header], header *Header) ([]*Header, error) {
	headers := []*Header{header}
	for cursor := header; cursor.Number > 0; {
		parentNumber := uint64(cursor.Number) - 1
		parent, ok := emittedAt(emitted, parentNumber)
		if !ok || parent.Hash == cursor.ParentHash {
			break
		}

		c.logger.WithFields(logrus.Fields{
			"number": parentNumber,
			"hash":   parent.Hash.Hex(),
		}).Warn("Emitted block header was replaced, fetching the canonical one")

		replacement, err := c.HeaderByNumber(ctx, &parentNumber)
		if err != nil {
			return nil, fmt.Errorf("get header %d: %w", parentNumber, err)
		}
		headers = append(headers, replacement)
		cursor = replacement
	}

	slices.Reverse(headers)
	return headers, nil
}

func emittedAt(emitted *ringbuffer.RingBuffer[*Header], number uint64) (*Header, bool) {
	for i := emitted.Len() - 1; i >= 0; i-- {
		h, _ := emitted.At(i)
		switch {
		case uint64(h.Number) == number:
			return h, true
		case uint64(h.Number) < number:
			return nil, false
		}
	}

	return nil, false
}

// HeaderByNumber fetches the header at the given height, or the latest one when number is nil.
// It returns ErrNotFound if the node doesn't have the block yet.
func (c *Client) HeaderByNumber(ctx context.Context, number *uint64) (*Header, error) {
	requestedBlockNumber := "latest"
	if number != nil {
		requestedBlockNumber = hexutil.EncodeUint64(*number)
	}

	// last param is 'false' as we only need the header fields
	payload, err := newPayload(getBlockByNumber, requestedBlockNumber, false)
	if err != nil {
		return nil, fmt.Errorf("create rpc payload: %w", err)
	}

	resp, err := c.doRequestWithRetry(ctx, payload, string(getBlockByNumber))
	if err != nil {
		return nil, fmt.Errorf("do request with retry: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.logger.WithField("response", string(body)).Error("Failed to get block header from eth node with unexpected status code")
		return nil, fmt.Errorf("received unexpected status: %s", resp.Status)
	}

	var response rpcResponse
	err = json.NewDecoder(resp.Body).Decode(&response)
	if err != nil {
		return nil, fmt.Errorf("decode response body: %w", err)
	}
	if response.Error != nil {
		return nil, fmt.Errorf("rpc error %d: %s", response.Error.Code, response.Error.Message)
	}
	if response.Result == nil {
		return nil, ErrNotFound
	}

	return response.Result, nil
}

func newPayload(method rpcMethod, rpcParams ...any) ([]byte, error) {
	payload := map[string]any{
		"jsonrpc": "2.0",
		"method":  method,
		"params":  rpcParams,
		"id":      method.ID(),
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("could not marshal payload: %w", err)
	}

	return data, nil
}

func (c *Client) newRequest(ctx context.Context, payload []byte) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.nodeAddr, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("could not make new request with context: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Content-Length", strconv.Itoa(len(payload)))

	return req, nil
}

func (c *Client) doRequestWithRetry(ctx context.Context, payload []byte, method string) (*http.Response, error) {
	bk := backoff.WithContext(newExponentialBackoffConfig(), ctx)
	resp, err := backoff.RetryWithData[*http.Response](func() (*http.Response, error) {
		// a fresh request per attempt, the body reader is consumed by each send
		req, err := c.newRequest(ctx, payload)
		if err != nil {
			return nil, backoff.Permanent(err)
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
				return nil, backoff.Permanent(fmt.Errorf("could not make http call: %w", err))
			}
			c.logger.WithField("method", method).WithError(err).Error("Failed to make http request, retrying...")
			return nil, fmt.Errorf("http request failed: %w", err)
		}
		return resp, nil
	}, bk)
	if err != nil {
		return nil, err
	}

	return resp, nil
}

func newExponentialBackoffConfig() *backoff.ExponentialBackOff {
	return backoff.NewExponentialBackOff(
		backoff.WithMaxElapsedTime(time.Second*3),
		backoff.WithMaxInterval(time.Second),
		backoff.WithInitialInterval(time.Millisecond*100),
		backoff.WithMultiplier(2),
		backoff.WithRandomizationFactor(0.2),
	)
}
