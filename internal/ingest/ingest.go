// Package ingest appends confirmed headers coming from an eth node to the ledger chain.
package ingest

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/hedisam/ledgercore/internal/eth"
	"github.com/hedisam/ledgercore/internal/types"
	"github.com/hedisam/pipeline/chans"
)

type ChainStore interface {
	AppendBlock(ctx context.Context, block *types.Block) (int, error)
}

type Ingester struct {
	logger     *logrus.Logger
	chainStore ChainStore
}

func New(logger *logrus.Logger, chainStore ChainStore) *Ingester {
	return &Ingester{
		logger:     logger,
		chainStore: chainStore,
	}
}

// Start consumes headers until in is closed or ctx is done.
func (i *Ingester) Start(ctx context.Context, in <-chan *eth.Header) {
	for header := range chans.ReceiveOrDoneSeq(ctx, in) {
		err := i.ingest(ctx, header)
		if err != nil {
			i.logger.WithFields(logrus.Fields{
				"block_hash":   header.Hash.Hex(),
				"block_number": uint64(header.Number),
			}).WithError(err).Error("Failed to ingest block header")
			headersFailedIngesting.Inc()
		}
	}
}

func (i *Ingester) ingest(ctx context.Context, header *eth.Header) error {
	if header == nil {
		return nil
	}

	block := types.NewBlockWithHeader(
		uint64(header.Number),
		header.ParentHash,
		header.StateRoot,
		uint64(header.Timestamp),
	)
	length, err := i.chainStore.AppendBlock(ctx, &block)
	if err != nil {
		return fmt.Errorf("could not append block to chain: %w", err)
	}

	ingestedHeaders.Inc()
	i.logger.WithContext(ctx).WithFields(logrus.Fields{
		"block_number": block.Header.Number,
		"chain_length": length,
	}).Debug("Successfully appended block")

	return nil
}
