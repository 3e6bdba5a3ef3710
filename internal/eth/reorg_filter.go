package eth

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/hedisam/ledgercore/internal/ringbuffer"
	"github.com/hedisam/pipeline/chans"
)

// ReorgFilter holds the last confirmationDepth headers back and only emits a
// header once that many descendants have been linked on top of it. A header
// whose parent is not the newest held header evicts held headers from the newest
// end until it links, or the window is empty.
func ReorgFilter(ctx context.Context, logger *logrus.Logger, in <-chan *Header, confirmationDepth uint) <-chan *Header {
	out := make(chan *Header)

	go func() {
		defer close(out)

		window := ringbuffer.New[*Header](confirmationDepth)
		for header := range chans.ReceiveOrDoneSeq(ctx, in) {
			logger := logger.WithFields(logrus.Fields{
				"number":      uint64(header.Number),
				"hash":        header.Hash.Hex(),
				"parent_hash": header.ParentHash.Hex(),
			})

			for window.Len() > 0 {
				tail, _ := window.Back()
				if header.ParentHash == tail.Hash {
					break
				}
				dropped, _ := window.PopBack()
				logger.WithFields(logrus.Fields{
					"dropped_number": uint64(dropped.Number),
					"dropped_hash":   dropped.Hash.Hex(),
				}).Warn("Block reorganisation detected, dropping newest unconfirmed header")
				reorgDroppedHeaders.Inc()
			}

			if window.IsFull() {
				confirmed, _ := window.Pop()
				if !chans.SendOrDone(ctx, out, confirmed) {
					return
				}
			}

			_ = window.Push(header)
		}
	}()

	return out
}
