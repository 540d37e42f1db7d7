// Package logger forwards server log lines to the client over
// window/logMessage.
package logger

import (
	"context"
	"sync"

	"github.com/whiskerlang/whiskerlsp/lsp"
	"github.com/whiskerlang/whiskerlsp/xcontext"
)

var (
	startLogSenderOnce sync.Once
	logQueue           = make(chan func(), 100) // big enough for a large transient burst
)

// Log sends msg to the client asynchronously so that a slow client can never
// stall the request loop.
func Log(ctx context.Context, msg string, mt lsp.MessageType) {
	client := lsp.GetClient(ctx)
	if client == nil {
		return
	}
	logMsg := &lsp.LogMessageParams{
		Message:     msg,
		MessageType: mt,
	}

	startLogSenderOnce.Do(func() {
		go func() {
			for fn := range logQueue {
				fn()
			}
		}()
	})

	ctx2 := xcontext.Detach(ctx)
	logQueue <- func() { client.LogMessage(ctx2, logMsg) }
}
