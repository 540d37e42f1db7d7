package server

import (
	"context"
	"fmt"
	"log"

	"github.com/whiskerlang/whiskerlsp/debug"
	"github.com/whiskerlang/whiskerlsp/document"
	"github.com/whiskerlang/whiskerlsp/lsp"
)

// New creates an LSP server bound to client. The connection delivers one
// message at a time, so the server holds no locks: a notification is fully
// applied before the next request is read.
func New(logger *log.Logger, client lsp.Client) lsp.Server {
	// If this assignment fails to compile after a protocol
	// upgrade, it means that one or more new methods need
	// handlers here.
	return &server{
		logger: logger,
		client: client,
		store:  document.NewStore(),
	}
}

type serverState int

const (
	serverCreated      = serverState(iota)
	serverInitializing // set once the server has received "initialize" request
	serverInitialized  // set once the server has received "initialized" request
	serverShutDown
)

func (s serverState) String() string {
	switch s {
	case serverCreated:
		return "created"
	case serverInitializing:
		return "initializing"
	case serverInitialized:
		return "initialized"
	case serverShutDown:
		return "shutDown"
	}
	return fmt.Sprintf("(unknown state: %d)", int(s))
}

type server struct {
	logger *log.Logger
	client lsp.Client

	state   serverState
	rootURI lsp.DocumentURI

	// store owns every open document and its derived caches. It is the
	// only mutable state shared between handlers.
	store *document.Store
}

func (s *server) Logger() *log.Logger {
	return s.logger
}

// recoverFromPanic is the provider fault boundary: a scanner panicking on
// malformed input degrades to an empty result instead of aborting the
// request, so one bad line never takes out a whole response.
func (s *server) recoverFromPanic(ctx context.Context, method string) {
	if r := recover(); r != nil {
		debug.LogError(ctx, "provider panic recovered",
			fmt.Errorf("%s: %v", method, r))
		s.logger.Printf("recovered from panic in %s: %v", method, r)
	}
}
