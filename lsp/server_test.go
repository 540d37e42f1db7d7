package lsp

import (
	"context"
	"log"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/whiskerlang/whiskerlsp/rpc"
)

// stubServer records which typed handler the dispatcher invoked.
type stubServer struct {
	called string
}

func (s *stubServer) Initialize(ctx context.Context, params *InitializeRequestParams) (*InitializeResult, error) {
	s.called = "initialize"
	return &InitializeResult{}, nil
}
func (s *stubServer) Initialized(context.Context, *InitializedParams) error {
	s.called = "initialized"
	return nil
}
func (s *stubServer) Shutdown(context.Context) error { s.called = "shutdown"; return nil }
func (s *stubServer) Exit(context.Context) error     { s.called = "exit"; return nil }
func (s *stubServer) DidOpen(context.Context, *DidOpenTextDocumentParams) error {
	s.called = "didOpen"
	return nil
}
func (s *stubServer) DidChange(context.Context, *DidChangeTextDocumentParams) error {
	s.called = "didChange"
	return nil
}
func (s *stubServer) DidClose(context.Context, *DidCloseTextDocumentParams) error {
	s.called = "didClose"
	return nil
}
func (s *stubServer) DidSave(context.Context, *DidSaveTextDocumentParams) error {
	s.called = "didSave"
	return nil
}
func (s *stubServer) Definition(context.Context, *DefinitionParams) ([]Location, error) {
	s.called = "definition"
	return nil, nil
}
func (s *stubServer) References(context.Context, *ReferenceParams) ([]Location, error) {
	s.called = "references"
	return nil, nil
}
func (s *stubServer) DocumentSymbol(context.Context, *DocumentSymbolParams) ([]DocumentSymbol, error) {
	s.called = "documentSymbol"
	return nil, nil
}
func (s *stubServer) FoldingRange(context.Context, *FoldingRangeParams) ([]FoldingRange, error) {
	s.called = "foldingRange"
	return nil, nil
}
func (s *stubServer) Hover(context.Context, *HoverParams) (*Hover, error) {
	s.called = "hover"
	return nil, nil
}
func (s *stubServer) Completion(context.Context, *CompletionParams) ([]CompletionItem, error) {
	s.called = "completion"
	return nil, nil
}
func (s *stubServer) CodeAction(context.Context, *CodeActionParams) ([]CodeAction, error) {
	s.called = "codeAction"
	return nil, nil
}
func (s *stubServer) SemanticTokensFull(context.Context, *SemanticTokensParams) (*SemanticTokens, error) {
	s.called = "semanticTokens"
	return nil, nil
}
func (s *stubServer) PrepareRename(context.Context, *PrepareRenameParams) (*PrepareRenameResult, error) {
	s.called = "prepareRename"
	return nil, nil
}
func (s *stubServer) Rename(context.Context, *RenameParams) (*WorkspaceEdit, error) {
	s.called = "rename"
	return nil, nil
}
func (s *stubServer) Logger() *log.Logger { return nil }

type reply struct {
	called bool
	err    error
}

func (r *reply) fn(ctx context.Context, result any, err error) error {
	r.called = true
	r.err = err
	return nil
}

func request(t *testing.T, method, params string) rpc.Request {
	t.Helper()
	msg, err := rpc.DecodeMessage([]byte(`{"jsonrpc":"2.0","id":1,"method":"` + method + `","params":` + params + `}`))
	require.NoError(t, err)
	req, ok := msg.(rpc.Request)
	require.True(t, ok)
	return req
}

func TestServerDispatchRoutesMethods(t *testing.T) {
	ctx := context.Background()
	for method, want := range map[string]string{
		"initialize":                       "initialize",
		"initialized":                      "initialized",
		"shutdown":                         "shutdown",
		"exit":                             "exit",
		"textDocument/didOpen":             "didOpen",
		"textDocument/didChange":           "didChange",
		"textDocument/didClose":            "didClose",
		"textDocument/didSave":             "didSave",
		"textDocument/definition":          "definition",
		"textDocument/references":          "references",
		"textDocument/documentSymbol":      "documentSymbol",
		"textDocument/foldingRange":        "foldingRange",
		"textDocument/hover":               "hover",
		"textDocument/completion":          "completion",
		"textDocument/codeAction":          "codeAction",
		"textDocument/semanticTokens/full": "semanticTokens",
		"textDocument/prepareRename":       "prepareRename",
		"textDocument/rename":              "rename",
	} {
		srv := &stubServer{}
		r := &reply{}
		handled, err := serverDispatch(ctx, srv, r.fn, request(t, method, "{}"))
		require.NoError(t, err, method)
		require.True(t, handled, method)
		require.True(t, r.called, method)
		require.NoError(t, r.err, method)
		require.Equal(t, want, srv.called, method)
	}
}

func TestServerDispatchIgnoresCancelAndTrace(t *testing.T) {
	ctx := context.Background()
	for _, method := range []string{"$/cancelRequest", "$/setTrace"} {
		srv := &stubServer{}
		r := &reply{}
		handled, err := serverDispatch(ctx, srv, r.fn, request(t, method, "{}"))
		require.NoError(t, err)
		require.True(t, handled)
		require.True(t, r.called)
		require.Empty(t, srv.called)
	}
}

func TestServerDispatchLeavesUnknownMethods(t *testing.T) {
	ctx := context.Background()
	srv := &stubServer{}
	r := &reply{}
	handled, err := serverDispatch(ctx, srv, r.fn, request(t, "workspace/symbol", "{}"))
	require.NoError(t, err)
	require.False(t, handled)
	require.False(t, r.called)

	// The fallback handler turns it into a method-not-found reply.
	handler := ServerHandler(srv, rpc.MethodNotFound)
	require.NoError(t, handler(ctx, r.fn, request(t, "workspace/symbol", "{}")))
	require.True(t, r.called)
	require.ErrorIs(t, r.err, rpc.ErrMethodNotFound)
}

func TestServerDispatchRejectsBadParams(t *testing.T) {
	ctx := context.Background()
	srv := &stubServer{}
	r := &reply{}
	handled, err := serverDispatch(ctx, srv, r.fn, request(t, "textDocument/didOpen", `"not an object"`))
	require.NoError(t, err)
	require.True(t, handled)
	require.True(t, r.called)
	require.ErrorIs(t, r.err, rpc.ErrParse)
}
