package server

import (
	"context"
	"fmt"
	"os"

	"github.com/whiskerlang/whiskerlsp/lsp"
	"github.com/whiskerlang/whiskerlsp/rpc"
	"github.com/whiskerlang/whiskerlsp/semtok"
)

func (s *server) Initialize(ctx context.Context, params *lsp.InitializeRequestParams) (*lsp.InitializeResult, error) {
	if s.state >= serverInitializing {
		return nil, fmt.Errorf("%w: initialize called while server in %v state", rpc.ErrInvalidRequest, s.state)
	}
	s.state = serverInitializing
	s.rootURI = params.RootURI

	// The advertised capabilities match exactly what the handlers
	// implement: full-content sync only, semantic tokens without range
	// support, rename with a prepare phase.
	return &lsp.InitializeResult{
		Capabilities: lsp.ServerCapabilities{
			TextDocumentSync: lsp.TextDocumentSyncOptions{
				OpenClose: true,
				Change:    1,
				Save:      true,
			},
			HoverProvider: true,
			CompletionProvider: &lsp.CompletionOptions{
				TriggerCharacters: []string{">", "[", "$"},
			},
			DefinitionProvider:     true,
			ReferencesProvider:     true,
			DocumentSymbolProvider: true,
			FoldingRangeProvider:   true,
			CodeActionProvider: lsp.CodeActionProviderOptions{
				CodeActionKinds: []lsp.CodeActionKind{
					lsp.CodeActionKindQuickFix,
				},
			},
			SemanticTokensProvider: &lsp.SemanticTokensOptions{
				Legend: semtok.Legend(),
				Full:   true,
			},
			RenameProvider: lsp.RenameOptions{PrepareProvider: true},
		},
		ServerInfo: lsp.ServerInfo{
			Name:    "whiskerlsp",
			Version: "0.1.0",
		},
	}, nil
}

func (s *server) Initialized(ctx context.Context, params *lsp.InitializedParams) error {
	if s.state >= serverInitialized {
		return fmt.Errorf("%w: initialized called while server in %v state", rpc.ErrInvalidRequest, s.state)
	}
	s.state = serverInitialized
	return nil
}

func (s *server) Shutdown(ctx context.Context) error {
	if s.state < serverInitialized {
		return fmt.Errorf("%w: shutdown called while server in %v state", rpc.ErrInvalidRequest, s.state)
	}
	s.state = serverShutDown
	return nil
}

func (s *server) Exit(ctx context.Context) error {
	// The protocol asks servers to exit abnormally unless shutdown was
	// requested first.
	if s.state != serverShutDown {
		os.Exit(1)
	}
	os.Exit(0)
	return nil
}
