package server

import (
	"context"

	"github.com/whiskerlang/whiskerlsp/document"
	"github.com/whiskerlang/whiskerlsp/lsp"
	"github.com/whiskerlang/whiskerlsp/semtok"
)

const semanticTokensKey = "semanticTokens"

func (s *server) SemanticTokensFull(ctx context.Context, params *lsp.SemanticTokensParams) (result *lsp.SemanticTokens, err error) {
	defer s.recoverFromPanic(ctx, "textDocument/semanticTokens/full")

	doc, ok := s.store.Get(params.TextDocument.URI)
	if !ok {
		return &lsp.SemanticTokens{Data: []uint32{}}, nil
	}
	return s.tokens(doc), nil
}

func (s *server) tokens(doc *document.Document) *lsp.SemanticTokens {
	result := doc.Derive(semanticTokensKey, func() any {
		return semtok.Full(doc)
	})
	tokens, ok := result.(*lsp.SemanticTokens)
	if !ok || tokens == nil {
		return &lsp.SemanticTokens{Data: []uint32{}}
	}
	return tokens
}
