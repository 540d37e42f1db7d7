package server

import (
	"context"

	"github.com/whiskerlang/whiskerlsp/analysis"
	"github.com/whiskerlang/whiskerlsp/lsp"
)

func (s *server) Completion(ctx context.Context, params *lsp.CompletionParams) (result []lsp.CompletionItem, err error) {
	defer s.recoverFromPanic(ctx, "textDocument/completion")

	doc, ok := s.store.Get(params.TextDocument.URI)
	if !ok {
		return nil, nil
	}
	pos := params.Position
	return analysis.Completion(doc, int(pos.Line), int(pos.Character)), nil
}
