package server

import (
	"context"

	"github.com/whiskerlang/whiskerlsp/analysis"
	"github.com/whiskerlang/whiskerlsp/lsp"
)

func (s *server) DocumentSymbol(ctx context.Context, params *lsp.DocumentSymbolParams) (result []lsp.DocumentSymbol, err error) {
	defer s.recoverFromPanic(ctx, "textDocument/documentSymbol")

	doc, ok := s.store.Get(params.TextDocument.URI)
	if !ok {
		return nil, nil
	}
	return analysis.DocumentSymbols(doc), nil
}

func (s *server) FoldingRange(ctx context.Context, params *lsp.FoldingRangeParams) (result []lsp.FoldingRange, err error) {
	defer s.recoverFromPanic(ctx, "textDocument/foldingRange")

	doc, ok := s.store.Get(params.TextDocument.URI)
	if !ok {
		return nil, nil
	}
	return analysis.FoldingRanges(doc), nil
}
