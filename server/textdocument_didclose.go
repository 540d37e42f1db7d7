package server

import (
	"context"

	"github.com/whiskerlang/whiskerlsp/file"
	"github.com/whiskerlang/whiskerlsp/lsp"
)

func (s *server) DidClose(ctx context.Context, params *lsp.DidCloseTextDocumentParams) error {
	return s.didModifyFiles(ctx, file.Modification{
		URI:    params.TextDocument.URI,
		Action: file.Close,
	})
}
