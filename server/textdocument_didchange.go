package server

import (
	"context"

	"github.com/whiskerlang/whiskerlsp/debug"
	"github.com/whiskerlang/whiskerlsp/file"
	"github.com/whiskerlang/whiskerlsp/lsp"
)

func (s *server) DidChange(ctx context.Context, params *lsp.DidChangeTextDocumentParams) error {
	// Only full-content changes are applied. Sync is advertised as full,
	// so a conforming client never sends ranged changes; if one arrives
	// anyway it is logged and skipped rather than merged incorrectly.
	var text *string
	for _, change := range params.ContentChanges {
		if change.Range != nil {
			debug.Warning.Log(ctx, "ignoring ranged content change",
				"uri", string(params.TextDocument.URI))
			continue
		}
		text = &change.Text
	}
	if text == nil {
		return nil
	}
	return s.didModifyFiles(ctx, file.Modification{
		URI:     params.TextDocument.URI,
		Action:  file.Change,
		Version: params.TextDocument.Version,
		Text:    []byte(*text),
	})
}
