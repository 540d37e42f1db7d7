package server

import (
	"context"
	"fmt"

	"github.com/whiskerlang/whiskerlsp/debug"
	"github.com/whiskerlang/whiskerlsp/file"
	"github.com/whiskerlang/whiskerlsp/logger"
	"github.com/whiskerlang/whiskerlsp/lsp"
)

// didModifyFiles applies one document modification to the store and then
// revalidates the document, publishing the full diagnostic set before
// returning. The modification is complete by the time the next message is
// read, which is the ordering guarantee queries rely on.
func (s *server) didModifyFiles(ctx context.Context, mod file.Modification) error {
	ctx, done := debug.Start(ctx, "textdocument.didModifyFiles")
	defer done()

	switch mod.Action {
	case file.Open:
		if file.KindForLang(mod.LanguageID) == file.UnknownKind {
			logger.Log(ctx, fmt.Sprintf("opened %s with unrecognized language %q, analyzing it as whisker",
				mod.URI, mod.LanguageID), lsp.MessageTypeWarning)
		}
		s.store.Open(mod.URI, string(mod.Text), mod.Version)
	case file.Change:
		if _, ok := s.store.Update(mod.URI, string(mod.Text), mod.Version); !ok {
			debug.Warning.Log(ctx, "change for unopened document", "uri", string(mod.URI))
			return nil
		}
	case file.Save:
		if mod.Text != nil {
			if _, ok := s.store.Update(mod.URI, string(mod.Text), -1); !ok {
				return nil
			}
		}
	case file.Close:
		s.store.Close(mod.URI)
		s.clearDiagnostics(ctx, mod.URI)
		return nil
	}

	s.publishDiagnostics(ctx, mod.URI)
	return nil
}
