package server

import (
	"context"
	"errors"
	"fmt"

	"github.com/whiskerlang/whiskerlsp/lsp"
	"github.com/whiskerlang/whiskerlsp/refactor"
	"github.com/whiskerlang/whiskerlsp/rpc"
)

// PrepareRename reports whether the cursor sits on a renamable symbol. A
// refusal is a soft miss: the result is empty, not an error.
func (s *server) PrepareRename(ctx context.Context, params *lsp.PrepareRenameParams) (result *lsp.PrepareRenameResult, err error) {
	defer s.recoverFromPanic(ctx, "textDocument/prepareRename")

	doc, ok := s.store.Get(params.TextDocument.URI)
	if !ok {
		return nil, nil
	}
	pos := params.Position
	prepared, ok := refactor.Prepare(doc, int(pos.Line), int(pos.Character))
	if !ok {
		return nil, nil
	}
	return prepared, nil
}

// Rename builds the atomic workspace edit for the rename, mapping malformed
// or reserved new names and unresolvable cursors to invalid-params errors.
func (s *server) Rename(ctx context.Context, params *lsp.RenameParams) (result *lsp.WorkspaceEdit, err error) {
	defer s.recoverFromPanic(ctx, "textDocument/rename")

	doc, ok := s.store.Get(params.TextDocument.URI)
	if !ok {
		return nil, fmt.Errorf("%w: document %s is not open", rpc.ErrInvalidParams, params.TextDocument.URI)
	}
	pos := params.Position
	edit, err := refactor.Rename(doc, int(pos.Line), int(pos.Character), params.NewName)
	if err != nil {
		if errors.Is(err, refactor.ErrInvalidName) || errors.Is(err, refactor.ErrNotRenamable) {
			return nil, fmt.Errorf("%w: %s", rpc.ErrInvalidParams, err)
		}
		return nil, err
	}
	return edit, nil
}
