// Package refactor implements the rename engine: it validates a proposed new
// name, collects every edit site through symbol resolution, and assembles one
// atomic multi-location edit. No partial edit set is ever returned.
package refactor

import (
	"errors"
	"fmt"

	"github.com/whiskerlang/whiskerlsp/analysis"
	"github.com/whiskerlang/whiskerlsp/document"
	"github.com/whiskerlang/whiskerlsp/lsp"
	"github.com/whiskerlang/whiskerlsp/syntax"
)

// ErrInvalidName rejects a malformed or reserved new name. The server maps
// it to a JSON-RPC invalid-params response.
var ErrInvalidName = errors.New("invalid rename target")

// ErrNotRenamable rejects a cursor that does not sit on a renamable symbol.
var ErrNotRenamable = errors.New("no renamable symbol at cursor")

// Prepare resolves and classifies the word under the cursor. It returns the
// word's range and text as the rename placeholder, or false when rename must
// be refused because the cursor is not on a symbol.
func Prepare(doc *document.Document, line, col int) (*lsp.PrepareRenameResult, bool) {
	_, word, r, ok := analysis.ClassifyAt(doc, line, col)
	if !ok {
		return nil, false
	}
	return &lsp.PrepareRenameResult{Range: r, Placeholder: word}, true
}

// Rename validates newName, re-resolves the symbol under the cursor, and
// returns one WorkspaceEdit replacing every occurrence with newName.
// Renaming a symbol to its current name succeeds and yields edits that are a
// no-op when applied.
func Rename(doc *document.Document, line, col int, newName string) (*lsp.WorkspaceEdit, error) {
	if err := checkName(newName); err != nil {
		return nil, err
	}
	kind, word, _, ok := analysis.ClassifyAt(doc, line, col)
	if !ok {
		return nil, ErrNotRenamable
	}
	occurrences := analysis.FindAllReferences(doc, kind, word)
	edits := make([]lsp.TextEdit, 0, len(occurrences))
	for _, occ := range occurrences {
		edits = append(edits, lsp.TextEdit{Range: occ.Range, NewText: newName})
	}
	return &lsp.WorkspaceEdit{
		Changes: map[lsp.DocumentURI][]lsp.TextEdit{doc.URI(): edits},
	}, nil
}

// checkName enforces the new-name rules: symbol name format, no reserved
// keyword, no reserved prefix. All checks are case sensitive.
func checkName(name string) error {
	if !syntax.ValidName(name) {
		return fmt.Errorf("%w: %q is not a valid name", ErrInvalidName, name)
	}
	if syntax.Keywords[name] {
		return fmt.Errorf("%w: %q is a reserved keyword", ErrInvalidName, name)
	}
	for _, p := range syntax.ReservedPrefixes {
		if len(name) >= len(p) && name[:len(p)] == p {
			return fmt.Errorf("%w: prefix %q is reserved", ErrInvalidName, p)
		}
	}
	return nil
}
