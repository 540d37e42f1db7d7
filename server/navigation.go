package server

import (
	"context"

	"github.com/whiskerlang/whiskerlsp/analysis"
	"github.com/whiskerlang/whiskerlsp/lsp"
)

// Definition resolves the symbol under the cursor and returns its first
// declaring occurrence. A cursor that is not on a symbol, or a symbol with
// no declaration in the document, yields an empty result rather than an
// error.
func (s *server) Definition(ctx context.Context, params *lsp.DefinitionParams) (result []lsp.Location, err error) {
	defer s.recoverFromPanic(ctx, "textDocument/definition")

	doc, ok := s.store.Get(params.TextDocument.URI)
	if !ok {
		return nil, nil
	}
	pos := params.Position
	kind, name, _, ok := analysis.ClassifyAt(doc, int(pos.Line), int(pos.Character))
	if !ok {
		return nil, nil
	}
	r, ok := analysis.FindDeclaration(doc, kind, name)
	if !ok {
		return nil, nil
	}
	return []lsp.Location{{URI: doc.URI(), Range: r}}, nil
}

// References resolves the symbol under the cursor and returns every
// occurrence across all of its syntactic encodings, optionally excluding the
// declaration.
func (s *server) References(ctx context.Context, params *lsp.ReferenceParams) (result []lsp.Location, err error) {
	defer s.recoverFromPanic(ctx, "textDocument/references")

	doc, ok := s.store.Get(params.TextDocument.URI)
	if !ok {
		return nil, nil
	}
	pos := params.Position
	kind, name, _, ok := analysis.ClassifyAt(doc, int(pos.Line), int(pos.Character))
	if !ok {
		return nil, nil
	}
	var locations []lsp.Location
	for _, occ := range analysis.FindAllReferences(doc, kind, name) {
		if occ.Role == analysis.RoleDeclaration && !params.Context.IncludeDeclaration {
			continue
		}
		locations = append(locations, lsp.Location{URI: doc.URI(), Range: occ.Range})
	}
	return locations, nil
}
