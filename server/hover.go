package server

import (
	"context"
	"fmt"
	"strings"

	"github.com/whiskerlang/whiskerlsp/analysis"
	"github.com/whiskerlang/whiskerlsp/lsp"
)

// Hover summarizes the symbol under the cursor: its kind, where it is
// declared, and how often it is referenced.
func (s *server) Hover(ctx context.Context, params *lsp.HoverParams) (result *lsp.Hover, err error) {
	defer s.recoverFromPanic(ctx, "textDocument/hover")

	doc, ok := s.store.Get(params.TextDocument.URI)
	if !ok {
		return nil, nil
	}
	pos := params.Position
	kind, name, wordRange, ok := analysis.ClassifyAt(doc, int(pos.Line), int(pos.Character))
	if !ok {
		return nil, nil
	}

	occurrences := analysis.FindAllReferences(doc, kind, name)
	var b strings.Builder
	fmt.Fprintf(&b, "**%s** `%s`\n\n", kind, name)
	if decl, ok := analysis.FindDeclaration(doc, kind, name); ok {
		fmt.Fprintf(&b, "Declared on line %d.\n", decl.Start.Line+1)
	} else {
		b.WriteString("No declaration in this document.\n")
	}
	usages := 0
	for _, occ := range occurrences {
		if occ.Role == analysis.RoleUsage {
			usages++
		}
	}
	fmt.Fprintf(&b, "\n%d reference(s).", usages)

	return &lsp.Hover{
		Contents: lsp.MarkupContent{Kind: lsp.Markdown, Value: b.String()},
		Range:    &wordRange,
	}, nil
}
