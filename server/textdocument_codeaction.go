package server

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/whiskerlang/whiskerlsp/diagnostics"
	"github.com/whiskerlang/whiskerlsp/document"
	"github.com/whiskerlang/whiskerlsp/lsp"
)

// CodeAction offers quick fixes keyed on the diagnostics the client sent
// back with the request: create a missing passage for a broken navigation
// target, declare a possibly-undefined variable.
func (s *server) CodeAction(ctx context.Context, params *lsp.CodeActionParams) (result []lsp.CodeAction, err error) {
	defer s.recoverFromPanic(ctx, "textDocument/codeAction")

	doc, ok := s.store.Get(params.TextDocument.URI)
	if !ok {
		return nil, nil
	}
	var actions []lsp.CodeAction
	for _, diag := range params.Context.Diagnostics {
		name, ok := fixName(diag)
		if !ok {
			continue
		}
		switch diag.Code {
		case diagnostics.CodeBrokenTarget:
			actions = append(actions, lsp.CodeAction{
				Title:       fmt.Sprintf("Create passage %q", name),
				Kind:        lsp.CodeActionKindQuickFix,
				Edit:        appendPassageEdit(doc, name),
				Diagnostics: []lsp.Diagnostic{diag},
			})
		case diagnostics.CodeUndefinedVar:
			actions = append(actions, lsp.CodeAction{
				Title:       fmt.Sprintf("Declare variable %q", name),
				Kind:        lsp.CodeActionKindQuickFix,
				Edit:        declareVariableEdit(doc, name),
				Diagnostics: []lsp.Diagnostic{diag},
			})
		}
	}
	return actions, nil
}

// fixName extracts the symbol name a quick fix applies to from the
// diagnostic's data payload.
func fixName(diag lsp.Diagnostic) (string, bool) {
	if diag.Data == nil {
		return "", false
	}
	var fix diagnostics.Fix
	if err := json.Unmarshal(*diag.Data, &fix); err != nil || fix.Name == "" {
		return "", false
	}
	return fix.Name, true
}

// appendPassageEdit appends an empty passage skeleton at the end of the
// document.
func appendPassageEdit(doc *document.Document, name string) *lsp.WorkspaceEdit {
	end := doc.OffsetToPosition(len(doc.Content()))
	return &lsp.WorkspaceEdit{
		Changes: map[lsp.DocumentURI][]lsp.TextEdit{
			doc.URI(): {{
				Range:   lsp.Range{Start: end, End: end},
				NewText: fmt.Sprintf("\n:: %s\n\n", name),
			}},
		},
	}
}

// declareVariableEdit inserts a VAR declaration at the top of the document.
func declareVariableEdit(doc *document.Document, name string) *lsp.WorkspaceEdit {
	top := lsp.Position{}
	return &lsp.WorkspaceEdit{
		Changes: map[lsp.DocumentURI][]lsp.TextEdit{
			doc.URI(): {{
				Range:   lsp.Range{Start: top, End: top},
				NewText: fmt.Sprintf("VAR %s = 0\n", name),
			}},
		},
	}
}
