// Package diagnostics implements the validation rules for Whisker documents.
// Every rule is independent: it reads the line text plus a name index built
// once per validation pass, and no rule depends on another rule's output.
// Validation always recomputes the full set from scratch.
package diagnostics

import (
	"encoding/json"
	"fmt"

	"github.com/whiskerlang/whiskerlsp/document"
	"github.com/whiskerlang/whiskerlsp/lsp"
	"github.com/whiskerlang/whiskerlsp/syntax"
)

// Diagnostic codes, also keyed on by the code action provider.
const (
	CodeBrokenTarget     = "broken-target"
	CodeUnbalancedBrace  = "unbalanced-brace"
	CodeDuplicatePassage = "duplicate-passage"
	CodeUndefinedVar     = "undefined-var"
)

const source = "whisker"

// Fix carries the symbol name a quick fix needs, attached to a diagnostic's
// data field.
type Fix struct {
	Name string `json:"name"`
}

// index is the document-wide name index built once per validation pass.
type index struct {
	// passages maps a passage name to the zero-based line of its first
	// header declaration.
	passages map[string]int
	// variables maps a declared variable name to the position of its
	// declaration.
	variables map[string]lsp.Position
}

func buildIndex(doc *document.Document) index {
	ix := index{
		passages:  make(map[string]int),
		variables: make(map[string]lsp.Position),
	}
	for i, text := range doc.Lines() {
		code := text[:syntax.CodeEnd(text)]
		if m, ok := syntax.PassageDecl(code); ok {
			if _, seen := ix.passages[m.Name]; !seen {
				ix.passages[m.Name] = i
			}
		}
		if m, ok := syntax.VarDecl(code); ok {
			if _, seen := ix.variables[m.Name]; !seen {
				ix.variables[m.Name] = lsp.Position{Line: uint32(i), Character: uint32(m.Start)}
			}
		}
	}
	return ix
}

// Validate runs every rule over every line and returns the combined
// findings. Rules are best effort and additive; the order they run in does
// not affect the result beyond slice order, which follows rule then line.
func Validate(doc *document.Document) []lsp.Diagnostic {
	ix := buildIndex(doc)
	var out []lsp.Diagnostic
	out = append(out, checkTargets(doc, ix)...)
	out = append(out, checkBraces(doc)...)
	out = append(out, checkDuplicates(doc, ix)...)
	out = append(out, checkVariables(doc, ix)...)
	return out
}

// checkTargets flags every divert or link target that is neither a declared
// passage nor a reserved terminal target.
func checkTargets(doc *document.Document, ix index) []lsp.Diagnostic {
	var out []lsp.Diagnostic
	for i, text := range doc.Lines() {
		code := text[:syntax.CodeEnd(text)]
		targets := append(syntax.Diverts(code), syntax.Links(code)...)
		for _, m := range targets {
			if syntax.TerminalTargets[m.Name] {
				continue
			}
			if _, ok := ix.passages[m.Name]; ok {
				continue
			}
			out = append(out, lsp.Diagnostic{
				Range:    matchRange(i, m),
				Severity: lsp.SeverityError,
				Code:     CodeBrokenTarget,
				Source:   source,
				Message:  fmt.Sprintf("passage %q is not declared", m.Name),
				Data:     fixData(m.Name),
			})
		}
	}
	return out
}

// checkBraces runs a per-line bracket stack over the interpolation
// delimiters and flags every unmatched opener and orphan closer at its exact
// column.
func checkBraces(doc *document.Document) []lsp.Diagnostic {
	var out []lsp.Diagnostic
	for i, text := range doc.Lines() {
		code := text[:syntax.CodeEnd(text)]
		var open []int
		for col := 0; col < len(code); col++ {
			switch code[col] {
			case '{':
				open = append(open, col)
			case '}':
				if len(open) > 0 {
					open = open[:len(open)-1]
					continue
				}
				out = append(out, braceDiagnostic(i, col, "unmatched '}'"))
			}
		}
		for _, col := range open {
			out = append(out, braceDiagnostic(i, col, "unmatched '{'"))
		}
	}
	return out
}

func braceDiagnostic(line, col int, msg string) lsp.Diagnostic {
	return lsp.Diagnostic{
		Range: lsp.Range{
			Start: lsp.Position{Line: uint32(line), Character: uint32(col)},
			End:   lsp.Position{Line: uint32(line), Character: uint32(col + 1)},
		},
		Severity: lsp.SeverityError,
		Code:     CodeUnbalancedBrace,
		Source:   source,
		Message:  msg,
	}
}

// checkDuplicates flags the second and every subsequent header declaration
// of a passage name, citing the first declaration's line. The first
// declaration is never flagged.
func checkDuplicates(doc *document.Document, ix index) []lsp.Diagnostic {
	var out []lsp.Diagnostic
	for i, text := range doc.Lines() {
		code := text[:syntax.CodeEnd(text)]
		m, ok := syntax.PassageDecl(code)
		if !ok {
			continue
		}
		if firstLine := ix.passages[m.Name]; firstLine != i {
			out = append(out, lsp.Diagnostic{
				Range:    matchRange(i, m),
				Severity: lsp.SeverityError,
				Code:     CodeDuplicatePassage,
				Source:   source,
				Message:  fmt.Sprintf("passage %q is already declared on line %d", m.Name, firstLine+1),
			})
		}
	}
	return out
}

// checkVariables flags every `$name` interpolation with no declaration at an
// earlier position in the document. Runtime-bound variables are legal, so
// this is a warning, not an error.
func checkVariables(doc *document.Document, ix index) []lsp.Diagnostic {
	var out []lsp.Diagnostic
	for i, text := range doc.Lines() {
		code := text[:syntax.CodeEnd(text)]
		for _, m := range syntax.Sigils(code) {
			decl, ok := ix.variables[m.Name]
			if ok && before(decl, uint32(i), uint32(m.Start)) {
				continue
			}
			out = append(out, lsp.Diagnostic{
				Range:    matchRange(i, m),
				Severity: lsp.SeverityWarning,
				Code:     CodeUndefinedVar,
				Source:   source,
				Message:  fmt.Sprintf("variable %q may not be defined here", m.Name),
				Data:     fixData(m.Name),
			})
		}
	}
	return out
}

// before reports whether decl strictly precedes (line, col) in document
// order.
func before(decl lsp.Position, line, col uint32) bool {
	if decl.Line != line {
		return decl.Line < line
	}
	return decl.Character < col
}

func matchRange(line int, m syntax.Match) lsp.Range {
	return lsp.Range{
		Start: lsp.Position{Line: uint32(line), Character: uint32(m.Start)},
		End:   lsp.Position{Line: uint32(line), Character: uint32(m.End)},
	}
}

func fixData(name string) *json.RawMessage {
	raw, err := json.Marshal(Fix{Name: name})
	if err != nil {
		return nil
	}
	msg := json.RawMessage(raw)
	return &msg
}
