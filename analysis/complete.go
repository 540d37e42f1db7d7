package analysis

import (
	"regexp"
	"sort"

	"github.com/whiskerlang/whiskerlsp/document"
	"github.com/whiskerlang/whiskerlsp/lsp"
	"github.com/whiskerlang/whiskerlsp/syntax"
)

var (
	divertCtxRe = regexp.MustCompile(`->\s*[A-Za-z0-9_]*$`)
	linkCtxRe   = regexp.MustCompile(`\[\[(?:[^\]|]*\|)?\s*[A-Za-z0-9_]*$`)
	sigilCtxRe  = regexp.MustCompile(`\$[A-Za-z0-9_]*$`)
)

// Completion sniffs the text before the cursor and proposes candidates:
// declared passage names plus the terminal targets after a divert arrow or
// inside a link, declared variables after a `$` sigil. Anywhere else it
// proposes nothing.
func Completion(doc *document.Document, line, col int) []lsp.CompletionItem {
	before := doc.TextBefore(line, col)
	switch {
	case divertCtxRe.MatchString(before), linkCtxRe.MatchString(before):
		var items []lsp.CompletionItem
		for _, name := range declaredPassages(doc) {
			items = append(items, lsp.CompletionItem{
				Label: name,
				Kind: lsp.CompletionItemKindModule,
			})
		}
		for _, name := range terminalTargets() {
			items = append(items, lsp.CompletionItem{
				Label:  name,
				Kind:   lsp.CompletionItemKindKeyword,
				Detail: "terminal target",
			})
		}
		return items
	case sigilCtxRe.MatchString(before):
		var items []lsp.CompletionItem
		for _, name := range declaredVariables(doc) {
			items = append(items, lsp.CompletionItem{
				Label: name,
				Kind: lsp.CompletionItemKindVariable,
			})
		}
		return items
	}
	return nil
}

// declaredPassages returns every passage name declared by a header, in
// document order, without duplicates.
func declaredPassages(doc *document.Document) []string {
	seen := make(map[string]bool)
	var out []string
	for _, text := range doc.Lines() {
		if m, ok := syntax.PassageDecl(text[:syntax.CodeEnd(text)]); ok && !seen[m.Name] {
			seen[m.Name] = true
			out = append(out, m.Name)
		}
	}
	return out
}

// declaredVariables returns every VAR/TEMP declared name in document order,
// without duplicates.
func declaredVariables(doc *document.Document) []string {
	seen := make(map[string]bool)
	var out []string
	for _, text := range doc.Lines() {
		if m, ok := syntax.VarDecl(text[:syntax.CodeEnd(text)]); ok && !seen[m.Name] {
			seen[m.Name] = true
			out = append(out, m.Name)
		}
	}
	return out
}

func terminalTargets() []string {
	out := make([]string, 0, len(syntax.TerminalTargets))
	for name := range syntax.TerminalTargets {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
