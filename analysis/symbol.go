// Package analysis implements symbol resolution over a single Whisker
// document: classifying the token under a cursor and enumerating every
// textual encoding of a named symbol. It is shared by navigation, rename and
// hover so that all of them agree on what a reference is.
package analysis

import (
	"sort"

	"github.com/whiskerlang/whiskerlsp/document"
	"github.com/whiskerlang/whiskerlsp/lsp"
	"github.com/whiskerlang/whiskerlsp/syntax"
)

// Kind is the class of a named symbol.
type Kind int

const (
	KindPassage Kind = iota + 1
	KindVariable
	KindFunction
	KindHook
)

func (k Kind) String() string {
	switch k {
	case KindPassage:
		return "passage"
	case KindVariable:
		return "variable"
	case KindFunction:
		return "function"
	case KindHook:
		return "hook"
	default:
		return "unknown"
	}
}

// Role distinguishes a symbol's declaring occurrence from its uses.
type Role int

const (
	RoleDeclaration Role = iota + 1
	RoleUsage
)

// Occurrence is one textual location of a symbol within the document.
type Occurrence struct {
	Range lsp.Range
	Role  Role
}

// Classify inspects the current line around a word and returns the symbol
// kind the word denotes at that position. Checks are ordered, declaration
// forms before usage forms, and mutually exclusive: the first recognizer
// whose capture starts at the word's start column wins. Returns false when
// the word is not a symbol, in which case navigation must not proceed.
func Classify(doc *document.Document, line, start int, word string) (Kind, bool) {
	text, ok := doc.Line(line)
	if !ok {
		return 0, false
	}
	code := text[:syntax.CodeEnd(text)]
	if start >= len(code) {
		return 0, false
	}

	at := func(m syntax.Match, ok bool) bool {
		return ok && m.Start == start && m.Name == word
	}
	anyAt := func(ms []syntax.Match) bool {
		for _, m := range ms {
			if m.Start == start && m.Name == word {
				return true
			}
		}
		return false
	}

	switch {
	case at(syntax.PassageDecl(code)),
		anyAt(syntax.Diverts(code)),
		anyAt(syntax.Links(code)),
		anyAt(syntax.Visiteds(code)):
		return KindPassage, true
	case at(syntax.VarDecl(code)),
		anyAt(syntax.Sigils(code)),
		at(syntax.SetUse(code)):
		return KindVariable, true
	case at(syntax.FuncDecl(code)),
		anyAt(syntax.Calls(code)):
		return KindFunction, true
	case anyAt(syntax.HookDecls(code)),
		anyAt(syntax.HookRefs(code)):
		return KindHook, true
	}
	return 0, false
}

// ClassifyAt resolves the word under the cursor and classifies it in one
// step. Returns the word and its line range alongside the kind.
func ClassifyAt(doc *document.Document, line, col int) (Kind, string, lsp.Range, bool) {
	word, start, end, ok := doc.WordAt(line, col)
	if !ok {
		return 0, "", lsp.Range{}, false
	}
	kind, ok := Classify(doc, line, start, word)
	if !ok {
		return 0, "", lsp.Range{}, false
	}
	r := lsp.Range{
		Start: lsp.Position{Line: uint32(line), Character: uint32(start)},
		End:   lsp.Position{Line: uint32(line), Character: uint32(end)},
	}
	return kind, word, r, true
}

type hit struct {
	match syntax.Match
	role  Role
}

// FindAllReferences scans every line once and returns every occurrence of
// the (kind, name) symbol across all of that kind's syntactic encodings, in
// document order, left to right within a line, with overlapping hits
// de-duplicated in favor of declarations. The result is order-stable, so
// reference counts and rename edit sets are reproducible.
func FindAllReferences(doc *document.Document, kind Kind, name string) []Occurrence {
	var out []Occurrence
	for i, text := range doc.Lines() {
		code := text[:syntax.CodeEnd(text)]
		var hits []hit
		add := func(role Role, ms ...syntax.Match) {
			for _, m := range ms {
				if m.Name == name {
					hits = append(hits, hit{match: m, role: role})
				}
			}
		}
		switch kind {
		case KindPassage:
			if m, ok := syntax.PassageDecl(code); ok {
				add(RoleDeclaration, m)
			}
			add(RoleUsage, syntax.Diverts(code)...)
			add(RoleUsage, syntax.Links(code)...)
			add(RoleUsage, syntax.Visiteds(code)...)
		case KindVariable:
			if m, ok := syntax.VarDecl(code); ok {
				add(RoleDeclaration, m)
			}
			if m, ok := syntax.SetUse(code); ok {
				add(RoleUsage, m)
			}
			add(RoleUsage, syntax.Sigils(code)...)
		case KindFunction:
			if m, ok := syntax.FuncDecl(code); ok {
				add(RoleDeclaration, m)
			}
			add(RoleUsage, syntax.Calls(code)...)
		case KindHook:
			add(RoleDeclaration, syntax.HookDecls(code)...)
			add(RoleUsage, syntax.HookRefs(code)...)
		}

		sort.SliceStable(hits, func(a, b int) bool {
			if hits[a].match.Start != hits[b].match.Start {
				return hits[a].match.Start < hits[b].match.Start
			}
			return hits[a].role < hits[b].role
		})
		lastEnd := -1
		for _, h := range hits {
			if h.match.Start < lastEnd {
				continue
			}
			out = append(out, Occurrence{
				Range: lsp.Range{
					Start: lsp.Position{Line: uint32(i), Character: uint32(h.match.Start)},
					End:   lsp.Position{Line: uint32(i), Character: uint32(h.match.End)},
				},
				Role: h.role,
			})
			lastEnd = h.match.End
		}
	}
	return out
}

// FindDeclaration returns the range of the symbol's first declaring
// occurrence, or false when the document declares no such symbol.
func FindDeclaration(doc *document.Document, kind Kind, name string) (lsp.Range, bool) {
	for _, occ := range FindAllReferences(doc, kind, name) {
		if occ.Role == RoleDeclaration {
			return occ.Range, true
		}
	}
	return lsp.Range{}, false
}
