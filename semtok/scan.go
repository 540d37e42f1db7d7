package semtok

import (
	"regexp"
	"sort"

	"github.com/whiskerlang/whiskerlsp/document"
	"github.com/whiskerlang/whiskerlsp/syntax"
)

// Token is one absolute span, the intermediate form before delta encoding.
type Token struct {
	Line      uint32
	Start     uint32
	Length    uint32
	Type      uint32
	Modifiers uint32
}

var arrowRe = regexp.MustCompile(`->`)

// Scan produces the kept token spans for the whole document in document
// order. Per line, category scanners run in fixed priority order (passage
// headers, keywords, variables, navigation, directives, choice markers,
// comments, strings, numbers); after scanning, spans are sorted by start
// column and a span survives only if it begins at or beyond the end of the
// previous survivor, so an earlier-scanned category wins ties.
func Scan(doc *document.Document) []Token {
	var out []Token
	for i, text := range doc.Lines() {
		out = append(out, scanLine(uint32(i), text)...)
	}
	return out
}

func scanLine(line uint32, text string) []Token {
	codeEnd := syntax.CodeEnd(text)
	code := text[:codeEnd]

	var spans []Token
	add := func(start, end int, typ, mods uint32) {
		if end <= start {
			return
		}
		spans = append(spans, Token{
			Line:      line,
			Start:     uint32(start),
			Length:    uint32(end - start),
			Type:      typ,
			Modifiers: mods,
		})
	}

	if m, ok := syntax.PassageDecl(code); ok {
		add(m.Start, m.End, typeNamespace, modDeclaration|modDefinition)
	}
	for _, m := range syntax.KeywordSpans(code) {
		add(m.Start, m.End, typeKeyword, 0)
	}
	if m, ok := syntax.VarDecl(code); ok {
		add(m.Start, m.End, typeVariable, modDeclaration)
	}
	for _, m := range syntax.Sigils(code) {
		// Include the sigil in the highlighted span.
		add(m.Start-1, m.End, typeVariable, 0)
	}
	for _, idx := range arrowRe.FindAllStringIndex(code, -1) {
		add(idx[0], idx[1], typeOperator, 0)
	}
	for _, m := range syntax.Diverts(code) {
		add(m.Start, m.End, typeClass, 0)
	}
	for _, m := range syntax.Links(code) {
		add(m.Start, m.End, typeClass, 0)
	}
	for _, m := range syntax.Visiteds(code) {
		add(m.Start, m.End, typeClass, 0)
	}
	if m, ok := syntax.Directive(code); ok {
		// Cover the @ sign as well as the word.
		add(m.Start-1, m.End, typeMacro, 0)
	}
	for _, m := range syntax.HookDecls(code) {
		add(m.Start, m.End, typeDecorator, modDeclaration)
	}
	for _, m := range syntax.HookRefs(code) {
		add(m.Start, m.End, typeDecorator, 0)
	}
	if m, ok := syntax.ChoiceMarker(code); ok {
		add(m.Start, m.End, typeOperator, 0)
	}
	if codeEnd < len(text) {
		add(codeEnd, len(text), typeComment, 0)
	}
	for _, m := range syntax.Strings(code) {
		add(m.Start, m.End, typeString, modReadonly)
	}
	for _, m := range syntax.Numbers(code) {
		add(m.Start, m.End, typeNumber, 0)
	}

	sort.SliceStable(spans, func(a, b int) bool {
		return spans[a].Start < spans[b].Start
	})
	kept := spans[:0]
	lastEnd := uint32(0)
	for _, s := range spans {
		if s.Start < lastEnd {
			continue
		}
		kept = append(kept, s)
		lastEnd = s.Start + s.Length
	}
	return kept
}
