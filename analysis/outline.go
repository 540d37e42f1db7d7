package analysis

import (
	"github.com/whiskerlang/whiskerlsp/document"
	"github.com/whiskerlang/whiskerlsp/lsp"
	"github.com/whiskerlang/whiskerlsp/syntax"
)

// DocumentSymbols returns the structural outline: one Namespace symbol per
// passage spanning its whole block, plus Variable and Function symbols for
// declaration lines, all in document order.
func DocumentSymbols(doc *document.Document) []lsp.DocumentSymbol {
	lines := doc.Lines()
	var out []lsp.DocumentSymbol
	for i, text := range lines {
		code := text[:syntax.CodeEnd(text)]
		if m, ok := syntax.PassageDecl(code); ok {
			end := passageEnd(lines, i)
			sym := lsp.DocumentSymbol{
				Name: m.Name,
				Kind: lsp.SymbolKindNamespace,
				Range: lsp.Range{
					Start: lsp.Position{Line: uint32(i)},
					End:   lsp.Position{Line: uint32(end), Character: uint32(len(lines[end]))},
				},
				SelectionRange: nameRange(i, m),
			}
			if tags, ok := syntax.PassageTags(code); ok {
				sym.Detail = tags.Name
			}
			out = append(out, sym)
			continue
		}
		if m, ok := syntax.VarDecl(code); ok {
			out = append(out, lsp.DocumentSymbol{
				Name:           m.Name,
				Kind:           lsp.SymbolKindVariable,
				Range:          lineRange(i, text),
				SelectionRange: nameRange(i, m),
			})
		}
		if m, ok := syntax.FuncDecl(code); ok {
			out = append(out, lsp.DocumentSymbol{
				Name:           m.Name,
				Kind:           lsp.SymbolKindFunction,
				Range:          lineRange(i, text),
				SelectionRange: nameRange(i, m),
			})
		}
	}
	return out
}

// FoldingRanges returns one folding range per passage, from its header line
// to the line before the next header (or the last line). Single-line
// passages produce no range.
func FoldingRanges(doc *document.Document) []lsp.FoldingRange {
	lines := doc.Lines()
	var out []lsp.FoldingRange
	for i, text := range lines {
		if _, ok := syntax.PassageDecl(text[:syntax.CodeEnd(text)]); !ok {
			continue
		}
		end := passageEnd(lines, i)
		if end > i {
			out = append(out, lsp.FoldingRange{
				StartLine: uint32(i),
				EndLine:   uint32(end),
				Kind:      lsp.FoldingRangeKindRegion,
			})
		}
	}
	return out
}

// passageEnd returns the index of the passage's last line: the line before
// the next header, or the last line of the document.
func passageEnd(lines []string, header int) int {
	for i := header + 1; i < len(lines); i++ {
		if _, ok := syntax.PassageDecl(lines[i][:syntax.CodeEnd(lines[i])]); ok {
			return i - 1
		}
	}
	return len(lines) - 1
}

func nameRange(line int, m syntax.Match) lsp.Range {
	return lsp.Range{
		Start: lsp.Position{Line: uint32(line), Character: uint32(m.Start)},
		End:   lsp.Position{Line: uint32(line), Character: uint32(m.End)},
	}
}

func lineRange(line int, text string) lsp.Range {
	return lsp.Range{
		Start: lsp.Position{Line: uint32(line)},
		End:   lsp.Position{Line: uint32(line), Character: uint32(len(text))},
	}
}
