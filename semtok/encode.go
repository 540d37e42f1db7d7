package semtok

import (
	"github.com/whiskerlang/whiskerlsp/document"
	"github.com/whiskerlang/whiskerlsp/lsp"
)

// Encode delta-encodes the token spans into the protocol's five integers per
// token: deltaLine from the previous token, deltaStart from the previous
// token's start when on the same line (absolute otherwise), length, type,
// modifier bitset. Tokens must already be in document order.
func Encode(tokens []Token) []uint32 {
	data := make([]uint32, 0, len(tokens)*5)
	var prevLine, prevStart uint32
	for _, t := range tokens {
		deltaLine := t.Line - prevLine
		deltaStart := t.Start
		if deltaLine == 0 {
			deltaStart = t.Start - prevStart
		}
		data = append(data, deltaLine, deltaStart, t.Length, t.Type, t.Modifiers)
		prevLine, prevStart = t.Line, t.Start
	}
	return data
}

// Decode reverses Encode, reconstructing absolute spans. Used by tests to
// check the round-trip property.
func Decode(data []uint32) []Token {
	var out []Token
	var line, start uint32
	for i := 0; i+4 < len(data); i += 5 {
		if data[i] > 0 {
			line += data[i]
			start = data[i+1]
		} else {
			start += data[i+1]
		}
		out = append(out, Token{
			Line:      line,
			Start:     start,
			Length:    data[i+2],
			Type:      data[i+3],
			Modifiers: data[i+4],
		})
	}
	return out
}

// Full scans and encodes the whole document.
func Full(doc *document.Document) *lsp.SemanticTokens {
	return &lsp.SemanticTokens{Data: Encode(Scan(doc))}
}
