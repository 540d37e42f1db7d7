// Package semtok turns a Whisker document into the semantic token stream the
// protocol expects: per-line category scanners produce spans, overlapping
// spans are dropped in scanner-priority order, and the survivors are delta
// encoded five integers per token.
package semtok

import "github.com/whiskerlang/whiskerlsp/lsp"

// Token type indices into the legend. The values are positions in the
// TokenTypes slice advertised at initialize and must not be reordered.
const (
	typeNamespace = iota // passage names
	typeKeyword
	typeVariable
	typeOperator // divert arrows, choice markers
	typeClass    // navigation targets
	typeMacro    // directives
	typeDecorator
	typeString
	typeNumber
	typeComment
)

// Modifier bits.
const (
	modDeclaration = 1 << iota
	modDefinition
	modReadonly
)

// Legend returns the token legend advertised in the server capabilities.
// Index positions correspond to the type and modifier constants above.
func Legend() lsp.SemanticTokensLegend {
	return lsp.SemanticTokensLegend{
		TokenTypes: []string{
			"namespace",
			"keyword",
			"variable",
			"operator",
			"class",
			"macro",
			"decorator",
			"string",
			"number",
			"comment",
		},
		TokenModifiers: []string{
			"declaration",
			"definition",
			"readonly",
		},
	}
}
