package lsp

// See https://microsoft.github.io/language-server-protocol/specifications/lsp/3.17/specification#textDocument_semanticTokens
type SemanticTokensParams struct {
	TextDocument TextDocumentIdentifier `json:"textDocument"`
}

// SemanticTokens carries the delta-encoded token stream: five integers per
// token, [deltaLine, deltaStartChar, length, tokenType, tokenModifiers].
type SemanticTokens struct {
	Data []uint32 `json:"data"`
}

// SemanticTokensLegend maps the integer token types and modifier bits in the
// encoded stream back to names. It must match what the encoder emits.
type SemanticTokensLegend struct {
	TokenTypes     []string `json:"tokenTypes"`
	TokenModifiers []string `json:"tokenModifiers"`
}
