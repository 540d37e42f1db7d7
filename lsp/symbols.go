package lsp

// See https://microsoft.github.io/language-server-protocol/specifications/lsp/3.17/specification#textDocument_documentSymbol
type DocumentSymbolParams struct {
	TextDocument TextDocumentIdentifier `json:"textDocument"`
}

type SymbolKind int

const (
	SymbolKindNamespace SymbolKind = 3
	SymbolKindClass     SymbolKind = 5
	SymbolKindFunction  SymbolKind = 12
	SymbolKindVariable  SymbolKind = 13
)

type DocumentSymbol struct {
	Name   string     `json:"name"`
	Detail string     `json:"detail,omitempty"`
	Kind   SymbolKind `json:"kind"`
	// Range spans the whole construct; SelectionRange just its name.
	Range          Range            `json:"range"`
	SelectionRange Range            `json:"selectionRange"`
	Children       []DocumentSymbol `json:"children,omitempty"`
}

// See https://microsoft.github.io/language-server-protocol/specifications/lsp/3.17/specification#textDocument_foldingRange
type FoldingRangeParams struct {
	TextDocument TextDocumentIdentifier `json:"textDocument"`
}

type FoldingRangeKind string

const (
	FoldingRangeKindRegion FoldingRangeKind = "region"
)

type FoldingRange struct {
	StartLine uint32           `json:"startLine"`
	EndLine   uint32           `json:"endLine"`
	Kind      FoldingRangeKind `json:"kind,omitempty"`
}
