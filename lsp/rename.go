package lsp

// See https://microsoft.github.io/language-server-protocol/specifications/lsp/3.17/specification#textDocument_prepareRename
type PrepareRenameParams struct {
	TextDocumentPositionParams
}

// PrepareRenameResult is the range of the symbol under the cursor plus its
// current name as the suggested placeholder.
type PrepareRenameResult struct {
	Range       Range  `json:"range"`
	Placeholder string `json:"placeholder"`
}

// See https://microsoft.github.io/language-server-protocol/specifications/lsp/3.17/specification#textDocument_rename
type RenameParams struct {
	TextDocumentPositionParams
	NewName string `json:"newName"`
}
