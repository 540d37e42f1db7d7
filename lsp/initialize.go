package lsp

type InitializeRequestParams struct {
	ClientInfo   *ClientInfo        `json:"clientInfo"`
	RootURI      DocumentURI        `json:"rootUri"`
	Capabilities ClientCapabilities `json:"capabilities"`
	// ... there's tons more that goes here
}

type ClientCapabilities struct {
	Window ClientWindowCapabilities `json:"window"`
}

type ClientWindowCapabilities struct {
	WorkDoneProgress bool `json:"workDoneProgress"`
}

type ClientInfo struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

type InitializedParams struct{}

type InitializeResult struct {
	Capabilities ServerCapabilities `json:"capabilities"`
	ServerInfo   ServerInfo         `json:"serverInfo"`
}

type TextDocumentSyncOptions struct {
	OpenClose bool `json:"openClose"`
	// Change is 1 for full-content synchronization. Ranged (incremental)
	// changes are not merged by the document store.
	Change int `json:"change"`
	Save   bool `json:"save"`
}

type CompletionOptions struct {
	TriggerCharacters []string `json:"triggerCharacters,omitempty"`
}

type CodeActionProviderOptions struct {
	CodeActionKinds []CodeActionKind `json:"codeActionKinds"`
}

type SemanticTokensOptions struct {
	Legend SemanticTokensLegend `json:"legend"`
	// Full only; ranged token requests are not supported.
	Full bool `json:"full"`
}

type RenameOptions struct {
	PrepareProvider bool `json:"prepareProvider"`
}

type ServerCapabilities struct {
	TextDocumentSync       TextDocumentSyncOptions   `json:"textDocumentSync"`
	HoverProvider          bool                      `json:"hoverProvider"`
	CompletionProvider     *CompletionOptions        `json:"completionProvider,omitempty"`
	DefinitionProvider     bool                      `json:"definitionProvider"`
	ReferencesProvider     bool                      `json:"referencesProvider"`
	DocumentSymbolProvider bool                      `json:"documentSymbolProvider"`
	FoldingRangeProvider   bool                      `json:"foldingRangeProvider"`
	CodeActionProvider     CodeActionProviderOptions `json:"codeActionProvider"`
	SemanticTokensProvider *SemanticTokensOptions    `json:"semanticTokensProvider,omitempty"`
	RenameProvider         RenameOptions             `json:"renameProvider"`
}

type ServerInfo struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}
