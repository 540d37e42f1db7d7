package server

import (
	"context"

	"github.com/whiskerlang/whiskerlsp/debug"
	"github.com/whiskerlang/whiskerlsp/diagnostics"
	"github.com/whiskerlang/whiskerlsp/document"
	"github.com/whiskerlang/whiskerlsp/lsp"
)

// diagnosticsKey is the document cache key for validation results; the cache
// is valid only for the version it was computed against.
const diagnosticsKey = "diagnostics"

// validate returns the document's full diagnostic set, reusing the cached
// result when the document has not changed since the last run.
func (s *server) validate(doc *document.Document) []lsp.Diagnostic {
	result := doc.Derive(diagnosticsKey, func() any {
		return diagnostics.Validate(doc)
	})
	diags, _ := result.([]lsp.Diagnostic)
	return diags
}

// publishDiagnostics pushes the complete, freshly computed diagnostic set
// for uri. The set always replaces the previous one; nothing is patched
// incrementally.
func (s *server) publishDiagnostics(ctx context.Context, uri lsp.DocumentURI) {
	defer s.recoverFromPanic(ctx, "publishDiagnostics")

	doc, ok := s.store.Get(uri)
	if !ok {
		return
	}
	diags := s.validate(doc)
	if diags == nil {
		// The protocol requires an array even when there is nothing to
		// report.
		diags = []lsp.Diagnostic{}
	}
	if err := s.client.PublishDiagnostics(ctx, &lsp.PublishDiagnosticsParams{
		URI:         uri,
		Version:     doc.Version(),
		Diagnostics: diags,
	}); err != nil {
		debug.LogError(ctx, "failed to publish diagnostics", err)
	}
}

// clearDiagnostics publishes an empty set for a closed document.
func (s *server) clearDiagnostics(ctx context.Context, uri lsp.DocumentURI) {
	if err := s.client.PublishDiagnostics(ctx, &lsp.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: []lsp.Diagnostic{},
	}); err != nil {
		debug.LogError(ctx, "failed to clear diagnostics", err)
	}
}
