package document

import "github.com/whiskerlang/whiskerlsp/lsp"

// Store holds all open documents keyed by URI. Documents exist only between
// didOpen and didClose; accessors on an unknown URI report absence rather
// than failing, and callers treat a missing document as an empty result.
type Store struct {
	docs map[lsp.DocumentURI]*Document
}

func NewStore() *Store {
	return &Store{docs: make(map[lsp.DocumentURI]*Document)}
}

// Open creates or replaces the document for uri.
func (s *Store) Open(uri lsp.DocumentURI, text string, version int32) *Document {
	doc := newDocument(uri, text, version)
	s.docs[uri] = doc
	return doc
}

// Update replaces the document's text. A negative version assigns the next
// version after the current one. All derived caches for the URI are
// invalidated. Returns false when the document is not open.
func (s *Store) Update(uri lsp.DocumentURI, text string, version int32) (*Document, bool) {
	doc, ok := s.docs[uri]
	if !ok {
		return nil, false
	}
	if version < 0 {
		version = doc.version + 1
	}
	doc.reset(text, version)
	return doc, true
}

// Close drops the document and every cached derivation for its URI.
func (s *Store) Close(uri lsp.DocumentURI) {
	delete(s.docs, uri)
}

// Get returns the open document for uri, or false when it is not open.
func (s *Store) Get(uri lsp.DocumentURI) (*Document, bool) {
	doc, ok := s.docs[uri]
	return doc, ok
}
