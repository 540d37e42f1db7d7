package file

import (
	"github.com/whiskerlang/whiskerlsp/lsp"
)

// Handle is a read-only view of a single open document. Documents live
// entirely in memory, so reading content cannot fail.
type Handle interface {
	URI() lsp.DocumentURI
	Version() int32
	Content() string
}

// Modification represents a modification to a file.
type Modification struct {
	URI    lsp.DocumentURI
	Action Action

	// Version will be -1 and Text will be nil when they are not supplied,
	// specifically on textDocument/didClose.
	Version int32
	Text    []byte

	// LanguageID is only sent from the language client on textDocument/didOpen.
	LanguageID lsp.LanguageKind
}

// An Action is a type of file state change.
type Action int

const (
	UnknownAction = Action(iota)
	Open
	Change
	Close
	Save
)

func (a Action) String() string {
	switch a {
	case Open:
		return "Open"
	case Change:
		return "Change"
	case Close:
		return "Close"
	case Save:
		return "Save"
	default:
		return "Unknown"
	}
}
