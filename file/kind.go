package file

import (
	"fmt"

	"github.com/whiskerlang/whiskerlsp/lsp"
)

// Kind describes the kind of the file in question.
type Kind int

const (
	// UnknownKind is a file type we don't know about.
	UnknownKind = Kind(iota)

	// Whisker is a Whisker story script.
	Whisker
)

func (k Kind) String() string {
	switch k {
	case Whisker:
		return "whisker"
	default:
		return fmt.Sprintf("internal error: unknown file kind %d", k)
	}
}

// KindForLang returns the file [Kind] associated with the given LSP
// LanguageKind string from the LanguageID field of [lsp.TextDocumentItem],
// or UnknownKind if the language is not one we recognize.
func KindForLang(langID lsp.LanguageKind) Kind {
	switch langID {
	case "whisker":
		return Whisker
	default:
		return UnknownKind
	}
}
