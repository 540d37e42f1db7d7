package lsp

import (
	"path/filepath"
	"strings"

	"github.com/pulumi/pulumi/sdk/v3/go/common/util/contract"
)

// DocumentURI identifies a document held by the client, e.g.
// "file:///home/me/story.whisker".
type DocumentURI string

// LanguageKind is the language identifier sent by the client on didOpen.
type LanguageKind string

func (uri DocumentURI) Path() string {
	contract.Assertf(strings.HasPrefix(string(uri), "file://"), "URI must start with file://")
	return filepath.FromSlash(string(uri)[7:])
}

func URIFromPath(path string) DocumentURI {
	if path == "" {
		return ""
	}
	return DocumentURI("file://" + filepath.ToSlash(path))
}
