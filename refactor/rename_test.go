package refactor

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/whiskerlang/whiskerlsp/document"
	"github.com/whiskerlang/whiskerlsp/lsp"
)

const testURI = lsp.DocumentURI("file:///story.whisker")

func open(t *testing.T, text string) *document.Document {
	t.Helper()
	return document.NewStore().Open(testURI, text, 1)
}

// applyEdits replays a single-document WorkspaceEdit over the text. Edits
// are applied back to front so earlier offsets stay valid.
func applyEdits(t *testing.T, doc *document.Document, edit *lsp.WorkspaceEdit) string {
	t.Helper()
	edits := edit.Changes[testURI]
	text := doc.Content()
	for i := len(edits) - 1; i >= 0; i-- {
		start := doc.PositionToOffset(edits[i].Range.Start)
		end := doc.PositionToOffset(edits[i].Range.End)
		text = text[:start] + edits[i].NewText + text[end:]
	}
	return text
}

func TestPrepare(t *testing.T) {
	doc := open(t, ":: Cave\n-> Cave\n")

	prepared, ok := Prepare(doc, 1, 4)
	require.True(t, ok)
	require.Equal(t, "Cave", prepared.Placeholder)
	require.Equal(t, lsp.Range{
		Start: lsp.Position{Line: 1, Character: 3},
		End:   lsp.Position{Line: 1, Character: 7},
	}, prepared.Range)

	// Prose is refused.
	_, ok = Prepare(doc, 0, 1)
	require.False(t, ok)
}

func TestRenamePassageAllEncodings(t *testing.T) {
	doc := open(t, ":: Cave\n-> Cave\nsee [[dark|Cave]]\n{visited(Cave)}\n")

	edit, err := Rename(doc, 0, 4, "Grotto")
	require.NoError(t, err)
	require.Len(t, edit.Changes[testURI], 4)

	renamed := applyEdits(t, doc, edit)
	require.Equal(t, ":: Grotto\n-> Grotto\nsee [[dark|Grotto]]\n{visited(Grotto)}\n", renamed)
	require.NotContains(t, renamed, "Cave")
}

func TestRenameVariable(t *testing.T) {
	doc := open(t, "VAR health = 100\nYou have $health HP.\nSET health = 50\n")

	edit, err := Rename(doc, 0, 5, "hp")
	require.NoError(t, err)

	renamed := applyEdits(t, doc, edit)
	require.Equal(t, "VAR hp = 100\nYou have $hp HP.\nSET hp = 50\n", renamed)
}

func TestRenameIdentityIsNoOp(t *testing.T) {
	text := ":: Cave\n-> Cave\n"
	doc := open(t, text)

	edit, err := Rename(doc, 0, 4, "Cave")
	require.NoError(t, err)
	require.NotEmpty(t, edit.Changes[testURI])
	require.Equal(t, text, applyEdits(t, doc, edit))
}

func TestRenameRejectsReservedKeyword(t *testing.T) {
	doc := open(t, ":: Cave\n")

	edit, err := Rename(doc, 0, 4, "VAR")
	require.ErrorIs(t, err, ErrInvalidName)
	require.Nil(t, edit)
}

func TestRenameRejectsMalformedNames(t *testing.T) {
	doc := open(t, ":: Cave\n")

	for _, bad := range []string{"", "9lives", "two words", "a-b"} {
		_, err := Rename(doc, 0, 4, bad)
		require.ErrorIs(t, err, ErrInvalidName, "name %q", bad)
	}
}

func TestRenameRejectsReservedPrefixes(t *testing.T) {
	doc := open(t, ":: Cave\n")

	for _, bad := range []string{"__hidden", "wsk_cave"} {
		_, err := Rename(doc, 0, 4, bad)
		require.ErrorIs(t, err, ErrInvalidName, "name %q", bad)
	}
}

func TestRenameOffSymbolFails(t *testing.T) {
	doc := open(t, "plain prose\n")

	_, err := Rename(doc, 0, 2, "Name")
	require.ErrorIs(t, err, ErrNotRenamable)
}
