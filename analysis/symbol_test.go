package analysis

import (
	"testing"

	"github.com/hexops/autogold/v2"
	"github.com/stretchr/testify/require"
	"github.com/whiskerlang/whiskerlsp/document"
	"github.com/whiskerlang/whiskerlsp/lsp"
)

const testURI = lsp.DocumentURI("file:///story.whisker")

func open(t *testing.T, text string) *document.Document {
	t.Helper()
	return document.NewStore().Open(testURI, text, 1)
}

func TestClassifyPassageForms(t *testing.T) {
	doc := open(t, ":: Cave\n-> Cave\nGo to [[Cave]]\n{visited(Cave)}\n")

	for _, tc := range []struct {
		name      string
		line, col int
	}{
		{"header", 0, 3},
		{"divert", 1, 3},
		{"link", 2, 8},
		{"visited", 3, 9},
	} {
		kind, word, _, ok := ClassifyAt(doc, tc.line, tc.col)
		require.True(t, ok, tc.name)
		require.Equal(t, KindPassage, kind, tc.name)
		require.Equal(t, "Cave", word, tc.name)
	}
}

func TestClassifyVariableForms(t *testing.T) {
	doc := open(t, "VAR health = 100\nYou have $health HP.\nSET health = 50\n")

	kind, _, _, ok := ClassifyAt(doc, 0, 5)
	require.True(t, ok)
	require.Equal(t, KindVariable, kind)

	kind, _, _, ok = ClassifyAt(doc, 1, 12)
	require.True(t, ok)
	require.Equal(t, KindVariable, kind)

	kind, _, _, ok = ClassifyAt(doc, 2, 5)
	require.True(t, ok)
	require.Equal(t, KindVariable, kind)
}

func TestClassifyFunctionAndHook(t *testing.T) {
	doc := open(t, "FUNC greet(name)\n{greet(you)}\ntext |intro> here\nshow ?intro\n")

	kind, _, _, ok := ClassifyAt(doc, 0, 6)
	require.True(t, ok)
	require.Equal(t, KindFunction, kind)

	kind, _, _, ok = ClassifyAt(doc, 1, 2)
	require.True(t, ok)
	require.Equal(t, KindFunction, kind)

	kind, _, _, ok = ClassifyAt(doc, 2, 7)
	require.True(t, ok)
	require.Equal(t, KindHook, kind)

	kind, _, _, ok = ClassifyAt(doc, 3, 6)
	require.True(t, ok)
	require.Equal(t, KindHook, kind)
}

func TestClassifyMisses(t *testing.T) {
	doc := open(t, "plain prose here\n-> Cave // -> Hidden\n")

	// Prose is not a symbol.
	_, _, _, ok := ClassifyAt(doc, 0, 2)
	require.False(t, ok)

	// A divert inside a comment is invisible.
	_, _, _, ok = ClassifyAt(doc, 1, 14)
	require.False(t, ok)
}

func TestFindAllReferencesPassage(t *testing.T) {
	doc := open(t, ":: Cave\n-> Cave\nsee [[the cave|Cave]]\n{visited(Cave)}\n-> Lake\n")

	occurrences := FindAllReferences(doc, KindPassage, "Cave")
	autogold.Expect([]Occurrence{
		{
			Range: lsp.Range{
				Start: lsp.Position{Character: 3},
				End:   lsp.Position{Character: 7},
			},
			Role: RoleDeclaration,
		},
		{
			Range: lsp.Range{
				Start: lsp.Position{Line: 1, Character: 3},
				End:   lsp.Position{Line: 1, Character: 7},
			},
			Role: RoleUsage,
		},
		{
			Range: lsp.Range{
				Start: lsp.Position{Line: 2, Character: 15},
				End:   lsp.Position{Line: 2, Character: 19},
			},
			Role: RoleUsage,
		},
		{
			Range: lsp.Range{
				Start: lsp.Position{Line: 3, Character: 9},
				End:   lsp.Position{Line: 3, Character: 13},
			},
			Role: RoleUsage,
		},
	}).Equal(t, occurrences)
}

func TestFindAllReferencesVariable(t *testing.T) {
	doc := open(t, "VAR health = 100\nYou have $health HP.\n")

	occurrences := FindAllReferences(doc, KindVariable, "health")
	require.Len(t, occurrences, 2)
	require.Equal(t, RoleDeclaration, occurrences[0].Role)
	require.Equal(t, RoleUsage, occurrences[1].Role)

	// Every returned slice of text equals the symbol's name.
	for _, occ := range occurrences {
		line, ok := doc.Line(int(occ.Range.Start.Line))
		require.True(t, ok)
		require.Equal(t, "health", line[occ.Range.Start.Character:occ.Range.End.Character])
	}
}

func TestFindAllReferencesIsStable(t *testing.T) {
	doc := open(t, "-> Cave\n:: Cave\n[[Cave]] and [[Cave]]\n")

	first := FindAllReferences(doc, KindPassage, "Cave")
	second := FindAllReferences(doc, KindPassage, "Cave")
	require.Equal(t, first, second)
	require.Len(t, first, 4)

	// Document order by line, left to right within a line.
	for i := 1; i < len(first); i++ {
		prev, cur := first[i-1].Range.Start, first[i].Range.Start
		require.True(t, prev.Line < cur.Line ||
			(prev.Line == cur.Line && prev.Character < cur.Character))
	}
}

func TestFindDeclaration(t *testing.T) {
	doc := open(t, "-> Cave\n:: Cave\n")

	r, ok := FindDeclaration(doc, KindPassage, "Cave")
	require.True(t, ok)
	require.Equal(t, uint32(1), r.Start.Line)

	_, ok = FindDeclaration(doc, KindPassage, "Lake")
	require.False(t, ok)
}
