package diagnostics

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

func byCode(diags []lsp.Diagnostic, code string) []lsp.Diagnostic {
	var out []lsp.Diagnostic
	for _, d := range diags {
		if d.Code == code {
			out = append(out, d)
		}
	}
	return out
}

func TestBrokenTarget(t *testing.T) {
	doc := open(t, ":: Start\n-> Missing\n")

	diags := Validate(doc)
	require.Len(t, diags, 1)
	require.Equal(t, lsp.SeverityError, diags[0].Severity)
	require.Equal(t, CodeBrokenTarget, diags[0].Code)
	require.Contains(t, diags[0].Message, "Missing")
	require.Equal(t, lsp.Range{
		Start: lsp.Position{Line: 1, Character: 3},
		End:   lsp.Position{Line: 1, Character: 10},
	}, diags[0].Range)
}

func TestTerminalTargetsAreAlwaysValid(t *testing.T) {
	doc := open(t, ":: Start\n-> END\n-> DONE\n-> BACK\n")
	require.Empty(t, Validate(doc))
}

func TestBrokenLinkTarget(t *testing.T) {
	doc := open(t, ":: Start\nsee [[the lake|Lake]]\n")

	diags := byCode(Validate(doc), CodeBrokenTarget)
	require.Len(t, diags, 1)
	require.Contains(t, diags[0].Message, "Lake")
}

func TestBraceBalance(t *testing.T) {
	require.Empty(t, Validate(open(t, "a{b}c\n")))

	diags := Validate(open(t, "a{b\n"))
	require.Len(t, diags, 1)
	require.Equal(t, CodeUnbalancedBrace, diags[0].Code)
	require.Equal(t, uint32(1), diags[0].Range.Start.Character)

	diags = Validate(open(t, "ab}c\n"))
	require.Len(t, diags, 1)
	require.Equal(t, uint32(2), diags[0].Range.Start.Character)

	// One finding per unmatched delimiter, at its exact column.
	diags = Validate(open(t, "{{x}\n"))
	require.Len(t, diags, 1)
	require.Equal(t, uint32(0), diags[0].Range.Start.Character)
}

func TestDuplicatePassage(t *testing.T) {
	doc := open(t, ":: Start\ntext\n:: Start\n")

	diags := Validate(doc)
	require.Len(t, diags, 1)
	require.Equal(t, CodeDuplicatePassage, diags[0].Code)

	// The second declaration is flagged, citing the first one's line; the
	// first declaration itself is clean.
	require.Equal(t, uint32(2), diags[0].Range.Start.Line)
	require.Contains(t, diags[0].Message, "line 1")
}

func TestPossiblyUndefinedVariable(t *testing.T) {
	doc := open(t, "You have $health HP.\nVAR health = 100\nNow $health again.\n")

	diags := Validate(doc)
	require.Len(t, diags, 1)
	require.Equal(t, CodeUndefinedVar, diags[0].Code)
	require.Equal(t, lsp.SeverityWarning, diags[0].Severity)
	require.Equal(t, uint32(0), diags[0].Range.Start.Line)
	require.Contains(t, diags[0].Message, "health")
}

func TestDeclarationOnSameLineCounts(t *testing.T) {
	// The declaration precedes the reference on the same line.
	doc := open(t, "VAR gold = 5 // spend with $gold\nTake $gold.\n")
	require.Empty(t, Validate(doc))

	doc = open(t, "VAR gold = {$gold}\n")
	diags := byCode(Validate(doc), CodeUndefinedVar)
	require.Empty(t, diags)
}

func TestRulesCombine(t *testing.T) {
	doc := open(t, ":: Start\n-> Missing {\n:: Start\nsay $mystery\n")

	diags := Validate(doc)
	autogold.Expect([]string{
		CodeBrokenTarget,
		CodeUnbalancedBrace,
		CodeDuplicatePassage,
		CodeUndefinedVar,
	}).Equal(t, codes(diags))
}

func codes(diags []lsp.Diagnostic) []string {
	var out []string
	for _, d := range diags {
		out = append(out, d.Code)
	}
	return out
}
