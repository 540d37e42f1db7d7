package syntax

import (
	"testing"

	"github.com/hexops/autogold/v2"
	"github.com/stretchr/testify/require"
)

func TestPassageDecl(t *testing.T) {
	m, ok := PassageDecl(":: Cave [dark spooky]")
	require.True(t, ok)
	require.Equal(t, Match{Name: "Cave", Start: 3, End: 7}, m)

	tags, ok := PassageTags(":: Cave [dark spooky]")
	require.True(t, ok)
	require.Equal(t, "dark spooky", tags.Name)

	_, ok = PassageDecl("no header here")
	require.False(t, ok)
	_, ok = PassageDecl("  :: Indented") // headers start at column zero
	require.False(t, ok)
}

func TestNavigationForms(t *testing.T) {
	line := "-> Cave and [[the lake|Lake]] and visited(Cave)"
	autogold.Expect([]Match{{Name: "Cave", Start: 3, End: 7}}).Equal(t, Diverts(line))
	autogold.Expect([]Match{{Name: "Lake", Start: 23, End: 27}}).Equal(t, Links(line))
	autogold.Expect([]Match{{Name: "Cave", Start: 42, End: 46}}).Equal(t, Visiteds(line))
}

func TestLinkWithoutLabel(t *testing.T) {
	autogold.Expect([]Match{{Name: "Lake", Start: 2, End: 6}}).Equal(t, Links("[[Lake]]"))
}

func TestVariableForms(t *testing.T) {
	m, ok := VarDecl("VAR health = 100")
	require.True(t, ok)
	require.Equal(t, Match{Name: "health", Start: 4, End: 10}, m)

	m, ok = VarDecl("  TEMP count = 0")
	require.True(t, ok)
	require.Equal(t, "count", m.Name)

	m, ok = VarDecl("* { $gold > 0 } TEMP n = 1")
	require.False(t, ok) // declarations sit at line start, not mid-choice

	m, ok = SetUse("SET health = 50")
	require.True(t, ok)
	require.Equal(t, Match{Name: "health", Start: 4, End: 10}, m)

	autogold.Expect([]Match{
		{Name: "health", Start: 10, End: 16},
		{Name: "gold", Start: 22, End: 26},
	}).Equal(t, Sigils("You have $health and $gold."))
}

func TestFunctionForms(t *testing.T) {
	m, ok := FuncDecl("FUNC greet(name)")
	require.True(t, ok)
	require.Equal(t, Match{Name: "greet", Start: 5, End: 10}, m)

	// The declaration position is not also reported as a call.
	require.Empty(t, Calls("FUNC greet(name)"))

	autogold.Expect([]Match{{Name: "greet", Start: 1, End: 6}}).Equal(t, Calls("{greet(you)}"))

	// Keywords never count as calls.
	require.Empty(t, Calls("visited(Cave)"))
}

func TestHookForms(t *testing.T) {
	autogold.Expect([]Match{{Name: "intro", Start: 6, End: 11}}).Equal(t, HookDecls("text |intro> more"))
	autogold.Expect([]Match{{Name: "intro", Start: 6, End: 11}}).Equal(t, HookRefs("show ?intro now"))
}

func TestDirectiveAndChoice(t *testing.T) {
	m, ok := Directive("@image cave.png")
	require.True(t, ok)
	require.Equal(t, Match{Name: "image", Start: 1, End: 6}, m)

	m, ok = ChoiceMarker("** Go north -> North")
	require.True(t, ok)
	require.Equal(t, Match{Name: "**", Start: 0, End: 2}, m)
}

func TestCodeEnd(t *testing.T) {
	require.Equal(t, 5, CodeEnd("text // comment"))
	require.Equal(t, 15, CodeEnd(`say "http://x" // trailing`))
	line := "no comment"
	require.Equal(t, len(line), CodeEnd(line))
}

func TestValidName(t *testing.T) {
	require.True(t, ValidName("Cave"))
	require.True(t, ValidName("_x9"))
	require.False(t, ValidName("9lives"))
	require.False(t, ValidName("two words"))
	require.False(t, ValidName(""))
}

func TestReserved(t *testing.T) {
	require.True(t, Reserved("VAR"))
	require.True(t, Reserved("visited"))
	require.True(t, Reserved("__secret"))
	require.True(t, Reserved("wsk_internal"))
	require.False(t, Reserved("var")) // keyword matching is case sensitive
	require.False(t, Reserved("Wsk_x"))
	require.False(t, Reserved("health"))
}
