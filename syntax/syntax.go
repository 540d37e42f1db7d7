// Package syntax holds the per-line recognizers for the Whisker scripting
// format. Everything here is regex based and line local; there is no grammar
// and no AST. The analysis, diagnostics, refactor and semtok packages all
// share these patterns so that "what counts as a reference" has exactly one
// definition.
package syntax

import "regexp"

// Match is one named capture on a line. Start and End are byte columns into
// the line; End is exclusive. For recognizers that capture a symbol name the
// range covers the name only, not the surrounding syntax.
type Match struct {
	Name  string
	Start int
	End   int
}

var (
	headerRe   = regexp.MustCompile(`^::\s*([A-Za-z_][A-Za-z0-9_]*)\s*(?:\[([^\]]*)\])?`)
	divertRe   = regexp.MustCompile(`->\s*([A-Za-z_][A-Za-z0-9_]*)`)
	linkRe     = regexp.MustCompile(`\[\[(?:[^\]|]*\|)?\s*([A-Za-z_][A-Za-z0-9_]*)\s*\]\]`)
	visitedRe  = regexp.MustCompile(`\bvisited\(\s*([A-Za-z_][A-Za-z0-9_]*)\s*\)`)
	varDeclRe  = regexp.MustCompile(`^\s*(?:[*+]+\s*)?(VAR|TEMP)\s+([A-Za-z_][A-Za-z0-9_]*)`)
	setRe      = regexp.MustCompile(`^\s*(?:[*+]+\s*)?SET\s+([A-Za-z_][A-Za-z0-9_]*)`)
	sigilRe    = regexp.MustCompile(`\$([A-Za-z_][A-Za-z0-9_]*)`)
	funcDeclRe = regexp.MustCompile(`^\s*FUNC\s+([A-Za-z_][A-Za-z0-9_]*)\s*\(`)
	callRe     = regexp.MustCompile(`\b([A-Za-z_][A-Za-z0-9_]*)\(`)
	hookDeclRe = regexp.MustCompile(`\|([A-Za-z_][A-Za-z0-9_]*)>`)
	hookRefRe  = regexp.MustCompile(`\?([A-Za-z_][A-Za-z0-9_]*)`)

	directiveRe = regexp.MustCompile(`^\s*@([A-Za-z_][A-Za-z0-9_]*)`)
	choiceRe    = regexp.MustCompile(`^\s*([*+]+)`)
	keywordRe   = regexp.MustCompile(`\b(VAR|TEMP|SET|FUNC|IF|ELSE|ENDIF|END|DONE|BACK|visited)\b`)
	stringRe    = regexp.MustCompile(`"[^"]*"`)
	numberRe    = regexp.MustCompile(`\b[0-9]+(?:\.[0-9]+)?\b`)

	nameRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)
)

// Keywords are names a symbol may never take and a call recognizer must not
// treat as a function name.
var Keywords = map[string]bool{
	"VAR":     true,
	"TEMP":    true,
	"SET":     true,
	"FUNC":    true,
	"IF":      true,
	"ELSE":    true,
	"ENDIF":   true,
	"END":     true,
	"DONE":    true,
	"BACK":    true,
	"visited": true,
}

// TerminalTargets are navigation destinations that are always valid without a
// passage declaration.
var TerminalTargets = map[string]bool{
	"END":  true,
	"DONE": true,
	"BACK": true,
}

// ReservedPrefixes are name prefixes reserved for the runtime, matched case
// sensitively.
var ReservedPrefixes = []string{"__", "wsk_"}

// ValidName reports whether s is a well formed symbol name: a letter or
// underscore followed by word characters.
func ValidName(s string) bool {
	return nameRe.MatchString(s)
}

// Reserved reports whether s is a reserved keyword or carries a reserved
// prefix. Reserved names are rejected as rename targets.
func Reserved(s string) bool {
	if Keywords[s] {
		return true
	}
	for _, p := range ReservedPrefixes {
		if len(s) >= len(p) && s[:len(p)] == p {
			return true
		}
	}
	return false
}

// IsWordChar reports whether b belongs to the word character class used by
// word-at-cursor extraction.
func IsWordChar(b byte) bool {
	return b == '_' ||
		(b >= 'a' && b <= 'z') ||
		(b >= 'A' && b <= 'Z') ||
		(b >= '0' && b <= '9')
}

// CodeEnd returns the column where line comment text begins, or len(line)
// when the line has no comment. Recognizers apply to line[:CodeEnd(line)] so
// that commented-out syntax is invisible to them while columns stay valid.
func CodeEnd(line string) int {
	inString := false
	for i := 0; i+1 < len(line); i++ {
		switch {
		case line[i] == '"':
			inString = !inString
		case !inString && line[i] == '/' && line[i+1] == '/':
			return i
		}
	}
	return len(line)
}

func group(line string, idx []int, n int) Match {
	return Match{
		Name:  line[idx[2*n]:idx[2*n+1]],
		Start: idx[2*n],
		End:   idx[2*n+1],
	}
}

func all(re *regexp.Regexp, line string, n int) []Match {
	var out []Match
	for _, idx := range re.FindAllStringSubmatchIndex(line, -1) {
		if idx[2*n] < 0 {
			continue
		}
		out = append(out, group(line, idx, n))
	}
	return out
}

func first(re *regexp.Regexp, line string, n int) (Match, bool) {
	idx := re.FindStringSubmatchIndex(line)
	if idx == nil || idx[2*n] < 0 {
		return Match{}, false
	}
	return group(line, idx, n), true
}

// PassageDecl matches a passage header line `:: Name [tags]` and returns the
// name match.
func PassageDecl(line string) (Match, bool) {
	return first(headerRe, line, 1)
}

// PassageTags returns the raw tag list of a header line, if present.
func PassageTags(line string) (Match, bool) {
	return first(headerRe, line, 2)
}

// Diverts matches every `-> Target` on the line.
func Diverts(line string) []Match {
	return all(divertRe, line, 1)
}

// Links matches every `[[Target]]` or `[[Label|Target]]` on the line and
// returns the target matches.
func Links(line string) []Match {
	return all(linkRe, line, 1)
}

// Visiteds matches every `visited(Target)` predicate on the line.
func Visiteds(line string) []Match {
	return all(visitedRe, line, 1)
}

// VarDecl matches a `VAR name = ...` or `TEMP name = ...` declaration line.
func VarDecl(line string) (Match, bool) {
	return first(varDeclRe, line, 2)
}

// SetUse matches a `SET name = ...` assignment line. Assignment is a usage,
// not a declaration.
func SetUse(line string) (Match, bool) {
	return first(setRe, line, 1)
}

// Sigils matches every `$name` interpolation on the line. The returned range
// covers the name without the sigil.
func Sigils(line string) []Match {
	return all(sigilRe, line, 1)
}

// FuncDecl matches a `FUNC name(...)` declaration line.
func FuncDecl(line string) (Match, bool) {
	return first(funcDeclRe, line, 1)
}

// Calls matches every `name(` call site on the line, excluding keywords and
// the position claimed by a FUNC declaration.
func Calls(line string) []Match {
	decl, hasDecl := FuncDecl(line)
	var out []Match
	for _, m := range all(callRe, line, 1) {
		if Keywords[m.Name] {
			continue
		}
		if hasDecl && m.Start == decl.Start {
			continue
		}
		out = append(out, m)
	}
	return out
}

// HookDecls matches every `|name>` hook marker on the line.
func HookDecls(line string) []Match {
	return all(hookDeclRe, line, 1)
}

// HookRefs matches every `?name` hook reference on the line.
func HookRefs(line string) []Match {
	return all(hookRefRe, line, 1)
}

// Directive matches an `@word` directive line.
func Directive(line string) (Match, bool) {
	return first(directiveRe, line, 1)
}

// ChoiceMarker matches the leading `*`/`+` run of a choice line.
func ChoiceMarker(line string) (Match, bool) {
	return first(choiceRe, line, 1)
}

// KeywordSpans matches every reserved keyword occurrence on the line. Used
// by the token scanner only.
func KeywordSpans(line string) []Match {
	return all(keywordRe, line, 1)
}

// Strings matches every double-quoted string literal on the line.
func Strings(line string) []Match {
	var out []Match
	for _, idx := range stringRe.FindAllStringIndex(line, -1) {
		out = append(out, Match{Name: line[idx[0]:idx[1]], Start: idx[0], End: idx[1]})
	}
	return out
}

// Numbers matches every numeric literal on the line.
func Numbers(line string) []Match {
	var out []Match
	for _, idx := range numberRe.FindAllStringIndex(line, -1) {
		out = append(out, Match{Name: line[idx[0]:idx[1]], Start: idx[0], End: idx[1]})
	}
	return out
}
