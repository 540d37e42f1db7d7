// Package document implements the versioned store of open text documents.
// The store owns the only shared mutable state in the server: each document's
// text, its lazily built line index, and a version-keyed cache of derived
// results. Messages are delivered serially, so there is no concurrent writer
// and no locking.
package document

import (
	"strings"

	"github.com/whiskerlang/whiskerlsp/file"
	"github.com/whiskerlang/whiskerlsp/lsp"
	"github.com/whiskerlang/whiskerlsp/syntax"
)

var _ file.Handle = (*Document)(nil)

// Document is one open text buffer. The version increases monotonically with
// every change; derived results are cached against the version they were
// computed from and never read across a version boundary.
type Document struct {
	uri     lsp.DocumentURI
	text    string
	version int32

	lines   []string // built on first access after a change
	derived map[string]derivation
}

type derivation struct {
	version int32
	value   any
}

func newDocument(uri lsp.DocumentURI, text string, version int32) *Document {
	return &Document{
		uri:     uri,
		text:    text,
		version: version,
		derived: make(map[string]derivation),
	}
}

func (d *Document) URI() lsp.DocumentURI { return d.uri }
func (d *Document) Version() int32       { return d.version }
func (d *Document) Content() string      { return d.text }

func (d *Document) reset(text string, version int32) {
	d.text = text
	d.version = version
	d.lines = nil
	clear(d.derived)
}

// Lines returns the document's lines, splitting on first access after a
// change. The returned slice is owned by the document; callers must not
// mutate it.
func (d *Document) Lines() []string {
	if d.lines == nil {
		d.lines = strings.Split(d.text, "\n")
	}
	return d.lines
}

// Line returns the line at the zero-based index, or false when the index is
// out of range.
func (d *Document) Line(i int) (string, bool) {
	lines := d.Lines()
	if i < 0 || i >= len(lines) {
		return "", false
	}
	return lines[i], true
}

// WordAt expands left and right from the cursor over word characters and
// returns the word under the cursor with its start and end columns. A leading
// `$` sigil is stepped over (cursor on the sigil still resolves the word) but
// is not part of the returned word. Returns false when the cursor is not on a
// word character.
func (d *Document) WordAt(line, col int) (string, int, int, bool) {
	text, ok := d.Line(line)
	if !ok {
		return "", 0, 0, false
	}
	if col < 0 || col > len(text) {
		return "", 0, 0, false
	}
	if col < len(text) && text[col] == '$' && col+1 < len(text) && syntax.IsWordChar(text[col+1]) {
		col++
	}
	// A cursor at the end of a word sits one past its last character.
	if (col == len(text) || !syntax.IsWordChar(text[col])) && col > 0 && syntax.IsWordChar(text[col-1]) {
		col--
	}
	if col == len(text) || !syntax.IsWordChar(text[col]) {
		return "", 0, 0, false
	}
	start, end := col, col+1
	for start > 0 && syntax.IsWordChar(text[start-1]) {
		start--
	}
	for end < len(text) && syntax.IsWordChar(text[end]) {
		end++
	}
	return text[start:end], start, end, true
}

// TextBefore returns the prefix of the line up to the column, used for
// completion trigger sniffing. The column is clamped to the line.
func (d *Document) TextBefore(line, col int) string {
	text, ok := d.Line(line)
	if !ok {
		return ""
	}
	if col < 0 {
		col = 0
	}
	if col > len(text) {
		col = len(text)
	}
	return text[:col]
}

// PositionToOffset converts a zero-based (line, character) position into a
// byte offset, clamping out-of-range positions to the nearest valid one.
func (d *Document) PositionToOffset(pos lsp.Position) int {
	lines := d.Lines()
	line := int(pos.Line)
	if line >= len(lines) {
		return len(d.text)
	}
	offset := 0
	for i := 0; i < line; i++ {
		offset += len(lines[i]) + 1
	}
	col := int(pos.Character)
	if col > len(lines[line]) {
		col = len(lines[line])
	}
	return offset + col
}

// OffsetToPosition converts a byte offset into a zero-based position.
// Out-of-range offsets clamp to the last valid position.
func (d *Document) OffsetToPosition(offset int) lsp.Position {
	if offset < 0 {
		offset = 0
	}
	lines := d.Lines()
	for i, text := range lines {
		if offset <= len(text) {
			return lsp.Position{Line: uint32(i), Character: uint32(offset)}
		}
		offset -= len(text) + 1
	}
	last := len(lines) - 1
	return lsp.Position{Line: uint32(last), Character: uint32(len(lines[last]))}
}

// Derive returns the cached derivation for key if it was computed against the
// current version, computing and caching it otherwise.
func (d *Document) Derive(key string, compute func() any) any {
	if c, ok := d.derived[key]; ok && c.version == d.version {
		return c.value
	}
	v := compute()
	d.derived[key] = derivation{version: d.version, value: v}
	return v
}
