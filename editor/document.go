package editor

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Document is the editing core: a gap-buffered byte store with a derived line
// index plus file metadata. The internal text is normalized to end with
// exactly one line terminator, which guarantees the document always has at
// least one line; edits are clamped so they can never remove it. Whether the
// on-disk file actually ends with a newline is tracked separately and
// restored on save.
type Document struct {
	store gapBuffer
	index lineIndex

	Path     string
	Modified bool
	Language string

	trailingNewline bool
}

func NewDocument() *Document {
	d := &Document{Language: "plaintext"}
	d.setText("")
	return d
}

// DocumentForPath returns an empty document bound to a path that does not
// exist yet; the file is created on the first save.
func DocumentForPath(path string) *Document {
	d := NewDocument()
	d.Path = path
	d.Language = DetectLanguage(path)
	return d
}

// OpenDocument reads path into a new document.
func OpenDocument(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	d := &Document{
		Path:            path,
		Language:        DetectLanguage(path),
		trailingNewline: len(data) > 0 && data[len(data)-1] == '\n',
	}
	d.store = newGapBuffer(data)
	d.normalize()
	d.index.rebuild(&d.store)
	return d, nil
}

// LoadDocument opens path, treating a missing or unreadable file as a new
// empty document associated with that path.
func LoadDocument(path string) *Document {
	if d, err := OpenDocument(path); err == nil {
		return d
	}
	return DocumentForPath(path)
}

func (d *Document) setText(text string) {
	d.store = newGapBuffer([]byte(text))
	d.normalize()
	d.index.rebuild(&d.store)
}

func (d *Document) normalize() {
	n := d.store.Len()
	if n == 0 || d.store.byteAt(n-1) != '\n' {
		d.store.Insert(n, "\n")
	}
}

// contentLen is the editable length: everything before the guard terminator.
func (d *Document) contentLen() int {
	return d.store.Len() - 1
}

// Text returns the full internal text, including the trailing terminator.
func (d *Document) Text() string {
	return d.store.String()
}

func (d *Document) NumLines() int {
	return d.index.numLines()
}

// LineLen is the byte length of a line, excluding its terminator.
func (d *Document) LineLen(line int) int {
	start, end := d.index.lineBounds(line)
	if end > start && d.store.byteAt(end-1) == '\n' {
		end--
	}
	return end - start
}

// Line returns the text of a line without its terminator. Out-of-range lines
// clamp rather than fail; transient near-boundary requests are routine during
// editing.
func (d *Document) Line(line int) string {
	start, _ := d.index.lineBounds(line)
	return string(d.store.Range(start, start+d.LineLen(line)))
}

// Indent returns the leading run of spaces and tabs on a line.
func (d *Document) Indent(line int) string {
	text := d.Line(line)
	for i := 0; i < len(text); i++ {
		if text[i] != ' ' && text[i] != '\t' {
			return text[:i]
		}
	}
	return text
}

// OffsetOf converts (line, col) to a byte offset, clamping both coordinates.
func (d *Document) OffsetOf(line, col int) int {
	if line < 0 {
		line = 0
	}
	if line >= d.NumLines() {
		line = d.NumLines() - 1
	}
	if col < 0 {
		col = 0
	}
	if n := d.LineLen(line); col > n {
		col = n
	}
	return d.index.start(line) + col
}

// LineColOf converts a byte offset back to (line, col), the inverse of
// OffsetOf for all valid cursor positions.
func (d *Document) LineColOf(off int) (int, int) {
	line, col := d.index.lineOf(off)
	if n := d.LineLen(line); col > n {
		col = n
	}
	return line, col
}

// Insert places text at a byte offset. Offsets past the editable content
// clamp so the guard terminator stays last.
func (d *Document) Insert(off int, text string) {
	if text == "" {
		return
	}
	if off > d.contentLen() {
		off = d.contentLen()
	}
	d.store.Insert(off, text)
	d.afterMutation()
}

// Delete removes up to n bytes at off and returns the removed text, which the
// caller records for undo. Deleting past the end of content is a silent no-op
// for the excess.
func (d *Document) Delete(off, n int) string {
	if off < 0 {
		off = 0
	}
	if off+n > d.contentLen() {
		n = d.contentLen() - off
	}
	if n <= 0 {
		return ""
	}
	removed := string(d.store.Range(off, off+n))
	d.store.Delete(off, n)
	d.afterMutation()
	return removed
}

func (d *Document) InsertAt(line, col int, text string) {
	d.Insert(d.OffsetOf(line, col), text)
}

// InsertNewline splits the line at col into two lines.
func (d *Document) InsertNewline(line, col int) {
	d.Insert(d.OffsetOf(line, col), "\n")
}

func (d *Document) afterMutation() {
	d.normalize()
	d.index.rebuild(&d.store)
	d.Modified = true
}

// Find locates the next occurrence of query, starting strictly after (or, for
// backward searches, strictly before) the given position and wrapping around
// the document. An empty query is never found. Case folding is ASCII-only so
// match offsets stay valid in the raw bytes.
func (d *Document) Find(query string, fromLine, fromCol int, caseSensitive, backward bool) (int, int, bool) {
	if query == "" {
		return 0, 0, false
	}
	text := d.Text()
	if !caseSensitive {
		text = asciiLower(text)
		query = asciiLower(query)
	}
	start := d.OffsetOf(fromLine, fromCol)

	pos := -1
	if backward {
		limit := start - 1 + len(query)
		if limit > len(text) {
			limit = len(text)
		}
		if limit > 0 {
			pos = strings.LastIndex(text[:limit], query)
		}
		if pos < 0 {
			pos = strings.LastIndex(text, query)
		}
	} else {
		from := start + 1
		if from > len(text) {
			from = len(text)
		}
		if i := strings.Index(text[from:], query); i >= 0 {
			pos = from + i
		} else {
			pos = strings.Index(text, query)
		}
	}
	if pos < 0 {
		return 0, 0, false
	}
	line, col := d.LineColOf(pos)
	return line, col, true
}

// ReplaceAll substitutes every occurrence of old across the whole document
// and returns the count. It is not recorded as a reversible operation; the
// caller clears its edit log.
func (d *Document) ReplaceAll(old, new string) int {
	if old == "" {
		return 0
	}
	text := d.Text()
	count := strings.Count(text, old)
	if count == 0 {
		return 0
	}
	d.setText(strings.ReplaceAll(text, old, new))
	d.Modified = true
	return count
}

// Save writes the document to its path, restoring the original trailing
// newline convention. The modified flag clears only on success.
func (d *Document) Save() error {
	return d.SaveAs(d.Path)
}

// SaveAs writes to path, rebinding the document and re-deriving its language.
func (d *Document) SaveAs(path string) error {
	if path == "" {
		return fmt.Errorf("no file path")
	}
	out := d.Text()
	if !d.trailingNewline {
		out = strings.TrimSuffix(out, "\n")
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	if err := os.WriteFile(path, []byte(out), 0o644); err != nil {
		return err
	}
	d.Path = path
	d.Language = DetectLanguage(path)
	d.Modified = false
	return nil
}

func (d *Document) FileName() string {
	if d.Path == "" {
		return "[No Name]"
	}
	return filepath.Base(d.Path)
}

func asciiLower(s string) string {
	hasUpper := false
	for i := 0; i < len(s); i++ {
		if s[i] >= 'A' && s[i] <= 'Z' {
			hasUpper = true
			break
		}
	}
	if !hasUpper {
		return s
	}
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}
