package main

import (
	"fmt"
	"os"
	"strings"
	"time"
	"unicode/utf8"

	"nova/editor"
)

const blinkInterval = 500 * time.Millisecond

// Editor is the controller: it owns the document, cursor, scroll, edit log,
// and active mode, and handles every key event to completion before the next
// frame draws.
type Editor struct {
	doc     *editor.Document
	history editor.History
	mode    editorMode
	pending pendingAction // single-slot outbox, drained once per key event

	cursorLine int
	cursorCol  int
	scroll     int

	settings Settings
	theme    Theme

	showHelp        bool
	showLineNumbers bool
	wordWrap        bool

	quitAfterSave bool
	shouldQuit    bool

	blinkOn bool
	blinkAt time.Time

	screenWidth  int
	screenHeight int

	status string
	tip    string
}

func newEditor(doc *editor.Document, settings Settings, width, height int) *Editor {
	return &Editor{
		doc:             doc,
		mode:            modeNormal{},
		settings:        settings,
		theme:           themeByName(settings.Theme),
		showHelp:        settings.ShowHelp,
		showLineNumbers: settings.ShowLineNumbers,
		wordWrap:        settings.WordWrap,
		blinkOn:         true,
		blinkAt:         time.Now(),
		screenWidth:     width,
		screenHeight:    height,
	}
}

// HandleKey runs one full event cycle: mode step, pending-action drain,
// cursor clamp, scroll follow.
func (e *Editor) HandleKey(k keyEvent) {
	if !k.press {
		return
	}
	e.blinkOn = true
	e.blinkAt = time.Now()
	e.status = ""

	switch m := e.mode.(type) {
	case modeNormal:
		e.handleNormal(k)
	case modeSearch:
		e.mode = e.stepSearch(m, k)
	case modeReplace:
		e.mode = e.stepReplace(m, k)
	case modeGoToLine:
		e.mode = e.stepGoToLine(m, k)
	case modeConfirm:
		e.mode = e.stepConfirm(m, k)
	case modeInput:
		e.mode = e.stepInput(m, k)
	case modeHelp:
		e.mode = stepHelp(k)
	}

	e.drainPending()
	e.clampCursor()
	e.updateScroll()
}

func (e *Editor) setPending(a pendingAction) {
	e.pending = a
}

func (e *Editor) drainPending() {
	a := e.pending
	if a == nil {
		return
	}
	e.pending = nil
	switch act := a.(type) {
	case actionSaveAndQuit:
		if err := e.doc.Save(); err != nil {
			e.status = fmt.Sprintf("Save failed: %v", err)
		}
		e.shouldQuit = true
	case actionQuitWithoutSave:
		e.doc.Modified = false
		e.shouldQuit = true
	case actionSaveAs:
		if err := e.doc.SaveAs(act.name); err != nil {
			e.status = fmt.Sprintf("Save failed: %v", err)
			return
		}
		if e.quitAfterSave {
			e.quitAfterSave = false
			e.shouldQuit = true
		}
	case actionReplaceAll:
		n := e.doc.ReplaceAll(act.search, act.replace)
		e.history.Clear()
		e.status = fmt.Sprintf("Replaced %d occurrence(s)", n)
	}
}

func (e *Editor) handleNormal(k keyEvent) {
	if k.key == keyRune && k.mods&modCtrl != 0 {
		switch lowerRune(k.ch) {
		case 'h':
			e.tip = randomTip()
			e.mode = modeHelp{}
		case 'q':
			e.requestQuit()
		case 's':
			e.saveOrPrompt()
		case 'o':
			e.openFirstCandidate()
		case 'z':
			if off, ok := e.history.Undo(e.doc); ok {
				e.cursorLine, e.cursorCol = e.doc.LineColOf(off)
			}
		case 'y':
			if off, ok := e.history.Redo(e.doc); ok {
				e.cursorLine, e.cursorCol = e.doc.LineColOf(off)
			}
		case 'b':
			e.showLineNumbers = !e.showLineNumbers
		case 't':
			if k.mods&modShift != 0 {
				e.theme = nextTheme(e.theme.name)
			} else {
				e.showHelp = !e.showHelp
			}
		case 'w':
			e.wordWrap = !e.wordWrap
		case 'f':
			e.mode = modeSearch{}
		case '\\':
			e.mode = modeReplace{}
		case 'g':
			e.mode = modeGoToLine{}
		case 'k':
			e.killLine()
		case 'u':
			e.killToLineStart()
		case 'd':
			e.deleteForward()
		}
		return
	}

	switch k.key {
	case keyUp:
		if e.cursorLine > 0 {
			e.cursorLine--
			e.snapToIndent()
		}
	case keyDown:
		if e.cursorLine < e.doc.NumLines()-1 {
			e.cursorLine++
			e.snapToIndent()
		}
	case keyLeft:
		if e.cursorCol > 0 {
			e.cursorCol = e.prevColumn()
		} else if e.cursorLine > 0 {
			e.cursorLine--
			e.cursorCol = e.doc.LineLen(e.cursorLine)
		}
	case keyRight:
		if e.cursorCol < e.doc.LineLen(e.cursorLine) {
			e.cursorCol = e.nextColumn()
		} else if e.cursorLine < e.doc.NumLines()-1 {
			e.cursorLine++
			e.cursorCol = 0
		}
	case keyHome:
		indent := e.doc.Indent(e.cursorLine)
		if e.cursorCol > len(indent) {
			e.cursorCol = len(indent)
		} else {
			e.cursorCol = 0
		}
	case keyEnd:
		e.cursorCol = e.doc.LineLen(e.cursorLine)
	case keyPageUp:
		e.cursorLine -= max(e.screenHeight-2, 1)
		if e.cursorLine < 0 {
			e.cursorLine = 0
		}
	case keyPageDown:
		e.cursorLine += max(e.screenHeight-2, 1)
		if n := e.doc.NumLines() - 1; e.cursorLine > n {
			e.cursorLine = n
		}
	case keyEnter:
		e.insertNewline()
	case keyBackspace:
		e.backspace()
	case keyDelete:
		e.deleteForward()
	case keyTab:
		if e.settings.UseSpaces {
			e.insertText(strings.Repeat(" ", max(e.settings.TabSize, 1)))
		} else {
			e.insertText("\t")
		}
	case keyRune:
		if k.printable() {
			e.insertText(string(k.ch))
		}
	}
}

// snapToIndent keeps the cursor out of leading whitespace when moving
// between lines, matching how indentation-heavy files are navigated.
func (e *Editor) snapToIndent() {
	indent := e.doc.Indent(e.cursorLine)
	if indent != "" && e.cursorCol < len(indent) {
		e.cursorCol = len(indent)
	}
}

// prevColumn returns the column one rune to the left of the cursor.
func (e *Editor) prevColumn() int {
	line := e.doc.Line(e.cursorLine)
	col := min(e.cursorCol, len(line))
	_, size := utf8.DecodeLastRuneInString(line[:col])
	return col - size
}

// nextColumn returns the column one rune to the right of the cursor.
func (e *Editor) nextColumn() int {
	line := e.doc.Line(e.cursorLine)
	if e.cursorCol >= len(line) {
		return e.cursorCol
	}
	_, size := utf8.DecodeRuneInString(line[e.cursorCol:])
	return e.cursorCol + size
}

// insertText inserts at the cursor and pushes exactly one edit op.
func (e *Editor) insertText(text string) {
	pos := e.doc.OffsetOf(e.cursorLine, e.cursorCol)
	e.doc.Insert(pos, text)
	e.history.Push(editor.Op{Kind: editor.OpInsert, Offset: pos, Text: text})
	e.cursorLine, e.cursorCol = e.doc.LineColOf(pos + len(text))
}

// insertNewline splits the current line at the cursor. Auto-indent copies the
// old line's leading whitespace onto the new line as part of the same op, so
// one undo removes both.
func (e *Editor) insertNewline() {
	text := "\n"
	if e.settings.AutoIndent {
		text += e.doc.Indent(e.cursorLine)
	}
	pos := e.doc.OffsetOf(e.cursorLine, e.cursorCol)
	e.doc.Insert(pos, text)
	e.history.Push(editor.Op{Kind: editor.OpInsert, Offset: pos, Text: text})
	e.cursorLine++
	e.cursorCol = len(text) - 1
}

// backspace deletes the rune before the cursor, or joins with the previous
// line when at column 0.
func (e *Editor) backspace() {
	if e.cursorCol > 0 {
		col := e.prevColumn()
		pos := e.doc.OffsetOf(e.cursorLine, col)
		removed := e.doc.Delete(pos, e.cursorCol-col)
		if removed != "" {
			e.history.Push(editor.Op{Kind: editor.OpDelete, Offset: pos, Text: removed})
			e.cursorCol = col
		}
		return
	}
	if e.cursorLine == 0 {
		return
	}
	prevLen := e.doc.LineLen(e.cursorLine - 1)
	pos := e.doc.OffsetOf(e.cursorLine, 0) - 1
	removed := e.doc.Delete(pos, 1)
	if removed != "" {
		e.history.Push(editor.Op{Kind: editor.OpDelete, Offset: pos, Text: removed})
	}
	e.cursorLine--
	e.cursorCol = prevLen
}

// deleteForward removes the rune under the cursor, joining with the next line
// at end of line.
func (e *Editor) deleteForward() {
	pos := e.doc.OffsetOf(e.cursorLine, e.cursorCol)
	n := 1
	if e.cursorCol < e.doc.LineLen(e.cursorLine) {
		n = e.nextColumn() - e.cursorCol
	}
	removed := e.doc.Delete(pos, n)
	if removed != "" {
		e.history.Push(editor.Op{Kind: editor.OpDelete, Offset: pos, Text: removed})
	}
}

// killLine removes the whole current line including its terminator.
func (e *Editor) killLine() {
	if e.doc.NumLines() <= 1 {
		return
	}
	start := e.doc.OffsetOf(e.cursorLine, 0)
	removed := e.doc.Delete(start, e.doc.LineLen(e.cursorLine)+1)
	if removed != "" {
		e.history.Push(editor.Op{Kind: editor.OpDelete, Offset: start, Text: removed})
	}
}

// killToLineStart removes everything between the line start and the cursor.
func (e *Editor) killToLineStart() {
	if e.cursorCol == 0 {
		return
	}
	start := e.doc.OffsetOf(e.cursorLine, 0)
	removed := e.doc.Delete(start, e.cursorCol)
	if removed != "" {
		e.history.Push(editor.Op{Kind: editor.OpDelete, Offset: start, Text: removed})
		e.cursorCol = 0
	}
}

func (e *Editor) jumpToMatch(query string, caseSensitive, backward bool) {
	if line, col, ok := e.doc.Find(query, e.cursorLine, e.cursorCol, caseSensitive, backward); ok {
		e.cursorLine = line
		e.cursorCol = col
	}
}

// gotoLine jumps to a 1-based line number, clamped to document bounds.
func (e *Editor) gotoLine(n int) {
	if n < 1 {
		n = 1
	}
	if last := e.doc.NumLines(); n > last {
		n = last
	}
	e.cursorLine = n - 1
	e.cursorCol = 0
}

func (e *Editor) requestQuit() {
	switch {
	case e.doc.Modified && e.doc.Path != "":
		e.mode = modeConfirm{
			title:   "Quit",
			message: "Save changes?",
			options: []string{"Yes", "No", "Cancel"},
		}
	case e.doc.Modified:
		e.quitAfterSave = true
		e.mode = modeInput{title: "Save As", input: "untitled.txt"}
	default:
		e.shouldQuit = true
	}
}

func (e *Editor) saveOrPrompt() {
	if e.doc.Path == "" {
		e.mode = modeInput{title: "Save As", input: "untitled.txt"}
		return
	}
	if err := e.doc.Save(); err != nil {
		e.status = fmt.Sprintf("Save failed: %v", err)
	}
}

// listCandidates supplies open-file candidates; a variable so tests can
// substitute a fixed listing.
var listCandidates = defaultListCandidates

func defaultListCandidates() []string {
	entries, err := os.ReadDir(".")
	if err != nil {
		return nil
	}
	out := make([]string, 0, 10)
	for _, ent := range entries {
		if ent.IsDir() {
			continue
		}
		out = append(out, ent.Name())
		if len(out) == 10 {
			break
		}
	}
	return out
}

// openFirstCandidate loads the first candidate file with a known extension,
// leaving the current document unchanged if none load. Switching documents
// resets the cursor and clears the edit log; history never crosses files.
func (e *Editor) openFirstCandidate() {
	for _, path := range listCandidates() {
		if !editor.KnownExtension(path) {
			continue
		}
		doc, err := editor.OpenDocument(path)
		if err != nil {
			continue
		}
		e.doc = doc
		e.cursorLine = 0
		e.cursorCol = 0
		e.scroll = 0
		e.history.Clear()
		return
	}
}

// clampCursor keeps the cursor inside the document; clamping an already
// valid cursor is a no-op.
func (e *Editor) clampCursor() {
	if e.cursorLine < 0 {
		e.cursorLine = 0
	}
	if n := e.doc.NumLines() - 1; e.cursorLine > n {
		e.cursorLine = n
	}
	if e.cursorCol < 0 {
		e.cursorCol = 0
	}
	if n := e.doc.LineLen(e.cursorLine); e.cursorCol > n {
		e.cursorCol = n
	}
}

// viewHeight is the number of content rows: everything minus the title bar,
// status bar, and optional help bar.
func (e *Editor) viewHeight() int {
	h := e.screenHeight - 2
	if e.showHelp {
		h--
	}
	return max(h, 1)
}

// updateScroll keeps the cursor row inside the viewport without ever
// scrolling past the last line.
func (e *Editor) updateScroll() {
	view := e.viewHeight()
	if e.cursorLine < e.scroll {
		e.scroll = e.cursorLine
	}
	if e.cursorLine >= e.scroll+view {
		e.scroll = e.cursorLine - view + 1
	}
	if maxScroll := max(e.doc.NumLines()-view, 0); e.scroll > maxScroll {
		e.scroll = maxScroll
	}
	if e.scroll < 0 {
		e.scroll = 0
	}
}

// updateBlink advances the cursor blink phase; called on frame ticks so the
// cursor keeps blinking with no keystrokes.
func (e *Editor) updateBlink() {
	if time.Since(e.blinkAt) > blinkInterval {
		e.blinkOn = !e.blinkOn
		e.blinkAt = time.Now()
	}
}

func lowerRune(r rune) rune {
	if r >= 'A' && r <= 'Z' {
		return r + ('a' - 'A')
	}
	return r
}
