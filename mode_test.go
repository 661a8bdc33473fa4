package main

import (
	"path/filepath"
	"strings"
	"testing"

	"nova/editor"
)

// newTestEditor builds an editor over an unnamed document holding text. The
// document keeps its own terminator, so a trailing newline in text would
// otherwise read back as an extra empty line.
func newTestEditor(text string) *Editor {
	doc := editor.NewDocument()
	if t := strings.TrimSuffix(text, "\n"); t != "" {
		doc.Insert(0, t)
	}
	doc.Modified = false
	return newEditor(doc, defaultSettings(), 80, 24)
}

func ctrl(ch rune) keyEvent {
	return keyEvent{key: keyRune, ch: ch, mods: modCtrl, press: true}
}

func runeKey(ch rune) keyEvent {
	return keyEvent{key: keyRune, ch: ch, press: true}
}

func special(k keyCode) keyEvent {
	return keyEvent{key: k, press: true}
}

func typeText(e *Editor, s string) {
	for _, r := range s {
		e.HandleKey(runeKey(r))
	}
}

func expectCursor(t *testing.T, e *Editor, line, col int) {
	t.Helper()
	if e.cursorLine != line || e.cursorCol != col {
		t.Fatalf("cursor = (%d, %d), want (%d, %d)", e.cursorLine, e.cursorCol, line, col)
	}
}

func TestSearchAsYouType(t *testing.T) {
	e := newTestEditor("alpha\nbeta\ngamma\n")
	e.HandleKey(ctrl('f'))
	if _, ok := e.mode.(modeSearch); !ok {
		t.Fatalf("mode = %s, want search", e.mode.modeName())
	}
	typeText(e, "ga")
	expectCursor(t, e, 2, 0)
	e.HandleKey(special(keyEnter))
	if _, ok := e.mode.(modeNormal); !ok {
		t.Fatalf("mode = %s, want normal", e.mode.modeName())
	}
}

func TestSearchEscapeLeavesMode(t *testing.T) {
	e := newTestEditor("one\n")
	e.HandleKey(ctrl('f'))
	e.HandleKey(special(keyEscape))
	if _, ok := e.mode.(modeNormal); !ok {
		t.Fatalf("mode = %s, want normal", e.mode.modeName())
	}
}

func TestSearchBackspaceEditsQuery(t *testing.T) {
	e := newTestEditor("one\n")
	e.HandleKey(ctrl('f'))
	typeText(e, "ab")
	e.HandleKey(special(keyBackspace))
	m, ok := e.mode.(modeSearch)
	if !ok || m.query != "a" {
		t.Fatalf("query = %q, want %q", m.query, "a")
	}
}

// The first typed character lands in the search field; once the search field
// is non-empty, further characters fill the replacement until Enter confirms.
func TestReplaceFieldRouting(t *testing.T) {
	e := newTestEditor("aaa\n")
	e.HandleKey(ctrl('\\'))
	typeText(e, "ab")
	m, ok := e.mode.(modeReplace)
	if !ok {
		t.Fatalf("mode = %s, want replace", e.mode.modeName())
	}
	if m.search != "a" || m.replace != "b" {
		t.Fatalf("fields = (%q, %q), want (%q, %q)", m.search, m.replace, "a", "b")
	}
}

func TestReplaceExecutes(t *testing.T) {
	e := newTestEditor("foo bar foo\nfoo\n")
	e.mode = modeReplace{search: "foo", replace: "X"}
	e.HandleKey(special(keyEnter)) // confirm
	e.HandleKey(special(keyEnter)) // execute
	if got := e.doc.Line(0); got != "X bar X" {
		t.Fatalf("line 0 = %q, want %q", got, "X bar X")
	}
	if e.history.Len() != 0 {
		t.Fatalf("history has %d entries after replace-all", e.history.Len())
	}
	if !strings.Contains(e.status, "3") {
		t.Fatalf("status = %q, want a count of 3", e.status)
	}
	if _, ok := e.mode.(modeNormal); !ok {
		t.Fatalf("mode = %s, want normal", e.mode.modeName())
	}
}

func TestReplaceTabPullsCurrentLine(t *testing.T) {
	e := newTestEditor("needle\n")
	e.HandleKey(ctrl('\\'))
	e.HandleKey(special(keyTab))
	m := e.mode.(modeReplace)
	if m.search != "needle" {
		t.Fatalf("search = %q, want %q", m.search, "needle")
	}
}

func TestGoToLineDigitsOnly(t *testing.T) {
	e := newTestEditor("a\nb\nc\nd\ne\n")
	e.HandleKey(ctrl('g'))
	typeText(e, "x3y")
	m, ok := e.mode.(modeGoToLine)
	if !ok || m.input != "3" {
		t.Fatalf("input = %q, want %q", m.input, "3")
	}
	e.HandleKey(special(keyEnter))
	expectCursor(t, e, 2, 0)
}

func TestGoToLineClamps(t *testing.T) {
	e := newTestEditor("a\nb\nc\n")
	e.HandleKey(ctrl('g'))
	typeText(e, "99")
	e.HandleKey(special(keyEnter))
	expectCursor(t, e, 2, 0)
}

func TestConfirmSelectionMoves(t *testing.T) {
	e := newTestEditor("x\n")
	e.mode = modeConfirm{title: "Quit", message: "Save changes?", options: []string{"Yes", "No", "Cancel"}}
	e.HandleKey(special(keyDown))
	e.HandleKey(special(keyDown))
	e.HandleKey(special(keyDown)) // clamps at the last option
	m := e.mode.(modeConfirm)
	if m.selected != 2 {
		t.Fatalf("selected = %d, want 2", m.selected)
	}
	e.HandleKey(special(keyUp))
	e.HandleKey(special(keyEnter)) // "No"
	if !e.shouldQuit {
		t.Fatal("choosing No did not quit")
	}
	if e.doc.Modified {
		t.Fatal("quit without save left modified flag")
	}
}

func TestConfirmCancel(t *testing.T) {
	e := newTestEditor("x\n")
	e.mode = modeConfirm{options: []string{"Yes", "No", "Cancel"}}
	e.HandleKey(special(keyDown))
	e.HandleKey(special(keyDown))
	e.HandleKey(special(keyEnter))
	if e.shouldQuit {
		t.Fatal("cancel quit the editor")
	}
	if _, ok := e.mode.(modeNormal); !ok {
		t.Fatalf("mode = %s, want normal", e.mode.modeName())
	}
}

// Quitting an unnamed modified document routes through the save-as prompt and
// quits once the save succeeds.
func TestQuitUnnamedModifiedSavesThenQuits(t *testing.T) {
	e := newTestEditor("")
	typeText(e, "x")
	e.HandleKey(ctrl('q'))
	m, ok := e.mode.(modeInput)
	if !ok || m.title != "Save As" {
		t.Fatalf("mode = %s, want Save As input", e.mode.modeName())
	}
	for range m.input {
		e.HandleKey(special(keyBackspace))
	}
	path := filepath.Join(t.TempDir(), "out.txt")
	typeText(e, path)
	e.HandleKey(special(keyEnter))
	if !e.shouldQuit {
		t.Fatal("editor did not quit after save")
	}
	if e.doc.Path != path {
		t.Fatalf("Path = %q, want %q", e.doc.Path, path)
	}
}

func TestInputEscapeAbandonsQuit(t *testing.T) {
	e := newTestEditor("")
	typeText(e, "x")
	e.HandleKey(ctrl('q'))
	e.HandleKey(special(keyEscape))
	if e.shouldQuit || e.quitAfterSave {
		t.Fatal("escape did not cancel the pending quit")
	}
	// A later plain save-as must not quit.
	e.HandleKey(ctrl('s'))
	for range "untitled.txt" {
		e.HandleKey(special(keyBackspace))
	}
	typeText(e, filepath.Join(t.TempDir(), "keep.txt"))
	e.HandleKey(special(keyEnter))
	if e.shouldQuit {
		t.Fatal("plain save quit the editor")
	}
}

func TestHelpDismiss(t *testing.T) {
	e := newTestEditor("")
	e.HandleKey(ctrl('h'))
	if _, ok := e.mode.(modeHelp); !ok {
		t.Fatalf("mode = %s, want help", e.mode.modeName())
	}
	typeText(e, "zzz") // ignored
	if _, ok := e.mode.(modeHelp); !ok {
		t.Fatal("help dismissed by plain keys")
	}
	e.HandleKey(ctrl('h'))
	if _, ok := e.mode.(modeNormal); !ok {
		t.Fatalf("mode = %s, want normal", e.mode.modeName())
	}
}

func TestModeStatusText(t *testing.T) {
	if got := modeStatus(modeSearch{query: "abc"}, 0, 0); got != "Search: abc" {
		t.Fatalf("search status = %q", got)
	}
	if got := modeStatus(modeNormal{}, 4, 2); got != "Ln 5, Col 3" {
		t.Fatalf("normal status = %q", got)
	}
}

func TestTrimLastRune(t *testing.T) {
	if got := trimLastRune("ab日"); got != "ab" {
		t.Fatalf("trimLastRune = %q, want %q", got, "ab")
	}
	if got := trimLastRune(""); got != "" {
		t.Fatalf("trimLastRune empty = %q", got)
	}
}
