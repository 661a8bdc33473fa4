package main

import (
	"fmt"
	"strconv"
	"unicode/utf8"
)

// Modes are value types stepped one key event at a time. Each step returns
// the next mode; a step may additionally park at most one pending action in
// the controller's outbox, which is drained right after the transition.

type editorMode interface {
	modeName() string
}

type modeNormal struct{}

type modeSearch struct {
	query         string
	caseSensitive bool
	backward      bool
}

type modeReplace struct {
	search    string
	replace   string
	all       bool
	confirmed bool
}

type modeGoToLine struct {
	input string
}

type modeConfirm struct {
	title    string
	message  string
	options  []string
	selected int
}

type modeInput struct {
	title   string
	input   string
	history []string
}

type modeHelp struct{}

func (modeNormal) modeName() string   { return "normal" }
func (modeSearch) modeName() string   { return "search" }
func (modeReplace) modeName() string  { return "replace" }
func (modeGoToLine) modeName() string { return "goto" }
func (modeConfirm) modeName() string  { return "confirm" }
func (modeInput) modeName() string    { return "input" }
func (modeHelp) modeName() string     { return "help" }

// pendingAction is a one-shot deferred command produced by a mode step and
// executed by the controller once the transition completes.
type pendingAction interface {
	pendingAction()
}

type actionSaveAndQuit struct{}
type actionQuitWithoutSave struct{}
type actionSaveAs struct{ name string }
type actionReplaceAll struct{ search, replace string }

func (actionSaveAndQuit) pendingAction()     {}
func (actionQuitWithoutSave) pendingAction() {}
func (actionSaveAs) pendingAction()          {}
func (actionReplaceAll) pendingAction()      {}

func (e *Editor) stepSearch(m modeSearch, k keyEvent) editorMode {
	switch {
	case k.key == keyEscape:
		return modeNormal{}
	case k.key == keyEnter:
		if m.query != "" {
			e.jumpToMatch(m.query, m.caseSensitive, m.backward)
		}
		return modeNormal{}
	case k.key == keyBackspace:
		m.query = trimLastRune(m.query)
		return m
	case k.ctrlKey('c'):
		m.caseSensitive = !m.caseSensitive
		return m
	case k.ctrlKey('r'):
		m.backward = !m.backward
		return m
	case k.printable():
		// Search-as-you-type: every extension of the query re-searches from
		// the current cursor and jumps on success.
		m.query += string(k.ch)
		e.jumpToMatch(m.query, m.caseSensitive, m.backward)
		return m
	}
	return m
}

func (e *Editor) stepReplace(m modeReplace, k keyEvent) editorMode {
	switch {
	case k.key == keyEscape:
		return modeNormal{}
	case k.key == keyEnter:
		if !m.confirmed {
			m.confirmed = true
			return m
		}
		if m.all {
			e.setPending(actionReplaceAll{search: m.search, replace: m.replace})
		} else {
			n := e.doc.ReplaceAll(m.search, m.replace)
			e.history.Clear()
			e.status = fmt.Sprintf("Replaced %d occurrence(s)", n)
		}
		return modeNormal{}
	case k.key == keyTab:
		if m.search == "" {
			m.search = e.doc.Line(e.cursorLine)
		} else {
			m.replace = ""
		}
		return m
	case k.key == keyBackspace:
		if m.replace == "" && m.search != "" {
			m.search = trimLastRune(m.search)
		} else {
			m.replace = trimLastRune(m.replace)
		}
		return m
	case k.ctrlKey('a'):
		m.all = true
		return m
	case k.printable():
		switch {
		case m.confirmed:
			m.replace += string(k.ch)
		case m.replace == "" && m.search != "":
			m.replace += string(k.ch)
		default:
			m.search += string(k.ch)
		}
		return m
	}
	return m
}

func (e *Editor) stepGoToLine(m modeGoToLine, k keyEvent) editorMode {
	switch {
	case k.key == keyEscape:
		return modeNormal{}
	case k.key == keyEnter:
		if n, err := strconv.Atoi(m.input); err == nil {
			e.gotoLine(n)
		}
		return modeNormal{}
	case k.key == keyBackspace:
		m.input = trimLastRune(m.input)
		return m
	case k.printable() && k.ch >= '0' && k.ch <= '9':
		m.input += string(k.ch)
		return m
	}
	return m
}

func (e *Editor) stepConfirm(m modeConfirm, k keyEvent) editorMode {
	switch k.key {
	case keyEscape:
		return modeNormal{}
	case keyUp:
		if m.selected > 0 {
			m.selected--
		}
		return m
	case keyDown:
		if m.selected < len(m.options)-1 {
			m.selected++
		}
		return m
	case keyEnter:
		switch m.options[m.selected] {
		case "Yes":
			if e.doc.Path != "" {
				e.setPending(actionSaveAndQuit{})
				return modeNormal{}
			}
			// No path to save to: collect one first, then quit.
			e.quitAfterSave = true
			return modeInput{title: "Save As", input: "untitled.txt"}
		case "No":
			e.setPending(actionQuitWithoutSave{})
			return modeNormal{}
		default: // Cancel
			return modeNormal{}
		}
	}
	return m
}

func (e *Editor) stepInput(m modeInput, k keyEvent) editorMode {
	switch {
	case k.key == keyEscape:
		// Abandoning the prompt also abandons any quit-after-save intent.
		e.quitAfterSave = false
		return modeNormal{}
	case k.key == keyEnter:
		if m.input != "" {
			m.history = append(m.history, m.input)
		}
		e.setPending(actionSaveAs{name: m.input})
		return modeNormal{}
	case k.key == keyBackspace:
		m.input = trimLastRune(m.input)
		return m
	case k.key == keyTab:
		m.input += "\t"
		return m
	case k.printable():
		m.input += string(k.ch)
		return m
	}
	return m
}

func stepHelp(k keyEvent) editorMode {
	if k.key == keyEscape || k.ctrlKey('h') {
		return modeNormal{}
	}
	return modeHelp{}
}

// modeStatus is the active mode's display text for the status bar.
func modeStatus(m editorMode, line, col int) string {
	switch m := m.(type) {
	case modeSearch:
		return "Search: " + m.query
	case modeReplace:
		if m.confirmed {
			return fmt.Sprintf("Replace %q with %q? [Enter=yes, Ctrl+A=all, Esc=cancel]", m.search, m.replace)
		}
		return fmt.Sprintf("Replace: %s -> %s", m.search, m.replace)
	case modeGoToLine:
		return "Go to line: " + m.input
	case modeConfirm:
		return m.title + " - " + m.message
	case modeInput:
		return m.title + ": " + m.input
	default:
		return fmt.Sprintf("Ln %d, Col %d", line+1, col+1)
	}
}

func trimLastRune(s string) string {
	if s == "" {
		return s
	}
	_, size := utf8.DecodeLastRuneInString(s)
	return s[:len(s)-size]
}
