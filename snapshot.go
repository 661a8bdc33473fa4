package main

// renderSnapshot is the read-only view handed to the renderer each frame.
// The renderer never mutates editor state through it.
type renderSnapshot struct {
	lines      []string // visible line range only
	firstLine  int
	totalLines int

	cursorLine int
	cursorCol  int
	blinkOn    bool

	mode       editorMode
	statusText string
	fileName   string
	language   string
	modified   bool

	showLineNumbers bool
	showHelp        bool
	wordWrap        bool
	theme           Theme
	tip             string
	tabSize         int
	highlightLine   bool
}

// snapshot captures the state needed to paint one frame.
func (e *Editor) snapshot() renderSnapshot {
	view := e.viewHeight()
	total := e.doc.NumLines()
	first := min(e.scroll, max(total-1, 0))
	lines := make([]string, 0, view)
	for i := first; i < total && i < first+view; i++ {
		lines = append(lines, e.doc.Line(i))
	}
	statusText := e.status
	if statusText == "" {
		statusText = modeStatus(e.mode, e.cursorLine, e.cursorCol)
	}
	return renderSnapshot{
		lines:           lines,
		firstLine:       first,
		totalLines:      total,
		cursorLine:      e.cursorLine,
		cursorCol:       e.cursorCol,
		blinkOn:         e.blinkOn,
		mode:            e.mode,
		statusText:      statusText,
		fileName:        e.doc.FileName(),
		language:        e.doc.Language,
		modified:        e.doc.Modified,
		showLineNumbers: e.showLineNumbers,
		showHelp:        e.showHelp,
		wordWrap:        e.wordWrap,
		theme:           e.theme,
		tip:             e.tip,
		tabSize:         max(e.settings.TabSize, 1),
		highlightLine:   e.settings.HighlightCurrentLine,
	}
}
