package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
	runewidth "github.com/mattn/go-runewidth"

	"nova/editor"
)

func runTUI(path string) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	settings := loadSettings()
	var doc *editor.Document
	if path == "" {
		doc = editor.NewDocument()
	} else {
		doc = editor.LoadDocument(path)
	}
	w, h := screen.Size()
	ed := newEditor(doc, settings, w, h)

	// Frame ticks: the blink timer advances even with no keystrokes.
	ticker := time.NewTicker(blinkInterval / 2)
	defer ticker.Stop()
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			select {
			case <-ticker.C:
				_ = screen.PostEvent(tcell.NewEventInterrupt(nil))
			case <-done:
				return
			}
		}
	}()

	for {
		draw(screen, ed)
		switch ev := screen.PollEvent().(type) {
		case *tcell.EventResize:
			ed.screenWidth, ed.screenHeight = ev.Size()
			screen.Sync()
		case *tcell.EventKey:
			if k, ok := translateKey(ev); ok {
				ed.HandleKey(k)
			}
		case *tcell.EventInterrupt:
			ed.updateBlink()
		}
		if ed.shouldQuit {
			return nil
		}
	}
}

func translateKey(ev *tcell.EventKey) (keyEvent, bool) {
	var mods modMask
	if ev.Modifiers()&tcell.ModShift != 0 {
		mods |= modShift
	}
	if ev.Modifiers()&tcell.ModCtrl != 0 {
		mods |= modCtrl
	}
	if ev.Modifiers()&tcell.ModAlt != 0 {
		mods |= modAlt
	}

	switch ev.Key() {
	case tcell.KeyUp:
		return keyEvent{key: keyUp, mods: mods, press: true}, true
	case tcell.KeyDown:
		return keyEvent{key: keyDown, mods: mods, press: true}, true
	case tcell.KeyLeft:
		return keyEvent{key: keyLeft, mods: mods, press: true}, true
	case tcell.KeyRight:
		return keyEvent{key: keyRight, mods: mods, press: true}, true
	case tcell.KeyHome:
		return keyEvent{key: keyHome, mods: mods, press: true}, true
	case tcell.KeyEnd:
		return keyEvent{key: keyEnd, mods: mods, press: true}, true
	case tcell.KeyPgUp:
		return keyEvent{key: keyPageUp, mods: mods, press: true}, true
	case tcell.KeyPgDn:
		return keyEvent{key: keyPageDown, mods: mods, press: true}, true
	case tcell.KeyEnter:
		return keyEvent{key: keyEnter, mods: mods, press: true}, true
	case tcell.KeyTAB:
		return keyEvent{key: keyTab, mods: mods, press: true}, true
	case tcell.KeyBacktab:
		return keyEvent{key: keyTab, mods: mods | modShift, press: true}, true
	case tcell.KeyBackspace:
		// 0x08: most terminals deliver Ctrl+H this way.
		return keyEvent{key: keyRune, ch: 'h', mods: mods | modCtrl, press: true}, true
	case tcell.KeyBackspace2:
		return keyEvent{key: keyBackspace, mods: mods, press: true}, true
	case tcell.KeyDelete:
		return keyEvent{key: keyDelete, mods: mods, press: true}, true
	case tcell.KeyEscape:
		return keyEvent{key: keyEscape, mods: mods, press: true}, true
	case tcell.KeyCtrlBackslash:
		return keyEvent{key: keyRune, ch: '\\', mods: mods | modCtrl, press: true}, true
	case tcell.KeyRune:
		return keyEvent{key: keyRune, ch: ev.Rune(), mods: mods, press: true}, true
	}
	if k := ev.Key(); k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ {
		ch := rune('a' + int(k-tcell.KeyCtrlA))
		return keyEvent{key: keyRune, ch: ch, mods: mods | modCtrl, press: true}, true
	}
	return keyEvent{}, false
}

func draw(s tcell.Screen, e *Editor) {
	w, h := s.Size()
	e.screenWidth, e.screenHeight = w, h
	if w < 10 || h < 4 {
		s.Clear()
		s.Show()
		return
	}
	snap := e.snapshot()
	th := snap.theme

	base := tcell.StyleDefault.Background(th.background).Foreground(th.foreground)
	gutter := tcell.StyleDefault.Background(th.background).Foreground(th.lineNumber)
	gutterCur := tcell.StyleDefault.Background(th.background).Foreground(th.lineNumberCurrent)
	curLine := tcell.StyleDefault.Background(th.cursorLine).Foreground(th.foreground)
	titleStyle := tcell.StyleDefault.Background(th.titleBg).Foreground(th.titleFg)
	statusStyle := tcell.StyleDefault.Background(th.statusBarBg).Foreground(th.statusBarFg)
	helpStyle := tcell.StyleDefault.Background(th.helpBarBg).Foreground(th.helpBarFg)

	modified := ""
	if snap.modified {
		modified = " [Modified]"
	}
	drawText(s, 0, 0, padRight(fmt.Sprintf(" Nova - %s%s ", snap.fileName, modified), w), titleStyle)

	gutterW := 0
	if snap.showLineNumbers {
		gutterW = 5
	}
	contentH := h - 2
	if snap.showHelp {
		contentH--
	}
	contentW := max(w-gutterW, 1)
	cursorX, cursorY := -1, -1
	row := 0
	for i := 0; i < len(snap.lines) && row < contentH; i++ {
		ln := snap.firstLine + i
		current := ln == snap.cursorLine
		lineStyle := base
		gutterStyle := gutter
		if current {
			gutterStyle = gutterCur
			if snap.highlightLine {
				lineStyle = curLine
				gutterStyle = gutterStyle.Background(th.cursorLine)
			}
		}
		expanded := expandTabs(snap.lines[i], snap.tabSize)
		rows := 1
		if snap.wordWrap {
			rows = (runewidth.StringWidth(expanded) + contentW - 1) / contentW
			rows = min(max(rows, 1), contentH-row)
		}
		for rr := 0; rr < rows; rr++ {
			fillRow(s, row+1+rr, w, lineStyle)
		}
		if snap.showLineNumbers {
			drawText(s, 0, row+1, fmt.Sprintf("%4d ", ln+1), gutterStyle)
		}
		if snap.wordWrap {
			drawWrapped(s, gutterW, row+1, contentW, rows, expanded, lineStyle)
		} else {
			drawClipped(s, gutterW, row+1, contentW, expanded, lineStyle)
		}
		if current {
			vis := visualCol(snap.lines[i], snap.cursorCol, snap.tabSize)
			if snap.wordWrap {
				if vis/contentW < rows {
					cursorY = row + 1 + vis/contentW
					cursorX = gutterW + vis%contentW
				}
			} else if vis < contentW {
				cursorY = row + 1
				cursorX = gutterW + vis
			}
		}
		row += rows
	}
	for ; row < contentH; row++ {
		fillRow(s, row+1, w, base)
	}

	statusY := h - 1
	if snap.showHelp {
		statusY = h - 2
		var sb strings.Builder
		for _, sc := range helpShortcuts {
			fmt.Fprintf(&sb, " %s %s ", sc.key, sc.action)
		}
		if snap.tip != "" {
			sb.WriteString("| " + snap.tip)
		}
		drawText(s, 0, h-1, padRight(sb.String(), w), helpStyle)
	}
	right := fmt.Sprintf(" %s | Ln %d, Col %d ", snap.language, snap.cursorLine+1, snap.cursorCol+1)
	left := padRight(" "+snap.statusText, max(w-len(right), 0))
	drawText(s, 0, statusY, padRight(left+right, w), statusStyle)

	switch m := snap.mode.(type) {
	case modeHelp:
		drawHelpDialog(s, th, w, h)
	case modeConfirm:
		drawConfirmDialog(s, th, w, h, m)
	case modeInput:
		drawInputDialog(s, th, w, h, m.title, m.input)
	case modeGoToLine:
		drawInputDialog(s, th, w, h, "Go to Line", m.input)
	}

	if snap.blinkOn && cursorY >= 0 && cursorX < w && dialogFree(snap.mode) {
		s.ShowCursor(cursorX, cursorY)
	} else {
		s.HideCursor()
	}
	s.Show()
}

func dialogFree(m editorMode) bool {
	switch m.(type) {
	case modeHelp, modeConfirm, modeInput, modeGoToLine:
		return false
	}
	return true
}

// visualCol converts a byte column into a screen column, expanding tabs and
// accounting for wide runes.
func visualCol(line string, byteCol, tabSize int) int {
	vis := 0
	for i, r := range line {
		if i >= byteCol {
			break
		}
		if r == '\t' {
			vis = (vis/tabSize + 1) * tabSize
			continue
		}
		vis += runewidth.RuneWidth(r)
	}
	return vis
}

// expandTabs replaces tabs with spaces up to the next tab stop, measured in
// screen cells.
func expandTabs(line string, tabSize int) string {
	if !strings.Contains(line, "\t") {
		return line
	}
	var b strings.Builder
	vis := 0
	for _, r := range line {
		if r == '\t' {
			next := (vis/tabSize + 1) * tabSize
			for vis < next {
				b.WriteByte(' ')
				vis++
			}
			continue
		}
		b.WriteRune(r)
		vis += runewidth.RuneWidth(r)
	}
	return b.String()
}

func drawClipped(s tcell.Screen, x, y, maxW int, text string, st tcell.Style) {
	vis := 0
	for _, r := range text {
		rw := runewidth.RuneWidth(r)
		if rw <= 0 {
			continue
		}
		if vis+rw > maxW {
			break
		}
		s.SetContent(x+vis, y, r, nil, st)
		vis += rw
	}
}

// drawWrapped flows text across up to maxRows rows of maxW cells.
func drawWrapped(s tcell.Screen, x, y, maxW, maxRows int, text string, st tcell.Style) {
	row, vis := 0, 0
	for _, r := range text {
		rw := runewidth.RuneWidth(r)
		if rw <= 0 {
			continue
		}
		if vis+rw > maxW {
			row++
			vis = 0
			if row >= maxRows {
				return
			}
		}
		s.SetContent(x+vis, y+row, r, nil, st)
		vis += rw
	}
}

func drawText(s tcell.Screen, x, y int, text string, st tcell.Style) {
	for _, r := range text {
		w := runewidth.RuneWidth(r)
		if w <= 0 {
			continue
		}
		s.SetContent(x, y, r, nil, st)
		x += w
	}
}

func fillRow(s tcell.Screen, y, w int, st tcell.Style) {
	for x := 0; x < w; x++ {
		s.SetContent(x, y, ' ', nil, st)
	}
}

func padRight(s string, w int) string {
	n := runewidth.StringWidth(s)
	if n >= w {
		return runewidth.Truncate(s, w, "")
	}
	return s + strings.Repeat(" ", w-n)
}

func drawBox(s tcell.Screen, th Theme, x, y, boxW, boxH int, title string) {
	bg := tcell.StyleDefault.Background(th.background).Foreground(th.foreground)
	border := tcell.StyleDefault.Background(th.background).Foreground(th.border)
	for yy := 0; yy < boxH; yy++ {
		for xx := 0; xx < boxW; xx++ {
			ch := ' '
			st := bg
			if yy == 0 || yy == boxH-1 || xx == 0 || xx == boxW-1 {
				st = border
				switch {
				case yy == 0 && xx == 0:
					ch = '╔'
				case yy == 0 && xx == boxW-1:
					ch = '╗'
				case yy == boxH-1 && xx == 0:
					ch = '╚'
				case yy == boxH-1 && xx == boxW-1:
					ch = '╝'
				case yy == 0 || yy == boxH-1:
					ch = '═'
				default:
					ch = '║'
				}
			}
			s.SetContent(x+xx, y+yy, ch, nil, st)
		}
	}
	if title != "" {
		ts := tcell.StyleDefault.Background(th.background).Foreground(th.accent)
		drawText(s, x+2, y, " "+title+" ", ts)
	}
}

func drawHelpDialog(s tcell.Screen, th Theme, w, h int) {
	boxW := min(60, w-2)
	boxH := min(len(helpLines)+4, h-2)
	x := (w - boxW) / 2
	y := (h - boxH) / 2
	drawBox(s, th, x, y, boxW, boxH, "Help - Press Ctrl+H or ESC to close")
	st := tcell.StyleDefault.Background(th.background).Foreground(th.foreground)
	for i, line := range helpLines {
		if i+2 >= boxH-1 {
			break
		}
		drawText(s, x+2, y+2+i, runewidth.Truncate(line, boxW-4, ""), st)
	}
}

func drawInputDialog(s tcell.Screen, th Theme, w, h int, title, input string) {
	boxW := min(34, w-2)
	boxH := 3
	x := (w - boxW) / 2
	y := (h - boxH) / 2
	drawBox(s, th, x, y, boxW, boxH, title)
	st := tcell.StyleDefault.Background(th.background).Foreground(th.foreground)
	drawText(s, x+2, y+1, runewidth.Truncate(input, boxW-4, ""), st)
}

func drawConfirmDialog(s tcell.Screen, th Theme, w, h int, m modeConfirm) {
	boxW := min(40, w-2)
	boxH := len(m.options) + 4
	x := (w - boxW) / 2
	y := (h - boxH) / 2
	drawBox(s, th, x, y, boxW, boxH, m.title)
	st := tcell.StyleDefault.Background(th.background).Foreground(th.foreground)
	sel := tcell.StyleDefault.Background(th.selection).Foreground(th.foreground)
	drawText(s, x+2, y+1, runewidth.Truncate(m.message, boxW-4, ""), st)
	for i, opt := range m.options {
		style := st
		marker := "  "
		if i == m.selected {
			style = sel
			marker = "> "
		}
		drawText(s, x+2, y+2+i, padRight(marker+opt, boxW-4), style)
	}
}
