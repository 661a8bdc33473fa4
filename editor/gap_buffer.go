package editor

// gapBuffer stores the document as two byte runs whose concatenation is the
// full text; the gap sits logically at len(before). All positions are offsets
// into that concatenation, never indices into the runs themselves.
type gapBuffer struct {
	before []byte
	after  []byte
}

func newGapBuffer(text []byte) gapBuffer {
	return gapBuffer{before: append([]byte(nil), text...)}
}

func (g *gapBuffer) Len() int {
	return len(g.before) + len(g.after)
}

// moveGap relocates the gap so the next edit lands at off. Cost is
// proportional to the distance moved, not the document length.
func (g *gapBuffer) moveGap(off int) {
	if off < 0 {
		off = 0
	}
	if off > g.Len() {
		off = g.Len()
	}
	switch {
	case off < len(g.before):
		n := len(g.before) - off
		g.after = append(g.after, make([]byte, n)...)
		copy(g.after[n:], g.after[:len(g.after)-n])
		copy(g.after[:n], g.before[off:])
		g.before = g.before[:off]
	case off > len(g.before):
		n := off - len(g.before)
		g.before = append(g.before, g.after[:n]...)
		g.after = g.after[n:]
	}
}

func (g *gapBuffer) Insert(off int, text string) {
	if text == "" {
		return
	}
	g.moveGap(off)
	g.before = append(g.before, text...)
}

// Delete drops up to n bytes starting at off. Deleting past the end of the
// document is a silent no-op for the excess.
func (g *gapBuffer) Delete(off, n int) {
	if n <= 0 {
		return
	}
	g.moveGap(off)
	if n > len(g.after) {
		n = len(g.after)
	}
	g.after = g.after[n:]
}

// Range returns the bytes in [start, end), clamped to valid bounds, stitching
// the result across the gap when needed.
func (g *gapBuffer) Range(start, end int) []byte {
	if start < 0 {
		start = 0
	}
	if end > g.Len() {
		end = g.Len()
	}
	if end <= start {
		return nil
	}
	out := make([]byte, 0, end-start)
	if start < len(g.before) {
		stop := min(end, len(g.before))
		out = append(out, g.before[start:stop]...)
	}
	if end > len(g.before) {
		from := max(start-len(g.before), 0)
		out = append(out, g.after[from:end-len(g.before)]...)
	}
	return out
}

func (g *gapBuffer) byteAt(i int) byte {
	if i < 0 || i >= g.Len() {
		return 0
	}
	if i < len(g.before) {
		return g.before[i]
	}
	return g.after[i-len(g.before)]
}

func (g *gapBuffer) String() string {
	return string(g.Range(0, g.Len()))
}
