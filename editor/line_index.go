package editor

import "sort"

// lineIndex maps between flat byte offsets and (line, column) pairs. It holds
// the byte offset of every line start plus a trailing sentinel equal to the
// total document length, so it always has at least two entries for a
// normalized document. The index is rebuilt in full after every mutation;
// rebuild is linear and edits happen at interactive speed.
type lineIndex struct {
	starts []int
}

func (li *lineIndex) rebuild(g *gapBuffer) {
	total := g.Len()
	li.starts = append(li.starts[:0], 0)
	text := g.Range(0, total)
	for i, b := range text {
		if b == '\n' && i+1 < total {
			li.starts = append(li.starts, i+1)
		}
	}
	li.starts = append(li.starts, total)
}

func (li *lineIndex) numLines() int {
	if len(li.starts) < 2 {
		return 1
	}
	return len(li.starts) - 1
}

// lineOf returns the line containing off and the column within it. Offsets
// out of range clamp to the nearest valid position.
func (li *lineIndex) lineOf(off int) (int, int) {
	n := li.numLines()
	if len(li.starts) < 2 {
		return 0, 0
	}
	total := li.starts[len(li.starts)-1]
	if off < 0 {
		off = 0
	}
	if off > total {
		off = total
	}
	// First line whose successor starts past off.
	i := sort.Search(n, func(i int) bool { return li.starts[i+1] > off })
	if i >= n {
		i = n - 1
	}
	return i, off - li.starts[i]
}

// lineBounds returns the [start, end) byte range of a line, including its
// terminator. Out-of-range lines clamp to the last valid line.
func (li *lineIndex) lineBounds(line int) (int, int) {
	if len(li.starts) < 2 {
		return 0, 0
	}
	n := li.numLines()
	if line < 0 {
		line = 0
	}
	if line >= n {
		line = n - 1
	}
	return li.starts[line], li.starts[line+1]
}

func (li *lineIndex) start(line int) int {
	s, _ := li.lineBounds(line)
	return s
}
