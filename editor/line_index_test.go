package editor

import "testing"

func rebuiltIndex(text string) (*gapBuffer, *lineIndex) {
	g := newGapBuffer([]byte(text))
	li := &lineIndex{}
	li.rebuild(&g)
	return &g, li
}

func TestLineIndexStarts(t *testing.T) {
	_, li := rebuiltIndex("one\ntwo\nthree\n")
	want := []int{0, 4, 8, 14}
	if len(li.starts) != len(want) {
		t.Fatalf("starts = %v, want %v", li.starts, want)
	}
	for i := range want {
		if li.starts[i] != want[i] {
			t.Fatalf("starts = %v, want %v", li.starts, want)
		}
	}
	if li.numLines() != 3 {
		t.Fatalf("numLines = %d, want 3", li.numLines())
	}
}

func TestLineIndexSingleLine(t *testing.T) {
	_, li := rebuiltIndex("x\n")
	if li.numLines() != 1 {
		t.Fatalf("numLines = %d, want 1", li.numLines())
	}
	s, e := li.lineBounds(0)
	if s != 0 || e != 2 {
		t.Fatalf("lineBounds(0) = (%d, %d), want (0, 2)", s, e)
	}
}

func TestLineOfRoundTrip(t *testing.T) {
	text := "alpha\n\nbeta gamma\nd\n"
	_, li := rebuiltIndex(text)
	for off := 0; off <= len(text); off++ {
		line, col := li.lineOf(off)
		if got := li.start(line) + col; got != off && off < len(text) {
			t.Fatalf("lineOf(%d) = (%d, %d); start+col = %d", off, line, col, got)
		}
		s, e := li.lineBounds(line)
		if off < len(text) && (off < s || off >= e) {
			t.Fatalf("offset %d not inside bounds (%d, %d) of line %d", off, s, e, line)
		}
	}
}

func TestLineIndexClamps(t *testing.T) {
	_, li := rebuiltIndex("ab\ncd\n")
	if line, col := li.lineOf(-5); line != 0 || col != 0 {
		t.Fatalf("lineOf(-5) = (%d, %d), want (0, 0)", line, col)
	}
	if line, _ := li.lineOf(999); line != li.numLines()-1 {
		t.Fatalf("lineOf past end landed on line %d", line)
	}
	s, _ := li.lineBounds(99)
	if s != 3 {
		t.Fatalf("lineBounds clamp: start = %d, want 3", s)
	}
}
