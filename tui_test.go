package main

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestTranslateKey(t *testing.T) {
	cases := []struct {
		name string
		ev   *tcell.EventKey
		want keyEvent
	}{
		{
			"plain rune",
			tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone),
			keyEvent{key: keyRune, ch: 'x', press: true},
		},
		{
			"ctrl letter",
			tcell.NewEventKey(tcell.KeyCtrlF, 0, tcell.ModCtrl),
			keyEvent{key: keyRune, ch: 'f', mods: modCtrl, press: true},
		},
		{
			"ctrl backslash",
			tcell.NewEventKey(tcell.KeyCtrlBackslash, 0, tcell.ModCtrl),
			keyEvent{key: keyRune, ch: '\\', mods: modCtrl, press: true},
		},
		{
			"backspace byte is ctrl-h",
			tcell.NewEventKey(tcell.KeyBackspace, 0, tcell.ModNone),
			keyEvent{key: keyRune, ch: 'h', mods: modCtrl, press: true},
		},
		{
			"del byte is backspace",
			tcell.NewEventKey(tcell.KeyBackspace2, 0, tcell.ModNone),
			keyEvent{key: keyBackspace, press: true},
		},
		{
			"enter",
			tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone),
			keyEvent{key: keyEnter, press: true},
		},
		{
			"arrow",
			tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone),
			keyEvent{key: keyUp, press: true},
		},
		{
			"escape",
			tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone),
			keyEvent{key: keyEscape, press: true},
		},
	}
	for _, tc := range cases {
		got, ok := translateKey(tc.ev)
		if !ok {
			t.Fatalf("%s: not translated", tc.name)
		}
		if got != tc.want {
			t.Fatalf("%s: got %+v, want %+v", tc.name, got, tc.want)
		}
	}
	if _, ok := translateKey(tcell.NewEventKey(tcell.KeyF1, 0, tcell.ModNone)); ok {
		t.Fatal("function keys should not translate")
	}
}

func TestVisualCol(t *testing.T) {
	if got := visualCol("a\tb", 2, 4); got != 4 {
		t.Fatalf("tab expansion: got %d, want 4", got)
	}
	if got := visualCol("日x", 3, 4); got != 2 {
		t.Fatalf("wide rune: got %d, want 2", got)
	}
	if got := visualCol("abc", 0, 4); got != 0 {
		t.Fatalf("start of line: got %d, want 0", got)
	}
}

func TestExpandTabs(t *testing.T) {
	if got := expandTabs("a\tb", 4); got != "a   b" {
		t.Fatalf("expandTabs = %q, want %q", got, "a   b")
	}
	if got := expandTabs("\t", 4); got != "    " {
		t.Fatalf("expandTabs = %q, want 4 spaces", got)
	}
	if got := expandTabs("plain", 4); got != "plain" {
		t.Fatalf("expandTabs = %q, want unchanged", got)
	}
}

func TestPadRight(t *testing.T) {
	if got := padRight("ab", 4); got != "ab  " {
		t.Fatalf("pad: got %q", got)
	}
	if got := padRight("abcdef", 4); got != "abcd" {
		t.Fatalf("truncate: got %q", got)
	}
}
