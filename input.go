package main

import "unicode"

type modMask uint8

const (
	modShift modMask = 1 << iota
	modCtrl
	modAlt
)

type keyCode int

const (
	keyNone keyCode = iota
	keyRune
	keyUp
	keyDown
	keyLeft
	keyRight
	keyHome
	keyEnd
	keyPageUp
	keyPageDown
	keyEnter
	keyBackspace
	keyDelete
	keyTab
	keyEscape
)

// keyEvent is one decoded keyboard event. ch carries the character when key
// is keyRune. Only press events drive mode transitions.
type keyEvent struct {
	key   keyCode
	ch    rune
	mods  modMask
	press bool
}

// printable reports whether the event should be treated as text input.
func (k keyEvent) printable() bool {
	return k.key == keyRune && k.mods&modCtrl == 0 && !unicode.IsControl(k.ch)
}

// ctrlKey reports whether the event is Ctrl plus the given character.
func (k keyEvent) ctrlKey(ch rune) bool {
	return k.key == keyRune && k.mods&modCtrl != 0 && unicode.ToLower(k.ch) == ch
}
