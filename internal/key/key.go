package key

import (
	"strconv"
	"strings"

	"github.com/gg582/hanic/internal/linux"
)

// Code is an X11/XKB hardware keycode (evdev code + 8).
type Code uint16

type Modifiers uint8

const (
	Shift Modifiers = 1 << iota
	Control
	Alt
	Super
	CapsLock
)

// Composing reports whether keys pressed with m may take part in composition.
// Shift and CapsLock only select a shifted symbol.
func (m Modifiers) Composing() bool {
	return m&(Control|Alt|Super) == 0
}

func (m Modifiers) String() string {
	var parts []string
	if m&Control != 0 {
		parts = append(parts, "ctrl")
	}
	if m&Alt != 0 {
		parts = append(parts, "alt")
	}
	if m&Super != 0 {
		parts = append(parts, "super")
	}
	if m&Shift != 0 {
		parts = append(parts, "shift")
	}
	if m&CapsLock != 0 {
		parts = append(parts, "capslock")
	}
	return strings.Join(parts, "+")
}

// Key is a physical key plus the modifier state at the time it was pressed.
type Key struct {
	Code Code
	Mods Modifiers
}

func New(code Code, mods Modifiers) Key {
	return Key{Code: code, Mods: mods}
}

func (k Key) Has(m Modifiers) bool {
	return k.Mods&m == m
}

func (k Key) Shifted() bool {
	return k.Mods&Shift != 0
}

// Char returns the character a US-QWERTY keyboard produces for the key, or 0
// when the key does not print anything.
func (k Key) Char() rune {
	pair, ok := qwerty[k.Code]
	if !ok {
		return 0
	}
	if k.Shifted() {
		return pair[1]
	}
	return pair[0]
}

// Matches reports whether k triggers the binding b: same code and every
// modifier of b held. CapsLock is ignored.
func (k Key) Matches(b Key) bool {
	if k.Code != b.Code {
		return false
	}
	want := b.Mods &^ CapsLock
	return k.Mods&want == want
}

func (k Key) String() string {
	name, ok := codeNames[k.Code]
	if !ok {
		name = "KEY_" + strconv.Itoa(int(k.Code))
	}
	if mods := (k.Mods &^ CapsLock).String(); mods != "" {
		return mods + "+" + name
	}
	return name
}

const (
	Esc        Code = linux.KeyEsc + linux.XKBOffset
	Num1       Code = linux.Key1 + linux.XKBOffset
	Num2       Code = linux.Key2 + linux.XKBOffset
	Num3       Code = linux.Key3 + linux.XKBOffset
	Num4       Code = linux.Key4 + linux.XKBOffset
	Num5       Code = linux.Key5 + linux.XKBOffset
	Num6       Code = linux.Key6 + linux.XKBOffset
	Num7       Code = linux.Key7 + linux.XKBOffset
	Num8       Code = linux.Key8 + linux.XKBOffset
	Num9       Code = linux.Key9 + linux.XKBOffset
	Num0       Code = linux.Key0 + linux.XKBOffset
	Minus      Code = linux.KeyMinus + linux.XKBOffset
	Equal      Code = linux.KeyEqual + linux.XKBOffset
	Backspace  Code = linux.KeyBackspace + linux.XKBOffset
	Tab        Code = linux.KeyTab + linux.XKBOffset
	Q          Code = linux.KeyQ + linux.XKBOffset
	W          Code = linux.KeyW + linux.XKBOffset
	E          Code = linux.KeyE + linux.XKBOffset
	R          Code = linux.KeyR + linux.XKBOffset
	T          Code = linux.KeyT + linux.XKBOffset
	Y          Code = linux.KeyY + linux.XKBOffset
	U          Code = linux.KeyU + linux.XKBOffset
	I          Code = linux.KeyI + linux.XKBOffset
	O          Code = linux.KeyO + linux.XKBOffset
	P          Code = linux.KeyP + linux.XKBOffset
	LeftBrace  Code = linux.KeyLeftBrace + linux.XKBOffset
	RightBrace Code = linux.KeyRightBrace + linux.XKBOffset
	Enter      Code = linux.KeyEnter + linux.XKBOffset
	LeftCtrl   Code = linux.KeyLeftCtrl + linux.XKBOffset
	A          Code = linux.KeyA + linux.XKBOffset
	S          Code = linux.KeyS + linux.XKBOffset
	D          Code = linux.KeyD + linux.XKBOffset
	F          Code = linux.KeyF + linux.XKBOffset
	G          Code = linux.KeyG + linux.XKBOffset
	H          Code = linux.KeyH + linux.XKBOffset
	J          Code = linux.KeyJ + linux.XKBOffset
	K          Code = linux.KeyK + linux.XKBOffset
	L          Code = linux.KeyL + linux.XKBOffset
	Semicolon  Code = linux.KeySemicolon + linux.XKBOffset
	Apostrophe Code = linux.KeyApostrophe + linux.XKBOffset
	Grave      Code = linux.KeyGrave + linux.XKBOffset
	LeftShift  Code = linux.KeyLeftShift + linux.XKBOffset
	Backslash  Code = linux.KeyBackslash + linux.XKBOffset
	Z          Code = linux.KeyZ + linux.XKBOffset
	X          Code = linux.KeyX + linux.XKBOffset
	C          Code = linux.KeyC + linux.XKBOffset
	V          Code = linux.KeyV + linux.XKBOffset
	B          Code = linux.KeyB + linux.XKBOffset
	N          Code = linux.KeyN + linux.XKBOffset
	M          Code = linux.KeyM + linux.XKBOffset
	Comma      Code = linux.KeyComma + linux.XKBOffset
	Dot        Code = linux.KeyDot + linux.XKBOffset
	Slash      Code = linux.KeySlash + linux.XKBOffset
	RightShift Code = linux.KeyRightShift + linux.XKBOffset
	LeftAlt    Code = linux.KeyLeftAlt + linux.XKBOffset
	Space      Code = linux.KeySpace + linux.XKBOffset
	Caps       Code = linux.KeyCapsLock + linux.XKBOffset
	RightCtrl  Code = linux.KeyRightCtrl + linux.XKBOffset
	RightAlt   Code = linux.KeyRightAlt + linux.XKBOffset
	Hangul     Code = linux.KeyHangul + linux.XKBOffset
	Hanja      Code = linux.KeyHanja + linux.XKBOffset
	LeftMeta   Code = linux.KeyLeftMeta + linux.XKBOffset
	RightMeta  Code = linux.KeyRightMeta + linux.XKBOffset
)
