package ui

import "unicode/utf8"

// Key identifies a key press. Named keys use lower-case names; printable keys
// are the character itself.
type Key string

const (
	KeyUp        Key = "up"
	KeyDown      Key = "down"
	KeyLeft      Key = "left"
	KeyRight     Key = "right"
	KeyEnter     Key = "enter"
	KeySpace     Key = " "
	KeyTab       Key = "tab"
	KeyBackTab   Key = "shift+tab"
	KeyEscape    Key = "esc"
	KeyBackspace Key = "backspace"
	KeyDelete    Key = "delete"
	KeyPlus      Key = "+"
	KeyEquals    Key = "="
	KeyMinus     Key = "-"
	KeyF1        Key = "f1"
	KeyF2        Key = "f2"
	KeyF3        Key = "f3"
	KeyF4        Key = "f4"
	KeyF5        Key = "f5"
	KeyF6        Key = "f6"
	KeyF7        Key = "f7"
	KeyF8        Key = "f8"
	KeyF9        Key = "f9"
	KeyF10       Key = "f10"
)

// Rune returns the character for single-character keys.
func (k Key) Rune() (rune, bool) {
	s := string(k)
	if s == "" || utf8.RuneCountInString(s) != 1 {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r, true
}

// IsActivate reports keys that toggle or trigger a control.
func (k Key) IsActivate() bool {
	return k == KeyEnter || k == KeySpace
}

// IsZoomIn and IsZoomOut cover both the shifted and unshifted plus key.
func (k Key) IsZoomIn() bool  { return k == KeyPlus || k == KeyEquals }
func (k Key) IsZoomOut() bool { return k == KeyMinus }
