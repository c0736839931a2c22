// Package termstyle models terminal text styling as plain values that render to ANSI SGR escape sequences.
//
// A Style is a small value struct; the zero value applies no styling and renders to empty strings. Styles are combined at construction time (struct literals), not
// by chaining, and rendering is deterministic: attribute codes are always emitted in the order bold, dim, foreground, background.
package termstyle

import (
	"strconv"
	"strings"
)

// Reset is the SGR sequence that clears all styling attributes.
const Reset = "\x1b[0m"

// Color is one of the 16 basic ANSI terminal colors. The zero value means "no color".
type Color int

// Basic ANSI colors. The bright variants use the aixterm SGR range (90-97).
const (
	ColorNone Color = iota
	ColorBlack
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightBlack
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
)

// fgCode returns the SGR foreground code for c (30-37 or 90-97). Background codes are fgCode+10.
func (c Color) fgCode() int {
	if c >= ColorBrightBlack {
		return 90 + int(c-ColorBrightBlack)
	}
	return 30 + int(c-ColorBlack)
}

// Style selects text attributes for a piece of terminal output. The zero value applies no styling.
type Style struct {
	FG   Color
	BG   Color
	Bold bool
	Dim  bool
}

// IsZero reports whether s applies no styling at all.
func (s Style) IsZero() bool {
	return s == Style{}
}

// Prefix returns the SGR sequence that enables s, or "" for the zero value.
func (s Style) Prefix() string {
	if s.IsZero() {
		return ""
	}

	var b strings.Builder
	b.WriteString("\x1b[")
	sep := false
	code := func(n int) {
		if sep {
			b.WriteByte(';')
		}
		sep = true
		b.WriteString(strconv.Itoa(n))
	}
	if s.Bold {
		code(1)
	}
	if s.Dim {
		code(2)
	}
	if s.FG != ColorNone {
		code(s.FG.fgCode())
	}
	if s.BG != ColorNone {
		code(s.BG.fgCode() + 10)
	}
	b.WriteByte('m')
	return b.String()
}

// Suffix returns the SGR sequence that undoes s (a full reset), or "" for the zero value.
func (s Style) Suffix() string {
	if s.IsZero() {
		return ""
	}
	return Reset
}

// Wrap returns text surrounded by s's prefix and suffix. The zero style returns text unchanged.
func (s Style) Wrap(text string) string {
	if s.IsZero() {
		return text
	}
	return s.Prefix() + text + Reset
}
