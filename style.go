package checkdiag

import "github.com/codalotl/checkdiag/internal/termstyle"

// Report palette. Side colors (cyan for left, yellow for right) match the
// colors the diff engines highlight with, so operands in the predicate chain
// line up visually with their expansions below.
var (
	errorStyle  = termstyle.Style{FG: termstyle.ColorBrightRed, Bold: true}
	macroStyle  = termstyle.Style{FG: termstyle.ColorMagenta}
	opStyle     = termstyle.Style{FG: termstyle.ColorBlue, Bold: true}
	leftStyle   = termstyle.Style{FG: termstyle.ColorCyan}
	rightStyle  = termstyle.Style{FG: termstyle.ColorYellow}
	noteStyle   = termstyle.Style{Bold: true}
	dimmedStyle = termstyle.Style{Dim: true}
)
