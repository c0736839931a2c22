package diff

import (
	"strings"

	"github.com/codalotl/checkdiag/internal/termstyle"
	"github.com/codalotl/checkdiag/internal/termwriter"
	"github.com/sergi/go-diff/diffmatchpatch"
)

// Styles for line-level rendering. Word-level highlighting inside LineDifferent pairs comes from the WordDiff highlighters, which use the same side colors.
var (
	leftNormal  = termstyle.Style{FG: termstyle.ColorCyan}
	rightNormal = termstyle.Style{FG: termstyle.ColorYellow}
	equalDim    = termstyle.Style{Dim: true}
)

// LineKind describes one entry of a regrouped line diff.
type LineKind int

const (
	// LineLeftOnly is a line present only on the left side.
	LineLeftOnly LineKind = iota
	// LineRightOnly is a line present only on the right side.
	LineRightOnly
	// LineDifferent is a left line replaced 1:1 by a right line.
	LineDifferent
	// LineEqual is a line present on both sides.
	LineEqual
)

// Line is one entry of a line diff. Left is set for LineLeftOnly, LineDifferent and LineEqual; Right is set for LineRightOnly and LineDifferent. Texts carry no
// trailing newline.
type Line struct {
	Kind  LineKind
	Left  string
	Right string
}

// DiffLines computes a line diff between left and right and regroups it for rendering.
//
// The regroup walks the raw per-line results tracking how many consecutive left-only lines were just seen. A right-only line that directly follows exactly one
// left-only line merges with it into a LineDifferent pair; a second right-only line un-merges that pair again, because a 1:n replacement reads better as plain
// removed/added lines than as a forced word diff.
func DiffLines(left, right string) []Line {
	dmp := diffmatchpatch.New()
	leftRunes, rightRunes, lineArray := dmp.DiffLinesToRunes(left, right)
	diffs := dmp.DiffMainRunes(leftRunes, rightRunes, false)
	diffs = dmp.DiffCleanupMerge(diffs)

	var out []Line
	seenLeft := 0
	for _, d := range diffs {
		for _, r := range d.Text {
			idx := int(r)
			if idx < 0 || idx >= len(lineArray) {
				continue
			}
			line := strings.TrimSuffix(lineArray[idx], "\n")

			switch d.Type {
			case diffmatchpatch.DiffDelete:
				out = append(out, Line{Kind: LineLeftOnly, Left: line})
				seenLeft++

			case diffmatchpatch.DiffInsert:
				if n := len(out); n > 0 {
					switch last := out[n-1]; last.Kind {
					case LineLeftOnly:
						if seenLeft == 1 {
							out[n-1] = Line{Kind: LineDifferent, Left: last.Left, Right: line}
							seenLeft = 0
							continue
						}
					case LineDifferent:
						out[n-1] = Line{Kind: LineLeftOnly, Left: last.Left}
						out = append(out,
							Line{Kind: LineRightOnly, Right: last.Right},
							Line{Kind: LineRightOnly, Right: line})
						seenLeft = 0
						continue
					}
				}
				out = append(out, Line{Kind: LineRightOnly, Right: line})
				seenLeft = 0

			case diffmatchpatch.DiffEqual:
				out = append(out, Line{Kind: LineEqual, Left: line})
				seenLeft = 0
			}
		}
	}
	return out
}

// WriteInterleaved renders regrouped diff lines into w: removed lines prefixed "< " in cyan, added lines prefixed "> " in yellow, 1:1 replacements as a prefixed
// word-diff pair, and common lines dimmed behind a two-space prefix. The final rendered line is left pending for the caller's flush.
func WriteInterleaved(w *termwriter.Writer, lines []Line) {
	for i, ln := range lines {
		if i > 0 {
			w.FlushLine()
		}
		switch ln.Kind {
		case LineLeftOnly:
			w.WriteStyled("< "+ln.Left, leftNormal)
		case LineRightOnly:
			w.WriteStyled("> "+ln.Right, rightNormal)
		case LineDifferent:
			wd := NewWordDiff(ln.Left, ln.Right)
			w.WriteStyled("< ", leftNormal)
			wd.WriteLeft(w)
			w.FlushLine()
			w.WriteStyled("> ", rightNormal)
			wd.WriteRight(w)
		case LineEqual:
			w.WriteStyled("  "+ln.Left, equalDim)
		}
	}
}
