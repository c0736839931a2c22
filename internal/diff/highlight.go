package diff

import (
	"github.com/codalotl/checkdiag/internal/termstyle"
	"github.com/codalotl/checkdiag/internal/termwriter"
)

// Highlighter accumulates alternating highlighted and non-highlighted byte ranges over one string and renders that string through a writer.
type Highlighter struct {
	ranges           []highlightRange
	totalHighlighted int
	normal           termstyle.Style
	highlight        termstyle.Style
}

// highlightRange covers bytes [start, end) of the subject string.
type highlightRange struct {
	start, end  int
	highlighted bool
}

// NewHighlighter returns a Highlighter that renders non-highlighted bytes in color and highlighted bytes inverted (black on color, bold).
func NewHighlighter(color termstyle.Color) *Highlighter {
	return &Highlighter{
		normal:    termstyle.Style{FG: color},
		highlight: termstyle.Style{FG: termstyle.ColorBlack, BG: color, Bold: true},
	}
}

// Push appends n bytes to the range list. Consecutive pushes with the same highlighted flag coalesce into one range.
func (h *Highlighter) Push(n int, highlighted bool) {
	if highlighted {
		h.totalHighlighted += n
	}
	if len(h.ranges) == 0 {
		h.ranges = append(h.ranges, highlightRange{start: 0, end: n, highlighted: highlighted})
		return
	}
	last := &h.ranges[len(h.ranges)-1]
	if last.highlighted == highlighted {
		last.end += n
		return
	}
	h.ranges = append(h.ranges, highlightRange{start: last.end, end: last.end + n, highlighted: highlighted})
}

// WriteHighlighted writes data through w using the accumulated ranges. A mostly-highlighted string (non-highlighted remainder shorter than half the highlighted
// total, rounded up) renders entirely in the normal style instead of as a noisy patchwork.
func (h *Highlighter) WriteHighlighted(w *termwriter.Writer, data string) {
	notHighlighted := len(data) - h.totalHighlighted
	if notHighlighted < ceilDiv(h.totalHighlighted, 2) {
		w.WriteStyled(data, h.normal)
		return
	}
	for _, r := range h.ranges {
		if r.highlighted {
			w.WriteStyled(data[r.start:r.end], h.highlight)
		} else {
			w.WriteStyled(data[r.start:r.end], h.normal)
		}
	}
}

// ceilDiv divides a by b, rounding up.
func ceilDiv(a, b int) int {
	d := a / b
	if a%b > 0 {
		d++
	}
	return d
}
