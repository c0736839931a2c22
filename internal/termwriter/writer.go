// Package termwriter provides a terminal-width-aware output writer for failure reports.
//
// A Writer accumulates styled text into a buffer, soft-wrapping at a fixed display width. Text is measured in terminal cells (tab counts as 4; ambiguous-width
// characters count as 1) and wrap points never split a grapheme cluster. Snippets may carry an undercurl marker: when the current line is flushed, a row of '^'
// characters is emitted underneath the marked columns.
//
// Lines are built up from snippets and completed by FlushLine, either explicitly, or implicitly when written text contains '\n' or overflows the width.
//
// Invariants:
//   - Every flush leaves the buffer ending in exactly one '\n'.
//   - Undercurl markers apply to the line they were written on; flushing clears them.
//   - Indentation is re-applied at the start of every physical line, including wrapped continuations.
//   - Finish flushes pending content at most once; a finished writer's buffer never ends mid-line.
package termwriter

import (
	"bytes"
	"strings"

	"github.com/codalotl/checkdiag/internal/termstyle"
	"github.com/codalotl/checkdiag/internal/uni"
)

// Snippet is a piece of text with a style and an optional undercurl marker. A nil Undercurl means no marker; a non-nil zero style draws unstyled '^' characters.
type Snippet struct {
	Text      string
	Style     termstyle.Style
	Undercurl *termstyle.Style
}

// Writer accumulates styled, wrapped terminal output.
type Writer struct {
	buf       bytes.Buffer
	width     int
	styled    bool
	lineWidth int
	undercurl []undercurlRange
	needFlush bool
	indent    int
}

// undercurlRange marks display columns [start, end) of the current line for an underline row.
type undercurlRange struct {
	start, end int
	style      termstyle.Style
}

// New returns a Writer that wraps at width display columns. Styling prefixes and suffixes are emitted only when styled is true.
func New(width int, styled bool) *Writer {
	return &Writer{width: width, styled: styled}
}

// SetIndent sets the number of spaces emitted at the start of each subsequent physical line.
func (w *Writer) SetIndent(indent int) {
	w.indent = indent
}

// Indent returns the current indentation.
func (w *Writer) Indent() int {
	return w.indent
}

// WriteString writes unstyled text.
func (w *Writer) WriteString(text string) {
	w.WriteSnippet(Snippet{Text: text})
}

// WriteStyled writes text in the given style.
func (w *Writer) WriteStyled(text string, style termstyle.Style) {
	w.WriteSnippet(Snippet{Text: text, Style: style})
}

// WriteSnippet writes sn, wrapping at the writer's width. Each '\n' in the text flushes the current line; wrapped remainders continue on fresh lines with
// indentation re-applied.
func (w *Writer) WriteSnippet(sn Snippet) {
	content := sn.Text
	for content != "" {
		contentWidth := 0
		end := -1
		drop := 0

		iter := uni.Graphemes(content)
		for iter.Next() {
			g := iter.Value()
			if g == "\n" || g == "\r\n" { // CRLF is a single grapheme cluster
				end = iter.Start()
				drop = len(g)
				break
			}
			gw := clusterWidth(g)
			if w.lineWidth+contentWidth+gw > w.width {
				end = iter.Start()
				if end == 0 && w.lineWidth == 0 {
					// The cluster is wider than a whole line; emit it on its own line rather than looping.
					end = iter.End()
					contentWidth = gw
				}
				break
			}
			contentWidth += gw
		}

		if end < 0 {
			w.writePiece(content, contentWidth, sn)
			return
		}
		w.writePiece(content[:end], contentWidth, sn)
		w.FlushLine()
		content = content[end+drop:]
	}
}

// writePiece emits one physical-line fragment: indent if at line start, style prefix, content, style suffix. Undercurl bookkeeping covers the emitted columns.
func (w *Writer) writePiece(content string, width int, sn Snippet) {
	if content == "" {
		return
	}

	if !w.needFlush {
		w.buf.WriteString(strings.Repeat(" ", w.indent))
		w.lineWidth += w.indent
	}

	if w.styled {
		w.buf.WriteString(sn.Style.Prefix())
	}
	w.buf.WriteString(content)
	if w.styled {
		w.buf.WriteString(sn.Style.Suffix())
	}

	if sn.Undercurl != nil {
		w.undercurl = append(w.undercurl, undercurlRange{
			start: w.lineWidth,
			end:   w.lineWidth + width,
			style: *sn.Undercurl,
		})
	}

	w.needFlush = true
	w.lineWidth += width
}

// FlushLine completes the current line and emits the pending undercurl row, if any. The buffer ends with exactly one '\n' afterwards.
func (w *Writer) FlushLine() {
	w.needFlush = false
	w.buf.WriteByte('\n')
	w.lineWidth = 0

	ranges := w.undercurl
	w.undercurl = nil
	pos := 0
	for _, r := range ranges {
		skip := r.start - pos
		if skip < 0 {
			skip = 0 // overlapping ranges never back up
		}
		pos = r.end
		w.buf.WriteString(strings.Repeat(" ", skip))
		if w.styled {
			w.buf.WriteString(r.style.Prefix())
		}
		w.buf.WriteString(strings.Repeat("^", r.end-r.start))
		if w.styled {
			w.buf.WriteString(r.style.Suffix())
		}
	}

	if b := w.buf.Bytes(); len(b) == 0 || b[len(b)-1] != '\n' {
		w.buf.WriteByte('\n')
	}
}

// Finish flushes pending line content, if any, and returns the rendered buffer. The implicit flush happens at most once: calling Finish again just returns the
// buffer.
func (w *Writer) Finish() string {
	if w.needFlush {
		w.FlushLine()
	}
	return w.buf.String()
}

// clusterWidth returns the display width of one grapheme cluster. Tab counts as 4 cells.
func clusterWidth(g string) int {
	if g == "\t" {
		return 4
	}
	return uni.TextWidth(g)
}
