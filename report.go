package checkdiag

import (
	"fmt"
	"os"
	"strings"

	"github.com/codalotl/checkdiag/internal/debugfmt"
	"github.com/codalotl/checkdiag/internal/diff"
	"github.com/codalotl/checkdiag/internal/simplelogger"
	"github.com/codalotl/checkdiag/internal/termstyle"
	"github.com/codalotl/checkdiag/internal/termwriter"
)

// Print renders the report and writes it to stderr in a single write, so
// concurrently failing checks don't interleave their output. Options come
// from GetOptions and the width from the terminal behind stderr, falling back
// to 80 columns when stderr is not a terminal.
func (c *FailedCheck) Print() {
	opts := GetOptions()
	width := terminalWidth(os.Stderr.Fd())
	simplelogger.Logf("render %s!() at %s:%d:%d: width=%d expand=%s color=%t", c.Name, c.File, c.Line, c.Column, width, opts.Expand, opts.Color)
	_, _ = os.Stderr.WriteString(c.Render(width, opts))
}

// Render produces the complete report, soft-wrapped at width display columns.
// The output always ends with a blank line so consecutive reports stay
// visually separated. Rendering cannot fail; a FailedCheck with no Expansion
// or with Failed out of range is a bug in the caller and panics.
func (c *FailedCheck) Render(width int, opts Options) string {
	if c.Expansion == nil {
		panic("checkdiag: FailedCheck.Expansion must be set")
	}
	if c.Failed < 0 || c.Failed >= len(c.Predicates) {
		panic(fmt.Sprintf("checkdiag: failed predicate index %d out of range (%d predicates)", c.Failed, len(c.Predicates)))
	}

	w := termwriter.New(width, opts.Color)
	c.writeAssertion(w)
	if len(c.Fragments) > 0 {
		w.WriteString("with:\n")
		w.SetIndent(2)
		for _, f := range c.Fragments {
			w.WriteStyled(f.Name, macroStyle)
			w.WriteString(" ")
			w.WriteStyled("=", opStyle)
			w.WriteString(" ")
			w.WriteStyled(f.Source, macroStyle)
			w.FlushLine()
		}
		w.SetIndent(0)
	}
	c.writeExpansion(w, opts)
	w.FlushLine()
	if c.Message != "" {
		w.WriteString("with message:\n")
		w.SetIndent(2)
		w.WriteStyled(c.Message, noteStyle)
		w.FlushLine()
		w.SetIndent(0)
	}
	w.FlushLine()
	return w.Finish()
}

// writeAssertion writes the header line and the predicate chain line.
func (c *FailedCheck) writeAssertion(w *termwriter.Writer) {
	w.WriteStyled("Assertion failed", errorStyle)
	w.WriteString(" at ")
	w.WriteStyled(c.File, noteStyle)
	w.WriteString(fmt.Sprintf(":%d:%d", c.Line, c.Column))
	w.FlushLine()

	w.SetIndent(2)
	w.WriteStyled(c.Name, macroStyle)
	w.WriteStyled("!( ", macroStyle)

	// Predicates up to and including the failed one, each preceded by its glue.
	for i := 0; i <= c.Failed; i++ {
		entry := c.Predicates[i]
		if i > 0 {
			w.WriteStyled(glueOrDefault(entry.Glue), dimmedStyle)
		}
		writePredicate(w, entry.Pred, i == c.Failed, len(c.Predicates) > 1)
	}

	// Mark any remaining predicates, which short-circuiting left unevaluated.
	if c.Failed+1 < len(c.Predicates) {
		w.WriteStyled(glueOrDefault(c.Predicates[c.Failed+1].Glue)+"...", dimmedStyle)
	}

	w.WriteStyled(" )", macroStyle)
	w.FlushLine()
	w.SetIndent(0)
}

// glueOrDefault returns the captured separator, or " && " when none was
// recorded.
func glueOrDefault(glue string) string {
	if glue == "" {
		return " && "
	}
	return glue
}

// writePredicate writes one predicate of the chain. The failed predicate gets
// the full palette and, when undercurl is set, a '^' marker row under its
// text; earlier predicates render dimmed.
func writePredicate(w *termwriter.Writer, p Predicate, failed, undercurl bool) {
	snip := func(text string, style termstyle.Style) {
		s := termwriter.Snippet{Text: text}
		if failed {
			s.Style = style
			if undercurl {
				u := errorStyle
				s.Undercurl = &u
			}
		} else {
			s.Style = dimmedStyle
		}
		w.WriteSnippet(s)
	}

	switch p := p.(type) {
	case BinaryPredicate:
		snip(p.Left, leftStyle)
		snip(" ", termstyle.Style{})
		snip(p.Operator, opStyle)
		snip(" ", termstyle.Style{})
		snip(p.Right, rightStyle)
	case LetPredicate:
		snip("let ", opStyle)
		snip(p.Pattern, leftStyle)
		snip(" = ", opStyle)
		snip(p.Expression, rightStyle)
	case BoolPredicate:
		snip(p.Expression, rightStyle)
	default:
		panic(fmt.Sprintf("checkdiag: unknown predicate type %T", p))
	}
}

func (c *FailedCheck) writeExpansion(w *termwriter.Writer, opts Options) {
	switch e := c.Expansion.(type) {
	case BinaryExpansion:
		writeBinaryExpansion(w, e, opts)
	case LetExpansion:
		writeLetExpansion(w, e, opts)
	case BoolExpansion:
		writeBoolExpansion(w)
	default:
		panic(fmt.Sprintf("checkdiag: unknown expansion type %T", e))
	}
}

// writeBinaryExpansion writes the evaluated operands of a binary predicate.
// Compact operands render inline as a word diff; operands too large for one
// line render pretty-printed as an interleaved line diff.
func writeBinaryExpansion(w *termwriter.Writer, e BinaryExpansion, opts Options) {
	if opts.Expand != ExpandPretty {
		left := debugfmt.Compact(e.Left)
		right := debugfmt.Compact(e.Right)
		if opts.Expand == ExpandCompact || debugfmt.IsCompactGood(left, right) {
			w.WriteString("with expansion:\n")
			wd := diff.NewWordDiff(left, right)
			w.SetIndent(2)
			wd.WriteLeft(w)
			w.WriteString(" ")
			w.WriteStyled(e.Operator, opStyle)
			w.WriteString(" ")
			wd.WriteRight(w)
			w.SetIndent(0)
			if left == right {
				w.FlushLine()
				if e.Operator == "==" {
					w.WriteStyled("Note: Left and right compared as unequal, but the debug output of left and right is identical!", errorStyle)
				} else {
					w.WriteStyled("Note: The debug output of left and right is identical.", noteStyle)
				}
			}
			return
		}
	}

	// Compact was ruled out or didn't fit, so go full pretty debug format.
	left := debugfmt.Pretty(e.Left)
	right := debugfmt.Pretty(e.Right)
	w.WriteString("with diff:\n")
	diff.WriteInterleaved(w, diff.DiffLines(left, right))
}

func writeLetExpansion(w *termwriter.Writer, e LetExpansion, opts Options) {
	w.WriteString("with expansion:\n")
	w.SetIndent(2)
	for i, line := range strings.Split(expandOne(e.Value, opts), "\n") {
		if i > 0 {
			w.FlushLine()
		}
		w.WriteStyled(line, rightStyle)
	}
	w.SetIndent(0)
}

func writeBoolExpansion(w *termwriter.Writer) {
	w.WriteString("with expansion:\n")
	w.SetIndent(2)
	w.WriteStyled("false", rightStyle)
	w.SetIndent(0)
}

// expandOne formats v per the configured expansion mode: compact unless
// pretty is forced or the compact form is unfit for a single line.
func expandOne(v any, opts Options) string {
	if opts.Expand != ExpandPretty {
		compact := debugfmt.Compact(v)
		if opts.Expand == ExpandCompact || debugfmt.IsCompactGood(compact) {
			return compact
		}
	}
	return debugfmt.Pretty(v)
}
