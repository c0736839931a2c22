package diff

import (
	"unicode"

	"github.com/codalotl/checkdiag/internal/termstyle"
	"github.com/codalotl/checkdiag/internal/termwriter"
	"github.com/sergi/go-diff/diffmatchpatch"
)

// WordDiff is a word-based diff between two single-line strings.
type WordDiff struct {
	left            string
	right           string
	leftHighlights  *Highlighter
	rightHighlights *Highlighter
}

// NewWordDiff computes the word diff between left and right. Words unique to left are highlighted on the left side, words unique to right on the right side.
func NewWordDiff(left, right string) *WordDiff {
	leftWords := SplitWords(left)
	rightWords := SplitWords(right)

	// Map every distinct word to one rune so the rune-based diff treats words atomically (the same trick diffmatchpatch plays for line diffs). Rune values start
	// at 1; 0 stays unused.
	index := make(map[string]rune, len(leftWords)+len(rightWords))
	var words []string
	encode := func(tokens []string) []rune {
		runes := make([]rune, 0, len(tokens))
		for _, tok := range tokens {
			r, ok := index[tok]
			if !ok {
				words = append(words, tok)
				r = rune(len(words))
				index[tok] = r
			}
			runes = append(runes, r)
		}
		return runes
	}
	leftRunes := encode(leftWords)
	rightRunes := encode(rightWords)

	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMainRunes(leftRunes, rightRunes, false)
	diffs = dmp.DiffCleanupMerge(diffs)

	d := &WordDiff{
		left:            left,
		right:           right,
		leftHighlights:  NewHighlighter(termstyle.ColorCyan),
		rightHighlights: NewHighlighter(termstyle.ColorYellow),
	}
	for _, df := range diffs {
		for _, r := range df.Text {
			idx := int(r) - 1
			if idx < 0 || idx >= len(words) {
				continue
			}
			n := len(words[idx])
			switch df.Type {
			case diffmatchpatch.DiffDelete:
				d.leftHighlights.Push(n, true)
			case diffmatchpatch.DiffInsert:
				d.rightHighlights.Push(n, true)
			case diffmatchpatch.DiffEqual:
				d.leftHighlights.Push(n, false)
				d.rightHighlights.Push(n, false)
			}
		}
	}
	return d
}

// WriteLeft writes the left line with highlighting. It does not flush the line.
func (d *WordDiff) WriteLeft(w *termwriter.Writer) {
	d.leftHighlights.WriteHighlighted(w, d.left)
}

// WriteRight writes the right line with highlighting. It does not flush the line.
func (d *WordDiff) WriteRight(w *termwriter.Writer) {
	d.rightHighlights.WriteHighlighted(w, d.right)
}

// SplitWords splits a line into word tokens. Concatenating the tokens reproduces the input exactly.
//
// Runs of letters, ASCII digits, and whitespace form tokens; a camelCase transition (lowercase letter followed by non-lowercase) also splits, so "camelCase"
// becomes ["camel", "Case"]. Every other character is a token by itself.
func SplitWords(line string) []string {
	var words []string
	for line != "" {
		split := len(line)
		prev := rune(-1)
		for i, r := range line {
			if i > 0 && isBreakPoint(prev, r) {
				split = i
				break
			}
			prev = r
		}
		words = append(words, line[:split])
		line = line[split:]
	}
	return words
}

// isBreakPoint reports whether a word boundary falls between adjacent characters a and b.
func isBreakPoint(a, b rune) bool {
	switch {
	case unicode.IsLetter(a):
		return !unicode.IsLetter(b) || (unicode.IsLower(a) && !unicode.IsLower(b))
	case a >= '0' && a <= '9':
		return b < '0' || b > '9'
	case unicode.IsSpace(a):
		return !unicode.IsSpace(b)
	default:
		return true
	}
}
