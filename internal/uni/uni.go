// Package uni measures terminal display width and iterates grapheme clusters.
//
// Width follows the standard East Asian width tables: ambiguous-width code points count as 1 column and emoji neutrality is strict. The failure reports this package
// serves are rendered for the process's own terminal, so there is no per-call locale configuration.
package uni

import (
	"github.com/clipperhouse/uax29/v2/graphemes"
	"github.com/mattn/go-runewidth"
)

var cond = newCondition()

func newCondition() *runewidth.Condition {
	cond := runewidth.NewCondition()
	cond.EastAsianWidth = false
	cond.StrictEmojiNeutral = true
	return cond
}

// TextWidth returns the display width of str for monospace fonts in terminals.
func TextWidth(str string) int {
	return cond.StringWidth(str)
}

// RuneWidth returns the display width of r for monospace fonts in terminals.
func RuneWidth(r rune) int {
	return cond.RuneWidth(r)
}

// Iterator iterates over the grapheme clusters of a string.
type Iterator struct {
	iter graphemes.Iterator[string]
}

// Graphemes returns a grapheme cluster iterator over str.
func Graphemes(str string) *Iterator {
	return &Iterator{iter: graphemes.FromString(str)}
}

func (iter *Iterator) Next() bool {
	return iter.iter.Next()
}

func (iter *Iterator) Value() string {
	return iter.iter.Value()
}

// Start returns the byte position of the current cluster in the original string.
func (iter *Iterator) Start() int {
	return iter.iter.Start()
}

// End returns the byte position after the current cluster in the original string. Allows slicing bytes [Start(), End()).
func (iter *Iterator) End() int {
	return iter.iter.End()
}

// TextWidth returns the display width of the current cluster.
func (iter *Iterator) TextWidth() int {
	return cond.StringWidth(iter.iter.Value())
}
