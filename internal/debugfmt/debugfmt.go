// Package debugfmt renders Go values for failure reports, in a compact single-line form and a pretty multi-line form.
package debugfmt

import (
	"fmt"
	"strings"

	"github.com/davecgh/go-spew/spew"
)

// Values longer than this render poorly on one line.
const maxCompactLen = 40

// conf is tuned for reproducible output: sorted map keys, no pointer addresses, no capacities. Reports diff the pretty output line by line, so it must not vary
// between runs.
var conf = spew.ConfigState{
	Indent:                  "  ",
	SortKeys:                true,
	DisablePointerAddresses: true,
	DisableCapacities:       true,
}

// Compact formats v in Go syntax on a single line.
func Compact(v any) string {
	return fmt.Sprintf("%#v", v)
}

// Pretty formats v as an indented multi-line dump.
func Pretty(v any) string {
	return strings.TrimRight(conf.Sdump(v), "\n")
}

// IsCompactGood reports whether the compact forms are short and newline-free enough to show inline.
func IsCompactGood(expanded ...string) bool {
	for _, s := range expanded {
		if len(s) > maxCompactLen || strings.Contains(s, "\n") {
			return false
		}
	}
	return true
}
