// Command checkdiag-demo prints one failure report of each kind, mirroring
// what a test suite using an assertion helper would produce. Run it on a
// terminal for the colored output, or with NO_COLOR=1 for the plain form.
package main

import (
	"os"

	"github.com/codalotl/checkdiag"
)

type pet struct {
	Name   string
	Age    int
	Kind   string
	Shaved bool
}

func main() {
	// Small operands fit on one line, so the expansion renders inline.
	(&checkdiag.FailedCheck{
		Name:   "check",
		File:   "demo/calc.go",
		Line:   9,
		Column: 2,
		Predicates: []checkdiag.PredicateEntry{
			{Pred: checkdiag.BinaryPredicate{Left: "6 + 1", Operator: "<=", Right: "2 * 3"}},
		},
		Failed:    0,
		Expansion: checkdiag.BinaryExpansion{Left: 7, Operator: "<=", Right: 6},
	}).Print()

	// A chain: the first predicate passed, the second failed, and the marker
	// row points at the failing one.
	(&checkdiag.FailedCheck{
		Name:   "check",
		File:   "demo/queue.go",
		Line:   17,
		Column: 2,
		Predicates: []checkdiag.PredicateEntry{
			{Pred: checkdiag.BoolPredicate{Expression: "ready"}},
			{Glue: " && ", Pred: checkdiag.BinaryPredicate{Left: "len(queue)", Operator: "==", Right: "0"}},
		},
		Failed:    1,
		Expansion: checkdiag.BinaryExpansion{Left: 3, Operator: "==", Right: 0},
	}).Print()

	// A pattern check whose evaluated value is an error. The compact form is
	// too long for one line, so it pretty-prints.
	_, err := os.Open("/non/existing/file")
	(&checkdiag.FailedCheck{
		Name:   "check",
		File:   "demo/files.go",
		Line:   24,
		Column: 2,
		Predicates: []checkdiag.PredicateEntry{
			{Pred: checkdiag.LetPredicate{Pattern: "f", Expression: `os.Open("/non/existing/file")`}},
		},
		Failed:    0,
		Expansion: checkdiag.LetExpansion{Value: err},
	}).Print()

	// Two structs differing in two fields: the diff highlights the changed
	// words inside the changed lines.
	scrappy := pet{Name: "Scrappy", Age: 7, Kind: "Bearded Collie", Shaved: false}
	coco := pet{Name: "Coco", Age: 7, Kind: "Bearded Collie", Shaved: true}
	(&checkdiag.FailedCheck{
		Name:   "check",
		File:   "demo/pets.go",
		Line:   31,
		Column: 2,
		Predicates: []checkdiag.PredicateEntry{
			{Pred: checkdiag.BinaryPredicate{Left: "scrappy", Operator: "==", Right: "coco"}},
		},
		Failed:    0,
		Expansion: checkdiag.BinaryExpansion{Left: scrappy, Operator: "==", Right: coco},
	}).Print()

	// Captured fragments and a custom message.
	(&checkdiag.FailedCheck{
		Name:    "check",
		File:    "demo/cache.go",
		Line:    48,
		Column:  3,
		Message: "the cache must be warmed up before serving",
		Predicates: []checkdiag.PredicateEntry{
			{Pred: checkdiag.BoolPredicate{Expression: "cache.Contains(key)"}},
		},
		Failed:    0,
		Expansion: checkdiag.BoolExpansion{},
		Fragments: []checkdiag.Fragment{
			{Name: "key", Source: `keys["alpha"]`},
		},
	}).Print()
}
