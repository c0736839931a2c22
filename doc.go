// Package checkdiag renders colorized, terminal-width-aware reports for failed assertions.
//
// A FailedCheck carries everything an assertion helper captured about one failure: the helper's name, the source location, the predicate chain as written, which
// predicate failed, the evaluated operand values, and optionally named fragments and a custom message. Render turns that into a complete report; Print renders and
// writes it to stderr in a single write.
//
// Report anatomy
//   - A header line with the source location, followed by the predicate chain. Predicates before the failed one render dimmed, the failed one in full color with a
//     '^' marker row underneath (when the chain has more than one predicate), and unevaluated predicates collapse to a dimmed "&& ...".
//   - A "with:" section listing captured fragments, when any exist.
//   - The failed predicate's evaluated values: "with expansion:" shows compact single-line values as an inline word diff around the operator; values too large for
//     one line switch to "with diff:", an interleaved line diff of the pretty-printed forms. Changed words are highlighted in inverse video, left side cyan, right
//     side yellow.
//   - A "with message:" section, when a custom message was supplied.
//
// Output wraps at the terminal width reported by stderr (default 80) without splitting grapheme clusters, and every report ends with a blank line.
//
// Configuration
//
// The CHECKDIAG environment variable takes comma-separated options: "pretty" or "compact" pin the expansion format (the default picks per report),
// "color" and "no-color" force colored output. Without a forced setting, color follows the clicolors convention (NO_COLOR, CLICOLOR, CLICOLOR_FORCE) and otherwise
// turns on iff stderr is a terminal. Options are resolved once per process, on first use. Setting CHECKDIAG_LOG_FILE to a writable path logs render decisions
// there for debugging.
//
// Example
//
//	c := &checkdiag.FailedCheck{
//	    Name:   "check",
//	    File:   "main.go",
//	    Line:   12,
//	    Column: 2,
//	    Predicates: []checkdiag.PredicateEntry{
//	        {Pred: checkdiag.BinaryPredicate{Left: "6+1", Operator: "<=", Right: "2*3"}},
//	    },
//	    Failed:    0,
//	    Expansion: checkdiag.BinaryExpansion{Left: 7, Operator: "<=", Right: 6},
//	}
//	c.Print()
//
//	// Assertion failed at main.go:12:2
//	//   check!( 6+1 <= 2*3 )
//	// with expansion:
//	//   7 <= 6
package checkdiag
