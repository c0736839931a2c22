package checkdiag

// FailedCheck describes one failed assertion: where it happened, the chain of
// predicates as written at the call site, which predicate failed, and the
// evaluated values behind it. It is constructed by an assertion helper (or by
// hand) with all source text already captured as strings; this package never
// parses source syntax itself.
type FailedCheck struct {
	// Name is the assertion helper's name as written at the call site, for
	// example "check". It renders as Name!( ... ).
	Name string

	// Source location of the assertion.
	File   string
	Line   int
	Column int

	// Message is an optional user-supplied message, rendered at the end of the
	// report. Empty means no message.
	Message string

	// Predicates is the assertion's predicate chain in source order. A plain
	// assertion has exactly one entry.
	Predicates []PredicateEntry

	// Failed is the index into Predicates of the predicate that failed.
	// Predicates after it were never evaluated.
	Failed int

	// Expansion holds the evaluated values of the failed predicate.
	Expansion Expansion

	// Fragments are optional named source snippets captured alongside the
	// assertion, rendered as a "with:" section.
	Fragments []Fragment
}

// PredicateEntry is one predicate of a chain together with the separator text
// that preceded it in the source.
type PredicateEntry struct {
	// Glue is the separator written before this predicate, empty for the first
	// entry. An empty glue on a later entry renders as the default " && ".
	Glue string

	Pred Predicate
}

// Fragment is a named source snippet, for example a matched pattern or a
// captured argument.
type Fragment struct {
	Name   string
	Source string
}

// Predicate is the source form of one sub-check: BinaryPredicate,
// LetPredicate, or BoolPredicate. The set is closed; renderers type-switch
// exhaustively over it.
type Predicate interface {
	isPredicate()
}

// BinaryPredicate is a comparison of two expressions, such as "a == b".
// All three fields hold source text, not evaluated values.
type BinaryPredicate struct {
	Left     string
	Operator string
	Right    string
}

// LetPredicate is a pattern-match check, rendered "let Pattern = Expression".
type LetPredicate struct {
	Pattern    string
	Expression string
}

// BoolPredicate is a plain boolean expression.
type BoolPredicate struct {
	Expression string
}

func (BinaryPredicate) isPredicate() {}
func (LetPredicate) isPredicate()    {}
func (BoolPredicate) isPredicate()   {}

// Expansion holds the evaluated values of a failed predicate:
// BinaryExpansion, LetExpansion, or BoolExpansion. The set is closed.
type Expansion interface {
	isExpansion()
}

// BinaryExpansion carries both evaluated operands of a failed
// BinaryPredicate. The values are formatted on demand, compactly or
// pretty-printed depending on the options and on how well they fit.
type BinaryExpansion struct {
	Left     any
	Operator string
	Right    any
}

// LetExpansion carries the evaluated expression of a failed LetPredicate.
type LetExpansion struct {
	Value any
}

// BoolExpansion is the expansion of a failed BoolPredicate. The expression
// necessarily evaluated to false, so it carries no value.
type BoolExpansion struct{}

func (BinaryExpansion) isExpansion() {}
func (LetExpansion) isExpansion()    {}
func (BoolExpansion) isExpansion()   {}
