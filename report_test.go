package checkdiag

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

type pet struct {
	Name string
	Age  int
}

func TestRender_CompactBinary(t *testing.T) {
	c := &FailedCheck{
		Name:   "check",
		File:   "calc_test.go",
		Line:   12,
		Column: 2,
		Predicates: []PredicateEntry{
			{Pred: BinaryPredicate{Left: "6+1", Operator: "<=", Right: "2*3"}},
		},
		Failed:    0,
		Expansion: BinaryExpansion{Left: 7, Operator: "<=", Right: 6},
	}

	got := c.Render(80, Options{Expand: ExpandAuto, Color: false})
	require.Equal(t, ""+
		"Assertion failed at calc_test.go:12:2\n"+
		"  check!( 6+1 <= 2*3 )\n"+
		"with expansion:\n"+
		"  7 <= 6\n"+
		"\n", got)
}

func TestRender_CompactBinaryStyled(t *testing.T) {
	c := &FailedCheck{
		Name:   "check",
		File:   "calc_test.go",
		Line:   12,
		Column: 2,
		Predicates: []PredicateEntry{
			{Pred: BinaryPredicate{Left: "6+1", Operator: "<=", Right: "2*3"}},
		},
		Failed:    0,
		Expansion: BinaryExpansion{Left: 7, Operator: "<=", Right: 6},
	}

	got := c.Render(80, Options{Expand: ExpandAuto, Color: true})
	require.Equal(t, ""+
		"\x1b[1;91mAssertion failed\x1b[0m at \x1b[1mcalc_test.go\x1b[0m:12:2\n"+
		"  \x1b[35mcheck\x1b[0m\x1b[35m!( \x1b[0m\x1b[36m6+1\x1b[0m \x1b[1;34m<=\x1b[0m \x1b[33m2*3\x1b[0m\x1b[35m )\x1b[0m\n"+
		"with expansion:\n"+
		"  \x1b[36m7\x1b[0m \x1b[1;34m<=\x1b[0m \x1b[33m6\x1b[0m\n"+
		"\n", got)
}

func TestRender_PredicateChain(t *testing.T) {
	// The failed predicate gets a marker row; the one before it renders
	// dimmed and the one after collapses to "&& ...".
	c := &FailedCheck{
		Name:   "check",
		File:   "state_test.go",
		Line:   7,
		Column: 3,
		Predicates: []PredicateEntry{
			{Pred: BoolPredicate{Expression: "ready"}},
			{Glue: " && ", Pred: BinaryPredicate{Left: "count", Operator: "==", Right: "2"}},
			{Glue: " && ", Pred: BoolPredicate{Expression: "done"}},
		},
		Failed:    1,
		Expansion: BinaryExpansion{Left: 3, Operator: "==", Right: 2},
	}

	got := c.Render(80, Options{Expand: ExpandAuto, Color: false})
	require.Equal(t, ""+
		"Assertion failed at state_test.go:7:3\n"+
		"  check!( ready && count == 2 && ... )\n"+
		"                   ^^^^^^^^^^\n"+
		"with expansion:\n"+
		"  3 == 2\n"+
		"\n", got)
}

func TestRender_StyledUndercurl(t *testing.T) {
	c := &FailedCheck{
		Name:   "check",
		File:   "boot_test.go",
		Line:   5,
		Column: 2,
		Predicates: []PredicateEntry{
			{Pred: BoolPredicate{Expression: "ready"}},
			{Pred: BinaryPredicate{Left: "n", Operator: "==", Right: "2"}},
		},
		Failed:    0,
		Expansion: BoolExpansion{},
	}

	got := c.Render(80, Options{Expand: ExpandAuto, Color: true})
	require.Equal(t, ""+
		"\x1b[1;91mAssertion failed\x1b[0m at \x1b[1mboot_test.go\x1b[0m:5:2\n"+
		"  \x1b[35mcheck\x1b[0m\x1b[35m!( \x1b[0m\x1b[33mready\x1b[0m\x1b[2m && ...\x1b[0m\x1b[35m )\x1b[0m\n"+
		"          \x1b[1;91m^^^^^\x1b[0m\n"+
		"with expansion:\n"+
		"  \x1b[33mfalse\x1b[0m\n"+
		"\n", got)
}

func TestRender_IdenticalDebugOutputEquality(t *testing.T) {
	// The check failed, yet both operands format identically: for equality
	// operators that points at a broken comparison or debug format, so the
	// note renders in the error style (plain text here).
	c := &FailedCheck{
		Name:   "check",
		File:   "eq_test.go",
		Line:   3,
		Column: 2,
		Predicates: []PredicateEntry{
			{Pred: BinaryPredicate{Left: "a", Operator: "==", Right: "b"}},
		},
		Failed:    0,
		Expansion: BinaryExpansion{Left: 1, Operator: "==", Right: 1},
	}

	got := c.Render(120, Options{Expand: ExpandAuto, Color: false})
	require.Equal(t, ""+
		"Assertion failed at eq_test.go:3:2\n"+
		"  check!( a == b )\n"+
		"with expansion:\n"+
		"  1 == 1\n"+
		"Note: Left and right compared as unequal, but the debug output of left and right is identical!\n"+
		"\n", got)
}

func TestRender_IdenticalDebugOutputOrdering(t *testing.T) {
	c := &FailedCheck{
		Name:   "check",
		File:   "ord_test.go",
		Line:   8,
		Column: 2,
		Predicates: []PredicateEntry{
			{Pred: BinaryPredicate{Left: "a", Operator: "<", Right: "b"}},
		},
		Failed:    0,
		Expansion: BinaryExpansion{Left: 5, Operator: "<", Right: 5},
	}

	got := c.Render(80, Options{Expand: ExpandAuto, Color: false})
	require.Equal(t, ""+
		"Assertion failed at ord_test.go:8:2\n"+
		"  check!( a < b )\n"+
		"with expansion:\n"+
		"  5 < 5\n"+
		"Note: The debug output of left and right is identical.\n"+
		"\n", got)
}

func TestRender_PrettyDiff(t *testing.T) {
	c := &FailedCheck{
		Name:   "check",
		File:   "pet_test.go",
		Line:   44,
		Column: 2,
		Predicates: []PredicateEntry{
			{Pred: BinaryPredicate{Left: "a", Operator: "==", Right: "b"}},
		},
		Failed: 0,
		Expansion: BinaryExpansion{
			Left:     pet{Name: "Terry", Age: 9},
			Operator: "==",
			Right:    pet{Name: "Terry", Age: 10},
		},
	}

	got := c.Render(80, Options{Expand: ExpandPretty, Color: false})
	require.Equal(t, ""+
		"Assertion failed at pet_test.go:44:2\n"+
		"  check!( a == b )\n"+
		"with diff:\n"+
		"  (checkdiag.pet) {\n"+
		"    Name: (string) (len=5) \"Terry\",\n"+
		"<   Age: (int) 9\n"+
		">   Age: (int) 10\n"+
		"  }\n"+
		"\n", got)
}

func TestRender_AutoFallsBackToPretty(t *testing.T) {
	// Compact forms over 40 bytes push auto mode onto the pretty diff path.
	c := &FailedCheck{
		Name:   "check",
		File:   "str_test.go",
		Line:   15,
		Column: 2,
		Predicates: []PredicateEntry{
			{Pred: BinaryPredicate{Left: "a", Operator: "==", Right: "b"}},
		},
		Failed: 0,
		Expansion: BinaryExpansion{
			Left:     strings.Repeat("a", 41),
			Operator: "==",
			Right:    strings.Repeat("b", 41),
		},
	}

	got := c.Render(80, Options{Expand: ExpandAuto, Color: false})
	require.Equal(t, ""+
		"Assertion failed at str_test.go:15:2\n"+
		"  check!( a == b )\n"+
		"with diff:\n"+
		"< (string) (len=41) \""+strings.Repeat("a", 41)+"\"\n"+
		"> (string) (len=41) \""+strings.Repeat("b", 41)+"\"\n"+
		"\n", got)
}

func TestRender_LetExpansion(t *testing.T) {
	c := &FailedCheck{
		Name:   "check",
		File:   "let_test.go",
		Line:   9,
		Column: 2,
		Predicates: []PredicateEntry{
			{Pred: LetPredicate{Pattern: "want", Expression: "got()"}},
		},
		Failed:    0,
		Expansion: LetExpansion{Value: []int{1, 2, 3}},
	}

	got := c.Render(80, Options{Expand: ExpandAuto, Color: false})
	require.Equal(t, ""+
		"Assertion failed at let_test.go:9:2\n"+
		"  check!( let want = got() )\n"+
		"with expansion:\n"+
		"  []int{1, 2, 3}\n"+
		"\n", got)
}

func TestRender_LetExpansionPretty(t *testing.T) {
	// Forced pretty: every line of the dump is indented and flushed separately.
	c := &FailedCheck{
		Name:   "check",
		File:   "let_test.go",
		Line:   21,
		Column: 2,
		Predicates: []PredicateEntry{
			{Pred: LetPredicate{Pattern: "want", Expression: "got()"}},
		},
		Failed:    0,
		Expansion: LetExpansion{Value: pet{Name: "Terry", Age: 9}},
	}

	got := c.Render(80, Options{Expand: ExpandPretty, Color: false})
	require.Equal(t, ""+
		"Assertion failed at let_test.go:21:2\n"+
		"  check!( let want = got() )\n"+
		"with expansion:\n"+
		"  (checkdiag.pet) {\n"+
		"    Name: (string) (len=5) \"Terry\",\n"+
		"    Age: (int) 9\n"+
		"  }\n"+
		"\n", got)
}

func TestRender_BoolWithFragmentsAndMessage(t *testing.T) {
	c := &FailedCheck{
		Name:    "check",
		File:    "flag_test.go",
		Line:    21,
		Column:  5,
		Message: "expected the flag to be set",
		Predicates: []PredicateEntry{
			{Pred: BoolPredicate{Expression: "flag.enabled"}},
		},
		Failed:    0,
		Expansion: BoolExpansion{},
		Fragments: []Fragment{
			{Name: "flag", Source: `flags["verbose"]`},
		},
	}

	got := c.Render(80, Options{Expand: ExpandAuto, Color: false})
	require.Equal(t, ""+
		"Assertion failed at flag_test.go:21:5\n"+
		"  check!( flag.enabled )\n"+
		"with:\n"+
		"  flag = flags[\"verbose\"]\n"+
		"with expansion:\n"+
		"  false\n"+
		"with message:\n"+
		"  expected the flag to be set\n"+
		"\n", got)
}

func TestRender_MisusePanics(t *testing.T) {
	c := &FailedCheck{
		Name: "check",
		File: "oops_test.go",
		Predicates: []PredicateEntry{
			{Pred: BoolPredicate{Expression: "ok"}},
		},
	}
	require.PanicsWithValue(t, "checkdiag: FailedCheck.Expansion must be set", func() {
		c.Render(80, Options{})
	})

	c.Expansion = BoolExpansion{}
	c.Failed = 2
	require.PanicsWithValue(t, "checkdiag: failed predicate index 2 out of range (1 predicates)", func() {
		c.Render(80, Options{})
	})
}

func TestPrint(t *testing.T) {
	t.Setenv("CHECKDIAG", "")
	t.Setenv("NO_COLOR", "")
	t.Setenv("CLICOLOR", "")
	t.Setenv("CLICOLOR_FORCE", "")
	t.Setenv("CHECKDIAG_LOG_FILE", filepath.Join(t.TempDir(), "render.log"))
	resetOptions()

	// Point stderr at a pipe: not a terminal, so Print renders at the default
	// width of 80 with color off.
	r, w, err := os.Pipe()
	require.NoError(t, err)
	oldStderr := os.Stderr
	os.Stderr = w
	defer func() { os.Stderr = oldStderr }()

	c := &FailedCheck{
		Name:   "check",
		File:   "calc_test.go",
		Line:   12,
		Column: 2,
		Predicates: []PredicateEntry{
			{Pred: BinaryPredicate{Left: "6+1", Operator: "<=", Right: "2*3"}},
		},
		Failed:    0,
		Expansion: BinaryExpansion{Left: 7, Operator: "<=", Right: 6},
	}
	c.Print()

	os.Stderr = oldStderr
	require.NoError(t, w.Close())
	out, err := io.ReadAll(r)
	require.NoError(t, err)
	require.Equal(t, ""+
		"Assertion failed at calc_test.go:12:2\n"+
		"  check!( 6+1 <= 2*3 )\n"+
		"with expansion:\n"+
		"  7 <= 6\n"+
		"\n", string(out))

	logged, err := os.ReadFile(os.Getenv("CHECKDIAG_LOG_FILE"))
	require.NoError(t, err)
	require.Contains(t, string(logged), "render check!() at calc_test.go:12:2: width=80 expand=auto color=false")
}
