package checkdiag

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/mattn/go-isatty"
	"golang.org/x/term"
)

// ExpandMode selects how operand values are formatted in a report.
type ExpandMode int

const (
	// ExpandAuto picks per report: compact when every compact form is short
	// and free of newlines, pretty otherwise.
	ExpandAuto ExpandMode = iota

	// ExpandPretty always uses the multi-line pretty form.
	ExpandPretty

	// ExpandCompact always uses the single-line compact form.
	ExpandCompact
)

func (m ExpandMode) String() string {
	switch m {
	case ExpandAuto:
		return "auto"
	case ExpandPretty:
		return "pretty"
	case ExpandCompact:
		return "compact"
	default:
		return fmt.Sprintf("ExpandMode(%d)", int(m))
	}
}

// Options control how reports render.
type Options struct {
	Expand ExpandMode
	Color  bool
}

var (
	optionsMu sync.RWMutex
	options   *Options
)

// GetOptions returns the process-wide report options, resolving them from the
// environment on first use. Every caller sees the same value; the environment
// is read once, no matter how many goroutines race on the first call.
//
// The CHECKDIAG environment variable holds comma-separated options: "pretty"
// or "compact" select the expansion mode, and "color" or "no-color" force
// colored output on or off. Tokens are case-insensitive and whitespace around
// commas is ignored, so CHECKDIAG="color, pretty" forces both. Unknown tokens
// are ignored.
//
// When CHECKDIAG does not force color, the clicolors convention decides:
// NO_COLOR disables it, CLICOLOR=0 disables it, CLICOLOR_FORCE enables it,
// and otherwise color is on iff stderr is connected to a terminal.
func GetOptions() Options {
	for {
		optionsMu.RLock()
		cached := options
		optionsMu.RUnlock()
		if cached != nil {
			return *cached
		}

		// Not initialized yet. If the write lock is contested, another
		// goroutine is initializing right now; retry the read instead of
		// queueing behind it.
		if !optionsMu.TryLock() {
			continue
		}
		if options == nil {
			opts := optionsFromEnv()
			options = &opts
		}
		cached = options
		optionsMu.Unlock()
		return *cached
	}
}

// optionsFromEnv parses the CHECKDIAG environment variable, falling back to
// auto expansion and clicolors-derived color.
func optionsFromEnv() Options {
	opts := Options{
		Expand: ExpandAuto,
		Color:  shouldColor(),
	}
	for _, word := range strings.Split(os.Getenv("CHECKDIAG"), ",") {
		word = strings.TrimSpace(word)
		switch {
		case strings.EqualFold(word, "pretty"):
			opts.Expand = ExpandPretty
		case strings.EqualFold(word, "compact"):
			opts.Expand = ExpandCompact
		case strings.EqualFold(word, "color"):
			opts.Color = true
		case strings.EqualFold(word, "no-color"):
			opts.Color = false
		}
	}
	return opts
}

// shouldColor implements the clicolors convention for stderr.
func shouldColor() bool {
	switch {
	case isTrue(os.Getenv("NO_COLOR")):
		return false
	case isFalse(os.Getenv("CLICOLOR")):
		return false
	case isTrue(os.Getenv("CLICOLOR_FORCE")):
		return true
	default:
		return stderrIsTerminal()
	}
}

func isTrue(value string) bool {
	return value == "1" || strings.EqualFold(value, "true") || strings.EqualFold(value, "yes")
}

// isFalse reports whether value is a false-like string. An unset or empty
// variable is not false-like.
func isFalse(value string) bool {
	return value == "0" || strings.EqualFold(value, "false") || strings.EqualFold(value, "no")
}

// stderrIsTerminal is a var so tests can substitute the probe.
var stderrIsTerminal = func() bool {
	return fdIsTerminal(os.Stderr.Fd())
}

// fdIsTerminal reports whether fd refers to a terminal, including Cygwin/MSYS
// pseudo terminals on Windows, which plain ioctl probes misreport.
func fdIsTerminal(fd uintptr) bool {
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// terminalWidth returns the column count of the terminal behind fd, or 80
// when fd is not a terminal.
func terminalWidth(fd uintptr) int {
	if w, _, err := term.GetSize(int(fd)); err == nil && w > 0 {
		return w
	}
	return 80
}
