package simplelogger

import (
	"bytes"
	"fmt"
	"os"
	"sync"
	"time"
)

var mu sync.Mutex

// Logf is a minimal printf-style debug logger. It appends formatted output,
// prefixed with a wall-clock timestamp, to the file named by the
// CHECKDIAG_LOG_FILE environment variable.
//
// Failure reports own stderr, so diagnostics about how a report was rendered
// (detected width, chosen expansion mode) have to go elsewhere. If
// CHECKDIAG_LOG_FILE is unset/empty or the path can't be opened as a file,
// Logf is a no-op.
func Logf(format string, args ...any) {
	path := os.Getenv("CHECKDIAG_LOG_FILE")
	if path == "" {
		return
	}

	// Serialize open/write/close to reduce interleaving within a single process.
	mu.Lock()
	defer mu.Unlock()

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return
	}
	defer f.Close()

	var b bytes.Buffer
	_, _ = fmt.Fprintf(&b, "%s ", time.Now().Format("15:04:05.000"))
	_, _ = fmt.Fprintf(&b, format, args...)
	if b.Bytes()[b.Len()-1] != '\n' {
		_ = b.WriteByte('\n')
	}
	_, _ = f.Write(b.Bytes())
}
