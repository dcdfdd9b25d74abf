// internal/writers/registry.go
package writers

import (
	"fmt"
	"io"
	"sort"

	"fqqc/internal/qc"
)

// SummaryWriter renders one summary to w.
type SummaryWriter func(w io.Writer, s qc.Summary) error

// Registry of format → handler. Formats register themselves in init().
var summaryWriters = map[string]SummaryWriter{}

// Register installs fn for format (last wins).
func Register(format string, fn SummaryWriter) { summaryWriters[format] = fn }

// Registered lists the known formats, sorted.
func Registered() []string {
	out := make([]string, 0, len(summaryWriters))
	for f := range summaryWriters {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}

// Write dispatches to the handler registered for format.
func Write(format string, w io.Writer, s qc.Summary) error {
	fn, ok := summaryWriters[format]
	if !ok {
		return fmt.Errorf("unknown report format %q (no writer registered)", format)
	}
	return fn(w, s)
}
