// Package diag is the diagnostics sink for failures that must not reach the
// screen as a crash: lookup errors, clipboard failures and debug traces.
package diag

import (
	"fmt"
	"io"
	"log"
	"strings"
)

// Reporter receives non-fatal failures
type Reporter interface {
	Report(err error, keyvals ...any)
	Debugf(format string, args ...any)
}

// LogReporter writes diagnostics through the standard logger
type LogReporter struct {
	logger *log.Logger
}

// NewLogReporter creates a reporter writing to w
func NewLogReporter(w io.Writer) *LogReporter {
	return &LogReporter{logger: log.New(w, "[flightbook] ", log.LstdFlags|log.Lmicroseconds)}
}

// Report logs err followed by key=value pairs
func (r *LogReporter) Report(err error, keyvals ...any) {
	if err == nil {
		return
	}
	r.logger.Printf("ERROR %v%s", err, formatKeyvals(keyvals))
}

// Debugf logs a debug line
func (r *LogReporter) Debugf(format string, args ...any) {
	r.logger.Printf("DEBUG "+format, args...)
}

func formatKeyvals(keyvals []any) string {
	if len(keyvals) == 0 {
		return ""
	}
	var b strings.Builder
	for i := 0; i < len(keyvals); i += 2 {
		b.WriteString(" ")
		if i+1 < len(keyvals) {
			fmt.Fprintf(&b, "%v=%v", keyvals[i], keyvals[i+1])
		} else {
			fmt.Fprintf(&b, "%v=?", keyvals[i])
		}
	}
	return b.String()
}

type discard struct{}

func (discard) Report(error, ...any)  {}
func (discard) Debugf(string, ...any) {}

// Discard drops every report
var Discard Reporter = discard{}
