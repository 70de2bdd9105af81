package testhelpers

import (
	"fmt"
	"sync"
)

// RecordingReporter keeps every reported error and debug line
type RecordingReporter struct {
	mu     sync.Mutex
	Errors []error
	Debug  []string
}

func (r *RecordingReporter) Report(err error, keyvals ...any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Errors = append(r.Errors, err)
}

func (r *RecordingReporter) Debugf(format string, args ...any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Debug = append(r.Debug, fmt.Sprintf(format, args...))
}

// ErrorCount returns the number of reported errors
func (r *RecordingReporter) ErrorCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.Errors)
}
