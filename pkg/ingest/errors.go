package ingest

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedRecord marks a line that was skipped during ingestion.
	ErrMalformedRecord = errors.New("ingest: malformed record")
	// ErrRead marks a failure of the underlying reader; the line number is the
	// last one that could be read plus one.
	ErrRead = errors.New("ingest: read failed")
)

// ValidationError describes one rejected line of an input source.
type ValidationError struct {
	Line   int    // 1-based line number
	Text   string // raw line content
	Reason error
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Reason)
}

func (e ValidationError) Unwrap() error {
	return e.Reason
}

func malformed(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrMalformedRecord, fmt.Sprintf(format, args...))
}

// Join collapses validation errors into a single error, nil if there are none.
func Join(errs []ValidationError) error {
	if len(errs) == 0 {
		return nil
	}
	joined := make([]error, len(errs))
	for i := range errs {
		joined[i] = errs[i]
	}
	return errors.Join(joined...)
}
