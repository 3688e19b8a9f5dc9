package xmltree

import "fmt"

// ReadError reports a directory that could not be listed. It is the only
// fatal condition in the package: a ReadError anywhere during a build aborts
// the whole operation and no partial document is returned.
type ReadError struct {
	// Path is the directory that failed to enumerate
	Path string

	// Err is the underlying cause
	Err error
}

// Error returns the formatted error message including the offending path.
func (e *ReadError) Error() string {
	return fmt.Sprintf("cannot list directory %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying cause so callers can use errors.Is/errors.As.
func (e *ReadError) Unwrap() error {
	return e.Err
}
