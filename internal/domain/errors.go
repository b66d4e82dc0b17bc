// Package domain implements argument parsing, line filtering and target
// traversal for linegrep.
package domain

import (
	"errors"
	"io/fs"
)

var (
	// ErrMissingPattern is returned when no pattern was supplied.
	ErrMissingPattern = errors.New("missing pattern")
	// ErrInvalidPattern wraps regular expression compilation failures.
	ErrInvalidPattern = errors.New("invalid pattern")
	// ErrInvalidUTF8 is reported for inputs that are not valid UTF-8 text.
	ErrInvalidUTF8 = errors.New("stream did not contain valid UTF-8")
	// ErrTargetsFailed is returned by Search when at least one target could
	// not be searched. The individual failures have already been reported.
	ErrTargetsFailed = errors.New("one or more targets could not be searched")
)

// targetError strips the operation and path from filesystem errors; the
// diagnostic line already names the path.
func targetError(err error) error {
	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		return pathErr.Err
	}

	return err
}
