package filedialog

import (
	"errors"
	"fmt"
)

// IOError is the only kind of error a [Dialog] produces. It covers
// unreadable, removed or permission-denied directories, failed
// canonicalization, and entries that vanish between a scan and a
// navigation.
type IOError struct {
	// Op is the filesystem operation that failed, e.g. "read dir".
	Op string

	// Path is the path the operation was applied to.
	Path string

	// Err is the underlying error, usually an [*os.PathError].
	Err error
}

const (
	opCanonicalize = "canonicalize"
	opReadDir      = "read dir"
	opStat         = "stat"
)

func (e *IOError) Error() string {
	return fmt.Sprintf("filedialog: %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// IsIOError reports whether err, or anything it wraps, is an
// [*IOError].
func IsIOError(err error) bool {
	var ioErr *IOError
	return errors.As(err, &ioErr)
}

func newIOError(op, path string, err error) error {
	return &IOError{Op: op, Path: path, Err: err}
}
