package huffman

import (
	"errors"
	"fmt"
)

// ErrFormatMismatch is returned when a stream does not start with the
// expected magic bytes.
var ErrFormatMismatch = errors.New("huffman: not an HC stream (bad magic)")

// ErrCorrupt is returned, usually wrapped with more detail, when the tree or
// the payload of an HC stream is malformed or truncated.
var ErrCorrupt = errors.New("huffman: corrupt stream")

// ErrTooLarge is returned when the input exceeds MaxFileSize bytes.
var ErrTooLarge = errors.New("huffman: input too large")

// OpenError reports that an underlying file could not be opened.
type OpenError struct {
	Op   string
	Path string
	Err  error
}

// Error fulfills the error interface.
func (err *OpenError) Error() string {
	return fmt.Sprintf("huffman: failed to open %q for %s: %v", err.Path, err.Op, err.Err)
}

// Unwrap returns the underlying error.
func (err *OpenError) Unwrap() error {
	return err.Err
}

var _ error = (*OpenError)(nil)

func corruptf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrCorrupt, fmt.Sprintf(format, args...))
}
