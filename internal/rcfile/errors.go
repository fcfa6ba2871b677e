package rcfile

import (
	"errors"
	"fmt"
)

// ErrCircularExtends is returned when an extends chain references a file
// that is already being loaded higher up the same chain.
var ErrCircularExtends = errors.New("circular extends reference")

// ParseError reports an rc file that could not be read or decoded. It
// wraps the underlying filesystem or decode error.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse rc file %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
