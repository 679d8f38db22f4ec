package feature

import (
	"errors"
	"fmt"
)

// ErrEmptyMessage is returned by Log when the message is missing or blank.
var ErrEmptyMessage = errors.New("log message must not be empty")

// MissingPathError reports a directory or file precondition that does not
// hold. The hint tells the caller how to satisfy it.
type MissingPathError struct {
	Path string
	Hint string
}

func (e *MissingPathError) Error() string {
	if e.Hint != "" {
		return fmt.Sprintf("%s does not exist (%s)", e.Path, e.Hint)
	}
	return fmt.Sprintf("%s does not exist", e.Path)
}

// IsMissingPath returns true if the error is a MissingPathError.
func IsMissingPath(err error) bool {
	var mp *MissingPathError
	return errors.As(err, &mp)
}
