package session

import (
	"errors"
	"fmt"
)

// InputError is a recoverable validation failure: the caller shows Message
// and asks again. Any other error returned by this package is fatal.
type InputError struct {
	Input   string
	Message string
}

func (e *InputError) Error() string {
	if e.Input == "" {
		return e.Message
	}
	return fmt.Sprintf("%s (got %q)", e.Message, e.Input)
}

// IsInputError reports whether err is, or wraps, an *InputError.
func IsInputError(err error) bool {
	var ie *InputError
	return errors.As(err, &ie)
}

// ErrCreated is returned by Creator.Submit once the record exists.
var ErrCreated = errors.New("record already created")

func invalid(input, message string) error {
	return &InputError{Input: input, Message: message}
}
