package record

import (
	"encoding/csv"
	"errors"
	"fmt"
)

var (
	// ErrBadHeader is returned when a record does not start with the
	// time,score header.
	ErrBadHeader = errors.New("missing time,score header")

	// ErrNoRows is returned when a record holds a header and nothing else.
	ErrNoRows = errors.New("record has no rows")
)

// RowError reports malformed existing data at a given line.
type RowError struct {
	Line int
	Err  error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *RowError) Unwrap() error {
	return e.Err
}

func rowError(err error) error {
	var pe *csv.ParseError
	if errors.As(err, &pe) {
		return &RowError{Line: pe.Line, Err: pe.Err}
	}
	return err
}
