package nestedtext

import (
	"errors"
	"fmt"
)

// The structural errors reported by [Parse]. Every parse failure is a
// [*ParseError] wrapping one of these; match with [errors.Is].
var (
	// ErrUnrecognizedLine marks a line that matches none of the string,
	// list, or object forms.
	ErrUnrecognizedLine = errors.New("unrecognized line")

	// ErrInvalidItem marks a line whose kind does not match the block it
	// appears in, such as a list item inside an object block.
	ErrInvalidItem = errors.New("invalid item")

	// ErrInvalidIndentation marks a line whose depth is inconsistent with
	// the nesting rules.
	ErrInvalidIndentation = errors.New("invalid indentation")

	// ErrDuplicateKey marks a repeated object key under the [Reject]
	// policy.
	ErrDuplicateKey = errors.New("duplicate key")
)

// ParseError reports why a document could not be parsed and the 1-based
// line number the problem was detected on. Parsing is all-or-nothing: the
// first error aborts the parse and no partial tree is returned.
type ParseError struct {
	Lno    int
	Err    error
	Detail string
}

func (e *ParseError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("%d: %s", e.Lno, e.Err)
	}
	return fmt.Sprintf("%d: %s: %s", e.Lno, e.Err, e.Detail)
}

func (e *ParseError) Unwrap() error { return e.Err }

func parseErr(l *line, err error, detail string) *ParseError {
	return &ParseError{Lno: l.lno, Err: err, Detail: detail}
}
