// Package validation guards the boundary in front of the scheduling and
// stats engines: the engines are total for well-formed input, so anything
// malformed has to be rejected before it reaches them.
package validation

import "fmt"

// Error marks a client-input failure so handlers can map it to a 400
// instead of a 500.
type Error struct {
	msg string
}

func (e *Error) Error() string {
	return e.msg
}

func errorf(format string, args ...any) error {
	return &Error{msg: fmt.Sprintf(format, args...)}
}
