package nailbox

import (
	"errors"
	"fmt"
)

// Sentinel errors for the nailbox package.
var (
	// Input errors
	ErrParse        = errors.New("nailbox: malformed sequence token")
	ErrInvalidInput = errors.New("nailbox: invalid input")

	// Configuration errors
	ErrUnresolvedNail = errors.New("nailbox: nail address outside the grid")
	ErrInvalidConfig  = errors.New("nailbox: invalid box configuration")

	// State errors
	ErrNoSequence = errors.New("nailbox: no sequence loaded")
)

// ParseError describes a sequence token that could not be decoded.
type ParseError struct {
	Token  int    // 1-based token number, 0 when the failure is between tokens
	Line   int    // 1-based line of the offending text
	Text   string // offending text as it appeared in the input
	Reason string
}

func (e *ParseError) Error() string {
	if e.Token > 0 {
		return fmt.Sprintf("%v: token %d (line %d) %q: %s", ErrParse, e.Token, e.Line, e.Text, e.Reason)
	}
	return fmt.Sprintf("%v: line %d %q: %s", ErrParse, e.Line, e.Text, e.Reason)
}

// Unwrap lets errors.Is match ErrParse.
func (e *ParseError) Unwrap() error {
	return ErrParse
}
