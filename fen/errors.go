package fen

import (
	"errors"
	"fmt"
)

// Sentinel kinds carried by ParseError. Match them with errors.Is.
var (
	ErrMissingFields        = errors.New("fen must have 6 fields")
	ErrMalformedRank        = errors.New("malformed rank")
	ErrInvalidPieceChar     = errors.New("invalid piece character")
	ErrInvalidSideToMove    = errors.New("invalid side to move")
	ErrInvalidCastling      = errors.New("invalid castling rights")
	ErrInvalidEnPassant     = errors.New("invalid en passant target")
	ErrInvalidHalfMoveClock = errors.New("invalid half move clock")
	ErrInvalidFullMoveClock = errors.New("invalid full move clock")
	ErrInvalidSquare        = errors.New("invalid square")
)

// ParseError reports which field of the input was rejected and why. Cause,
// when set, is the lower level error that rejected the field.
type ParseError struct {
	Err   error
	Text  string
	Cause error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%v: %q", e.Err, e.Text)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Is matches target against Cause as well as Err.
func (e *ParseError) Is(target error) bool {
	return e.Cause != nil && errors.Is(e.Cause, target)
}

func parseError(kind error, text string) *ParseError {
	return &ParseError{Err: kind, Text: text}
}
