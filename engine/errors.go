package engine

import "errors"

// Sentinel errors for the parse-error taxonomy of the external interfaces:
// invalid FEN, invalid square, invalid move string. None of these ever
// panics the engine; they are always returned to the immediate caller.
var (
	ErrInvalidSquare = errors.New("invalid square")
	ErrInvalidFEN    = errors.New("invalid FEN")
	ErrInvalidMove   = errors.New("invalid move")
)
