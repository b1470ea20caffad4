// Package errors provides sentinel errors and error types for the move
// engine. It separates caller mistakes (precondition violations) from engine
// defects (internal errors) and keeps enough context on each to inspect them
// with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for precondition violations and input problems.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrNilBoard indicates a query was made without a board.
	ErrNilBoard = errors.New("nil board")

	// ErrNilPiece indicates a query was made without a piece.
	ErrNilPiece = errors.New("nil piece")

	// ErrPieceNotOnBoard indicates the piece has no square on the board.
	ErrPieceNotOnBoard = errors.New("piece not on board")

	// ErrStalePiece indicates the caller's piece disagrees with the
	// board's record for the same id.
	ErrStalePiece = errors.New("stale piece")

	// ErrOutOfBounds indicates a coordinate outside the board.
	ErrOutOfBounds = errors.New("square out of bounds")

	// ErrOccupied indicates a piece was placed on an occupied square.
	ErrOccupied = errors.New("square occupied")

	// ErrArenaFull indicates a board has handed out every piece id.
	ErrArenaFull = errors.New("piece arena full")

	// ErrInvalidRank indicates a rank tag outside the closed set.
	ErrInvalidRank = errors.New("invalid rank")

	// ErrInvalidBoardSize indicates an unsupported board size.
	ErrInvalidBoardSize = errors.New("invalid board size")

	// ErrInvalidSquare indicates malformed square notation.
	ErrInvalidSquare = errors.New("invalid square")

	// ErrInvalidFEN indicates a malformed FEN string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrInternal marks a defect in the engine itself. It is never a
	// consequence of caller input.
	ErrInternal = errors.New("internal engine error")
)

// QueryError wraps a precondition failure with the context of the engine
// query that hit it.
type QueryError struct {
	Err     error  // The underlying error
	Op      string // Engine operation, e.g. "destinations"
	PieceID int    // Piece id (0 if not applicable)
	Rank    string // Piece rank name (if known)
	Square  string // Square involved (if known)
}

// Error returns a formatted error message including all available context.
func (e *QueryError) Error() string {
	var parts []string

	if e.Op != "" {
		parts = append(parts, e.Op)
	}
	if e.PieceID > 0 {
		if e.Rank != "" {
			parts = append(parts, fmt.Sprintf("%s #%d", e.Rank, e.PieceID))
		} else {
			parts = append(parts, fmt.Sprintf("piece #%d", e.PieceID))
		}
	}
	if e.Square != "" {
		parts = append(parts, fmt.Sprintf("square %s", e.Square))
	}

	context := strings.Join(parts, ", ")
	if e.Err != nil {
		if context == "" {
			return e.Err.Error()
		}
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
	if context == "" {
		return "query error"
	}
	return context
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the QueryError wrapper.
func (e *QueryError) Unwrap() error {
	return e.Err
}

// InternalError reports an engine defect: a rank with no strategy, or the
// legality check disagreeing with enumeration. It always unwraps to
// ErrInternal.
type InternalError struct {
	Op     string // Where the defect surfaced
	Detail string // What was inconsistent
}

func (e *InternalError) Error() string {
	if e.Op == "" {
		return fmt.Sprintf("%v: %s", ErrInternal, e.Detail)
	}
	return fmt.Sprintf("%v: %s: %s", ErrInternal, e.Op, e.Detail)
}

// Unwrap returns ErrInternal.
func (e *InternalError) Unwrap() error {
	return ErrInternal
}

// Internalf builds an InternalError with a formatted detail.
func Internalf(op, format string, args ...interface{}) *InternalError {
	return &InternalError{Op: op, Detail: fmt.Sprintf(format, args...)}
}

// ParseError represents a text parsing error with position context.
// It's used for FEN strings and batch input lines.
type ParseError struct {
	Err      error  // The underlying error
	File     string // Source file name
	Line     int    // Line number (1-based)
	Column   int    // Column number (1-based)
	Expected string // What was expected (for syntax errors)
	Got      string // What was found instead
}

// Error returns a formatted error message with location and context.
func (e *ParseError) Error() string {
	var parts []string

	if e.File != "" {
		loc := e.File
		if e.Line > 0 {
			loc += fmt.Sprintf(":%d", e.Line)
			if e.Column > 0 {
				loc += fmt.Sprintf(":%d", e.Column)
			}
		}
		parts = append(parts, loc)
	} else if e.Line > 0 {
		parts = append(parts, fmt.Sprintf("line %d", e.Line))
	}

	if e.Expected != "" && e.Got != "" {
		parts = append(parts, fmt.Sprintf("expected %s, got %s", e.Expected, e.Got))
	} else if e.Expected != "" {
		parts = append(parts, fmt.Sprintf("expected %s", e.Expected))
	} else if e.Got != "" {
		parts = append(parts, fmt.Sprintf("unexpected %s", e.Got))
	}

	if e.Err != nil {
		if len(parts) > 0 {
			return fmt.Sprintf("%s: %v", strings.Join(parts, ": "), e.Err)
		}
		return e.Err.Error()
	}

	if len(parts) > 0 {
		return strings.Join(parts, ": ")
	}
	return "parse error"
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// IsPrecondition reports whether err is one of the caller-side query
// failures rather than an engine defect.
func IsPrecondition(err error) bool {
	return errors.Is(err, ErrNilBoard) ||
		errors.Is(err, ErrNilPiece) ||
		errors.Is(err, ErrPieceNotOnBoard) ||
		errors.Is(err, ErrStalePiece) ||
		errors.Is(err, ErrOutOfBounds)
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
