// Package chess provides the board, coordinate and piece types consumed by
// the move engine.
package chess

import (
	"fmt"
	"math"
)

// Colour represents the colour of a piece or player.
type Colour int

const (
	Black Colour = iota
	White
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// ParseColour accepts "w", "white", "b" or "black" in any case.
func ParseColour(s string) (Colour, bool) {
	switch s {
	case "w", "W", "white", "White", "WHITE":
		return White, true
	case "b", "B", "black", "Black", "BLACK":
		return Black, true
	}
	return Black, false
}

// Forward returns the row step that moves a pawn of the colour toward the
// opposing home row: +1 for White, -1 for Black.
func Forward(colour Colour) int {
	if colour == White {
		return 1
	}
	return -1
}

// StartRow returns the pawn starting row for colour on a board of the given
// size.
func StartRow(colour Colour, size int) int {
	if colour == White {
		return 1
	}
	return size - 2
}

// Rank is the movement class of a piece. The set of ranks is closed.
type Rank uint8

const (
	Pawn Rank = iota
	Knight
	Bishop
	Rook
	Queen
	King
	NumRanks
)

// Ranks lists every rank in tag order.
var Ranks = [NumRanks]Rank{Pawn, Knight, Bishop, Rook, Queen, King}

var rankNames = [NumRanks]string{"Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}

var rankLetters = [NumRanks]byte{'P', 'N', 'B', 'R', 'Q', 'K'}

// Valid reports whether r is one of the six ranks.
func (r Rank) Valid() bool {
	return r < NumRanks
}

// String returns the string representation of a rank.
func (r Rank) String() string {
	if r.Valid() {
		return rankNames[r]
	}
	return fmt.Sprintf("Rank(%d)", uint8(r))
}

// Letter returns the single letter representation of a rank (uppercase).
func (r Rank) Letter() byte {
	if r.Valid() {
		return rankLetters[r]
	}
	return '?'
}

// Slider reports whether the rank moves an unbounded distance.
func (r Rank) Slider() bool {
	return r == Bishop || r == Rook || r == Queen
}

// RankFromLetter converts a FEN/SAN piece letter in either case to a rank.
func RankFromLetter(c byte) (Rank, bool) {
	switch c {
	case 'P', 'p':
		return Pawn, true
	case 'N', 'n':
		return Knight, true
	case 'B', 'b':
		return Bishop, true
	case 'R', 'r':
		return Rook, true
	case 'Q', 'q':
		return Queen, true
	case 'K', 'k':
		return King, true
	}
	return 0, false
}

// PieceID identifies a piece in a board's arena. Zero means no piece.
type PieceID uint16

// NoPiece is the id stored in empty squares.
const NoPiece PieceID = 0

// MaxPieces is the number of ids one board can hand out. Removed pieces
// keep their id, so this bounds Place calls, not pieces on the board.
const MaxPieces = math.MaxUint16

// Piece is a piece as the engine consumes it. Its square is not stored
// here; it is looked up from the board that holds the piece.
type Piece struct {
	ID     PieceID
	Rank   Rank
	Colour Colour
}

// Letter returns the FEN letter of the piece: uppercase for White.
func (p Piece) Letter() byte {
	l := p.Rank.Letter()
	if p.Colour == Black && l >= 'A' && l <= 'Z' {
		l += 'a' - 'A'
	}
	return l
}

// String returns e.g. "White Knight #3".
func (p Piece) String() string {
	return fmt.Sprintf("%s %s #%d", p.Colour, p.Rank, p.ID)
}

// Constants for board dimensions.
const (
	BoardSize    = 8
	MaxBoardSize = 26 // one file letter per column
)
