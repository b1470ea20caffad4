package chess

import (
	"fmt"

	"github.com/lgbarn/movegen-go/internal/errors"
)

// Board is a square grid snapshot. Squares hold piece ids rather than
// references; pieces live in an arena indexed by id.
type Board struct {
	size int

	// squares[row*size+col] is the id of the occupant, or NoPiece.
	squares []PieceID

	// arena[id-1] is the piece with that id. Removed pieces stay in the
	// arena so stale ids remain detectable.
	arena []Piece

	// Who has the next move. The engine never reads this; it is carried
	// for FEN round-trips and side-wide enumeration by callers.
	ToMove Colour
}

// NewBoard creates a new empty 8×8 board.
func NewBoard() *Board {
	b, _ := NewBoardSize(BoardSize)
	return b
}

// NewBoardSize creates an empty board with size×size squares.
func NewBoardSize(size int) (*Board, error) {
	if size < 1 || size > MaxBoardSize {
		return nil, fmt.Errorf("size %d: %w", size, errors.ErrInvalidBoardSize)
	}
	return &Board{
		size:    size,
		squares: make([]PieceID, size*size),
		ToMove:  White,
	}, nil
}

// Size returns the number of rows (and columns) of the board.
func (b *Board) Size() int {
	return b.size
}

// InBounds reports whether c lies on the board.
func (b *Board) InBounds(c Coordinate) bool {
	return c.Row >= 0 && c.Row < b.size && c.Col >= 0 && c.Col < b.size
}

func (b *Board) index(c Coordinate) int {
	return c.Row*b.size + c.Col
}

// IDAt returns the id of the piece on c, or NoPiece for an empty or
// off-board square.
func (b *Board) IDAt(c Coordinate) PieceID {
	if !b.InBounds(c) {
		return NoPiece
	}
	return b.squares[b.index(c)]
}

// OccupantAt returns the piece on c. ok is false for empty or off-board
// squares.
func (b *Board) OccupantAt(c Coordinate) (p Piece, ok bool) {
	return b.Piece(b.IDAt(c))
}

// Empty reports whether c is on the board and unoccupied.
func (b *Board) Empty(c Coordinate) bool {
	return b.InBounds(c) && b.squares[b.index(c)] == NoPiece
}

// Piece returns the arena record for id.
func (b *Board) Piece(id PieceID) (Piece, bool) {
	if id == NoPiece || int(id) > len(b.arena) {
		return Piece{}, false
	}
	return b.arena[id-1], true
}

// Locate returns the square currently holding id. ok is false when the
// piece is unknown or has been removed.
func (b *Board) Locate(id PieceID) (c Coordinate, ok bool) {
	if id == NoPiece {
		return Coordinate{}, false
	}
	for i, sq := range b.squares {
		if sq == id {
			return Coordinate{Row: i / b.size, Col: i % b.size}, true
		}
	}
	return Coordinate{}, false
}

// Place puts a new piece on an empty square and returns its id.
func (b *Board) Place(rank Rank, colour Colour, at Coordinate) (PieceID, error) {
	if !rank.Valid() {
		return NoPiece, fmt.Errorf("place %v: %w", rank, errors.ErrInvalidRank)
	}
	if !b.InBounds(at) {
		return NoPiece, fmt.Errorf("place %s %s on %s: %w", colour, rank, at, errors.ErrOutOfBounds)
	}
	if b.squares[b.index(at)] != NoPiece {
		return NoPiece, fmt.Errorf("place %s %s on %s: %w", colour, rank, at, errors.ErrOccupied)
	}
	if len(b.arena) >= MaxPieces {
		return NoPiece, fmt.Errorf("place %s %s on %s: %w", colour, rank, at, errors.ErrArenaFull)
	}
	id := PieceID(len(b.arena) + 1)
	b.arena = append(b.arena, Piece{ID: id, Rank: rank, Colour: colour})
	b.squares[b.index(at)] = id
	return id, nil
}

// MustPlace is Place for fixtures; it panics on error.
func (b *Board) MustPlace(rank Rank, colour Colour, at Coordinate) Piece {
	id, err := b.Place(rank, colour, at)
	if err != nil {
		panic(err)
	}
	p, _ := b.Piece(id)
	return p
}

// Remove clears c and returns the id that was there.
func (b *Board) Remove(c Coordinate) PieceID {
	if !b.InBounds(c) {
		return NoPiece
	}
	i := b.index(c)
	id := b.squares[i]
	b.squares[i] = NoPiece
	return id
}

// Relocate moves the occupant of from to the empty square to. It is a
// fixture helper; no chess rules are applied.
func (b *Board) Relocate(from, to Coordinate) error {
	if !b.InBounds(from) || !b.InBounds(to) {
		return fmt.Errorf("relocate %s-%s: %w", from, to, errors.ErrOutOfBounds)
	}
	id := b.squares[b.index(from)]
	if id == NoPiece {
		return fmt.Errorf("relocate %s-%s: %w", from, to, errors.ErrPieceNotOnBoard)
	}
	if b.squares[b.index(to)] != NoPiece {
		return fmt.Errorf("relocate %s-%s: %w", from, to, errors.ErrOccupied)
	}
	b.squares[b.index(to)] = id
	b.squares[b.index(from)] = NoPiece
	return nil
}

// PlacedPiece pairs a piece with the square it was found on.
type PlacedPiece struct {
	Piece
	At Coordinate
}

// Pieces returns every piece on the board in row-major square order.
func (b *Board) Pieces() []PlacedPiece {
	var out []PlacedPiece
	for i, id := range b.squares {
		if id == NoPiece {
			continue
		}
		out = append(out, PlacedPiece{
			Piece: b.arena[id-1],
			At:    Coordinate{Row: i / b.size, Col: i % b.size},
		})
	}
	return out
}

// Copy creates a deep copy of the board, preserving piece ids.
func (b *Board) Copy() *Board {
	nb := &Board{
		size:    b.size,
		squares: make([]PieceID, len(b.squares)),
		arena:   make([]Piece, len(b.arena)),
		ToMove:  b.ToMove,
	}
	copy(nb.squares, b.squares)
	copy(nb.arena, b.arena)
	return nb
}

// SetupInitialPosition sets up the standard chess starting position. Only
// 8×8 boards have one.
func (b *Board) SetupInitialPosition() error {
	if b.size != BoardSize {
		return fmt.Errorf("initial position on %dx%d board: %w", b.size, b.size, errors.ErrInvalidBoardSize)
	}
	for i := range b.squares {
		b.squares[i] = NoPiece
	}
	b.arena = b.arena[:0]

	backRank := []Rank{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for col, rank := range backRank {
		b.MustPlace(rank, White, Coord(0, col))
		b.MustPlace(Pawn, White, Coord(1, col))
		b.MustPlace(Pawn, Black, Coord(6, col))
		b.MustPlace(rank, Black, Coord(7, col))
	}
	b.ToMove = White
	return nil
}
