// Package output renders destination sets as text or JSON.
package output

import (
	"strings"

	"github.com/lgbarn/movegen-go/internal/chess"
	"github.com/lgbarn/movegen-go/internal/engine"
)

// Snapshot is the result of querying one board.
type Snapshot struct {
	Index     int    `json:"index"` // 1-based position in the input
	FEN       string `json:"fen,omitempty"`
	Size      int    `json:"size,omitempty"`
	ToMove    string `json:"toMove,omitempty"`
	Sides     []Side `json:"sides,omitempty"`
	Query     *Query `json:"query,omitempty"`
	Duplicate bool   `json:"duplicate,omitempty"`
	Error     string `json:"error,omitempty"`
}

// Side holds the destinations of every piece of one colour.
type Side struct {
	Colour string       `json:"colour"`
	Pieces []PieceMoves `json:"pieces"`
}

// Query is the answer to a single from/to legality check.
type Query struct {
	From  chess.Coordinate `json:"from"`
	To    chess.Coordinate `json:"to"`
	Legal bool             `json:"legal"`
}

// PieceMoves is one piece and the squares it may move to.
type PieceMoves struct {
	ID           int                `json:"id"`
	Piece        string             `json:"piece"`
	Letter       string             `json:"letter"` // FEN letter, lowercase for black
	Square       chess.Coordinate   `json:"square"`
	Destinations []chess.Coordinate `json:"destinations"`
}

// NewSnapshot starts a snapshot for board. index is 1-based.
func NewSnapshot(index int, board *chess.Board) *Snapshot {
	return &Snapshot{
		Index:  index,
		FEN:    engine.BoardToFEN(board),
		Size:   board.Size(),
		ToMove: colourName(board.ToMove),
	}
}

// ErrorSnapshot records a snapshot that could not be processed.
func ErrorSnapshot(index int, err error) *Snapshot {
	return &Snapshot{Index: index, Error: err.Error()}
}

// AddSide appends the destinations of colour's pieces, in board order.
func (s *Snapshot) AddSide(board *chess.Board, colour chess.Colour, moves map[chess.PieceID]engine.MoveSet) {
	side := Side{Colour: colourName(colour), Pieces: []PieceMoves{}}
	for _, pp := range board.Pieces() {
		if pp.Colour != colour {
			continue
		}
		side.Pieces = append(side.Pieces, PieceMoves{
			ID:           int(pp.ID),
			Piece:        pieceTypeName(pp.Rank),
			Letter:       string(pp.Letter()),
			Square:       pp.At,
			Destinations: moves[pp.ID].Sorted(),
		})
	}
	s.Sides = append(s.Sides, side)
}

// Restrict drops every piece except the one standing on sq. Sides left
// empty are dropped too.
func (s *Snapshot) Restrict(sq chess.Coordinate) {
	var sides []Side
	for _, side := range s.Sides {
		for _, p := range side.Pieces {
			if p.Square == sq {
				sides = append(sides, Side{Colour: side.Colour, Pieces: []PieceMoves{p}})
			}
		}
	}
	s.Sides = sides
}

// MoveCount returns the total number of destinations in the snapshot.
func (s *Snapshot) MoveCount() int {
	n := 0
	for _, side := range s.Sides {
		for _, p := range side.Pieces {
			n += len(p.Destinations)
		}
	}
	return n
}

// withoutImmobile returns a copy of s without pieces that cannot move.
func (s *Snapshot) withoutImmobile() *Snapshot {
	out := *s
	out.Sides = make([]Side, len(s.Sides))
	for i, side := range s.Sides {
		out.Sides[i] = Side{Colour: side.Colour, Pieces: []PieceMoves{}}
		for _, p := range side.Pieces {
			if len(p.Destinations) > 0 {
				out.Sides[i].Pieces = append(out.Sides[i].Pieces, p)
			}
		}
	}
	return &out
}

// colourName returns "white" or "black".
func colourName(c chess.Colour) string {
	return strings.ToLower(c.String())
}

// pieceTypeName returns the rank as a lowercase word.
func pieceTypeName(r chess.Rank) string {
	return strings.ToLower(r.String())
}
