package engine

import (
	"github.com/lgbarn/movegen-go/internal/chess"
	"github.com/lgbarn/movegen-go/internal/errors"
)

// Strategy enumerates the destinations of a piece of one rank standing on
// from, moving for side.
type Strategy func(board *chess.Board, from chess.Coordinate, side chess.Colour) MoveSet

// strategies is the dispatch table, one slot per rank.
var strategies = [...]Strategy{
	chess.Pawn:   pawnDestinations,
	chess.Knight: knightDestinations,
	chess.Bishop: bishopDestinations,
	chess.Rook:   rookDestinations,
	chess.Queen:  queenDestinations,
	chess.King:   kingDestinations,
}

// Does not compile unless the table has exactly chess.NumRanks slots.
var _ = [1]struct{}{}[len(strategies)-int(chess.NumRanks)]

func init() {
	for r, s := range strategies {
		if s == nil {
			panic(errors.Internalf("dispatch", "no strategy for %v", chess.Rank(r)))
		}
	}
}

// StrategyFor returns the strategy of rank. A rank outside the closed set
// is an engine defect and panics with *errors.InternalError.
func StrategyFor(rank chess.Rank) Strategy {
	mustHandle(rank)
	return strategies[rank]
}

// mustHandle panics unless rank has a slot in the dispatch table.
func mustHandle(rank chess.Rank) {
	if !rank.Valid() {
		panic(errors.Internalf("dispatch", "unhandled rank %v", rank))
	}
}

func slideAll(board *chess.Board, from chess.Coordinate, side chess.Colour, dirs []chess.Direction) MoveSet {
	var buf []chess.Coordinate
	for _, d := range dirs {
		buf = walk(board, from, d, side, 0, buf)
	}
	return NewMoveSet(buf...)
}

func bishopDestinations(board *chess.Board, from chess.Coordinate, side chess.Colour) MoveSet {
	return slideAll(board, from, side, chess.DiagonalDirections[:])
}

func rookDestinations(board *chess.Board, from chess.Coordinate, side chess.Colour) MoveSet {
	return slideAll(board, from, side, chess.OrthogonalDirections[:])
}

func queenDestinations(board *chess.Board, from chess.Coordinate, side chess.Colour) MoveSet {
	return bishopDestinations(board, from, side).Union(rookDestinations(board, from, side))
}

func kingDestinations(board *chess.Board, from chess.Coordinate, side chess.Colour) MoveSet {
	return NewMoveSet(Leap(board, from, KingOffsets, side)...)
}

func knightDestinations(board *chess.Board, from chess.Coordinate, side chess.Colour) MoveSet {
	return NewMoveSet(Leap(board, from, KnightOffsets, side)...)
}
