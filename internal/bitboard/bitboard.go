// Package bitboard computes slider targets on standard 8×8 boards with
// dragontoothmg's magic bitboards. The engine uses it as an independent
// second implementation when cross-checking its own walk-based results.
package bitboard

import (
	"math/bits"

	"github.com/dylhunn/dragontoothmg"

	"github.com/lgbarn/movegen-go/internal/chess"
)

// Square converts c to a little-endian rank-file index (a1 = 0, h8 = 63).
func Square(c chess.Coordinate) uint8 {
	return uint8(c.Row*chess.BoardSize + c.Col)
}

// Coordinate is the inverse of Square.
func Coordinate(sq uint8) chess.Coordinate {
	return chess.Coord(int(sq)/chess.BoardSize, int(sq)%chess.BoardSize)
}

// Occupancy returns the occupied squares of each colour on an 8×8 board.
// ok is false for any other board size.
func Occupancy(board *chess.Board) (white, black uint64, ok bool) {
	if board == nil || board.Size() != chess.BoardSize {
		return 0, 0, false
	}
	for _, pp := range board.Pieces() {
		bit := uint64(1) << Square(pp.At)
		if pp.Colour == chess.White {
			white |= bit
		} else {
			black |= bit
		}
	}
	return white, black, true
}

// SliderTargets returns the bitboard of squares a bishop, rook or queen of
// side standing on from could move to. ok is false when the board is not
// 8×8 or rank does not slide.
func SliderTargets(board *chess.Board, rank chess.Rank, side chess.Colour, from chess.Coordinate) (targets uint64, ok bool) {
	if !rank.Slider() || !board.InBounds(from) {
		return 0, false
	}
	white, black, ok := Occupancy(board)
	if !ok {
		return 0, false
	}
	friendly := black
	if side == chess.White {
		friendly = white
	}
	sq := Square(from)
	// The moving piece must not block itself.
	all := (white | black) &^ (uint64(1) << sq)

	switch rank {
	case chess.Bishop:
		targets = dragontoothmg.CalculateBishopMoveBitboard(sq, all)
	case chess.Rook:
		targets = dragontoothmg.CalculateRookMoveBitboard(sq, all)
	case chess.Queen:
		targets = dragontoothmg.CalculateBishopMoveBitboard(sq, all) |
			dragontoothmg.CalculateRookMoveBitboard(sq, all)
	}
	return targets &^ friendly, true
}

// Squares expands a bitboard into coordinates, lowest index first.
func Squares(bb uint64) []chess.Coordinate {
	out := make([]chess.Coordinate, 0, bits.OnesCount64(bb))
	for bb != 0 {
		sq := uint8(bits.TrailingZeros64(bb))
		out = append(out, Coordinate(sq))
		bb &= bb - 1
	}
	return out
}
