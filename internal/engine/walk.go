package engine

import "github.com/lgbarn/movegen-go/internal/chess"

// Offset is a fixed (dRow, dCol) jump used by Leap.
type Offset struct {
	DRow, DCol int
}

var (
	// KnightOffsets are the eight L-shaped jumps.
	KnightOffsets = []Offset{
		{1, 2}, {2, 1}, {2, -1}, {1, -2},
		{-1, -2}, {-2, -1}, {-2, 1}, {-1, 2},
	}

	// KingOffsets are the eight unit steps.
	KingOffsets = unitOffsets()
)

func unitOffsets() []Offset {
	out := make([]Offset, 0, len(chess.AllDirections))
	for _, d := range chess.AllDirections {
		dr, dc := d.Delta()
		out = append(out, Offset{dr, dc})
	}
	return out
}

// Slide walks from origin one step at a time in dir on behalf of side.
// Empty squares are collected and the walk continues; the first occupied
// square ends it and is collected only when it holds an enemy piece. The
// origin itself is never collected. Squares are returned nearest first.
func Slide(board *chess.Board, origin chess.Coordinate, dir chess.Direction, side chess.Colour) []chess.Coordinate {
	return walk(board, origin, dir, side, 0, nil)
}

// walk is Slide with an optional step limit (0 = unbounded) appending to
// dst.
func walk(board *chess.Board, origin chess.Coordinate, dir chess.Direction, side chess.Colour, limit int, dst []chess.Coordinate) []chess.Coordinate {
	dr, dc := dir.Delta()
	if dr == 0 && dc == 0 {
		return dst
	}
	sq := origin
	for steps := 0; limit == 0 || steps < limit; steps++ {
		sq = sq.Add(dr, dc)
		if !board.InBounds(sq) {
			break
		}
		occupant, ok := board.OccupantAt(sq)
		if !ok {
			dst = append(dst, sq)
			continue
		}
		if occupant.Colour != side {
			dst = append(dst, sq)
		}
		break
	}
	return dst
}

// Leap probes each offset from origin on behalf of side and keeps the
// targets that are on the board and not held by a friendly piece. Nothing
// between origin and target is inspected.
func Leap(board *chess.Board, origin chess.Coordinate, offsets []Offset, side chess.Colour) []chess.Coordinate {
	return leapInto(board, origin, offsets, side, nil)
}

func leapInto(board *chess.Board, origin chess.Coordinate, offsets []Offset, side chess.Colour, dst []chess.Coordinate) []chess.Coordinate {
	for _, off := range offsets {
		sq := origin.Add(off.DRow, off.DCol)
		if !board.InBounds(sq) {
			continue
		}
		if occupant, ok := board.OccupantAt(sq); ok && occupant.Colour == side {
			continue
		}
		dst = append(dst, sq)
	}
	return dst
}
