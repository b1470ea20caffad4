package engine

import "github.com/lgbarn/movegen-go/internal/chess"

// canReach decides whether a piece of rank on from may move to to without
// enumerating its destinations: a geometric test on the deltas followed by
// an obstruction scan along the implied line.
func canReach(board *chess.Board, rank chess.Rank, from, to chess.Coordinate, side chess.Colour) bool {
	if !board.InBounds(to) || from == to {
		return false
	}
	if occupant, ok := board.OccupantAt(to); ok && occupant.Colour == side {
		return false
	}

	dr, dc := from.Delta(to)
	rowDiff, colDiff := abs(dr), abs(dc)

	switch rank {
	case chess.Pawn:
		return pawnCanReach(board, from, to, side)

	case chess.Knight:
		return (colDiff == 1 && rowDiff == 2) || (colDiff == 2 && rowDiff == 1)

	case chess.Bishop:
		if colDiff != rowDiff {
			return false
		}
		return isPathClear(board, from, to)

	case chess.Rook:
		if colDiff != 0 && rowDiff != 0 {
			return false
		}
		return isPathClear(board, from, to)

	case chess.Queen:
		if colDiff == rowDiff || colDiff == 0 || rowDiff == 0 {
			return isPathClear(board, from, to)
		}
		return false

	case chess.King:
		return colDiff <= 1 && rowDiff <= 1
	}

	return false
}

// isPathClear checks that every square strictly between from and to is
// empty. from and to must share a row, column or diagonal.
func isPathClear(board *chess.Board, from, to chess.Coordinate) bool {
	dir, ok := chess.DirectionOf(from, to)
	if !ok {
		return false
	}
	for sq := from.Step(dir); sq != to; sq = sq.Step(dir) {
		if !board.Empty(sq) {
			return false
		}
	}
	return true
}
