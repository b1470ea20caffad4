package engine

import "github.com/lgbarn/movegen-go/internal/chess"

// pawnDestinations applies the pawn's asymmetric rules. Straight advances
// never capture; diagonal steps only capture. The double step is allowed
// from the side's starting row, whatever the pawn's history, so snapshots
// loaded mid-game behave the same as played-out games.
func pawnDestinations(board *chess.Board, from chess.Coordinate, side chess.Colour) MoveSet {
	moves := make(MoveSet, 4)
	dir := chess.Forward(side)

	one := from.Add(dir, 0)
	if board.Empty(one) {
		moves.Add(one)
		if from.Row == chess.StartRow(side, board.Size()) {
			two := from.Add(2*dir, 0)
			if board.Empty(two) {
				moves.Add(two)
			}
		}
	}

	for _, dc := range [2]int{-1, 1} {
		target := from.Add(dir, dc)
		if pawnCaptures(board, target, side) {
			moves.Add(target)
		}
	}
	return moves
}

// pawnCaptures reports whether target holds an enemy of side.
func pawnCaptures(board *chess.Board, target chess.Coordinate, side chess.Colour) bool {
	occupant, ok := board.OccupantAt(target)
	return ok && occupant.Colour != side
}

// pawnCanReach is the closed-form pawn test used by IsLegal.
func pawnCanReach(board *chess.Board, from, to chess.Coordinate, side chess.Colour) bool {
	dir := chess.Forward(side)
	dr, dc := from.Delta(to)

	switch {
	case dc == 0 && dr == dir:
		return board.Empty(to)
	case dc == 0 && dr == 2*dir:
		return from.Row == chess.StartRow(side, board.Size()) &&
			board.Empty(from.Add(dir, 0)) &&
			board.Empty(to)
	case (dc == 1 || dc == -1) && dr == dir:
		return pawnCaptures(board, to, side)
	}
	return false
}
