package engine

import "github.com/lgbarn/movegen-go/internal/chess"

// Attackers returns the squares of every piece of colour by that attacks
// target, ordered by row then column. The walk primitives run in reverse:
// from the target outward, stopping at the first piece in each line.
// Whatever stands on target itself is ignored.
func Attackers(board *chess.Board, target chess.Coordinate, by chess.Colour) []chess.Coordinate {
	if board == nil || !board.InBounds(target) {
		return nil
	}
	found := make(MoveSet)
	scanAttackers(board, target, by, func(sq chess.Coordinate) bool {
		found.Add(sq)
		return false
	})
	return found.Sorted()
}

// IsSquareAttacked returns true if the square is attacked by the given
// colour.
func IsSquareAttacked(board *chess.Board, target chess.Coordinate, by chess.Colour) bool {
	if board == nil || !board.InBounds(target) {
		return false
	}
	hit := false
	scanAttackers(board, target, by, func(chess.Coordinate) bool {
		hit = true
		return true
	})
	return hit
}

// scanAttackers calls found for each attacker until it returns true.
func scanAttackers(board *chess.Board, target chess.Coordinate, by chess.Colour, found func(chess.Coordinate) bool) {
	// Walking on behalf of the other side makes by's pieces the capturable
	// ones, so each line ends on the first piece and keeps it only if it
	// belongs to by.
	walker := by.Opposite()

	is := func(sq chess.Coordinate, ranks ...chess.Rank) bool {
		p, ok := board.OccupantAt(sq)
		if !ok || p.Colour != by {
			return false
		}
		for _, r := range ranks {
			if p.Rank == r {
				return true
			}
		}
		return false
	}

	// Pawns of by attack diagonally forward, so look one row behind target.
	back := -chess.Forward(by)
	for _, dc := range [2]int{-1, 1} {
		if sq := target.Add(back, dc); is(sq, chess.Pawn) && found(sq) {
			return
		}
	}

	for _, sq := range Leap(board, target, KnightOffsets, walker) {
		if is(sq, chess.Knight) && found(sq) {
			return
		}
	}

	for _, d := range chess.AllDirections {
		line := Slide(board, target, d, walker)
		if len(line) == 0 {
			continue
		}
		end := line[len(line)-1]
		slider := chess.Rook
		if d.Diagonal() {
			slider = chess.Bishop
		}
		if is(end, slider, chess.Queen) && found(end) {
			return
		}
		if len(line) == 1 && is(end, chess.King) && found(end) {
			return
		}
	}
}
