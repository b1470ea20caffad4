package engine

import (
	"github.com/lgbarn/movegen-go/internal/bitboard"
	"github.com/lgbarn/movegen-go/internal/chess"
	"github.com/lgbarn/movegen-go/internal/errors"
)

// CrossCheck verifies that IsLegal and Destinations agree for piece on
// every square of board, that no destination is off the board, and on
// 8×8 boards that slider destinations match an independent magic-bitboard
// computation. Precondition failures are returned as *errors.QueryError;
// any disagreement is an engine defect and is returned as
// *errors.InternalError.
func CrossCheck(board *chess.Board, piece *chess.Piece) error {
	moves, err := Destinations(board, piece)
	if err != nil {
		return err
	}
	from, _ := board.Locate(piece.ID)

	for c := range moves {
		if !board.InBounds(c) {
			return errors.Internalf("cross-check", "%v on %s: destination %s off the board", piece, from, c)
		}
	}

	size := board.Size()
	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			to := chess.Coord(row, col)
			legal, err := IsLegal(board, piece, to)
			if err != nil {
				return err
			}
			if legal != moves.Has(to) {
				return errors.Internalf("cross-check",
					"%v on %s: is-legal(%s) = %v but destinations %s", piece, from, to, legal, moves)
			}
		}
	}

	if targets, ok := bitboard.SliderTargets(board, piece.Rank, piece.Colour, from); ok {
		if want := NewMoveSet(bitboard.Squares(targets)...); !want.Equal(moves) {
			return errors.Internalf("cross-check",
				"%v on %s: destinations %s but bitboard targets %s", piece, from, moves, want)
		}
	}
	return nil
}

// CrossCheckAll runs CrossCheck for every piece on board and returns the
// first failure.
func CrossCheckAll(board *chess.Board) error {
	if board == nil {
		return &errors.QueryError{Err: errors.ErrNilBoard, Op: "cross-check"}
	}
	for _, pp := range board.Pieces() {
		p := pp.Piece
		if err := CrossCheck(board, &p); err != nil {
			return err
		}
	}
	return nil
}
