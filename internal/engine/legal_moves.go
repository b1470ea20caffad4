package engine

import (
	"github.com/lgbarn/movegen-go/internal/chess"
	"github.com/lgbarn/movegen-go/internal/errors"
)

// Destinations returns every square piece may move to on board. The
// piece's square is looked up on the board by id.
func Destinations(board *chess.Board, piece *chess.Piece) (MoveSet, error) {
	from, err := locate("destinations", board, piece)
	if err != nil {
		return nil, err
	}
	return StrategyFor(piece.Rank)(board, from, piece.Colour), nil
}

// IsLegal reports whether piece may move to to on board. It agrees with
// Destinations for every input but does not build the destination set.
// An off-board destination is simply not legal.
func IsLegal(board *chess.Board, piece *chess.Piece, to chess.Coordinate) (bool, error) {
	from, err := locate("is-legal", board, piece)
	if err != nil {
		return false, err
	}
	mustHandle(piece.Rank)
	return canReach(board, piece.Rank, from, to, piece.Colour), nil
}

// DestinationsFrom enumerates the destinations of a hypothetical piece of
// rank and side standing on from. The square of from itself is not
// inspected, so callers may ask about a piece that is not on the board.
func DestinationsFrom(board *chess.Board, rank chess.Rank, side chess.Colour, from chess.Coordinate) (MoveSet, error) {
	if err := checkOrigin("destinations-from", board, from); err != nil {
		return nil, err
	}
	return StrategyFor(rank)(board, from, side), nil
}

// IsLegalFrom is the point-check counterpart of DestinationsFrom.
func IsLegalFrom(board *chess.Board, rank chess.Rank, side chess.Colour, from, to chess.Coordinate) (bool, error) {
	if err := checkOrigin("is-legal-from", board, from); err != nil {
		return false, err
	}
	mustHandle(rank)
	return canReach(board, rank, from, to, side), nil
}

// AllDestinations returns the destinations of every piece of colour on
// board, keyed by piece id. Pieces with no moves map to an empty set.
func AllDestinations(board *chess.Board, colour chess.Colour) (map[chess.PieceID]MoveSet, error) {
	if board == nil {
		return nil, &errors.QueryError{Err: errors.ErrNilBoard, Op: "all-destinations"}
	}
	out := make(map[chess.PieceID]MoveSet)
	for _, pp := range board.Pieces() {
		if pp.Colour != colour {
			continue
		}
		out[pp.ID] = StrategyFor(pp.Rank)(board, pp.At, pp.Colour)
	}
	return out, nil
}

// HasAnyDestination reports whether some piece of colour can move.
func HasAnyDestination(board *chess.Board, colour chess.Colour) (bool, error) {
	if board == nil {
		return false, &errors.QueryError{Err: errors.ErrNilBoard, Op: "has-any-destination"}
	}
	for _, pp := range board.Pieces() {
		if pp.Colour == colour && StrategyFor(pp.Rank)(board, pp.At, pp.Colour).Len() > 0 {
			return true, nil
		}
	}
	return false, nil
}

// locate resolves the square of piece on board, rejecting nil inputs,
// pieces that are not on the board and callers holding an outdated copy of
// the piece.
func locate(op string, board *chess.Board, piece *chess.Piece) (chess.Coordinate, error) {
	if board == nil {
		return chess.Coordinate{}, &errors.QueryError{Err: errors.ErrNilBoard, Op: op}
	}
	if piece == nil {
		return chess.Coordinate{}, &errors.QueryError{Err: errors.ErrNilPiece, Op: op}
	}
	record, ok := board.Piece(piece.ID)
	if !ok {
		return chess.Coordinate{}, queryError(op, piece, errors.ErrPieceNotOnBoard)
	}
	if record != *piece {
		return chess.Coordinate{}, queryError(op, piece, errors.ErrStalePiece)
	}
	from, ok := board.Locate(piece.ID)
	if !ok {
		return chess.Coordinate{}, queryError(op, piece, errors.ErrPieceNotOnBoard)
	}
	return from, nil
}

func checkOrigin(op string, board *chess.Board, from chess.Coordinate) error {
	if board == nil {
		return &errors.QueryError{Err: errors.ErrNilBoard, Op: op}
	}
	if !board.InBounds(from) {
		return &errors.QueryError{Err: errors.ErrOutOfBounds, Op: op, Square: from.String()}
	}
	return nil
}

func queryError(op string, piece *chess.Piece, err error) *errors.QueryError {
	return &errors.QueryError{
		Err:     err,
		Op:      op,
		PieceID: int(piece.ID),
		Rank:    piece.Rank.String(),
	}
}
