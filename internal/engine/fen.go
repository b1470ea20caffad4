// Package engine computes where chess pieces may move on a board snapshot
// and answers single-destination legality queries.
package engine

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lgbarn/movegen-go/internal/chess"
	"github.com/lgbarn/movegen-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// NewBoardFromFEN creates a board from a FEN string. The number of ranks in
// the placement field sets the board size, so square boards other than 8×8
// can be described too (empty runs may use several digits, e.g. "10").
// Castling, en-passant and clock fields are checked for shape and then
// ignored.
func NewBoardFromFEN(fen string) (*chess.Board, error) {
	parts := strings.Fields(fen)
	if len(parts) < 1 {
		return nil, fmt.Errorf("empty FEN string: %w", errors.ErrInvalidFEN)
	}

	rows := strings.Split(parts[0], "/")
	board, err := chess.NewBoardSize(len(rows))
	if err != nil {
		return nil, fmt.Errorf("%d ranks: %v: %w", len(rows), err, errors.ErrInvalidFEN)
	}

	if err := parsePiecePositions(board, rows); err != nil {
		return nil, err
	}
	if err := parseSideToMove(board, parts); err != nil {
		return nil, err
	}
	if err := checkIgnoredFields(parts); err != nil {
		return nil, err
	}
	return board, nil
}

// parsePiecePositions fills board from the placement ranks, top rank first.
func parsePiecePositions(board *chess.Board, rows []string) error {
	size := board.Size()
	for i, text := range rows {
		row := size - 1 - i
		col := 0
		for j := 0; j < len(text); {
			c := text[j]
			if c >= '0' && c <= '9' {
				k := j
				for k < len(text) && text[k] >= '0' && text[k] <= '9' {
					k++
				}
				n, err := strconv.Atoi(text[j:k])
				if err != nil || n > size {
					return fmt.Errorf("bad run length %q in rank %d: %w", text[j:k], row+1, errors.ErrInvalidFEN)
				}
				if n == 0 {
					return fmt.Errorf("zero-length run in rank %d: %w", row+1, errors.ErrInvalidFEN)
				}
				col += n
				j = k
				continue
			}
			rank, ok := chess.RankFromLetter(c)
			if !ok {
				return fmt.Errorf("invalid piece character: %c: %w", c, errors.ErrInvalidFEN)
			}
			colour := chess.White
			if c >= 'a' && c <= 'z' {
				colour = chess.Black
			}
			if _, err := board.Place(rank, colour, chess.Coord(row, col)); err != nil {
				return fmt.Errorf("rank %d: %v: %w", row+1, err, errors.ErrInvalidFEN)
			}
			col++
			j++
		}
		if col != size {
			return fmt.Errorf("rank %d has %d files, want %d: %w", row+1, col, size, errors.ErrInvalidFEN)
		}
	}
	return nil
}

// parseSideToMove parses the side to move field.
func parseSideToMove(board *chess.Board, parts []string) error {
	if len(parts) < 2 {
		return nil
	}
	switch parts[1] {
	case "w":
		board.ToMove = chess.White
	case "b":
		board.ToMove = chess.Black
	default:
		return fmt.Errorf("invalid side to move: %s: %w", parts[1], errors.ErrInvalidFEN)
	}
	return nil
}

// checkIgnoredFields validates the castling, en-passant and clock fields.
func checkIgnoredFields(parts []string) error {
	if len(parts) > 6 {
		return fmt.Errorf("%d fields: %w", len(parts), errors.ErrInvalidFEN)
	}
	if len(parts) >= 3 && parts[2] != "-" {
		for _, c := range parts[2] {
			if !(c >= 'A' && c <= 'Z') && !(c >= 'a' && c <= 'z') {
				return fmt.Errorf("invalid castling field: %s: %w", parts[2], errors.ErrInvalidFEN)
			}
		}
	}
	if len(parts) >= 4 && parts[3] != "-" {
		if _, err := chess.ParseCoordinate(parts[3]); err != nil {
			return fmt.Errorf("invalid en passant field: %s: %w", parts[3], errors.ErrInvalidFEN)
		}
	}
	for _, f := range parts[min(len(parts), 4):] {
		if n, err := strconv.Atoi(f); err != nil || n < 0 {
			return fmt.Errorf("invalid clock field: %s: %w", f, errors.ErrInvalidFEN)
		}
	}
	return nil
}

// BoardToFEN converts a board to a FEN string. Castling and en-passant
// state is not tracked, so those fields are always "-".
func BoardToFEN(board *chess.Board) string {
	var sb strings.Builder

	writePiecePositions(&sb, board)
	sb.WriteByte(' ')
	if board.ToMove == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
	sb.WriteString(" - - 0 1")

	return sb.String()
}

// writePiecePositions writes the piece placement to the builder.
func writePiecePositions(sb *strings.Builder, board *chess.Board) {
	size := board.Size()
	for row := size - 1; row >= 0; row-- {
		emptyCount := 0
		for col := 0; col < size; col++ {
			piece, ok := board.OccupantAt(chess.Coord(row, col))
			if !ok {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteString(strconv.Itoa(emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(piece.Letter())
		}
		if emptyCount > 0 {
			sb.WriteString(strconv.Itoa(emptyCount))
		}
		if row > 0 {
			sb.WriteByte('/')
		}
	}
}

// NewInitialBoard creates a board with the standard starting position.
func NewInitialBoard() *chess.Board {
	board, _ := NewBoardFromFEN(InitialFEN)
	return board
}
