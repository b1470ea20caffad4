package testutil

import (
	"math/rand"
	"testing"

	"github.com/lgbarn/movegen-go/internal/chess"
)

// Squares parses algebraic square names, failing the test on bad input.
func Squares(t *testing.T, names ...string) []chess.Coordinate {
	t.Helper()
	out := make([]chess.Coordinate, 0, len(names))
	for _, n := range names {
		c, err := chess.ParseCoordinate(n)
		if err != nil {
			t.Fatalf("bad square %q: %v", n, err)
		}
		out = append(out, c)
	}
	return out
}

// RandomBoard fills roughly density of the squares of a size×size board
// with random pieces of both colours. The same rng state always yields the
// same board.
func RandomBoard(rng *rand.Rand, size int, density float64) *chess.Board {
	board, err := chess.NewBoardSize(size)
	if err != nil {
		panic(err)
	}
	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			if rng.Float64() >= density {
				continue
			}
			rank := chess.Ranks[rng.Intn(len(chess.Ranks))]
			colour := chess.White
			if rng.Intn(2) == 0 {
				colour = chess.Black
			}
			board.MustPlace(rank, colour, chess.Coord(row, col))
		}
	}
	return board
}

// SeededRand returns a deterministic source for property tests.
func SeededRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}
