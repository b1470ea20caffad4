package chess

import (
	"fmt"
	"strconv"

	"github.com/lgbarn/movegen-go/internal/errors"
)

// Coordinate is a (row, column) square address. Row 0 is White's home row
// and column 0 is the a-file.
type Coordinate struct {
	Row int
	Col int
}

// Coord is shorthand for Coordinate{row, col}.
func Coord(row, col int) Coordinate {
	return Coordinate{Row: row, Col: col}
}

// Add returns the coordinate offset by (dRow, dCol). The result may be off
// the board.
func (c Coordinate) Add(dRow, dCol int) Coordinate {
	return Coordinate{Row: c.Row + dRow, Col: c.Col + dCol}
}

// Step returns the coordinate one step away in direction d.
func (c Coordinate) Step(d Direction) Coordinate {
	dr, dc := d.Delta()
	return c.Add(dr, dc)
}

// Delta returns (to.Row-c.Row, to.Col-c.Col).
func (c Coordinate) Delta(to Coordinate) (int, int) {
	return to.Row - c.Row, to.Col - c.Col
}

// Chebyshev returns the king-move distance between c and to.
func (c Coordinate) Chebyshev(to Coordinate) int {
	dr, dc := c.Delta(to)
	return max(abs(dr), abs(dc))
}

// String returns algebraic notation ("e4") when the coordinate can be
// written that way, otherwise "(row,col)".
func (c Coordinate) String() string {
	if c.Row < 0 || c.Col < 0 || c.Col >= MaxBoardSize {
		return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
	}
	return string(rune('a'+c.Col)) + strconv.Itoa(c.Row+1)
}

// MarshalText implements encoding.TextMarshaler.
func (c Coordinate) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Coordinate) UnmarshalText(text []byte) error {
	parsed, err := ParseCoordinate(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// ParseCoordinate parses algebraic notation such as "e4" or "c12". It does
// not check the coordinate against any particular board.
func ParseCoordinate(s string) (Coordinate, error) {
	if len(s) < 2 {
		return Coordinate{}, fmt.Errorf("square %q: %w", s, errors.ErrInvalidSquare)
	}
	file := s[0]
	if file >= 'A' && file <= 'Z' {
		file += 'a' - 'A'
	}
	if file < 'a' || file > 'z' {
		return Coordinate{}, fmt.Errorf("square %q: bad file: %w", s, errors.ErrInvalidSquare)
	}
	row, err := strconv.Atoi(s[1:])
	if err != nil || row < 1 || row > MaxBoardSize {
		return Coordinate{}, fmt.Errorf("square %q: bad rank: %w", s, errors.ErrInvalidSquare)
	}
	return Coordinate{Row: row - 1, Col: int(file - 'a')}, nil
}

// MustParseCoordinate is ParseCoordinate for constant input; it panics on
// error.
func MustParseCoordinate(s string) Coordinate {
	c, err := ParseCoordinate(s)
	if err != nil {
		panic(err)
	}
	return c
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// sign returns the sign of x: -1, 0, or 1.
func sign(x int) int {
	if x > 0 {
		return 1
	}
	if x < 0 {
		return -1
	}
	return 0
}
