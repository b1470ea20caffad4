package chess

// Direction is one of the eight unit step vectors. North is toward higher
// rows (Black's side of the board).
type Direction uint8

const (
	North Direction = iota
	NorthEast
	East
	SouthEast
	South
	SouthWest
	West
	NorthWest
	NumDirections
)

var directionDeltas = [NumDirections][2]int{
	North:     {1, 0},
	NorthEast: {1, 1},
	East:      {0, 1},
	SouthEast: {-1, 1},
	South:     {-1, 0},
	SouthWest: {-1, -1},
	West:      {0, -1},
	NorthWest: {1, -1},
}

var directionNames = [NumDirections]string{"N", "NE", "E", "SE", "S", "SW", "W", "NW"}

// Direction subsets used by the slider ranks.
var (
	AllDirections        = [...]Direction{North, NorthEast, East, SouthEast, South, SouthWest, West, NorthWest}
	OrthogonalDirections = [...]Direction{North, East, South, West}
	DiagonalDirections   = [...]Direction{NorthEast, SouthEast, SouthWest, NorthWest}
)

// Delta returns the (dRow, dCol) step of the direction.
func (d Direction) Delta() (int, int) {
	if d >= NumDirections {
		return 0, 0
	}
	v := directionDeltas[d]
	return v[0], v[1]
}

// Diagonal reports whether both components of the step are non-zero.
func (d Direction) Diagonal() bool {
	dr, dc := d.Delta()
	return dr != 0 && dc != 0
}

// Orthogonal reports whether exactly one component of the step is non-zero.
func (d Direction) Orthogonal() bool {
	dr, dc := d.Delta()
	return (dr == 0) != (dc == 0)
}

// Opposite returns the direction pointing the other way.
func (d Direction) Opposite() Direction {
	return (d + NumDirections/2) % NumDirections
}

func (d Direction) String() string {
	if d < NumDirections {
		return directionNames[d]
	}
	return "?"
}

// ParseDirection parses the compass abbreviations returned by String.
func ParseDirection(s string) (Direction, bool) {
	for d, name := range directionNames {
		if name == s {
			return Direction(d), true
		}
	}
	return NumDirections, false
}

// DirectionOf returns the unit direction from one square to another when
// the two share a row, a column or a diagonal. ok is false for identical or
// unaligned squares.
func DirectionOf(from, to Coordinate) (d Direction, ok bool) {
	dr, dc := from.Delta(to)
	if dr == 0 && dc == 0 {
		return NumDirections, false
	}
	if dr != 0 && dc != 0 && abs(dr) != abs(dc) {
		return NumDirections, false
	}
	sr, sc := sign(dr), sign(dc)
	for i, v := range directionDeltas {
		if v[0] == sr && v[1] == sc {
			return Direction(i), true
		}
	}
	return NumDirections, false
}
