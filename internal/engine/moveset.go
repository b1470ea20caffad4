package engine

import (
	"sort"
	"strings"

	"golang.org/x/exp/maps"

	"github.com/lgbarn/movegen-go/internal/chess"
)

// MoveSet is an unordered set of destination squares. Each query builds a
// fresh one; nothing is cached between calls.
type MoveSet map[chess.Coordinate]struct{}

// NewMoveSet returns a set holding squares.
func NewMoveSet(squares ...chess.Coordinate) MoveSet {
	s := make(MoveSet, len(squares))
	s.AddAll(squares)
	return s
}

// Add inserts c.
func (s MoveSet) Add(c chess.Coordinate) {
	s[c] = struct{}{}
}

// AddAll inserts every square in squares.
func (s MoveSet) AddAll(squares []chess.Coordinate) {
	for _, c := range squares {
		s[c] = struct{}{}
	}
}

// Has reports whether c is in the set.
func (s MoveSet) Has(c chess.Coordinate) bool {
	_, ok := s[c]
	return ok
}

// Len returns the number of squares in the set.
func (s MoveSet) Len() int {
	return len(s)
}

// Union returns a new set with the squares of s and other.
func (s MoveSet) Union(other MoveSet) MoveSet {
	out := make(MoveSet, len(s)+len(other))
	for c := range s {
		out[c] = struct{}{}
	}
	for c := range other {
		out[c] = struct{}{}
	}
	return out
}

// Equal reports whether both sets hold exactly the same squares.
func (s MoveSet) Equal(other MoveSet) bool {
	if len(s) != len(other) {
		return false
	}
	for c := range s {
		if !other.Has(c) {
			return false
		}
	}
	return true
}

// Sorted returns the squares ordered by row, then column.
func (s MoveSet) Sorted() []chess.Coordinate {
	out := maps.Keys(s)
	sort.Slice(out, func(i, j int) bool {
		if out[i].Row != out[j].Row {
			return out[i].Row < out[j].Row
		}
		return out[i].Col < out[j].Col
	})
	return out
}

// String lists the squares in sorted order, e.g. "{a2 a3}".
func (s MoveSet) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, c := range s.Sorted() {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(c.String())
	}
	sb.WriteByte('}')
	return sb.String()
}
