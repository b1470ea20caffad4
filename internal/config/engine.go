package config

import (
	"fmt"

	"github.com/lgbarn/movegen-go/internal/chess"
	"github.com/lgbarn/movegen-go/internal/errors"
)

// EngineConfig holds settings for move generation queries.
type EngineConfig struct {
	// Side is "w", "b", "both", or empty for the side to move
	Side string

	// CrossCheck verifies every snapshot against the legality check and,
	// on 8x8 boards, the bitboard generator
	CrossCheck bool
}

// NewEngineConfig creates an EngineConfig with default values.
func NewEngineConfig() *EngineConfig {
	return &EngineConfig{}
}

// Validate checks that Side names a colour.
func (e *EngineConfig) Validate() error {
	if e.Side == "" || e.Side == "both" {
		return nil
	}
	if _, ok := chess.ParseColour(e.Side); !ok {
		return fmt.Errorf("side %q: %w", e.Side, errors.ErrInvalidConfig)
	}
	return nil
}

// Colours returns the colours to enumerate for a board with toMove to
// play.
func (e *EngineConfig) Colours(toMove chess.Colour) []chess.Colour {
	switch e.Side {
	case "":
		return []chess.Colour{toMove}
	case "both":
		return []chess.Colour{chess.White, chess.Black}
	}
	c, _ := chess.ParseColour(e.Side)
	return []chess.Colour{c}
}
