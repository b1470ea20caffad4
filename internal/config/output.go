package config

import "strings"

// OutputFormat selects how destination sets are rendered.
type OutputFormat int

const (
	Text OutputFormat = iota // One line per piece
	JSON                     // A JSON document per snapshot
)

// ParseOutputFormat accepts "text" or "json".
func ParseOutputFormat(s string) (OutputFormat, bool) {
	switch strings.ToLower(s) {
	case "text", "":
		return Text, true
	case "json":
		return JSON, true
	}
	return Text, false
}

// OutputConfig holds settings related to output formatting.
type OutputConfig struct {
	// Format specifies the rendering of destination sets
	Format OutputFormat

	// ShowFEN prefixes each snapshot with its FEN string
	ShowFEN bool

	// KeepImmobile lists pieces that have no destinations
	KeepImmobile bool

	// Indent pretty-prints JSON output
	Indent bool

	// MaxLineLength wraps long destination lists in text output
	MaxLineLength int
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		Format:        Text,
		ShowFEN:       true,
		KeepImmobile:  true,
		MaxLineLength: 80,
	}
}
