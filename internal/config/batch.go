package config

import (
	"fmt"
	"io"

	"github.com/lgbarn/movegen-go/internal/errors"
)

// BatchConfig holds settings for processing many snapshots.
type BatchConfig struct {
	// Workers is the number of worker goroutines (0 = one per CPU)
	Workers int

	// BufferSize bounds the work and result channels
	BufferSize int

	// SuppressDuplicates skips snapshots already seen in this run
	SuppressDuplicates bool

	// DuplicateCapacity bounds the remembered snapshots (0 = unlimited)
	DuplicateCapacity int

	// DuplicateFile receives the FEN of every skipped snapshot
	DuplicateFile io.Writer

	// StopOnError ends the run at the first snapshot that fails
	StopOnError bool
}

// NewBatchConfig creates a BatchConfig with default values.
func NewBatchConfig() *BatchConfig {
	return &BatchConfig{
		BufferSize: 100,
	}
}

// Validate checks that the batch configuration is valid.
func (b *BatchConfig) Validate() error {
	if b.Workers < 0 {
		return fmt.Errorf("workers (%d) < 0: %w", b.Workers, errors.ErrInvalidConfig)
	}
	if b.DuplicateCapacity < 0 {
		return fmt.Errorf("duplicate capacity (%d) < 0: %w", b.DuplicateCapacity, errors.ErrInvalidConfig)
	}
	if b.BufferSize < 1 {
		return fmt.Errorf("buffer size (%d) < 1: %w", b.BufferSize, errors.ErrInvalidConfig)
	}
	return nil
}
