// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/lgbarn/movegen-go/internal/config"
)

var (
	// Input options
	fenString = flag.String("fen", "", "FEN of the board to query (default: initial position)")
	inputFile = flag.String("i", "", "Batch file with one FEN per line (- for stdin)")
	checkFile = flag.String("c", "", "Check file of FENs already seen, for duplicate detection")

	// Query options
	squareFlag  = flag.String("square", "", "Only report the piece on this square")
	toFlag      = flag.String("to", "", "With -square, check a single destination")
	sideFlag    = flag.String("side", "", "Side to enumerate: w, b or both (default: side to move)")
	verifyMoves = flag.Bool("verify", false, "Cross-check every piece before reporting")

	// Output options
	outputFile   = flag.String("o", "", "Output file (default: stdout)")
	appendOutput = flag.Bool("a", false, "Append to output file instead of overwrite")
	jsonOutput   = flag.Bool("J", false, "Output in JSON format")
	indentJSON   = flag.Bool("indent", false, "Pretty-print JSON output")
	noFEN        = flag.Bool("nofen", false, "Don't print the FEN before each snapshot")
	movableOnly  = flag.Bool("m", false, "Only list pieces that can move")
	lineLength   = flag.Int("w", 80, "Maximum line length")

	// Batch options
	workers            = flag.Int("j", 0, "Number of worker goroutines (0 = one per CPU)")
	suppressDuplicates = flag.Bool("D", false, "Suppress duplicate snapshots")
	duplicateFile      = flag.String("d", "", "Output duplicate FENs to this file")
	duplicateCapacity  = flag.Int("duplicate-capacity", 0, "Maximum duplicate hash table entries (0 = unlimited)")
	stopOnError        = flag.Bool("stop", false, "Stop at the first snapshot that fails")

	// Logging
	verbosity = flag.Int("v", 1, "Verbosity: 0 silent, 1 summary, 2 per snapshot")
	quiet     = flag.Bool("s", false, "Silent mode (same as -v 0)")
	logFile   = flag.String("l", "", "Write diagnostics to this file")
	appendLog = flag.String("L", "", "Append diagnostics to this file")

	// Misc
	version = flag.Bool("version", false, "Print version and exit")
	help    = flag.Bool("h", false, "Show help")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) {
	applyOutputFlags(cfg)
	applyEngineFlags(cfg)
	applyBatchFlags(cfg)

	cfg.Verbosity = *verbosity
	if *quiet {
		cfg.Verbosity = 0
	}
	cfg.InputFile = *inputFile
	cfg.OutputFilename = *outputFile
}

// applyOutputFlags configures output rendering.
func applyOutputFlags(cfg *config.Config) {
	if *jsonOutput {
		cfg.Output.Format = config.JSON
	} else {
		cfg.Output.Format = config.Text
	}
	cfg.Output.Indent = *indentJSON
	cfg.Output.ShowFEN = !*noFEN
	cfg.Output.KeepImmobile = !*movableOnly
	cfg.Output.MaxLineLength = *lineLength
}

// applyEngineFlags configures the move queries.
func applyEngineFlags(cfg *config.Config) {
	cfg.Engine.Side = *sideFlag
	cfg.Engine.CrossCheck = *verifyMoves
}

// applyBatchFlags configures batch processing.
func applyBatchFlags(cfg *config.Config) {
	cfg.Batch.Workers = *workers
	cfg.Batch.SuppressDuplicates = *suppressDuplicates || *duplicateFile != ""
	cfg.Batch.DuplicateCapacity = *duplicateCapacity
	cfg.Batch.StopOnError = *stopOnError
}
