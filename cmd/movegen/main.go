// movegen reports where chess pieces may move on board snapshots and checks
// single moves for legality.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/lgbarn/movegen-go/internal/config"
	"github.com/lgbarn/movegen-go/internal/hashing"
	"github.com/lgbarn/movegen-go/internal/output"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("movegen version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	applyFlags(cfg)

	// Set up logging and output files
	files := []*os.File{
		setupLogFile(cfg),
		setupOutputFile(cfg),
		setupDuplicateFile(cfg),
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	config.GlobalConfig = cfg

	ctx, err := newProcessingContext(cfg, *squareFlag, *toFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	ctx.detector = setupDuplicateDetector(cfg)

	stats, err := run(ctx)
	if cfg.Verbosity > 0 {
		reportStatistics(cfg.LogFile, ctx, stats)
	}
	if closeErr := closeFiles(files); err == nil {
		err = closeErr
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run processes the -i batch input if one was given, otherwise the single
// -fen board.
func run(ctx *ProcessingContext) (RunStats, error) {
	cfg := ctx.cfg
	w := output.NewWriter(cfg.OutputFile, cfg.Output)

	var stats RunStats
	var err error
	switch cfg.InputFile {
	case "":
		stats, err = runSingle(*fenString, ctx, w)
	case "-":
		stats, err = runBatch(os.Stdin, ctx, w)
	default:
		var file *os.File
		file, err = os.Open(cfg.InputFile)
		if err != nil {
			return stats, err
		}
		defer file.Close()
		stats, err = runBatch(file, ctx, w)
	}

	if closeErr := w.Close(); err == nil {
		err = closeErr
	}
	return stats, err
}

// setupLogFile configures the log file based on command-line flags and
// returns it, or nil when diagnostics stay on stderr. -L wins over -l.
func setupLogFile(cfg *config.Config) *os.File {
	var file *os.File
	var err error

	switch {
	case *appendLog != "":
		file, err = os.OpenFile(*appendLog, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created log files
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening log file %s: %v\n", *appendLog, err)
			os.Exit(1)
		}
	case *logFile != "":
		file, err = os.Create(*logFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating log file %s: %v\n", *logFile, err)
			os.Exit(1)
		}
	default:
		return nil
	}

	cfg.SetLog(file)
	return file
}

// setupOutputFile configures the output file based on command-line flags
// and returns it, or nil for stdout.
func setupOutputFile(cfg *config.Config) *os.File {
	if *outputFile == "" {
		return nil
	}

	var file *os.File
	var err error

	if *appendOutput {
		file, err = os.OpenFile(*outputFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created output files
	} else {
		file, err = os.Create(*outputFile)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file %s: %v\n", *outputFile, err)
		os.Exit(1)
	}
	cfg.SetOutput(file)
	return file
}

// setupDuplicateFile configures the duplicate output file and returns it,
// or nil when -d is not given.
func setupDuplicateFile(cfg *config.Config) *os.File {
	if *duplicateFile == "" {
		return nil
	}

	file, err := os.Create(*duplicateFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating duplicate file %s: %v\n", *duplicateFile, err)
		os.Exit(1)
	}
	cfg.Batch.DuplicateFile = file
	return file
}

// closeFiles closes the files opened for the run, skipping nil entries,
// and returns the first error.
func closeFiles(files []*os.File) error {
	var first error
	for _, f := range files {
		if f == nil {
			continue
		}
		if err := f.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// setupDuplicateDetector creates the duplicate detector, preloaded from the
// check file when one is given.
func setupDuplicateDetector(cfg *config.Config) *hashing.ThreadSafeDuplicateDetector {
	if !cfg.Batch.SuppressDuplicates && *checkFile == "" {
		return nil
	}

	detector := hashing.NewThreadSafeDuplicateDetector(cfg.Batch.DuplicateCapacity)

	if *checkFile != "" {
		file, err := os.Open(*checkFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening check file %s: %v\n", *checkFile, err)
			os.Exit(1)
		}
		defer file.Close()

		loaded, n, err := loadCheckFile(file, cfg.Batch.DuplicateCapacity)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading check file %s: %v\n", *checkFile, err)
			os.Exit(1)
		}
		if dropped := detector.LoadFromDetector(loaded); dropped > 0 {
			cfg.Logf(1, "Duplicate table full: %d check file snapshot(s) not loaded\n", dropped)
		}
		cfg.Logf(1, "Loaded %d snapshot(s) from check file\n", n)
	}

	return detector
}

// reportStatistics writes the end-of-run summary.
func reportStatistics(w io.Writer, ctx *ProcessingContext, stats RunStats) {
	fmt.Fprintf(w, "%d snapshot(s), %d move(s)", stats.Snapshots, stats.Moves)
	if ctx.detector != nil {
		fmt.Fprintf(w, ", %d duplicate(s)", stats.Duplicates)
		if ctx.detector.IsFull() {
			fmt.Fprintf(w, " (duplicate table full)")
		}
	}
	if stats.Errors > 0 {
		fmt.Fprintf(w, ", %d error(s)", stats.Errors)
	}
	fmt.Fprintln(w, ".")
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: movegen [options]\n\n")
	fmt.Fprintf(os.Stderr, "Lists where chess pieces may move on a board snapshot.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nExamples:\n")
	fmt.Fprintf(os.Stderr, "  movegen -fen '4k3/8/8/8/8/8/8/RN6 w'\n")
	fmt.Fprintf(os.Stderr, "  movegen -square e2 -to e4\n")
	fmt.Fprintf(os.Stderr, "  movegen -i positions.fen -j 4 -D -J\n")
}
