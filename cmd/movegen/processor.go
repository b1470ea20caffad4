// processor.go - Snapshot querying and batch processing
package main

import (
	"bufio"
	"fmt"
	"io"
	"runtime"
	"strings"

	"github.com/lgbarn/movegen-go/internal/chess"
	"github.com/lgbarn/movegen-go/internal/config"
	"github.com/lgbarn/movegen-go/internal/engine"
	"github.com/lgbarn/movegen-go/internal/errors"
	"github.com/lgbarn/movegen-go/internal/hashing"
	"github.com/lgbarn/movegen-go/internal/output"
	"github.com/lgbarn/movegen-go/internal/worker"
)

// maxLineSize bounds a single FEN line in batch input.
const maxLineSize = 1 << 20

// ProcessingContext holds state shared by every snapshot of a run.
type ProcessingContext struct {
	cfg      *config.Config
	detector *hashing.ThreadSafeDuplicateDetector

	// square and to restrict the query to one piece, and optionally to a
	// single destination of that piece
	square *chess.Coordinate
	to     *chess.Coordinate
}

// inputLine is one FEN line of batch input.
type inputLine struct {
	text string
	line int // 1-based
}

// RunStats counts the outcome of a run.
type RunStats struct {
	Snapshots  int
	Moves      int
	Duplicates int
	Errors     int
}

// newProcessingContext parses the -square and -to arguments.
func newProcessingContext(cfg *config.Config, square, to string) (*ProcessingContext, error) {
	ctx := &ProcessingContext{cfg: cfg}
	if to != "" && square == "" {
		return nil, fmt.Errorf("-to needs -square: %w", errors.ErrInvalidConfig)
	}
	if square != "" {
		sq, err := chess.ParseCoordinate(square)
		if err != nil {
			return nil, err
		}
		ctx.square = &sq
	}
	if to != "" {
		dest, err := chess.ParseCoordinate(to)
		if err != nil {
			return nil, err
		}
		ctx.to = &dest
	}
	return ctx, nil
}

// inputName names the batch input in error messages.
func (ctx *ProcessingContext) inputName() string {
	if ctx.cfg.InputFile == "-" {
		return "stdin"
	}
	return ctx.cfg.InputFile
}

// querySnapshot computes the destinations report for board. index is
// 1-based.
func querySnapshot(index int, board *chess.Board, ctx *ProcessingContext) (*output.Snapshot, error) {
	if ctx.cfg.Engine.CrossCheck {
		if err := engine.CrossCheckAll(board); err != nil {
			return nil, err
		}
	}

	snap := output.NewSnapshot(index, board)
	if ctx.square != nil {
		if err := querySquare(snap, board, ctx); err != nil {
			return nil, err
		}
		return snap, nil
	}

	for _, colour := range ctx.cfg.Engine.Colours(board.ToMove) {
		moves, err := engine.AllDestinations(board, colour)
		if err != nil {
			return nil, err
		}
		snap.AddSide(board, colour, moves)
	}
	return snap, nil
}

// querySquare fills snap for the single piece on ctx.square.
func querySquare(snap *output.Snapshot, board *chess.Board, ctx *ProcessingContext) error {
	from := *ctx.square
	piece, ok := board.OccupantAt(from)
	if !ok {
		return &errors.QueryError{Err: errors.ErrPieceNotOnBoard, Op: "query", Square: from.String()}
	}

	if ctx.to != nil {
		legal, err := engine.IsLegal(board, &piece, *ctx.to)
		if err != nil {
			return err
		}
		snap.Query = &output.Query{From: from, To: *ctx.to, Legal: legal}
		return nil
	}

	moves, err := engine.Destinations(board, &piece)
	if err != nil {
		return err
	}
	snap.AddSide(board, piece.Colour, map[chess.PieceID]engine.MoveSet{piece.ID: moves})
	snap.Restrict(from)
	return nil
}

// processSnapshotWorker parses and queries one batch line in a worker
// goroutine.
func processSnapshotWorker(item worker.WorkItem, ctx *ProcessingContext) worker.ProcessResult {
	result := worker.ProcessResult{Index: item.Index, Board: item.Board}

	if result.Board == nil {
		board, err := engine.NewBoardFromFEN(item.Text)
		if err != nil {
			result.Error = &errors.ParseError{Err: err, File: ctx.inputName(), Line: item.Line}
			return result
		}
		result.Board = board
	}

	result.Snapshot, result.Error = querySnapshot(item.Index+1, result.Board, ctx)
	return result
}

// runSingle reports on one board, the -fen board or the initial position.
func runSingle(fen string, ctx *ProcessingContext, w output.SnapshotWriter) (RunStats, error) {
	var stats RunStats

	board := engine.NewInitialBoard()
	if fen != "" {
		var err error
		if board, err = engine.NewBoardFromFEN(fen); err != nil {
			return stats, errors.Wrap(err, "-fen")
		}
	}

	result := processSnapshotWorker(worker.WorkItem{Board: board}, ctx)
	stats.Snapshots = 1
	if result.Error != nil {
		stats.Errors = 1
		return stats, result.Error
	}
	stats.Moves = result.Snapshot.MoveCount()
	return stats, w.WriteSnapshot(result.Snapshot)
}

// runBatch reports on every FEN line of r. Blank lines and lines starting
// with '#' are skipped. Lines are processed by a worker pool and written
// in input order.
func runBatch(r io.Reader, ctx *ProcessingContext, w output.SnapshotWriter) (RunStats, error) {
	cfg := ctx.cfg
	var stats RunStats

	numWorkers := cfg.Batch.Workers
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	processFunc := func(item worker.WorkItem) worker.ProcessResult {
		return processSnapshotWorker(item, ctx)
	}
	pool := worker.NewPoolWithOptions(processFunc,
		worker.WithWorkers(numWorkers),
		worker.WithBufferSize(cfg.Batch.BufferSize))
	pool.Start()

	var readErr error
	go func() {
		defer pool.Close()
		for i, in := range scanLines(r, &readErr) {
			if !pool.Submit(worker.WorkItem{Text: in.text, Line: in.line, Index: i}) {
				return
			}
		}
	}()

	var writeErr error
	worker.InOrder(pool.Results(), func(result worker.ProcessResult) bool {
		stats.Snapshots++
		snap, keepGoing := handleResult(result, ctx, &stats)
		if err := w.WriteSnapshot(snap); err != nil {
			writeErr = err
			pool.Stop()
			return false
		}
		if !keepGoing {
			pool.Stop()
		}
		return keepGoing
	})

	if writeErr != nil {
		return stats, writeErr
	}
	return stats, readErr
}

// handleResult turns a worker result into the snapshot to write and
// updates stats. It reports false when the run should stop. Called only
// from the single consumer goroutine, so results reach the duplicate
// detector in input order.
func handleResult(result worker.ProcessResult, ctx *ProcessingContext, stats *RunStats) (*output.Snapshot, bool) {
	cfg := ctx.cfg
	index := result.Index + 1

	if result.Error != nil {
		stats.Errors++
		cfg.Logf(1, "Snapshot %d: %v\n", index, result.Error)
		return output.ErrorSnapshot(index, result.Error), !cfg.Batch.StopOnError
	}

	if ctx.detector != nil && ctx.detector.CheckAndAdd(result.Board) {
		stats.Duplicates++
		cfg.Logf(2, "Snapshot %d: duplicate\n", index)
		if cfg.Batch.DuplicateFile != nil {
			fmt.Fprintln(cfg.Batch.DuplicateFile, result.Snapshot.FEN)
		}
		return &output.Snapshot{Index: index, FEN: result.Snapshot.FEN, Duplicate: true}, true
	}

	moves := result.Snapshot.MoveCount()
	stats.Moves += moves
	cfg.Logf(2, "Snapshot %d: %d move(s)\n", index, moves)
	return result.Snapshot, true
}

// scanLines returns the FEN lines of r. A read error is stored in errp
// once the input is exhausted.
func scanLines(r io.Reader, errp *error) []inputLine {
	var lines []inputLine
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for n := 1; scanner.Scan(); n++ {
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		lines = append(lines, inputLine{text: text, line: n})
	}
	*errp = scanner.Err()
	return lines
}

// loadCheckFile remembers every board of a FEN file in a detector, so
// the run reports them as duplicates.
func loadCheckFile(r io.Reader, capacity int) (*hashing.DuplicateDetector, int, error) {
	detector := hashing.NewDuplicateDetector(capacity)
	var readErr error
	lines := scanLines(r, &readErr)
	if readErr != nil {
		return nil, 0, readErr
	}
	for _, in := range lines {
		board, err := engine.NewBoardFromFEN(in.text)
		if err != nil {
			return nil, 0, errors.Wrapf(err, "check file line %d", in.line)
		}
		detector.CheckAndAdd(board)
	}
	return detector, len(lines), nil
}
