package main

import (
	"bytes"
	stderrors "errors"
	"strings"
	"testing"

	"github.com/lgbarn/movegen-go/internal/chess"
	"github.com/lgbarn/movegen-go/internal/config"
	"github.com/lgbarn/movegen-go/internal/engine"
	"github.com/lgbarn/movegen-go/internal/errors"
	"github.com/lgbarn/movegen-go/internal/hashing"
	"github.com/lgbarn/movegen-go/internal/output"
	"github.com/lgbarn/movegen-go/internal/testutil"
	"github.com/lgbarn/movegen-go/internal/worker"
)

// testContext returns a context whose output and log go to the returned
// buffers. The config can be adjusted before use.
func testContext(t *testing.T) (*ProcessingContext, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	var out, log bytes.Buffer
	cfg := config.NewConfigBuilder().
		WithOutput(&out).
		WithLog(&log).
		WithWorkers(4).
		Build()
	cfg.Output.ShowFEN = false
	ctx, err := newProcessingContext(cfg, "", "")
	testutil.AssertNoError(t, err)
	return ctx, &out, &log
}

func TestNewProcessingContext(t *testing.T) {
	cfg := config.NewConfig()

	ctx, err := newProcessingContext(cfg, "e2", "e4")
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, *ctx.square, chess.Coord(1, 4))
	testutil.AssertEqual(t, *ctx.to, chess.Coord(3, 4))

	_, err = newProcessingContext(cfg, "", "e4")
	testutil.AssertErrorIs(t, err, errors.ErrInvalidConfig)

	_, err = newProcessingContext(cfg, "e", "")
	testutil.AssertErrorIs(t, err, errors.ErrInvalidSquare)
}

func TestQuerySnapshot(t *testing.T) {
	t.Run("side to move", func(t *testing.T) {
		ctx, _, _ := testContext(t)
		snap, err := querySnapshot(1, engine.NewInitialBoard(), ctx)
		testutil.AssertNoError(t, err)
		testutil.AssertEqual(t, len(snap.Sides), 1)
		testutil.AssertEqual(t, snap.Sides[0].Colour, "white")
		testutil.AssertEqual(t, snap.MoveCount(), 20)
	})

	t.Run("both sides", func(t *testing.T) {
		ctx, _, _ := testContext(t)
		ctx.cfg.Engine.Side = "both"
		snap, err := querySnapshot(1, engine.NewInitialBoard(), ctx)
		testutil.AssertNoError(t, err)
		testutil.AssertEqual(t, len(snap.Sides), 2)
		testutil.AssertEqual(t, snap.MoveCount(), 40)
	})

	t.Run("single square", func(t *testing.T) {
		ctx, _, _ := testContext(t)
		sq := chess.Coord(0, 1)
		ctx.square = &sq
		snap, err := querySnapshot(1, engine.NewInitialBoard(), ctx)
		testutil.AssertNoError(t, err)
		testutil.AssertEqual(t, len(snap.Sides), 1)
		testutil.AssertEqual(t, len(snap.Sides[0].Pieces), 1)
		testutil.AssertSameSquares(t, snap.Sides[0].Pieces[0].Destinations, testutil.Squares(t, "a3", "c3"))
	})

	t.Run("legality check", func(t *testing.T) {
		ctx, err := newProcessingContext(config.NewConfig(), "e2", "e4")
		testutil.AssertNoError(t, err)
		snap, err := querySnapshot(1, engine.NewInitialBoard(), ctx)
		testutil.AssertNoError(t, err)
		testutil.AssertEqual(t, snap.Query, &output.Query{From: chess.Coord(1, 4), To: chess.Coord(3, 4), Legal: true})

		ctx, err = newProcessingContext(config.NewConfig(), "e2", "e5")
		testutil.AssertNoError(t, err)
		snap, err = querySnapshot(1, engine.NewInitialBoard(), ctx)
		testutil.AssertNoError(t, err)
		testutil.AssertFalse(t, snap.Query.Legal, "e2-e5 is too far")
	})

	t.Run("empty square", func(t *testing.T) {
		ctx, err := newProcessingContext(config.NewConfig(), "e4", "")
		testutil.AssertNoError(t, err)
		_, err = querySnapshot(1, engine.NewInitialBoard(), ctx)
		testutil.AssertErrorIs(t, err, errors.ErrPieceNotOnBoard)
	})

	t.Run("cross check", func(t *testing.T) {
		ctx, _, _ := testContext(t)
		ctx.cfg.Engine.CrossCheck = true
		board, err := engine.NewBoardFromFEN("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w")
		testutil.AssertNoError(t, err)
		_, err = querySnapshot(1, board, ctx)
		testutil.AssertNoError(t, err)
	})
}

func TestRunSingle(t *testing.T) {
	ctx, out, _ := testContext(t)
	w := output.NewWriter(ctx.cfg.OutputFile, ctx.cfg.Output)

	stats, err := runSingle("4k3/8/8/8/8/8/8/RN6 w", ctx, w)
	testutil.AssertNoError(t, err)
	testutil.AssertNoError(t, w.Close())

	testutil.AssertEqual(t, stats, RunStats{Snapshots: 1, Moves: 10})
	testutil.AssertEqual(t, out.String(), "white:\n  Ra1: a2 a3 a4 a5 a6 a7 a8\n  Nb1: d2 a3 c3\n")
}

func TestRunSingle_BadFEN(t *testing.T) {
	ctx, out, _ := testContext(t)
	w := output.NewWriter(ctx.cfg.OutputFile, ctx.cfg.Output)

	_, err := runSingle("9/8 w", ctx, w)
	testutil.AssertErrorIs(t, err, errors.ErrInvalidFEN)
	testutil.AssertEqual(t, out.Len(), 0)
}

const batchInput = `# three snapshots and a bad line
4k3/8/8/8/8/8/8/RN6 w

8/8/8/8/8/p7/P7/K7 w
not a fen
4k3/8/8/8/8/8/8/RN6 w
`

func TestRunBatch(t *testing.T) {
	ctx, out, log := testContext(t)
	ctx.cfg.Output.ShowFEN = true
	w := output.NewWriter(ctx.cfg.OutputFile, ctx.cfg.Output)

	stats, err := runBatch(strings.NewReader(batchInput), ctx, w)
	testutil.AssertNoError(t, err)
	testutil.AssertNoError(t, w.Close())

	testutil.AssertEqual(t, stats, RunStats{Snapshots: 4, Moves: 22, Errors: 1})

	lines := strings.Split(out.String(), "\n")
	var headers []string
	for _, line := range lines {
		if strings.HasPrefix(line, "[") {
			headers = append(headers, line[:3])
		}
	}
	testutil.AssertEqual(t, headers, []string{"[1]", "[2]", "[3]", "[4]"}, "snapshots in input order")
	testutil.AssertTrue(t, strings.Contains(out.String(), "[3] error: line 5: "), "bad line reported in place")
	testutil.AssertTrue(t, strings.Contains(log.String(), "Snapshot 3:"), "bad line logged")
}

func TestRunBatch_Duplicates(t *testing.T) {
	ctx, out, _ := testContext(t)
	ctx.cfg.Output.ShowFEN = true
	var dups bytes.Buffer
	ctx.cfg.Batch.DuplicateFile = &dups
	ctx.detector = hashing.NewThreadSafeDuplicateDetector(0)
	w := output.NewWriter(ctx.cfg.OutputFile, ctx.cfg.Output)

	stats, err := runBatch(strings.NewReader(batchInput), ctx, w)
	testutil.AssertNoError(t, err)
	testutil.AssertNoError(t, w.Close())

	testutil.AssertEqual(t, stats.Duplicates, 1)
	testutil.AssertEqual(t, stats.Moves, 12, "duplicate is not counted twice")
	testutil.AssertTrue(t, strings.Contains(out.String(), "[4] duplicate"))
	testutil.AssertEqual(t, dups.String(), "4k3/8/8/8/8/8/8/RN6 w - - 0 1\n")
}

func TestRunBatch_StopOnError(t *testing.T) {
	ctx, out, _ := testContext(t)
	ctx.cfg.Output.ShowFEN = true
	ctx.cfg.Batch.StopOnError = true
	w := output.NewWriter(ctx.cfg.OutputFile, ctx.cfg.Output)

	stats, err := runBatch(strings.NewReader(batchInput), ctx, w)
	testutil.AssertNoError(t, err)
	testutil.AssertNoError(t, w.Close())

	testutil.AssertEqual(t, stats.Snapshots, 3)
	testutil.AssertEqual(t, stats.Errors, 1)
	testutil.AssertFalse(t, strings.Contains(out.String(), "[4]"), "nothing after the failing line")
}

func TestRunBatch_JSON(t *testing.T) {
	ctx, out, _ := testContext(t)
	ctx.cfg.Output.Format = config.JSON
	w := output.NewWriter(ctx.cfg.OutputFile, ctx.cfg.Output)

	_, err := runBatch(strings.NewReader(batchInput), ctx, w)
	testutil.AssertNoError(t, err)
	testutil.AssertNoError(t, w.Close())

	testutil.AssertTrue(t, strings.HasPrefix(out.String(), `{"snapshots":[`))
	testutil.AssertTrue(t, strings.Contains(out.String(), `"error":`))
}

// failingWriter rejects every snapshot.
type failingWriter struct{}

var errWriteFailed = stderrors.New("write failed")

func (failingWriter) WriteSnapshot(*output.Snapshot) error { return errWriteFailed }
func (failingWriter) Flush() error                         { return nil }
func (failingWriter) Close() error                         { return nil }

func TestRunBatch_WriteError(t *testing.T) {
	ctx, _, _ := testContext(t)
	_, err := runBatch(strings.NewReader(batchInput), ctx, failingWriter{})
	testutil.AssertErrorIs(t, err, errWriteFailed)
}

func TestProcessSnapshotWorker_ParseError(t *testing.T) {
	ctx, _, _ := testContext(t)
	ctx.cfg.InputFile = "positions.fen"

	result := processSnapshotWorker(worker.WorkItem{Text: "not a fen", Line: 7, Index: 2}, ctx)

	var perr *errors.ParseError
	if !stderrors.As(result.Error, &perr) {
		t.Fatalf("error = %v; want *ParseError", result.Error)
	}
	testutil.AssertEqual(t, perr.Line, 7)
	testutil.AssertErrorIs(t, result.Error, errors.ErrInvalidFEN)
	testutil.AssertTrue(t, strings.HasPrefix(result.Error.Error(), "positions.fen:7: "))
}

func TestLoadCheckFile(t *testing.T) {
	detector, n, err := loadCheckFile(strings.NewReader(batchInput[:strings.Index(batchInput, "not a fen")]), 0)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, n, 2)
	testutil.AssertEqual(t, detector.UniqueCount(), 2)

	_, _, err = loadCheckFile(strings.NewReader("not a fen\n"), 0)
	testutil.AssertErrorIs(t, err, errors.ErrInvalidFEN)
}

func TestScanLines(t *testing.T) {
	var err error
	lines := scanLines(strings.NewReader(batchInput), &err)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, len(lines), 4)
	testutil.AssertEqual(t, lines[2].text, "not a fen")
	testutil.AssertEqual(t, lines[2].line, 5, "blank and comment lines still count")
}
