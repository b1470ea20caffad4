package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/lgbarn/movegen-go/internal/chess"
	"github.com/lgbarn/movegen-go/internal/config"
	"github.com/lgbarn/movegen-go/internal/engine"
	"github.com/lgbarn/movegen-go/internal/testutil"
)

// knightsSnapshot is the snapshot of a board with two white knights and a
// black king, white to move.
func knightsSnapshot(t *testing.T) *Snapshot {
	t.Helper()
	board, err := engine.NewBoardFromFEN("4k3/8/8/8/8/8/8/RN6 w")
	testutil.AssertNoError(t, err)
	moves, err := engine.AllDestinations(board, chess.White)
	testutil.AssertNoError(t, err)

	s := NewSnapshot(1, board)
	s.AddSide(board, chess.White, moves)
	return s
}

func TestNewSnapshot(t *testing.T) {
	s := knightsSnapshot(t)

	testutil.AssertEqual(t, s.FEN, "4k3/8/8/8/8/8/8/RN6 w - - 0 1")
	testutil.AssertEqual(t, s.Size, 8)
	testutil.AssertEqual(t, s.ToMove, "white")
	testutil.AssertEqual(t, len(s.Sides), 1)

	pieces := s.Sides[0].Pieces
	testutil.AssertEqual(t, len(pieces), 2)
	testutil.AssertEqual(t, pieces[0].Piece, "rook")
	testutil.AssertEqual(t, pieces[0].Letter, "R")
	testutil.AssertEqual(t, pieces[0].Square, chess.Coord(0, 0))
	testutil.AssertEqual(t, len(pieces[0].Destinations), 7, "rook up the a-file")
	testutil.AssertEqual(t, pieces[1].Destinations, testutil.Squares(t, "d2", "a3", "c3"))
	testutil.AssertEqual(t, s.MoveCount(), 10)
}

// TestTextWriter_WriteSnapshot verifies text writer outputs correct format
func TestTextWriter_WriteSnapshot(t *testing.T) {
	var buf bytes.Buffer
	cfg := config.NewOutputConfig()

	writer := NewTextWriter(&buf, cfg)
	if err := writer.WriteSnapshot(knightsSnapshot(t)); err != nil {
		t.Fatalf("WriteSnapshot failed: %v", err)
	}

	want := strings.Join([]string{
		"[1] 4k3/8/8/8/8/8/8/RN6 w - - 0 1",
		"white:",
		"  Ra1: a2 a3 a4 a5 a6 a7 a8",
		"  Nb1: d2 a3 c3",
		"",
	}, "\n")
	testutil.AssertEqual(t, buf.String(), want)
}

func TestTextWriter_Options(t *testing.T) {
	board, err := engine.NewBoardFromFEN("8/8/8/8/8/p7/P7/K7 w")
	testutil.AssertNoError(t, err)
	moves, err := engine.AllDestinations(board, chess.White)
	testutil.AssertNoError(t, err)
	s := NewSnapshot(2, board)
	s.AddSide(board, chess.White, moves)

	var buf bytes.Buffer
	cfg := config.NewOutputConfig()
	cfg.ShowFEN = false
	OutputSnapshot(&buf, s, cfg)
	testutil.AssertEqual(t, buf.String(), "white:\n  Ka1: b1 b2\n  Pa2: -\n")

	buf.Reset()
	cfg.KeepImmobile = false
	OutputSnapshot(&buf, s, cfg)
	testutil.AssertEqual(t, buf.String(), "white:\n  Ka1: b1 b2\n")
	testutil.AssertEqual(t, len(s.Sides[0].Pieces), 2, "filtering must not modify the snapshot")
}

func TestTextWriter_Wraps(t *testing.T) {
	board := chess.NewBoard()
	board.MustPlace(chess.Queen, chess.White, chess.Coord(3, 3))
	moves, err := engine.AllDestinations(board, chess.White)
	testutil.AssertNoError(t, err)
	s := NewSnapshot(1, board)
	s.AddSide(board, chess.White, moves)

	var buf bytes.Buffer
	cfg := config.NewOutputConfig()
	cfg.ShowFEN = false
	cfg.MaxLineLength = 30
	OutputSnapshot(&buf, s, cfg)

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) < 3 {
		t.Fatalf("expected wrapped output, got %q", buf.String())
	}
	for _, line := range lines {
		if len(line) > 30 {
			t.Errorf("line %q longer than 30", line)
		}
	}
	for _, line := range lines[2:] {
		if !strings.HasPrefix(line, "      ") {
			t.Errorf("continuation %q not indented", line)
		}
	}
}

func TestTextWriter_ErrorAndDuplicate(t *testing.T) {
	var buf bytes.Buffer
	cfg := config.NewOutputConfig()

	OutputSnapshot(&buf, ErrorSnapshot(3, fmt.Errorf("bad input")), cfg)
	OutputSnapshot(&buf, &Snapshot{Index: 4, Duplicate: true}, cfg)

	testutil.AssertEqual(t, buf.String(), "[3] error: bad input\n[4] duplicate\n")
}

// TestJSONWriter_WriteSnapshot verifies JSON writer outputs correct format
func TestJSONWriter_WriteSnapshot(t *testing.T) {
	var buf bytes.Buffer
	cfg := config.NewOutputConfig()

	writer := NewJSONWriter(&buf, cfg)
	if err := writer.WriteSnapshot(knightsSnapshot(t)); err != nil {
		t.Fatalf("WriteSnapshot failed: %v", err)
	}
	if buf.Len() != 0 {
		t.Error("batch writer wrote before Flush")
	}
	if err := writer.Flush(); err != nil {
		t.Fatalf("Flush failed: %v", err)
	}

	var got JSONOutput
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("invalid JSON %q: %v", buf.String(), err)
	}
	testutil.AssertEqual(t, got.Snapshots, []*Snapshot{knightsSnapshot(t)})

	if !strings.Contains(buf.String(), `"square":"b1"`) {
		t.Errorf("squares not in algebraic form: %s", buf.String())
	}
}

func TestJSONWriterSingle(t *testing.T) {
	var buf bytes.Buffer
	cfg := config.NewOutputConfig()
	cfg.Indent = true

	writer := NewJSONWriterSingle(&buf, cfg)
	testutil.AssertNoError(t, writer.WriteSnapshot(knightsSnapshot(t)))
	if buf.Len() == 0 {
		t.Fatal("single writer buffered its output")
	}
	if !strings.Contains(buf.String(), "\n  \"index\": 1") {
		t.Errorf("output not indented: %s", buf.String())
	}
	testutil.AssertNoError(t, writer.Close())
}

// TestSnapshotWriter_Interface verifies that writers implement the interface
func TestSnapshotWriter_Interface(t *testing.T) {
	cfg := config.NewOutputConfig()
	var buf bytes.Buffer

	var _ SnapshotWriter = NewTextWriter(&buf, cfg)
	var _ SnapshotWriter = NewJSONWriter(&buf, cfg)

	if _, ok := NewWriter(&buf, cfg).(*TextWriter); !ok {
		t.Error("NewWriter(text) is not a *TextWriter")
	}
	cfg.Format = config.JSON
	if _, ok := NewWriter(&buf, cfg).(*JSONWriter); !ok {
		t.Error("NewWriter(json) is not a *JSONWriter")
	}
}

// TestJSONWriter_Close verifies Close flushes pending snapshots
func TestJSONWriter_Close(t *testing.T) {
	var buf bytes.Buffer
	cfg := config.NewOutputConfig()

	writer := NewJSONWriter(&buf, cfg)
	testutil.AssertNoError(t, writer.WriteSnapshot(knightsSnapshot(t)))
	if err := writer.Close(); err != nil {
		t.Errorf("Close failed: %v", err)
	}
	if buf.Len() == 0 {
		t.Error("Expected output after Close")
	}

	buf.Reset()
	testutil.AssertNoError(t, writer.Close())
	if buf.Len() != 0 {
		t.Error("second Close wrote again")
	}
}

func TestSnapshot_Restrict(t *testing.T) {
	s := knightsSnapshot(t)
	s.Restrict(chess.Coord(0, 1))

	testutil.AssertEqual(t, len(s.Sides), 1)
	testutil.AssertEqual(t, len(s.Sides[0].Pieces), 1)
	testutil.AssertEqual(t, s.Sides[0].Pieces[0].Letter, "N")

	s.Restrict(chess.Coord(4, 4))
	testutil.AssertEqual(t, len(s.Sides), 0, "empty square keeps nothing")
}

func TestTextWriter_Query(t *testing.T) {
	s := knightsSnapshot(t)
	s.Query = &Query{From: chess.Coord(0, 1), To: chess.Coord(2, 2), Legal: true}

	var buf bytes.Buffer
	cfg := config.NewOutputConfig()
	cfg.ShowFEN = false
	if err := NewTextWriter(&buf, cfg).WriteSnapshot(s); err != nil {
		t.Fatalf("WriteSnapshot failed: %v", err)
	}
	testutil.AssertEqual(t, buf.String(), "b1-c3: legal\n")
}
