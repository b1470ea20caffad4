package output

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/lgbarn/movegen-go/internal/config"
)

// OutputWriter handles formatted output with line length control.
type OutputWriter struct {
	w             io.Writer
	lineLength    int
	maxLineLength int
	indent        string
	needsSpace    bool
}

// NewOutputWriter creates a new output writer. Wrapped lines start with
// indent.
func NewOutputWriter(w io.Writer, maxLineLength int, indent string) *OutputWriter {
	if maxLineLength <= 0 {
		maxLineLength = 80
	}
	return &OutputWriter{
		w:             w,
		maxLineLength: maxLineLength,
		indent:        indent,
	}
}

// Write writes a string, adding a space separator if needed.
func (o *OutputWriter) Write(s string) {
	if o.needsSpace && len(s) > 0 {
		// Check if we need a new line
		if o.lineLength+1+len(s) > o.maxLineLength {
			fmt.Fprintln(o.w)
			fmt.Fprint(o.w, o.indent)
			o.lineLength = len(o.indent)
		} else {
			fmt.Fprint(o.w, " ")
			o.lineLength++
		}
	}

	fmt.Fprint(o.w, s)
	o.lineLength += len(s)
	o.needsSpace = true
}

// WriteNoSpace writes without adding a leading space.
func (o *OutputWriter) WriteNoSpace(s string) {
	fmt.Fprint(o.w, s)
	o.lineLength += len(s)
	o.needsSpace = true
}

// NewLine starts a new line.
func (o *OutputWriter) NewLine() {
	fmt.Fprintln(o.w)
	o.lineLength = 0
	o.needsSpace = false
}

// OutputSnapshot writes s as text:
//
//	[1] rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w - - 0 1
//	white:
//	  Nb1: a3 c3
func OutputSnapshot(w io.Writer, s *Snapshot, cfg *config.OutputConfig) {
	ow := NewOutputWriter(w, cfg.MaxLineLength, "      ")
	prefix := "[" + strconv.Itoa(s.Index) + "]"

	switch {
	case s.Error != "":
		ow.WriteNoSpace(prefix)
		ow.Write("error: " + s.Error)
		ow.NewLine()
		return
	case s.Duplicate:
		ow.WriteNoSpace(prefix)
		ow.Write("duplicate")
		ow.NewLine()
		return
	}

	if cfg.ShowFEN {
		ow.WriteNoSpace(prefix)
		ow.Write(s.FEN)
		ow.NewLine()
	}

	if q := s.Query; q != nil {
		verdict := "illegal"
		if q.Legal {
			verdict = "legal"
		}
		ow.WriteNoSpace(q.From.String() + "-" + q.To.String() + ": " + verdict)
		ow.NewLine()
		return
	}

	if !cfg.KeepImmobile {
		s = s.withoutImmobile()
	}
	for _, side := range s.Sides {
		ow.WriteNoSpace(side.Colour + ":")
		ow.NewLine()
		for _, p := range side.Pieces {
			ow.WriteNoSpace("  " + pieceLabel(p) + ":")
			if len(p.Destinations) == 0 {
				ow.Write("-")
			}
			for _, d := range p.Destinations {
				ow.Write(d.String())
			}
			ow.NewLine()
		}
	}
}

// pieceLabel returns e.g. "Nb1".
func pieceLabel(p PieceMoves) string {
	return strings.ToUpper(p.Letter) + p.Square.String()
}
