package output

import (
	"encoding/json"
	"io"

	"github.com/lgbarn/movegen-go/internal/config"
)

// SnapshotWriter is the interface for writing snapshots to output.
// Different implementations handle different output formats (text, JSON).
type SnapshotWriter interface {
	// WriteSnapshot writes a single snapshot to the output.
	WriteSnapshot(s *Snapshot) error

	// Flush flushes any buffered data to the underlying writer.
	Flush() error

	// Close closes the writer and releases any resources.
	// For batch writers (like JSON), this also writes any pending output.
	Close() error
}

// NewWriter returns the writer for the configured format.
func NewWriter(w io.Writer, cfg *config.OutputConfig) SnapshotWriter {
	if cfg.Format == config.JSON {
		return NewJSONWriter(w, cfg)
	}
	return NewTextWriter(w, cfg)
}

// TextWriter writes snapshots in text format.
type TextWriter struct {
	w   io.Writer
	cfg *config.OutputConfig
}

// NewTextWriter creates a new text writer.
func NewTextWriter(w io.Writer, cfg *config.OutputConfig) *TextWriter {
	return &TextWriter{
		w:   w,
		cfg: cfg,
	}
}

// WriteSnapshot writes a snapshot in text format.
func (tw *TextWriter) WriteSnapshot(s *Snapshot) error {
	OutputSnapshot(tw.w, s, tw.cfg)
	return nil
}

// Flush flushes the text writer (no-op as it writes immediately).
func (tw *TextWriter) Flush() error {
	return nil
}

// Close closes the text writer.
func (tw *TextWriter) Close() error {
	return nil
}

// JSONOutput holds multiple snapshots for array output.
type JSONOutput struct {
	Snapshots []*Snapshot `json:"snapshots"`
}

// JSONWriter writes snapshots in JSON format.
// It buffers snapshots and writes them as a JSON array on Close or Flush.
type JSONWriter struct {
	w         io.Writer
	cfg       *config.OutputConfig
	snapshots []*Snapshot
	single    bool // If true, write each snapshot immediately instead of batching
}

// NewJSONWriter creates a new JSON writer.
// By default, it batches snapshots and writes them as an array on Close().
func NewJSONWriter(w io.Writer, cfg *config.OutputConfig) *JSONWriter {
	return &JSONWriter{
		w:         w,
		cfg:       cfg,
		snapshots: make([]*Snapshot, 0),
	}
}

// NewJSONWriterSingle creates a JSON writer that writes each snapshot immediately.
func NewJSONWriterSingle(w io.Writer, cfg *config.OutputConfig) *JSONWriter {
	return &JSONWriter{
		w:      w,
		cfg:    cfg,
		single: true,
	}
}

// WriteSnapshot buffers a snapshot for JSON output (or writes immediately in single mode).
func (jw *JSONWriter) WriteSnapshot(s *Snapshot) error {
	if !jw.cfg.KeepImmobile {
		s = s.withoutImmobile()
	}
	if jw.single {
		return jw.encoder().Encode(s)
	}
	jw.snapshots = append(jw.snapshots, s)
	return nil
}

// Flush writes all buffered snapshots as a JSON array.
func (jw *JSONWriter) Flush() error {
	if jw.single || len(jw.snapshots) == 0 {
		return nil
	}

	err := jw.encoder().Encode(&JSONOutput{Snapshots: jw.snapshots})

	// Clear buffer after writing
	jw.snapshots = jw.snapshots[:0]

	return err
}

// Close flushes and closes the JSON writer.
func (jw *JSONWriter) Close() error {
	return jw.Flush()
}

func (jw *JSONWriter) encoder() *json.Encoder {
	enc := json.NewEncoder(jw.w)
	if jw.cfg.Indent {
		enc.SetIndent("", "  ")
	}
	return enc
}
