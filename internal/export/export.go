// Package export writes the session's responses to a CSV file.
package export

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"go.uber.org/zap"

	"github.com/abhisek/interviewprep/internal/session"
)

// DefaultPath is where Export writes, relative to the working directory.
// Each export overwrites the previous file.
const DefaultPath = "interview_responses.csv"

// ErrNoResponses is returned when there is nothing to export. No file is
// written in that case.
var ErrNoResponses = errors.New("no responses to export yet")

// Columns is the CSV header, in Response field order.
var Columns = []string{"question", "answer", "confidence", "ml_score", "keyword_score", "score"}

// WriteCSV writes a header row followed by one row per response, in order.
func WriteCSV(w io.Writer, responses []session.Response) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Columns); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for i, r := range responses {
		row := []string{
			r.Question,
			r.Answer,
			strconv.Itoa(r.Confidence),
			strconv.Itoa(r.MLScore),
			strconv.Itoa(r.KeywordScore),
			strconv.Itoa(r.Score),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write row %d: %w", i+1, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// Exporter writes responses to a fixed file path.
type Exporter struct {
	Path string
	log  *zap.Logger
}

// New returns an Exporter targeting DefaultPath.
func New(log *zap.Logger) *Exporter {
	if log == nil {
		log = zap.NewNop()
	}
	return &Exporter{Path: DefaultPath, log: log}
}

// Export writes responses to e.Path, replacing any existing file, and
// returns the path written. It returns ErrNoResponses for an empty slice.
func (e *Exporter) Export(responses []session.Response) (string, error) {
	if len(responses) == 0 {
		e.log.Warn("export skipped: no responses")
		return "", ErrNoResponses
	}

	var buf bytes.Buffer
	if err := WriteCSV(&buf, responses); err != nil {
		return "", fmt.Errorf("encode csv: %w", err)
	}
	if err := os.WriteFile(e.Path, buf.Bytes(), 0o644); err != nil {
		e.log.Error("export failed", zap.String("path", e.Path), zap.Error(err))
		return "", fmt.Errorf("write %s: %w", e.Path, err)
	}

	e.log.Info("responses exported", zap.String("path", e.Path), zap.Int("rows", len(responses)))
	return e.Path, nil
}

// StatusText turns the outcome of Export into the message shown to the user.
// isErr is false for the "nothing to export" warning.
func StatusText(path string, err error) (msg string, isErr bool) {
	switch {
	case errors.Is(err, ErrNoResponses):
		return "No responses to export yet.", false
	case err != nil:
		return fmt.Sprintf("Export failed: %v", err), true
	}
	return fmt.Sprintf("Exported to '%s'", path), false
}
