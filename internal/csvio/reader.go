package csvio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// ErrMalformedRow is wrapped by MalformedRowError.
var ErrMalformedRow = errors.New("malformed row")

// ErrNoHeader is returned for input without a header row.
var ErrNoHeader = errors.New("no header row")

// MalformedRowError reports a row whose cell count differs from the header.
type MalformedRowError struct {
	File     string
	Expected int
	Actual   int
	// Line is the 1-based line number in the original file.
	Line int
}

func (e *MalformedRowError) Error() string {
	return fmt.Sprintf("%s: %v at line %d: expected %d columns, got %d",
		e.File, ErrMalformedRow, e.Line, e.Expected, e.Actual)
}

func (e *MalformedRowError) Unwrap() error {
	return ErrMalformedRow
}

// Table is a parsed export: ordered headers and one header→value map per row.
type Table struct {
	Name     string
	Encoding string
	Headers  []string
	Rows     []map[string]string
	// Dropped counts lines discarded by cleaning.
	Dropped int
}

// Reader parses export files.
type Reader struct {
	logger *zap.Logger
}

// NewReader returns a Reader that reports dropped lines to logger at warn
// level, the CLI's default. A nil logger discards them.
func NewReader(logger *zap.Logger) *Reader {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Reader{logger: logger}
}

// ReadFile reads and parses the file at path.
func (r *Reader) ReadFile(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	return r.Parse(filepath.Base(path), data)
}

// Parse parses data; name identifies the input in errors and notices.
func (r *Reader) Parse(name string, data []byte) (*Table, error) {
	text, enc, err := decode(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	t := &Table{Name: name, Encoding: enc}

	var (
		kept    []string
		lineNos []int
	)

	lines := strings.Split(text, "\n")
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	for i, line := range lines {
		cleaned, reason := cleanLine(line)
		if reason != keepLine {
			r.logger.Warn("dropping line",
				zap.String("file", name),
				zap.Int("line", i+1),
				zap.String("reason", string(reason)),
			)

			t.Dropped++

			continue
		}

		kept = append(kept, cleaned)
		lineNos = append(lineNos, i+1)
	}

	cr := csv.NewReader(strings.NewReader(strings.Join(kept, "\n")))
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%s: %w", name, ErrNoHeader)
	}

	if err != nil {
		return nil, fmt.Errorf("%s: reading header row: %w", name, err)
	}

	for i, h := range header {
		header[i] = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
	}

	t.Headers = header

	for idx := 1; ; idx++ {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("%s: line %d: %w", name, lineNos[idx], err)
		}

		if len(record) != len(header) {
			return nil, &MalformedRowError{
				File:     name,
				Expected: len(header),
				Actual:   len(record),
				Line:     lineNos[idx],
			}
		}

		row := make(map[string]string, len(header))
		for i, h := range header {
			row[h] = record[i]
		}

		t.Rows = append(t.Rows, row)
	}

	r.logger.Debug("parsed export",
		zap.String("file", name),
		zap.String("encoding", enc),
		zap.Int("rows", len(t.Rows)),
		zap.Int("dropped", t.Dropped),
	)

	return t, nil
}
