package csvio

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"roster-enricher/internal/roster"
)

const filePerm = 0o644

// ExportOptions selects the columns and empty-value rendering of an export.
type ExportOptions struct {
	// VisibleOnly exports only visible headers; otherwise every header.
	VisibleOnly bool
	// UsePlaceholder writes Placeholder for empty values instead of "".
	UsePlaceholder bool
	// Placeholder defaults to roster.EmptyPlaceholder.
	Placeholder string
}

// Export writes a header row plus one row per camper. Columns follow the
// canonical header order and every value is quoted.
func Export(w io.Writer, r *roster.Roster, campers []*roster.Camper, opts ExportOptions) error {
	headers := r.OrderedHeaders()
	if opts.VisibleOnly {
		headers = r.OrderedVisibleHeaders()
	}

	placeholder := opts.Placeholder
	if placeholder == "" {
		placeholder = roster.EmptyPlaceholder
	}

	bw := bufio.NewWriter(w)

	if err := writeRow(bw, roster.Names(headers)); err != nil {
		return fmt.Errorf("writing header row: %w", err)
	}

	row := make([]string, len(headers))

	for _, c := range campers {
		for i, h := range headers {
			v := c.Value(h)

			switch {
			case !roster.IsEmpty(v):
				row[i] = v
			case opts.UsePlaceholder:
				row[i] = placeholder
			default:
				row[i] = ""
			}
		}

		if err := writeRow(bw, row); err != nil {
			return fmt.Errorf("writing row for %s: %w", c.DisplayName(), err)
		}
	}

	return bw.Flush()
}

// ExportFile writes the export to path.
func ExportFile(path string, r *roster.Roster, campers []*roster.Camper, opts ExportOptions) (err error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, filePerm)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}

	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing %s: %w", path, cerr)
		}
	}()

	return Export(f, r, campers, opts)
}

// writeRow writes force-quoted cells; encoding/csv only quotes when needed.
func writeRow(w *bufio.Writer, cells []string) error {
	for i, cell := range cells {
		if i > 0 {
			if err := w.WriteByte(','); err != nil {
				return err
			}
		}

		if _, err := w.WriteString(`"` + strings.ReplaceAll(cell, `"`, `""`) + `"`); err != nil {
			return err
		}
	}

	return w.WriteByte('\n')
}
