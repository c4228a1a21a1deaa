package report

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"roster-enricher/internal/diagnostic"
)

// DefaultMaxRows bounds the context rows printed per bucket.
const DefaultMaxRows = 20

// Options controls rendering.
type Options struct {
	// MaxRows caps the context rows shown per bucket; 0 means DefaultMaxRows
	// and a negative value shows every row.
	MaxRows int
	// WarningsOnly leaves the error section out.
	WarningsOnly bool
}

type styles struct {
	errorTitle   lipgloss.Style
	warningTitle lipgloss.Style
	bucket       lipgloss.Style
	message      lipgloss.Style
	header       lipgloss.Style
	cell         lipgloss.Style
	dim          lipgloss.Style
	border       lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		errorTitle: r.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("160")).
			Padding(0, 1),
		warningTitle: r.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#1A1A1A")).
			Background(lipgloss.Color("214")).
			Padding(0, 1),
		bucket:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("81")),
		message: r.NewStyle().PaddingLeft(2),
		header:  r.NewStyle().Bold(true).Padding(0, 1),
		cell:    r.NewStyle().Padding(0, 1),
		dim:     r.NewStyle().Foreground(lipgloss.Color("240")).PaddingLeft(2),
		border:  r.NewStyle().Foreground(lipgloss.Color("240")),
	}
}

// Render writes the error and warning buckets of sink to w.
func Render(w io.Writer, sink diagnostic.Sink, opts Options) error {
	if opts.MaxRows == 0 {
		opts.MaxRows = DefaultMaxRows
	}

	st := newStyles(lipgloss.NewRenderer(w))

	var b strings.Builder

	if !opts.WarningsOnly && sink.HasErrors() {
		b.WriteString(st.errorTitle.Render("Errors"))
		b.WriteString("\n")
		writeBuckets(&b, st, sink.ErrorLog(), opts.MaxRows)
	}

	if sink.HasWarnings() {
		b.WriteString(st.warningTitle.Render("Warnings"))
		b.WriteString("\n")
		writeBuckets(&b, st, sink.WarningLog(), opts.MaxRows)
	}

	b.WriteString(Summary(sink))
	b.WriteString("\n")

	_, err := io.WriteString(w, b.String())

	return err
}

// Summary returns a one-line count of errors and warnings.
func Summary(sink diagnostic.Sink) string {
	errs, warns := 0, 0

	for _, bk := range sink.ErrorLog() {
		errs += len(bk.Entries)
	}

	for _, bk := range sink.WarningLog() {
		warns += len(bk.Entries)
	}

	return fmt.Sprintf("%s, %s", plural(errs, "error"), plural(warns, "warning"))
}

func plural(n int, word string) string {
	if n == 1 {
		return "1 " + word
	}

	return fmt.Sprintf("%d %ss", n, word)
}

func writeBuckets(b *strings.Builder, st styles, buckets []diagnostic.Bucket, maxRows int) {
	for _, bk := range buckets {
		fmt.Fprintf(b, "\n%s\n", st.bucket.Render(fmt.Sprintf("%s (%d)", bk.Kind.Title(), len(bk.Entries))))

		for _, e := range limit(bk.Entries, maxRows) {
			b.WriteString(st.message.Render("- " + e.Message))
			b.WriteString("\n")
		}

		if hidden := len(bk.Entries) - len(limit(bk.Entries, maxRows)); hidden > 0 {
			b.WriteString(st.dim.Render(fmt.Sprintf("... and %d more", hidden)))
			b.WriteString("\n")
		}

		if t := contextTable(st, bk.Entries, maxRows); t != "" {
			b.WriteString(t)
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
}

// contextTable renders the context rows of the entries that share the first
// entry's columns.
func contextTable(st styles, entries []diagnostic.Entry, maxRows int) string {
	if len(entries) == 0 || len(entries[0].Columns) == 0 {
		return ""
	}

	columns := entries[0].Columns

	var rows [][]string

	for _, e := range entries {
		if !slices.Equal(e.Columns, columns) {
			continue
		}

		for _, row := range e.Rows {
			rows = append(rows, pad(row, len(columns)))
		}
	}

	if len(rows) == 0 {
		return ""
	}

	rows = limit(rows, maxRows)

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(st.border).
		Headers(columns...).
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return st.header
			}

			return st.cell
		})

	return t.String()
}

func limit[T any](items []T, n int) []T {
	if n < 0 || len(items) <= n {
		return items
	}

	return items[:n]
}

// pad fits row to n cells.
func pad(row []string, n int) []string {
	out := make([]string, n)
	copy(out, row)

	return out
}
