package diagnostic

import (
	"errors"
	"fmt"
	"strings"
)

// Severity separates recoverable warnings from abort-triggering errors.
type Severity int

const (
	SeverityWarning Severity = iota
	SeverityError
)

// String returns a human-readable severity name.
func (s Severity) String() string {
	switch s {
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

// Entry is a single diagnostic.
type Entry struct {
	// Kind is the bucket this entry belongs to.
	Kind Kind
	// Severity is set by the Log when the entry is recorded.
	Severity Severity
	// Message is the human-readable explanation.
	Message string
	// Columns names the values of each context row (e.g. camper, field, expected format).
	Columns []string
	// Rows holds zero or more rows of context display data.
	Rows [][]string
}

// String returns a formatted diagnostic string.
func (e Entry) String() string {
	msg := fmt.Sprintf("[%s] %s", e.Kind, e.Message)
	if len(e.Rows) == 0 {
		return msg
	}

	rows := make([]string, 0, len(e.Rows))
	for _, row := range e.Rows {
		rows = append(rows, strings.Join(row, " | "))
	}

	return msg + ": " + strings.Join(rows, "; ")
}

// Bucket is the ordered list of entries of one kind.
type Bucket struct {
	Kind    Kind
	Entries []Entry
}

// Sink is the warning manager the pipeline reports to.
type Sink interface {
	LogWarning(e Entry)
	LogError(e Entry)
	HasWarnings() bool
	HasErrors() bool
	WarningLog() []Bucket
	ErrorLog() []Bucket
}

// Log is an append-only, kind-bucketed collector of warnings and errors.
// It is not safe for concurrent use.
type Log struct {
	warnings buckets
	errors   buckets
}

var _ Sink = (*Log)(nil)

// NewLog returns an empty log.
func NewLog() *Log {
	return &Log{}
}

type buckets struct {
	order  []Kind
	byKind map[Kind][]Entry
	count  int
}

func (b *buckets) add(e Entry) {
	if b.byKind == nil {
		b.byKind = make(map[Kind][]Entry)
	}

	if _, ok := b.byKind[e.Kind]; !ok {
		b.order = append(b.order, e.Kind)
	}

	b.byKind[e.Kind] = append(b.byKind[e.Kind], e)
	b.count++
}

func (b *buckets) list() []Bucket {
	out := make([]Bucket, 0, len(b.order))
	for _, k := range b.order {
		entries := b.byKind[k]
		out = append(out, Bucket{Kind: k, Entries: append([]Entry(nil), entries...)})
	}

	return out
}

// LogWarning records a recoverable warning.
func (l *Log) LogWarning(e Entry) {
	e.Severity = SeverityWarning
	l.warnings.add(e)
}

// LogError records an abort-triggering error.
func (l *Log) LogError(e Entry) {
	e.Severity = SeverityError
	l.errors.add(e)
}

// AddWarning records a warning built from its parts.
func (l *Log) AddWarning(kind Kind, message string, columns []string, rows ...[]string) {
	l.LogWarning(Entry{Kind: kind, Message: message, Columns: columns, Rows: rows})
}

// AddError records an error built from its parts.
func (l *Log) AddError(kind Kind, message string, columns []string, rows ...[]string) {
	l.LogError(Entry{Kind: kind, Message: message, Columns: columns, Rows: rows})
}

// HasWarnings returns true if any warning was recorded.
func (l *Log) HasWarnings() bool {
	return l.warnings.count > 0
}

// HasErrors returns true if any error was recorded.
func (l *Log) HasErrors() bool {
	return l.errors.count > 0
}

// WarningLog returns the warning buckets in first-logged order.
func (l *Log) WarningLog() []Bucket {
	return l.warnings.list()
}

// ErrorLog returns the error buckets in first-logged order.
func (l *Log) ErrorLog() []Bucket {
	return l.errors.list()
}

// Warnings returns the warnings of a single kind.
func (l *Log) Warnings(kind Kind) []Entry {
	return append([]Entry(nil), l.warnings.byKind[kind]...)
}

// Errors returns the errors of a single kind.
func (l *Log) Errors(kind Kind) []Entry {
	return append([]Entry(nil), l.errors.byKind[kind]...)
}

// WarningCount returns the total number of warnings.
func (l *Log) WarningCount() int {
	return l.warnings.count
}

// ErrorCount returns the total number of errors.
func (l *Log) ErrorCount() int {
	return l.errors.count
}

// Err returns a combined error from all error entries, or nil if there are none.
func (l *Log) Err() error {
	if !l.HasErrors() {
		return nil
	}

	var parts []string
	for _, b := range l.ErrorLog() {
		for _, e := range b.Entries {
			parts = append(parts, e.String())
		}
	}

	return errors.New(strings.Join(parts, "; "))
}
