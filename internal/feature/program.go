package feature

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"roster-enricher/internal/diagnostic"
	"roster-enricher/internal/roster"
	"roster-enricher/internal/settings"
)

var (
	sessionNumber = regexp.MustCompile(`Session (\d+)`)
	sessionEntry  = regexp.MustCompile(`^Session (\d+)[A-Za-z]?/(.+)$`)
)

var programColumns = []string{"Camper", "Enrolled sessions", "Current session"}

// ProgramFeature extracts the program a camper attends in the current session
// from the free-text enrolled sessions field.
type ProgramFeature struct {
	base

	session int
}

// NewProgramFeature returns the program extraction feature. A non-zero
// cfg.CurrentSession replaces session inference.
func NewProgramFeature(cfg *settings.Settings) *ProgramFeature {
	return &ProgramFeature{
		base: base{
			id:       IDProgram,
			name:     "Program extraction",
			required: []roster.Header{roster.EnrolledSessions},
			added:    []roster.Header{roster.Program},
		},
		session: cfg.CurrentSession,
	}
}

func (f *ProgramFeature) Apply(r *roster.EnrichedRoster, log *diagnostic.Log) error {
	f.addHeaders(r)

	current := f.session
	if current == 0 {
		current = CurrentSession(r.Campers())
	}

	for _, c := range r.Campers() {
		raw := strings.TrimSpace(c.Value(roster.EnrolledSessions))
		if roster.IsEmpty(raw) {
			continue
		}

		if current == 0 {
			c.Set(roster.Program, firstProgram(raw))
			continue
		}

		program, ok := ProgramFor(raw, current)
		if !ok {
			c.Set(roster.Program, raw)
			log.AddWarning(diagnostic.KindProgramParsingFailure,
				fmt.Sprintf("%s is not enrolled in session %d; using the raw enrollment text", c.DisplayName(), current),
				programColumns,
				[]string{c.DisplayName(), raw, strconv.Itoa(current)},
			)

			continue
		}

		c.Set(roster.Program, program)
	}

	r.EnableFeature(string(f.id))

	return nil
}

func (f *ProgramFeature) PostValidate(r *roster.EnrichedRoster, log *diagnostic.Log) bool {
	return f.hasAddedHeaders(r, log)
}

// CurrentSession returns the session number that occurs most often across the
// campers' enrolled sessions. Ties go to the lowest number; 0 means none.
func CurrentSession(campers []*roster.Camper) int {
	counts := make(map[int]int)

	for _, c := range campers {
		for _, m := range sessionNumber.FindAllStringSubmatch(c.Value(roster.EnrolledSessions), -1) {
			n, err := strconv.Atoi(m[1])
			if err != nil {
				continue
			}

			counts[n]++
		}
	}

	best, bestCount := 0, 0

	for n, count := range counts {
		if count > bestCount || (count == bestCount && n < best) {
			best, bestCount = n, count
		}
	}

	return best
}

// ProgramFor returns the program of the entry for session in raw.
func ProgramFor(raw string, session int) (string, bool) {
	for _, entry := range sessionEntries(raw) {
		m := sessionEntry.FindStringSubmatch(entry)
		if m == nil {
			continue
		}

		if n, err := strconv.Atoi(m[1]); err == nil && n == session {
			return strings.TrimSpace(m[2]), true
		}
	}

	return "", false
}

// sessionEntries splits raw at every "Session <n>" marker, so program names
// containing "and" stay whole.
func sessionEntries(raw string) []string {
	starts := sessionNumber.FindAllStringIndex(raw, -1)
	entries := make([]string, 0, len(starts))

	for i, loc := range starts {
		end := len(raw)
		if i+1 < len(starts) {
			end = starts[i+1][0]
		}

		entry := strings.TrimSpace(raw[loc[0]:end])
		entry = strings.TrimSpace(strings.TrimSuffix(entry, " and"))
		entries = append(entries, entry)
	}

	return entries
}

// firstProgram returns the program of the first entry. Without session
// markers an entry ends at the last " and " before the next "/".
func firstProgram(raw string) string {
	if entries := sessionEntries(raw); len(entries) > 0 {
		if m := sessionEntry.FindStringSubmatch(entries[0]); m != nil {
			return strings.TrimSpace(m[2])
		}
	}

	_, rest, ok := strings.Cut(raw, "/")
	if !ok {
		return raw
	}

	if next := strings.Index(rest, "/"); next >= 0 {
		rest = rest[:next]
		if i := strings.LastIndex(rest, " and "); i >= 0 {
			rest = rest[:i]
		}
	}

	return strings.TrimSpace(rest)
}
