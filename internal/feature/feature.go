package feature

import (
	"errors"
	"fmt"
	"strings"

	"roster-enricher/internal/diagnostic"
	"roster-enricher/internal/format"
	"roster-enricher/internal/roster"
	"roster-enricher/internal/settings"
)

// ID identifies a feature on the command line and in EnrichedRoster.
type ID string

const (
	IDActivities  ID = "activities"
	IDProgram     ID = "program"
	IDPreferences ID = "preferences"
	IDSwim        ID = "swim"
	IDMedical     ID = "medical"
)

func (id ID) String() string { return string(id) }

// DefaultOrder is the order features run in when the caller does not choose one.
var DefaultOrder = []ID{IDActivities, IDProgram, IDPreferences, IDSwim, IDMedical}

// ErrUnknownFeature is returned for an unrecognized feature id.
var ErrUnknownFeature = errors.New("unknown feature")

// ErrNeedsActivities is returned when the activity feature is applied without
// an activity roster.
var ErrNeedsActivities = errors.New("activity consolidation needs the activity roster")

// Feature is one enrichment pass.
type Feature interface {
	ID() ID
	Name() string
	// RequiredHeaders are the columns PreValidate checks for.
	RequiredHeaders() []roster.Header
	// AddedHeaders are the columns Apply registers.
	AddedHeaders() []roster.Header
	// RequiredFormats are the format rules Apply relies on.
	RequiredFormats() []string
	PreValidate(r *roster.EnrichedRoster, log *diagnostic.Log) bool
	Apply(r *roster.EnrichedRoster, log *diagnostic.Log) error
	PostValidate(r *roster.EnrichedRoster, log *diagnostic.Log) bool
}

// ActivitySourced is implemented by a feature whose input is the activity
// roster rather than the enriched roster alone.
type ActivitySourced interface {
	Feature
	ApplyActivities(r *roster.EnrichedRoster, activities *roster.ActivityRoster, log *diagnostic.Log) error
}

// LoadBearing is implemented by features whose failed pre-validation aborts
// the whole pipeline instead of skipping the feature.
type LoadBearing interface {
	LoadBearing() bool
}

// IsLoadBearing reports whether f aborts the pipeline when it cannot run.
func IsLoadBearing(f Feature) bool {
	lb, ok := f.(LoadBearing)
	return ok && lb.LoadBearing()
}

// New constructs the feature with the given id.
func New(id ID, cfg *settings.Settings, formats *format.Registry) (Feature, error) {
	if cfg == nil {
		cfg = settings.Default()
	}

	if formats == nil {
		formats = format.Default()
	}

	switch id {
	case IDActivities:
		return NewActivityFeature(cfg, formats), nil
	case IDProgram:
		return NewProgramFeature(cfg), nil
	case IDPreferences:
		return NewPreferenceFeature(cfg), nil
	case IDSwim:
		return NewSwimFeature(cfg), nil
	case IDMedical:
		return NewMedicalFeature(cfg), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFeature, id)
	}
}

// ParseIDs converts names to feature ids, accepting comma-separated values.
func ParseIDs(names []string) ([]ID, error) {
	var ids []ID

	for _, name := range names {
		for _, part := range strings.Split(name, ",") {
			part = strings.ToLower(strings.TrimSpace(part))
			if part == "" {
				continue
			}

			id := ID(part)
			if !isKnown(id) {
				return nil, fmt.Errorf("%w: %q (known: %s)", ErrUnknownFeature, part, knownList())
			}

			ids = append(ids, id)
		}
	}

	return ids, nil
}

func isKnown(id ID) bool {
	for _, k := range DefaultOrder {
		if k == id {
			return true
		}
	}

	return false
}

func knownList() string {
	names := make([]string, len(DefaultOrder))
	for i, id := range DefaultOrder {
		names[i] = string(id)
	}

	return strings.Join(names, ", ")
}

// base carries the declarative parts shared by every feature.
type base struct {
	id       ID
	name     string
	required []roster.Header
	added    []roster.Header
	formats  []string
}

func (b *base) ID() ID                           { return b.id }
func (b *base) Name() string                     { return b.name }
func (b *base) RequiredHeaders() []roster.Header { return append([]roster.Header(nil), b.required...) }
func (b *base) AddedHeaders() []roster.Header    { return append([]roster.Header(nil), b.added...) }
func (b *base) RequiredFormats() []string        { return append([]string(nil), b.formats...) }

var missingHeaderColumns = []string{"Feature", "Missing column"}

// PreValidate logs one MissingFeatureHeader warning per absent required
// header and reports whether none were absent.
func (b *base) PreValidate(r *roster.EnrichedRoster, log *diagnostic.Log) bool {
	missing := r.MissingHeaders(b.required)
	for _, h := range missing {
		log.AddWarning(diagnostic.KindMissingFeatureHeader,
			fmt.Sprintf("%s needs the %q column", b.name, h),
			missingHeaderColumns,
			[]string{b.name, string(h)},
		)
	}

	return len(missing) == 0
}

// addHeaders registers every added header.
func (b *base) addHeaders(r *roster.EnrichedRoster) {
	for _, h := range b.added {
		r.AddHeader(h)
	}
}

// hasAddedHeaders is the default post-validation: every added column exists.
func (b *base) hasAddedHeaders(r *roster.EnrichedRoster, log *diagnostic.Log) bool {
	ok := true

	for _, h := range r.MissingHeaders(b.added) {
		ok = false

		log.AddError(diagnostic.KindPostValidationFailed,
			fmt.Sprintf("%s did not add the %q column", b.name, h),
			missingHeaderColumns,
			[]string{b.name, string(h)},
		)
	}

	return ok
}
