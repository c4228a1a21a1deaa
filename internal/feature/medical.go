package feature

import (
	"fmt"

	"roster-enricher/internal/diagnostic"
	"roster-enricher/internal/roster"
	"roster-enricher/internal/settings"
)

var medicalColumns = []string{"Camper", "Field"}

// MedicalFeature makes sure every camper carries a medical notes value.
type MedicalFeature struct {
	base

	warn bool
}

// NewMedicalFeature returns the medical notes feature.
func NewMedicalFeature(cfg *settings.Settings) *MedicalFeature {
	return &MedicalFeature{
		base: base{
			id:       IDMedical,
			name:     "Medical notes",
			required: []roster.Header{roster.MedicalNotes},
			added:    []roster.Header{roster.MedicalNotes},
		},
		warn: cfg.WarnMissingMedical,
	}
}

func (f *MedicalFeature) Apply(r *roster.EnrichedRoster, log *diagnostic.Log) error {
	for _, c := range r.Campers() {
		if !c.IsEmpty(roster.MedicalNotes) {
			continue
		}

		c.Set(roster.MedicalNotes, roster.EmptyPlaceholder)

		if f.warn {
			log.AddWarning(diagnostic.KindCamperMissingField,
				fmt.Sprintf("%s has no medical notes", c.DisplayName()),
				medicalColumns,
				[]string{c.DisplayName(), string(roster.MedicalNotes)},
			)
		}
	}

	r.EnableFeature(string(f.id))

	return nil
}

// PostValidate checks that no camper was left without a value.
func (f *MedicalFeature) PostValidate(r *roster.EnrichedRoster, log *diagnostic.Log) bool {
	ok := true

	for _, c := range r.Campers() {
		if c.Value(roster.MedicalNotes) != "" {
			continue
		}

		ok = false

		log.AddError(diagnostic.KindPostValidationFailed,
			fmt.Sprintf("%s still has no medical notes", c.DisplayName()),
			medicalColumns,
			[]string{c.DisplayName(), string(roster.MedicalNotes)},
		)
	}

	return ok
}
