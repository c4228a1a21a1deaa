package pipeline

import (
	"errors"
	"fmt"
	"strconv"

	"roster-enricher/internal/csvio"
	"roster-enricher/internal/diagnostic"
	"roster-enricher/internal/roster"
)

// readTable parses one export. Malformed rows and unreadable files become
// error entries.
func (p *Pipeline) readTable(path string) (*csvio.Table, error) {
	t, err := p.reader.ReadFile(path)
	if err == nil {
		return t, nil
	}

	var malformed *csvio.MalformedRowError
	if errors.As(err, &malformed) {
		p.log.AddError(diagnostic.KindMalformedRow,
			fmt.Sprintf("%s has a row with %d columns where %d were expected", malformed.File, malformed.Actual, malformed.Expected),
			rowColumns,
			[]string{malformed.File, strconv.Itoa(malformed.Line), strconv.Itoa(malformed.Expected), strconv.Itoa(malformed.Actual)},
		)
	} else {
		p.log.AddError(diagnostic.KindUnexpectedFailure,
			fmt.Sprintf("cannot read %s: %v", path, err),
			nil,
		)
	}

	return nil, fmt.Errorf("%w: %w", ErrAborted, err)
}

// importRosters translates both tables and validates them. Missing required
// headers abort; format problems are warnings.
func (p *Pipeline) importRosters(enrollmentTable, activityTable *csvio.Table) (*roster.EnrollmentRoster, *roster.ActivityRoster, error) {
	enrollment := roster.NewEnrollmentRoster(enrollmentTable.Name, enrollmentTable.Headers, enrollmentTable.Rows)
	enrollment.Formats = p.formats

	activities := roster.NewActivityRoster(activityTable.Name, activityTable.Headers, activityTable.Rows)
	activities.Formats = p.formats

	// Both files are checked so one run reports every missing column.
	errs := []error{
		p.validated(enrollment.Validate(p.log)),
		p.validated(activities.Validate(p.log)),
	}

	if err := errors.Join(errs...); err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrAborted, err)
	}

	return enrollment, activities, nil
}

// validated turns a MissingHeadersError into one error entry per column.
func (p *Pipeline) validated(err error) error {
	var missing *roster.MissingHeadersError
	if !errors.As(err, &missing) {
		return err
	}

	rows := make([][]string, len(missing.Missing))
	for i, name := range missing.Missing {
		rows[i] = []string{missing.Source, name}
	}

	p.log.AddError(diagnostic.KindMissingHeaders,
		fmt.Sprintf("%s is missing required columns", missing.Source),
		fileColumns,
		rows...,
	)

	return err
}
