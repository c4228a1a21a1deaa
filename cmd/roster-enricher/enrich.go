package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"roster-enricher/internal/csvio"
	"roster-enricher/internal/feature"
	"roster-enricher/internal/filter"
	"roster-enricher/internal/pipeline"
	"roster-enricher/internal/report"
	"roster-enricher/internal/roster"
)

// errWarnings is returned by --fail-on-warnings.
var errWarnings = errors.New("warnings were reported")

type enrichOptions struct {
	enrollment     string
	activities     string
	features       []string
	out            string
	visibleOnly    bool
	usePlaceholder bool
	failOnWarnings bool
	quiet          bool
	reportRows     int

	// filters
	name             string
	grades           []string
	cabins           []string
	programs         []string
	incompleteRounds bool
	swimConflicts    bool
	maxScore         int
	maxPercentile    int
	unrequested      bool
	missingMedical   bool
}

func enrichCmd(global *globalOptions) *cobra.Command {
	opts := &enrichOptions{}

	cmd := &cobra.Command{
		Use:   "enrich",
		Short: "Build the enriched roster and export it as CSV",
		Long: `Builds the enriched roster from an enrollment export and an activity
export, prints the warning report to stderr and writes the (filtered) roster
as CSV to --out or stdout.

Example:
  roster-enricher enrich --enrollment enrollment.csv --activities activities.csv \
    --features program,preferences,swim --swim-conflicts --out conflicts.csv`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEnrich(cmd, global, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.enrollment, "enrollment", "e", "", "Enrollment export (CSV)")
	flags.StringVarP(&opts.activities, "activities", "a", "", "Activity export (CSV)")
	flags.StringSliceVarP(&opts.features, "features", "f", featureNames(feature.DefaultOrder),
		"Features to run, in order; activities always runs")
	flags.StringVarP(&opts.out, "out", "o", "", "Output file; stdout when empty")
	flags.BoolVar(&opts.visibleOnly, "visible-only", false, "Export only visible columns")
	flags.BoolVar(&opts.usePlaceholder, "use-placeholder", false, "Write the placeholder for empty values")
	flags.BoolVar(&opts.failOnWarnings, "fail-on-warnings", false, "Exit with an error and write nothing if any warning was reported")
	flags.BoolVarP(&opts.quiet, "quiet", "q", false, "Do not print the warning report")
	flags.IntVar(&opts.reportRows, "report-rows", report.DefaultMaxRows, "Context rows per report section; -1 shows all")

	flags.StringVar(&opts.name, "name", "", "Keep campers whose name contains this text")
	flags.StringSliceVar(&opts.grades, "grade", nil, "Keep campers in these grades")
	flags.StringSliceVar(&opts.cabins, "cabin", nil, "Keep campers in these cabins")
	flags.StringSliceVar(&opts.programs, "program", nil, "Keep campers in these programs")
	flags.BoolVar(&opts.incompleteRounds, "incomplete-rounds", false, "Keep campers with fewer than 3 activity rounds")
	flags.BoolVar(&opts.swimConflicts, "swim-conflicts", false, "Keep campers with swim conflicts")
	flags.IntVar(&opts.maxScore, "max-score", -1, "Keep campers with a preference score at most this value")
	flags.IntVar(&opts.maxPercentile, "max-percentile", -1, "Keep campers with a preference percentile at most this value")
	flags.BoolVar(&opts.unrequested, "unrequested", false, "Keep campers assigned to unrequested activities")
	flags.BoolVar(&opts.missingMedical, "missing-medical", false, "Keep campers without medical notes")

	_ = cmd.MarkFlagRequired("enrollment")
	_ = cmd.MarkFlagRequired("activities")

	return cmd
}

func featureNames(ids []feature.ID) []string {
	names := make([]string, len(ids))
	for i, id := range ids {
		names[i] = string(id)
	}

	return names
}

func runEnrich(cmd *cobra.Command, global *globalOptions, opts *enrichOptions) error {
	cfg, err := loadSettings(cmd, global)
	if err != nil {
		return err
	}

	ids, err := feature.ParseIDs(opts.features)
	if err != nil {
		return err
	}

	p := pipeline.New(cfg, global.logger)
	r, runErr := p.CreateEnrichedRoster(opts.enrollment, opts.activities, ids)

	if !opts.quiet && (p.Log().HasWarnings() || p.Log().HasErrors()) {
		if err := report.Render(cmd.ErrOrStderr(), p.Log(), report.Options{MaxRows: opts.reportRows}); err != nil {
			return fmt.Errorf("writing report: %w", err)
		}
	}

	if runErr != nil {
		return runErr
	}

	if opts.failOnWarnings && p.Log().HasWarnings() {
		return fmt.Errorf("%w: %s", errWarnings, report.Summary(p.Log()))
	}

	m := filter.NewManager()
	for _, f := range opts.filters() {
		if !m.Register(f, r) {
			global.logger.Warn("filter ignored because its feature did not run",
				zap.String("filter", f.ID()),
				zap.Stringer("feature", f.Feature()),
			)
		}
	}

	campers := m.Apply(r)

	global.logger.Info("exporting roster",
		zap.Int("campers", len(campers)),
		zap.Int("filtered_out", r.Len()-len(campers)),
		zap.String("out", opts.out),
	)

	exportOpts := csvio.ExportOptions{
		VisibleOnly:    opts.visibleOnly,
		UsePlaceholder: opts.usePlaceholder,
		Placeholder:    cfg.EmptyPlaceholder,
	}

	if opts.out == "" {
		return export(cmd.OutOrStdout(), r.Roster, campers, exportOpts)
	}

	return csvio.ExportFile(opts.out, r.Roster, campers, exportOpts)
}

func export(w io.Writer, r *roster.Roster, campers []*roster.Camper, opts csvio.ExportOptions) error {
	if err := csvio.Export(w, r, campers, opts); err != nil {
		return fmt.Errorf("writing roster: %w", err)
	}

	return nil
}

// filters returns the filters selected by flags.
func (o *enrichOptions) filters() []filter.Filter {
	var out []filter.Filter

	if strings.TrimSpace(o.name) != "" {
		out = append(out, filter.NameSearch{Query: o.name})
	}

	if len(o.grades) > 0 {
		out = append(out, filter.GradeFilter{Grades: o.grades})
	}

	if len(o.cabins) > 0 {
		out = append(out, filter.CabinFilter{Cabins: o.cabins})
	}

	if len(o.programs) > 0 {
		out = append(out, filter.ProgramFilter{Programs: o.programs})
	}

	if o.incompleteRounds {
		out = append(out, filter.IncompleteRounds{})
	}

	if o.swimConflicts {
		out = append(out, filter.SwimConflictFilter{})
	}

	if o.maxScore >= 0 {
		out = append(out, filter.ScoreThreshold{Max: o.maxScore})
	}

	if o.maxPercentile >= 0 {
		out = append(out, filter.PercentileThreshold{Max: o.maxPercentile})
	}

	if o.unrequested {
		out = append(out, filter.HasUnrequested{})
	}

	if o.missingMedical {
		out = append(out, filter.MissingMedical{})
	}

	return out
}
