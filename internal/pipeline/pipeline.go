package pipeline

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"roster-enricher/internal/csvio"
	"roster-enricher/internal/diagnostic"
	"roster-enricher/internal/feature"
	"roster-enricher/internal/format"
	"roster-enricher/internal/roster"
	"roster-enricher/internal/settings"
)

// ErrAborted is wrapped by every error that stops a run. The log holds the
// entries explaining why.
var ErrAborted = errors.New("pipeline aborted")

var (
	featureColumns = []string{"Feature", "Reason"}
	fileColumns    = []string{"File", "Missing column"}
	rowColumns     = []string{"File", "Line", "Expected columns", "Actual columns"}
)

// Pipeline runs imports and features against one diagnostics log per run.
// It is not safe for concurrent use.
type Pipeline struct {
	settings *settings.Settings
	formats  *format.Registry
	reader   *csvio.Reader
	logger   *zap.Logger

	// newFeature builds each feature of a run.
	newFeature func(feature.ID, *settings.Settings, *format.Registry) (feature.Feature, error)

	log *diagnostic.Log
}

// New returns a pipeline. Nil settings means settings.Default(); a nil logger
// discards operational logs.
func New(cfg *settings.Settings, logger *zap.Logger) *Pipeline {
	if cfg == nil {
		cfg = settings.Default()
	}

	if logger == nil {
		logger = zap.NewNop()
	}

	return &Pipeline{
		settings: cfg,
		formats:  format.Default(),
		reader:   csvio.NewReader(logger),
		logger:   logger,

		newFeature: feature.New,

		log: diagnostic.NewLog(),
	}
}

// Log returns the diagnostics of the most recent run.
func (p *Pipeline) Log() *diagnostic.Log {
	return p.log
}

// CreateEnrichedRoster reads both exports and runs the features in ids.
// Activity consolidation runs even when ids omits it. On abort the roster is
// nil and the error wraps ErrAborted.
func (p *Pipeline) CreateEnrichedRoster(enrollmentPath, activityPath string, ids []feature.ID) (*roster.EnrichedRoster, error) {
	p.log = diagnostic.NewLog()

	enrollment, err := p.readTable(enrollmentPath)
	if err != nil {
		return nil, p.explain(err)
	}

	activities, err := p.readTable(activityPath)
	if err != nil {
		return nil, p.explain(err)
	}

	return p.run(enrollment, activities, ids)
}

// EnrichTables is CreateEnrichedRoster for tables that were already parsed.
func (p *Pipeline) EnrichTables(enrollment, activities *csvio.Table, ids []feature.ID) (*roster.EnrichedRoster, error) {
	p.log = diagnostic.NewLog()

	return p.run(enrollment, activities, ids)
}

func (p *Pipeline) run(enrollmentTable, activityTable *csvio.Table, ids []feature.ID) (*roster.EnrichedRoster, error) {
	ids = Order(ids)
	logger := p.logger.With(zap.String("run_id", uuid.NewString()))
	start := time.Now()

	logger.Info("pipeline started",
		zap.String("enrollment", enrollmentTable.Name),
		zap.String("activities", activityTable.Name),
		zap.Stringers("features", ids),
	)

	enrollment, activities, err := p.importRosters(enrollmentTable, activityTable)
	if err != nil {
		logger.Warn("import failed", zap.Error(err))
		return nil, p.explain(err)
	}

	enriched := roster.NewEnrichedRoster(enrollment)

	var aborted error

	for _, id := range ids {
		f, err := p.newFeature(id, p.settings, p.formats)
		if err != nil {
			p.log.AddError(diagnostic.KindUnexpectedFailure, err.Error(), featureColumns, []string{string(id), err.Error()})
			aborted = fmt.Errorf("%w: %w", ErrAborted, err)

			break
		}

		if aborted = p.runFeature(logger, f, enriched, activities); aborted != nil {
			break
		}
	}

	enriched.ReorderHeaders()

	if aborted != nil {
		logger.Warn("pipeline aborted", zap.Error(aborted), zap.Int("errors", p.log.ErrorCount()))
		return nil, p.explain(aborted)
	}

	logger.Info("pipeline finished",
		zap.Int("campers", enriched.Len()),
		zap.Strings("features", enriched.Features()),
		zap.Int("warnings", p.log.WarningCount()),
		zap.Duration("elapsed", time.Since(start)),
	)

	return enriched, nil
}

// explain appends the logged errors to err.
func (p *Pipeline) explain(err error) error {
	if logged := p.log.Err(); logged != nil {
		return fmt.Errorf("%w: %w", err, logged)
	}

	return err
}

// Order returns ids without repeats, with activity consolidation first when
// the caller did not place it.
func Order(ids []feature.ID) []feature.ID {
	var out []feature.ID

	for _, id := range ids {
		if !slices.Contains(out, id) {
			out = append(out, id)
		}
	}

	if !slices.Contains(out, feature.IDActivities) {
		out = append([]feature.ID{feature.IDActivities}, out...)
	}

	return out
}

// errPanic is wrapped when a feature panics.
var errPanic = errors.New("feature panicked")

// runFeature drives one feature through pre-validation, apply and
// post-validation. A non-nil result aborts the run. A panic in any stage
// becomes an UnexpectedFailure entry.
func (p *Pipeline) runFeature(logger *zap.Logger, f feature.Feature, r *roster.EnrichedRoster, activities *roster.ActivityRoster) (err error) {
	logger = logger.With(zap.Stringer("feature", f.ID()))

	defer func() {
		rec := recover()
		if rec == nil {
			return
		}

		cause := fmt.Errorf("%w: %v", errPanic, rec)
		p.log.AddError(diagnostic.KindUnexpectedFailure,
			fmt.Sprintf("%s failed: %v", f.Name(), cause),
			featureColumns,
			[]string{f.Name(), cause.Error()},
		)
		logger.Error("feature panicked", zap.Any("panic", rec))

		err = fmt.Errorf("%w: running %s: %w", ErrAborted, f.ID(), cause)
	}()

	if !f.PreValidate(r, p.log) {
		if feature.IsLoadBearing(f) {
			p.log.AddError(diagnostic.KindFeatureAborted,
				fmt.Sprintf("%s cannot run, so no roster can be built", f.Name()),
				featureColumns,
				[]string{f.Name(), "missing required columns"},
			)

			return fmt.Errorf("%w: %s failed pre-validation", ErrAborted, f.ID())
		}

		p.log.AddWarning(diagnostic.KindFeatureSkipped,
			fmt.Sprintf("%s was skipped because required columns are missing", f.Name()),
			featureColumns,
			[]string{f.Name(), "missing required columns"},
		)
		logger.Info("feature skipped")

		return nil
	}

	if err := apply(f, r, activities, p.log); err != nil {
		p.log.AddError(diagnostic.KindUnexpectedFailure,
			fmt.Sprintf("%s failed: %v", f.Name(), err),
			featureColumns,
			[]string{f.Name(), err.Error()},
		)

		return fmt.Errorf("%w: applying %s: %w", ErrAborted, f.ID(), err)
	}

	if !f.PostValidate(r, p.log) {
		p.log.AddError(diagnostic.KindFeatureAborted,
			fmt.Sprintf("%s produced invalid results", f.Name()),
			featureColumns,
			[]string{f.Name(), "post-validation failed"},
		)

		return fmt.Errorf("%w: %s failed post-validation", ErrAborted, f.ID())
	}

	logger.Debug("feature applied", zap.Int("campers", r.Len()))

	return nil
}

func apply(f feature.Feature, r *roster.EnrichedRoster, activities *roster.ActivityRoster, log *diagnostic.Log) error {
	if src, ok := f.(feature.ActivitySourced); ok {
		return src.ApplyActivities(r, activities, log)
	}

	return f.Apply(r, log)
}
