package diagnostic

//go:generate go tool stringer -type=Kind -trimprefix=Kind -output=kind_string.go

// Kind tags a diagnostic entry. Entries are bucketed by Kind.
type Kind int

const (
	_ Kind = iota // zero value is not a valid kind

	// KindBadDataFormat: a field value does not match its expected format.
	KindBadDataFormat
	// KindMissingHeaders: a source file lacks required columns.
	KindMissingHeaders
	// KindMalformedRow: a source row has the wrong number of cells.
	KindMalformedRow
	// KindMissingFeatureHeader: a column a feature depends on is absent.
	KindMissingFeatureHeader
	KindFeatureSkipped
	KindFeatureAborted
	KindPostValidationFailed
	// KindUnexpectedFailure wraps an error or panic raised while applying a feature.
	KindUnexpectedFailure
	// KindDuplicateActivity: two activity rows claim the same round for one camper.
	KindDuplicateActivity
	KindDuplicateCamper
	// KindUnmatchedActivityAdded: an activity row had no enrollment record and
	// a new camper was added for it.
	KindUnmatchedActivityAdded
	KindUnknownSwimLevel
	KindUnknownSwimActivity
	KindCamperMissingField
	KindProgramParsingFailure
)

// Title returns a short human-readable heading for a bucket of entries.
func (k Kind) Title() string {
	switch k {
	case KindBadDataFormat:
		return "Bad data format"
	case KindMissingHeaders:
		return "Missing required columns"
	case KindMalformedRow:
		return "Malformed rows"
	case KindMissingFeatureHeader:
		return "Missing feature columns"
	case KindFeatureSkipped:
		return "Skipped features"
	case KindFeatureAborted:
		return "Aborted features"
	case KindPostValidationFailed:
		return "Post-validation failures"
	case KindUnexpectedFailure:
		return "Unexpected failures"
	case KindDuplicateActivity:
		return "Duplicate activity assignments"
	case KindDuplicateCamper:
		return "Duplicate campers"
	case KindUnmatchedActivityAdded:
		return "Activity rows without enrollment"
	case KindUnknownSwimLevel:
		return "Unknown swim levels"
	case KindUnknownSwimActivity:
		return "Activities without swim requirements"
	case KindCamperMissingField:
		return "Campers missing fields"
	case KindProgramParsingFailure:
		return "Unparseable programs"
	default:
		return k.String()
	}
}
