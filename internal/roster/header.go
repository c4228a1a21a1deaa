package roster

// Header is a column name. Known headers carry metadata in the registry below;
// any other value is a custom column passed through from a source file.
type Header string

// Known headers, declared in canonical display order.
const (
	FirstName             Header = "First Name"
	LastName              Header = "Last Name"
	PreferredName         Header = "Preferred Name"
	Grade                 Header = "Grade"
	Cabin                 Header = "Cabin"
	RoundCount            Header = "Rounds"
	Round1                Header = "Round 1"
	Round2                Header = "Round 2"
	Round3                Header = "Round 3"
	Program               Header = "Program"
	EnrolledSessions      Header = "Enrolled Sessions"
	SwimLevel             Header = "Swim Level"
	SwimConflicts         Header = "Swim Conflicts"
	Preferences           Header = "Activity Preferences"
	PreferenceScore       Header = "Preference Score"
	PreferencePercentile  Header = "Preference Percentile"
	UnrequestedActivities Header = "Unrequested Activities"
	MedicalNotes          Header = "Medical Notes"
	Activity              Header = "Activity"
	Round                 Header = "Round"
)

// MaxRounds is the number of activity periods a camper can be scheduled into.
const MaxRounds = 3

// RoundSlots lists the per-round assignment columns in round order.
var RoundSlots = [MaxRounds]Header{Round1, Round2, Round3}

type headerInfo struct {
	visible    bool
	enrollment string // column name in the enrollment export, if any
	activity   string // column name in the activity export, if any
	sourceOnly bool   // exists only in source tables, never copied to the enriched roster
}

var knownHeaders = []Header{
	FirstName, LastName, PreferredName, Grade, Cabin,
	RoundCount, Round1, Round2, Round3,
	Program, EnrolledSessions, SwimLevel, SwimConflicts,
	Preferences, PreferenceScore, PreferencePercentile, UnrequestedActivities,
	MedicalNotes,
	Activity, Round,
}

var registry = map[Header]headerInfo{
	FirstName:             {visible: true, enrollment: "First Name", activity: "First Name"},
	LastName:              {visible: true, enrollment: "Last Name", activity: "Last Name"},
	PreferredName:         {visible: true, enrollment: "Preferred Name", activity: "Preferred Name"},
	Grade:                 {visible: true, enrollment: "Grade", activity: "Grade"},
	Cabin:                 {visible: true, activity: "Bunk"},
	RoundCount:            {visible: false},
	Round1:                {visible: true},
	Round2:                {visible: true},
	Round3:                {visible: true},
	Program:               {visible: true},
	EnrolledSessions:      {visible: false, enrollment: "Enrolled Sessions/Programs"},
	SwimLevel:             {visible: true, enrollment: "Swim Level"},
	SwimConflicts:         {visible: true},
	Preferences:           {visible: false, enrollment: "Activity Preferences"},
	PreferenceScore:       {visible: true},
	PreferencePercentile:  {visible: true},
	UnrequestedActivities: {visible: true},
	MedicalNotes:          {visible: false, enrollment: "Medical Notes"},
	Activity:              {visible: true, activity: "Activity Name", sourceOnly: true},
	Round:                 {visible: true, activity: "Round Number", sourceOnly: true},
}

var (
	canonicalRank  = make(map[Header]int, len(knownHeaders))
	fromEnrollment = make(map[string]Header)
	fromActivity   = make(map[string]Header)
)

func init() {
	for i, h := range knownHeaders {
		canonicalRank[h] = i

		info := registry[h]
		if info.enrollment != "" {
			fromEnrollment[info.enrollment] = h
		}

		if info.activity != "" {
			fromActivity[info.activity] = h
		}
	}
}

// KnownHeaders returns every known header in canonical display order.
func KnownHeaders() []Header {
	return append([]Header(nil), knownHeaders...)
}

// IsKnown reports whether h is in the known field registry.
func (h Header) IsKnown() bool {
	_, ok := registry[h]
	return ok
}

// DefaultVisible returns the declared visibility of a known header. Custom
// headers are visible.
func (h Header) DefaultVisible() bool {
	info, ok := registry[h]
	if !ok {
		return true
	}

	return info.visible
}

// SourceOnly reports whether h exists only in the source exports.
func (h Header) SourceOnly() bool {
	return registry[h].sourceOnly
}

// EnrollmentName returns the column name used by the enrollment export.
// Headers without a specific name use their canonical name.
func (h Header) EnrollmentName() string {
	if info := registry[h]; info.enrollment != "" {
		return info.enrollment
	}

	return string(h)
}

// ActivityName returns the column name used by the activity export.
func (h Header) ActivityName() string {
	if info := registry[h]; info.activity != "" {
		return info.activity
	}

	return string(h)
}

// FromEnrollmentColumn translates an enrollment export column to its header.
// Unrecognized columns become custom headers with the same name.
func FromEnrollmentColumn(column string) Header {
	if h, ok := fromEnrollment[column]; ok {
		return h
	}

	return Header(column)
}

// FromActivityColumn translates an activity export column to its header.
func FromActivityColumn(column string) Header {
	if h, ok := fromActivity[column]; ok {
		return h
	}

	return Header(column)
}

// Names converts headers to plain strings.
func Names(headers []Header) []string {
	out := make([]string, len(headers))
	for i, h := range headers {
		out[i] = string(h)
	}

	return out
}
