// Package settings loads the run configuration: the toggles that change how
// features behave, the exempt activity list and the swim requirement tables.
//
// Settings are read from YAML. Anything a file leaves out falls back to the
// embedded defaults.yaml.
//
//	include_unmatched_activities: true
//	strict_swim_definitions: true
//	reject_unknown_swim_activities: false
//	warn_missing_medical: true
//	empty_placeholder: "N/A"
//	current_session: 0          # 0 infers the session from the roster
//	exempt_activities: [Swim Lessons]
//	swim_levels:
//	  Beginner: 1
//	swim_requirements:
//	  Sailing: 3
package settings
