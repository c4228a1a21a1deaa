// Package roster holds the camper records and the tables built from the two
// registration exports.
//
// A Roster is an ordered list of campers plus a header registry. Three
// specializations share it:
//   - EnrollmentRoster: one row per camper, built from the enrollment export
//   - ActivityRoster: one row per camper per round, built from the activity export
//   - EnrichedRoster: the merged table the features mutate
//
// Campers from both exports are linked through CamperKey, derived from first
// name, last name and grade.
//
// None of the types in this package are safe for concurrent use.
package roster
