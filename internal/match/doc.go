// Package match provides name normalization, Levenshtein distance and ranked
// suggestions for activity names that were not recognized.
//
// Key functions:
//   - NormalizeName: folds an activity name for comparison
//   - Levenshtein: computes edit distance between strings
//   - Suggest: ranks known names by similarity to an unknown one
package match
