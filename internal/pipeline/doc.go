// Package pipeline builds an enriched roster from the enrollment and activity
// exports: it imports and validates both files, merges them, then runs the
// requested features in order, aborting or skipping as each one dictates.
package pipeline
