// Package main provides the CLI entrypoint for roster-enricher.
//
// roster-enricher merges a camp's enrollment and activity exports into one
// roster and enriches it:
//   - Consolidates per-round activity rows into Round 1..3 columns
//   - Extracts each camper's program for the current session
//   - Scores assignments against ranked activity preferences
//   - Flags activities above a camper's swim level
//   - Checks that medical notes are present
package main

import (
	"errors"
	"fmt"
	"os"

	"roster-enricher/internal/pipeline"
)

func main() {
	if err := rootCmd(nil).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)

		if errors.Is(err, pipeline.ErrAborted) {
			os.Exit(2)
		}

		os.Exit(1)
	}
}
