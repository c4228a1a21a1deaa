package csvio

import (
	"strings"
)

// dropReason explains why a line was discarded before parsing.
type dropReason string

const (
	keepLine        dropReason = ""
	dropBlank       dropReason = "blank line"
	dropComment     dropReason = "comment line"
	dropUnbalanced  dropReason = "unbalanced quotes"
	dropNothingLeft dropReason = "no quoted content"
)

const (
	commentPrefix = "#"
	quote         = '"'
)

// cleanLine returns the line to parse, or the reason it was dropped.
func cleanLine(line string) (string, dropReason) {
	trimmed := strings.TrimSpace(line)

	switch {
	case trimmed == "":
		return "", dropBlank
	case strings.HasPrefix(trimmed, commentPrefix):
		return "", dropComment
	case strings.Count(trimmed, string(quote))%2 != 0:
		return "", dropUnbalanced
	case !strings.ContainsRune(trimmed, quote):
		return trimmed, keepLine
	}

	// Trim garbage one character at a time until the line starts and ends
	// with a quote.
	start, end := 0, len(trimmed)
	for start < end && trimmed[start] != quote {
		start++
	}

	for end > start && trimmed[end-1] != quote {
		end--
	}

	if end-start < 2 {
		return "", dropNothingLeft
	}

	return trimmed[start:end], keepLine
}
