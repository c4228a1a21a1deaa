// Package csvio reads the registration exports into header→value rows and
// writes filtered rosters back out as delimited text.
//
// Reading cleans each physical line before parsing: blank lines, "#" comments
// and lines with unbalanced quotes are dropped with a log notice, and stray
// characters outside the outermost quotes are trimmed. A row whose cell count
// differs from the header count is a hard error.
package csvio
