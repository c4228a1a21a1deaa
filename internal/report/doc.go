// Package report renders the warnings and errors of a run for the terminal.
package report
