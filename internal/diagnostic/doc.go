// Package diagnostic collects the warnings and errors produced while importing
// and enriching a roster.
//
// Entries are bucketed by Kind in the order each kind was first logged.
// Warnings never stop processing; errors mean the pipeline aborted and no
// roster was produced.
package diagnostic
