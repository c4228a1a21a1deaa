// Package feature implements the enrichment passes applied to an enriched
// roster.
//
// Every feature follows the same lifecycle, driven by the pipeline:
//  1. PreValidate: are the columns it reads present?
//  2. Apply: add its columns and compute values, logging per-camper anomalies
//  3. PostValidate: sanity-check the roster after mutation
//
// Activity consolidation is load-bearing: it reads the separate activity
// roster (see ActivitySourced) and every other feature depends on the round
// columns it adds.
package feature
