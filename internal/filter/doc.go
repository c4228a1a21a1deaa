// Package filter selects campers from an enriched roster for display and
// export. Filters are gated on the feature that produces the columns they
// read, so a filter is only registered when its data exists.
package filter
