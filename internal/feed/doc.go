// Package feed retrieves poll records from the upstream XML polling
// feeds.
//
// Two feed shapes are supported:
//   - unit shape: one document per unit, flat <n> entries with the poll
//     fields as attributes (known defect: unescaped ampersands, which
//     are sanitized before parsing)
//   - page shape: a single paginated feed across all units, nested
//     poll/question/subpopulation elements, walked until a terminal
//     empty page
//
// Transport failures are retried a fixed number of times with a fixed
// delay and then abort the run; a unit or page must never silently
// appear to have zero polls. Malformed documents and missing candidate
// values are fatal without retry.
package feed
