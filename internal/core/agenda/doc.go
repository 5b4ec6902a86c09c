// Package agenda implements the event aggregation and view-projection
// pipeline.
//
// Every function in this package is pure: it reads an explicit Account
// snapshot (and, where relevant, a ViewState) and returns freshly
// allocated output. Nothing is cached between calls, so callers may re-run
// the pipeline whenever its inputs change.
//
//	Account -> Aggregate -> SortByDate -> FilterByCalendar  (flat)
//	                                   -> GroupByDepartment (grouped)
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter or port package
package agenda
