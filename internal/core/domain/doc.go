// Package domain defines the core business entities for the agenda.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Account: An immutable snapshot of a user's calendars
//   - Calendar: A named, coloured source of events
//   - Event: A scheduled item with an optional department
//   - AgendaItem: A borrowed (calendar, event) pairing
//   - DepartmentBucket: A named group of agenda items
//   - ViewState: The user's calendar selector and view mode
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
