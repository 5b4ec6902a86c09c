// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
// These must be provided for the application to function:
//
//   - AccountSource: Supplies the account snapshot (calendars and events)
//   - ConfigStore: Application configuration
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - ViewStateStore: Remembers the calendar selector and view mode between
//     sessions. Without it, state starts from the configured defaults.
//   - AccountWatcher: Notifies when the account snapshot changes. Without it,
//     the agenda is only refreshed on demand.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
