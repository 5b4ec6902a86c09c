// Package driving defines the service interfaces the CLI, TUI and MCP
// adapters call into. They expose the agenda pipeline, the saved view
// state and the application settings.
//
// Implementations live in internal/core/services.
package driving
