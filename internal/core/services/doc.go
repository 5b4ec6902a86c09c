// Package services implements the driving port interfaces.
// Services load inputs through driven ports and hand explicit snapshots
// to the pure pipeline in internal/core/agenda.
package services
