// Package file loads the account snapshot from a TOML file and watches it
// for changes.
//
// The file lists calendars in order, each owning its events:
//
//	name = "Ada"
//
//	[[calendars]]
//	id = "work"
//	color = "#7C3AED"
//
//	  [[calendars.events]]
//	  title = "Standup"
//	  date = 2026-10-18T10:00:00Z
//	  department = "Eng"
//
// Calendars and events without an id are given a deterministic UUID derived
// from their position, so reloading an unchanged file yields the same ids.
package file
