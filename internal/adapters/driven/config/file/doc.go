// Package file stores application settings in a TOML file under the
// user's agenda directory (~/.agenda/config.toml by default).
//
// Settings use dot-notation keys in memory and nested tables on disk.
package file
