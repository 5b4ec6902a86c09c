// Package env reads process environment overrides for the agenda CLI.
package env

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Overrides holds settings taken from the environment. Empty fields mean
// "not set" and leave the file configuration in charge.
type Overrides struct {
	ConfigDir   string `env:"AGENDA_CONFIG_DIR"`
	DataDir     string `env:"AGENDA_DATA_DIR"`
	AccountFile string `env:"AGENDA_ACCOUNT_FILE"`
	Timezone    string `env:"AGENDA_TIMEZONE"`
	Verbose     bool   `env:"AGENDA_VERBOSE"`
}

// Parse loads overrides from the process environment.
func Parse() (Overrides, error) {
	var o Overrides
	if err := env.Parse(&o); err != nil {
		return Overrides{}, fmt.Errorf("parse env: %w", err)
	}
	return o, nil
}

// ParseFrom loads overrides from an explicit variable map.
func ParseFrom(vars map[string]string) (Overrides, error) {
	var o Overrides
	if err := env.ParseWithOptions(&o, env.Options{Environment: vars}); err != nil {
		return Overrides{}, fmt.Errorf("parse env: %w", err)
	}
	return o, nil
}
