package main

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/agenda-cli/internal/adapters/driven/config/env"
	"github.com/custodia-labs/agenda-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/agenda-cli/internal/adapters/driving/cli"
	"github.com/custodia-labs/agenda-cli/internal/core/domain"
	"github.com/custodia-labs/agenda-cli/internal/core/services"
)

func TestResolveAccountPath(t *testing.T) {
	tests := []struct {
		name                      string
		flag, envPath, configured string
		want                      string
	}{
		{"flag wins", "/flag.toml", "/env.toml", "/cfg.toml", "/flag.toml"},
		{"env before settings", "", "/env.toml", "/cfg.toml", "/env.toml"},
		{"settings", "", "", "/cfg.toml", "/cfg.toml"},
		{"default", "", "", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, resolveAccountPath(tt.flag, tt.envPath, tt.configured))
		})
	}
}

func TestResolveLocation(t *testing.T) {
	settings := services.NewSettingsService(memory.NewConfigStore(map[string]any{
		services.KeyDisplayTimezone: "UTC",
	}))

	loc, err := resolveLocation("", settings)
	require.NoError(t, err)
	assert.Equal(t, "UTC", loc.String())

	loc, err = resolveLocation("Europe/Paris", settings)
	require.NoError(t, err)
	assert.Equal(t, "Europe/Paris", loc.String())

	_, err = resolveLocation("Mars/Olympus", settings)
	assert.Error(t, err)
}

func TestBuildServices(t *testing.T) {
	dir := t.TempDir()
	overrides := env.Overrides{
		ConfigDir:   filepath.Join(dir, "config"),
		DataDir:     filepath.Join(dir, "data"),
		AccountFile: filepath.Join(dir, "account.toml"),
		Timezone:    "UTC",
	}

	svc, err := buildServices(overrides, cli.GlobalOptions{})
	require.NoError(t, err)
	defer svc.Cleanup()

	assert.Equal(t, time.UTC, svc.Location)

	state, err := svc.ViewState.Current(t.Context())
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultViewState().Selector, state.Selector)

	// missing account file surfaces as not found
	_, err = svc.Agenda.Account(t.Context())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
