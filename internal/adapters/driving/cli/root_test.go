package cli

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/agenda-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/agenda-cli/internal/core/domain"
	"github.com/custodia-labs/agenda-cli/internal/core/services"
	"github.com/custodia-labs/agenda-cli/internal/logger"
)

func TestRootCmd_Use(t *testing.T) {
	assert.Equal(t, "agenda", rootCmd.Use)
}

func TestRootCmd_PersistentFlags(t *testing.T) {
	flag := rootCmd.PersistentFlags().Lookup("verbose")
	require.NotNil(t, flag)
	assert.Equal(t, "v", flag.Shorthand)

	require.NotNil(t, rootCmd.PersistentFlags().Lookup("account"))
}

func TestRootCmd_RegistersCommands(t *testing.T) {
	names := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}

	for _, want := range []string{"list", "calendars", "view", "settings", "tui", "mcp", "version"} {
		assert.True(t, names[want], "missing command %s", want)
	}
}

func TestRootCmd_ServiceBuilder(t *testing.T) {
	defer resetState()

	var got GlobalOptions
	cleaned := false
	SetServiceBuilder(func(opts GlobalOptions) (*Services, error) {
		got = opts
		return &Services{
			Agenda:    services.NewAgendaService(memory.NewAccountSource(testAccount())),
			ViewState: services.NewViewStateService(memory.NewViewStateStore(), domain.DefaultViewState()),
			Settings:  services.NewSettingsService(memory.NewConfigStore()),
			Cleanup:   func() { cleaned = true },
		}, nil
	})

	out, err := execute("--account", "/tmp/acct.toml", "calendars")

	require.NoError(t, err)
	assert.Equal(t, "/tmp/acct.toml", got.AccountPath)
	assert.Contains(t, out, "Calendar #1")
	assert.True(t, cleaned)
}

func TestRootCmd_ServiceBuilderError(t *testing.T) {
	defer resetState()

	SetServiceBuilder(func(GlobalOptions) (*Services, error) {
		return nil, errors.New("no home directory")
	})

	_, err := execute("calendars")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no home directory")
}

func TestRootCmd_VersionSkipsServiceBuilder(t *testing.T) {
	defer resetState()

	called := false
	SetServiceBuilder(func(GlobalOptions) (*Services, error) {
		called = true
		return nil, errors.New("should not build")
	})

	_, err := execute("version")

	require.NoError(t, err)
	assert.False(t, called)
}

func TestRootCmd_VerboseFlag(t *testing.T) {
	defer resetState()
	defer logger.SetVerbose(false)

	_, err := execute("--verbose", "version")

	require.NoError(t, err)
	assert.True(t, logger.IsVerbose())
}

func TestSetVersion(t *testing.T) {
	original := version
	defer func() { version = original }()

	SetVersion("")
	assert.Equal(t, original, version)

	SetVersion("1.2.3")
	assert.Equal(t, "1.2.3", version)
}
