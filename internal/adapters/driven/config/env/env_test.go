package env

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFrom_Empty(t *testing.T) {
	o, err := ParseFrom(map[string]string{})

	require.NoError(t, err)
	assert.Equal(t, Overrides{}, o)
}

func TestParseFrom_AllSet(t *testing.T) {
	o, err := ParseFrom(map[string]string{
		"AGENDA_CONFIG_DIR":   "/etc/agenda",
		"AGENDA_DATA_DIR":     "/var/lib/agenda",
		"AGENDA_ACCOUNT_FILE": "/srv/account.toml",
		"AGENDA_TIMEZONE":     "Asia/Tokyo",
		"AGENDA_VERBOSE":      "true",
	})

	require.NoError(t, err)
	assert.Equal(t, Overrides{
		ConfigDir:   "/etc/agenda",
		DataDir:     "/var/lib/agenda",
		AccountFile: "/srv/account.toml",
		Timezone:    "Asia/Tokyo",
		Verbose:     true,
	}, o)
}

func TestParseFrom_InvalidBool(t *testing.T) {
	_, err := ParseFrom(map[string]string{"AGENDA_VERBOSE": "loud"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse env")
}

func TestParse_ReadsProcessEnvironment(t *testing.T) {
	t.Setenv("AGENDA_TIMEZONE", "UTC")
	t.Setenv("AGENDA_VERBOSE", "1")

	o, err := Parse()

	require.NoError(t, err)
	assert.Equal(t, "UTC", o.Timezone)
	assert.True(t, o.Verbose)
}
