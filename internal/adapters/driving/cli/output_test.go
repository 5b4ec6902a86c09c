package cli

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/agenda-cli/internal/core/domain"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		width int
		want  string
	}{
		{"fits", "hello", 10, "hello"},
		{"exact", "hello", 5, "hello"},
		{"cut", "hello world", 8, "hello..."},
		{"narrow", "hello", 2, "he"},
		{"zero", "hello", 0, ""},
		{"runes", "réunion équipe", 7, "réun..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, truncate(tt.input, tt.width))
		})
	}
}

func TestOutputWidth_NotTerminal(t *testing.T) {
	cmd := &cobra.Command{}
	cmd.SetOut(new(nopWriter))

	assert.Equal(t, defaultWidth, outputWidth(cmd))
}

func TestFormatItem(t *testing.T) {
	defer SetLocation(nil)

	cal := &domain.Calendar{ID: "A", Color: "blue"}
	event := &domain.Event{
		Title:      "Standup",
		Date:       time.Date(2026, 10, 18, 10, 0, 0, 0, time.UTC),
		Department: "Eng",
	}
	item := domain.AgendaItem{Calendar: cal, Event: event}

	SetLocation(time.UTC)
	assert.Equal(t, "  Sun 18 Oct 10:00  Standup  [A, Eng]", formatItem(item, 80))

	SetLocation(time.FixedZone("UTC+2", 2*60*60))
	assert.Equal(t, "  Sun 18 Oct 12:00  Standup  [A, Eng]", formatItem(item, 80))

	assert.Equal(t, "  Sun 18 Oct 12:...", formatItem(item, 19))
}

type nopWriter struct{}

func (*nopWriter) Write(p []byte) (int, error) { return len(p), nil }

func TestToJSONAgenda_EmptyCollections(t *testing.T) {
	tests := []struct {
		name string
		view *domain.AgendaView
		want string
	}{
		{
			name: "empty flat list keeps events",
			view: &domain.AgendaView{Mode: domain.ViewFlat, Selector: "nope"},
			want: `{"mode":"flat","selector":"nope","events":[]}`,
		},
		{
			name: "empty grouped view keeps departments",
			view: &domain.AgendaView{Mode: domain.ViewGrouped, Selector: domain.SelectAll},
			want: `{"mode":"grouped","selector":"all","departments":[]}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(toJSONAgenda(tt.view))
			require.NoError(t, err)
			assert.JSONEq(t, tt.want, string(data))
		})
	}
}
