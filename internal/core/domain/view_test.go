package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalendarSelector_IsAll(t *testing.T) {
	assert.True(t, SelectAll.IsAll())
	assert.True(t, CalendarSelector("").IsAll())
	assert.False(t, CalendarSelector("work").IsAll())
	assert.False(t, CalendarSelector("All").IsAll())
}

func TestViewMode_IsValid(t *testing.T) {
	tests := []struct {
		name     string
		mode     ViewMode
		expected bool
	}{
		{name: "flat is valid", mode: ViewFlat, expected: true},
		{name: "grouped is valid", mode: ViewGrouped, expected: true},
		{name: "empty is invalid", mode: ViewMode(""), expected: false},
		{name: "unknown is invalid", mode: ViewMode("calendar"), expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.mode.IsValid())
		})
	}
}

func TestViewMode_Toggle(t *testing.T) {
	assert.Equal(t, ViewGrouped, ViewFlat.Toggle())
	assert.Equal(t, ViewFlat, ViewGrouped.Toggle())
	assert.Equal(t, ViewGrouped, ViewMode("bogus").Toggle())
	assert.Equal(t, ViewFlat, ViewFlat.Toggle().Toggle())
}

func TestViewMode_Normalise(t *testing.T) {
	assert.Equal(t, ViewFlat, ViewFlat.Normalise())
	assert.Equal(t, ViewGrouped, ViewGrouped.Normalise())
	assert.Equal(t, ViewFlat, ViewMode("").Normalise())
}

func TestViewMode_Description(t *testing.T) {
	assert.Contains(t, ViewFlat.Description(), "Flat")
	assert.Contains(t, ViewGrouped.Description(), "department")
	assert.Equal(t, "Unknown", ViewMode("x").Description())
}

func TestParseViewMode(t *testing.T) {
	mode, err := ParseViewMode("grouped")
	require.NoError(t, err)
	assert.Equal(t, ViewGrouped, mode)

	_, err = ParseViewMode("list")
	assert.ErrorIs(t, err, ErrInvalidViewMode)
	assert.Contains(t, err.Error(), `"list"`)
}

func TestAllViewModes(t *testing.T) {
	modes := AllViewModes()
	assert.Len(t, modes, 2)
	for _, m := range modes {
		assert.True(t, m.IsValid())
	}
}

func TestDefaultViewState(t *testing.T) {
	state := DefaultViewState()
	assert.Equal(t, SelectAll, state.Selector)
	assert.Equal(t, ViewFlat, state.Mode)
}

func TestViewState_ToggledPreservesSelector(t *testing.T) {
	state := DefaultViewState().WithSelector("work")

	grouped := state.Toggled()
	assert.Equal(t, ViewGrouped, grouped.Mode)
	assert.Equal(t, CalendarSelector("work"), grouped.Selector)

	flat := grouped.Toggled()
	assert.Equal(t, ViewFlat, flat.Mode)
	assert.Equal(t, CalendarSelector("work"), flat.Selector)

	// Original is a value and is untouched.
	assert.Equal(t, ViewFlat, state.Mode)
}

func TestViewState_WithSelector(t *testing.T) {
	state := ViewState{Mode: ViewGrouped}

	assert.Equal(t, CalendarSelector("home"), state.WithSelector("home").Selector)
	assert.Equal(t, SelectAll, state.WithSelector("").Selector)
	assert.Equal(t, ViewGrouped, state.WithSelector("home").Mode)
}
