package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/agenda-cli/internal/core/domain"
)

func testAccount() *domain.Account {
	return &domain.Account{
		Name: "Ada",
		Calendars: []domain.Calendar{
			{ID: "work", Color: "blue", Events: []domain.Event{
				{ID: "1", Title: "Standup", Date: time.Date(2026, 10, 18, 9, 0, 0, 0, time.UTC)},
			}},
		},
	}
}

func TestAccountSource_LoadReturnsCopy(t *testing.T) {
	source := NewAccountSource(testAccount())
	ctx := context.Background()

	first, err := source.Load(ctx)
	require.NoError(t, err)
	first.Calendars[0].Events[0].Title = "changed"
	first.Calendars[0].Color = "red"

	second, err := source.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Standup", second.Calendars[0].Events[0].Title)
	assert.Equal(t, "blue", second.Calendars[0].Color)
}

func TestAccountSource_NilAccount(t *testing.T) {
	source := NewAccountSource(nil)

	account, err := source.Load(context.Background())

	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Nil(t, account)
}

func TestAccountSource_Replace(t *testing.T) {
	source := NewAccountSource(nil)
	source.Replace(testAccount())

	account, err := source.Load(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "Ada", account.Name)
	assert.Equal(t, 1, account.EventCount())
}
