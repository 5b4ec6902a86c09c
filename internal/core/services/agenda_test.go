package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/agenda-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/agenda-cli/internal/core/domain"
)

func at(hour int) time.Time {
	return time.Date(2026, 10, 18, hour, 0, 0, 0, time.UTC)
}

func testAccount() *domain.Account {
	return &domain.Account{
		Name: "Ada",
		Calendars: []domain.Calendar{
			{ID: "A", Color: "grey", Events: []domain.Event{
				{ID: "1", Date: at(10), Department: "Eng"},
				{ID: "2", Date: at(9)},
			}},
			{ID: "B", Color: "blue", Events: []domain.Event{
				{ID: "3", Date: at(8), Department: "Eng"},
			}},
		},
	}
}

// stubAccountSource returns a fixed account or error.
type stubAccountSource struct {
	account *domain.Account
	err     error
}

func (s *stubAccountSource) Load(_ context.Context) (*domain.Account, error) {
	return s.account, s.err
}

func eventIDs(items []domain.AgendaItem) []string {
	ids := make([]string, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.Event.ID)
	}
	return ids
}

func TestNewAgendaService(t *testing.T) {
	source := memory.NewAccountSource(testAccount())
	service := NewAgendaService(source)

	require.NotNil(t, service)
	assert.NotNil(t, service.accountSource)
	assert.Equal(t, time.Local, service.location)
}

func TestAgendaService_NilSource(t *testing.T) {
	service := NewAgendaService(nil)
	ctx := context.Background()

	_, err := service.Account(ctx)
	assert.ErrorIs(t, err, domain.ErrNotImplemented)

	_, err = service.Project(ctx, domain.DefaultViewState())
	assert.ErrorIs(t, err, domain.ErrNotImplemented)

	_, err = service.Options(ctx)
	assert.ErrorIs(t, err, domain.ErrNotImplemented)
}

func TestAgendaService_Account_SourceError(t *testing.T) {
	service := NewAgendaService(&stubAccountSource{err: domain.ErrNotFound})

	_, err := service.Account(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Contains(t, err.Error(), "loading account")
}

func TestAgendaService_Account_NilIsEmpty(t *testing.T) {
	service := NewAgendaService(&stubAccountSource{})

	account, err := service.Account(context.Background())

	require.NoError(t, err)
	require.NotNil(t, account)
	assert.Zero(t, account.EventCount())
}

func TestAgendaService_Project_Flat(t *testing.T) {
	service := NewAgendaService(memory.NewAccountSource(testAccount()))

	view, err := service.Project(context.Background(), domain.ViewState{Selector: "A", Mode: domain.ViewFlat})

	require.NoError(t, err)
	assert.Equal(t, domain.ViewFlat, view.Mode)
	assert.Equal(t, []string{"2", "1"}, eventIDs(view.Items))
}

func TestAgendaService_Project_All(t *testing.T) {
	service := NewAgendaService(memory.NewAccountSource(testAccount()))

	view, err := service.Project(context.Background(), domain.DefaultViewState())

	require.NoError(t, err)
	assert.Equal(t, []string{"3", "2", "1"}, eventIDs(view.Items))
}

func TestAgendaService_Project_Grouped(t *testing.T) {
	service := NewAgendaService(memory.NewAccountSource(testAccount()))

	view, err := service.Project(context.Background(), domain.ViewState{Selector: "A", Mode: domain.ViewGrouped})

	require.NoError(t, err)
	require.Len(t, view.Buckets, 2)
	assert.Equal(t, "Eng", view.Buckets[0].Department)
	assert.Equal(t, []string{"3", "1"}, eventIDs(view.Buckets[0].Items))
	assert.Equal(t, "Other", view.Buckets[1].Department)
	assert.Equal(t, domain.CalendarSelector("A"), view.Selector)
}

func TestAgendaService_Project_UnknownCalendar(t *testing.T) {
	service := NewAgendaService(memory.NewAccountSource(testAccount()))

	view, err := service.Project(context.Background(), domain.ViewState{Selector: "missing", Mode: domain.ViewFlat})

	require.NoError(t, err)
	assert.True(t, view.IsEmpty())
}

func TestAgendaService_Project_SourceError(t *testing.T) {
	service := NewAgendaService(&stubAccountSource{err: errors.New("disk on fire")})

	view, err := service.Project(context.Background(), domain.DefaultViewState())

	assert.Nil(t, view)
	assert.ErrorContains(t, err, "disk on fire")
}

func TestAgendaService_Options(t *testing.T) {
	service := NewAgendaService(memory.NewAccountSource(testAccount()))

	options, err := service.Options(context.Background())

	require.NoError(t, err)
	require.Len(t, options, 3)
	assert.Equal(t, "Calendar #1", options[0].Label)
	assert.Equal(t, "blue", options[1].Color)
	assert.Equal(t, domain.SelectAll, options[2].Value)
}

func TestAgendaService_Greeting(t *testing.T) {
	service := NewAgendaService(nil)
	service.SetLocation(time.UTC)

	service.SetClock(func() time.Time { return at(8) })
	assert.Equal(t, "Good morning", service.Greeting())

	service.SetClock(func() time.Time { return at(14) })
	assert.Equal(t, "Good afternoon", service.Greeting())

	service.SetClock(func() time.Time { return at(21) })
	assert.Equal(t, "Good evening", service.Greeting())
}

func TestAgendaService_Greeting_UsesLocation(t *testing.T) {
	service := NewAgendaService(nil)
	// 10:00 UTC is 22:00 in a UTC+12 zone.
	service.SetLocation(time.FixedZone("UTC+12", 12*60*60))
	service.SetClock(func() time.Time { return at(10) })

	assert.Equal(t, "Good evening", service.Greeting())
}

func TestAgendaService_SetLocationNil(t *testing.T) {
	service := NewAgendaService(nil)
	service.SetLocation(nil)

	assert.Equal(t, time.Local, service.location)
}

// stubWatcher hands out a fixed channel.
type stubWatcher struct {
	changes chan struct{}
	err     error
}

func (w *stubWatcher) Watch(_ context.Context) (<-chan struct{}, error) {
	return w.changes, w.err
}

func (w *stubWatcher) Close() error {
	return nil
}

func TestAgendaService_Changes(t *testing.T) {
	service := NewAgendaService(nil)

	_, err := service.Changes(context.Background())
	assert.ErrorIs(t, err, domain.ErrNotImplemented)

	watcher := &stubWatcher{changes: make(chan struct{}, 1)}
	service.SetWatcher(watcher)

	changes, err := service.Changes(context.Background())
	require.NoError(t, err)
	watcher.changes <- struct{}{}
	_, ok := <-changes
	assert.True(t, ok)
}

func TestAgendaService_Changes_WatchError(t *testing.T) {
	service := NewAgendaService(nil)
	service.SetWatcher(&stubWatcher{err: errors.New("inotify limit")})

	_, err := service.Changes(context.Background())

	assert.ErrorContains(t, err, "watching account")
}
