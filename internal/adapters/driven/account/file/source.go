package file

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/pelletier/go-toml/v2"

	"github.com/custodia-labs/agenda-cli/internal/core/domain"
	"github.com/custodia-labs/agenda-cli/internal/core/ports/driven"
)

// Ensure Source implements the interface.
var _ driven.AccountSource = (*Source)(nil)

// DefaultFileName is the account file name inside the agenda directory.
const DefaultFileName = "account.toml"

// accountFile is the on-disk layout of the account snapshot.
type accountFile struct {
	Name      string         `toml:"name"`
	Calendars []calendarFile `toml:"calendars"`
}

type calendarFile struct {
	ID     string      `toml:"id"`
	Name   string      `toml:"name"`
	Color  string      `toml:"color"`
	Events []eventFile `toml:"events"`
}

type eventFile struct {
	ID         string    `toml:"id"`
	Title      string    `toml:"title"`
	Date       time.Time `toml:"date"`
	Department string    `toml:"department"`
	Location   string    `toml:"location"`
}

// Source reads the account snapshot from a TOML file on every Load.
type Source struct {
	path string
}

// NewSource creates a file account source.
// If path is empty, defaults to ~/.agenda/account.toml.
func NewSource(path string) (*Source, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		path = filepath.Join(home, ".agenda", DefaultFileName)
	}
	return &Source{path: path}, nil
}

// Path returns the account file path.
func (s *Source) Path() string {
	return s.path
}

// Load reads and decodes the account file.
// Returns domain.ErrNotFound if the file does not exist and a wrapped
// domain.ErrInvalidInput if it cannot be decoded.
func (s *Source) Load(ctx context.Context) (*domain.Account, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("account file %s: %w", s.path, domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("reading account file: %w", err)
	}

	return Decode(data)
}

// Decode parses an account snapshot from TOML.
// Calendar ids must be unique in the account and event ids unique within
// their calendar; a repeat is a wrapped domain.ErrInvalidInput.
func Decode(data []byte) (*domain.Account, error) {
	var raw accountFile
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: decoding account: %v", domain.ErrInvalidInput, err)
	}

	account := &domain.Account{
		Name:      raw.Name,
		Calendars: make([]domain.Calendar, 0, len(raw.Calendars)),
	}

	calendarIDs := make(map[string]struct{}, len(raw.Calendars))
	for ci, rc := range raw.Calendars {
		cal := domain.Calendar{
			ID:     rc.ID,
			Name:   rc.Name,
			Color:  rc.Color,
			Events: make([]domain.Event, 0, len(rc.Events)),
		}
		if cal.ID == "" {
			cal.ID = derivedID(fmt.Sprintf("calendars/%d", ci))
		}
		if cal.Color == "" {
			cal.Color = domain.DefaultColor
		}
		if _, dup := calendarIDs[cal.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate calendar id %q", domain.ErrInvalidInput, cal.ID)
		}
		calendarIDs[cal.ID] = struct{}{}

		eventIDs := make(map[string]struct{}, len(rc.Events))

		for ei, re := range rc.Events {
			ev := domain.Event{
				ID:         re.ID,
				Title:      re.Title,
				Date:       re.Date,
				Department: re.Department,
				Location:   re.Location,
			}
			if ev.ID == "" {
				ev.ID = derivedID(fmt.Sprintf("%s/%d", cal.ID, ei))
			}
			if _, dup := eventIDs[ev.ID]; dup {
				return nil, fmt.Errorf("%w: duplicate event id %q in calendar %q", domain.ErrInvalidInput, ev.ID, cal.ID)
			}
			eventIDs[ev.ID] = struct{}{}
			cal.Events = append(cal.Events, ev)
		}

		account.Calendars = append(account.Calendars, cal)
	}

	return account, nil
}

// derivedID returns a stable UUIDv5 for an entity position.
func derivedID(name string) string {
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte("agenda://"+name)).String()
}
