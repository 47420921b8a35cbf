package icsfile

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	ical "github.com/arran4/golang-ical"
	"github.com/google/uuid"
)

// Store appends events to a single iCalendar file on disk.
// Writes are serialised; the file is replaced atomically on every save.
type Store struct {
	path string
	mu   sync.Mutex
}

// New creates a Store backed by the file at path. The file is created on first write.
func New(path string) (*Store, error) {
	if path == "" {
		return nil, ErrEmptyPath
	}
	return &Store{path: filepath.Clean(path)}, nil
}

// Path returns the calendar file path.
func (s *Store) Path() string {
	return s.path
}

// Dir returns the directory holding the calendar file.
func (s *Store) Dir() string {
	return filepath.Dir(s.path)
}

// AddEvent appends a VEVENT to the calendar file and returns it with its generated UID.
func (s *Store) AddEvent(ctx context.Context, req CreateEventRequest) (Event, error) {
	if err := ctx.Err(); err != nil {
		return Event{}, err
	}
	if req.Summary == "" {
		return Event{}, ErrEmptySummary
	}
	if !req.EndTime.After(req.StartTime) {
		return Event{}, ErrInvalidRange
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	cal, err := s.load()
	if err != nil {
		return Event{}, err
	}

	uid := fmt.Sprintf("%s@%s", uuid.NewString(), UIDDomain)
	now := time.Now().UTC()

	ve := cal.AddEvent(uid)
	ve.SetDtStampTime(now)
	ve.SetCreatedTime(now)
	ve.SetStartAt(req.StartTime.UTC())
	ve.SetEndAt(req.EndTime.UTC())
	ve.SetSummary(req.Summary)
	if req.Description != "" {
		ve.SetDescription(req.Description)
	}
	if req.Location != "" {
		ve.SetLocation(req.Location)
	}

	if err := s.write(cal); err != nil {
		return Event{}, err
	}

	return Event{
		UID:         uid,
		Summary:     req.Summary,
		Description: req.Description,
		Location:    req.Location,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
	}, nil
}

// ListEvents returns every VEVENT in the file. A missing file yields no events.
func (s *Store) ListEvents(ctx context.Context) ([]Event, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	cal, err := s.load()
	if err != nil {
		return nil, err
	}

	events := make([]Event, 0, len(cal.Events()))
	for _, ve := range cal.Events() {
		events = append(events, toEvent(ve))
	}
	return events, nil
}

func (s *Store) load() (*ical.Calendar, error) {
	body, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		cal := ical.NewCalendar()
		cal.SetProductId(ProductID)
		cal.SetMethod(ical.MethodPublish)
		return cal, nil
	}
	if err != nil {
		return nil, fmt.Errorf("icsfile: read %s: %w", s.path, err)
	}

	cal, err := ical.ParseCalendar(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("icsfile: parse %s: %w", s.path, err)
	}
	return cal, nil
}

func (s *Store) write(cal *ical.Calendar) error {
	tmp, err := os.CreateTemp(s.Dir(), ".calendar-*.ics")
	if err != nil {
		return fmt.Errorf("icsfile: create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.WriteString(cal.Serialize()); err != nil {
		tmp.Close()
		return fmt.Errorf("icsfile: write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("icsfile: close temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("icsfile: replace %s: %w", s.path, err)
	}
	return nil
}

func toEvent(ve *ical.VEvent) Event {
	ev := Event{UID: ve.Id()}
	if p := ve.GetProperty(ical.ComponentPropertySummary); p != nil {
		ev.Summary = p.Value
	}
	if p := ve.GetProperty(ical.ComponentPropertyDescription); p != nil {
		ev.Description = p.Value
	}
	if p := ve.GetProperty(ical.ComponentPropertyLocation); p != nil {
		ev.Location = p.Value
	}
	ev.StartTime, _ = ve.GetStartAt()
	ev.EndTime, _ = ve.GetEndAt()
	return ev
}
