package icsfile_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voice-calendar-assistant/pkg/icsfile"
)

func newStore(t *testing.T) *icsfile.Store {
	t.Helper()
	s, err := icsfile.New(filepath.Join(t.TempDir(), "calendar.ics"))
	require.NoError(t, err)
	return s
}

func TestNew(t *testing.T) {
	_, err := icsfile.New("")
	assert.ErrorIs(t, err, icsfile.ErrEmptyPath)

	s, err := icsfile.New("/tmp/cal/../cal/calendar.ics")
	require.NoError(t, err)
	assert.Equal(t, "/tmp/cal/calendar.ics", s.Path())
	assert.Equal(t, "/tmp/cal", s.Dir())
}

func TestStore_ListEventsMissingFile(t *testing.T) {
	s := newStore(t)

	events, err := s.ListEvents(context.Background())
	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestStore_AddEvent(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()
	start := time.Date(2024, 8, 8, 10, 0, 0, 0, time.UTC)

	ev, err := s.AddEvent(ctx, icsfile.CreateEventRequest{
		Summary:     "가족 저녁",
		Description: "\n참석자: 가족",
		Location:    "강남역",
		StartTime:   start,
		EndTime:     start.Add(time.Hour),
	})
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(ev.UID, "@"+icsfile.UIDDomain))

	raw, err := os.ReadFile(s.Path())
	require.NoError(t, err)
	assert.Contains(t, string(raw), "BEGIN:VCALENDAR")
	assert.Contains(t, string(raw), "BEGIN:VEVENT")

	events, err := s.ListEvents(ctx)
	require.NoError(t, err)
	require.Len(t, events, 1)

	got := events[0]
	assert.Equal(t, ev.UID, got.UID)
	assert.Equal(t, "가족 저녁", got.Summary)
	assert.Equal(t, "강남역", got.Location)
	assert.Contains(t, got.Description, "참석자: 가족")
	assert.True(t, start.Equal(got.StartTime), "start %v", got.StartTime)
	assert.True(t, start.Add(time.Hour).Equal(got.EndTime), "end %v", got.EndTime)
}

func TestStore_AddEventAppends(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()
	start := time.Date(2024, 5, 2, 10, 0, 0, 0, time.UTC)

	for i := 0; i < 3; i++ {
		_, err := s.AddEvent(ctx, icsfile.CreateEventRequest{
			Summary:   "미팅",
			StartTime: start.AddDate(0, 0, i),
			EndTime:   start.AddDate(0, 0, i).Add(time.Hour),
		})
		require.NoError(t, err)
	}

	events, err := s.ListEvents(ctx)
	require.NoError(t, err)
	assert.Len(t, events, 3)

	seen := map[string]bool{}
	for _, ev := range events {
		assert.False(t, seen[ev.UID], "duplicate uid %s", ev.UID)
		seen[ev.UID] = true
	}
}

func TestStore_AddEventValidation(t *testing.T) {
	s := newStore(t)
	start := time.Date(2024, 5, 2, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		req     icsfile.CreateEventRequest
		wantErr error
	}{
		{
			name:    "empty summary",
			req:     icsfile.CreateEventRequest{StartTime: start, EndTime: start.Add(time.Hour)},
			wantErr: icsfile.ErrEmptySummary,
		},
		{
			name:    "end before start",
			req:     icsfile.CreateEventRequest{Summary: "x", StartTime: start, EndTime: start},
			wantErr: icsfile.ErrInvalidRange,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.AddEvent(context.Background(), tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	_, err := os.Stat(s.Path())
	assert.True(t, os.IsNotExist(err), "rejected events must not create the file")
}

func TestStore_CancelledContext(t *testing.T) {
	s := newStore(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	start := time.Now()
	_, err := s.AddEvent(ctx, icsfile.CreateEventRequest{Summary: "x", StartTime: start, EndTime: start.Add(time.Hour)})
	assert.ErrorIs(t, err, context.Canceled)

	_, err = s.ListEvents(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestStore_MissingDirectory(t *testing.T) {
	s, err := icsfile.New(filepath.Join(t.TempDir(), "missing", "calendar.ics"))
	require.NoError(t, err)

	start := time.Now()
	_, err = s.AddEvent(context.Background(), icsfile.CreateEventRequest{Summary: "x", StartTime: start, EndTime: start.Add(time.Hour)})
	assert.Error(t, err)
}

func TestStore_CorruptFile(t *testing.T) {
	s := newStore(t)
	require.NoError(t, os.WriteFile(s.Path(), []byte("not a calendar"), 0o644))

	_, err := s.ListEvents(context.Background())
	assert.Error(t, err)
}

func TestStore_ConcurrentWrites(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()
	start := time.Date(2024, 5, 2, 10, 0, 0, 0, time.UTC)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := s.AddEvent(ctx, icsfile.CreateEventRequest{
				Summary:   "동시 일정",
				StartTime: start.Add(time.Duration(i) * time.Hour),
				EndTime:   start.Add(time.Duration(i+1) * time.Hour),
			})
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	events, err := s.ListEvents(ctx)
	require.NoError(t, err)
	assert.Len(t, events, 10)
}
