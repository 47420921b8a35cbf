package calendar_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voice-calendar-assistant/internal/calendar"
)

type fakeStore struct {
	status     calendar.AccessStatus
	grant      bool
	requestErr error
	saveErr    error

	requested int
	saved     []calendar.Event
}

func (f *fakeStore) AccessStatus(ctx context.Context) calendar.AccessStatus { return f.status }

func (f *fakeStore) RequestAccess(ctx context.Context) (bool, error) {
	f.requested++
	return f.grant, f.requestErr
}

func (f *fakeStore) Save(ctx context.Context, event calendar.Event) (calendar.SavedEvent, error) {
	if f.saveErr != nil {
		return calendar.SavedEvent{}, f.saveErr
	}
	f.saved = append(f.saved, event)
	return calendar.SavedEvent{ID: "evt-1", Event: event}, nil
}

func TestRequestAccess(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name          string
		store         *fakeStore
		want          bool
		wantRequested int
	}{
		{"Granted", &fakeStore{status: calendar.AccessGranted}, true, 0},
		{"Denied", &fakeStore{status: calendar.AccessDenied, grant: true}, false, 0},
		{"Prompt granted", &fakeStore{status: calendar.AccessNotDetermined, grant: true}, true, 1},
		{"Prompt refused", &fakeStore{status: calendar.AccessNotDetermined}, false, 1},
		{"Prompt error", &fakeStore{status: calendar.AccessNotDetermined, grant: true, requestErr: errors.New("boom")}, false, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, calendar.RequestAccess(ctx, tt.store))
			assert.Equal(t, tt.wantRequested, tt.store.requested)
		})
	}
}

func TestBuildNotes(t *testing.T) {
	assert.Equal(t, "", calendar.BuildNotes("", nil))
	assert.Equal(t, "memo", calendar.BuildNotes("memo", []string{}))
	assert.Equal(t, "\n참석자: 가족", calendar.BuildNotes("", []string{"가족"}))
	assert.Equal(t, "memo\n참석자: 가족, 친구, 동료", calendar.BuildNotes("memo", []string{"가족", "친구", "동료"}))
	assert.Equal(t, "\n참석자: 친구, 친구", calendar.BuildNotes("", []string{"친구", "친구"}))
}

func TestAddEvent(t *testing.T) {
	ctx := context.Background()
	start := time.Date(2024, 8, 8, 10, 0, 0, 0, time.UTC)

	t.Run("Success", func(t *testing.T) {
		store := &fakeStore{status: calendar.AccessGranted}
		saved, err := calendar.AddEvent(ctx, store, calendar.Draft{
			Title:     "과 만나는 을",
			Attendees: []string{"가족"},
			Location:  "부산",
			Start:     &start,
			Duration:  2 * time.Hour,
		})
		require.NoError(t, err)
		assert.Equal(t, "evt-1", saved.ID)

		require.Len(t, store.saved, 1)
		ev := store.saved[0]
		assert.Equal(t, "과 만나는 을", ev.Title)
		assert.Equal(t, "\n참석자: 가족", ev.Notes)
		assert.Equal(t, "부산", ev.Location)
		assert.True(t, ev.Start.Equal(start))
		assert.True(t, ev.End.Equal(start.Add(2*time.Hour)))
	})

	t.Run("Zero duration defaults to one hour", func(t *testing.T) {
		store := &fakeStore{status: calendar.AccessGranted}
		_, err := calendar.AddEvent(ctx, store, calendar.Draft{Title: "x", Start: &start})
		require.NoError(t, err)
		assert.True(t, store.saved[0].End.Equal(start.Add(time.Hour)))
	})

	t.Run("Access denied wins over missing date", func(t *testing.T) {
		store := &fakeStore{status: calendar.AccessDenied}
		_, err := calendar.AddEvent(ctx, store, calendar.Draft{Title: "x"})
		assert.ErrorIs(t, err, calendar.ErrAccessDenied)
		assert.Empty(t, store.saved)
	})

	t.Run("Access denied with valid date", func(t *testing.T) {
		store := &fakeStore{status: calendar.AccessNotDetermined, grant: false}
		_, err := calendar.AddEvent(ctx, store, calendar.Draft{Title: "x", Start: &start})
		assert.ErrorIs(t, err, calendar.ErrAccessDenied)
	})

	t.Run("Missing date", func(t *testing.T) {
		store := &fakeStore{status: calendar.AccessGranted}
		_, err := calendar.AddEvent(ctx, store, calendar.Draft{Title: "x"})
		assert.ErrorIs(t, err, calendar.ErrInvalidDate)
		assert.Empty(t, store.saved)
	})

	t.Run("Save failure keeps reason verbatim", func(t *testing.T) {
		store := &fakeStore{status: calendar.AccessGranted, saveErr: errors.New("disk full")}
		_, err := calendar.AddEvent(ctx, store, calendar.Draft{Title: "x", Start: &start})
		require.Error(t, err)
		assert.ErrorIs(t, err, calendar.ErrSaveFailed)

		var sf *calendar.SaveFailedError
		require.ErrorAs(t, err, &sf)
		assert.Equal(t, "disk full", sf.Reason)
		assert.Equal(t, "일정 저장에 실패했습니다: disk full", err.Error())
	})
}

func TestAccessStatusString(t *testing.T) {
	assert.Equal(t, "granted", calendar.AccessGranted.String())
	assert.Equal(t, "denied", calendar.AccessDenied.String())
	assert.Equal(t, "not_determined", calendar.AccessNotDetermined.String())
}
