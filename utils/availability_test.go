package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sazid-zero/ConsultBook-sub001/models"
)

func TestBlockedLabels(t *testing.T) {
	tests := []struct {
		name       string
		startTime  string
		duration   int
		wantLabels []string
		wantErr    bool
	}{
		{
			name:       "30 min blocks one slot",
			startTime:  "09:00",
			duration:   30,
			wantLabels: []string{"09:00"},
		},
		{
			name:       "60 min blocks two slots",
			startTime:  "14:00",
			duration:   60,
			wantLabels: []string{"14:00", "14:30"},
		},
		{
			name:       "45 min rounds up to two slots",
			startTime:  "10:30",
			duration:   45,
			wantLabels: []string{"10:30", "11:00"},
		},
		{
			name:       "zero duration still blocks its own slot",
			startTime:  "08:00",
			duration:   0,
			wantLabels: []string{"08:00"},
		},
		{
			name:      "malformed start time",
			startTime: "9am",
			duration:  30,
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			labels, err := BlockedLabels(models.Appointment{
				StartTime:       tt.startTime,
				DurationMinutes: tt.duration,
			})
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantLabels, labels)
		})
	}
}

func TestOpenSlots(t *testing.T) {
	// 2024-06-10 is a Monday.
	monday := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)

	schedules := []models.WeeklySchedule{
		{
			ConsultantID: 1,
			DayOfWeek:    models.Monday,
			IsEnabled:    true,
			Slots:        models.StringList{"09:00", "09:30", "14:00", "14:30"},
		},
		{
			ConsultantID: 1,
			DayOfWeek:    models.Tuesday,
			IsEnabled:    false,
			Slots:        models.StringList{"09:00"},
		},
		{
			ConsultantID: 1,
			DayOfWeek:    models.Wednesday,
			IsEnabled:    true,
			Slots:        models.StringList{},
		},
	}

	t.Run("booked appointment removes covered slots", func(t *testing.T) {
		booked := []models.Appointment{
			{ConsultantID: 1, Date: "2024-06-10", StartTime: "14:00", DurationMinutes: 60, Status: models.StatusUpcoming},
		}
		open, err := OpenSlots(schedules, booked, monday, 1)
		require.NoError(t, err)
		require.Len(t, open, 1)
		assert.Equal(t, "2024-06-10", open[0].Date)
		assert.Equal(t, "monday", open[0].Weekday)
		assert.Equal(t, []string{"09:00", "09:30"}, open[0].Slots)
	})

	t.Run("disabled weekday is omitted, enabled empty weekday is present", func(t *testing.T) {
		open, err := OpenSlots(schedules, nil, monday, 3)
		require.NoError(t, err)
		// Monday and Wednesday; Tuesday is disabled.
		require.Len(t, open, 2)
		assert.Equal(t, "monday", open[0].Weekday)
		assert.Equal(t, "wednesday", open[1].Weekday)
		assert.Empty(t, open[1].Slots)
	})

	t.Run("booking on a different date does not block the template", func(t *testing.T) {
		booked := []models.Appointment{
			{ConsultantID: 1, Date: "2024-06-17", StartTime: "09:00", DurationMinutes: 30},
		}
		open, err := OpenSlots(schedules, booked, monday, 1)
		require.NoError(t, err)
		require.Len(t, open, 1)
		assert.Equal(t, []string{"09:00", "09:30", "14:00", "14:30"}, open[0].Slots)
	})

	t.Run("past labels dropped on the first day only", func(t *testing.T) {
		// Mid-afternoon: the morning slots are gone, "14:00" itself stays.
		midMonday := time.Date(2024, 6, 10, 14, 0, 0, 0, time.UTC)
		open, err := OpenSlots(schedules, nil, midMonday, 8)
		require.NoError(t, err)
		require.Len(t, open, 3)
		assert.Equal(t, "2024-06-10", open[0].Date)
		assert.Equal(t, []string{"14:00", "14:30"}, open[0].Slots)
		// The following Monday offers the full template again.
		assert.Equal(t, "2024-06-17", open[2].Date)
		assert.Equal(t, []string{"09:00", "09:30", "14:00", "14:30"}, open[2].Slots)
	})

	t.Run("zero template rows yields empty result", func(t *testing.T) {
		open, err := OpenSlots(nil, nil, monday, 7)
		require.NoError(t, err)
		assert.Empty(t, open)
	})

	t.Run("malformed booked time surfaces an error", func(t *testing.T) {
		booked := []models.Appointment{
			{ConsultantID: 1, Date: "2024-06-10", StartTime: "bad", DurationMinutes: 30},
		}
		_, err := OpenSlots(schedules, booked, monday, 1)
		assert.Error(t, err)
	})
}

func TestParseSlot(t *testing.T) {
	ts, err := ParseSlot("2024-06-10", "14:00")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 6, 10, 14, 0, 0, 0, time.UTC), ts)

	_, err = ParseSlot("06/10/2024", "14:00")
	assert.Error(t, err)
}
