package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gorm.io/gorm"

	"github.com/sazid-zero/ConsultBook-sub001/models"
)

func appt(id uint, date, startTime string, status models.AppointmentStatus) models.Appointment {
	return models.Appointment{
		Model:           gorm.Model{ID: id},
		ClientID:        1,
		ConsultantID:    2,
		Date:            date,
		StartTime:       startTime,
		DurationMinutes: 60,
		Mode:            models.ModeVideo,
		Status:          status,
		Consultant:      models.User{Name: "Kara"},
		Client:          models.User{Name: "Chris"},
	}
}

func workshop(id uint, startsAt time.Time) models.Workshop {
	return models.Workshop{
		Model:        gorm.Model{ID: id},
		ConsultantID: 2,
		Title:        "Group workshop",
		StartsAt:     startsAt,
	}
}

func TestBuildTimeline_OrderAndFiltering(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	appointments := []models.Appointment{
		appt(1, "2024-06-11", "09:30", models.StatusUpcoming),
		appt(2, "2024-06-10", "14:00", models.StatusUpcoming),
		appt(3, "2024-06-05", "10:00", models.StatusCancelled),
		appt(4, "2024-06-06", "10:00", models.StatusCompleted),
	}
	workshops := []models.Workshop{
		workshop(7, time.Date(2024, 6, 10, 16, 0, 0, 0, time.UTC)),
		workshop(8, time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)), // past, excluded
	}

	timeline, err := BuildTimeline(1, appointments, workshops, now)
	require.NoError(t, err)

	// Cancelled, completed, and past entries are gone; the rest ascend.
	require.Len(t, timeline, 3)
	assert.Equal(t, uint(2), timeline[0].AppointmentID)
	assert.Equal(t, EntryAppointment, timeline[0].Kind)
	assert.Equal(t, uint(7), timeline[1].WorkshopID)
	assert.Equal(t, EntryWorkshop, timeline[1].Kind)
	assert.Equal(t, uint(1), timeline[2].AppointmentID)

	assert.True(t, timeline[0].StartsAt.Before(timeline[1].StartsAt))
	assert.True(t, timeline[1].StartsAt.Before(timeline[2].StartsAt))
}

func TestBuildTimeline_TieBreakAppointmentsFirst(t *testing.T) {
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	appointments := []models.Appointment{
		appt(1, "2024-06-10", "14:00", models.StatusUpcoming),
	}
	workshops := []models.Workshop{
		workshop(9, time.Date(2024, 6, 10, 14, 0, 0, 0, time.UTC)),
	}

	timeline, err := BuildTimeline(1, appointments, workshops, now)
	require.NoError(t, err)
	require.Len(t, timeline, 2)
	assert.Equal(t, EntryAppointment, timeline[0].Kind)
	assert.Equal(t, EntryWorkshop, timeline[1].Kind)
	assert.True(t, timeline[0].StartsAt.Equal(timeline[1].StartsAt))
}

func TestBuildTimeline_DeduplicatesByAppointmentID(t *testing.T) {
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	first := appt(1, "2024-06-10", "14:00", models.StatusUpcoming)
	duplicate := appt(1, "2024-06-10", "14:00", models.StatusUpcoming)
	duplicate.Consultant.Name = "" // partially joined copy

	timeline, err := BuildTimeline(1, []models.Appointment{first, duplicate}, nil, now)
	require.NoError(t, err)
	require.Len(t, timeline, 1)
	// First-seen instance wins, keeping its joined display fields.
	assert.Equal(t, "Session with Kara", timeline[0].Title)
}

func TestBuildTimeline_CounterpartTitle(t *testing.T) {
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	a := appt(1, "2024-06-10", "14:00", models.StatusUpcoming)

	asClient, err := BuildTimeline(1, []models.Appointment{a}, nil, now)
	require.NoError(t, err)
	assert.Equal(t, "Session with Kara", asClient[0].Title)

	asConsultant, err := BuildTimeline(2, []models.Appointment{a}, nil, now)
	require.NoError(t, err)
	assert.Equal(t, "Session with Chris", asConsultant[0].Title)
}

func TestBuildTimeline_MalformedAppointmentFails(t *testing.T) {
	a := appt(1, "not-a-date", "14:00", models.StatusUpcoming)
	_, err := BuildTimeline(1, []models.Appointment{a}, nil, time.Now())
	assert.Error(t, err)
}
