package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateTransition(t *testing.T) {
	tests := []struct {
		name    string
		from    AppointmentStatus
		to      AppointmentStatus
		wantErr bool
	}{
		{name: "upcoming to cancelled", from: StatusUpcoming, to: StatusCancelled},
		{name: "upcoming to completed", from: StatusUpcoming, to: StatusCompleted},
		{name: "upcoming to upcoming", from: StatusUpcoming, to: StatusUpcoming, wantErr: true},
		{name: "cancelled is terminal", from: StatusCancelled, to: StatusUpcoming, wantErr: true},
		{name: "cancelled to completed", from: StatusCancelled, to: StatusCompleted, wantErr: true},
		{name: "completed is terminal", from: StatusCompleted, to: StatusUpcoming, wantErr: true},
		{name: "completed to cancelled", from: StatusCompleted, to: StatusCancelled, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			appt := Appointment{Status: tt.from}
			err := appt.ValidateTransition(tt.to)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestStartsAt(t *testing.T) {
	appt := Appointment{Date: "2024-06-10", StartTime: "14:00"}
	startsAt, err := appt.StartsAt()
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 6, 10, 14, 0, 0, 0, time.UTC), startsAt)

	appt = Appointment{Date: "2024-06-10", StartTime: "2pm"}
	_, err = appt.StartsAt()
	assert.Error(t, err)
}

func TestDayOfWeekString(t *testing.T) {
	assert.Equal(t, "sunday", Sunday.String())
	assert.Equal(t, "saturday", Saturday.String())
	assert.Equal(t, "unknown", DayOfWeek(9).String())
}
