package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/sazid-zero/ConsultBook-sub001/models"
)

func TestValidateBookingRequest(t *testing.T) {
	tests := []struct {
		name         string
		clientID     uint
		consultantID uint
		date         string
		startTime    string
		duration     int
		wantErr      bool
		wantKind     ErrorKind
	}{
		{name: "valid", clientID: 1, consultantID: 2, date: "2026-09-01", startTime: "14:00", duration: 60},
		{name: "self booking rejected", clientID: 7, consultantID: 7, date: "2026-09-01", startTime: "14:00", duration: 60, wantErr: true, wantKind: KindValidation},
		{name: "malformed date", clientID: 1, consultantID: 2, date: "01-09-2026", startTime: "14:00", duration: 60, wantErr: true, wantKind: KindValidation},
		{name: "malformed time", clientID: 1, consultantID: 2, date: "2026-09-01", startTime: "2pm", duration: 60, wantErr: true, wantKind: KindValidation},
		{name: "zero duration", clientID: 1, consultantID: 2, date: "2026-09-01", startTime: "14:00", duration: 0, wantErr: true, wantKind: KindValidation},
		{name: "negative duration", clientID: 1, consultantID: 2, date: "2026-09-01", startTime: "14:00", duration: -30, wantErr: true, wantKind: KindValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateBookingRequest(tt.clientID, tt.consultantID, tt.date, tt.startTime, tt.duration)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			assert.Error(t, err)
			assert.Equal(t, tt.wantKind, KindOf(err))
		})
	}
}

func TestValidateWorkshopRegistration(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	capacity := func(n int) *int { return &n }

	base := func() *models.Workshop {
		return &models.Workshop{
			ConsultantID: 2,
			StartsAt:     now.Add(48 * time.Hour),
			Capacity:     capacity(10),
			IsPublished:  true,
		}
	}

	tests := []struct {
		name       string
		mutate     func(w *models.Workshop)
		clientID   uint
		registered int64
		wantErr    bool
		wantKind   ErrorKind
	}{
		{name: "open seat", mutate: func(w *models.Workshop) {}, clientID: 1, registered: 9},
		{name: "last seat taken", mutate: func(w *models.Workshop) {}, clientID: 1, registered: 10, wantErr: true, wantKind: KindConflict},
		{name: "over capacity", mutate: func(w *models.Workshop) {}, clientID: 1, registered: 11, wantErr: true, wantKind: KindConflict},
		{name: "unlimited capacity", mutate: func(w *models.Workshop) { w.Capacity = nil }, clientID: 1, registered: 5000},
		{name: "unpublished hidden", mutate: func(w *models.Workshop) { w.IsPublished = false }, clientID: 1, wantErr: true, wantKind: KindNotFound},
		{name: "already started", mutate: func(w *models.Workshop) { w.StartsAt = now.Add(-time.Hour) }, clientID: 1, wantErr: true, wantKind: KindValidation},
		{name: "starting this instant", mutate: func(w *models.Workshop) { w.StartsAt = now }, clientID: 1, wantErr: true, wantKind: KindValidation},
		{name: "own workshop", mutate: func(w *models.Workshop) {}, clientID: 2, wantErr: true, wantKind: KindValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := base()
			tt.mutate(w)
			err := ValidateWorkshopRegistration(w, tt.clientID, tt.registered, now)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			assert.Error(t, err)
			assert.Equal(t, tt.wantKind, KindOf(err))
		})
	}
}
