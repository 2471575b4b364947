package utils

import (
	"fmt"
	"sort"
	"time"

	"github.com/sazid-zero/ConsultBook-sub001/models"
)

type EntryKind string

const (
	EntryAppointment EntryKind = "appointment"
	EntryWorkshop    EntryKind = "workshop"
)

// ScheduleEntry is one row of the unified upcoming timeline.
type ScheduleEntry struct {
	Kind          EntryKind                  `json:"kind"`
	Title         string                     `json:"title"`
	Subtitle      string                     `json:"subtitle"`
	StartsAt      time.Time                  `json:"starts_at"`
	Amount        models.MinorCurrencyAmount `json:"amount"`
	AppointmentID uint                       `json:"appointment_id,omitempty"`
	WorkshopID    uint                       `json:"workshop_id,omitempty"`
	RefID         string                     `json:"ref_id,omitempty"`
}

// BuildTimeline merges a user's upcoming appointments and future workshops
// into one ascending sequence. Only upcoming appointments and workshops
// starting strictly after now are included. Appointments appearing in both
// input roles are de-duplicated by id, keeping the first-seen instance. The
// sort is stable, so same-instant entries keep their concat order:
// appointments before workshops.
func BuildTimeline(viewerID uint, appointments []models.Appointment, workshops []models.Workshop, now time.Time) ([]ScheduleEntry, error) {
	var entries []ScheduleEntry

	seen := make(map[uint]bool, len(appointments))
	for _, appt := range appointments {
		if appt.Status != models.StatusUpcoming {
			continue
		}
		if seen[appt.ID] {
			continue
		}
		seen[appt.ID] = true

		startsAt, err := appt.StartsAt()
		if err != nil {
			return nil, fmt.Errorf("appointment %d has malformed schedule: %w", appt.ID, err)
		}

		counterpart := appt.Consultant.Name
		if appt.ConsultantID == viewerID {
			counterpart = appt.Client.Name
		}
		entries = append(entries, ScheduleEntry{
			Kind:          EntryAppointment,
			Title:         fmt.Sprintf("Session with %s", counterpart),
			Subtitle:      fmt.Sprintf("%d min %s session", appt.DurationMinutes, appt.Mode),
			StartsAt:      startsAt,
			Amount:        appt.Amount,
			AppointmentID: appt.ID,
			RefID:         appt.RefID,
		})
	}

	for _, w := range workshops {
		if !w.StartsAt.After(now) {
			continue
		}
		subtitle := string(w.Mode)
		if w.Location != "" {
			subtitle = fmt.Sprintf("%s, %s", w.Mode, w.Location)
		}
		entries = append(entries, ScheduleEntry{
			Kind:       EntryWorkshop,
			Title:      w.Title,
			Subtitle:   subtitle,
			StartsAt:   w.StartsAt,
			Amount:     w.Price,
			WorkshopID: w.ID,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].StartsAt.Before(entries[j].StartsAt)
	})
	return entries, nil
}
