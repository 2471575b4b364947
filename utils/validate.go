package utils

import (
	"time"

	"github.com/sazid-zero/ConsultBook-sub001/models"
)

// ValidateBookingRequest runs the pre-write checks for a new appointment:
// self-booking, slot shape, and duration. Slot contention is not checked
// here; that belongs to the booking transaction and the slot index.
func ValidateBookingRequest(clientID, consultantID uint, date, startTime string, durationMinutes int) error {
	if consultantID == clientID {
		return ValidationError("You cannot book a session with yourself")
	}
	if _, err := ParseSlot(date, startTime); err != nil {
		return ValidationError("Invalid date or time")
	}
	if durationMinutes <= 0 {
		return ValidationError("Duration must be positive")
	}
	return nil
}

// ValidateWorkshopRegistration checks that a client may take a seat in the
// workshop given the current registration count. The duplicate-registration
// check stays with the caller, backed by the unique index on
// (client_id, workshop_id).
func ValidateWorkshopRegistration(w *models.Workshop, clientID uint, registered int64, now time.Time) error {
	if !w.IsPublished {
		return NotFoundError("Workshop not found")
	}
	if !w.StartsAt.After(now) {
		return ValidationError("Workshop has already started")
	}
	if w.ConsultantID == clientID {
		return ValidationError("You cannot register for your own workshop")
	}
	if w.Capacity != nil && registered >= int64(*w.Capacity) {
		return ConflictError("Workshop is full")
	}
	return nil
}
