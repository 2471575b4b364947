package models

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

type AppointmentStatus string

const (
	StatusUpcoming  AppointmentStatus = "upcoming"
	StatusCompleted AppointmentStatus = "completed"
	StatusCancelled AppointmentStatus = "cancelled"
)

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
)

type SessionMode string

const (
	ModeVideo    SessionMode = "video"
	ModeAudio    SessionMode = "audio"
	ModeInPerson SessionMode = "in_person"
)

// DateLayout is the lexically sortable calendar-date format for Appointment.Date.
const DateLayout = "2006-01-02"

// TimeLayout is the 24h format for Appointment.StartTime and slot labels.
const TimeLayout = "15:04"

// Appointment is a booked one-on-one session between a client and a
// consultant. Date and StartTime are stored as strings so (consultant, date,
// start_time) can carry a storage-level uniqueness constraint over
// non-cancelled rows.
type Appointment struct {
	gorm.Model
	RefID            string              `json:"ref_id" gorm:"uniqueIndex;not null"`
	ClientID         uint                `json:"client_id" gorm:"not null"`
	Client           User                `json:"client,omitempty" gorm:"foreignKey:ClientID"`
	ConsultantID     uint                `json:"consultant_id" gorm:"not null"`
	Consultant       User                `json:"consultant,omitempty" gorm:"foreignKey:ConsultantID"`
	Date             string              `json:"date" gorm:"type:varchar(10);not null"`
	StartTime        string              `json:"start_time" gorm:"type:varchar(5);not null"`
	DurationMinutes  int                 `json:"duration_minutes" gorm:"not null"`
	Mode             SessionMode         `json:"mode" gorm:"type:varchar(16)"`
	Amount           MinorCurrencyAmount `json:"amount"`
	Status           AppointmentStatus   `json:"status" gorm:"type:varchar(16);index"`
	PaymentStatus    PaymentStatus       `json:"payment_status" gorm:"type:varchar(16)"`
	Notes            string              `json:"notes"`
	IdempotencyKey   *string             `json:"idempotency_key,omitempty" gorm:"uniqueIndex"`
	RescheduledBy    string              `json:"rescheduled_by,omitempty"`
	RescheduleReason string              `json:"reschedule_reason,omitempty"`
}

func (a *Appointment) BeforeCreate(tx *gorm.DB) error {
	if a.Status == "" {
		a.Status = StatusUpcoming
	}
	if a.PaymentStatus == "" {
		a.PaymentStatus = PaymentPending
	}
	return nil
}

// StartsAt resolves Date+StartTime into an absolute timestamp.
func (a *Appointment) StartsAt() (time.Time, error) {
	return time.Parse(DateLayout+" "+TimeLayout, a.Date+" "+a.StartTime)
}

// ValidateTransition enforces the status machine: upcoming may become
// cancelled or completed; both of those are terminal.
func (a *Appointment) ValidateTransition(newStatus AppointmentStatus) error {
	switch a.Status {
	case StatusUpcoming:
		if newStatus != StatusCancelled && newStatus != StatusCompleted {
			return fmt.Errorf("invalid transition from upcoming to %s", newStatus)
		}
	case StatusCompleted, StatusCancelled:
		return fmt.Errorf("no transitions allowed from %s", a.Status)
	default:
		return fmt.Errorf("unknown status %s", a.Status)
	}
	return nil
}

// UpdateStatus validates and persists a status transition.
func (a *Appointment) UpdateStatus(tx *gorm.DB, newStatus AppointmentStatus) error {
	if err := a.ValidateTransition(newStatus); err != nil {
		return err
	}
	a.Status = newStatus
	return tx.Save(a).Error
}

// Reschedule mutates date/time in place while the appointment is still
// upcoming, recording who moved it and why.
func (a *Appointment) Reschedule(tx *gorm.DB, date, startTime, actor, reason string) error {
	if a.Status != StatusUpcoming {
		return fmt.Errorf("cannot reschedule a %s appointment", a.Status)
	}
	a.Date = date
	a.StartTime = startTime
	a.RescheduledBy = actor
	a.RescheduleReason = reason
	return tx.Save(a).Error
}
