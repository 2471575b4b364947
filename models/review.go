package models

import (
	"fmt"

	"gorm.io/gorm"
)

// Review is a client's 1-5 rating and comment for a completed appointment.
// Every create/update/delete must be followed by a rating recompute for the
// consultant in the same transaction.
type Review struct {
	gorm.Model
	Rating        int         `json:"rating" gorm:"not null"`
	Comment       string      `json:"comment"`
	ConsultantID  uint        `json:"consultant_id" gorm:"not null;index"`
	Consultant    User        `json:"-" gorm:"foreignKey:ConsultantID"`
	ClientID      uint        `json:"client_id" gorm:"not null"`
	Client        User        `json:"client,omitempty" gorm:"foreignKey:ClientID"`
	AppointmentID uint        `json:"appointment_id" gorm:"uniqueIndex;not null"`
	Appointment   Appointment `json:"-" gorm:"foreignKey:AppointmentID"`
}

// BeforeCreate hook to validate rating
func (r *Review) BeforeCreate(tx *gorm.DB) error {
	if r.Rating < 1 || r.Rating > 5 {
		return fmt.Errorf("rating must be between 1 and 5, got %d", r.Rating)
	}
	return nil
}

func (r *Review) BeforeUpdate(tx *gorm.DB) error {
	if r.Rating < 1 || r.Rating > 5 {
		return fmt.Errorf("rating must be between 1 and 5, got %d", r.Rating)
	}
	return nil
}
