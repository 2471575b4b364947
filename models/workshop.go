package models

import (
	"time"

	"gorm.io/gorm"
)

// Workshop is a scheduled group session owned by a consultant. Unlike
// appointments, workshops carry an absolute start timestamp.
type Workshop struct {
	gorm.Model
	ConsultantID    uint                `json:"consultant_id" gorm:"not null;index"`
	Consultant      User                `json:"consultant,omitempty" gorm:"foreignKey:ConsultantID"`
	Title           string              `json:"title" gorm:"not null"`
	Description     string              `json:"description"`
	StartsAt        time.Time           `json:"starts_at" gorm:"not null"`
	DurationMinutes int                 `json:"duration_minutes"`
	Price           MinorCurrencyAmount `json:"price"`
	Mode            SessionMode         `json:"mode" gorm:"type:varchar(16)"`
	Location        string              `json:"location"`
	Capacity        *int                `json:"capacity,omitempty"`
	IsPublished     bool                `json:"is_published" gorm:"default:false"`

	Registrations []WorkshopRegistration `json:"registrations,omitempty" gorm:"foreignKey:WorkshopID"`
}
