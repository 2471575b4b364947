package models

import (
	"gorm.io/gorm"
)

type DayOfWeek int

const (
	Sunday DayOfWeek = iota
	Monday
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
)

var dayNames = [...]string{"sunday", "monday", "tuesday", "wednesday", "thursday", "friday", "saturday"}

func (d DayOfWeek) String() string {
	if d < Sunday || d > Saturday {
		return "unknown"
	}
	return dayNames[d]
}

// WeeklySchedule is one weekday of a consultant's recurring availability
// template: an enabled flag plus the ordered 30-minute slot labels offered
// that day ("09:00", "09:30", ...). At most one row per (consultant, weekday);
// the schedule-save action replaces all seven rows wholesale.
type WeeklySchedule struct {
	gorm.Model
	ConsultantID uint       `json:"consultant_id" gorm:"uniqueIndex:idx_consultant_weekday;not null"`
	Consultant   User       `json:"-" gorm:"foreignKey:ConsultantID"`
	DayOfWeek    DayOfWeek  `json:"day_of_week" gorm:"uniqueIndex:idx_consultant_weekday"`
	IsEnabled    bool       `json:"is_enabled" gorm:"default:false"`
	Slots        StringList `json:"slots" gorm:"type:jsonb"`
}
