package models

import (
	"time"
)

type Role string

const (
	RoleClient     Role = "client"
	RoleConsultant Role = "consultant"
	RoleAdmin      Role = "admin"
)

// User is the identity record for every account. Role is set once at
// registration and never changes; consultants are the only accounts ever
// deleted, and only through the admin rejection cascade.
type User struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name"`
	Email     string    `json:"email" gorm:"unique"`
	Password  string    `json:"-"`
	Role      Role      `json:"role" gorm:"type:varchar(16);not null"`
	Phone     string    `json:"phone"`
	PhotoURL  string    `json:"photo_url"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Profile               *ConsultantProfile     `json:"profile,omitempty" gorm:"foreignKey:ConsultantID"`
	Appointments          []Appointment          `json:"appointments,omitempty" gorm:"foreignKey:ConsultantID"`
	ClientAppointments    []Appointment          `json:"client_appointments,omitempty" gorm:"foreignKey:ClientID"`
	WeeklySchedules       []WeeklySchedule       `json:"weekly_schedules,omitempty" gorm:"foreignKey:ConsultantID"`
	Workshops             []Workshop             `json:"workshops,omitempty" gorm:"foreignKey:ConsultantID"`
	WorkshopRegistrations []WorkshopRegistration `json:"workshop_registrations,omitempty" gorm:"foreignKey:ClientID"`
}
