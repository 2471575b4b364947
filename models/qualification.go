package models

import (
	"gorm.io/gorm"
)

// Qualification is an academic or professional credential listed on a
// consultant's application.
type Qualification struct {
	gorm.Model
	ConsultantID uint   `json:"consultant_id" gorm:"not null;index"`
	Consultant   User   `json:"-" gorm:"foreignKey:ConsultantID"`
	Title        string `json:"title" gorm:"not null"`
	Institution  string `json:"institution"`
	Year         int    `json:"year"`
}

// Certification is a verifiable certificate attached to a consultant's
// application, stored as a media-host URL.
type Certification struct {
	gorm.Model
	ConsultantID uint   `json:"consultant_id" gorm:"not null;index"`
	Consultant   User   `json:"-" gorm:"foreignKey:ConsultantID"`
	Name         string `json:"name" gorm:"not null"`
	Issuer       string `json:"issuer"`
	DocumentURL  string `json:"document_url"`
}
