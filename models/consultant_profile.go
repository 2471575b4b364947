package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"gorm.io/gorm"
)

// StringList stores an ordered list of strings as JSONB.
type StringList []string

// Value implements the driver.Valuer interface
func (l StringList) Value() (driver.Value, error) {
	jsonData, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(jsonData), nil
}

// Scan implements the sql.Scanner interface
func (l *StringList) Scan(value interface{}) error {
	if value == nil {
		*l = nil
		return nil
	}

	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("failed to unmarshal StringList: unsupported type %T", value)
	}

	return json.Unmarshal(data, l)
}

// ConsultantProfile is the one-to-one extension of a consultant account. It
// may be absent for a brand-new consultant before the first profile save;
// profile writes upsert. AverageRating and RatingCount are derived state:
// RecomputeConsultantRating is their only writer.
type ConsultantProfile struct {
	gorm.Model
	ConsultantID    uint                `json:"consultant_id" gorm:"uniqueIndex;not null"`
	Consultant      User                `json:"-" gorm:"foreignKey:ConsultantID"`
	Bio             string              `json:"bio"`
	HourlyRate      MinorCurrencyAmount `json:"hourly_rate"`
	Specializations StringList          `json:"specializations" gorm:"type:jsonb"`
	Address         string              `json:"address"`
	City            string              `json:"city"`
	Country         string              `json:"country"`
	IsApproved      bool                `json:"is_approved" gorm:"default:false"`
	IsPublished     bool                `json:"is_published" gorm:"default:false"`
	IsAvailable     bool                `json:"is_available" gorm:"default:true"`
	AverageRating   int                 `json:"average_rating" gorm:"default:0"`
	RatingCount     int                 `json:"rating_count" gorm:"default:0"`
	// MinutesDelivered accumulates session minutes; storing hours would
	// truncate short sessions to zero.
	MinutesDelivered int `json:"minutes_delivered" gorm:"default:0"`
}

// HoursDelivered derives the delivered hours from the minute counter.
func (p *ConsultantProfile) HoursDelivered() float64 {
	return float64(p.MinutesDelivered) / 60
}

// ProfileUpdate is the write contract for profile edits. The aggregate rating
// fields and the approval flag are deliberately absent: ratings belong to the
// aggregation path and approval belongs to admins.
type ProfileUpdate struct {
	Bio             string              `json:"bio"`
	HourlyRate      MinorCurrencyAmount `json:"hourly_rate"`
	Specializations StringList          `json:"specializations"`
	Address         string              `json:"address"`
	City            string              `json:"city"`
	Country         string              `json:"country"`
	IsPublished     *bool               `json:"is_published"`
	IsAvailable     *bool               `json:"is_available"`
}
