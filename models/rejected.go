package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// JSONSnapshot stores an arbitrary JSON document as JSONB.
type JSONSnapshot json.RawMessage

// Value implements the driver.Valuer interface
func (s JSONSnapshot) Value() (driver.Value, error) {
	if len(s) == 0 {
		return nil, nil
	}
	return string(s), nil
}

// Scan implements the sql.Scanner interface
func (s *JSONSnapshot) Scan(value interface{}) error {
	if value == nil {
		*s = nil
		return nil
	}
	switch v := value.(type) {
	case []byte:
		*s = append((*s)[:0], v...)
	case string:
		*s = JSONSnapshot(v)
	default:
		return fmt.Errorf("failed to unmarshal JSONSnapshot: unsupported type %T", value)
	}
	return nil
}

func (s JSONSnapshot) MarshalJSON() ([]byte, error) {
	if len(s) == 0 {
		return []byte("null"), nil
	}
	return s, nil
}

func (s *JSONSnapshot) UnmarshalJSON(data []byte) error {
	*s = append((*s)[:0], data...)
	return nil
}

// RejectedConsultantRecord is the historical archive row written exactly once
// when an admin rejects a pending consultant. Never mutated or deleted.
type RejectedConsultantRecord struct {
	ID           uint         `json:"id" gorm:"primaryKey"`
	ConsultantID uint         `json:"consultant_id" gorm:"uniqueIndex;not null"`
	Email        string       `json:"email" gorm:"not null"`
	Name         string       `json:"name"`
	Reason       string       `json:"reason"`
	Snapshot     JSONSnapshot `json:"snapshot" gorm:"type:jsonb"`
	RejectedAt   time.Time    `json:"rejected_at"`
}
