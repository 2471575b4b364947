package models

import (
	"gorm.io/gorm"
)

// WorkshopRegistration joins a client to a workshop. A client registers for a
// given workshop at most once; only the payment status ever changes after
// creation.
type WorkshopRegistration struct {
	gorm.Model
	ClientID      uint          `json:"client_id" gorm:"uniqueIndex:idx_client_workshop;not null"`
	Client        User          `json:"client,omitempty" gorm:"foreignKey:ClientID"`
	WorkshopID    uint          `json:"workshop_id" gorm:"uniqueIndex:idx_client_workshop;not null"`
	Workshop      Workshop      `json:"workshop,omitempty" gorm:"foreignKey:WorkshopID"`
	PaymentStatus PaymentStatus `json:"payment_status" gorm:"type:varchar(16)"`
}

func (r *WorkshopRegistration) BeforeCreate(tx *gorm.DB) error {
	if r.PaymentStatus == "" {
		r.PaymentStatus = PaymentPending
	}
	return nil
}
