package models

import (
	"gorm.io/gorm"
)

type NotificationType string

const (
	NotifyBooking      NotificationType = "booking"
	NotifyReschedule   NotificationType = "reschedule"
	NotifyCancellation NotificationType = "cancellation"
	NotifyMessage      NotificationType = "message"
	NotifyAlert        NotificationType = "alert"
)

// Notification is an append-only per-user message. Content is never edited
// after insert; the only mutation is flipping the read flag.
type Notification struct {
	gorm.Model
	UserID  uint             `json:"user_id" gorm:"not null;index"`
	User    User             `json:"-" gorm:"foreignKey:UserID"`
	Type    NotificationType `json:"type" gorm:"type:varchar(16);not null"`
	Content string           `json:"content" gorm:"not null"`
	IsRead  bool             `json:"is_read" gorm:"default:false"`
	RefID   string           `json:"ref_id,omitempty"`
}
