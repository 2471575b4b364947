package utils

import (
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/sazid-zero/ConsultBook-sub001/models"
)

// Notify appends a notification row for the user and sends a best-effort
// email copy. The row insert error is returned so callers can decide whether
// it is fatal; the email never is.
func Notify(gdb *gorm.DB, userID uint, ntype models.NotificationType, content, refID string) error {
	notification := models.Notification{
		UserID:  userID,
		Type:    ntype,
		Content: content,
		RefID:   refID,
	}
	if err := gdb.Create(&notification).Error; err != nil {
		return StorageError("Failed to insert notification", err)
	}

	var user models.User
	if err := gdb.First(&user, userID).Error; err != nil {
		GetLogger().Warn("notification email skipped, user lookup failed",
			zap.Uint("user_id", userID), zap.Error(err))
		return nil
	}
	if err := SendEmail(user.Email, "ConsultBook: "+string(ntype), "<p>"+content+"</p>"); err != nil {
		GetLogger().Warn("notification email failed",
			zap.Uint("user_id", userID), zap.Error(err))
	}
	return nil
}
