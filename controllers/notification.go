package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/sazid-zero/ConsultBook-sub001/db"
	"github.com/sazid-zero/ConsultBook-sub001/models"
	"github.com/sazid-zero/ConsultBook-sub001/utils"
)

// ListNotifications returns the caller's notifications newest-first.
func ListNotifications(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User ID not found in context",
		})
	}

	var notifications []models.Notification
	err := db.DB.Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(c.QueryInt("limit", 50)).
		Find(&notifications).Error
	if err != nil {
		return utils.RespondError(c, utils.StorageError("Failed to fetch notifications", err))
	}

	var unread int64
	db.DB.Model(&models.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Count(&unread)

	return c.JSON(fiber.Map{
		"notifications": notifications,
		"unread_count":  unread,
	})
}

// MarkNotificationRead flips the read flag on one of the caller's
// notifications. The content itself is never mutated.
func MarkNotificationRead(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User ID not found in context",
		})
	}

	id := c.Params("id")
	var notification models.Notification
	if err := db.DB.First(&notification, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.RespondError(c, utils.NotFoundError("Notification not found"))
		}
		return utils.RespondError(c, utils.StorageError("Failed to fetch notification", err))
	}
	if notification.UserID != userID {
		return utils.RespondError(c, utils.ValidationError("Not your notification"))
	}

	if err := db.DB.Model(&notification).Update("is_read", true).Error; err != nil {
		return utils.RespondError(c, utils.StorageError("Failed to mark notification read", err))
	}
	return c.JSON(notification)
}

// MarkAllNotificationsRead flips the read flag on everything unread.
func MarkAllNotificationsRead(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User ID not found in context",
		})
	}

	err := db.DB.Model(&models.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Update("is_read", true).Error
	if err != nil {
		return utils.RespondError(c, utils.StorageError("Failed to mark notifications read", err))
	}
	return c.SendStatus(fiber.StatusNoContent)
}
