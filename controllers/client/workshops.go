package client

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/sazid-zero/ConsultBook-sub001/db"
	"github.com/sazid-zero/ConsultBook-sub001/models"
	"github.com/sazid-zero/ConsultBook-sub001/utils"
)

// ListWorkshops returns published workshops that have not started yet.
func ListWorkshops(c *fiber.Ctx) error {
	var workshops []models.Workshop
	err := db.DB.Preload("Consultant").
		Where("is_published = ? AND starts_at > ?", true, time.Now()).
		Order("starts_at ASC").
		Find(&workshops).Error
	if err != nil {
		return utils.RespondError(c, utils.StorageError("Failed to fetch workshops", err))
	}
	return c.JSON(workshops)
}

// RegisterForWorkshop creates a registration after the duplicate and capacity
// checks. The workshop row is locked FOR UPDATE so concurrent registrations
// for the last seat serialize; the duplicate check is backed by the
// idx_client_workshop unique index. Payment is verified with the processor
// before the registration is marked completed.
func RegisterForWorkshop(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User ID not found in context",
		})
	}

	workshopID, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return utils.RespondError(c, utils.ValidationError("Invalid workshop id"))
	}

	type RegisterInput struct {
		PaymentIntentID string `json:"payment_intent_id"`
	}
	input := new(RegisterInput)
	if err := c.BodyParser(input); err != nil && len(c.Body()) > 0 {
		return utils.RespondError(c, utils.ValidationError("Cannot parse JSON"))
	}

	paymentStatus := models.PaymentPending
	if input.PaymentIntentID != "" {
		paid, err := utils.VerifyPayment(input.PaymentIntentID)
		if err != nil {
			return utils.RespondError(c, err)
		}
		if paid {
			paymentStatus = models.PaymentCompleted
		}
	}

	registration := models.WorkshopRegistration{
		ClientID:      userID,
		WorkshopID:    uint(workshopID),
		PaymentStatus: paymentStatus,
	}

	var workshop models.Workshop
	err = db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&workshop, workshopID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return utils.NotFoundError("Workshop not found")
			}
			return utils.StorageError("Failed to fetch workshop", err)
		}
		var existing int64
		err := tx.Model(&models.WorkshopRegistration{}).
			Where("client_id = ? AND workshop_id = ?", userID, workshopID).
			Count(&existing).Error
		if err != nil {
			return utils.StorageError("Failed to check existing registration", err)
		}
		if existing > 0 {
			return utils.ConflictError("You are already registered for this workshop")
		}

		var count int64
		err = tx.Model(&models.WorkshopRegistration{}).
			Where("workshop_id = ?", workshopID).
			Count(&count).Error
		if err != nil {
			return utils.StorageError("Failed to count registrations", err)
		}
		if err := utils.ValidateWorkshopRegistration(&workshop, userID, count, time.Now()); err != nil {
			return err
		}

		if err := tx.Create(&registration).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return utils.ConflictError("You are already registered for this workshop")
			}
			return utils.StorageError("Failed to create registration", err)
		}
		return nil
	})
	if err != nil {
		return utils.RespondError(c, err)
	}

	content := fmt.Sprintf("A client registered for %q on %s",
		workshop.Title, workshop.StartsAt.Format("2006-01-02 15:04"))
	if err := utils.Notify(db.DB, workshop.ConsultantID, models.NotifyBooking, content, ""); err != nil {
		utils.GetLogger().Warn("workshop registration notification failed",
			zap.Uint("workshop_id", workshop.ID), zap.Error(err))
	}

	return c.Status(fiber.StatusCreated).JSON(registration)
}
