package consultant

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/sazid-zero/ConsultBook-sub001/db"
	"github.com/sazid-zero/ConsultBook-sub001/models"
	"github.com/sazid-zero/ConsultBook-sub001/redis"
	"github.com/sazid-zero/ConsultBook-sub001/utils"
)

// ListMyAppointments returns the consultant's appointments, optionally
// filtered by status.
func ListMyAppointments(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User ID not found in context",
		})
	}

	query := db.DB.Preload("Client").Where("consultant_id = ?", userID)
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var appointments []models.Appointment
	if err := query.Order("date ASC, start_time ASC").Find(&appointments).Error; err != nil {
		return utils.RespondError(c, utils.StorageError("Failed to fetch appointments", err))
	}
	return c.JSON(appointments)
}

// CompleteAppointment marks a delivered session completed (terminal) and
// credits the consultant's delivered minutes.
func CompleteAppointment(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User ID not found in context",
		})
	}

	id := c.Params("id")
	var appointment models.Appointment
	err := db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&appointment, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return utils.NotFoundError("Appointment not found")
			}
			return utils.StorageError("Failed to fetch appointment", err)
		}
		if appointment.ConsultantID != userID {
			return utils.ValidationError("Not your appointment")
		}
		if err := appointment.UpdateStatus(tx, models.StatusCompleted); err != nil {
			return utils.ConflictError(err.Error())
		}

		err := tx.Model(&models.ConsultantProfile{}).
			Where("consultant_id = ?", userID).
			Update("minutes_delivered", gorm.Expr("minutes_delivered + ?", appointment.DurationMinutes)).Error
		if err != nil {
			return utils.StorageError("Failed to update delivered minutes", err)
		}
		return nil
	})
	if err != nil {
		return utils.RespondError(c, err)
	}

	content := fmt.Sprintf("Your %s session on %s at %s was marked completed",
		appointment.Mode, appointment.Date, appointment.StartTime)
	if err := utils.Notify(db.DB, appointment.ClientID, models.NotifyAlert, content, appointment.RefID); err != nil {
		utils.GetLogger().Warn("completion notification failed",
			zap.String("ref_id", appointment.RefID), zap.Error(err))
	}

	redis.InvalidateViews(
		redis.ConsultantDashboardView(appointment.ConsultantID),
		redis.ClientDashboardView(appointment.ClientID),
	)
	return c.JSON(appointment)
}
