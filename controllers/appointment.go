package controllers

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

// GetAppointment returns one appointment, visible only to its two parties.
func GetAppointment(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User ID not found in context",
		})
	}

	id := c.Params("id")
	var appointment models.Appointment
	if err := db.DB.Preload("Client").Preload("Consultant").First(&appointment, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.RespondError(c, utils.NotFoundError("Appointment not found"))
		}
		return utils.RespondError(c, utils.StorageError("Failed to fetch appointment", err))
	}
	if appointment.ClientID != userID && appointment.ConsultantID != userID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "Not your appointment",
		})
	}
	return c.JSON(appointment)
}

// CancelAppointment moves an upcoming appointment to its terminal cancelled
// state and notifies the counterpart party. The pre-mutation row is loaded
// first; a missing row fails the whole operation.
func CancelAppointment(c *fiber.Ctx) error {
	return mutateAppointment(c, func(tx *gorm.DB, appt *models.Appointment, actor string) (models.NotificationType, string, error) {
		if err := appt.UpdateStatus(tx, models.StatusCancelled); err != nil {
			return "", "", utils.ConflictError(err.Error())
		}
		content := fmt.Sprintf("The %s cancelled the %s session on %s at %s",
			actor, appt.Mode, appt.Date, appt.StartTime)
		return models.NotifyCancellation, content, nil
	})
}

// RescheduleAppointment moves an upcoming appointment to a new date/time,
// recording the actor and their reason, and notifies the counterpart.
func RescheduleAppointment(c *fiber.Ctx) error {
	type RescheduleInput struct {
		Date      string `json:"date"`
		StartTime string `json:"start_time"`
		Reason    string `json:"reason"`
	}
	input := new(RescheduleInput)
	if err := c.BodyParser(input); err != nil {
		return utils.RespondError(c, utils.ValidationError("Cannot parse JSON"))
	}
	if _, err := utils.ParseSlot(input.Date, input.StartTime); err != nil {
		return utils.RespondError(c, utils.ValidationError("Invalid date or time"))
	}

	return mutateAppointment(c, func(tx *gorm.DB, appt *models.Appointment, actor string) (models.NotificationType, string, error) {
		oldDate, oldTime := appt.Date, appt.StartTime

		var taken int64
		err := tx.Model(&models.Appointment{}).
			Where("consultant_id = ? AND date = ? AND start_time = ? AND status <> ? AND id <> ?",
				appt.ConsultantID, input.Date, input.StartTime, models.StatusCancelled, appt.ID).
			Count(&taken).Error
		if err != nil {
			return "", "", utils.StorageError("Failed to check slot", err)
		}
		if taken > 0 {
			return "", "", utils.ConflictError("The new time slot is already booked")
		}

		if err := appt.Reschedule(tx, input.Date, input.StartTime, actor, input.Reason); err != nil {
			return "", "", utils.ConflictError(err.Error())
		}
		content := fmt.Sprintf("The %s moved the session from %s %s to %s %s (%s)",
			actor, oldDate, oldTime, input.Date, input.StartTime, input.Reason)
		return models.NotifyReschedule, content, nil
	})
}

// mutateAppointment is the shared lookup-mutate-notify sequence for cancel
// and reschedule. The mutation runs in a transaction; the notification to the
// non-initiating party is best-effort afterwards.
func mutateAppointment(c *fiber.Ctx, mutate func(tx *gorm.DB, appt *models.Appointment, actor string) (models.NotificationType, string, error)) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User ID not found in context",
		})
	}
	role, _ := c.Locals("role").(string)

	id := c.Params("id")
	var appointment models.Appointment
	var notifyType models.NotificationType
	var notifyContent string
	var counterpartID uint

	err := db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&appointment, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return utils.NotFoundError("Appointment not found")
			}
			return utils.StorageError("Failed to fetch appointment", err)
		}

		var actor string
		switch {
		case appointment.ClientID == userID && role == string(models.RoleClient):
			actor = "client"
			counterpartID = appointment.ConsultantID
		case appointment.ConsultantID == userID && role == string(models.RoleConsultant):
			actor = "consultant"
			counterpartID = appointment.ClientID
		default:
			return utils.ValidationError("Not a party to this appointment")
		}

		var err error
		notifyType, notifyContent, err = mutate(tx, &appointment, actor)
		return err
	})
	if err != nil {
		return utils.RespondError(c, err)
	}

	if err := utils.Notify(db.DB, counterpartID, notifyType, notifyContent, appointment.RefID); err != nil {
		utils.GetLogger().Warn("appointment notification failed",
			zap.String("ref_id", appointment.RefID), zap.Error(err))
	}

	redis.InvalidateViews(
		redis.ConsultantDashboardView(appointment.ConsultantID),
		redis.ClientDashboardView(appointment.ClientID),
		redis.BookingPageView(appointment.ConsultantID),
	)

	return c.JSON(appointment)
}
