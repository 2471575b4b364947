package client

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/sazid-zero/ConsultBook-sub001/db"
	"github.com/sazid-zero/ConsultBook-sub001/models"
	"github.com/sazid-zero/ConsultBook-sub001/redis"
	"github.com/sazid-zero/ConsultBook-sub001/utils"
)

// BookAppointment validates and commits a new appointment. The insert runs in
// a transaction with an in-tx existence check, backed by the partial unique
// slot index, so two concurrent requests for the same slot cannot both
// succeed. On success the consultant gets a booking notification
// (best-effort) and the affected dashboard views are invalidated.
func BookAppointment(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User ID not found in context",
		})
	}

	type BookingInput struct {
		ConsultantID    uint                       `json:"consultant_id"`
		Date            string                     `json:"date"`
		StartTime       string                     `json:"start_time"`
		DurationMinutes int                        `json:"duration_minutes"`
		Mode            models.SessionMode         `json:"mode"`
		Amount          models.MinorCurrencyAmount `json:"amount"`
		Notes           string                     `json:"notes"`
		PaymentIntentID string                     `json:"payment_intent_id"`
		IdempotencyKey  string                     `json:"idempotency_key"`
	}

	input := new(BookingInput)
	if err := c.BodyParser(input); err != nil {
		return utils.RespondError(c, utils.ValidationError("Cannot parse JSON"))
	}

	if err := utils.ValidateBookingRequest(userID, input.ConsultantID, input.Date, input.StartTime, input.DurationMinutes); err != nil {
		return utils.RespondError(c, err)
	}

	var consultant models.User
	err := db.DB.Where("id = ? AND role = ?", input.ConsultantID, models.RoleConsultant).
		First(&consultant).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.RespondError(c, utils.NotFoundError("Consultant not found"))
		}
		return utils.RespondError(c, utils.StorageError("Failed to fetch consultant", err))
	}

	// A retried request with the same idempotency key returns the prior row
	// instead of double-inserting.
	if input.IdempotencyKey != "" {
		var existing models.Appointment
		err := db.DB.Where("idempotency_key = ?", input.IdempotencyKey).First(&existing).Error
		if err == nil {
			return c.JSON(existing)
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.RespondError(c, utils.StorageError("Failed to check idempotency key", err))
		}
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

	appointment := models.Appointment{
		RefID:           uuid.NewString(),
		ClientID:        userID,
		ConsultantID:    input.ConsultantID,
		Date:            input.Date,
		StartTime:       input.StartTime,
		DurationMinutes: input.DurationMinutes,
		Mode:            input.Mode,
		Amount:          input.Amount,
		Status:          models.StatusUpcoming,
		PaymentStatus:   paymentStatus,
		Notes:           input.Notes,
	}
	if input.IdempotencyKey != "" {
		appointment.IdempotencyKey = &input.IdempotencyKey
	}

	err = db.DB.Transaction(func(tx *gorm.DB) error {
		var taken int64
		err := tx.Model(&models.Appointment{}).
			Where("consultant_id = ? AND date = ? AND start_time = ? AND status <> ?",
				input.ConsultantID, input.Date, input.StartTime, models.StatusCancelled).
			Count(&taken).Error
		if err != nil {
			return utils.StorageError("Failed to check slot", err)
		}
		if taken > 0 {
			return utils.ConflictError("This time slot was just booked by someone else")
		}
		if err := tx.Create(&appointment).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return utils.ConflictError("This time slot was just booked by someone else")
			}
			return utils.StorageError("Failed to create appointment", err)
		}
		return nil
	})
	if err != nil {
		return utils.RespondError(c, err)
	}

	// Best-effort: the appointment stands even if the notification fails.
	clientName := "A client"
	var bookingClient models.User
	if err := db.DB.First(&bookingClient, userID).Error; err == nil {
		clientName = bookingClient.Name
	}
	content := fmt.Sprintf("%s booked a %d min session for %s at %s",
		clientName, appointment.DurationMinutes, appointment.Date, appointment.StartTime)
	if err := utils.Notify(db.DB, appointment.ConsultantID, models.NotifyBooking, content, appointment.RefID); err != nil {
		utils.GetLogger().Warn("booking notification failed",
			zap.String("ref_id", appointment.RefID), zap.Error(err))
	}

	redis.InvalidateViews(
		redis.ConsultantDashboardView(appointment.ConsultantID),
		redis.ClientDashboardView(appointment.ClientID),
		redis.BookingPageView(appointment.ConsultantID),
	)

	return c.Status(fiber.StatusCreated).JSON(appointment)
}
