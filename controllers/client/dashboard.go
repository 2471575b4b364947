package client

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/sazid-zero/ConsultBook-sub001/db"
	"github.com/sazid-zero/ConsultBook-sub001/models"
	"github.com/sazid-zero/ConsultBook-sub001/utils"
)

// GetTimeline returns the client's unified upcoming schedule: their upcoming
// appointments merged with the future workshops they registered for, sorted
// ascending.
func GetTimeline(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User ID not found in context",
		})
	}

	var appointments []models.Appointment
	err := db.DB.Preload("Consultant").Preload("Client").
		Where("client_id = ? AND status = ?", userID, models.StatusUpcoming).
		Find(&appointments).Error
	if err != nil {
		return utils.RespondError(c, utils.StorageError("Failed to fetch appointments", err))
	}

	var registrations []models.WorkshopRegistration
	err = db.DB.Preload("Workshop").
		Where("client_id = ?", userID).
		Find(&registrations).Error
	if err != nil {
		return utils.RespondError(c, utils.StorageError("Failed to fetch workshop registrations", err))
	}
	workshops := make([]models.Workshop, 0, len(registrations))
	for _, reg := range registrations {
		workshops = append(workshops, reg.Workshop)
	}

	timeline, err := utils.BuildTimeline(userID, appointments, workshops, time.Now())
	if err != nil {
		return utils.RespondError(c, utils.StorageError("Failed to build timeline", err))
	}
	return c.JSON(timeline)
}
