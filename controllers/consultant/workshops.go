package consultant

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/sazid-zero/ConsultBook-sub001/db"
	"github.com/sazid-zero/ConsultBook-sub001/models"
	"github.com/sazid-zero/ConsultBook-sub001/utils"
)

type workshopInput struct {
	Title           string                     `json:"title"`
	Description     string                     `json:"description"`
	StartsAt        time.Time                  `json:"starts_at"`
	DurationMinutes int                        `json:"duration_minutes"`
	Price           models.MinorCurrencyAmount `json:"price"`
	Mode            models.SessionMode         `json:"mode"`
	Location        string                     `json:"location"`
	Capacity        *int                       `json:"capacity"`
	IsPublished     bool                       `json:"is_published"`
}

func (w *workshopInput) validate() error {
	if w.Title == "" {
		return utils.ValidationError("Title is required")
	}
	if w.StartsAt.IsZero() {
		return utils.ValidationError("Start time is required")
	}
	if w.Capacity != nil && *w.Capacity < 1 {
		return utils.ValidationError("Capacity must be at least 1")
	}
	if w.Price < 0 {
		return utils.ValidationError("Price cannot be negative")
	}
	return nil
}

// ListMyWorkshops returns all workshops owned by the consultant.
func ListMyWorkshops(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User ID not found in context",
		})
	}

	var workshops []models.Workshop
	err := db.DB.Preload("Registrations").
		Where("consultant_id = ?", userID).
		Order("starts_at ASC").
		Find(&workshops).Error
	if err != nil {
		return utils.RespondError(c, utils.StorageError("Failed to fetch workshops", err))
	}
	return c.JSON(workshops)
}

// CreateWorkshop creates a new workshop owned by the consultant.
func CreateWorkshop(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User ID not found in context",
		})
	}

	input := new(workshopInput)
	if err := c.BodyParser(input); err != nil {
		return utils.RespondError(c, utils.ValidationError("Cannot parse JSON"))
	}
	if err := input.validate(); err != nil {
		return utils.RespondError(c, err)
	}

	workshop := models.Workshop{
		ConsultantID:    userID,
		Title:           input.Title,
		Description:     input.Description,
		StartsAt:        input.StartsAt,
		DurationMinutes: input.DurationMinutes,
		Price:           input.Price,
		Mode:            input.Mode,
		Location:        input.Location,
		Capacity:        input.Capacity,
		IsPublished:     input.IsPublished,
	}
	if err := db.DB.Create(&workshop).Error; err != nil {
		return utils.RespondError(c, utils.StorageError("Failed to create workshop", err))
	}
	return c.Status(fiber.StatusCreated).JSON(workshop)
}

// UpdateWorkshop edits an owned workshop.
func UpdateWorkshop(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User ID not found in context",
		})
	}

	input := new(workshopInput)
	if err := c.BodyParser(input); err != nil {
		return utils.RespondError(c, utils.ValidationError("Cannot parse JSON"))
	}
	if err := input.validate(); err != nil {
		return utils.RespondError(c, err)
	}

	id := c.Params("id")
	var workshop models.Workshop
	if err := db.DB.First(&workshop, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.RespondError(c, utils.NotFoundError("Workshop not found"))
		}
		return utils.RespondError(c, utils.StorageError("Failed to fetch workshop", err))
	}
	if workshop.ConsultantID != userID {
		return utils.RespondError(c, utils.ValidationError("Not your workshop"))
	}

	workshop.Title = input.Title
	workshop.Description = input.Description
	workshop.StartsAt = input.StartsAt
	workshop.DurationMinutes = input.DurationMinutes
	workshop.Price = input.Price
	workshop.Mode = input.Mode
	workshop.Location = input.Location
	workshop.Capacity = input.Capacity
	workshop.IsPublished = input.IsPublished

	if err := db.DB.Save(&workshop).Error; err != nil {
		return utils.RespondError(c, utils.StorageError("Failed to update workshop", err))
	}
	return c.JSON(workshop)
}

// DeleteWorkshop removes an owned workshop.
func DeleteWorkshop(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User ID not found in context",
		})
	}

	id := c.Params("id")
	var workshop models.Workshop
	if err := db.DB.First(&workshop, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.RespondError(c, utils.NotFoundError("Workshop not found"))
		}
		return utils.RespondError(c, utils.StorageError("Failed to fetch workshop", err))
	}
	if workshop.ConsultantID != userID {
		return utils.RespondError(c, utils.ValidationError("Not your workshop"))
	}

	if err := db.DB.Delete(&workshop).Error; err != nil {
		return utils.RespondError(c, utils.StorageError("Failed to delete workshop", err))
	}
	return c.SendStatus(fiber.StatusNoContent)
}
