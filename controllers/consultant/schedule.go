package consultant

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/sazid-zero/ConsultBook-sub001/db"
	"github.com/sazid-zero/ConsultBook-sub001/models"
	"github.com/sazid-zero/ConsultBook-sub001/redis"
	"github.com/sazid-zero/ConsultBook-sub001/utils"
)

// GetWeeklySchedule returns all seven template rows the consultant has saved.
func GetWeeklySchedule(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User ID not found in context",
		})
	}

	var schedules []models.WeeklySchedule
	err := db.DB.Where("consultant_id = ?", userID).Order("day_of_week ASC").Find(&schedules).Error
	if err != nil {
		return utils.RespondError(c, utils.StorageError("Failed to fetch schedule", err))
	}
	return c.JSON(schedules)
}

// SaveWeeklySchedule replaces the consultant's whole weekly template. The
// save is full-replace, not an incremental patch: existing rows are deleted
// and the submitted days inserted, all in one transaction.
func SaveWeeklySchedule(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User ID not found in context",
		})
	}

	type ScheduleDay struct {
		DayOfWeek models.DayOfWeek  `json:"day_of_week"`
		IsEnabled bool              `json:"is_enabled"`
		Slots     models.StringList `json:"slots"`
	}
	var input []ScheduleDay
	if err := c.BodyParser(&input); err != nil {
		return utils.RespondError(c, utils.ValidationError("Cannot parse JSON"))
	}

	seen := make(map[models.DayOfWeek]bool)
	for _, day := range input {
		if day.DayOfWeek < models.Sunday || day.DayOfWeek > models.Saturday {
			return utils.RespondError(c, utils.ValidationError("Invalid day of week"))
		}
		if seen[day.DayOfWeek] {
			return utils.RespondError(c, utils.ValidationError("Duplicate day of week"))
		}
		seen[day.DayOfWeek] = true
		for _, label := range day.Slots {
			if _, err := utils.ParseSlot("2000-01-01", label); err != nil {
				return utils.RespondError(c, utils.ValidationError("Invalid slot label "+label))
			}
		}
	}

	var schedules []models.WeeklySchedule
	err := db.DB.Transaction(func(tx *gorm.DB) error {
		err := tx.Unscoped().
			Where("consultant_id = ?", userID).
			Delete(&models.WeeklySchedule{}).Error
		if err != nil {
			return utils.StorageError("Failed to clear schedule", err)
		}

		for _, day := range input {
			schedule := models.WeeklySchedule{
				ConsultantID: userID,
				DayOfWeek:    day.DayOfWeek,
				IsEnabled:    day.IsEnabled,
				Slots:        day.Slots,
			}
			if err := tx.Create(&schedule).Error; err != nil {
				return utils.StorageError("Failed to save schedule", err)
			}
			schedules = append(schedules, schedule)
		}
		return nil
	})
	if err != nil {
		return utils.RespondError(c, err)
	}

	redis.InvalidateViews(redis.BookingPageView(userID))
	return c.JSON(schedules)
}
