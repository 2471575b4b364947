package consultant

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/sazid-zero/ConsultBook-sub001/db"
	"github.com/sazid-zero/ConsultBook-sub001/models"
	"github.com/sazid-zero/ConsultBook-sub001/utils"
)

// GetDashboardOverview returns appointment counters and earnings for the
// consultant's dashboard page.
func GetDashboardOverview(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User ID not found in context",
		})
	}

	var statistics struct {
		TotalAppointments int64                      `json:"total_appointments"`
		UpcomingCount     int64                      `json:"upcoming_count"`
		CompletedCount    int64                      `json:"completed_count"`
		CancelledCount    int64                      `json:"cancelled_count"`
		TotalWorkshops    int64                      `json:"total_workshops"`
		TotalEarnings     models.MinorCurrencyAmount `json:"total_earnings"`
		LastUpdated       time.Time                  `json:"last_updated"`
	}

	appointmentQuery := db.DB.Model(&models.Appointment{}).Where("consultant_id = ?", userID)
	appointmentQuery.Count(&statistics.TotalAppointments)

	db.DB.Model(&models.Appointment{}).
		Where("consultant_id = ? AND status = ?", userID, models.StatusUpcoming).
		Count(&statistics.UpcomingCount)
	db.DB.Model(&models.Appointment{}).
		Where("consultant_id = ? AND status = ?", userID, models.StatusCompleted).
		Count(&statistics.CompletedCount)
	db.DB.Model(&models.Appointment{}).
		Where("consultant_id = ? AND status = ?", userID, models.StatusCancelled).
		Count(&statistics.CancelledCount)

	db.DB.Model(&models.Workshop{}).Where("consultant_id = ?", userID).
		Count(&statistics.TotalWorkshops)

	type earningsResult struct {
		Total models.MinorCurrencyAmount
	}
	var earnings earningsResult
	db.DB.Model(&models.Appointment{}).
		Where("consultant_id = ? AND status = ?", userID, models.StatusCompleted).
		Select("COALESCE(SUM(amount), 0) as total").
		Scan(&earnings)
	statistics.TotalEarnings = earnings.Total

	statistics.LastUpdated = time.Now()
	return c.JSON(statistics)
}

// GetTimeline returns the consultant's unified upcoming schedule: their
// upcoming appointments merged with their own future workshops.
func GetTimeline(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User ID not found in context",
		})
	}

	var appointments []models.Appointment
	err := db.DB.Preload("Client").Preload("Consultant").
		Where("consultant_id = ? AND status = ?", userID, models.StatusUpcoming).
		Find(&appointments).Error
	if err != nil {
		return utils.RespondError(c, utils.StorageError("Failed to fetch appointments", err))
	}

	var workshops []models.Workshop
	err = db.DB.Where("consultant_id = ?", userID).Find(&workshops).Error
	if err != nil {
		return utils.RespondError(c, utils.StorageError("Failed to fetch workshops", err))
	}

	timeline, err := utils.BuildTimeline(userID, appointments, workshops, time.Now())
	if err != nil {
		return utils.RespondError(c, utils.StorageError("Failed to build timeline", err))
	}
	return c.JSON(timeline)
}
