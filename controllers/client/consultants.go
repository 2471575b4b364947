package client

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/sazid-zero/ConsultBook-sub001/db"
	"github.com/sazid-zero/ConsultBook-sub001/models"
	"github.com/sazid-zero/ConsultBook-sub001/utils"
)

// ListConsultants returns approved, published consultant profiles.
func ListConsultants(c *fiber.Ctx) error {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "10"))
	offset := (page - 1) * limit

	var profiles []models.ConsultantProfile
	err := db.DB.Preload("Consultant").
		Where("is_approved = ? AND is_published = ?", true, true).
		Order("average_rating DESC, rating_count DESC").
		Limit(limit).
		Offset(offset).
		Find(&profiles).Error
	if err != nil {
		return utils.RespondError(c, utils.StorageError("Failed to fetch consultants", err))
	}
	return c.JSON(profiles)
}

// GetConsultantAvailability returns the raw weekly template (enabled weekdays
// only) plus the consultant's booked non-cancelled appointments, so the
// booking UI can subtract taken slots.
func GetConsultantAvailability(c *fiber.Ctx) error {
	consultantID, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return utils.RespondError(c, utils.ValidationError("Invalid consultant id"))
	}

	availability, err := utils.WeeklyAvailability(db.DB, uint(consultantID))
	if err != nil {
		return utils.RespondError(c, err)
	}
	booked, err := utils.BookedAppointments(db.DB, uint(consultantID))
	if err != nil {
		return utils.RespondError(c, err)
	}

	type bookedSlot struct {
		Date            string `json:"date"`
		StartTime       string `json:"start_time"`
		DurationMinutes int    `json:"duration_minutes"`
	}
	slots := make([]bookedSlot, 0, len(booked))
	for _, appt := range booked {
		slots = append(slots, bookedSlot{
			Date:            appt.Date,
			StartTime:       appt.StartTime,
			DurationMinutes: appt.DurationMinutes,
		})
	}

	return c.JSON(fiber.Map{
		"availability": availability,
		"booked":       slots,
	})
}

// GetConsultantOpenSlots resolves concrete bookable slots for the next N days
// (template minus booked appointments).
func GetConsultantOpenSlots(c *fiber.Ctx) error {
	consultantID, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return utils.RespondError(c, utils.ValidationError("Invalid consultant id"))
	}
	days := c.QueryInt("days", 14)
	if days < 1 || days > 60 {
		days = 14
	}

	var schedules []models.WeeklySchedule
	if err := db.DB.Where("consultant_id = ?", consultantID).Find(&schedules).Error; err != nil {
		return utils.RespondError(c, utils.StorageError("Failed to load availability", err))
	}
	booked, err := utils.BookedAppointments(db.DB, uint(consultantID))
	if err != nil {
		return utils.RespondError(c, err)
	}

	open, err := utils.OpenSlots(schedules, booked, time.Now(), days)
	if err != nil {
		return utils.RespondError(c, utils.StorageError("Failed to resolve open slots", err))
	}
	return c.JSON(open)
}
