package admin

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/sazid-zero/ConsultBook-sub001/db"
	"github.com/sazid-zero/ConsultBook-sub001/models"
	"github.com/sazid-zero/ConsultBook-sub001/redis"
	"github.com/sazid-zero/ConsultBook-sub001/utils"
)

// ListPendingConsultants returns consultant accounts awaiting approval.
func ListPendingConsultants(c *fiber.Ctx) error {
	var users []models.User
	err := db.DB.Preload("Profile").
		Joins("LEFT JOIN consultant_profiles ON consultant_profiles.consultant_id = users.id").
		Where("users.role = ? AND (consultant_profiles.id IS NULL OR consultant_profiles.is_approved = ?)",
			models.RoleConsultant, false).
		Find(&users).Error
	if err != nil {
		return utils.RespondError(c, utils.StorageError("Failed to fetch pending consultants", err))
	}
	for i := range users {
		users[i].Password = ""
	}
	return c.JSON(users)
}

// ApproveConsultant flips the approval flag and alerts the consultant.
func ApproveConsultant(c *fiber.Ctx) error {
	id := c.Params("id")

	var user models.User
	err := db.DB.Where("id = ? AND role = ?", id, models.RoleConsultant).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.RespondError(c, utils.NotFoundError("Consultant not found"))
		}
		return utils.RespondError(c, utils.StorageError("Failed to fetch consultant", err))
	}

	result := db.DB.Model(&models.ConsultantProfile{}).
		Where("consultant_id = ?", user.ID).
		Update("is_approved", true)
	if result.Error != nil {
		return utils.RespondError(c, utils.StorageError("Failed to approve consultant", result.Error))
	}
	if result.RowsAffected == 0 {
		return utils.RespondError(c, utils.ConflictError("Consultant has not saved a profile yet"))
	}

	if err := utils.Notify(db.DB, user.ID, models.NotifyAlert, "Your consultant application was approved", ""); err != nil {
		utils.GetLogger().Warn("approval notification failed", zap.Uint("consultant_id", user.ID), zap.Error(err))
	}

	redis.InvalidateViews(redis.ConsultantListView())
	return c.JSON(fiber.Map{"approved": true})
}

// RejectConsultant archives and removes a pending consultant in one
// transaction: the archival record is inserted, then every dependent table is
// cleared children-first, with the account row deleted last. A failure at any
// step rolls everything back, so a live account and an archival record can
// never coexist.
func RejectConsultant(c *fiber.Ctx) error {
	id := c.Params("id")

	type RejectInput struct {
		Reason string `json:"reason"`
	}
	input := new(RejectInput)
	if err := c.BodyParser(input); err != nil && len(c.Body()) > 0 {
		return utils.RespondError(c, utils.ValidationError("Cannot parse JSON"))
	}

	err := db.DB.Transaction(func(tx *gorm.DB) error {
		var user models.User
		err := tx.Preload("Profile").
			Where("id = ? AND role = ?", id, models.RoleConsultant).
			First(&user).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return utils.NotFoundError("Consultant not found")
			}
			return utils.StorageError("Failed to fetch consultant", err)
		}

		// Rejection is a pre-approval path only. An active consultant has
		// clients depending on live rows; rejecting them is a different
		// product operation that does not exist yet.
		if user.Profile != nil && user.Profile.IsApproved {
			return utils.ConflictError("Cannot reject an approved consultant")
		}

		snapshot, err := json.Marshal(user)
		if err != nil {
			return utils.StorageError("Failed to snapshot account", err)
		}
		record := models.RejectedConsultantRecord{
			ConsultantID: user.ID,
			Email:        user.Email,
			Name:         user.Name,
			Reason:       input.Reason,
			Snapshot:     models.JSONSnapshot(snapshot),
			RejectedAt:   time.Now(),
		}
		if err := tx.Create(&record).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return utils.ConflictError("Consultant was already rejected")
			}
			return utils.StorageError("Failed to create rejection record", err)
		}

		// Children before parents, account last. Correct whether or not the
		// database enforces referential integrity.
		deletions := []struct {
			model interface{}
			where string
		}{
			{&models.Qualification{}, "consultant_id = ?"},
			{&models.WeeklySchedule{}, "consultant_id = ?"},
			{&models.Certification{}, "consultant_id = ?"},
			{&models.Appointment{}, "consultant_id = ?"},
			{&models.ConsultantProfile{}, "consultant_id = ?"},
		}
		for _, d := range deletions {
			if err := tx.Unscoped().Where(d.where, user.ID).Delete(d.model).Error; err != nil {
				return utils.StorageError("Failed to delete consultant data", err)
			}
		}
		if err := tx.Unscoped().Delete(&models.User{}, user.ID).Error; err != nil {
			return utils.StorageError("Failed to delete consultant account", err)
		}
		return nil
	})
	if err != nil {
		return utils.RespondError(c, err)
	}

	redis.InvalidateViews(redis.ConsultantListView())
	return c.JSON(fiber.Map{"rejected": true})
}
