package client

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/sazid-zero/ConsultBook-sub001/db"
	"github.com/sazid-zero/ConsultBook-sub001/models"
	"github.com/sazid-zero/ConsultBook-sub001/redis"
	"github.com/sazid-zero/ConsultBook-sub001/utils"
)

// CreateReview adds a review for a completed appointment. The insert and the
// rating recompute share one transaction, keeping the profile aggregate
// consistent with the review rows.
func CreateReview(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User ID not found in context",
		})
	}

	type ReviewInput struct {
		AppointmentID uint   `json:"appointment_id"`
		Rating        int    `json:"rating"`
		Comment       string `json:"comment"`
	}
	input := new(ReviewInput)
	if err := c.BodyParser(input); err != nil {
		return utils.RespondError(c, utils.ValidationError("Cannot parse JSON"))
	}
	if input.Rating < 1 || input.Rating > 5 {
		return utils.RespondError(c, utils.ValidationError("Rating must be between 1 and 5"))
	}

	var review models.Review
	err := db.DB.Transaction(func(tx *gorm.DB) error {
		var appointment models.Appointment
		if err := tx.First(&appointment, input.AppointmentID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return utils.NotFoundError("Appointment not found")
			}
			return utils.StorageError("Failed to fetch appointment", err)
		}
		if appointment.ClientID != userID {
			return utils.ValidationError("You can only review your own appointments")
		}
		if appointment.Status != models.StatusCompleted {
			return utils.ValidationError("You can only review completed appointments")
		}

		review = models.Review{
			Rating:        input.Rating,
			Comment:       input.Comment,
			ConsultantID:  appointment.ConsultantID,
			ClientID:      userID,
			AppointmentID: appointment.ID,
		}
		if err := tx.Create(&review).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return utils.ConflictError("You have already reviewed this appointment")
			}
			return utils.StorageError("Failed to create review", err)
		}
		return utils.RecomputeConsultantRating(tx, review.ConsultantID)
	})
	if err != nil {
		return utils.RespondError(c, err)
	}

	redis.InvalidateViews(redis.ConsultantListView())
	return c.Status(fiber.StatusCreated).JSON(review)
}

// UpdateReview edits the rating/comment of the caller's own review and
// recomputes the consultant aggregate in the same transaction.
func UpdateReview(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User ID not found in context",
		})
	}

	type ReviewUpdate struct {
		Rating  int    `json:"rating"`
		Comment string `json:"comment"`
	}
	input := new(ReviewUpdate)
	if err := c.BodyParser(input); err != nil {
		return utils.RespondError(c, utils.ValidationError("Cannot parse JSON"))
	}
	if input.Rating < 1 || input.Rating > 5 {
		return utils.RespondError(c, utils.ValidationError("Rating must be between 1 and 5"))
	}

	id := c.Params("id")
	var review models.Review
	err := db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&review, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return utils.NotFoundError("Review not found")
			}
			return utils.StorageError("Failed to fetch review", err)
		}
		if review.ClientID != userID {
			return utils.ValidationError("You can only edit your own reviews")
		}

		review.Rating = input.Rating
		review.Comment = input.Comment
		if err := tx.Save(&review).Error; err != nil {
			return utils.StorageError("Failed to update review", err)
		}
		return utils.RecomputeConsultantRating(tx, review.ConsultantID)
	})
	if err != nil {
		return utils.RespondError(c, err)
	}

	redis.InvalidateViews(redis.ConsultantListView())
	return c.JSON(review)
}

// DeleteReview removes the caller's own review and recomputes the aggregate.
func DeleteReview(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User ID not found in context",
		})
	}

	id := c.Params("id")
	err := db.DB.Transaction(func(tx *gorm.DB) error {
		var review models.Review
		if err := tx.First(&review, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return utils.NotFoundError("Review not found")
			}
			return utils.StorageError("Failed to fetch review", err)
		}
		if review.ClientID != userID {
			return utils.ValidationError("You can only delete your own reviews")
		}
		// Hard delete: a soft-deleted row would keep appointment_id in the
		// unique index and block re-reviewing the appointment.
		if err := tx.Unscoped().Delete(&review).Error; err != nil {
			return utils.StorageError("Failed to delete review", err)
		}
		return utils.RecomputeConsultantRating(tx, review.ConsultantID)
	})
	if err != nil {
		return utils.RespondError(c, err)
	}

	redis.InvalidateViews(redis.ConsultantListView())
	return c.SendStatus(fiber.StatusNoContent)
}

// ListConsultantReviews retrieves all reviews for a specific consultant
func ListConsultantReviews(c *fiber.Ctx) error {
	consultantID := c.Params("id")

	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "10"))
	offset := (page - 1) * limit

	var reviews []models.Review
	err := db.DB.Preload("Client", func(db *gorm.DB) *gorm.DB {
		return db.Select("id, name, created_at")
	}).
		Where("consultant_id = ?", consultantID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&reviews).Error
	if err != nil {
		return utils.RespondError(c, utils.StorageError("Failed to fetch reviews", err))
	}

	var count int64
	db.DB.Model(&models.Review{}).Where("consultant_id = ?", consultantID).Count(&count)

	return c.JSON(fiber.Map{
		"reviews": reviews,
		"total":   count,
		"page":    page,
		"limit":   limit,
	})
}
