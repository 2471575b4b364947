package consultant

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/sazid-zero/ConsultBook-sub001/db"
	"github.com/sazid-zero/ConsultBook-sub001/models"
	"github.com/sazid-zero/ConsultBook-sub001/redis"
	"github.com/sazid-zero/ConsultBook-sub001/utils"
)

// GetMyProfile returns the consultant's own profile.
func GetMyProfile(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User ID not found in context",
		})
	}

	var profile models.ConsultantProfile
	err := db.DB.Where("consultant_id = ?", userID).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.RespondError(c, utils.NotFoundError("Profile not saved yet"))
		}
		return utils.RespondError(c, utils.StorageError("Failed to fetch profile", err))
	}
	return c.JSON(profile)
}

// UpsertMyProfile creates or updates the consultant's profile. A brand-new
// consultant has no profile row until the first save. The write contract
// excludes approval and the aggregate rating fields.
func UpsertMyProfile(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User ID not found in context",
		})
	}

	input := new(models.ProfileUpdate)
	if err := c.BodyParser(input); err != nil {
		return utils.RespondError(c, utils.ValidationError("Cannot parse JSON"))
	}
	if input.HourlyRate < 0 {
		return utils.RespondError(c, utils.ValidationError("Hourly rate cannot be negative"))
	}

	var profile models.ConsultantProfile
	err := db.DB.Transaction(func(tx *gorm.DB) error {
		err := tx.Where("consultant_id = ?", userID).First(&profile).Error
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.StorageError("Failed to fetch profile", err)
		}

		profile.ConsultantID = userID
		profile.Bio = input.Bio
		profile.HourlyRate = input.HourlyRate
		profile.Specializations = input.Specializations
		profile.Address = input.Address
		profile.City = input.City
		profile.Country = input.Country
		if input.IsPublished != nil {
			profile.IsPublished = *input.IsPublished
		}
		if input.IsAvailable != nil {
			profile.IsAvailable = *input.IsAvailable
		}

		if err := tx.Save(&profile).Error; err != nil {
			return utils.StorageError("Failed to save profile", err)
		}
		return nil
	})
	if err != nil {
		return utils.RespondError(c, err)
	}

	redis.InvalidateViews(redis.ConsultantListView(), redis.BookingPageView(userID))
	return c.JSON(profile)
}

// UploadProfilePhoto sends the file to the media host and stores the URL.
func UploadProfilePhoto(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User ID not found in context",
		})
	}

	fileHeader, err := c.FormFile("photo")
	if err != nil {
		return utils.RespondError(c, utils.ValidationError("Missing photo file"))
	}
	file, err := fileHeader.Open()
	if err != nil {
		return utils.RespondError(c, utils.ValidationError("Cannot open photo file"))
	}
	defer file.Close()

	url, err := utils.UploadToCloudinary(file, fmt.Sprintf("consultant-%d", userID), "profile_photos")
	if err != nil {
		return utils.RespondError(c, err)
	}

	if err := db.DB.Model(&models.User{}).Where("id = ?", userID).Update("photo_url", url).Error; err != nil {
		return utils.RespondError(c, utils.StorageError("Failed to store photo URL", err))
	}

	redis.InvalidateViews(redis.ConsultantListView())
	return c.JSON(fiber.Map{"photo_url": url})
}
