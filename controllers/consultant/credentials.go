package consultant

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/sazid-zero/ConsultBook-sub001/db"
	"github.com/sazid-zero/ConsultBook-sub001/models"
	"github.com/sazid-zero/ConsultBook-sub001/utils"
)

// ListCredentials returns the consultant's qualifications and certifications.
func ListCredentials(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User ID not found in context",
		})
	}

	var qualifications []models.Qualification
	if err := db.DB.Where("consultant_id = ?", userID).Find(&qualifications).Error; err != nil {
		return utils.RespondError(c, utils.StorageError("Failed to fetch qualifications", err))
	}
	var certifications []models.Certification
	if err := db.DB.Where("consultant_id = ?", userID).Find(&certifications).Error; err != nil {
		return utils.RespondError(c, utils.StorageError("Failed to fetch certifications", err))
	}

	return c.JSON(fiber.Map{
		"qualifications": qualifications,
		"certifications": certifications,
	})
}

// AddQualification records a credential on the consultant's application.
func AddQualification(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User ID not found in context",
		})
	}

	qualification := new(models.Qualification)
	if err := c.BodyParser(qualification); err != nil {
		return utils.RespondError(c, utils.ValidationError("Cannot parse JSON"))
	}
	if qualification.Title == "" {
		return utils.RespondError(c, utils.ValidationError("Title is required"))
	}
	qualification.ConsultantID = userID

	if err := db.DB.Create(qualification).Error; err != nil {
		return utils.RespondError(c, utils.StorageError("Failed to create qualification", err))
	}
	return c.Status(fiber.StatusCreated).JSON(qualification)
}

// AddCertification uploads the certificate document to the media host and
// records the returned URL.
func AddCertification(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User ID not found in context",
		})
	}

	certification := models.Certification{
		ConsultantID: userID,
		Name:         c.FormValue("name"),
		Issuer:       c.FormValue("issuer"),
	}
	if certification.Name == "" {
		return utils.RespondError(c, utils.ValidationError("Name is required"))
	}

	if fileHeader, err := c.FormFile("document"); err == nil {
		file, err := fileHeader.Open()
		if err != nil {
			return utils.RespondError(c, utils.ValidationError("Cannot open document"))
		}
		defer file.Close()

		url, err := utils.UploadToCloudinary(file,
			fmt.Sprintf("certification-%d-%s", userID, certification.Name), "certifications")
		if err != nil {
			return utils.RespondError(c, err)
		}
		certification.DocumentURL = url
	}

	if err := db.DB.Create(&certification).Error; err != nil {
		return utils.RespondError(c, utils.StorageError("Failed to create certification", err))
	}
	return c.Status(fiber.StatusCreated).JSON(certification)
}

// DeleteQualification removes one of the consultant's own qualifications.
func DeleteQualification(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User ID not found in context",
		})
	}

	id := c.Params("id")
	var qualification models.Qualification
	if err := db.DB.First(&qualification, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.RespondError(c, utils.NotFoundError("Qualification not found"))
		}
		return utils.RespondError(c, utils.StorageError("Failed to fetch qualification", err))
	}
	if qualification.ConsultantID != userID {
		return utils.RespondError(c, utils.ValidationError("Not your qualification"))
	}
	if err := db.DB.Delete(&qualification).Error; err != nil {
		return utils.RespondError(c, utils.StorageError("Failed to delete qualification", err))
	}
	return c.SendStatus(fiber.StatusNoContent)
}
