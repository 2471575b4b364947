package controllers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/sazid-zero/ConsultBook-sub001/config"
	"github.com/sazid-zero/ConsultBook-sub001/db"
	"github.com/sazid-zero/ConsultBook-sub001/models"
	"github.com/sazid-zero/ConsultBook-sub001/utils"
)

// Register handles account registration. The role is fixed at creation:
// client or consultant. Admin accounts are seeded, never registered.
func Register(c *fiber.Ctx) error {
	type RegisterInput struct {
		Name     string      `json:"name"`
		Email    string      `json:"email"`
		Password string      `json:"password"`
		Role     models.Role `json:"role"`
		Phone    string      `json:"phone"`
	}

	input := new(RegisterInput)
	if err := c.BodyParser(input); err != nil {
		return utils.RespondError(c, utils.ValidationError("Cannot parse JSON"))
	}

	if input.Email == "" || input.Password == "" || input.Name == "" {
		return utils.RespondError(c, utils.ValidationError("Missing required fields"))
	}
	if input.Role == "" {
		input.Role = models.RoleClient
	}
	if input.Role != models.RoleClient && input.Role != models.RoleConsultant {
		return utils.RespondError(c, utils.ValidationError("Role must be client or consultant"))
	}

	var existingUser models.User
	if db.DB.Where("email = ?", input.Email).First(&existingUser).RowsAffected > 0 {
		return utils.RespondError(c, utils.ConflictError("User with this email already exists"))
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return utils.RespondError(c, utils.StorageError("Failed to hash password", err))
	}

	user := models.User{
		Name:     input.Name,
		Email:    input.Email,
		Password: string(hashedPassword),
		Role:     input.Role,
		Phone:    input.Phone,
	}
	if err := db.DB.Create(&user).Error; err != nil {
		// A concurrent registration can slip past the pre-check and land on
		// the email unique constraint.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return utils.RespondError(c, utils.ConflictError("User with this email already exists"))
		}
		return utils.RespondError(c, utils.StorageError("Failed to create user", err))
	}

	user.Password = ""
	return c.Status(fiber.StatusCreated).JSON(user)
}

// Login handles user authentication
func Login(c *fiber.Ctx) error {
	type LoginInput struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	input := new(LoginInput)
	if err := c.BodyParser(input); err != nil {
		return utils.RespondError(c, utils.ValidationError("Cannot parse JSON"))
	}

	var user models.User
	if db.DB.Where("email = ?", input.Email).First(&user).RowsAffected == 0 {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid credentials",
		})
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid credentials",
		})
	}

	token, err := issueToken(user)
	if err != nil {
		return utils.RespondError(c, utils.StorageError("Failed to issue token", err))
	}

	user.Password = ""
	return c.JSON(fiber.Map{
		"token": token,
		"user":  user,
	})
}

func issueToken(user models.User) (string, error) {
	secret := config.AppConfig.JWTSecret
	if secret == "" {
		secret = "solid_secret_key"
	}

	claims := jwt.MapClaims{
		"id":   user.ID,
		"role": string(user.Role),
		"exp":  time.Now().Add(72 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Me returns the authenticated account.
func Me(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User ID not found in context",
		})
	}

	var user models.User
	if err := db.DB.Preload("Profile").First(&user, userID).Error; err != nil {
		return utils.RespondError(c, utils.NotFoundError("User not found"))
	}
	user.Password = ""
	return c.JSON(user)
}
