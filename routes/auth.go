package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/sazid-zero/ConsultBook-sub001/controllers"
	"github.com/sazid-zero/ConsultBook-sub001/middleware"
)

// SetupAuthRoutes configures all auth related routes
func SetupAuthRoutes(app *fiber.App) {
	auth := app.Group("/auth")
	auth.Post("/register", controllers.Register)
	auth.Post("/login", controllers.Login)
	auth.Get("/me", middleware.Protected(), controllers.Me)
}
