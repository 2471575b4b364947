package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/sazid-zero/ConsultBook-sub001/controllers"
	"github.com/sazid-zero/ConsultBook-sub001/middleware"
)

// SetupNotificationRoutes configures all notification related routes
func SetupNotificationRoutes(app *fiber.App) {
	group := app.Group("/notifications", middleware.Protected())
	group.Get("/", controllers.ListNotifications)
	group.Post("/read-all", controllers.MarkAllNotificationsRead)
	group.Post("/:id/read", controllers.MarkNotificationRead)
}
