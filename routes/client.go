package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/sazid-zero/ConsultBook-sub001/controllers"
	"github.com/sazid-zero/ConsultBook-sub001/controllers/client"
	"github.com/sazid-zero/ConsultBook-sub001/middleware"
	"github.com/sazid-zero/ConsultBook-sub001/models"
)

// SetupClientRoutes configures all client related routes
func SetupClientRoutes(app *fiber.App) {
	// Browsing is open; booking and reviewing require a client account.
	browse := app.Group("/consultants")
	browse.Get("/", client.ListConsultants)
	browse.Get("/:id/availability", client.GetConsultantAvailability)
	browse.Get("/:id/slots", client.GetConsultantOpenSlots)
	browse.Get("/:id/reviews", client.ListConsultantReviews)

	workshops := app.Group("/workshops")
	workshops.Get("/", client.ListWorkshops)
	workshops.Post("/:id/register",
		middleware.Protected(), middleware.RequireRole(models.RoleClient),
		client.RegisterForWorkshop)

	clientGroup := app.Group("/client",
		middleware.Protected(), middleware.RequireRole(models.RoleClient))
	clientGroup.Post("/appointments", client.BookAppointment)
	clientGroup.Get("/appointments/:id", controllers.GetAppointment)
	clientGroup.Post("/appointments/:id/cancel", controllers.CancelAppointment)
	clientGroup.Post("/appointments/:id/reschedule", controllers.RescheduleAppointment)
	clientGroup.Get("/timeline", client.GetTimeline)
	clientGroup.Post("/reviews", client.CreateReview)
	clientGroup.Patch("/reviews/:id", client.UpdateReview)
	clientGroup.Delete("/reviews/:id", client.DeleteReview)
}
