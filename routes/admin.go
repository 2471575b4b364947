package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/sazid-zero/ConsultBook-sub001/controllers/admin"
	"github.com/sazid-zero/ConsultBook-sub001/middleware"
	"github.com/sazid-zero/ConsultBook-sub001/models"
)

// SetupAdminRoutes configures all admin related routes
func SetupAdminRoutes(app *fiber.App) {
	group := app.Group("/admin",
		middleware.Protected(), middleware.RequireRole(models.RoleAdmin))

	group.Get("/consultants/pending", admin.ListPendingConsultants)
	group.Post("/consultants/:id/approve", admin.ApproveConsultant)
	group.Post("/consultants/:id/reject", admin.RejectConsultant)
}
