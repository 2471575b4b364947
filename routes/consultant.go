package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/sazid-zero/ConsultBook-sub001/controllers"
	"github.com/sazid-zero/ConsultBook-sub001/controllers/consultant"
	"github.com/sazid-zero/ConsultBook-sub001/middleware"
	"github.com/sazid-zero/ConsultBook-sub001/models"
)

// SetupConsultantRoutes configures all consultant related routes
func SetupConsultantRoutes(app *fiber.App) {
	group := app.Group("/consultant",
		middleware.Protected(), middleware.RequireRole(models.RoleConsultant))

	group.Get("/profile", consultant.GetMyProfile)
	group.Put("/profile", consultant.UpsertMyProfile)
	group.Post("/profile/photo", consultant.UploadProfilePhoto)

	group.Get("/schedule", consultant.GetWeeklySchedule)
	group.Put("/schedule", consultant.SaveWeeklySchedule)

	group.Get("/appointments", consultant.ListMyAppointments)
	group.Get("/appointments/:id", controllers.GetAppointment)
	group.Post("/appointments/:id/cancel", controllers.CancelAppointment)
	group.Post("/appointments/:id/reschedule", controllers.RescheduleAppointment)
	group.Post("/appointments/:id/complete", consultant.CompleteAppointment)

	group.Get("/workshops", consultant.ListMyWorkshops)
	group.Post("/workshops", consultant.CreateWorkshop)
	group.Patch("/workshops/:id", consultant.UpdateWorkshop)
	group.Delete("/workshops/:id", consultant.DeleteWorkshop)

	group.Get("/credentials", consultant.ListCredentials)
	group.Post("/credentials/qualifications", consultant.AddQualification)
	group.Delete("/credentials/qualifications/:id", consultant.DeleteQualification)
	group.Post("/credentials/certifications", consultant.AddCertification)

	group.Get("/dashboard", consultant.GetDashboardOverview)
	group.Get("/timeline", consultant.GetTimeline)
}
