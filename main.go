package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"github.com/sazid-zero/ConsultBook-sub001/config"
	"github.com/sazid-zero/ConsultBook-sub001/cron"
	"github.com/sazid-zero/ConsultBook-sub001/db"
	"github.com/sazid-zero/ConsultBook-sub001/redis"
	"github.com/sazid-zero/ConsultBook-sub001/routes"
	"github.com/sazid-zero/ConsultBook-sub001/utils"
)

func main() {
	config.LoadConfig()
	utils.InitializeLogger()
	db.Init()
	redis.InitRedis()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("ConsultBook API")
	})
	routes.SetupAuthRoutes(app)
	routes.SetupClientRoutes(app)
	routes.SetupConsultantRoutes(app)
	routes.SetupAdminRoutes(app)
	routes.SetupNotificationRoutes(app)

	cron.StartCronJobs()

	if err := app.Listen(":" + config.AppConfig.AppPort); err != nil {
		log.Fatal(err)
	}
}
