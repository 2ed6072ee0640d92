package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"scholarship/config"
	"scholarship/database"
	adminRoutes "scholarship/routers/adminRoutes"
	applicationRoutes "scholarship/routers/applicationRoutes"
	authRoutes "scholarship/routers/authRoutes"
	beneficiaryRoutes "scholarship/routers/beneficiaryRoutes"
	"scholarship/storage"
	"scholarship/utils"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	if err := storage.Init(); err != nil {
		log.Fatalf("Failed to connect to object storage: %v", err)
	}

	app := fiber.New(fiber.Config{
		BodyLimit: 50 * 1024 * 1024, // document uploads
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",
		AllowHeaders: "Content-Type,x-auth-token",
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	authRoutes.SetupAuthRoutes(app)
	beneficiaryRoutes.SetupBeneficiaryRoutes(app)
	applicationRoutes.SetupApplicationRoutes(app)
	adminRoutes.SetupAdminRoutes(app)

	utils.InitializeApplicationScheduler()

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
