package authRoutes

import (
	"github.com/gofiber/fiber/v2"

	authController "scholarship/controllers/auth"
	authValidator "scholarship/validators/auth"
)

func SetupAuthRoutes(app *fiber.App) {
	authGroup := app.Group("/api/auth")

	authGroup.Post("/register", authValidator.Register(), authController.Register)
	authGroup.Post("/login", authValidator.Login(), authController.Login)
}
