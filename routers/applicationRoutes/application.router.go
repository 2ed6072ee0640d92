package applicationRoutes

import (
	"github.com/gofiber/fiber/v2"

	applicationController "scholarship/controllers/application"
	"scholarship/middleware"
	applicationValidator "scholarship/validators/application"
)

func SetupApplicationRoutes(app *fiber.App) {
	applicationGroup := app.Group("/api/applications", middleware.JWTMiddleware)

	applicationGroup.Post("/school-fees", applicationValidator.SchoolFees(), applicationController.SchoolFees)
	applicationGroup.Post("/travel-expenses", applicationValidator.TravelExpenses(), applicationController.TravelExpenses)
	applicationGroup.Post("/study-books", applicationValidator.StudyBooks(), applicationController.StudyBooks)
	applicationGroup.Get("/my-applications", applicationController.MyApplications)
}
