package adminRoutes

import (
	"github.com/gofiber/fiber/v2"

	adminController "scholarship/controllers/admin"
	"scholarship/middleware"
	adminValidator "scholarship/validators/admin"
)

func SetupAdminRoutes(app *fiber.App) {
	adminGroup := app.Group("/api/admin", middleware.JWTMiddleware, middleware.AdminMiddleware)

	adminGroup.Get("/users", adminController.UserList)
	adminGroup.Get("/users/:id", adminController.UserDetail)
	adminGroup.Post("/create-student-account", adminValidator.CreateAccount(), adminController.CreateStudentAccount)
	adminGroup.Post("/create-student-registration", adminValidator.CreateRegistration(), adminController.CreateStudentRegistration)
	adminGroup.Post("/create-school-fees-application", adminValidator.CreateSchoolFees(), adminController.CreateSchoolFeesApplication)
	adminGroup.Post("/create-travel-expenses-application", adminValidator.CreateTravelExpenses(), adminController.CreateTravelExpensesApplication)
	adminGroup.Post("/create-study-books-application", adminValidator.CreateStudyBooks(), adminController.CreateStudyBooksApplication)
	adminGroup.Put("/update-student-account/:id", adminValidator.UpdateAccount(), adminController.UpdateStudentAccount)
	adminGroup.Delete("/delete-student-account/:id", adminController.DeleteStudentAccount)
	adminGroup.Get("/applications", adminController.ApplicationList)
	adminGroup.Put("/applications/:id/status", adminValidator.UpdateStatus(), adminController.UpdateApplicationStatus)
}
