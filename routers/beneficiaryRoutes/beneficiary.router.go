package beneficiaryRoutes

import (
	"github.com/gofiber/fiber/v2"

	beneficiaryController "scholarship/controllers/beneficiary"
	"scholarship/middleware"
	beneficiaryValidator "scholarship/validators/beneficiary"
)

func SetupBeneficiaryRoutes(app *fiber.App) {
	// Registration is open to the public; a logged-in student's token links
	// the record to their account.
	app.Post("/api/beneficiary-register",
		middleware.OptionalJWTMiddleware,
		beneficiaryValidator.Register(),
		beneficiaryController.Register,
	)
}
