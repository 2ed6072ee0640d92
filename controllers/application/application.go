package applicationController

import (
	"log"
	"mime/multipart"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"

	"scholarship/database"
	"scholarship/middleware"
	"scholarship/models"
	"scholarship/storage"
	applicationValidator "scholarship/validators/application"
)

func documentsMap(urls map[string]string) datatypes.JSONMap {
	documents := datatypes.JSONMap{}
	for fieldName, url := range urls {
		documents[fieldName] = url
	}
	return documents
}

// SchoolFees creates a school fees application for the authenticated user.
// All attachments are uploaded first; the record is only written when every
// upload succeeded.
func SchoolFees(c *fiber.Ctx) error {
	data, ok := c.Locals("validatedSchoolFees").(*applicationValidator.SchoolFeesData)
	if !ok {
		return middleware.MsgResponse(c, fiber.StatusBadRequest, "Invalid request data!")
	}
	userId, _ := c.Locals("userId").(uint)

	urls, err := storage.UploadFields(c.Context(), storage.Client, "applications/school-fees", data.Files)
	if err != nil {
		log.Printf("School fees application failed: upload error: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Server error during registration or file upload")
	}

	application := models.Application{
		UserID:          userId,
		ApplicationType: models.ApplicationSchoolFees,
		Status:          models.StatusPending,
		Documents:       documentsMap(urls),
	}

	if err := database.Database.Db.Create(&application).Error; err != nil {
		log.Printf("School fees application failed: %v", err)
		storage.DeleteAll(c.Context(), storage.Client, urls)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Server error during registration or file upload")
	}

	return middleware.DataResponse(c, fiber.StatusCreated, "School fees application submitted successfully!", application)
}

// TravelExpenses creates a travel expenses application for the authenticated user.
func TravelExpenses(c *fiber.Ctx) error {
	data, ok := c.Locals("validatedTravelExpenses").(*applicationValidator.TravelExpensesData)
	if !ok {
		return middleware.MsgResponse(c, fiber.StatusBadRequest, "Invalid request data!")
	}
	userId, _ := c.Locals("userId").(uint)

	files := map[string]*multipart.FileHeader{}
	if data.IDCard != nil {
		files["idCard"] = data.IDCard
	}

	urls, err := storage.UploadFields(c.Context(), storage.Client, "applications/travel-expenses", files)
	if err != nil {
		log.Printf("Travel expenses application failed: upload error: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Server error during registration or file upload")
	}

	application := models.Application{
		UserID:           userId,
		ApplicationType:  models.ApplicationTravelExpenses,
		Status:           models.StatusPending,
		Documents:        documentsMap(urls),
		ResidencePlace:   data.ResidencePlace,
		DestinationPlace: data.DestinationPlace,
		Distance:         data.Distance,
		TravelMode:       data.TravelMode,
		AidRequired:      data.AidRequired,
	}

	if err := database.Database.Db.Create(&application).Error; err != nil {
		log.Printf("Travel expenses application failed: %v", err)
		storage.DeleteAll(c.Context(), storage.Client, urls)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Server error during registration or file upload")
	}

	return middleware.DataResponse(c, fiber.StatusCreated, "Travel expenses application submitted successfully!", application)
}

// StudyBooks creates a study books application for the authenticated user.
func StudyBooks(c *fiber.Ctx) error {
	data, ok := c.Locals("validatedStudyBooks").(*applicationValidator.StudyBooksRequest)
	if !ok {
		return middleware.MsgResponse(c, fiber.StatusBadRequest, "Invalid request data!")
	}
	userId, _ := c.Locals("userId").(uint)

	application := models.Application{
		UserID:          userId,
		ApplicationType: models.ApplicationStudyBooks,
		Status:          models.StatusPending,
		Documents:       datatypes.JSONMap{},
		YearOfStudy:     data.YearOfStudy,
		Field:           data.Field,
		BooksRequired:   data.BooksRequired,
		Standard:        data.Standard,
		Stream:          data.Stream,
		Medium:          data.Medium,
	}

	if err := database.Database.Db.Create(&application).Error; err != nil {
		log.Printf("Study books application failed: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Server error")
	}

	return middleware.DataResponse(c, fiber.StatusCreated, "Study books application submitted successfully!", application)
}

// MyApplications lists the authenticated user's applications, newest first.
func MyApplications(c *fiber.Ctx) error {
	userId, _ := c.Locals("userId").(uint)

	var applications []models.Application
	if err := database.Database.Db.
		Where("user_id = ?", userId).
		Order("created_at desc").
		Find(&applications).Error; err != nil {
		log.Printf("Error fetching applications for user %d: %v", userId, err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Server error")
	}

	return c.Status(fiber.StatusOK).JSON(applications)
}
