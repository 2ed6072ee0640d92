package beneficiaryController

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"scholarship/database"
	"scholarship/middleware"
	"scholarship/models"
	"scholarship/storage"
	beneficiaryValidator "scholarship/validators/beneficiary"
)

// Register handles the multipart beneficiary registration: every present file
// slot is uploaded to object storage concurrently, then the document,
// beneficiary and academic records are written in that order inside a single
// transaction, each write using the previous write's generated id.
func Register(c *fiber.Ctx) error {
	data, ok := c.Locals("validatedRegistration").(*beneficiaryValidator.RegistrationData)
	if !ok {
		return middleware.MsgResponse(c, fiber.StatusBadRequest, "Invalid request data!")
	}

	userId, _ := c.Locals("userId").(uint)

	ctx := c.Context()
	urls, err := storage.UploadFields(ctx, storage.Client, "beneficiary", data.Files)
	if err != nil {
		log.Printf("Registration failed: document upload error: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Server error during registration or file upload")
	}

	var beneficiary models.BeneficiaryRegistration

	err = database.Database.Db.Transaction(func(tx *gorm.DB) error {
		document := models.BeneficiaryDocument{}
		for fieldName, url := range urls {
			document.SetSlot(fieldName, url)
		}
		if err := tx.Create(&document).Error; err != nil {
			return err
		}

		beneficiary = models.BeneficiaryRegistration{
			FirstName:          data.FirstName,
			MiddleName:         data.MiddleName,
			LastName:           data.LastName,
			MotherName:         data.MotherName,
			DOB:                data.DOB,
			Gender:             data.Gender,
			MobileNumber:       data.MobileNumber,
			Email:              data.Email,
			Address:            data.Address,
			City:               data.City,
			State:              data.State,
			PinCode:            data.PinCode,
			Caste:              data.Caste,
			SubCaste:           data.SubCaste,
			Category:           data.Category,
			Religion:           data.Religion,
			Orphan:             data.Orphan,
			PhysicallyDisabled: data.PhysicallyDisabled,
			DocumentID:         document.ID,
			UserID:             userId,
		}
		if err := tx.Create(&beneficiary).Error; err != nil {
			return err
		}

		academic := models.AcademicDetails{
			AcademicField:              data.AcademicField,
			AcademicYear:               data.AcademicYear,
			CourseName:                 data.CourseName,
			CollegeName:                data.CollegeName,
			LastAcademicYearPercentage: data.LastAcademicYearPercentage,
			Hobbies:                    data.Hobbies,
			BeneficiaryID:              beneficiary.ID,
		}
		return tx.Create(&academic).Error
	})
	if err != nil {
		log.Printf("Registration failed: %v", err)
		// The transaction rolled back; remove the orphaned uploads.
		storage.DeleteAll(ctx, storage.Client, urls)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Server error during registration or file upload")
	}

	return middleware.DataResponse(c, fiber.StatusCreated, "Beneficiary registered successfully!", beneficiary)
}
