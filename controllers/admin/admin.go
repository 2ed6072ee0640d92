package adminController

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"scholarship/config"
	"scholarship/database"
	"scholarship/middleware"
	"scholarship/models"
	"scholarship/utils"
	adminValidator "scholarship/validators/admin"
)

func parseDOB(value string) (time.Time, error) {
	if dob, err := time.Parse("2006-01-02", value); err == nil {
		return dob, nil
	}
	return time.Parse(time.RFC3339, value)
}

// UserList returns all student accounts.
func UserList(c *fiber.Ctx) error {
	var users []models.User
	if err := database.Database.Db.
		Where("role = ?", models.RoleUser).
		Order("created_at desc").
		Find(&users).Error; err != nil {
		log.Printf("Error fetching user list: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Server error")
	}

	return c.Status(fiber.StatusOK).JSON(users)
}

// UserDetail returns one user along with the linked registration, document,
// academic and application records.
func UserDetail(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.MsgResponse(c, fiber.StatusBadRequest, "Invalid user id!")
	}

	db := database.Database.Db

	var user models.User
	if err := db.First(&user, id).Error; err != nil {
		return middleware.MsgResponse(c, fiber.StatusNotFound, "User not found")
	}

	response := fiber.Map{"user": user}

	var registration models.BeneficiaryRegistration
	if err := db.Where("user_id = ?", user.ID).First(&registration).Error; err == nil {
		response["registration"] = registration

		var document models.BeneficiaryDocument
		if registration.DocumentID != 0 {
			if err := db.First(&document, registration.DocumentID).Error; err == nil {
				response["documents"] = document
			}
		}

		var academic models.AcademicDetails
		if err := db.Where("beneficiary_id = ?", registration.ID).First(&academic).Error; err == nil {
			response["academic"] = academic
		}
	}

	var applications []models.Application
	if err := db.Where("user_id = ?", user.ID).Order("created_at desc").Find(&applications).Error; err == nil {
		response["applications"] = applications
	}

	return c.Status(fiber.StatusOK).JSON(response)
}

// CreateStudentAccount creates a student (role user) account on behalf of an
// administrator.
func CreateStudentAccount(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedAccount").(*adminValidator.CreateAccountRequest)
	if !ok {
		return middleware.MsgResponse(c, fiber.StatusBadRequest, "Invalid request data!")
	}

	db := database.Database.Db

	if err := db.Where("username = ?", reqData.Username).First(&models.User{}).Error; err == nil {
		return middleware.MsgResponse(c, fiber.StatusBadRequest, "User already exists")
	} else if err != gorm.ErrRecordNotFound {
		log.Printf("Error checking existing user: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Server error")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(reqData.Password), config.AppConfig.SaltRound)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Server error")
	}

	user := models.User{
		Username: reqData.Username,
		Password: string(hashedPassword),
		Role:     models.RoleUser,
	}
	if err := db.Create(&user).Error; err != nil {
		log.Printf("Error creating student account: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Server error")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"msg":  "Student account created successfully",
		"user": user,
	})
}

// CreateStudentRegistration creates registration and academic records for an
// existing student account, without document uploads.
func CreateStudentRegistration(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedRegistration").(*adminValidator.CreateRegistrationRequest)
	if !ok {
		return middleware.MsgResponse(c, fiber.StatusBadRequest, "Invalid request data!")
	}

	db := database.Database.Db

	var user models.User
	if err := db.First(&user, reqData.UserID).Error; err != nil {
		return middleware.MsgResponse(c, fiber.StatusNotFound, "User not found")
	}

	dob, err := parseDOB(reqData.DOB)
	if err != nil {
		return middleware.MsgResponse(c, fiber.StatusBadRequest, "Date of birth must be in YYYY-MM-DD format!")
	}

	var registration models.BeneficiaryRegistration

	err = db.Transaction(func(tx *gorm.DB) error {
		registration = models.BeneficiaryRegistration{
			FirstName:          reqData.ApplicantName,
			MotherName:         reqData.MotherName,
			DOB:                dob,
			Gender:             reqData.Gender,
			MobileNumber:       reqData.MobileNumber,
			Email:              reqData.Email,
			Address:            reqData.Address,
			City:               reqData.VillageName,
			State:              reqData.State,
			PinCode:            reqData.PinCode,
			Caste:              reqData.Caste,
			Category:           reqData.Category,
			Religion:           reqData.Religion,
			Orphan:             reqData.Orphan,
			PhysicallyDisabled: reqData.Disabled,
			UserID:             user.ID,
		}
		if err := tx.Create(&registration).Error; err != nil {
			return err
		}

		academic := models.AcademicDetails{
			AcademicYear:  reqData.AcademicYear,
			CourseName:    reqData.CourseName,
			CollegeName:   reqData.CollegeName,
			BeneficiaryID: registration.ID,
		}
		return tx.Create(&academic).Error
	})
	if err != nil {
		log.Printf("Error creating student registration: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Server error")
	}

	return middleware.DataResponse(c, fiber.StatusCreated, "Registration created successfully!", registration)
}

// CreateSchoolFeesApplication creates a pending school fees application for a
// student.
func CreateSchoolFeesApplication(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedSchoolFees").(*adminValidator.CreateSchoolFeesRequest)
	if !ok {
		return middleware.MsgResponse(c, fiber.StatusBadRequest, "Invalid request data!")
	}

	application := models.Application{
		UserID:          reqData.UserID,
		ApplicationType: models.ApplicationSchoolFees,
		Status:          models.StatusPending,
		Amount:          reqData.Amount,
	}
	if err := database.Database.Db.Create(&application).Error; err != nil {
		log.Printf("Error creating school fees application: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Server error")
	}

	return middleware.DataResponse(c, fiber.StatusCreated, "School fees application created successfully!", application)
}

// CreateTravelExpensesApplication creates a pending travel expenses
// application for a student.
func CreateTravelExpensesApplication(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedTravelExpenses").(*adminValidator.CreateTravelExpensesRequest)
	if !ok {
		return middleware.MsgResponse(c, fiber.StatusBadRequest, "Invalid request data!")
	}

	application := models.Application{
		UserID:           reqData.UserID,
		ApplicationType:  models.ApplicationTravelExpenses,
		Status:           models.StatusPending,
		ResidencePlace:   reqData.ResidencePlace,
		DestinationPlace: reqData.DestinationPlace,
		Distance:         reqData.Distance,
		TravelMode:       reqData.TravelMode,
		AidRequired:      reqData.AidRequired,
	}
	if err := database.Database.Db.Create(&application).Error; err != nil {
		log.Printf("Error creating travel expenses application: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Server error")
	}

	return middleware.DataResponse(c, fiber.StatusCreated, "Travel expenses application created successfully!", application)
}

// CreateStudyBooksApplication creates a pending study books application for a
// student.
func CreateStudyBooksApplication(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedStudyBooks").(*adminValidator.CreateStudyBooksRequest)
	if !ok {
		return middleware.MsgResponse(c, fiber.StatusBadRequest, "Invalid request data!")
	}

	application := models.Application{
		UserID:          reqData.UserID,
		ApplicationType: models.ApplicationStudyBooks,
		Status:          models.StatusPending,
		YearOfStudy:     reqData.YearOfStudy,
		Field:           reqData.Field,
		BooksRequired:   reqData.BooksRequired,
		Standard:        reqData.Standard,
		Stream:          reqData.Stream,
		Medium:          reqData.Medium,
	}
	if err := database.Database.Db.Create(&application).Error; err != nil {
		log.Printf("Error creating study books application: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Server error")
	}

	return middleware.DataResponse(c, fiber.StatusCreated, "Study books application created successfully!", application)
}

// UpdateStudentAccount applies a selective patch: only supplied fields
// overwrite on the user, registration and academic records.
func UpdateStudentAccount(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.MsgResponse(c, fiber.StatusBadRequest, "Invalid user id!")
	}

	reqData, ok := c.Locals("validatedUpdate").(*adminValidator.UpdateAccountRequest)
	if !ok {
		return middleware.MsgResponse(c, fiber.StatusBadRequest, "Invalid request data!")
	}

	db := database.Database.Db

	var user models.User
	if err := db.First(&user, id).Error; err != nil {
		return middleware.MsgResponse(c, fiber.StatusNotFound, "User not found")
	}

	userUpdates := map[string]interface{}{}
	if reqData.Username != nil && *reqData.Username != "" {
		userUpdates["username"] = *reqData.Username
	}
	if reqData.Password != nil && *reqData.Password != "" {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(*reqData.Password), config.AppConfig.SaltRound)
		if err != nil {
			log.Printf("Error hashing password: %v", err)
			return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Server error")
		}
		userUpdates["password"] = string(hashedPassword)
	}

	registrationUpdates := map[string]interface{}{}
	setString := func(column string, value *string) {
		if value != nil {
			registrationUpdates[column] = *value
		}
	}
	// applicantName/villageName are the edit form's spellings; the explicit
	// column names win when both are supplied.
	setString("first_name", reqData.ApplicantName)
	setString("first_name", reqData.FirstName)
	setString("middle_name", reqData.MiddleName)
	setString("last_name", reqData.LastName)
	setString("mother_name", reqData.MotherName)
	setString("gender", reqData.Gender)
	setString("mobile_number", reqData.MobileNumber)
	setString("email", reqData.Email)
	setString("address", reqData.Address)
	setString("city", reqData.VillageName)
	setString("city", reqData.City)
	setString("state", reqData.State)
	setString("pin_code", reqData.PinCode)
	setString("caste", reqData.Caste)
	setString("sub_caste", reqData.SubCaste)
	setString("category", reqData.Category)
	setString("religion", reqData.Religion)
	if reqData.DOB != nil && *reqData.DOB != "" {
		dob, err := parseDOB(*reqData.DOB)
		if err != nil {
			return middleware.MsgResponse(c, fiber.StatusBadRequest, "Date of birth must be in YYYY-MM-DD format!")
		}
		registrationUpdates["dob"] = dob
	}
	if reqData.Orphan != nil {
		registrationUpdates["orphan"] = *reqData.Orphan
	}
	if reqData.Disabled != nil {
		registrationUpdates["physically_disabled"] = *reqData.Disabled
	}
	if reqData.PhysicallyDisabled != nil {
		registrationUpdates["physically_disabled"] = *reqData.PhysicallyDisabled
	}

	academicUpdates := map[string]interface{}{}
	if reqData.AcademicField != nil {
		academicUpdates["academic_field"] = *reqData.AcademicField
	}
	if reqData.AcademicYear != nil {
		academicUpdates["academic_year"] = *reqData.AcademicYear
	}
	if reqData.CourseName != nil {
		academicUpdates["course_name"] = *reqData.CourseName
	}
	if reqData.CollegeName != nil {
		academicUpdates["college_name"] = *reqData.CollegeName
	}
	if reqData.LastAcademicYearPercentage != nil {
		academicUpdates["last_academic_year_percentage"] = *reqData.LastAcademicYearPercentage
	}
	if reqData.Hobbies != nil {
		academicUpdates["hobbies"] = *reqData.Hobbies
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if len(userUpdates) > 0 {
			if err := tx.Model(&user).Updates(userUpdates).Error; err != nil {
				return err
			}
		}

		if len(registrationUpdates) > 0 || len(academicUpdates) > 0 {
			var registration models.BeneficiaryRegistration
			if err := tx.Where("user_id = ?", user.ID).First(&registration).Error; err != nil {
				return err
			}
			if len(registrationUpdates) > 0 {
				if err := tx.Model(&registration).Updates(registrationUpdates).Error; err != nil {
					return err
				}
			}
			if len(academicUpdates) > 0 {
				if err := tx.Model(&models.AcademicDetails{}).
					Where("beneficiary_id = ?", registration.ID).
					Updates(academicUpdates).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		log.Printf("Error updating student account %d: %v", id, err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Server error")
	}

	return middleware.MsgResponse(c, fiber.StatusOK, "Student account updated successfully")
}

// DeleteStudentAccount removes the user and cascades to the linked
// registration, document, academic and application records.
func DeleteStudentAccount(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.MsgResponse(c, fiber.StatusBadRequest, "Invalid user id!")
	}

	db := database.Database.Db

	var user models.User
	if err := db.First(&user, id).Error; err != nil {
		return middleware.MsgResponse(c, fiber.StatusNotFound, "User not found")
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		var registrations []models.BeneficiaryRegistration
		if err := tx.Where("user_id = ?", user.ID).Find(&registrations).Error; err != nil {
			return err
		}

		for _, registration := range registrations {
			if err := tx.Where("beneficiary_id = ?", registration.ID).
				Delete(&models.AcademicDetails{}).Error; err != nil {
				return err
			}
			if registration.DocumentID != 0 {
				if err := tx.Delete(&models.BeneficiaryDocument{}, registration.DocumentID).Error; err != nil {
					return err
				}
			}
			if err := tx.Delete(&registration).Error; err != nil {
				return err
			}
		}

		if err := tx.Where("user_id = ?", user.ID).Delete(&models.Application{}).Error; err != nil {
			return err
		}

		return tx.Delete(&user).Error
	})
	if err != nil {
		log.Printf("Error deleting student account %d: %v", id, err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Server error")
	}

	return middleware.MsgResponse(c, fiber.StatusOK, "Student account deleted successfully")
}

// ApplicationList returns all applications, optionally filtered by status.
func ApplicationList(c *fiber.Ctx) error {
	query := database.Database.Db.Order("created_at desc")
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var applications []models.Application
	if err := query.Find(&applications).Error; err != nil {
		log.Printf("Error fetching applications: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Server error")
	}

	return c.Status(fiber.StatusOK).JSON(applications)
}

// UpdateApplicationStatus moves a pending application to approved or
// rejected, then notifies the beneficiary best effort.
func UpdateApplicationStatus(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.MsgResponse(c, fiber.StatusBadRequest, "Invalid application id!")
	}

	reqData, ok := c.Locals("validatedStatus").(*adminValidator.UpdateStatusRequest)
	if !ok {
		return middleware.MsgResponse(c, fiber.StatusBadRequest, "Invalid request data!")
	}

	db := database.Database.Db

	var application models.Application
	if err := db.First(&application, id).Error; err != nil {
		return middleware.MsgResponse(c, fiber.StatusNotFound, "Application not found")
	}

	if application.Status != models.StatusPending {
		return middleware.MsgResponse(c, fiber.StatusBadRequest, "Only pending applications can be reviewed!")
	}

	if err := db.Model(&application).Update("status", reqData.Status).Error; err != nil {
		log.Printf("Error updating application %d status: %v", id, err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Server error")
	}

	// Notify the beneficiary out of band
	go notifyApplicant(application, reqData.Status)

	return middleware.DataResponse(c, fiber.StatusOK, "Application status updated successfully!", application)
}

func notifyApplicant(application models.Application, status string) {
	db := database.Database.Db

	var registration models.BeneficiaryRegistration
	if err := db.Where("user_id = ?", application.UserID).First(&registration).Error; err != nil {
		log.Printf("Status notification skipped: no registration for user %d", application.UserID)
		return
	}

	name := registration.FirstName + " " + registration.LastName
	if registration.Email != "" {
		if err := utils.SendApplicationStatusEmail(registration.Email, name, application.ApplicationType, status); err != nil {
			log.Printf("Error sending status email to %s: %v", registration.Email, err)
		}
	}
	if registration.MobileNumber != "" {
		if err := utils.SendApplicationStatusSMS(registration.MobileNumber, application.ApplicationType, status); err != nil {
			log.Printf("Error sending status SMS to %s: %v", registration.MobileNumber, err)
		}
	}
}
