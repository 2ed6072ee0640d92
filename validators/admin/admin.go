package adminValidator

import (
	"regexp"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"scholarship/middleware"
	"scholarship/models"
)

var (
	validate = validator.New()

	mobileRegex  = regexp.MustCompile(`^[0-9]{10}$`)
	pinCodeRegex = regexp.MustCompile(`^[0-9]{6}$`)
)

// CreateAccountRequest is the admin create-student-account payload.
type CreateAccountRequest struct {
	Username string `json:"username" validate:"required,min=3"`
	Password string `json:"password" validate:"required,min=6"`
}

// CreateRegistrationRequest is the admin create-student-registration payload.
type CreateRegistrationRequest struct {
	UserID        uint   `json:"userId" validate:"required"`
	AcademicYear  int    `json:"academicYear" validate:"required,min=2000"`
	CollegeName   string `json:"collegeName" validate:"required"`
	CourseName    string `json:"courseName" validate:"required"`
	ApplicantName string `json:"applicantName" validate:"required"`
	MotherName    string `json:"motherName" validate:"required"`
	DOB           string `json:"dob" validate:"required"`
	MobileNumber  string `json:"mobileNumber" validate:"required"`
	Email         string `json:"email"`
	Address       string `json:"address" validate:"required"`
	VillageName   string `json:"villageName"`
	State         string `json:"state" validate:"required"`
	PinCode       string `json:"pinCode" validate:"required"`
	Caste         string `json:"caste" validate:"required"`
	Category      string `json:"category" validate:"required"`
	Religion      string `json:"religion" validate:"required"`
	Gender        string `json:"gender" validate:"required,oneof=Male Female Other"`
	Orphan        bool   `json:"orphan"`
	Disabled      bool   `json:"disabled"`
}

// CreateSchoolFeesRequest is the admin create-school-fees-application payload.
type CreateSchoolFeesRequest struct {
	UserID uint    `json:"userId" validate:"required"`
	Amount float64 `json:"amount" validate:"required,gt=0"`
}

// CreateTravelExpensesRequest is the admin create-travel-expenses-application payload.
type CreateTravelExpensesRequest struct {
	UserID           uint    `json:"userId" validate:"required"`
	ResidencePlace   string  `json:"residencePlace" validate:"required"`
	DestinationPlace string  `json:"destinationPlace" validate:"required"`
	Distance         float64 `json:"distance" validate:"required,gt=0"`
	TravelMode       string  `json:"travelMode" validate:"required"`
	AidRequired      float64 `json:"aidRequired" validate:"required,gt=0"`
}

// CreateStudyBooksRequest is the admin create-study-books-application payload.
type CreateStudyBooksRequest struct {
	UserID        uint   `json:"userId" validate:"required"`
	YearOfStudy   string `json:"yearOfStudy" validate:"required"`
	Field         string `json:"field" validate:"required"`
	BooksRequired string `json:"booksRequired" validate:"required"`
	Standard      string `json:"standard"`
	Stream        string `json:"stream"`
	Medium        string `json:"medium"`
}

// UpdateAccountRequest is the selective patch payload: only supplied fields
// overwrite, so everything is a pointer or checked for the zero value.
type UpdateAccountRequest struct {
	Username *string `json:"username"`
	Password *string `json:"password"`

	// The admin edit form uses applicantName/villageName/disabled; the
	// student registration form uses firstName/city/physicallyDisabled.
	// Both spellings patch the same columns.
	FirstName          *string `json:"firstName"`
	ApplicantName      *string `json:"applicantName"`
	MiddleName         *string `json:"middleName"`
	LastName           *string `json:"lastName"`
	MotherName         *string `json:"motherName"`
	DOB                *string `json:"dob"`
	Gender             *string `json:"gender"`
	MobileNumber       *string `json:"mobileNumber"`
	Email              *string `json:"email"`
	Address            *string `json:"address"`
	City               *string `json:"city"`
	VillageName        *string `json:"villageName"`
	State              *string `json:"state"`
	PinCode            *string `json:"pinCode"`
	Caste              *string `json:"caste"`
	SubCaste           *string `json:"subCaste"`
	Category           *string `json:"category"`
	Religion           *string `json:"religion"`
	Orphan             *bool   `json:"orphan"`
	Disabled           *bool   `json:"disabled"`
	PhysicallyDisabled *bool   `json:"physicallyDisabled"`

	AcademicField              *string  `json:"academicField"`
	AcademicYear               *int     `json:"academicYear"`
	CourseName                 *string  `json:"courseName"`
	CollegeName                *string  `json:"collegeName"`
	LastAcademicYearPercentage *float64 `json:"lastAcademicYearPercentage"`
	Hobbies                    *string  `json:"hobbies"`
}

// UpdateStatusRequest is the application review payload.
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=approved rejected"`
}

func validateBody(c *fiber.Ctx, reqData interface{}) (map[string]string, error) {
	if err := c.BodyParser(reqData); err != nil {
		return nil, err
	}
	if err := validate.Struct(reqData); err != nil {
		errors := make(map[string]string)
		for _, fieldErr := range err.(validator.ValidationErrors) {
			errors[fieldErr.Field()] = "Invalid value!"
		}
		if len(errors) > 0 {
			return errors, nil
		}
	}
	return nil, nil
}

// CreateAccount validator middleware
func CreateAccount() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateAccountRequest)
		errors, err := validateBody(c, reqData)
		if err != nil {
			return middleware.MsgResponse(c, fiber.StatusBadRequest, "Invalid request body!")
		}
		if errors != nil {
			return middleware.ValidationErrorResponse(c, errors)
		}
		c.Locals("validatedAccount", reqData)
		return c.Next()
	}
}

// CreateRegistration validator middleware
func CreateRegistration() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateRegistrationRequest)
		errors, err := validateBody(c, reqData)
		if err != nil {
			return middleware.MsgResponse(c, fiber.StatusBadRequest, "Invalid request body!")
		}
		if errors != nil {
			return middleware.ValidationErrorResponse(c, errors)
		}

		// Registration rows carry the same contact and enum constraints no
		// matter who writes them.
		fieldErrors := make(map[string]string)
		if !mobileRegex.MatchString(reqData.MobileNumber) {
			fieldErrors["mobileNumber"] = "Mobile number must be 10 digits!"
		}
		if !pinCodeRegex.MatchString(reqData.PinCode) {
			fieldErrors["pinCode"] = "Pin code must be 6 digits!"
		}
		if !containsValue(models.CategoryValues, reqData.Category) {
			fieldErrors["category"] = "Invalid category!"
		}
		if !containsValue(models.ReligionValues, reqData.Religion) {
			fieldErrors["religion"] = "Invalid religion!"
		}
		if reqData.AcademicYear > time.Now().Year()+10 {
			fieldErrors["academicYear"] = "Academic year is out of range!"
		}
		if len(fieldErrors) > 0 {
			return middleware.ValidationErrorResponse(c, fieldErrors)
		}

		c.Locals("validatedRegistration", reqData)
		return c.Next()
	}
}

// CreateSchoolFees validator middleware
func CreateSchoolFees() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateSchoolFeesRequest)
		errors, err := validateBody(c, reqData)
		if err != nil {
			return middleware.MsgResponse(c, fiber.StatusBadRequest, "Invalid request body!")
		}
		if errors != nil {
			return middleware.ValidationErrorResponse(c, errors)
		}
		c.Locals("validatedSchoolFees", reqData)
		return c.Next()
	}
}

// CreateTravelExpenses validator middleware
func CreateTravelExpenses() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateTravelExpensesRequest)
		errors, err := validateBody(c, reqData)
		if err != nil {
			return middleware.MsgResponse(c, fiber.StatusBadRequest, "Invalid request body!")
		}
		if errors != nil {
			return middleware.ValidationErrorResponse(c, errors)
		}
		c.Locals("validatedTravelExpenses", reqData)
		return c.Next()
	}
}

// CreateStudyBooks validator middleware
func CreateStudyBooks() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateStudyBooksRequest)
		errors, err := validateBody(c, reqData)
		if err != nil {
			return middleware.MsgResponse(c, fiber.StatusBadRequest, "Invalid request body!")
		}
		if errors != nil {
			return middleware.ValidationErrorResponse(c, errors)
		}
		c.Locals("validatedStudyBooks", reqData)
		return c.Next()
	}
}

// UpdateAccount validator middleware
func UpdateAccount() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(UpdateAccountRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.MsgResponse(c, fiber.StatusBadRequest, "Invalid request body!")
		}

		errors := make(map[string]string)
		if reqData.Category != nil && !containsValue(models.CategoryValues, *reqData.Category) {
			errors["category"] = "Invalid category!"
		}
		if reqData.Religion != nil && !containsValue(models.ReligionValues, *reqData.Religion) {
			errors["religion"] = "Invalid religion!"
		}
		if reqData.Gender != nil && !containsValue(models.GenderValues, *reqData.Gender) {
			errors["gender"] = "Gender must be Male, Female or Other!"
		}
		if reqData.MobileNumber != nil && !mobileRegex.MatchString(*reqData.MobileNumber) {
			errors["mobileNumber"] = "Mobile number must be 10 digits!"
		}
		if reqData.PinCode != nil && !pinCodeRegex.MatchString(*reqData.PinCode) {
			errors["pinCode"] = "Pin code must be 6 digits!"
		}
		if reqData.AcademicYear != nil {
			if *reqData.AcademicYear < models.MinAcademicYear || *reqData.AcademicYear > time.Now().Year()+10 {
				errors["academicYear"] = "Academic year is out of range!"
			}
		}
		if reqData.LastAcademicYearPercentage != nil {
			if *reqData.LastAcademicYearPercentage < 0 || *reqData.LastAcademicYearPercentage > 100 {
				errors["lastAcademicYearPercentage"] = "Percentage must be between 0 and 100!"
			}
		}
		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedUpdate", reqData)
		return c.Next()
	}
}

// UpdateStatus validator middleware
func UpdateStatus() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(UpdateStatusRequest)
		errors, err := validateBody(c, reqData)
		if err != nil {
			return middleware.MsgResponse(c, fiber.StatusBadRequest, "Invalid request body!")
		}
		if errors != nil {
			return middleware.ValidationErrorResponse(c, errors)
		}
		c.Locals("validatedStatus", reqData)
		return c.Next()
	}
}

func containsValue(values []string, v string) bool {
	for _, value := range values {
		if value == v {
			return true
		}
	}
	return false
}
