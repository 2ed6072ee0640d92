package beneficiaryValidator

import (
	"mime/multipart"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"scholarship/middleware"
	"scholarship/models"
)

var (
	mobileRegex  = regexp.MustCompile(`^[0-9]{10}$`)
	pinCodeRegex = regexp.MustCompile(`^[0-9]{6}$`)
)

// RegistrationData carries the validated beneficiary registration form.
type RegistrationData struct {
	FirstName  string
	MiddleName string
	LastName   string
	MotherName string
	DOB        time.Time
	Gender     string

	MobileNumber string
	Email        string

	Address string
	City    string
	State   string
	PinCode string

	Caste              string
	SubCaste           string
	Category           string
	Religion           string
	Orphan             bool
	PhysicallyDisabled bool

	AcademicField              string
	AcademicYear               int
	CourseName                 string
	CollegeName                string
	LastAcademicYearPercentage float64
	Hobbies                    string

	// Present file slots keyed by form field name
	Files map[string]*multipart.FileHeader
}

func contains(values []string, v string) bool {
	for _, value := range values {
		if value == v {
			return true
		}
	}
	return false
}

// Register validates the multipart beneficiary registration form. Text fields
// and the three mandatory document slots are checked before any upload or
// database write happens.
func Register() fiber.Handler {
	return func(c *fiber.Ctx) error {
		form, err := c.MultipartForm()
		if err != nil {
			return middleware.MsgResponse(c, fiber.StatusBadRequest, "Invalid multipart form!")
		}

		value := func(key string) string {
			if v, ok := form.Value[key]; ok && len(v) > 0 {
				return strings.TrimSpace(v[0])
			}
			return ""
		}
		boolValue := func(key string) bool {
			v := strings.ToLower(value(key))
			return v == "true" || v == "on" || v == "1" || v == "yes"
		}

		data := &RegistrationData{
			FirstName:          value("firstName"),
			MiddleName:         value("middleName"),
			LastName:           value("lastName"),
			MotherName:         value("motherName"),
			Gender:             value("gender"),
			MobileNumber:       value("mobileNumber"),
			Email:              strings.ToLower(value("email")),
			Address:            value("address"),
			City:               value("city"),
			State:              value("state"),
			PinCode:            value("pinCode"),
			Caste:              value("caste"),
			SubCaste:           value("subCaste"),
			Category:           value("category"),
			Religion:           value("religion"),
			Orphan:             boolValue("orphan"),
			PhysicallyDisabled: boolValue("physicallyDisabled"),
			AcademicField:      value("academicField"),
			CourseName:         value("courseName"),
			CollegeName:        value("collegeName"),
			Hobbies:            value("hobbies"),
			Files:              make(map[string]*multipart.FileHeader),
		}

		errors := make(map[string]string)

		required := map[string]string{
			"firstName":     data.FirstName,
			"lastName":      data.LastName,
			"motherName":    data.MotherName,
			"address":       data.Address,
			"city":          data.City,
			"state":         data.State,
			"caste":         data.Caste,
			"academicField": data.AcademicField,
			"courseName":    data.CourseName,
			"collegeName":   data.CollegeName,
		}
		for field, v := range required {
			if v == "" {
				errors[field] = "This field is required!"
			}
		}

		if dobStr := value("dob"); dobStr == "" {
			errors["dob"] = "Date of birth is required!"
		} else {
			dob, err := time.Parse("2006-01-02", dobStr)
			if err != nil {
				errors["dob"] = "Date of birth must be in YYYY-MM-DD format!"
			} else {
				data.DOB = dob
			}
		}

		if !contains(models.GenderValues, data.Gender) {
			errors["gender"] = "Gender must be Male, Female or Other!"
		}
		if !mobileRegex.MatchString(data.MobileNumber) {
			errors["mobileNumber"] = "Mobile number must be 10 digits!"
		}
		if !pinCodeRegex.MatchString(data.PinCode) {
			errors["pinCode"] = "Pin code must be 6 digits!"
		}
		if !contains(models.CategoryValues, data.Category) {
			errors["category"] = "Invalid category!"
		}
		if !contains(models.ReligionValues, data.Religion) {
			errors["religion"] = "Invalid religion!"
		}

		if yearStr := value("academicYear"); yearStr == "" {
			errors["academicYear"] = "Academic year is required!"
		} else {
			year, err := strconv.Atoi(yearStr)
			maxYear := time.Now().Year() + 10
			if err != nil || year < models.MinAcademicYear || year > maxYear {
				errors["academicYear"] = "Academic year is out of range!"
			} else {
				data.AcademicYear = year
			}
		}

		if pctStr := value("lastAcademicYearPercentage"); pctStr != "" {
			pct, err := strconv.ParseFloat(pctStr, 64)
			if err != nil || pct < 0 || pct > 100 {
				errors["lastAcademicYearPercentage"] = "Percentage must be between 0 and 100!"
			} else {
				data.LastAcademicYearPercentage = pct
			}
		}

		// Collect the known document slots present in the form
		for _, slot := range append(append([]string{}, models.MandatoryDocumentSlots...), models.OptionalDocumentSlots...) {
			if files, ok := form.File[slot]; ok && len(files) > 0 {
				data.Files[slot] = files[0]
			}
		}
		for _, slot := range models.MandatoryDocumentSlots {
			if _, ok := data.Files[slot]; !ok {
				errors[slot] = "This document is required!"
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedRegistration", data)
		return c.Next()
	}
}
