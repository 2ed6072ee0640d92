package applicationValidator

import (
	"mime/multipart"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"scholarship/middleware"
	"scholarship/models"
)

var validate = validator.New()

// SchoolFeesData carries the validated school fees submission.
type SchoolFeesData struct {
	Files map[string]*multipart.FileHeader
}

// TravelExpensesData carries the validated travel expenses submission.
type TravelExpensesData struct {
	ResidencePlace   string
	DestinationPlace string
	Distance         float64
	TravelMode       string
	AidRequired      float64
	IDCard           *multipart.FileHeader
}

// StudyBooksRequest is the study books submission payload.
type StudyBooksRequest struct {
	YearOfStudy   string `json:"yearOfStudy" validate:"required"`
	Field         string `json:"field" validate:"required"`
	BooksRequired string `json:"booksRequired" validate:"required"`
	Standard      string `json:"standard"`
	Stream        string `json:"stream"`
	Medium        string `json:"medium"`
}

var optionalSchoolFeesFiles = []string{"feesStructure", "scholarshipForm"}

// SchoolFees validates the multipart school fees application: all six
// mandatory document slots must be present.
func SchoolFees() fiber.Handler {
	return func(c *fiber.Ctx) error {
		form, err := c.MultipartForm()
		if err != nil {
			return middleware.MsgResponse(c, fiber.StatusBadRequest, "Invalid multipart form!")
		}

		data := &SchoolFeesData{Files: make(map[string]*multipart.FileHeader)}
		errors := make(map[string]string)

		for _, slot := range append(append([]string{}, models.SchoolFeesRequiredFiles...), optionalSchoolFeesFiles...) {
			if files, ok := form.File[slot]; ok && len(files) > 0 {
				data.Files[slot] = files[0]
			}
		}
		for _, slot := range models.SchoolFeesRequiredFiles {
			if _, ok := data.Files[slot]; !ok {
				errors[slot] = "This document is required!"
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedSchoolFees", data)
		return c.Next()
	}
}

// TravelExpenses validates the multipart travel expenses application.
func TravelExpenses() fiber.Handler {
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

		data := &TravelExpensesData{
			ResidencePlace:   value("residencePlace"),
			DestinationPlace: value("destinationPlace"),
			TravelMode:       value("travelMode"),
		}

		errors := make(map[string]string)

		if data.ResidencePlace == "" {
			errors["residencePlace"] = "Residence place is required!"
		}
		if data.DestinationPlace == "" {
			errors["destinationPlace"] = "Destination place is required!"
		}
		if data.TravelMode == "" {
			errors["travelMode"] = "Travel mode is required!"
		}

		if distStr := value("distance"); distStr == "" {
			errors["distance"] = "Distance is required!"
		} else if dist, err := strconv.ParseFloat(distStr, 64); err != nil || dist <= 0 {
			errors["distance"] = "Distance must be a positive number!"
		} else {
			data.Distance = dist
		}

		if aidStr := value("aidRequired"); aidStr == "" {
			errors["aidRequired"] = "Aid required is required!"
		} else if aid, err := strconv.ParseFloat(aidStr, 64); err != nil || aid <= 0 {
			errors["aidRequired"] = "Aid required must be a positive number!"
		} else {
			data.AidRequired = aid
		}

		if files, ok := form.File["idCard"]; ok && len(files) > 0 {
			data.IDCard = files[0]
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedTravelExpenses", data)
		return c.Next()
	}
}

// StudyBooks validates the study books application payload.
func StudyBooks() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(StudyBooksRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.MsgResponse(c, fiber.StatusBadRequest, "Invalid request body!")
		}

		if err := validate.Struct(reqData); err != nil {
			errors := make(map[string]string)
			for _, fieldErr := range err.(validator.ValidationErrors) {
				errors[fieldErr.Field()] = "This field is required!"
			}
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedStudyBooks", reqData)
		return c.Next()
	}
}
