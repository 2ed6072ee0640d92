package adminController_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"scholarship/config"
	"scholarship/database"
	"scholarship/middleware"
	"scholarship/models"
	adminRoutes "scholarship/routers/adminRoutes"
)

type fixture struct {
	app          *fiber.App
	db           *gorm.DB
	adminToken   string
	studentToken string
	student      models.User
	registration models.BeneficiaryRegistration
	academic     models.AcademicDetails
}

func setupTest(t *testing.T) *fixture {
	t.Helper()

	config.AppConfig = &config.Config{
		JWTKey:    "test-secret",
		SaltRound: bcrypt.MinCost,
	}

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	database.RunMigrations(db)
	database.Database = database.DbInstance{Db: db}

	admin := models.User{Username: "admin1", Password: "x", Role: models.RoleAdmin}
	require.NoError(t, db.Create(&admin).Error)
	adminToken, err := middleware.GenerateJWT(admin.ID, admin.Username, admin.Role)
	require.NoError(t, err)

	student := models.User{Username: "student1", Password: "x", Role: models.RoleUser}
	require.NoError(t, db.Create(&student).Error)
	studentToken, err := middleware.GenerateJWT(student.ID, student.Username, student.Role)
	require.NoError(t, err)

	document := models.BeneficiaryDocument{
		AadharCard:        "https://files.test/aadhar.jpg",
		PassportSizePhoto: "https://files.test/photo.jpg",
		HouseImage:        "https://files.test/house.jpg",
	}
	require.NoError(t, db.Create(&document).Error)

	registration := models.BeneficiaryRegistration{
		FirstName:    "Asha",
		LastName:     "Pawar",
		MotherName:   "Sunita",
		DOB:          time.Date(2004, 6, 15, 0, 0, 0, 0, time.UTC),
		Gender:       "Female",
		MobileNumber: "9876543210",
		Address:      "12 MG Road",
		City:         "Pune",
		State:        "Maharashtra",
		PinCode:      "411001",
		Caste:        "Maratha",
		Category:     "OBC",
		Religion:     "Hindu",
		DocumentID:   document.ID,
		UserID:       student.ID,
	}
	require.NoError(t, db.Create(&registration).Error)

	academic := models.AcademicDetails{
		AcademicField: "Science",
		AcademicYear:  2024,
		CourseName:    "BSc",
		CollegeName:   "Fergusson College",
		BeneficiaryID: registration.ID,
	}
	require.NoError(t, db.Create(&academic).Error)

	app := fiber.New()
	adminRoutes.SetupAdminRoutes(app)

	return &fixture{
		app:          app,
		db:           db,
		adminToken:   adminToken,
		studentToken: studentToken,
		student:      student,
		registration: registration,
		academic:     academic,
	}
}

func (f *fixture) request(t *testing.T, method, path, token string, payload interface{}) *http.Response {
	t.Helper()

	var body *bytes.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(data)
	} else {
		body = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("x-auth-token", token)
	}

	resp, err := f.app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestAdminRoutesRejectNonAdmin(t *testing.T) {
	f := setupTest(t)

	paths := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/admin/users"},
		{http.MethodGet, fmt.Sprintf("/api/admin/users/%d", f.student.ID)},
		{http.MethodPost, "/api/admin/create-student-account"},
		{http.MethodPut, fmt.Sprintf("/api/admin/update-student-account/%d", f.student.ID)},
		{http.MethodDelete, fmt.Sprintf("/api/admin/delete-student-account/%d", f.student.ID)},
		{http.MethodGet, "/api/admin/applications"},
	}
	for _, route := range paths {
		resp := f.request(t, route.method, route.path, f.studentToken, nil)
		assert.Equal(t, http.StatusForbidden, resp.StatusCode, route.path)
	}

	// Missing token is unauthorized, not forbidden
	resp := f.request(t, http.MethodGet, "/api/admin/users", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestUserList(t *testing.T) {
	f := setupTest(t)

	resp := f.request(t, http.MethodGet, "/api/admin/users", f.adminToken, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var users []models.User
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&users))
	require.Len(t, users, 1)
	assert.Equal(t, "student1", users[0].Username)
}

func TestUserDetail(t *testing.T) {
	f := setupTest(t)

	resp := f.request(t, http.MethodGet, fmt.Sprintf("/api/admin/users/%d", f.student.ID), f.adminToken, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]json.RawMessage
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Contains(t, body, "user")
	assert.Contains(t, body, "registration")
	assert.Contains(t, body, "documents")
	assert.Contains(t, body, "academic")
}

func TestCreateStudentAccount(t *testing.T) {
	f := setupTest(t)

	resp := f.request(t, http.MethodPost, "/api/admin/create-student-account", f.adminToken, fiber.Map{
		"username": "student2",
		"password": "secret123",
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var user models.User
	require.NoError(t, f.db.Where("username = ?", "student2").First(&user).Error)
	assert.Equal(t, models.RoleUser, user.Role)
}

func TestCreateStudentRegistration(t *testing.T) {
	f := setupTest(t)

	user := models.User{Username: "student2", Password: "x", Role: models.RoleUser}
	require.NoError(t, f.db.Create(&user).Error)

	resp := f.request(t, http.MethodPost, "/api/admin/create-student-registration", f.adminToken, registrationPayload(user.ID, nil))
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var registration models.BeneficiaryRegistration
	require.NoError(t, f.db.Where("user_id = ?", user.ID).First(&registration).Error)
	assert.Equal(t, "Ravi Jadhav", registration.FirstName)
	assert.Equal(t, "9123456780", registration.MobileNumber)
	assert.Equal(t, "411005", registration.PinCode)
	assert.Equal(t, "OBC", registration.Category)
	assert.Equal(t, "Hindu", registration.Religion)

	var academic models.AcademicDetails
	require.NoError(t, f.db.Where("beneficiary_id = ?", registration.ID).First(&academic).Error)
	assert.Equal(t, "COEP", academic.CollegeName)
}

func registrationPayload(userID uint, mutate func(fiber.Map)) fiber.Map {
	payload := fiber.Map{
		"userId":        userID,
		"academicYear":  2025,
		"collegeName":   "COEP",
		"courseName":    "BTech",
		"applicantName": "Ravi Jadhav",
		"motherName":    "Meena",
		"dob":           "2005-01-20",
		"mobileNumber":  "9123456780",
		"address":       "45 FC Road",
		"villageName":   "Shivajinagar",
		"state":         "Maharashtra",
		"pinCode":       "411005",
		"caste":         "Kunbi",
		"category":      "OBC",
		"religion":      "Hindu",
		"gender":        "Male",
	}
	if mutate != nil {
		mutate(payload)
	}
	return payload
}

func TestCreateStudentRegistrationInvalidContact(t *testing.T) {
	f := setupTest(t)

	user := models.User{Username: "student2", Password: "x", Role: models.RoleUser}
	require.NoError(t, f.db.Create(&user).Error)

	for name, mutate := range map[string]func(fiber.Map){
		"missing mobile":   func(p fiber.Map) { delete(p, "mobileNumber") },
		"short mobile":     func(p fiber.Map) { p["mobileNumber"] = "12345" },
		"missing pin":      func(p fiber.Map) { delete(p, "pinCode") },
		"bad pin":          func(p fiber.Map) { p["pinCode"] = "4110" },
		"unknown category": func(p fiber.Map) { p["category"] = "Unknown" },
		"unknown religion": func(p fiber.Map) { p["religion"] = "Unknown" },
	} {
		resp := f.request(t, http.MethodPost, "/api/admin/create-student-registration",
			f.adminToken, registrationPayload(user.ID, mutate))
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, name)
	}

	var count int64
	f.db.Model(&models.BeneficiaryRegistration{}).Where("user_id = ?", user.ID).Count(&count)
	assert.Zero(t, count)
}

func TestUpdateStudentAccountSelectivePatch(t *testing.T) {
	f := setupTest(t)

	resp := f.request(t, http.MethodPut,
		fmt.Sprintf("/api/admin/update-student-account/%d", f.student.ID),
		f.adminToken, fiber.Map{"collegeName": "New College"})
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var academic models.AcademicDetails
	require.NoError(t, f.db.First(&academic, f.academic.ID).Error)
	assert.Equal(t, "New College", academic.CollegeName)

	// Everything else is untouched
	assert.Equal(t, f.academic.CourseName, academic.CourseName)
	assert.Equal(t, f.academic.AcademicYear, academic.AcademicYear)

	var registration models.BeneficiaryRegistration
	require.NoError(t, f.db.First(&registration, f.registration.ID).Error)
	assert.Equal(t, f.registration.FirstName, registration.FirstName)
	assert.Equal(t, f.registration.MobileNumber, registration.MobileNumber)

	var user models.User
	require.NoError(t, f.db.First(&user, f.student.ID).Error)
	assert.Equal(t, f.student.Username, user.Username)
	assert.Equal(t, f.student.Password, user.Password)
}

func TestUpdateStudentAccountEditFormFieldNames(t *testing.T) {
	f := setupTest(t)

	resp := f.request(t, http.MethodPut,
		fmt.Sprintf("/api/admin/update-student-account/%d", f.student.ID),
		f.adminToken, fiber.Map{
			"applicantName": "Ashwini",
			"villageName":   "Kothrud",
			"dob":           "2003-03-10",
			"gender":        "Other",
			"disabled":      true,
		})
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var registration models.BeneficiaryRegistration
	require.NoError(t, f.db.First(&registration, f.registration.ID).Error)
	assert.Equal(t, "Ashwini", registration.FirstName)
	assert.Equal(t, "Kothrud", registration.City)
	assert.Equal(t, "Other", registration.Gender)
	assert.True(t, registration.PhysicallyDisabled)
	assert.Equal(t, 2003, registration.DOB.Year())
}

func TestUpdateStudentAccountRejectsBadMobile(t *testing.T) {
	f := setupTest(t)

	resp := f.request(t, http.MethodPut,
		fmt.Sprintf("/api/admin/update-student-account/%d", f.student.ID),
		f.adminToken, fiber.Map{"mobileNumber": "12345"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var registration models.BeneficiaryRegistration
	require.NoError(t, f.db.First(&registration, f.registration.ID).Error)
	assert.Equal(t, "9876543210", registration.MobileNumber)
}

func TestDeleteStudentAccountCascades(t *testing.T) {
	f := setupTest(t)

	require.NoError(t, f.db.Create(&models.Application{
		UserID:          f.student.ID,
		ApplicationType: models.ApplicationSchoolFees,
		Status:          models.StatusPending,
	}).Error)

	resp := f.request(t, http.MethodDelete,
		fmt.Sprintf("/api/admin/delete-student-account/%d", f.student.ID),
		f.adminToken, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	for _, model := range []interface{}{
		&models.User{},
		&models.BeneficiaryRegistration{},
		&models.BeneficiaryDocument{},
		&models.AcademicDetails{},
		&models.Application{},
	} {
		var count int64
		f.db.Model(model).Where("1 = 1").Count(&count)
		if _, ok := model.(*models.User); ok {
			// Only the admin account remains
			assert.Equal(t, int64(1), count)
			continue
		}
		assert.Zero(t, count, fmt.Sprintf("%T", model))
	}
}

func TestUpdateApplicationStatus(t *testing.T) {
	f := setupTest(t)

	application := models.Application{
		UserID:          f.student.ID,
		ApplicationType: models.ApplicationSchoolFees,
		Status:          models.StatusPending,
	}
	require.NoError(t, f.db.Create(&application).Error)

	resp := f.request(t, http.MethodPut,
		fmt.Sprintf("/api/admin/applications/%d/status", application.ID),
		f.adminToken, fiber.Map{"status": "approved"})
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var updated models.Application
	require.NoError(t, f.db.First(&updated, application.ID).Error)
	assert.Equal(t, models.StatusApproved, updated.Status)

	// Re-reviewing a non-pending application is rejected
	resp = f.request(t, http.MethodPut,
		fmt.Sprintf("/api/admin/applications/%d/status", application.ID),
		f.adminToken, fiber.Map{"status": "rejected"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	require.NoError(t, f.db.First(&updated, application.ID).Error)
	assert.Equal(t, models.StatusApproved, updated.Status)
}

func TestUpdateApplicationStatusInvalidValue(t *testing.T) {
	f := setupTest(t)

	application := models.Application{
		UserID:          f.student.ID,
		ApplicationType: models.ApplicationStudyBooks,
		Status:          models.StatusPending,
	}
	require.NoError(t, f.db.Create(&application).Error)

	resp := f.request(t, http.MethodPut,
		fmt.Sprintf("/api/admin/applications/%d/status", application.ID),
		f.adminToken, fiber.Map{"status": "pending"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
