package authController

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"scholarship/config"
	"scholarship/database"
	"scholarship/middleware"
	"scholarship/models"
)

// Register creates a new user account. Role defaults to "user".
func Register(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedUser").(*struct {
		Username string `json:"username"`
		Password string `json:"password"`
		Role     string `json:"role"`
	})
	if !ok {
		return middleware.MsgResponse(c, fiber.StatusBadRequest, "Invalid request data!")
	}

	db := database.Database.Db

	// Check if username already exists
	if err := db.Where("username = ?", reqData.Username).First(&models.User{}).Error; err == nil {
		return middleware.MsgResponse(c, fiber.StatusBadRequest, "User already exists")
	} else if err != gorm.ErrRecordNotFound {
		log.Printf("Error checking existing user: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Server error")
	}

	// Hash Password
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(reqData.Password), config.AppConfig.SaltRound)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Server error")
	}

	role := reqData.Role
	if role == "" {
		role = models.RoleUser
	}

	newUser := models.User{
		Username: reqData.Username,
		Password: string(hashedPassword),
		Role:     role,
	}

	if err := db.Create(&newUser).Error; err != nil {
		log.Printf("Error saving user to database: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Server error")
	}

	return middleware.MsgResponse(c, fiber.StatusOK, "User registered successfully")
}

// Login validates credentials and issues a signed bearer token. An unknown
// username and a wrong password fail with the same message so accounts cannot
// be enumerated.
func Login(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedUser").(*struct {
		Username string `json:"username"`
		Password string `json:"password"`
	})
	if !ok {
		return middleware.MsgResponse(c, fiber.StatusBadRequest, "Invalid request data!")
	}

	var user models.User
	if err := database.Database.Db.Where("username = ?", reqData.Username).First(&user).Error; err != nil {
		return middleware.MsgResponse(c, fiber.StatusBadRequest, "Invalid Credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(reqData.Password)); err != nil {
		return middleware.MsgResponse(c, fiber.StatusBadRequest, "Invalid Credentials")
	}

	token, err := middleware.GenerateJWT(user.ID, user.Username, user.Role)
	if err != nil {
		log.Printf("Error generating token: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Server error")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"token": token,
		"user": fiber.Map{
			"username": user.Username,
			"role":     user.Role,
		},
	})
}
