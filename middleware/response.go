package middleware

import (
	"github.com/gofiber/fiber/v2"
)

// MsgResponse writes a {"msg": ...} body, the shape the frontend alert
// banners read.
func MsgResponse(c *fiber.Ctx, statusCode int, msg string) error {
	return c.Status(statusCode).JSON(fiber.Map{
		"msg": msg,
	})
}

// DataResponse writes a {"message": ..., "data": ...} body.
func DataResponse(c *fiber.Ctx, statusCode int, message string, data interface{}) error {
	return c.Status(statusCode).JSON(fiber.Map{
		"message": message,
		"data":    data,
	})
}

// ErrorResponse writes a {"error": ...} body for unexpected failures.
func ErrorResponse(c *fiber.Ctx, statusCode int, errMsg string) error {
	return c.Status(statusCode).JSON(fiber.Map{
		"error": errMsg,
	})
}

// ValidationErrorResponse writes field level validation errors
func ValidationErrorResponse(c *fiber.Ctx, errors map[string]string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"msg":    "Validation failed!",
		"errors": errors,
	})
}
