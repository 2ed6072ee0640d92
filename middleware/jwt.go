package middleware

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"scholarship/config"
)

// GenerateJWT generates a JWT token for the user
func GenerateJWT(userID uint, username, role string) (string, error) {
	claims := jwt.MapClaims{
		"userId":   userID,
		"username": username,
		"role":     role,
		"iat":      time.Now().Unix(),
		"exp":      time.Now().Add(24 * time.Hour).Unix(), // expiry 24h
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	jwtSecret := []byte(config.AppConfig.JWTKey)

	return token.SignedString(jwtSecret)
}

// JWTMiddleware is a middleware to check for a valid JWT token in the request.
// The token is carried in the x-auth-token header.
func JWTMiddleware(c *fiber.Ctx) error {
	tokenString := c.Get("x-auth-token")
	if tokenString == "" {
		return MsgResponse(c, fiber.StatusUnauthorized, "No token, authorization denied")
	}

	// Parse and validate the token
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(config.AppConfig.JWTKey), nil
	})
	if err != nil || !token.Valid {
		return MsgResponse(c, fiber.StatusUnauthorized, "Token is not valid")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || claims["userId"] == nil {
		return MsgResponse(c, fiber.StatusUnauthorized, "Invalid token payload")
	}

	// JWT numbers decode as float64
	userID, ok := claims["userId"].(float64)
	if !ok {
		return MsgResponse(c, fiber.StatusUnauthorized, "Invalid token payload")
	}
	c.Locals("userId", uint(userID))
	if username, ok := claims["username"].(string); ok {
		c.Locals("username", username)
	}
	if role, ok := claims["role"].(string); ok {
		c.Locals("role", role)
	}

	return c.Next()
}

// OptionalJWTMiddleware attaches the principal when a token is present but
// lets anonymous requests through. A token that is present and invalid is
// still rejected.
func OptionalJWTMiddleware(c *fiber.Ctx) error {
	if c.Get("x-auth-token") == "" {
		return c.Next()
	}
	return JWTMiddleware(c)
}

// AdminMiddleware allows continuation only for admin principals. It must run
// after JWTMiddleware.
func AdminMiddleware(c *fiber.Ctx) error {
	role, ok := c.Locals("role").(string)
	if !ok || role != "admin" {
		return MsgResponse(c, fiber.StatusForbidden, "Access denied. Admin privileges required.")
	}
	return c.Next()
}
