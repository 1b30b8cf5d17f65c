package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/kien39/mil-mang/app/storage"
)

func SetupAuthRoutes(app *fiber.App, store storage.Store) {
	api := app.Group("/api/auth")
	api.Post("/login", LoginAPI(store))
	api.Post("/logout", LogoutAPI(store))
	api.Get("/me", AuthMiddleware, MeAPI)
}

// AuthMiddleware validates the session token and sets role/account context.
func AuthMiddleware(c *fiber.Ctx) error {
	tokenString := c.Cookies("jwt_token")
	if tokenString == "" {
		header := c.Get("Authorization")
		if strings.HasPrefix(header, "Bearer ") {
			tokenString = strings.TrimPrefix(header, "Bearer ")
		}
	}
	if tokenString == "" {
		return c.Status(401).JSON(fiber.Map{"error": "No token found"})
	}

	claims, err := ValidateJWT(tokenString)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": "Invalid token"})
	}

	c.Locals("role", claims.Role)
	c.Locals("account", claims.Account)
	return c.Next()
}

// RequireManager rejects anyone whose session role is not manager.
func RequireManager(c *fiber.Ctx) error {
	if role, _ := c.Locals("role").(string); role != RoleManager {
		return c.Status(403).JSON(fiber.Map{"error": "Insufficient permissions"})
	}
	return c.Next()
}
