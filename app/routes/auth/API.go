package auth

import (
	"crypto/subtle"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/kien39/mil-mang/app/storage"
)

// The application knows exactly two accounts. There is no user database and
// no registration; the pairs are fixed and each is bound to one role.
var credentials = []struct {
	Account  string
	Password string
	Role     string
}{
	{Account: "CTV", Password: "c2d7e209", Role: RoleManager},
	{Account: "c2d7", Password: "song lo anh hung", Role: RoleSoldier},
}

func LoginAPI(store storage.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		type LoginRequest struct {
			Account  string `json:"account"`
			Password string `json:"password"`
		}

		var req LoginRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
		}

		role := ""
		for _, cred := range credentials {
			accountOK := subtle.ConstantTimeCompare([]byte(req.Account), []byte(cred.Account)) == 1
			passwordOK := subtle.ConstantTimeCompare([]byte(req.Password), []byte(cred.Password)) == 1
			if accountOK && passwordOK {
				role = cred.Role
				break
			}
		}
		if role == "" {
			return c.Status(401).JSON(fiber.Map{"error": "Tài khoản hoặc mật khẩu không chính xác"})
		}

		// The session is simply role + account in the persisted store, the
		// cookie only carries it between requests.
		if err := store.Set(storage.KeyUserRole, role); err != nil {
			log.Printf("Persisting login role failed: %v", err)
		}
		if err := store.Set(storage.KeyUserAccount, req.Account); err != nil {
			log.Printf("Persisting login account failed: %v", err)
		}

		token, err := GenerateJWT(role, req.Account)
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Failed to generate token"})
		}
		c.Cookie(&fiber.Cookie{
			Name:     "jwt_token",
			Value:    token,
			Expires:  time.Now().Add(24 * time.Hour),
			HTTPOnly: true,
			SameSite: "Lax",
		})

		return c.JSON(fiber.Map{
			"message": "Login successful",
			"role":    role,
			"account": req.Account,
		})
	}
}

func LogoutAPI(store storage.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := store.Delete(storage.KeyUserRole); err != nil {
			log.Printf("Clearing login role failed: %v", err)
		}
		if err := store.Delete(storage.KeyUserAccount); err != nil {
			log.Printf("Clearing login account failed: %v", err)
		}
		c.Cookie(&fiber.Cookie{
			Name:     "jwt_token",
			Value:    "",
			Expires:  time.Now().Add(-time.Hour),
			HTTPOnly: true,
		})
		return c.JSON(fiber.Map{"message": "Logged out"})
	}
}

func MeAPI(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"role":    c.Locals("role"),
		"account": c.Locals("account"),
	})
}
