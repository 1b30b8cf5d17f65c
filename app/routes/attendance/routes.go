package attendance

import (
	"github.com/gofiber/fiber/v2"

	"github.com/kien39/mil-mang/app/routes/auth"
	"github.com/kien39/mil-mang/app/services"
)

// SetupAttendanceRoutes exposes the manager's merged roster: spreadsheet
// rows with the client-local absence state, paged by unit category.
func SetupAttendanceRoutes(app *fiber.App, roster *services.Roster) {
	api := app.Group("/api/roster")
	api.Use(auth.AuthMiddleware, auth.RequireManager)

	api.Get("/", GetRosterAPI(roster))
	api.Get("/categories", GetCategoriesAPI)
	api.Get("/page", GetRosterPageAPI(roster))
	api.Post("/attendance", SetAbsentAPI(roster))
	api.Post("/reason", SetReasonAPI(roster))
	api.Post("/save", SaveAPI(roster))
	api.Post("/reload", ReloadAPI(roster))
}
