package reports

import (
	"github.com/gofiber/fiber/v2"

	"github.com/kien39/mil-mang/app/routes/auth"
	"github.com/kien39/mil-mang/app/services"
)

// SetupReportRoutes exposes the spreadsheet exports. All three are
// manager-only downloads built from in-memory state at request time.
func SetupReportRoutes(app *fiber.App, roster *services.Roster, survey *services.Survey) {
	api := app.Group("/api/reports")
	api.Use(auth.AuthMiddleware, auth.RequireManager)

	api.Get("/attendance", GetAttendanceReportAPI(roster))
	api.Get("/absent", GetAbsentReportAPI(roster))
	api.Get("/thought", GetThoughtReportAPI(survey))
}
