package personnel

import (
	"github.com/gofiber/fiber/v2"

	"github.com/kien39/mil-mang/app/excel"
)

// SetupPersonnelRoutes exposes the thin server-side spreadsheet reader. The
// endpoints re-read the source file on every call and hold no state.
func SetupPersonnelRoutes(app *fiber.App, reader *excel.Reader) {
	api := app.Group("/api/personnel")
	api.Get("/", GetPersonnelAPI(reader))
	api.Post("/", UpdateAttendanceAPI(reader))
	api.Get("/:id", GetPersonAPI(reader))
}
