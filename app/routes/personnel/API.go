package personnel

import (
	"log"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/kien39/mil-mang/app/excel"
)

// GetPersonnelAPI returns the full personnel array as the reader produces
// it: every spreadsheet column plus the default attendance flag.
func GetPersonnelAPI(reader *excel.Reader) fiber.Handler {
	return func(c *fiber.Ctx) error {
		people, err := reader.Read()
		if err != nil {
			log.Printf("Error reading personnel file %s: %v", reader.Path, err)
			return c.Status(500).JSON(fiber.Map{
				"error": "Failed to fetch personnel data. Check server logs for details.",
			})
		}
		out := make([]map[string]interface{}, len(people))
		for i, p := range people {
			out[i] = p.Fields()
		}
		return c.JSON(out)
	}
}

// UpdateAttendanceAPI applies an attendance flag to one row of a freshly
// re-read array. Because every call re-reads the source file, the update
// does not survive the request; the behavior is kept as-is from the system
// this replaces rather than silently adding real persistence.
func UpdateAttendanceAPI(reader *excel.Reader) fiber.Handler {
	return func(c *fiber.Ctx) error {
		type UpdateRequest struct {
			// Pointers so that a missing field can be told apart from a
			// legitimate zero/false value.
			Index      *int  `json:"index"`
			Attendance *bool `json:"attendance"`
		}

		var req UpdateRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
		}
		if req.Index == nil || req.Attendance == nil {
			return c.Status(400).JSON(fiber.Map{"error": "Missing required fields"})
		}

		people, err := reader.Read()
		if err != nil {
			log.Printf("Error reading personnel file %s: %v", reader.Path, err)
			return c.Status(500).JSON(fiber.Map{"error": "Failed to update attendance"})
		}

		if *req.Index >= 0 && *req.Index < len(people) {
			people[*req.Index].Attendance = *req.Attendance
			log.Printf("Updated attendance for row %d: %v", *req.Index, *req.Attendance)
		}

		return c.JSON(fiber.Map{"success": true})
	}
}

// GetPersonAPI returns a single record by positional index.
func GetPersonAPI(reader *excel.Reader) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.Atoi(c.Params("id"))
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid id"})
		}

		people, err := reader.Read()
		if err != nil {
			log.Printf("Error reading personnel file %s: %v", reader.Path, err)
			return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch person detail"})
		}

		if id < 0 || id >= len(people) {
			return c.Status(404).JSON(fiber.Map{"error": "Person not found"})
		}
		return c.JSON(people[id].Fields())
	}
}
