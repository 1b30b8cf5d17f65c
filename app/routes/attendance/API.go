package attendance

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/kien39/mil-mang/app/models"
	"github.com/kien39/mil-mang/app/services"
)

// GetRosterAPI returns every roster row with its canonical index plus the
// aggregate counters the dashboard header shows.
func GetRosterAPI(roster *services.Roster) fiber.Handler {
	return func(c *fiber.Ctx) error {
		people := roster.People()
		rows := make([]services.RosterRow, len(people))
		for i, p := range people {
			rows[i] = services.RosterRow{Index: i, Person: p}
		}
		total, present, absent := roster.Stats()
		return c.JSON(fiber.Map{
			"rows":    rows,
			"total":   total,
			"present": present,
			"absent":  absent,
		})
	}
}

// GetCategoriesAPI lists the unit tabs in display order.
func GetCategoriesAPI(c *fiber.Ctx) error {
	out := make([]fiber.Map, 0, len(models.UnitCategories)+1)
	for _, cat := range models.UnitCategories {
		out = append(out, fiber.Map{"id": cat.ID, "name": cat.Name})
	}
	out = append(out, fiber.Map{"id": models.FallbackCategoryID, "name": models.FallbackUnitName})
	return c.JSON(out)
}

func GetRosterPageAPI(roster *services.Roster) fiber.Handler {
	return func(c *fiber.Ctx) error {
		category := c.Query("category", models.UnitCategories[0].ID)
		page := c.QueryInt("page", 0)
		result, err := roster.Page(category, page)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": err.Error()})
		}
		return c.JSON(result)
	}
}

// SetAbsentAPI toggles one row's absence flag by canonical roster index.
func SetAbsentAPI(roster *services.Roster) fiber.Handler {
	return func(c *fiber.Ctx) error {
		type AbsentRequest struct {
			Index  *int  `json:"index"`
			Absent *bool `json:"absent"`
		}

		var req AbsentRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
		}
		if req.Index == nil || req.Absent == nil {
			return c.Status(400).JSON(fiber.Map{"error": "Missing required fields"})
		}
		if err := roster.SetAbsent(*req.Index, *req.Absent); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": err.Error()})
		}
		return c.JSON(fiber.Map{"success": true})
	}
}

func SetReasonAPI(roster *services.Roster) fiber.Handler {
	return func(c *fiber.Ctx) error {
		type ReasonRequest struct {
			Index  *int   `json:"index"`
			Reason string `json:"reason"`
		}

		var req ReasonRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
		}
		if req.Index == nil {
			return c.Status(400).JSON(fiber.Map{"error": "Missing required fields"})
		}
		if err := roster.SetReason(*req.Index, req.Reason); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": err.Error()})
		}
		return c.JSON(fiber.Map{"success": true})
	}
}

// SaveAPI writes the whole attendance map to the store in one shot.
func SaveAPI(roster *services.Roster) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := roster.Save(); err != nil {
			log.Printf("Saving attendance failed: %v", err)
			return c.Status(500).JSON(fiber.Map{"error": "Failed to save attendance"})
		}
		return c.JSON(fiber.Map{"message": "Đã lưu điểm danh"})
	}
}

// ReloadAPI re-reads the spreadsheet and re-merges the saved attendance
// records over it.
func ReloadAPI(roster *services.Roster) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := roster.Load(); err != nil {
			log.Printf("Reloading roster failed: %v", err)
			return c.Status(500).JSON(fiber.Map{"error": "Failed to reload roster"})
		}
		total, present, absent := roster.Stats()
		return c.JSON(fiber.Map{
			"message": "Roster reloaded",
			"total":   total,
			"present": present,
			"absent":  absent,
		})
	}
}
