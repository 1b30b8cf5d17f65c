package reports

import (
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"

	"github.com/kien39/mil-mang/app/export"
	"github.com/kien39/mil-mang/app/services"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

func GetAttendanceReportAPI(roster *services.Roster) fiber.Handler {
	return func(c *fiber.Ctx) error {
		f, filename, err := export.Attendance(roster.People(), time.Now())
		if err != nil {
			log.Printf("Building attendance report failed: %v", err)
			return c.Status(500).JSON(fiber.Map{"error": "Failed to build report"})
		}
		return sendWorkbook(c, f, filename)
	}
}

func GetAbsentReportAPI(roster *services.Roster) fiber.Handler {
	return func(c *fiber.Ctx) error {
		f, filename, err := export.AbsentMatrix(roster.People(), time.Now())
		if err != nil {
			log.Printf("Building absentee report failed: %v", err)
			return c.Status(500).JSON(fiber.Map{"error": "Failed to build report"})
		}
		return sendWorkbook(c, f, filename)
	}
}

func GetThoughtReportAPI(survey *services.Survey) fiber.Handler {
	return func(c *fiber.Ctx) error {
		f, filename, err := export.ThoughtResults(survey.Results(), time.Now())
		if err != nil {
			log.Printf("Building survey report failed: %v", err)
			return c.Status(500).JSON(fiber.Map{"error": "Failed to build report"})
		}
		return sendWorkbook(c, f, filename)
	}
}

// sendWorkbook streams the workbook as an attachment download.
func sendWorkbook(c *fiber.Ctx, f *excelize.File, filename string) error {
	defer f.Close()
	c.Set(fiber.HeaderContentType, xlsxContentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	if err := f.Write(c); err != nil {
		log.Printf("Streaming report %s failed: %v", filename, err)
		return err
	}
	return nil
}
