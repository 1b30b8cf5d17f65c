package survey

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/kien39/mil-mang/app/services"
)

var validate = validator.New()

func GetStatusAPI(survey *services.Survey) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"enabled": survey.Enabled()})
	}
}

// SetStatusAPI opens or closes the survey to respondents.
func SetStatusAPI(survey *services.Survey) fiber.Handler {
	return func(c *fiber.Ctx) error {
		type StatusRequest struct {
			Enabled *bool `json:"enabled"`
		}

		var req StatusRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
		}
		if req.Enabled == nil {
			return c.Status(400).JSON(fiber.Map{"error": "Missing required fields"})
		}
		if err := survey.SetEnabled(*req.Enabled); err != nil {
			log.Printf("Toggling survey failed: %v", err)
			return c.Status(500).JSON(fiber.Map{"error": "Failed to update survey status"})
		}
		return c.JSON(fiber.Map{"enabled": *req.Enabled})
	}
}

// GetQuestionsAPI returns the fixed questionnaire, section by section.
func GetQuestionsAPI(c *fiber.Ctx) error {
	return c.JSON(services.SurveySections)
}

// GetMatchesAPI suggests roster names for the respondent identification
// field. An empty query yields an empty list.
func GetMatchesAPI(roster *services.Roster) fiber.Handler {
	return func(c *fiber.Ctx) error {
		matches := roster.FindByName(c.Query("q"))
		out := make([]fiber.Map, 0, len(matches))
		for _, p := range matches {
			out = append(out, fiber.Map{"tt": p.TT, "name": p.Name, "unit": p.Unit})
		}
		return c.JSON(out)
	}
}

func SubmitAPI(survey *services.Survey) fiber.Handler {
	return func(c *fiber.Ctx) error {
		type SubmitRequest struct {
			FullName   string            `json:"fullName" validate:"required"`
			Responses  map[int]string    `json:"responses"`
			Notes      map[int]string    `json:"notes"`
			InfoFields map[string]string `json:"infoFields"`
		}

		if !survey.Enabled() {
			return c.Status(403).JSON(fiber.Map{"error": "Khảo sát hiện đang đóng"})
		}

		var req SubmitRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
		}
		if err := validate.Struct(req); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Vui lòng nhập họ và tên"})
		}

		eval, err := survey.Submit(req.FullName, req.Responses, req.Notes, req.InfoFields)
		if err != nil {
			var verr *services.ValidationError
			if errors.As(err, &verr) {
				return c.Status(400).JSON(fiber.Map{"error": verr.Message})
			}
			log.Printf("Recording evaluation failed: %v", err)
			return c.Status(500).JSON(fiber.Map{"error": "Failed to record evaluation"})
		}
		return c.Status(201).JSON(eval)
	}
}

func GetResultsAPI(survey *services.Survey) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(survey.Results())
	}
}
