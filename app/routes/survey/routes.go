package survey

import (
	"github.com/gofiber/fiber/v2"

	"github.com/kien39/mil-mang/app/routes/auth"
	"github.com/kien39/mil-mang/app/services"
)

// SetupSurveyRoutes exposes the thought survey. Respondents need a session
// to read the questionnaire and submit; opening, closing and reading
// results stay manager-only.
func SetupSurveyRoutes(app *fiber.App, survey *services.Survey, roster *services.Roster) {
	api := app.Group("/api/survey")
	api.Use(auth.AuthMiddleware)

	api.Get("/status", GetStatusAPI(survey))
	api.Get("/questions", GetQuestionsAPI)
	api.Get("/matches", GetMatchesAPI(roster))
	api.Post("/submit", SubmitAPI(survey))

	api.Post("/status", auth.RequireManager, SetStatusAPI(survey))
	api.Get("/results", auth.RequireManager, GetResultsAPI(survey))
}
