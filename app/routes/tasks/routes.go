package tasks

import (
	"github.com/gofiber/fiber/v2"

	"github.com/kien39/mil-mang/app/routes/auth"
	"github.com/kien39/mil-mang/app/services"
)

// SetupTaskRoutes exposes the task list. Every mutation is manager-only;
// soldiers only ever see the derived absence it leaves on the roster.
func SetupTaskRoutes(app *fiber.App, tasks *services.Tasks) {
	api := app.Group("/api/tasks")
	api.Use(auth.AuthMiddleware, auth.RequireManager)

	api.Get("/", GetTasksAPI(tasks))
	api.Get("/stats", GetTaskStatsAPI(tasks))
	api.Post("/", CreateTaskAPI(tasks))
	api.Put("/:id/status", UpdateTaskStatusAPI(tasks))
	api.Delete("/:id", DeleteTaskAPI(tasks))
}
