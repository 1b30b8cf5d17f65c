package tasks

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/kien39/mil-mang/app/services"
)

var validate = validator.New()

func GetTasksAPI(tasks *services.Tasks) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(tasks.List())
	}
}

// GetTaskStatsAPI feeds the in-progress badge on the dashboard.
func GetTaskStatsAPI(tasks *services.Tasks) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"inProgress": tasks.InProgressCount()})
	}
}

func CreateTaskAPI(tasks *services.Tasks) fiber.Handler {
	return func(c *fiber.Ctx) error {
		type CreateRequest struct {
			Name       string `json:"name" validate:"required"`
			Location   string `json:"location" validate:"required"`
			SelectedTT []int  `json:"selectedTT" validate:"required,min=1"`
		}

		var req CreateRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
		}
		if err := validate.Struct(req); err != nil {
			return c.Status(400).JSON(fiber.Map{
				"error": "Vui lòng nhập tên công việc, vị trí, và chọn ít nhất 1 người",
			})
		}

		task, err := tasks.Create(req.Name, req.Location, req.SelectedTT)
		if err != nil {
			var verr *services.ValidationError
			if errors.As(err, &verr) {
				return c.Status(400).JSON(fiber.Map{"error": verr.Message})
			}
			log.Printf("Creating task failed: %v", err)
			return c.Status(500).JSON(fiber.Map{"error": "Failed to create task"})
		}
		return c.Status(201).JSON(task)
	}
}

func UpdateTaskStatusAPI(tasks *services.Tasks) fiber.Handler {
	return func(c *fiber.Ctx) error {
		type StatusRequest struct {
			Status string `json:"status" validate:"required,oneof=progressing done"`
		}

		var req StatusRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
		}
		if err := validate.Struct(req); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid task status"})
		}

		task, err := tasks.UpdateStatus(c.Params("id"), req.Status)
		if err != nil {
			if errors.Is(err, services.ErrTaskNotFound) {
				return c.Status(404).JSON(fiber.Map{"error": "Task not found"})
			}
			var verr *services.ValidationError
			if errors.As(err, &verr) {
				return c.Status(400).JSON(fiber.Map{"error": verr.Message})
			}
			log.Printf("Updating task %s failed: %v", c.Params("id"), err)
			return c.Status(500).JSON(fiber.Map{"error": "Failed to update task"})
		}
		return c.JSON(task)
	}
}

func DeleteTaskAPI(tasks *services.Tasks) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := tasks.Delete(c.Params("id")); err != nil {
			if errors.Is(err, services.ErrTaskNotFound) {
				return c.Status(404).JSON(fiber.Map{"error": "Task not found"})
			}
			log.Printf("Deleting task %s failed: %v", c.Params("id"), err)
			return c.Status(500).JSON(fiber.Map{"error": "Failed to delete task"})
		}
		return c.JSON(fiber.Map{"success": true})
	}
}
