package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"github.com/kien39/mil-mang/app/config"
	"github.com/kien39/mil-mang/app/events"
	"github.com/kien39/mil-mang/app/excel"
	"github.com/kien39/mil-mang/app/routes/attendance"
	"github.com/kien39/mil-mang/app/routes/auth"
	"github.com/kien39/mil-mang/app/routes/personnel"
	"github.com/kien39/mil-mang/app/routes/reports"
	"github.com/kien39/mil-mang/app/routes/survey"
	"github.com/kien39/mil-mang/app/routes/tasks"
	"github.com/kien39/mil-mang/app/services"
	"github.com/kien39/mil-mang/app/storage"
)

func main() {
	cfg := config.Load()
	auth.SetSecret(cfg.JWTSecret)

	store, err := storage.OpenFile(cfg.StateFile)
	if err != nil {
		log.Fatalf("Opening state file: %v", err)
	}

	bus := events.NewBus()
	reader := &excel.Reader{
		Path:      cfg.DataFile,
		SerialMin: cfg.SerialMin,
		SerialMax: cfg.SerialMax,
	}

	roster := services.NewRoster(reader, store, bus)
	if err := roster.Load(); err != nil {
		// The spreadsheet may not be in place yet; the roster stays empty
		// until a reload succeeds.
		log.Printf("Warning: initial roster load failed: %v", err)
	}
	taskSvc := services.NewTasks(store, roster, bus)
	surveySvc := services.NewSurvey(store, roster, bus)

	// External edits to the state file must reach the cached services, not
	// just the store.
	unsubscribe := services.SubscribeStorageReloads(bus, roster, taskSvc, surveySvc)
	defer unsubscribe()

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{"error": err.Error()})
		},
	})
	app.Use(logger.New())
	app.Use(cors.New())

	auth.SetupAuthRoutes(app, store)
	personnel.SetupPersonnelRoutes(app, reader)
	attendance.SetupAttendanceRoutes(app, roster)
	tasks.SetupTaskRoutes(app, taskSvc)
	survey.SetupSurveyRoutes(app, surveySvc, roster)
	reports.SetupReportRoutes(app, roster, surveySvc)

	watcher := storage.NewWatcher(store, bus, cfg.PollInterval)
	watcher.Start()
	defer watcher.Stop()

	log.Printf("Listening on %s", cfg.ListenAddr)
	if err := app.Listen(cfg.ListenAddr); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}
