package initializers

import (
	"os"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberRecover "github.com/gofiber/fiber/v2/middleware/recover"
	apiv1 "talent-tracker-backend/controllers/v1"
	"talent-tracker-backend/fiberlog"
	"talent-tracker-backend/middleware"
)

const swaggerFile = "./docs/swagger.json"

type AppConfig struct {
	BodyLimit     int
	IsDevelopment bool
	Logger        fiberlog.Config
}

// NewApp http приложение со всеми маршрутами
func NewApp(cfg AppConfig) *fiber.App {
	app := fiber.New(fiber.Config{
		BodyLimit:    cfg.BodyLimit,
		ErrorHandler: middleware.ErrorHandler(cfg.IsDevelopment),
	})
	app.Use(fiberRecover.New())
	app.Use(fiberlog.New(cfg.Logger))
	app.Use(cors.New(cors.Config{
		AllowHeaders: "Origin, Content-Type, Accept, X-Request-ID",
		AllowMethods: "GET, POST",
	}))

	if _, err := os.Stat(swaggerFile); err == nil {
		app.Use(swagger.New(swagger.Config{
			Path:     "/swagger",
			FilePath: swaggerFile,
		}))
	}

	app.Get("/", func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{
			"message":   "Talent Tracking System API",
			"status":    "running",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})

	//api
	api := fiber.New(fiber.Config{
		ErrorHandler: middleware.ErrorHandler(cfg.IsDevelopment),
	})
	apiv1.InitCandidateApiRouters(api)
	apiv1.InitFileApiRouters(api)
	app.Mount("/api", api)

	app.Use(middleware.NotFound())
	return app
}
