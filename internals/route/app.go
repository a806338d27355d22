package routes

import (
	"mantenimiento_backend/internals/configs"
	"mantenimiento_backend/internals/features/parts/documents/storage"
	helper "mantenimiento_backend/internals/helpers"
	middlewares "mantenimiento_backend/internals/middlewares"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"gorm.io/gorm"
)

// NewApp builds the fully wired fiber app. main and the HTTP tests share it.
func NewApp(db *gorm.DB, store *session.Store, docs storage.Store) *fiber.App {
	app := fiber.New(fiber.Config{
		JSONEncoder:           sonic.Marshal,
		JSONDecoder:           sonic.Unmarshal,
		DisableStartupMessage: true,
		ErrorHandler:          helper.FiberErrorHandler,
		// document routes carry user-chosen names, decode them before matching
		UnescapePath: true,
		BodyLimit:    (configs.Plant.UploadMaxMB + 1) << 20,
		ProxyHeader:  fiber.HeaderXForwardedFor,
	})

	middlewares.SetupMiddlewares(app)
	SetupRoutes(app, db, store, docs)
	return app
}
