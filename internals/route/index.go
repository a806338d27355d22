package routes

import (
	"log"
	"time"

	"mantenimiento_backend/internals/configs"
	"mantenimiento_backend/internals/features/parts/documents/storage"
	authMiddleware "mantenimiento_backend/internals/middlewares/auth"
	routeDetails "mantenimiento_backend/internals/route/details"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"gorm.io/gorm"
)

var startTime time.Time

// SetupRoutes mounts every feature on app. Guards are attached per route,
// so the identity loader is the only app-wide auth middleware.
func SetupRoutes(app *fiber.App, db *gorm.DB, store *session.Store, docs storage.Store) {
	startTime = time.Now()

	app.Use(authMiddleware.LoadAuthContext(db, store))

	BaseRoutes(app, db)

	log.Println("[INFO] Setting up AuthRoutes...")
	routeDetails.AuthRoutes(app, db, store)

	log.Println("[INFO] Mounting Metrics routes...")
	routeDetails.MetricsRoutes(app, db)

	log.Println("[INFO] Mounting Inventory routes...")
	routeDetails.InventoryRoutes(app, db)

	log.Println("[INFO] Mounting Parts routes...")
	routeDetails.PartsRoutes(app, db, docs, configs.Plant.UploadMaxMB)

	log.Println("[INFO] Mounting Maintenance routes...")
	routeDetails.MaintenanceRoutes(app, db)

	log.Println("[INFO] Mounting Pages...")
	routeDetails.PageRoutes(app, db)
}
