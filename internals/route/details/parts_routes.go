package details

import (
	MaintenancePlanRoutes "mantenimiento_backend/internals/features/maintenance/plans/route"
	AmefRoutes "mantenimiento_backend/internals/features/parts/amef/route"
	DocumentRoutes "mantenimiento_backend/internals/features/parts/documents/route"
	"mantenimiento_backend/internals/features/parts/documents/storage"
	PartSpecRoutes "mantenimiento_backend/internals/features/parts/part_specs/route"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func PartsRoutes(app *fiber.App, db *gorm.DB, docs storage.Store, maxMB int) {
	PartSpecRoutes.PartSpecRoutes(app, db)
	AmefRoutes.AmefRoutes(app, db)
	DocumentRoutes.DocumentRoutes(app, docs, maxMB)
}

func MaintenanceRoutes(app *fiber.App, db *gorm.DB) {
	MaintenancePlanRoutes.MaintenancePlanRoutes(app, db)
}
