package details

import (
	BandRoutes "mantenimiento_backend/internals/features/inventory/bands/route"
	GambetaRoutes "mantenimiento_backend/internals/features/inventory/gambetas/route"
	LockerRoutes "mantenimiento_backend/internals/features/inventory/lockers/route"
	MaterialRoutes "mantenimiento_backend/internals/features/inventory/materials/route"
	OfficeSupplyRoutes "mantenimiento_backend/internals/features/inventory/office_supplies/route"
	ShelfMaterialRoutes "mantenimiento_backend/internals/features/inventory/shelf_materials/route"
	SummaryRoutes "mantenimiento_backend/internals/features/inventory/summary/route"
	ToolCartRoutes "mantenimiento_backend/internals/features/inventory/tool_carts/route"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func InventoryRoutes(app *fiber.App, db *gorm.DB) {
	LockerRoutes.LockerRoutes(app, db)
	GambetaRoutes.GambetaRoutes(app, db)
	BandRoutes.BandRoutes(app, db)
	ToolCartRoutes.ToolCartRoutes(app, db)
	ShelfMaterialRoutes.ShelfMaterialRoutes(app, db)
	OfficeSupplyRoutes.OfficeSupplyRoutes(app, db)
	MaterialRoutes.MaterialRoutes(app, db)
	SummaryRoutes.SummaryRoutes(app, db)
}
