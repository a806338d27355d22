package details

import (
	AvailabilityRoutes "mantenimiento_backend/internals/features/metrics/availability/route"
	EfficiencyRoutes "mantenimiento_backend/internals/features/metrics/efficiency/route"
	HistoryRoutes "mantenimiento_backend/internals/features/metrics/history/route"
	ReportRoutes "mantenimiento_backend/internals/features/metrics/reports/route"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func MetricsRoutes(app *fiber.App, db *gorm.DB) {
	EfficiencyRoutes.EfficiencyRoutes(app, db)
	AvailabilityRoutes.AvailabilityRoutes(app, db)
	ReportRoutes.ReportRoutes(app, db)
	HistoryRoutes.HistoryRoutes(app, db)
}
