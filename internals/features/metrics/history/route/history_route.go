package route

import (
	"mantenimiento_backend/internals/features/metrics/history/controller"
	"mantenimiento_backend/internals/features/metrics/history/model"
	"mantenimiento_backend/internals/features/metrics/history/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// HistoryRoutes expose the archived weeks, paginated and read-only.
func HistoryRoutes(r fiber.Router, db *gorm.DB) {
	eff := controller.New(repository.New[model.HistoricalEfficiencyModel](db, "efficiency"))
	avail := controller.New(repository.New[model.HistoricalAvailabilityModel](db, "availability"))

	g := r.Group("/api/historial")
	g.Get("/eficiencia", eff.List)
	g.Get("/disponibilidad", avail.List)
}
