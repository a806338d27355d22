package route

import (
	"mantenimiento_backend/internals/features/inventory/summary/controller"
	authMiddleware "mantenimiento_backend/internals/middlewares/auth"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SummaryRoutes(r fiber.Router, db *gorm.DB) {
	h := controller.NewSummaryController(db)

	r.Get("/api/inventario/resumen", authMiddleware.RequireLogin(), h.Valuation)
	r.Get("/api/inventario/alertas", authMiddleware.RequireLogin(), h.Alerts)
}
