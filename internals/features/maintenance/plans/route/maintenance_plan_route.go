package route

import (
	"mantenimiento_backend/internals/constants"
	"mantenimiento_backend/internals/features/maintenance/plans/controller"
	authMiddleware "mantenimiento_backend/internals/middlewares/auth"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func MaintenancePlanRoutes(r fiber.Router, db *gorm.DB) {
	h := controller.NewPlanController(db)
	adminOnly := authMiddleware.OnlyRoles(constants.RoleErrorAdmin("maintenance records"), constants.AdminOnly...)

	r.Get("/api/mantenimiento", h.List)
	r.Post("/api/mantenimiento/save", authMiddleware.RequireLogin(), h.Save)
	r.Post("/api/mantenimiento/update", authMiddleware.RequireLogin(), h.UpdateCell)
	r.Post("/api/mantenimiento/reorder", authMiddleware.RequireLogin(), h.Reorder)
	r.Delete("/api/mantenimiento/delete/:id", adminOnly, h.Delete)
	r.Get("/api/mantenimiento/:year<int>", h.ByYear)
}
