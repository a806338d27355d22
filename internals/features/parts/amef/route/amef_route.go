package route

import (
	"mantenimiento_backend/internals/constants"
	"mantenimiento_backend/internals/features/parts/amef/controller"
	authMiddleware "mantenimiento_backend/internals/middlewares/auth"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func AmefRoutes(r fiber.Router, db *gorm.DB) {
	h := controller.NewAmefController(db)
	adminOnly := authMiddleware.OnlyRoles(constants.RoleErrorAdmin("AMEF revisions"), constants.AdminOnly...)

	r.Get("/api/amef/revisions/:no_parte_interno", h.ListByPart)
	r.Post("/api/amef/revision", authMiddleware.RequireLogin(), h.Create)
	r.Put("/api/amef/revision/:id", adminOnly, h.Update)
	r.Delete("/api/amef/revision/:id", adminOnly, h.Delete)
}
