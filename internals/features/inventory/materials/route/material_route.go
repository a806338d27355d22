package route

import (
	"mantenimiento_backend/internals/constants"
	"mantenimiento_backend/internals/features/inventory/materials/controller"
	authMiddleware "mantenimiento_backend/internals/middlewares/auth"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// MaterialRoutes keeps the historical unprefixed paths of the bar-order form.
func MaterialRoutes(r fiber.Router, db *gorm.DB) {
	h := controller.NewMaterialController(db)
	adminOnly := authMiddleware.OnlyRoles(constants.RoleErrorAdmin("materials"), constants.AdminOnly...)

	r.Post("/guardar", authMiddleware.RequireLogin(), h.Create)
	r.Post("/materiales", authMiddleware.RequireLogin(), h.Create)
	r.Get("/obtener_materiales", h.ListViews)
	r.Get("/obtener/:id", h.GetView)
	r.Get("/buscar", h.ListViews)
	r.Get("/check_scrap", h.RecentScrap)
	r.Post("/actualizar/:id", adminOnly, h.Update)
	r.Post("/eliminar/:no_parte_interno", adminOnly, h.DeleteByPart)
}
