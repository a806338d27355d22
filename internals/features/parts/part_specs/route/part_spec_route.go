package route

import (
	"mantenimiento_backend/internals/constants"
	"mantenimiento_backend/internals/features/parts/part_specs/controller"
	authMiddleware "mantenimiento_backend/internals/middlewares/auth"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func PartSpecRoutes(r fiber.Router, db *gorm.DB) {
	h := controller.NewPartSpecController(db)
	adminOnly := authMiddleware.OnlyRoles(constants.RoleErrorAdmin("part specs"), constants.AdminOnly...)

	r.Post("/guardar_parte_pieza", authMiddleware.RequireLogin(), h.Create)
	r.Post("/api/partes/add", authMiddleware.RequireLogin(), h.Quick.Create)
	r.Get("/obtener_partes_piezas", h.List)
	r.Get("/obtener_parte_pieza/:id", h.Get)
	r.Get("/obtener_numeros_parte_interno", h.InternalNumbers)
	r.Get("/obtener_parte_pieza_interno", h.InternalNumbers)
	r.Get("/buscar_parte_pieza_interno", h.Search)
	r.Post("/actualizar_parte_pieza/:id", adminOnly, h.Update)
	r.Post("/eliminar_parte_pieza/:id", adminOnly, h.Delete)
}
