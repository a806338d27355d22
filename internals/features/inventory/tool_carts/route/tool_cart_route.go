package route

import (
	"mantenimiento_backend/internals/constants"
	"mantenimiento_backend/internals/features/inventory/tool_carts/dto"
	"mantenimiento_backend/internals/features/inventory/tool_carts/model"
	"mantenimiento_backend/internals/features/inventory/tool_carts/repository"
	"mantenimiento_backend/internals/helpers/crud"
	authMiddleware "mantenimiento_backend/internals/middlewares/auth"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func ToolCartRoutes(r fiber.Router, db *gorm.DB) {
	h := crud.NewController[model.ToolCartModel, dto.ToolCartRequest](repository.NewToolCartRepository(db))
	adminOnly := authMiddleware.OnlyRoles(constants.RoleErrorAdmin("tool carts"), constants.AdminOnly...)

	r.Post("/guardar_carrito_herramientas", authMiddleware.RequireLogin(), h.Create)
	r.Get("/obtener_carrito_herramientas", h.List)
	r.Get("/obtener_carrito_herramientas/:id", h.Get)
	r.Get("/buscar_carrito_herramientas", h.Search)
	r.Post("/actualizar_carrito_herramientas/:id", adminOnly, h.Update)
	r.Post("/eliminar_carrito_herramientas/:id", adminOnly, h.Delete)
}
