package route

import (
	"mantenimiento_backend/internals/constants"
	"mantenimiento_backend/internals/features/inventory/shelf_materials/dto"
	"mantenimiento_backend/internals/features/inventory/shelf_materials/model"
	"mantenimiento_backend/internals/features/inventory/shelf_materials/repository"
	"mantenimiento_backend/internals/helpers/crud"
	authMiddleware "mantenimiento_backend/internals/middlewares/auth"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func ShelfMaterialRoutes(r fiber.Router, db *gorm.DB) {
	h := crud.NewController[model.ShelfMaterialModel, dto.ShelfMaterialRequest](repository.NewShelfMaterialRepository(db))
	adminOnly := authMiddleware.OnlyRoles(constants.RoleErrorAdmin("shelf materials"), constants.AdminOnly...)

	r.Post("/guardar_material_estanteria", authMiddleware.RequireLogin(), h.Create)
	r.Get("/obtener_material_estanteria", h.List)
	r.Get("/obtener_material_estanteria/:id", h.Get)
	r.Get("/buscar_material_estanteria", h.Search)
	r.Post("/actualizar_material_estanteria/:id", adminOnly, h.Update)
	r.Post("/eliminar_material_estanteria/:id", adminOnly, h.Delete)
}
