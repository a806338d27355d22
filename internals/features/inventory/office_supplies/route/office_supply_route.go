package route

import (
	"mantenimiento_backend/internals/constants"
	"mantenimiento_backend/internals/features/inventory/office_supplies/dto"
	"mantenimiento_backend/internals/features/inventory/office_supplies/model"
	"mantenimiento_backend/internals/features/inventory/office_supplies/repository"
	"mantenimiento_backend/internals/helpers/crud"
	authMiddleware "mantenimiento_backend/internals/middlewares/auth"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func OfficeSupplyRoutes(r fiber.Router, db *gorm.DB) {
	h := crud.NewController[model.OfficeSupplyModel, dto.OfficeSupplyRequest](repository.NewOfficeSupplyRepository(db))
	adminOnly := authMiddleware.OnlyRoles(constants.RoleErrorAdmin("office supplies"), constants.AdminOnly...)

	r.Post("/guardar_papeleria", authMiddleware.RequireLogin(), h.Create)
	r.Get("/obtener_papeleria", h.List)
	r.Get("/obtener_papeleria/:id", h.Get)
	r.Get("/buscar_papeleria", h.Search)
	r.Post("/actualizar_papeleria/:id", adminOnly, h.Update)
	r.Post("/eliminar_papeleria/:id", adminOnly, h.Delete)
}
