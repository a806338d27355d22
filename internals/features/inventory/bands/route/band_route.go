package route

import (
	"mantenimiento_backend/internals/constants"
	"mantenimiento_backend/internals/features/inventory/bands/dto"
	"mantenimiento_backend/internals/features/inventory/bands/model"
	"mantenimiento_backend/internals/features/inventory/bands/repository"
	"mantenimiento_backend/internals/helpers/crud"
	authMiddleware "mantenimiento_backend/internals/middlewares/auth"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func BandRoutes(r fiber.Router, db *gorm.DB) {
	h := crud.NewController[model.BandModel, dto.BandRequest](repository.NewBandRepository(db))
	adminOnly := authMiddleware.OnlyRoles(constants.RoleErrorAdmin("bands"), constants.AdminOnly...)

	r.Post("/guardar_banda", authMiddleware.RequireLogin(), h.Create)
	r.Get("/obtener_bandas", h.List)
	r.Get("/obtener_banda/:id", h.Get)
	r.Get("/buscar_bandas", h.Search)
	r.Post("/actualizar_banda/:id", adminOnly, h.Update)
	r.Post("/eliminar_banda/:id", adminOnly, h.Delete)
}
