package route

import (
	"mantenimiento_backend/internals/constants"
	"mantenimiento_backend/internals/features/metrics/availability/dto"
	"mantenimiento_backend/internals/features/metrics/availability/model"
	"mantenimiento_backend/internals/features/metrics/availability/repository"
	"mantenimiento_backend/internals/helpers/crud"
	authMiddleware "mantenimiento_backend/internals/middlewares/auth"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func AvailabilityRoutes(r fiber.Router, db *gorm.DB) {
	repo := repository.NewAvailabilityRepository(db)
	h := crud.NewController[model.AvailabilityModel, dto.AvailabilityRequest](repo.Repository)

	adminOnly := authMiddleware.OnlyRoles(constants.RoleErrorAdmin("availability records"), constants.AdminOnly...)

	r.Post("/guardar_disponibilidad", authMiddleware.RequireLogin(), h.Create)
	r.Get("/obtener_disponibilidades", h.List)
	r.Get("/buscar_disponibilidades", h.Search)
	r.Get("/obtener_disponibilidad/:id", h.Get)
	r.Post("/actualizar_disponibilidad/:id", adminOnly, h.Update)
	r.Post("/eliminar_disponibilidad/:id", adminOnly, h.Delete)
}
