package route

import (
	"mantenimiento_backend/internals/constants"
	"mantenimiento_backend/internals/features/metrics/efficiency/dto"
	"mantenimiento_backend/internals/features/metrics/efficiency/model"
	"mantenimiento_backend/internals/features/metrics/efficiency/repository"
	"mantenimiento_backend/internals/helpers/crud"
	authMiddleware "mantenimiento_backend/internals/middlewares/auth"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func EfficiencyRoutes(r fiber.Router, db *gorm.DB) {
	repo := repository.NewEfficiencyRepository(db)
	h := crud.NewController[model.EfficiencyModel, dto.EfficiencyRequest](repo.Repository)

	adminOnly := authMiddleware.OnlyRoles(constants.RoleErrorAdmin("efficiency records"), constants.AdminOnly...)

	r.Post("/guardar_eficiencia", authMiddleware.RequireLogin(), h.Create)
	r.Get("/obtener_eficiencias", h.List)
	r.Get("/buscar_eficiencias", h.Search)
	r.Get("/obtener_eficiencia/:id", h.Get)
	r.Post("/actualizar_eficiencia/:id", adminOnly, h.Update)
	r.Post("/eliminar_eficiencia/:id", adminOnly, h.Delete)
}
