package controller

import (
	"mantenimiento_backend/internals/features/parts/part_specs/dto"
	"mantenimiento_backend/internals/features/parts/part_specs/model"
	"mantenimiento_backend/internals/features/parts/part_specs/repository"
	helper "mantenimiento_backend/internals/helpers"
	"mantenimiento_backend/internals/helpers/crud"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type PartSpecController struct {
	*crud.Controller[model.PartSpecModel, dto.PartSpecRequest, *dto.PartSpecRequest]
	Quick *crud.Controller[model.PartSpecModel, dto.QuickPartRequest, *dto.QuickPartRequest]
	Repo  *repository.PartSpecRepository
}

func NewPartSpecController(db *gorm.DB) *PartSpecController {
	repo := repository.NewPartSpecRepository(db)
	return &PartSpecController{
		Controller: crud.NewController[model.PartSpecModel, dto.PartSpecRequest](repo.Repository),
		Quick:      crud.NewController[model.PartSpecModel, dto.QuickPartRequest](repo.Repository),
		Repo:       repo,
	}
}

// GET /obtener_numeros_parte_interno, /obtener_parte_pieza_interno
func (h *PartSpecController) InternalNumbers(c *fiber.Ctx) error {
	nums, err := h.Repo.InternalNumbers(c.UserContext())
	if err != nil {
		return helper.RespondError(c, err)
	}
	return c.JSON(nums)
}
