package controller

import (
	"strings"

	"mantenimiento_backend/internals/features/inventory/materials/dto"
	"mantenimiento_backend/internals/features/inventory/materials/model"
	"mantenimiento_backend/internals/features/inventory/materials/repository"
	helper "mantenimiento_backend/internals/helpers"
	"mantenimiento_backend/internals/helpers/crud"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type MaterialController struct {
	*crud.Controller[model.MaterialModel, dto.MaterialRequest, *dto.MaterialRequest]
	Repo *repository.MaterialRepository
}

func NewMaterialController(db *gorm.DB) *MaterialController {
	repo := repository.NewMaterialRepository(db)
	return &MaterialController{
		Controller: crud.NewController[model.MaterialModel, dto.MaterialRequest](repo.Repository),
		Repo:       repo,
	}
}

// GET /obtener_materiales?q=  and  GET /buscar?q=
func (mc *MaterialController) ListViews(c *fiber.Ctx) error {
	items, err := mc.Repo.ListViews(c.UserContext(), c.Query("q"))
	if err != nil {
		return helper.RespondError(c, err)
	}
	return c.JSON(items)
}

// GET /obtener/:id
func (mc *MaterialController) GetView(c *fiber.Ctx) error {
	id, err := crud.ParamID(c, "id")
	if err != nil {
		return helper.RespondError(c, err)
	}
	item, err := mc.Repo.GetView(c.UserContext(), id)
	if err != nil {
		return helper.RespondError(c, err)
	}
	return c.JSON(item)
}

// POST /eliminar/:no_parte_interno
func (mc *MaterialController) DeleteByPart(c *fiber.Ctx) error {
	np := strings.TrimSpace(c.Params("no_parte_interno"))
	if np == "" {
		return helper.RespondError(c, helper.FieldErr("no_parte_interno", "no_parte_interno is required"))
	}
	n, err := mc.Repo.DeleteByPart(c.UserContext(), np)
	if err != nil {
		return helper.RespondError(c, err)
	}
	return helper.JsonDeleted(c, "material deleted", fiber.Map{"no_parte_interno": np, "deleted": n})
}

// GET /check_scrap
func (mc *MaterialController) RecentScrap(c *fiber.Ctx) error {
	rows, err := mc.Repo.RecentScrap(c.UserContext(), 10)
	if err != nil {
		return helper.RespondError(c, err)
	}
	return helper.JsonList(c, "last 10 scrap records", rows)
}
