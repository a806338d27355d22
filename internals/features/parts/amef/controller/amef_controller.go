package controller

import (
	"context"
	"strings"

	"mantenimiento_backend/internals/features/parts/amef/dto"
	"mantenimiento_backend/internals/features/parts/amef/model"
	"mantenimiento_backend/internals/features/parts/amef/repository"
	partRepository "mantenimiento_backend/internals/features/parts/part_specs/repository"
	helper "mantenimiento_backend/internals/helpers"
	"mantenimiento_backend/internals/helpers/crud"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type AmefController struct {
	Repo      *repository.AmefRepository
	Parts     *partRepository.PartSpecRepository
	Validator *validator.Validate
}

func NewAmefController(db *gorm.DB) *AmefController {
	return &AmefController{
		Repo:      repository.NewAmefRepository(db),
		Parts:     partRepository.NewPartSpecRepository(db),
		Validator: helper.NewValidator(),
	}
}

func (h *AmefController) parse(c *fiber.Ctx) (*dto.AmefRevisionRequest, error) {
	var req dto.AmefRevisionRequest
	if err := c.BodyParser(&req); err != nil {
		return nil, helper.ValidationErr("invalid request body")
	}
	req.Normalize()
	if err := helper.ValidateStruct(h.Validator, &req); err != nil {
		return nil, err
	}
	return &req, nil
}

func (h *AmefController) requirePart(ctx context.Context, np string) error {
	ok, err := h.Parts.Exists(ctx, np)
	if err != nil {
		return err
	}
	if !ok {
		return helper.NotFoundErr("part " + np + " not found")
	}
	return nil
}

// GET /api/amef/revisions/:no_parte_interno
func (h *AmefController) ListByPart(c *fiber.Ctx) error {
	np := strings.TrimSpace(c.Params("no_parte_interno"))
	rows, err := h.Repo.ByPart(c.UserContext(), np)
	if err != nil {
		return helper.RespondError(c, err)
	}
	return c.JSON(rows)
}

// POST /api/amef/revision
func (h *AmefController) Create(c *fiber.Ctx) error {
	req, err := h.parse(c)
	if err != nil {
		return helper.RespondError(c, err)
	}
	if err := h.requirePart(c.UserContext(), req.NoParteInterno); err != nil {
		return helper.RespondError(c, err)
	}

	var m model.AmefRevisionModel
	req.ApplyTo(&m)
	if err := h.Repo.Create(c.UserContext(), &m); err != nil {
		return helper.RespondError(c, err)
	}
	return helper.JsonCreated(c, "AMEF revision saved", m)
}

// PUT /api/amef/revision/:id
func (h *AmefController) Update(c *fiber.Ctx) error {
	id, err := crud.ParamID(c, "id")
	if err != nil {
		return helper.RespondError(c, err)
	}
	req, err := h.parse(c)
	if err != nil {
		return helper.RespondError(c, err)
	}
	if err := h.requirePart(c.UserContext(), req.NoParteInterno); err != nil {
		return helper.RespondError(c, err)
	}

	m, err := h.Repo.Update(c.UserContext(), id, func(current *model.AmefRevisionModel) error {
		req.ApplyTo(current)
		return nil
	})
	if err != nil {
		return helper.RespondError(c, err)
	}
	return helper.JsonUpdated(c, "AMEF revision updated", m)
}

// DELETE /api/amef/revision/:id
func (h *AmefController) Delete(c *fiber.Ctx) error {
	id, err := crud.ParamID(c, "id")
	if err != nil {
		return helper.RespondError(c, err)
	}
	if err := h.Repo.Delete(c.UserContext(), id); err != nil {
		return helper.RespondError(c, err)
	}
	return helper.JsonDeleted(c, "AMEF revision deleted", fiber.Map{"id": id})
}
