package controller

import (
	"mantenimiento_backend/internals/features/maintenance/plans/dto"
	"mantenimiento_backend/internals/features/maintenance/plans/repository"
	helper "mantenimiento_backend/internals/helpers"
	"mantenimiento_backend/internals/helpers/crud"
	"mantenimiento_backend/internals/helpers/dbtime"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type PlanController struct {
	Repo      *repository.PlanRepository
	Validator *validator.Validate
}

func NewPlanController(db *gorm.DB) *PlanController {
	return &PlanController{Repo: repository.NewPlanRepository(db), Validator: helper.NewValidator()}
}

// GET /api/mantenimiento
func (h *PlanController) List(c *fiber.Ctx) error {
	rows, err := h.Repo.List(c.UserContext())
	if err != nil {
		return helper.RespondError(c, err)
	}
	return c.JSON(rows)
}

// GET /api/mantenimiento/:year
func (h *PlanController) ByYear(c *fiber.Ctx) error {
	year, err := c.ParamsInt("year")
	if err != nil || year < 1 {
		return helper.RespondError(c, helper.FieldErr("year", "year must be a positive integer"))
	}
	rows, err := h.Repo.ByYear(c.UserContext(), year)
	if err != nil {
		return helper.RespondError(c, err)
	}
	return c.JSON(rows)
}

// POST /api/mantenimiento/save
func (h *PlanController) Save(c *fiber.Ctx) error {
	var req dto.SavePlanRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.RespondError(c, helper.ValidationErr("invalid request body"))
	}
	req.Normalize()
	if err := helper.ValidateStruct(h.Validator, &req); err != nil {
		return helper.RespondError(c, err)
	}
	if req.Year == 0 {
		req.Year = dbtime.NowInPlant(c).Year()
	}

	m, created, err := h.Repo.Save(c.UserContext(), req)
	if err != nil {
		return helper.RespondError(c, err)
	}
	if created {
		return helper.JsonCreated(c, "record saved", m)
	}
	return helper.JsonUpdated(c, "record updated", m)
}

// POST /api/mantenimiento/update
func (h *PlanController) UpdateCell(c *fiber.Ctx) error {
	var req dto.UpdateCellRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.RespondError(c, helper.ValidationErr("invalid request body"))
	}
	req.Normalize()
	if err := helper.ValidateStruct(h.Validator, &req); err != nil {
		return helper.RespondError(c, err)
	}
	m, err := h.Repo.SetCell(c.UserContext(), req.MachineID, req.CellKey(), req.Cell())
	if err != nil {
		return helper.RespondError(c, err)
	}
	return helper.JsonUpdated(c, "status updated", m)
}

// POST /api/mantenimiento/reorder  [{id, order_index}]
func (h *PlanController) Reorder(c *fiber.Ctx) error {
	var items []dto.ReorderItem
	if err := c.BodyParser(&items); err != nil {
		return helper.RespondError(c, helper.ValidationErr("invalid request body"))
	}
	if err := dto.CheckReorder(items); err != nil {
		return helper.RespondError(c, err)
	}
	if err := h.Repo.Reorder(c.UserContext(), items); err != nil {
		return helper.RespondError(c, err)
	}
	return helper.JsonOK(c, "order updated", fiber.Map{"count": len(items)})
}

// DELETE /api/mantenimiento/delete/:id
func (h *PlanController) Delete(c *fiber.Ctx) error {
	id, err := crud.ParamID(c, "id")
	if err != nil {
		return helper.RespondError(c, err)
	}
	if err := h.Repo.Delete(c.UserContext(), id); err != nil {
		return helper.RespondError(c, err)
	}
	return helper.JsonDeleted(c, "record deleted", fiber.Map{"id": id})
}
