package controller

import (
	"strings"

	"mantenimiento_backend/internals/features/inventory/lockers/dto"
	"mantenimiento_backend/internals/features/inventory/lockers/model"
	"mantenimiento_backend/internals/features/inventory/lockers/repository"
	helper "mantenimiento_backend/internals/helpers"
	"mantenimiento_backend/internals/helpers/crud"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type LockerController struct {
	*crud.Controller[model.LockerModel, dto.LockerRequest, *dto.LockerRequest]
	Repo *repository.LockerRepository
}

func NewLockerController(db *gorm.DB) *LockerController {
	repo := repository.NewLockerRepository(db)
	return &LockerController{
		Controller: crud.NewController[model.LockerModel, dto.LockerRequest](repo.Repository),
		Repo:       repo,
	}
}

// GET /obtener_lockers
func (h *LockerController) ProductMeasures(c *fiber.Ctx) error {
	rows, err := h.Repo.ProductMeasures(c.UserContext())
	if err != nil {
		return helper.RespondError(c, err)
	}
	return c.JSON(rows)
}

// GET /obtener_todos_nombres_lockers
func (h *LockerController) ProductNames(c *fiber.Ctx) error {
	names, err := h.Repo.ProductNames(c.UserContext())
	if err != nil {
		return helper.RespondError(c, err)
	}
	return c.JSON(names)
}

// GET /obtener_registros_lockers
func (h *LockerController) StockRecords(c *fiber.Ctx) error {
	rows, err := h.Repo.StockRecords(c.UserContext())
	if err != nil {
		return helper.RespondError(c, err)
	}
	return c.JSON(rows)
}

// GET /obtener_detalle_locker_por_nombre?nombre=
// Unknown names answer null, which the pickers treat as "no measure".
func (h *LockerController) DetailByName(c *fiber.Ctx) error {
	nombre := strings.TrimSpace(c.Query("nombre"))
	if nombre == "" {
		return helper.RespondError(c, helper.FieldErr("nombre", "nombre is required"))
	}
	medida, err := h.Repo.MeasureByName(c.UserContext(), nombre)
	if err != nil {
		if helper.IsKind(err, helper.KindNotFound) {
			return c.JSON(nil)
		}
		return helper.RespondError(c, err)
	}
	return c.JSON(fiber.Map{"medida_producto": medida})
}
