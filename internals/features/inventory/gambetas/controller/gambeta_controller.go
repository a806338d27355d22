package controller

import (
	"strings"

	"mantenimiento_backend/internals/features/inventory/gambetas/dto"
	"mantenimiento_backend/internals/features/inventory/gambetas/model"
	"mantenimiento_backend/internals/features/inventory/gambetas/repository"
	helper "mantenimiento_backend/internals/helpers"
	"mantenimiento_backend/internals/helpers/crud"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type GambetaController struct {
	*crud.Controller[model.GambetaModel, dto.GambetaRequest, *dto.GambetaRequest]
	Repo *repository.GambetaRepository
}

func NewGambetaController(db *gorm.DB) *GambetaController {
	repo := repository.NewGambetaRepository(db)
	return &GambetaController{
		Controller: crud.NewController[model.GambetaModel, dto.GambetaRequest](repo.Repository),
		Repo:       repo,
	}
}

// GET /obtener_info_producto_gambeta/:nombre/:nivel
func (h *GambetaController) ProductInfo(c *fiber.Ctx) error {
	nombre := strings.TrimSpace(c.Params("nombre"))
	nivel := strings.TrimSpace(c.Params("nivel"))
	m, err := h.Repo.ByNameAndLevel(c.UserContext(), nombre, nivel)
	if err != nil {
		if helper.IsKind(err, helper.KindNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Producto no encontrado")
		}
		return helper.RespondError(c, err)
	}
	return c.JSON(dto.ToGambetaInfo(m))
}

// GET /obtener_registros_gambetas
func (h *GambetaController) StockRecords(c *fiber.Ctx) error {
	rows, err := h.Repo.StockRecords(c.UserContext())
	if err != nil {
		return helper.RespondError(c, err)
	}
	return c.JSON(rows)
}

// GET /obtener_detalle_gambeta_por_nombre?nombre=
func (h *GambetaController) DetailByName(c *fiber.Ctx) error {
	nombre := strings.TrimSpace(c.Query("nombre"))
	if nombre == "" {
		return helper.RespondError(c, helper.FieldErr("nombre", "nombre is required"))
	}
	nivel, err := h.Repo.LevelByName(c.UserContext(), nombre)
	if err != nil {
		if helper.IsKind(err, helper.KindNotFound) {
			return c.JSON(nil)
		}
		return helper.RespondError(c, err)
	}
	return c.JSON(fiber.Map{"nivel": nivel})
}
