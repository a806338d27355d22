package controller

import (
	"mantenimiento_backend/internals/features/inventory/summary/service"
	helper "mantenimiento_backend/internals/helpers"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type SummaryController struct {
	Svc *service.SummaryService
}

func NewSummaryController(db *gorm.DB) *SummaryController {
	return &SummaryController{Svc: service.NewSummaryService(db)}
}

// GET /api/inventario/resumen
func (h *SummaryController) Valuation(c *fiber.Ctx) error {
	v, err := h.Svc.Valuation(c.UserContext())
	if err != nil {
		return helper.RespondError(c, err)
	}
	return helper.JsonOK(c, "inventory valuation", v)
}

// GET /api/inventario/alertas
func (h *SummaryController) Alerts(c *fiber.Ctx) error {
	rows, err := h.Svc.Alerts(c.UserContext())
	if err != nil {
		return helper.RespondError(c, err)
	}
	return helper.JsonList(c, "stock alerts", rows)
}
