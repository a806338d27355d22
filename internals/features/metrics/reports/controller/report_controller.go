package controller

import (
	"strings"

	"mantenimiento_backend/internals/features/metrics/reports/dto"
	"mantenimiento_backend/internals/features/metrics/reports/service"
	helper "mantenimiento_backend/internals/helpers"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type ReportController struct {
	Svc *service.ReportService
}

func NewReportController(db *gorm.DB) *ReportController {
	return &ReportController{Svc: service.NewReportService(db)}
}

// GET /obtener_anios_eficiencia, /obtener_anios_disponibilidad
func (h *ReportController) Years(table string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		years, err := h.Svc.Years(c.UserContext(), table)
		if err != nil {
			return helper.RespondError(c, err)
		}
		return c.JSON(years)
	}
}

// GET /obtener_semanas_por_anio/:anio, /obtener_semanas_disponibilidad_por_anio/:anio
func (h *ReportController) Weeks(table string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		year, err := service.ParseYear(c.Params("anio"))
		if err != nil {
			return helper.RespondError(c, err)
		}
		weeks, err := h.Svc.Weeks(c.UserContext(), table, year)
		if err != nil {
			return helper.RespondError(c, err)
		}
		return c.JSON(weeks)
	}
}

// GET /obtener_eficiencias_semanal/:anio/:semana
func (h *ReportController) WeeklyEfficiency(c *fiber.Ctx) error {
	f, err := service.ParseWeek(c.Params("anio"), c.Params("semana"))
	if err != nil {
		return helper.RespondError(c, err)
	}
	rows, err := h.Svc.WeeklyEfficiency(c.UserContext(), f.Year, f.Week)
	if err != nil {
		return helper.RespondError(c, err)
	}
	return c.JSON(rows)
}

// GET /obtener_disponibilidad_semanal/:anio/:semana
func (h *ReportController) WeeklyAvailability(c *fiber.Ctx) error {
	f, err := service.ParseWeek(c.Params("anio"), c.Params("semana"))
	if err != nil {
		return helper.RespondError(c, err)
	}
	rows, err := h.Svc.WeeklyAvailability(c.UserContext(), f.Year, f.Week)
	if err != nil {
		return helper.RespondError(c, err)
	}
	return c.JSON(rows)
}

// GET /obtener_maquinas
func (h *ReportController) Machines(c *fiber.Ctx) error {
	rows, err := h.Svc.MachineParts(c.UserContext())
	if err != nil {
		return helper.RespondError(c, err)
	}
	return c.JSON(rows)
}

// GET /obtener_indicadores_maquinas[?anio=&semana=]
func (h *ReportController) Indicators(c *fiber.Ctx) error {
	var filter *dto.WeekFilter
	anio, semana := strings.TrimSpace(c.Query("anio")), strings.TrimSpace(c.Query("semana"))
	switch {
	case anio == "" && semana == "":
	case anio == "" || semana == "":
		return helper.RespondError(c, helper.ValidationErr("anio and semana must be given together"))
	default:
		f, err := service.ParseWeek(anio, semana)
		if err != nil {
			return helper.RespondError(c, err)
		}
		filter = &f
	}

	rows, err := h.Svc.Indicators(c.UserContext(), filter)
	if err != nil {
		return helper.RespondError(c, err)
	}
	return c.JSON(rows)
}

// GET /exportar_eficiencias_semanal/:anio/:semana
func (h *ReportController) ExportWeek(c *fiber.Ctx) error {
	f, err := service.ParseWeek(c.Params("anio"), c.Params("semana"))
	if err != nil {
		return helper.RespondError(c, err)
	}
	data, filename, err := h.Svc.ExportWeek(c.UserContext(), f)
	if err != nil {
		return helper.RespondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Attachment(filename)
	return c.Send(data)
}

// GET /api/get_monthly_data?month=M[&year=Y]
func (h *ReportController) MonthlyData(c *fiber.Ctx) error {
	if strings.TrimSpace(c.Query("month")) == "" {
		return helper.RespondError(c, helper.FieldErr("month", "month is required"))
	}
	month := c.QueryInt("month", 0)
	m, err := h.Svc.Month(c.UserContext(), month, c.QueryInt("year", 0))
	if err != nil {
		return helper.RespondError(c, err)
	}
	return helper.JsonOK(c, "ok", fiber.Map{
		"total_manufactured": m.TotalManufactured,
		"total_scrap":        m.TotalScrap,
	})
}

// GET /api/get_all_monthly_data[?year=Y]
func (h *ReportController) AllMonthlyData(c *fiber.Ctx) error {
	rows, err := h.Svc.MonthlyTotals(c.UserContext(), c.QueryInt("year", 0))
	if err != nil {
		return helper.RespondError(c, err)
	}
	return helper.JsonList(c, "ok", rows)
}

