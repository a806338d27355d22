package route

import (
	"mantenimiento_backend/internals/features/metrics/reports/controller"
	"mantenimiento_backend/internals/features/metrics/reports/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// ReportRoutes are read-only and public, like the other listing routes.
func ReportRoutes(r fiber.Router, db *gorm.DB) {
	h := controller.NewReportController(db)

	r.Get("/obtener_anios_eficiencia", h.Years(repository.TableEfficiency))
	r.Get("/obtener_semanas_por_anio/:anio", h.Weeks(repository.TableEfficiency))
	r.Get("/obtener_eficiencias_semanal/:anio/:semana", h.WeeklyEfficiency)

	r.Get("/obtener_anios_disponibilidad", h.Years(repository.TableAvailability))
	r.Get("/obtener_semanas_disponibilidad_por_anio/:anio", h.Weeks(repository.TableAvailability))
	r.Get("/obtener_disponibilidad_semanal/:anio/:semana", h.WeeklyAvailability)

	r.Get("/obtener_maquinas", h.Machines)
	r.Get("/obtener_indicadores_maquinas", h.Indicators)
	r.Get("/exportar_eficiencias_semanal/:anio/:semana", h.ExportWeek)

	r.Get("/api/get_monthly_data", h.MonthlyData)
	r.Get("/api/get_all_monthly_data", h.AllMonthlyData)
}
