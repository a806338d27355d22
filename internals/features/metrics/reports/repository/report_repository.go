package repository

import (
	"context"
	"fmt"

	"mantenimiento_backend/internals/features/metrics/reports/dto"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Live metric tables that carry ISO semana/anio columns.
const (
	TableEfficiency   = "eficiencia"
	TableAvailability = "disponibilidad"
)

var weekTables = map[string]bool{
	TableEfficiency:   true,
	TableAvailability: true,
}

type ReportRepository struct {
	DB *gorm.DB
}

func NewReportRepository(db *gorm.DB) *ReportRepository {
	return &ReportRepository{DB: db}
}

func quoted(table string) (string, error) {
	if !weekTables[table] {
		return "", fmt.Errorf("unknown metrics table %q", table)
	}
	return pq.QuoteIdentifier(table), nil
}

// DistinctYears returns the ISO years present in table, newest first.
func (r *ReportRepository) DistinctYears(ctx context.Context, table string) ([]int, error) {
	t, err := quoted(table)
	if err != nil {
		return nil, err
	}
	out := make([]int, 0)
	err = r.DB.WithContext(ctx).
		Raw("SELECT DISTINCT anio FROM " + t + " WHERE anio IS NOT NULL AND anio > 0 ORDER BY anio DESC").
		Scan(&out).Error
	return out, err
}

// DistinctWeeks returns the ISO weeks of year present in table, ascending.
func (r *ReportRepository) DistinctWeeks(ctx context.Context, table string, year int) ([]int, error) {
	t, err := quoted(table)
	if err != nil {
		return nil, err
	}
	out := make([]int, 0)
	err = r.DB.WithContext(ctx).
		Raw("SELECT DISTINCT semana FROM "+t+" WHERE anio = ? AND semana IS NOT NULL AND semana > 0 ORDER BY semana ASC", year).
		Scan(&out).Error
	return out, err
}

type EfficiencyTotals struct {
	Maquina     string
	PiezasReal  float64
	PiezasScrap float64
}

type AvailabilityTotals struct {
	Maquina     string
	MinutosParo int64
}

func weekScope(f *dto.WeekFilter) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if f == nil {
			return db
		}
		return db.Where("anio = ? AND semana = ?", f.Year, f.Week)
	}
}

func (r *ReportRepository) EfficiencyByMachine(ctx context.Context, f *dto.WeekFilter) ([]EfficiencyTotals, error) {
	out := make([]EfficiencyTotals, 0)
	err := r.DB.WithContext(ctx).Table(TableEfficiency).
		Scopes(weekScope(f)).
		Select("maquina, COALESCE(SUM(piezas_reales), 0) AS piezas_real, COALESCE(SUM(scrap), 0) AS piezas_scrap").
		Group("maquina").
		Scan(&out).Error
	return out, err
}

func (r *ReportRepository) AvailabilityByMachine(ctx context.Context, f *dto.WeekFilter) ([]AvailabilityTotals, error) {
	out := make([]AvailabilityTotals, 0)
	err := r.DB.WithContext(ctx).Table(TableAvailability).
		Scopes(weekScope(f)).
		Select("maquina, COALESCE(SUM(minutos_perdidos), 0) AS minutos_paro").
		Group("maquina").
		Scan(&out).Error
	return out, err
}

// MachineParts lists distinct (machine, part) pairs of both live tables.
func (r *ReportRepository) MachineParts(ctx context.Context) ([]dto.MachinePart, error) {
	out := make([]dto.MachinePart, 0)
	err := r.DB.WithContext(ctx).Raw(`
		SELECT maquina, COALESCE(no_parte_interno, '') AS no_parte_interno FROM eficiencia
		UNION
		SELECT maquina, COALESCE(no_parte_interno, '') AS no_parte_interno FROM disponibilidad
		ORDER BY maquina, no_parte_interno`).
		Scan(&out).Error
	return out, err
}

type MaterialOrderRow struct {
	FechaOrden    string
	CantidadLaton int
	Scrap         int
}

// MaterialOrders returns the dated bar orders used for the monthly totals.
func (r *ReportRepository) MaterialOrders(ctx context.Context) ([]MaterialOrderRow, error) {
	out := make([]MaterialOrderRow, 0)
	err := r.DB.WithContext(ctx).Table("materiales").
		Select("fecha_orden, COALESCE(cantidad_laton, 0) AS cantidad_laton, COALESCE(scrap, 0) AS scrap").
		Where("fecha_orden IS NOT NULL AND fecha_orden <> ''").
		Scan(&out).Error
	return out, err
}
