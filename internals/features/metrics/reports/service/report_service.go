package service

import (
	"context"
	"sort"
	"strconv"
	"strings"

	"mantenimiento_backend/internals/configs"
	availabilityModel "mantenimiento_backend/internals/features/metrics/availability/model"
	availabilityRepo "mantenimiento_backend/internals/features/metrics/availability/repository"
	efficiencyModel "mantenimiento_backend/internals/features/metrics/efficiency/model"
	efficiencyRepo "mantenimiento_backend/internals/features/metrics/efficiency/repository"
	"mantenimiento_backend/internals/features/metrics/reports/dto"
	"mantenimiento_backend/internals/features/metrics/reports/repository"
	helper "mantenimiento_backend/internals/helpers"
	"mantenimiento_backend/internals/helpers/dbtime"

	"gorm.io/gorm"
)

type ReportService struct {
	Repo         *repository.ReportRepository
	Efficiency   *efficiencyRepo.EfficiencyRepository
	Availability *availabilityRepo.AvailabilityRepository
	Plant        func() configs.PlantConfig
}

func NewReportService(db *gorm.DB) *ReportService {
	return &ReportService{
		Repo:         repository.NewReportRepository(db),
		Efficiency:   efficiencyRepo.NewEfficiencyRepository(db),
		Availability: availabilityRepo.NewAvailabilityRepository(db),
		Plant:        func() configs.PlantConfig { return configs.Plant },
	}
}

func (s *ReportService) Years(ctx context.Context, table string) ([]int, error) {
	years, err := s.Repo.DistinctYears(ctx, table)
	if err != nil {
		return nil, helper.Classify(err, "years")
	}
	return years, nil
}

func (s *ReportService) Weeks(ctx context.Context, table string, year int) ([]int, error) {
	weeks, err := s.Repo.DistinctWeeks(ctx, table, year)
	if err != nil {
		return nil, helper.Classify(err, "weeks")
	}
	return weeks, nil
}

func (s *ReportService) WeeklyEfficiency(ctx context.Context, year, week int) ([]efficiencyModel.EfficiencyModel, error) {
	return s.Efficiency.ByWeek(ctx, year, week)
}

func (s *ReportService) WeeklyAvailability(ctx context.Context, year, week int) ([]availabilityModel.AvailabilityModel, error) {
	return s.Availability.ByWeek(ctx, year, week)
}

func (s *ReportService) MachineParts(ctx context.Context) ([]dto.MachinePart, error) {
	out, err := s.Repo.MachineParts(ctx)
	if err != nil {
		return nil, helper.Classify(err, "machines")
	}
	return out, nil
}

// Indicators computes downtime % and scrap % for every machine present in
// either live table. A nil filter covers all live rows.
func (s *ReportService) Indicators(ctx context.Context, f *dto.WeekFilter) ([]dto.MachineIndicator, error) {
	eff, err := s.Repo.EfficiencyByMachine(ctx, f)
	if err != nil {
		return nil, helper.Classify(err, "indicators")
	}
	avail, err := s.Repo.AvailabilityByMachine(ctx, f)
	if err != nil {
		return nil, helper.Classify(err, "indicators")
	}
	return BuildIndicators(s.Plant(), eff, avail), nil
}

// BuildIndicators merges the per-machine sums into indicator rows sorted by
// machine name.
func BuildIndicators(plant configs.PlantConfig, eff []repository.EfficiencyTotals, avail []repository.AvailabilityTotals) []dto.MachineIndicator {
	scheduled := plant.ScheduledMinutes()

	byName := make(map[string]*dto.MachineIndicator)
	row := func(name string) *dto.MachineIndicator {
		if r, ok := byName[name]; ok {
			return r
		}
		r := &dto.MachineIndicator{
			Nombre:               name,
			MinutosProgramados:   scheduled,
			ObjetivoTiempoMuerto: plant.DowntimeTarget,
			ObjetivoScrap:        plant.ScrapTarget,
		}
		byName[name] = r
		return r
	}

	for _, a := range avail {
		row(a.Maquina).MinutosParo += a.MinutosParo
	}
	for _, e := range eff {
		r := row(e.Maquina)
		r.PiezasScrap += e.PiezasScrap
		r.PiezasProducidas += e.PiezasReal + e.PiezasScrap
	}

	out := make([]dto.MachineIndicator, 0, len(byName))
	for _, r := range byName {
		if scheduled > 0 {
			r.PorcentajeTiempoMuerto = float64(r.MinutosParo) / float64(scheduled) * 100
		}
		if r.PiezasProducidas > 0 {
			r.PorcentajeScrap = r.PiezasScrap / r.PiezasProducidas * 100
		}
		out = append(out, *r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Nombre < out[j].Nombre })
	return out
}

// MonthlyTotals sums bar orders per calendar month (1..12) across all years,
// or only within year when year > 0. Rows with an unparseable fecha_orden
// are skipped.
func (s *ReportService) MonthlyTotals(ctx context.Context, year int) ([]dto.MonthlyTotals, error) {
	rows, err := s.Repo.MaterialOrders(ctx)
	if err != nil {
		return nil, helper.Classify(err, "monthly data")
	}

	var acc [13]dto.MonthlyTotals
	var seen [13]bool
	for _, r := range rows {
		t, err := dbtime.ParseDate(strings.TrimSpace(r.FechaOrden))
		if err != nil {
			continue
		}
		if year > 0 && t.Year() != year {
			continue
		}
		m := int(t.Month())
		acc[m].Month = m
		acc[m].TotalManufactured += r.CantidadLaton
		acc[m].TotalScrap += r.Scrap
		seen[m] = true
	}

	out := make([]dto.MonthlyTotals, 0, 12)
	for m := 1; m <= 12; m++ {
		if seen[m] {
			out = append(out, acc[m])
		}
	}
	return out, nil
}

// Month returns the totals of one month; a month with no orders is zero.
func (s *ReportService) Month(ctx context.Context, month, year int) (dto.MonthlyTotals, error) {
	if month < 1 || month > 12 {
		return dto.MonthlyTotals{}, helper.FieldErr("month", "month must be between 1 and 12")
	}
	all, err := s.MonthlyTotals(ctx, year)
	if err != nil {
		return dto.MonthlyTotals{}, err
	}
	for _, m := range all {
		if m.Month == month {
			return m, nil
		}
	}
	return dto.MonthlyTotals{Month: month}, nil
}

// ParseWeek validates the :anio/:semana route pair.
func ParseWeek(rawYear, rawWeek string) (dto.WeekFilter, error) {
	year, err := ParseYear(rawYear)
	if err != nil {
		return dto.WeekFilter{}, err
	}
	week, err := strconv.Atoi(strings.TrimSpace(rawWeek))
	if err != nil || !dbtime.ValidISOWeek(year, week) {
		return dto.WeekFilter{}, helper.FieldErr("semana", "semana is not a valid ISO week of anio")
	}
	return dto.WeekFilter{Year: year, Week: week}, nil
}

func ParseYear(raw string) (int, error) {
	year, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || year < 1 || year > 9999 {
		return 0, helper.FieldErr("anio", "anio must be a valid year")
	}
	return year, nil
}
