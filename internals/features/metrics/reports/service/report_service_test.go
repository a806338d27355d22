package service_test

import (
	"math"
	"testing"

	"mantenimiento_backend/internals/configs"
	"mantenimiento_backend/internals/features/metrics/reports/repository"
	"mantenimiento_backend/internals/features/metrics/reports/service"
)

func near(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestBuildIndicators(t *testing.T) {
	plant := configs.DefaultPlantConfig() // 3 shifts x 480 min x 5 days
	eff := []repository.EfficiencyTotals{
		{Maquina: "T1", PiezasReal: 95, PiezasScrap: 5},
		{Maquina: "T2", PiezasReal: 0, PiezasScrap: 0},
	}
	avail := []repository.AvailabilityTotals{
		{Maquina: "T1", MinutosParo: 720},
		{Maquina: "T3", MinutosParo: 36},
	}

	rows := service.BuildIndicators(plant, eff, avail)
	if len(rows) != 3 {
		t.Fatalf("got %d machines, want 3", len(rows))
	}
	if rows[0].Nombre != "T1" || rows[1].Nombre != "T2" || rows[2].Nombre != "T3" {
		t.Fatalf("rows not sorted by name: %+v", rows)
	}

	t1 := rows[0]
	if t1.MinutosProgramados != 7200 {
		t.Errorf("scheduled = %d, want 7200", t1.MinutosProgramados)
	}
	if !near(t1.PorcentajeTiempoMuerto, 10) {
		t.Errorf("T1 downtime%% = %v, want 10", t1.PorcentajeTiempoMuerto)
	}
	if !near(t1.PorcentajeScrap, 5) {
		t.Errorf("T1 scrap%% = %v, want 5", t1.PorcentajeScrap)
	}
	if t1.ObjetivoTiempoMuerto != plant.DowntimeTarget || t1.ObjetivoScrap != plant.ScrapTarget {
		t.Errorf("targets = %v/%v", t1.ObjetivoTiempoMuerto, t1.ObjetivoScrap)
	}

	if rows[1].PorcentajeScrap != 0 {
		t.Errorf("T2 with no production: scrap%% = %v, want 0", rows[1].PorcentajeScrap)
	}
	if !near(rows[2].PorcentajeTiempoMuerto, 0.5) || rows[2].PiezasProducidas != 0 {
		t.Errorf("T3 = %+v", rows[2])
	}
}

func TestParseWeek(t *testing.T) {
	cases := []struct {
		year, week string
		ok         bool
	}{
		{"2024", "10", true},
		{"2020", "53", true},
		{"2024", "53", false},
		{"2024", "0", false},
		{"abc", "10", false},
	}
	for _, tc := range cases {
		f, err := service.ParseWeek(tc.year, tc.week)
		if tc.ok && err != nil {
			t.Errorf("ParseWeek(%s, %s): %v", tc.year, tc.week, err)
		}
		if !tc.ok && err == nil {
			t.Errorf("ParseWeek(%s, %s) = %+v, want error", tc.year, tc.week, f)
		}
	}
}
