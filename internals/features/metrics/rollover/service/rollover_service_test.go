package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	availabilityModel "mantenimiento_backend/internals/features/metrics/availability/model"
	efficiencyModel "mantenimiento_backend/internals/features/metrics/efficiency/model"
	historyModel "mantenimiento_backend/internals/features/metrics/history/model"
	"mantenimiento_backend/internals/features/metrics/rollover/service"
	"mantenimiento_backend/internals/testutil"

	"gorm.io/gorm"
)

// Wednesday of ISO week 11/2024.
var wednesday = time.Date(2024, 3, 13, 10, 0, 0, 0, time.UTC)

func seed(t *testing.T, db *gorm.DB) {
	t.Helper()
	eff := []efficiencyModel.EfficiencyModel{
		{Maquina: "T1", NoParteInterno: "P-100", NombreOperador: "Ana", PiezasProgramadas: 100, PiezasReales: 95, Scrap: 5, Fecha: "2024-03-04", Semana: 10, Anio: 2024},
		{Maquina: "T2", NoParteInterno: "P-200", NombreOperador: "Luis", PiezasProgramadas: 50, PiezasReales: 50, Fecha: "2024-02-20", Semana: 8, Anio: 2024},
		{Maquina: "T1", NoParteInterno: "P-100", NombreOperador: "Ana", PiezasProgramadas: 80, PiezasReales: 70, Scrap: 1, Fecha: "2024-03-12", Semana: 11, Anio: 2024},
	}
	if err := db.Create(&eff).Error; err != nil {
		t.Fatalf("seed eficiencia: %v", err)
	}
	avail := []availabilityModel.AvailabilityModel{
		{Maquina: "T1", Operador: "Ana", CausaParo: "cambio de herramental", MinutosPerdidos: 30, Fecha: "2024-03-05", Semana: 10, Anio: 2024},
		{Maquina: "T1", Operador: "Ana", CausaParo: "falla eléctrica", MinutosPerdidos: 15, Fecha: "2024-03-11", Semana: 11, Anio: 2024},
	}
	if err := db.Create(&avail).Error; err != nil {
		t.Fatalf("seed disponibilidad: %v", err)
	}
}

func count(t *testing.T, db *gorm.DB, m any) int64 {
	t.Helper()
	var n int64
	if err := db.Model(m).Count(&n).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	return n
}

func newService(db *gorm.DB) *service.Service {
	svc := service.New(db, time.UTC, nil)
	svc.Now = func() time.Time { return wednesday }
	return svc
}

func TestWindowStartsOnMonday(t *testing.T) {
	svc := newService(nil)
	start, end := svc.Window()
	if got := end.Format("2006-01-02"); got != "2024-03-11" {
		t.Fatalf("window end = %s, want 2024-03-11", got)
	}
	if got := start.Format("2006-01-02"); got != "2024-03-04" {
		t.Fatalf("window start = %s, want 2024-03-04", got)
	}
}

func TestRunArchivesClosedWeeksOnly(t *testing.T) {
	db := testutil.NewDB(t)
	seed(t, db)

	res, err := newService(db).Run(context.Background())
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if res.Week != 10 || res.Year != 2024 {
		t.Fatalf("closed week = %d/%d, want 10/2024", res.Week, res.Year)
	}
	if res.Efficiency != 2 || res.Availability != 1 {
		t.Fatalf("moved eff=%d avail=%d, want 2 and 1", res.Efficiency, res.Availability)
	}

	var live []efficiencyModel.EfficiencyModel
	db.Find(&live)
	if len(live) != 1 || live[0].Fecha != "2024-03-12" {
		t.Fatalf("live eficiencia = %+v, want only the current-week row", live)
	}
	if n := count(t, db, &availabilityModel.AvailabilityModel{}); n != 1 {
		t.Fatalf("live disponibilidad = %d, want 1", n)
	}

	var hist []historyModel.HistoricalEfficiencyModel
	db.Order("fecha").Find(&hist)
	if len(hist) != 2 {
		t.Fatalf("historial_eficiencia = %d rows, want 2", len(hist))
	}
	if hist[1].Maquina != "T1" || hist[1].PiezasReales != 95 || hist[1].RolloverSemana != 10 {
		t.Fatalf("archived row = %+v", hist[1])
	}
}

func TestRunTwiceDoesNotDuplicateHistory(t *testing.T) {
	db := testutil.NewDB(t)
	seed(t, db)
	svc := newService(db)

	if _, err := svc.Run(context.Background()); err != nil {
		t.Fatalf("first run: %v", err)
	}
	res, err := svc.Run(context.Background())
	if err != nil {
		t.Fatalf("second run: %v", err)
	}
	if res.Total() != 0 {
		t.Fatalf("second run moved %d rows, want 0", res.Total())
	}
	if n := count(t, db, &historyModel.HistoricalEfficiencyModel{}); n != 2 {
		t.Fatalf("historial_eficiencia = %d, want 2", n)
	}
	if n := count(t, db, &historyModel.HistoricalAvailabilityModel{}); n != 1 {
		t.Fatalf("historial_disponibilidad = %d, want 1", n)
	}
}

func TestRunRollsBackWhenLiveDeleteFails(t *testing.T) {
	db := testutil.NewDB(t)
	seed(t, db)

	err := db.Callback().Delete().Before("gorm:delete").Register("test:fail_disponibilidad", func(tx *gorm.DB) {
		if tx.Statement.Table == "disponibilidad" {
			_ = tx.AddError(errors.New("forced delete failure"))
		}
	})
	if err != nil {
		t.Fatalf("register callback: %v", err)
	}

	if _, err := newService(db).Run(context.Background()); err == nil {
		t.Fatal("run succeeded, want forced failure")
	}

	if n := count(t, db, &efficiencyModel.EfficiencyModel{}); n != 3 {
		t.Fatalf("live eficiencia = %d, want 3", n)
	}
	if n := count(t, db, &availabilityModel.AvailabilityModel{}); n != 2 {
		t.Fatalf("live disponibilidad = %d, want 2", n)
	}
	if n := count(t, db, &historyModel.HistoricalEfficiencyModel{}); n != 0 {
		t.Fatalf("historial_eficiencia = %d, want 0", n)
	}
	if n := count(t, db, &historyModel.HistoricalAvailabilityModel{}); n != 0 {
		t.Fatalf("historial_disponibilidad = %d, want 0", n)
	}
}
