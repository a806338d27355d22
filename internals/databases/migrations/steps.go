package migrations

import (
	"fmt"
	"log"

	bandModel "mantenimiento_backend/internals/features/inventory/bands/model"
	gambetaModel "mantenimiento_backend/internals/features/inventory/gambetas/model"
	lockerModel "mantenimiento_backend/internals/features/inventory/lockers/model"
	materialModel "mantenimiento_backend/internals/features/inventory/materials/model"
	officeModel "mantenimiento_backend/internals/features/inventory/office_supplies/model"
	shelfModel "mantenimiento_backend/internals/features/inventory/shelf_materials/model"
	toolCartModel "mantenimiento_backend/internals/features/inventory/tool_carts/model"
	planModel "mantenimiento_backend/internals/features/maintenance/plans/model"
	availabilityModel "mantenimiento_backend/internals/features/metrics/availability/model"
	efficiencyModel "mantenimiento_backend/internals/features/metrics/efficiency/model"
	historyModel "mantenimiento_backend/internals/features/metrics/history/model"
	amefModel "mantenimiento_backend/internals/features/parts/amef/model"
	partModel "mantenimiento_backend/internals/features/parts/part_specs/model"
	userModel "mantenimiento_backend/internals/features/users/auth/model"
	"mantenimiento_backend/internals/helpers/dbtime"

	"gorm.io/gorm"
)

func createCoreTables(tx *gorm.DB) error {
	return tx.AutoMigrate(
		&userModel.UserModel{},
		&userModel.TokenBlacklist{},

		&partModel.PartSpecModel{},
		&amefModel.AmefRevisionModel{},

		&materialModel.MaterialModel{},
		&lockerModel.LockerModel{},
		&gambetaModel.GambetaModel{},
		&bandModel.BandModel{},
		&toolCartModel.ToolCartModel{},
		&shelfModel.ShelfMaterialModel{},
		&officeModel.OfficeSupplyModel{},

		&planModel.MaintenancePlanModel{},

		&efficiencyModel.EfficiencyModel{},
		&availabilityModel.AvailabilityModel{},
		&historyModel.HistoricalEfficiencyModel{},
		&historyModel.HistoricalAvailabilityModel{},
	)
}

// ensureColumns adds each named field of model that the table lacks.
func ensureColumns(tx *gorm.DB, model any, fields ...string) error {
	m := tx.Migrator()
	for _, f := range fields {
		if m.HasColumn(model, f) {
			continue
		}
		if err := m.AddColumn(model, f); err != nil {
			return fmt.Errorf("add column %s: %w", f, err)
		}
	}
	return nil
}

type weekRow struct {
	ID    uint
	Fecha string
}

// backfillWeeks recomputes semana/anio from fecha for the rows matched by
// where (all rows when where is empty). Rows whose fecha does not parse are
// left untouched and counted.
func backfillWeeks(tx *gorm.DB, table string, where string) error {
	q := tx.Table(table).Select("id", "fecha")
	if where != "" {
		q = q.Where(where)
	}
	var rows []weekRow
	if err := q.Order("id").Find(&rows).Error; err != nil {
		return err
	}

	skipped := 0
	for _, r := range rows {
		week, year, err := dbtime.WeekOfDate(r.Fecha)
		if err != nil {
			skipped++
			continue
		}
		if err := tx.Table(table).Where("id = ?", r.ID).
			Updates(map[string]any{"semana": week, "anio": year}).Error; err != nil {
			return err
		}
	}
	if skipped > 0 {
		log.Printf("[MIGRATE] ⚠️ %s: %d rows with unparseable fecha left as-is", table, skipped)
	}
	return nil
}

func availabilityWeekColumns(tx *gorm.DB) error {
	if err := ensureColumns(tx, &availabilityModel.AvailabilityModel{}, "Semana", "Anio"); err != nil {
		return err
	}
	return backfillWeeks(tx, "disponibilidad", "semana IS NULL OR semana = 0 OR anio IS NULL OR anio = 0")
}

// Older rows stored the calendar year of fecha, which is wrong for the
// first and last days of a year.
func efficiencyISOYearBackfill(tx *gorm.DB) error {
	if err := ensureColumns(tx, &efficiencyModel.EfficiencyModel{}, "Semana", "Anio"); err != nil {
		return err
	}
	return backfillWeeks(tx, "eficiencia", "")
}

func toolCartMinMax(tx *gorm.DB) error {
	return ensureColumns(tx, &toolCartModel.ToolCartModel{}, "Minimo", "Maximo")
}
