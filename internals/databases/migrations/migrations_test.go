package migrations_test

import (
	"testing"

	"mantenimiento_backend/internals/databases/migrations"
	"mantenimiento_backend/internals/testutil"

	"gorm.io/gorm"
)

func TestApplyIsIdempotent(t *testing.T) {
	db := testutil.NewDB(t)

	applied, err := migrations.Apply(db)
	if err != nil {
		t.Fatalf("second apply: %v", err)
	}
	if len(applied) != 0 {
		t.Fatalf("second apply ran %v, want nothing", applied)
	}

	var n int64
	db.Model(&migrations.SchemaMigration{}).Count(&n)
	if int(n) != len(migrations.All()) {
		t.Fatalf("ledger has %d rows, want %d", n, len(migrations.All()))
	}
}

func TestAvailabilityBackfill(t *testing.T) {
	db := testutil.NewDB(t)

	// rows written by the old recorder never had week columns
	if err := db.Exec(`INSERT INTO disponibilidad (maquina, operador, minutos_perdidos, fecha, semana, anio)
		VALUES ('T1', 'Ana', 30, '2023-01-01', 0, 0), ('T2', 'Luis', 10, '2024-03-04', 0, 0)`).Error; err != nil {
		t.Fatalf("seed legacy rows: %v", err)
	}
	if err := db.Where("version = ?", 2).Delete(&migrations.SchemaMigration{}).Error; err != nil {
		t.Fatalf("forget migration 2: %v", err)
	}

	applied, err := migrations.Apply(db)
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if len(applied) != 1 || applied[0] != 2 {
		t.Fatalf("applied %v, want [2]", applied)
	}

	type row struct {
		Maquina string
		Semana  int
		Anio    int
	}
	var rows []row
	db.Table("disponibilidad").Select("maquina, semana, anio").Order("maquina").Scan(&rows)
	want := []row{{"T1", 52, 2022}, {"T2", 10, 2024}}
	if len(rows) != len(want) {
		t.Fatalf("got %d rows", len(rows))
	}
	for i := range want {
		if rows[i] != want[i] {
			t.Errorf("row %d = %+v, want %+v", i, rows[i], want[i])
		}
	}
}

func TestFailedMigrationIsNotRecorded(t *testing.T) {
	db := testutil.NewDB(t)

	bad := migrations.Migration{
		Version: 99,
		Name:    "broken",
		Up: func(tx *gorm.DB) error {
			return tx.Exec("ALTER TABLE no_such_table ADD COLUMN x INTEGER").Error
		},
	}
	if _, err := migrations.ApplyList(db, []migrations.Migration{bad}); err == nil {
		t.Fatal("expected error from broken migration")
	}
	var n int64
	db.Model(&migrations.SchemaMigration{}).Where("version = ?", 99).Count(&n)
	if n != 0 {
		t.Fatalf("broken migration recorded as applied")
	}
}

func TestAmefForeignKeyPointsAtPart(t *testing.T) {
	db := testutil.NewDB(t)

	type fkRow struct {
		Table string `gorm:"column:table"`
		From  string `gorm:"column:from"`
		To    string `gorm:"column:to"`
	}
	foreignKeys := func(table string) []fkRow {
		var rows []fkRow
		if err := db.Raw("PRAGMA foreign_key_list(" + table + ")").Scan(&rows).Error; err != nil {
			t.Fatalf("foreign keys of %s: %v", table, err)
		}
		return rows
	}

	if fks := foreignKeys("partes_piezas"); len(fks) != 0 {
		t.Fatalf("partes_piezas must not reference other tables, got %+v", fks)
	}
	fks := foreignKeys("amef_revisions")
	if len(fks) != 1 || fks[0].Table != "partes_piezas" || fks[0].From != "no_parte_interno" || fks[0].To != "no_parte_interno" {
		t.Fatalf("amef_revisions foreign keys = %+v", fks)
	}

	if err := db.Exec(`INSERT INTO partes_piezas (no_parte_interno) VALUES ('P-1')`).Error; err != nil {
		t.Fatalf("insert part: %v", err)
	}
}
