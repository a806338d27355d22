// Package migrations holds the ordered, versioned schema history. Each
// migration runs once inside a transaction and is recorded in
// schema_migrations; every Up is itself idempotent so a store that already
// has the latest shape but no ledger is adopted without failure.
package migrations

import (
	"fmt"
	"log"
	"sort"
	"time"

	"gorm.io/gorm"
)

type Migration struct {
	Version int
	Name    string
	Up      func(tx *gorm.DB) error
}

// SchemaMigration is one row of the applied-migrations ledger.
type SchemaMigration struct {
	Version   int       `gorm:"column:version;primaryKey;autoIncrement:false"`
	Name      string    `gorm:"column:name;type:varchar(120);not null"`
	AppliedAt time.Time `gorm:"column:applied_at;not null"`
}

func (SchemaMigration) TableName() string {
	return "schema_migrations"
}

// All returns the known migrations in version order.
func All() []Migration {
	list := []Migration{
		{Version: 1, Name: "create_core_tables", Up: createCoreTables},
		{Version: 2, Name: "availability_week_columns", Up: availabilityWeekColumns},
		{Version: 3, Name: "efficiency_iso_year_backfill", Up: efficiencyISOYearBackfill},
		{Version: 4, Name: "tool_cart_min_max", Up: toolCartMinMax},
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Version < list[j].Version })
	return list
}

// Apply runs every pending migration and returns the versions it applied.
func Apply(db *gorm.DB) ([]int, error) {
	return ApplyList(db, All())
}

func ApplyList(db *gorm.DB, list []Migration) ([]int, error) {
	if err := db.AutoMigrate(&SchemaMigration{}); err != nil {
		return nil, fmt.Errorf("create schema_migrations: %w", err)
	}

	var done []SchemaMigration
	if err := db.Find(&done).Error; err != nil {
		return nil, fmt.Errorf("read schema_migrations: %w", err)
	}
	seen := make(map[int]bool, len(done))
	for _, m := range done {
		seen[m.Version] = true
	}

	applied := make([]int, 0)
	for _, m := range list {
		if seen[m.Version] {
			continue
		}
		start := time.Now()
		err := db.Transaction(func(tx *gorm.DB) error {
			if err := m.Up(tx); err != nil {
				return err
			}
			return tx.Create(&SchemaMigration{
				Version:   m.Version,
				Name:      m.Name,
				AppliedAt: time.Now().UTC(),
			}).Error
		})
		if err != nil {
			return applied, fmt.Errorf("migration %03d_%s: %w", m.Version, m.Name, err)
		}
		log.Printf("[MIGRATE] ✅ %03d_%s (%s)", m.Version, m.Name, time.Since(start).Round(time.Millisecond))
		applied = append(applied, m.Version)
	}
	if len(applied) == 0 {
		log.Println("[MIGRATE] schema up to date")
	}
	return applied, nil
}
