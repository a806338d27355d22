package service

import (
	"context"
	"fmt"
	"log"
	"time"

	availabilityModel "mantenimiento_backend/internals/features/metrics/availability/model"
	efficiencyModel "mantenimiento_backend/internals/features/metrics/efficiency/model"
	historyModel "mantenimiento_backend/internals/features/metrics/history/model"
	"mantenimiento_backend/internals/helpers/dbtime"
	"mantenimiento_backend/internals/helpers/notify"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// deleteChunk keeps IN lists under SQLite's bound-variable limit.
const deleteChunk = 500

// Result describes one rollover run. Rows dated before WindowEnd were
// archived; WindowStart is the Monday of the week being closed.
type Result struct {
	WindowStart  time.Time `json:"window_start"`
	WindowEnd    time.Time `json:"window_end"`
	Week         int       `json:"week"`
	Year         int       `json:"year"`
	Efficiency   int       `json:"efficiency"`
	Availability int       `json:"availability"`
}

func (r Result) Total() int { return r.Efficiency + r.Availability }

// Service moves closed-week metrics into the history tables.
type Service struct {
	DB       *gorm.DB
	Loc      *time.Location
	Now      func() time.Time
	Notifier notify.Notifier
}

func New(db *gorm.DB, loc *time.Location, notifier notify.Notifier) *Service {
	if loc == nil {
		loc = time.UTC
	}
	if notifier == nil {
		notifier = notify.Nop{}
	}
	return &Service{DB: db, Loc: loc, Now: time.Now, Notifier: notifier}
}

// Window returns [start of last week, start of this week) on the plant clock.
func (s *Service) Window() (start, end time.Time) {
	now := s.Now().In(s.Loc)
	end = dbtime.StartOfWeek(now)
	start = end.AddDate(0, 0, -7)
	return start, end
}

// Run archives every live row dated before the current ISO week (the week
// that just closed plus any stragglers a missed run left behind) and
// deletes it from the live tables. Copy and delete commit together or not
// at all. Rows of the current week are never touched.
func (s *Service) Run(ctx context.Context) (Result, error) {
	start, end := s.Window()
	week, year := dbtime.ISOWeek(start)
	res := Result{WindowStart: start, WindowEnd: end, Week: week, Year: year}

	stamp := historyModel.Stamp{Week: week, Year: year, At: s.Now().UTC()}
	cutoff := dbtime.FormatDate(end)

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		n, err := moveEfficiency(tx, cutoff, stamp)
		if err != nil {
			return fmt.Errorf("efficiency: %w", err)
		}
		res.Efficiency = n

		n, err = moveAvailability(tx, cutoff, stamp)
		if err != nil {
			return fmt.Errorf("availability: %w", err)
		}
		res.Availability = n
		return nil
	})
	if err != nil {
		return Result{WindowStart: start, WindowEnd: end, Week: week, Year: year}, err
	}
	return res, nil
}

// RunAndLog is the scheduler entry point: failures are logged, never raised.
func (s *Service) RunAndLog(ctx context.Context) {
	res, err := s.Run(ctx)
	if err != nil {
		log.Printf("[ROLLOVER] ❌ rolled back (week %d/%d): %v", res.Week, res.Year, err)
		return
	}
	if res.Total() == 0 {
		log.Printf("[ROLLOVER] nothing to archive before %s", dbtime.FormatDate(res.WindowEnd))
		return
	}
	log.Printf("[ROLLOVER] ✅ week %d/%d archived: eficiencia=%d disponibilidad=%d",
		res.Week, res.Year, res.Efficiency, res.Availability)

	msg := fmt.Sprintf("Weekly rollover for week %d/%d: %d efficiency and %d availability records archived.",
		res.Week, res.Year, res.Efficiency, res.Availability)
	if err := s.Notifier.Notify(ctx, msg); err != nil {
		log.Printf("[ROLLOVER] ⚠️ notify failed: %v", err)
	}
}

func moveEfficiency(tx *gorm.DB, cutoff string, stamp historyModel.Stamp) (int, error) {
	var live []efficiencyModel.EfficiencyModel
	if err := tx.Where("fecha < ?", cutoff).Order("id").Find(&live).Error; err != nil {
		return 0, err
	}
	if len(live) == 0 {
		return 0, nil
	}

	hist := make([]historyModel.HistoricalEfficiencyModel, 0, len(live))
	ids := make([]uint, 0, len(live))
	for _, m := range live {
		hist = append(hist, historyModel.FromEfficiency(m, stamp))
		ids = append(ids, m.ID)
	}
	if err := insertHistory(tx, &hist); err != nil {
		return 0, err
	}
	if err := deleteByIDs(tx, &efficiencyModel.EfficiencyModel{}, ids); err != nil {
		return 0, err
	}
	return len(live), nil
}

func moveAvailability(tx *gorm.DB, cutoff string, stamp historyModel.Stamp) (int, error) {
	var live []availabilityModel.AvailabilityModel
	if err := tx.Where("fecha < ?", cutoff).Order("id").Find(&live).Error; err != nil {
		return 0, err
	}
	if len(live) == 0 {
		return 0, nil
	}

	hist := make([]historyModel.HistoricalAvailabilityModel, 0, len(live))
	ids := make([]uint, 0, len(live))
	for _, m := range live {
		hist = append(hist, historyModel.FromAvailability(m, stamp))
		ids = append(ids, m.ID)
	}
	if err := insertHistory(tx, &hist); err != nil {
		return 0, err
	}
	if err := deleteByIDs(tx, &availabilityModel.AvailabilityModel{}, ids); err != nil {
		return 0, err
	}
	return len(live), nil
}

// insertHistory skips rows already archived under the same origin key.
func insertHistory(tx *gorm.DB, rows any) error {
	return tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "origen_id"}, {Name: "fecha"}, {Name: "maquina"}},
		DoNothing: true,
	}).CreateInBatches(rows, 200).Error
}

func deleteByIDs(tx *gorm.DB, model any, ids []uint) error {
	for i := 0; i < len(ids); i += deleteChunk {
		j := i + deleteChunk
		if j > len(ids) {
			j = len(ids)
		}
		res := tx.Where("id IN ?", ids[i:j]).Delete(model)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected != int64(j-i) {
			return fmt.Errorf("expected to delete %d rows, deleted %d", j-i, res.RowsAffected)
		}
	}
	return nil
}
