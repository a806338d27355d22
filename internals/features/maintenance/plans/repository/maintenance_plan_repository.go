package repository

import (
	"context"
	"errors"

	"mantenimiento_backend/internals/features/maintenance/plans/dto"
	"mantenimiento_backend/internals/features/maintenance/plans/model"
	helper "mantenimiento_backend/internals/helpers"
	"mantenimiento_backend/internals/helpers/crud"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const Label = "maintenance record"

type PlanRepository struct {
	*crud.Repository[model.MaintenancePlanModel]
}

func NewPlanRepository(db *gorm.DB) *PlanRepository {
	return &PlanRepository{
		Repository: crud.NewRepository[model.MaintenancePlanModel](db, Label, "order_index ASC, id ASC", "machine_name"),
	}
}

func (r *PlanRepository) ByYear(ctx context.Context, year int) ([]model.MaintenancePlanModel, error) {
	out := make([]model.MaintenancePlanModel, 0)
	err := r.DB.WithContext(ctx).
		Where("year = ?", year).
		Order("order_index ASC, id ASC").
		Find(&out).Error
	if err != nil {
		return nil, helper.Classify(err, Label)
	}
	return out, nil
}

// Save inserts a row for the machine, or merges status into the existing
// one (new keys win). created reports which of the two happened.
func (r *PlanRepository) Save(ctx context.Context, req dto.SavePlanRequest) (m model.MaintenancePlanModel, created bool, err error) {
	err = r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		q := tx
		if tx.Dialector.Name() == "postgres" {
			q = tx.Clauses(clause.Locking{Strength: "UPDATE"})
		}
		findErr := q.Where("machine_name = ?", req.MachineName).First(&m).Error
		switch {
		case errors.Is(findErr, gorm.ErrRecordNotFound):
			var maxOrder int
			if err := tx.Model(&model.MaintenancePlanModel{}).
				Select("COALESCE(MAX(order_index), -1)").Scan(&maxOrder).Error; err != nil {
				return err
			}
			m = model.MaintenancePlanModel{
				MachineName: req.MachineName,
				WeekNumber:  req.WeekNumber,
				Year:        req.Year,
				Status:      datatypes.JSONMap(req.Status),
				OrderIndex:  maxOrder + 1,
			}
			created = true
			return tx.Create(&m).Error
		case findErr != nil:
			return findErr
		}

		merged := datatypes.JSONMap{}
		for k, v := range m.Status {
			merged[k] = v
		}
		for k, v := range req.Status {
			merged[k] = v
		}
		m.Status = merged
		return tx.Model(&m).Update("status", merged).Error
	})
	if err != nil {
		return m, false, helper.Classify(err, Label)
	}
	return m, created, nil
}

// SetCell overwrites one status cell of row id.
func (r *PlanRepository) SetCell(ctx context.Context, id uint, key string, cell map[string]any) (*model.MaintenancePlanModel, error) {
	return r.Update(ctx, id, func(m *model.MaintenancePlanModel) error {
		status := datatypes.JSONMap{}
		for k, v := range m.Status {
			status[k] = v
		}
		status[key] = cell
		m.Status = status
		return nil
	})
}

// Reorder applies every order_index in one transaction; an unknown id
// rolls the whole batch back.
func (r *PlanRepository) Reorder(ctx context.Context, items []dto.ReorderItem) error {
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, it := range items {
			res := tx.Model(&model.MaintenancePlanModel{}).
				Where("id = ?", it.ID).
				Update("order_index", *it.OrderIndex)
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return helper.NotFoundErr(Label + " not found")
			}
		}
		return nil
	})
	return helper.Classify(err, Label)
}
