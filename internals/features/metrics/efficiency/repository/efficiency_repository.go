package repository

import (
	"context"

	"mantenimiento_backend/internals/features/metrics/efficiency/model"
	helper "mantenimiento_backend/internals/helpers"
	"mantenimiento_backend/internals/helpers/crud"

	"gorm.io/gorm"
)

const Label = "efficiency record"

type EfficiencyRepository struct {
	*crud.Repository[model.EfficiencyModel]
}

func NewEfficiencyRepository(db *gorm.DB) *EfficiencyRepository {
	return &EfficiencyRepository{
		Repository: crud.NewRepository[model.EfficiencyModel](db, Label, "fecha DESC, id DESC",
			"maquina", "no_parte_interno", "nombre_operador"),
	}
}

// ByWeek lists the live records of one ISO (year, week).
func (r *EfficiencyRepository) ByWeek(ctx context.Context, year, week int) ([]model.EfficiencyModel, error) {
	out := make([]model.EfficiencyModel, 0)
	err := r.DB.WithContext(ctx).
		Where("anio = ? AND semana = ?", year, week).
		Order("fecha ASC, maquina ASC, id ASC").
		Find(&out).Error
	if err != nil {
		return nil, helper.Classify(err, Label)
	}
	return out, nil
}
