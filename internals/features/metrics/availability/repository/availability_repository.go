package repository

import (
	"context"

	"mantenimiento_backend/internals/features/metrics/availability/model"
	helper "mantenimiento_backend/internals/helpers"
	"mantenimiento_backend/internals/helpers/crud"

	"gorm.io/gorm"
)

const Label = "availability record"

type AvailabilityRepository struct {
	*crud.Repository[model.AvailabilityModel]
}

func NewAvailabilityRepository(db *gorm.DB) *AvailabilityRepository {
	return &AvailabilityRepository{
		Repository: crud.NewRepository[model.AvailabilityModel](db, Label, "fecha DESC, id DESC",
			"maquina", "no_parte_interno", "operador", "causa_paro"),
	}
}

func (r *AvailabilityRepository) ByWeek(ctx context.Context, year, week int) ([]model.AvailabilityModel, error) {
	out := make([]model.AvailabilityModel, 0)
	err := r.DB.WithContext(ctx).
		Where("anio = ? AND semana = ?", year, week).
		Order("fecha ASC, maquina ASC, id ASC").
		Find(&out).Error
	if err != nil {
		return nil, helper.Classify(err, Label)
	}
	return out, nil
}
