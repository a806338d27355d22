package repository

import (
	"context"

	"mantenimiento_backend/internals/features/parts/part_specs/model"
	helper "mantenimiento_backend/internals/helpers"
	"mantenimiento_backend/internals/helpers/crud"

	"gorm.io/gorm"
)

const Label = "part spec"

type PartSpecRepository struct {
	*crud.Repository[model.PartSpecModel]
}

func NewPartSpecRepository(db *gorm.DB) *PartSpecRepository {
	return &PartSpecRepository{
		Repository: crud.NewRepository[model.PartSpecModel](db, Label, "no_parte_interno ASC",
			"no_parte_interno", "no_parte_cliente", "descripcion", "cliente", "materia_prima"),
	}
}

// InternalNumbers lists every internal part number, sorted.
func (r *PartSpecRepository) InternalNumbers(ctx context.Context) ([]string, error) {
	out := make([]string, 0)
	err := r.DB.WithContext(ctx).Model(&model.PartSpecModel{}).
		Order("no_parte_interno").
		Pluck("no_parte_interno", &out).Error
	if err != nil {
		return nil, helper.Classify(err, Label)
	}
	return out, nil
}

func (r *PartSpecRepository) ByInternalNumber(ctx context.Context, np string) (*model.PartSpecModel, error) {
	var m model.PartSpecModel
	if err := r.DB.WithContext(ctx).Where("no_parte_interno = ?", np).First(&m).Error; err != nil {
		return nil, helper.Classify(err, Label)
	}
	return &m, nil
}

func (r *PartSpecRepository) Exists(ctx context.Context, np string) (bool, error) {
	var n int64
	err := r.DB.WithContext(ctx).Model(&model.PartSpecModel{}).
		Where("no_parte_interno = ?", np).
		Count(&n).Error
	if err != nil {
		return false, helper.Classify(err, Label)
	}
	return n > 0, nil
}
