package repository

import (
	"context"

	"mantenimiento_backend/internals/features/parts/amef/model"
	helper "mantenimiento_backend/internals/helpers"
	"mantenimiento_backend/internals/helpers/crud"

	"gorm.io/gorm"
)

const Label = "AMEF revision"

type AmefRepository struct {
	*crud.Repository[model.AmefRevisionModel]
}

func NewAmefRepository(db *gorm.DB) *AmefRepository {
	return &AmefRepository{
		Repository: crud.NewRepository[model.AmefRevisionModel](db, Label, "id DESC"),
	}
}

// ByPart lists the revisions of a part, newest first.
func (r *AmefRepository) ByPart(ctx context.Context, np string) ([]model.AmefRevisionModel, error) {
	out := make([]model.AmefRevisionModel, 0)
	err := r.DB.WithContext(ctx).
		Where("no_parte_interno = ?", np).
		Order("id DESC").
		Find(&out).Error
	if err != nil {
		return nil, helper.Classify(err, Label)
	}
	return out, nil
}
