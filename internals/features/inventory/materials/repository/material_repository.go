package repository

import (
	"context"
	"strings"

	"mantenimiento_backend/internals/features/inventory/materials/dto"
	"mantenimiento_backend/internals/features/inventory/materials/model"
	helper "mantenimiento_backend/internals/helpers"
	"mantenimiento_backend/internals/helpers/crud"

	"gorm.io/gorm"
)

const label = "material"

type MaterialRepository struct {
	*crud.Repository[model.MaterialModel]
}

func NewMaterialRepository(db *gorm.DB) *MaterialRepository {
	return &MaterialRepository{
		Repository: crud.NewRepository[model.MaterialModel](db, label, "id DESC"),
	}
}

func (r *MaterialRepository) joined(ctx context.Context) *gorm.DB {
	return r.DB.WithContext(ctx).
		Table("materiales AS m").
		Select(`m.*,
			COALESCE(pp.materia_prima, m.material) AS display_material,
			pp.pieza_x_hora AS pieza_x_hora`).
		Joins("LEFT JOIN partes_piezas pp ON pp.no_parte_interno = m.no_parte_interno")
}

// ListViews lists materials joined with their part card. term filters on
// the client and internal part numbers of either table.
func (r *MaterialRepository) ListViews(ctx context.Context, term string) ([]dto.MaterialView, error) {
	q := r.joined(ctx)
	if term = strings.TrimSpace(term); term != "" {
		like := "%" + strings.ToLower(term) + "%"
		q = q.Where(`LOWER(m.numero_parte) LIKE ? OR LOWER(m.no_parte_interno) LIKE ?
			OR LOWER(pp.no_parte_cliente) LIKE ? OR LOWER(pp.no_parte_interno) LIKE ?
			OR LOWER(m.material) LIKE ? OR LOWER(m.tipo_materia_prima) LIKE ?`,
			like, like, like, like, like, like)
	}
	out := make([]dto.MaterialView, 0)
	if err := q.Order("m.id DESC").Scan(&out).Error; err != nil {
		return nil, helper.Classify(err, label)
	}
	return out, nil
}

func (r *MaterialRepository) GetView(ctx context.Context, id uint) (*dto.MaterialView, error) {
	var out []dto.MaterialView
	if err := r.joined(ctx).Where("m.id = ?", id).Limit(1).Scan(&out).Error; err != nil {
		return nil, helper.Classify(err, label)
	}
	if len(out) == 0 {
		return nil, helper.NotFoundErr(label + " not found")
	}
	return &out[0], nil
}

// DeleteByPart removes every material order of an internal part number.
func (r *MaterialRepository) DeleteByPart(ctx context.Context, noParteInterno string) (int64, error) {
	res := r.DB.WithContext(ctx).
		Where("no_parte_interno = ?", noParteInterno).
		Delete(&model.MaterialModel{})
	if res.Error != nil {
		return 0, helper.Classify(res.Error, label)
	}
	if res.RowsAffected == 0 {
		return 0, helper.NotFoundErr(label + " not found")
	}
	return res.RowsAffected, nil
}

type ScrapCheck struct {
	CantidadLaton int    `json:"cantidad_laton"`
	Scrap         int    `json:"scrap"`
	FechaOrden    string `json:"fecha_orden"`
}

// RecentScrap returns the last n orders' scrap figures, newest first.
func (r *MaterialRepository) RecentScrap(ctx context.Context, n int) ([]ScrapCheck, error) {
	out := make([]ScrapCheck, 0, n)
	err := r.DB.WithContext(ctx).Model(&model.MaterialModel{}).
		Select("cantidad_laton, scrap, fecha_orden").
		Order("id DESC").
		Limit(n).
		Scan(&out).Error
	if err != nil {
		return nil, helper.Classify(err, label)
	}
	return out, nil
}
