package repository

import (
	"context"

	"mantenimiento_backend/internals/features/inventory/gambetas/model"
	helper "mantenimiento_backend/internals/helpers"
	"mantenimiento_backend/internals/helpers/crud"

	"gorm.io/gorm"
)

const Label = "gambeta"

type GambetaRepository struct {
	*crud.Repository[model.GambetaModel]
}

// Search matches the product code only.
func NewGambetaRepository(db *gorm.DB) *GambetaRepository {
	return &GambetaRepository{
		Repository: crud.NewRepository[model.GambetaModel](db, Label, "id ASC", "codigo"),
	}
}

func (r *GambetaRepository) ByNameAndLevel(ctx context.Context, nombre, nivel string) (*model.GambetaModel, error) {
	var m model.GambetaModel
	err := r.DB.WithContext(ctx).
		Where("nombre_producto = ? AND nivel = ?", nombre, nivel).
		Order("id").
		First(&m).Error
	if err != nil {
		return nil, helper.Classify(err, Label)
	}
	return &m, nil
}

type StockRecord struct {
	NombreProducto string `json:"nombre_producto"`
	CantidadActual int    `json:"cantidad_actual"`
	MedidaProducto string `json:"medida_producto"`
}

// StockRecords reports quantity per product, with the level as the measure
// column so both stock lists share one shape.
func (r *GambetaRepository) StockRecords(ctx context.Context) ([]StockRecord, error) {
	out := make([]StockRecord, 0)
	err := r.DB.WithContext(ctx).Model(&model.GambetaModel{}).
		Select("nombre_producto, cantidad_actual, nivel AS medida_producto").
		Order("nombre_producto").
		Scan(&out).Error
	if err != nil {
		return nil, helper.Classify(err, Label)
	}
	return out, nil
}

func (r *GambetaRepository) LevelByName(ctx context.Context, nombre string) (string, error) {
	var m model.GambetaModel
	err := r.DB.WithContext(ctx).
		Where("nombre_producto = ?", nombre).
		Order("id").
		First(&m).Error
	if err != nil {
		return "", helper.Classify(err, Label)
	}
	return m.Nivel, nil
}
