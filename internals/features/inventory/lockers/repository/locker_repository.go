package repository

import (
	"context"

	"mantenimiento_backend/internals/features/inventory/lockers/model"
	helper "mantenimiento_backend/internals/helpers"
	"mantenimiento_backend/internals/helpers/crud"

	"gorm.io/gorm"
)

const Label = "locker"

type LockerRepository struct {
	*crud.Repository[model.LockerModel]
}

func NewLockerRepository(db *gorm.DB) *LockerRepository {
	return &LockerRepository{
		Repository: crud.NewRepository[model.LockerModel](db, Label, "numero_locker ASC, id ASC",
			"numero_locker", "codigo_producto", "nombre_producto", "medida_producto"),
	}
}

type ProductMeasure struct {
	NombreProducto string `json:"nombre_producto"`
	MedidaProducto string `json:"medida_producto"`
}

// ProductMeasures feeds the product pickers: name and measure of every row.
func (r *LockerRepository) ProductMeasures(ctx context.Context) ([]ProductMeasure, error) {
	out := make([]ProductMeasure, 0)
	err := r.DB.WithContext(ctx).Model(&model.LockerModel{}).
		Select("nombre_producto, medida_producto").
		Order("nombre_producto").
		Scan(&out).Error
	if err != nil {
		return nil, helper.Classify(err, Label)
	}
	return out, nil
}

func (r *LockerRepository) ProductNames(ctx context.Context) ([]string, error) {
	out := make([]string, 0)
	err := r.DB.WithContext(ctx).Model(&model.LockerModel{}).
		Distinct("nombre_producto").
		Order("nombre_producto").
		Pluck("nombre_producto", &out).Error
	if err != nil {
		return nil, helper.Classify(err, Label)
	}
	return out, nil
}

type StockRecord struct {
	NombreProducto string `json:"nombre_producto"`
	CantidadActual int    `json:"cantidad_actual"`
	MedidaProducto string `json:"medida_producto"`
}

// StockRecords reports the on-hand quantity per product.
func (r *LockerRepository) StockRecords(ctx context.Context) ([]StockRecord, error) {
	out := make([]StockRecord, 0)
	err := r.DB.WithContext(ctx).Model(&model.LockerModel{}).
		Select("nombre_producto, stock_producto AS cantidad_actual, medida_producto").
		Order("nombre_producto").
		Scan(&out).Error
	if err != nil {
		return nil, helper.Classify(err, Label)
	}
	return out, nil
}

// MeasureByName returns the measure of the first locker holding nombre.
func (r *LockerRepository) MeasureByName(ctx context.Context, nombre string) (string, error) {
	var m model.LockerModel
	err := r.DB.WithContext(ctx).
		Where("nombre_producto = ?", nombre).
		Order("id").
		First(&m).Error
	if err != nil {
		return "", helper.Classify(err, Label)
	}
	return m.MedidaProducto, nil
}
