package repository

import (
	"mantenimiento_backend/internals/features/inventory/bands/model"
	"mantenimiento_backend/internals/helpers/crud"

	"gorm.io/gorm"
)

const Label = "band"

func NewBandRepository(db *gorm.DB) *crud.Repository[model.BandModel] {
	return crud.NewRepository[model.BandModel](db, Label, "id ASC", "columna", "codigo_proveedor")
}
