package repository

import (
	"mantenimiento_backend/internals/features/inventory/office_supplies/model"
	"mantenimiento_backend/internals/helpers/crud"

	"gorm.io/gorm"
)

const Label = "office supply"

func NewOfficeSupplyRepository(db *gorm.DB) *crud.Repository[model.OfficeSupplyModel] {
	return crud.NewRepository[model.OfficeSupplyModel](db, Label, "id ASC", "nombre_producto", "medida_descripcion")
}
