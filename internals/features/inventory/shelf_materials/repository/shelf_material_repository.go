package repository

import (
	"mantenimiento_backend/internals/features/inventory/shelf_materials/model"
	"mantenimiento_backend/internals/helpers/crud"

	"gorm.io/gorm"
)

const Label = "shelf material"

func NewShelfMaterialRepository(db *gorm.DB) *crud.Repository[model.ShelfMaterialModel] {
	return crud.NewRepository[model.ShelfMaterialModel](db, Label, "id ASC", "descripcion")
}
