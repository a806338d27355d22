package repository

import (
	"mantenimiento_backend/internals/features/inventory/tool_carts/model"
	"mantenimiento_backend/internals/helpers/crud"

	"gorm.io/gorm"
)

const Label = "tool cart item"

func NewToolCartRepository(db *gorm.DB) *crud.Repository[model.ToolCartModel] {
	return crud.NewRepository[model.ToolCartModel](db, Label, "id ASC", "medida_descripcion", "nombre_producto", "zona_producto")
}
