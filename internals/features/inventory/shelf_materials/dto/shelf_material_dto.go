package dto

import (
	"mantenimiento_backend/internals/features/inventory/shelf_materials/model"
	"mantenimiento_backend/internals/helpers/crud"

	"github.com/shopspring/decimal"
)

type ShelfMaterialRequest struct {
	Ubicacion        string          `json:"ubicacion"          validate:"required,max=120"`
	NombreProducto   string          `json:"nombre_producto"    validate:"required,max=200"`
	Proveedor        string          `json:"proveedor"          validate:"max=160"`
	Descripcion      string          `json:"descripcion"        validate:"required"`
	Marca1           string          `json:"marca1"             validate:"max=120"`
	Marca2           string          `json:"marca2"             validate:"max=120"`
	Marca3           string          `json:"marca3"             validate:"max=120"`
	Codigo1          string          `json:"codigo1"            validate:"max=120"`
	Codigo2          string          `json:"codigo2"            validate:"max=120"`
	Codigo3          string          `json:"codigo3"            validate:"max=120"`
	ValorUnitario1   decimal.Decimal `json:"valor_unitario1"`
	ValorUnitario2   decimal.Decimal `json:"valor_unitario2"`
	ValorUnitario3   decimal.Decimal `json:"valor_unitario3"`
	ValorUnitario4   decimal.Decimal `json:"valor_unitario4"`
	CantidadAPrestar int             `json:"cantidad_a_prestar" validate:"gte=0"`
	CantidadActual   int             `json:"cantidad_actual"    validate:"gte=0"`
	Observaciones    string          `json:"observaciones"`
	Minimo           int             `json:"minimo"             validate:"gte=0"`
	Maximo           int             `json:"maximo"             validate:"gte=0"`
}

func (r *ShelfMaterialRequest) Normalize() {
	crud.Trim(&r.Ubicacion, &r.NombreProducto, &r.Proveedor, &r.Descripcion,
		&r.Marca1, &r.Marca2, &r.Marca3, &r.Codigo1, &r.Codigo2, &r.Codigo3, &r.Observaciones)
}

func (r *ShelfMaterialRequest) Check() error {
	return crud.FirstErr(
		crud.NonNegative("valor_unitario1", r.ValorUnitario1),
		crud.NonNegative("valor_unitario2", r.ValorUnitario2),
		crud.NonNegative("valor_unitario3", r.ValorUnitario3),
		crud.NonNegative("valor_unitario4", r.ValorUnitario4),
		crud.CheckMinMax("minimo", r.Minimo, "maximo", r.Maximo),
	)
}

func (r *ShelfMaterialRequest) ApplyTo(m *model.ShelfMaterialModel) {
	m.Ubicacion = r.Ubicacion
	m.NombreProducto = r.NombreProducto
	m.Proveedor = r.Proveedor
	m.Descripcion = r.Descripcion
	m.Marca1, m.Marca2, m.Marca3 = r.Marca1, r.Marca2, r.Marca3
	m.Codigo1, m.Codigo2, m.Codigo3 = r.Codigo1, r.Codigo2, r.Codigo3
	m.ValorUnitario1 = r.ValorUnitario1
	m.ValorUnitario2 = r.ValorUnitario2
	m.ValorUnitario3 = r.ValorUnitario3
	m.ValorUnitario4 = r.ValorUnitario4
	m.CantidadAPrestar = r.CantidadAPrestar
	m.CantidadActual = r.CantidadActual
	m.Observaciones = r.Observaciones
	m.Minimo = r.Minimo
	m.Maximo = r.Maximo
}
