package dto

import (
	"mantenimiento_backend/internals/features/inventory/tool_carts/model"
	"mantenimiento_backend/internals/helpers/crud"
)

type ToolCartRequest struct {
	ZonaProducto      string `json:"zona_producto"      validate:"required,max=120"`
	NombreProducto    string `json:"nombre_producto"    validate:"required,max=200"`
	Proveedor         string `json:"proveedor"          validate:"max=160"`
	MedidaDescripcion string `json:"medida_descripcion" validate:"required,max=255"`
	CodigoCliente     string `json:"codigo_cliente"     validate:"max=120"`
	CantidadPrestada  int    `json:"cantidad_prestada"  validate:"gte=0"`
	CantidadActual    int    `json:"cantidad_actual"    validate:"gte=0"`
	Minimo            int    `json:"minimo"             validate:"gte=0"`
	Maximo            int    `json:"maximo"             validate:"gte=0"`
}

func (r *ToolCartRequest) Normalize() {
	crud.Trim(&r.ZonaProducto, &r.NombreProducto, &r.Proveedor, &r.MedidaDescripcion, &r.CodigoCliente)
}

func (r *ToolCartRequest) Check() error {
	return crud.CheckMinMax("minimo", r.Minimo, "maximo", r.Maximo)
}

func (r *ToolCartRequest) ApplyTo(m *model.ToolCartModel) {
	m.ZonaProducto = r.ZonaProducto
	m.NombreProducto = r.NombreProducto
	m.Proveedor = r.Proveedor
	m.MedidaDescripcion = r.MedidaDescripcion
	m.CodigoCliente = r.CodigoCliente
	m.CantidadPrestada = r.CantidadPrestada
	m.CantidadActual = r.CantidadActual
	m.Minimo = r.Minimo
	m.Maximo = r.Maximo
}
