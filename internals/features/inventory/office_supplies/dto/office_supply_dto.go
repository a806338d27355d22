package dto

import (
	"mantenimiento_backend/internals/features/inventory/office_supplies/model"
	"mantenimiento_backend/internals/helpers/crud"

	"github.com/shopspring/decimal"
)

type OfficeSupplyRequest struct {
	LugarZona                   string          `json:"lugar_zona"                   validate:"required,max=120"`
	NombreProducto              string          `json:"nombre_producto"              validate:"required,max=200"`
	MedidaDescripcion           string          `json:"medida_descripcion"           validate:"max=255"`
	Codigo                      string          `json:"codigo"                       validate:"max=120"`
	ValorUnitario               decimal.Decimal `json:"valor_unitario"`
	CantidadActual              int             `json:"cantidad_actual"              validate:"gte=0"`
	CantidadMinima              int             `json:"cantidad_minima"              validate:"gte=0"`
	CantidadMaxima              int             `json:"cantidad_maxima"              validate:"gte=0"`
	ObservacionesRequerimientos string          `json:"observaciones_requerimientos"`
}

func (r *OfficeSupplyRequest) Normalize() {
	crud.Trim(&r.LugarZona, &r.NombreProducto, &r.MedidaDescripcion, &r.Codigo, &r.ObservacionesRequerimientos)
}

func (r *OfficeSupplyRequest) Check() error {
	return crud.FirstErr(
		crud.NonNegative("valor_unitario", r.ValorUnitario),
		crud.CheckMinMax("cantidad_minima", r.CantidadMinima, "cantidad_maxima", r.CantidadMaxima),
	)
}

func (r *OfficeSupplyRequest) ApplyTo(m *model.OfficeSupplyModel) {
	m.LugarZona = r.LugarZona
	m.NombreProducto = r.NombreProducto
	m.MedidaDescripcion = r.MedidaDescripcion
	m.Codigo = r.Codigo
	m.ValorUnitario = r.ValorUnitario
	m.CantidadActual = r.CantidadActual
	m.CantidadMinima = r.CantidadMinima
	m.CantidadMaxima = r.CantidadMaxima
	m.ObservacionesRequerimientos = r.ObservacionesRequerimientos
}
