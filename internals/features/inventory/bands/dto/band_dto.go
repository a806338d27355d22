package dto

import (
	"mantenimiento_backend/internals/features/inventory/bands/model"
	helper "mantenimiento_backend/internals/helpers"
	"mantenimiento_backend/internals/helpers/crud"
)

// BandRequest carries the quantity physically counted (cantidad_actual)
// and how many of those are being lent (cantidad_prestada).
type BandRequest struct {
	NombreProducto   string `json:"nombre_producto"   validate:"required,max=200"`
	MarcaProducto    string `json:"marca_producto"    validate:"max=120"`
	Columna          string `json:"columna"           validate:"required,max=60"`
	CodigoProveedor  string `json:"codigo_proveedor"  validate:"required,max=120"`
	CantidadPrestada int    `json:"cantidad_prestada" validate:"gte=0"`
	CantidadActual   int    `json:"cantidad_actual"   validate:"gte=0"`
}

func (r *BandRequest) Normalize() {
	crud.Trim(&r.NombreProducto, &r.MarcaProducto, &r.Columna, &r.CodigoProveedor)
}

func (r *BandRequest) Check() error {
	return nil
}

func (r *BandRequest) ApplyTo(m *model.BandModel) {
	m.NombreProducto = r.NombreProducto
	m.MarcaProducto = r.MarcaProducto
	m.Columna = r.Columna
	m.CodigoProveedor = r.CodigoProveedor
	m.CantidadPrestada = r.CantidadPrestada
	m.CantidadActual = r.CantidadActual
}

// AdjustCreate stores what remains on the shelf after the loan.
func (r *BandRequest) AdjustCreate(m *model.BandModel) {
	m.CantidadActual = r.CantidadActual - r.CantidadPrestada
}

// CheckCreate is run before insert: nobody can lend more than is counted.
func (r *BandRequest) CheckCreate() error {
	if r.CantidadPrestada > r.CantidadActual {
		return helper.FieldErr("cantidad_prestada", "cantidad_prestada cannot exceed cantidad_actual")
	}
	return nil
}

// CheckAgainst validates an update against the stored quantity.
func (r *BandRequest) CheckAgainst(current *model.BandModel) error {
	if r.CantidadPrestada > current.CantidadActual {
		return helper.FieldErr("cantidad_prestada", "cantidad_prestada cannot exceed the quantity in stock")
	}
	return nil
}
