package dto

import (
	"mantenimiento_backend/internals/features/inventory/lockers/model"
	"mantenimiento_backend/internals/helpers/crud"

	"github.com/shopspring/decimal"
)

type LockerRequest struct {
	NumeroLocker     string          `json:"numero_locker"     validate:"required,max=60"`
	CodigoProducto   string          `json:"codigo_producto"   validate:"max=120"`
	NombreProducto   string          `json:"nombre_producto"   validate:"required,max=200"`
	MedidaProducto   string          `json:"medida_producto"   validate:"max=120"`
	CantidadProducto int             `json:"cantidad_producto" validate:"gte=0"`
	ValorUnitario    decimal.Decimal `json:"valor_unitario"`
	StockMinimo      int             `json:"stock_minimo"      validate:"gte=0"`
	StockMaximo      int             `json:"stock_maximo"      validate:"gte=0"`
	StockProducto    int             `json:"stock_producto"    validate:"gte=0"`
}

func (r *LockerRequest) Normalize() {
	crud.Trim(&r.NumeroLocker, &r.CodigoProducto, &r.NombreProducto, &r.MedidaProducto)
}

func (r *LockerRequest) Check() error {
	return crud.FirstErr(
		crud.NonNegative("valor_unitario", r.ValorUnitario),
		crud.CheckMinMax("stock_minimo", r.StockMinimo, "stock_maximo", r.StockMaximo),
	)
}

func (r *LockerRequest) ApplyTo(m *model.LockerModel) {
	m.NumeroLocker = r.NumeroLocker
	m.CodigoProducto = r.CodigoProducto
	m.NombreProducto = r.NombreProducto
	m.MedidaProducto = r.MedidaProducto
	m.CantidadProducto = r.CantidadProducto
	m.ValorUnitario = r.ValorUnitario
	m.StockMinimo = r.StockMinimo
	m.StockMaximo = r.StockMaximo
	m.StockProducto = r.StockProducto
}
