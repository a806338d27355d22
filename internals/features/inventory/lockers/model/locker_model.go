package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// LockerModel is a product kept in a numbered locker. StockProducto is the
// quantity on hand; StockMinimo/StockMaximo bound the intended range.
type LockerModel struct {
	ID               uint            `gorm:"column:id;primaryKey"                                            json:"id"`
	NumeroLocker     string          `gorm:"column:numero_locker;type:varchar(60);not null;index:idx_lockers_numero" json:"numero_locker"`
	CodigoProducto   string          `gorm:"column:codigo_producto;type:varchar(120)"                        json:"codigo_producto"`
	NombreProducto   string          `gorm:"column:nombre_producto;type:varchar(200);not null"               json:"nombre_producto"`
	MedidaProducto   string          `gorm:"column:medida_producto;type:varchar(120)"                        json:"medida_producto"`
	CantidadProducto int             `gorm:"column:cantidad_producto;not null;default:0"                     json:"cantidad_producto"`
	ValorUnitario    decimal.Decimal `gorm:"column:valor_unitario;type:numeric(14,2);not null;default:0"     json:"valor_unitario"`
	StockMinimo      int             `gorm:"column:stock_minimo;not null;default:0"                          json:"stock_minimo"`
	StockMaximo      int             `gorm:"column:stock_maximo;not null;default:0"                          json:"stock_maximo"`
	StockProducto    int             `gorm:"column:stock_producto;not null;default:0"                        json:"stock_producto"`
	CreatedAt        time.Time       `gorm:"column:created_at;autoCreateTime"                                json:"created_at"`
	UpdatedAt        time.Time       `gorm:"column:updated_at;autoUpdateTime"                                json:"updated_at"`
}

func (LockerModel) TableName() string {
	return "lockers"
}
