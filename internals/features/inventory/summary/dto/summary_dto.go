package dto

import "github.com/shopspring/decimal"

// ValuationLine is one product counted in the stock valuation.
type ValuationLine struct {
	Nombre   string          `json:"nombre"`
	Cantidad int             `json:"cantidad"`
	Vu       decimal.Decimal `json:"vu"`
	Valor    decimal.Decimal `json:"valor"`
	Fuente   string          `json:"fuente"`
}

type Valuation struct {
	Lineas     []ValuationLine `json:"lineas"`
	ValorTotal decimal.Decimal `json:"valor_total"`
}

const (
	AlertBelowMin = "below_min"
	AlertAboveMax = "above_max"
)

// StockAlert flags an item whose quantity left its [min, max] range.
type StockAlert struct {
	Fuente   string `json:"fuente"`
	ID       uint   `json:"id"`
	Nombre   string `json:"nombre"`
	Cantidad int    `json:"cantidad"`
	Minimo   int    `json:"minimo"`
	Maximo   int    `json:"maximo"`
	Estado   string `json:"estado"`
}

// CheckRange returns the alert state of qty, or "" when it is in range.
// A zero maximum is treated as unbounded.
func CheckRange(qty, min, max int) string {
	switch {
	case qty < min:
		return AlertBelowMin
	case max > 0 && qty > max:
		return AlertAboveMax
	default:
		return ""
	}
}
