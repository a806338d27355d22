package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type OfficeSupplyModel struct {
	ID                          uint            `gorm:"column:id;primaryKey"                                        json:"id"`
	LugarZona                   string          `gorm:"column:lugar_zona;type:varchar(120);not null"                json:"lugar_zona"`
	NombreProducto              string          `gorm:"column:nombre_producto;type:varchar(200);not null"           json:"nombre_producto"`
	MedidaDescripcion           string          `gorm:"column:medida_descripcion;type:varchar(255)"                 json:"medida_descripcion"`
	Codigo                      string          `gorm:"column:codigo;type:varchar(120)"                             json:"codigo"`
	ValorUnitario               decimal.Decimal `gorm:"column:valor_unitario;type:numeric(14,2);not null;default:0" json:"valor_unitario"`
	CantidadActual              int             `gorm:"column:cantidad_actual;not null;default:0"                   json:"cantidad_actual"`
	CantidadMinima              int             `gorm:"column:cantidad_minima;not null;default:0"                   json:"cantidad_minima"`
	CantidadMaxima              int             `gorm:"column:cantidad_maxima;not null;default:0"                   json:"cantidad_maxima"`
	ObservacionesRequerimientos string          `gorm:"column:observaciones_requerimientos;type:text"               json:"observaciones_requerimientos"`
	CreatedAt                   time.Time       `gorm:"column:created_at;autoCreateTime"                            json:"created_at"`
	UpdatedAt                   time.Time       `gorm:"column:updated_at;autoUpdateTime"                            json:"updated_at"`
}

func (OfficeSupplyModel) TableName() string {
	return "papeleria"
}
