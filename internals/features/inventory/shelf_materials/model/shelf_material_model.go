package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// ShelfMaterialModel is a shelving position that may carry up to three
// brand/code alternatives and four price points for the same material.
type ShelfMaterialModel struct {
	ID               uint            `gorm:"column:id;primaryKey"                                json:"id"`
	Ubicacion        string          `gorm:"column:ubicacion;type:varchar(120);not null"         json:"ubicacion"`
	NombreProducto   string          `gorm:"column:nombre_producto;type:varchar(200);not null"   json:"nombre_producto"`
	Proveedor        string          `gorm:"column:proveedor;type:varchar(160)"                  json:"proveedor"`
	Descripcion      string          `gorm:"column:descripcion;type:text;not null"               json:"descripcion"`
	Marca1           string          `gorm:"column:marca1;type:varchar(120)"                     json:"marca1"`
	Marca2           string          `gorm:"column:marca2;type:varchar(120)"                     json:"marca2"`
	Marca3           string          `gorm:"column:marca3;type:varchar(120)"                     json:"marca3"`
	Codigo1          string          `gorm:"column:codigo1;type:varchar(120)"                    json:"codigo1"`
	Codigo2          string          `gorm:"column:codigo2;type:varchar(120)"                    json:"codigo2"`
	Codigo3          string          `gorm:"column:codigo3;type:varchar(120)"                    json:"codigo3"`
	ValorUnitario1   decimal.Decimal `gorm:"column:valor_unitario1;type:numeric(14,2);not null;default:0" json:"valor_unitario1"`
	ValorUnitario2   decimal.Decimal `gorm:"column:valor_unitario2;type:numeric(14,2);not null;default:0" json:"valor_unitario2"`
	ValorUnitario3   decimal.Decimal `gorm:"column:valor_unitario3;type:numeric(14,2);not null;default:0" json:"valor_unitario3"`
	ValorUnitario4   decimal.Decimal `gorm:"column:valor_unitario4;type:numeric(14,2);not null;default:0" json:"valor_unitario4"`
	CantidadAPrestar int             `gorm:"column:cantidad_a_prestar;not null;default:0"        json:"cantidad_a_prestar"`
	CantidadActual   int             `gorm:"column:cantidad_actual;not null;default:0"           json:"cantidad_actual"`
	Observaciones    string          `gorm:"column:observaciones;type:text"                      json:"observaciones"`
	Minimo           int             `gorm:"column:minimo;not null;default:0"                    json:"minimo"`
	Maximo           int             `gorm:"column:maximo;not null;default:0"                    json:"maximo"`
	CreatedAt        time.Time       `gorm:"column:created_at;autoCreateTime"                    json:"created_at"`
	UpdatedAt        time.Time       `gorm:"column:updated_at;autoUpdateTime"                    json:"updated_at"`
}

func (ShelfMaterialModel) TableName() string {
	return "material_estanteria"
}
