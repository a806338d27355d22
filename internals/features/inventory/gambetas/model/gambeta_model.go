package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// GambetaModel is a drawer slot of the tool crib, addressed by type and level.
type GambetaModel struct {
	ID               uint            `gorm:"column:id;primaryKey"                                                    json:"id"`
	TipoGambeta      string          `gorm:"column:tipo_gambeta;type:varchar(120);not null"                          json:"tipo_gambeta"`
	NombreProducto   string          `gorm:"column:nombre_producto;type:varchar(200);not null;index:idx_gambetas_nombre_nivel,priority:1" json:"nombre_producto"`
	Nivel            string          `gorm:"column:nivel;type:varchar(60);not null;index:idx_gambetas_nombre_nivel,priority:2"            json:"nivel"`
	Codigo           string          `gorm:"column:codigo;type:varchar(120)"                                         json:"codigo"`
	CantidadPrestada int             `gorm:"column:cantidad_prestada;not null;default:0"                             json:"cantidad_prestada"`
	VuPesos          decimal.Decimal `gorm:"column:vu_pesos;type:numeric(14,2);not null;default:0"                   json:"vu_pesos"`
	Minimo           int             `gorm:"column:minimo;not null;default:0"                                        json:"minimo"`
	Maximo           int             `gorm:"column:maximo;not null;default:0"                                        json:"maximo"`
	CantidadActual   int             `gorm:"column:cantidad_actual;not null;default:0"                               json:"cantidad_actual"`
	CreatedAt        time.Time       `gorm:"column:created_at;autoCreateTime"                                        json:"created_at"`
	UpdatedAt        time.Time       `gorm:"column:updated_at;autoUpdateTime"                                        json:"updated_at"`
}

func (GambetaModel) TableName() string {
	return "gambetas"
}
