package model

import (
	"time"

	amefModel "mantenimiento_backend/internals/features/parts/amef/model"
)

// PartSpecModel is the engineering card of a part, keyed by the internal
// part number the rest of the plant refers to.
type PartSpecModel struct {
	ID               uint      `gorm:"column:id;primaryKey"                                                            json:"id"`
	NoParteInterno   string    `gorm:"column:no_parte_interno;type:varchar(120);not null;uniqueIndex:ux_partes_piezas_interno" json:"no_parte_interno"`
	NoParteCliente   string    `gorm:"column:no_parte_cliente;type:varchar(120)"                                       json:"no_parte_cliente"`
	Descripcion      string    `gorm:"column:descripcion;type:text"                                                    json:"descripcion"`
	Cliente          string    `gorm:"column:cliente;type:varchar(160)"                                                json:"cliente"`
	MateriaPrima     string    `gorm:"column:materia_prima;type:varchar(160)"                                          json:"materia_prima"`
	MedidaPulgadas   float64   `gorm:"column:medida_pulgadas"                                                          json:"medida_pulgadas"`
	MedidaMilimetros float64   `gorm:"column:medida_milimetros"                                                        json:"medida_milimetros"`
	PiezaXHora       int       `gorm:"column:pieza_x_hora"                                                             json:"pieza_x_hora"`
	PiezaXTurnoLaj   int       `gorm:"column:pieza_x_turno_laj"                                                        json:"pieza_x_turno_laj"`
	PiezasPorBarra   int       `gorm:"column:piezas_por_barra"                                                         json:"piezas_por_barra"`
	LongitudMedida   float64   `gorm:"column:longitud_medida"                                                          json:"longitud_medida"`
	CreatedAt        time.Time `gorm:"column:created_at;autoCreateTime"                                                json:"created_at"`
	UpdatedAt        time.Time `gorm:"column:updated_at;autoUpdateTime"                                                json:"updated_at"`

	// FK lives on amef_revisions; a part with revisions cannot be deleted.
	Revisions []amefModel.AmefRevisionModel `gorm:"foreignKey:NoParteInterno;references:NoParteInterno;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
}

func (PartSpecModel) TableName() string {
	return "partes_piezas"
}
