package model

import "time"

// AvailabilityModel is one downtime event for a machine.
type AvailabilityModel struct {
	ID              uint      `gorm:"column:id;primaryKey"                                                      json:"id"`
	Maquina         string    `gorm:"column:maquina;type:varchar(120);not null;index:idx_disponibilidad_maquina" json:"maquina"`
	NoParteInterno  string    `gorm:"column:no_parte_interno;type:varchar(120)"                                  json:"no_parte_interno"`
	Operador        string    `gorm:"column:operador;type:varchar(160)"                                          json:"operador"`
	EstandarParo    float64   `gorm:"column:estandar_paro;default:0"                                             json:"estandar_paro"`
	CausaParo       string    `gorm:"column:causa_paro;type:text"                                                json:"causa_paro"`
	MinutosPerdidos int       `gorm:"column:minutos_perdidos;not null;default:0"                                 json:"minutos_perdidos"`
	Fecha           string    `gorm:"column:fecha;type:varchar(10);not null;index:idx_disponibilidad_fecha"      json:"fecha"`
	Semana          int       `gorm:"column:semana;index:idx_disponibilidad_anio_semana,priority:2"             json:"semana"`
	Anio            int       `gorm:"column:anio;index:idx_disponibilidad_anio_semana,priority:1"               json:"anio"`
	CreatedAt       time.Time `gorm:"column:created_at;autoCreateTime"                                           json:"created_at"`
	UpdatedAt       time.Time `gorm:"column:updated_at;autoUpdateTime"                                           json:"updated_at"`
}

func (AvailabilityModel) TableName() string {
	return "disponibilidad"
}
