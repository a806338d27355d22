package model

import "time"

// EfficiencyModel is one production report line: planned vs actual pieces
// for a machine on a date. Semana/Anio are the ISO week and week-year of
// Fecha and are recomputed whenever Fecha is written.
type EfficiencyModel struct {
	ID                uint      `gorm:"column:id;primaryKey"                                                  json:"id"`
	Maquina           string    `gorm:"column:maquina;type:varchar(120);not null;index:idx_eficiencia_maquina" json:"maquina"`
	NoParteInterno    string    `gorm:"column:no_parte_interno;type:varchar(120);not null"                     json:"no_parte_interno"`
	NombreOperador    string    `gorm:"column:nombre_operador;type:varchar(160);not null"                      json:"nombre_operador"`
	PiezasProgramadas float64   `gorm:"column:piezas_programadas;not null;default:0"                           json:"piezas_programadas"`
	PiezasReales      float64   `gorm:"column:piezas_reales;not null;default:0"                                json:"piezas_reales"`
	Scrap             float64   `gorm:"column:scrap;not null;default:0"                                        json:"scrap"`
	Fecha             string    `gorm:"column:fecha;type:varchar(10);not null;index:idx_eficiencia_fecha"      json:"fecha"`
	Semana            int       `gorm:"column:semana;index:idx_eficiencia_anio_semana,priority:2"             json:"semana"`
	Anio              int       `gorm:"column:anio;index:idx_eficiencia_anio_semana,priority:1"               json:"anio"`
	CreatedAt         time.Time `gorm:"column:created_at;autoCreateTime"                                       json:"created_at"`
	UpdatedAt         time.Time `gorm:"column:updated_at;autoUpdateTime"                                       json:"updated_at"`
}

func (EfficiencyModel) TableName() string {
	return "eficiencia"
}
