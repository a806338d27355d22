package model

import (
	"time"

	availabilityModel "mantenimiento_backend/internals/features/metrics/availability/model"
	efficiencyModel "mantenimiento_backend/internals/features/metrics/efficiency/model"
)

// HistoricalEfficiencyModel is an append-only copy of a live efficiency row.
// (OrigenID, Fecha, Maquina) is unique so a replayed archive can never
// insert the same live row twice.
type HistoricalEfficiencyModel struct {
	ID                uint      `gorm:"column:id;primaryKey"                                                     json:"id"`
	OrigenID          uint      `gorm:"column:origen_id;not null;uniqueIndex:ux_historial_eficiencia_origen,priority:1"      json:"origen_id"`
	Maquina           string    `gorm:"column:maquina;type:varchar(120);not null;uniqueIndex:ux_historial_eficiencia_origen,priority:3"                                 json:"maquina"`
	NoParteInterno    string    `gorm:"column:no_parte_interno;type:varchar(120)"                                 json:"no_parte_interno"`
	NombreOperador    string    `gorm:"column:nombre_operador;type:varchar(160)"                                  json:"nombre_operador"`
	PiezasProgramadas float64   `gorm:"column:piezas_programadas"                                                 json:"piezas_programadas"`
	PiezasReales      float64   `gorm:"column:piezas_reales"                                                      json:"piezas_reales"`
	Scrap             float64   `gorm:"column:scrap"                                                              json:"scrap"`
	Fecha             string    `gorm:"column:fecha;type:varchar(10);not null;uniqueIndex:ux_historial_eficiencia_origen,priority:2"                                    json:"fecha"`
	Semana            int       `gorm:"column:semana"                                                             json:"semana"`
	Anio              int       `gorm:"column:anio"                                                               json:"anio"`
	RolloverSemana    int       `gorm:"column:rollover_semana;index:idx_historial_eficiencia_rollover,priority:2" json:"rollover_semana"`
	RolloverAnio      int       `gorm:"column:rollover_anio;index:idx_historial_eficiencia_rollover,priority:1"   json:"rollover_anio"`
	ArchivadoEn       time.Time `gorm:"column:archivado_en;not null"                                              json:"archivado_en"`
}

func (HistoricalEfficiencyModel) TableName() string {
	return "historial_eficiencia"
}

type HistoricalAvailabilityModel struct {
	ID              uint      `gorm:"column:id;primaryKey"                                                         json:"id"`
	OrigenID        uint      `gorm:"column:origen_id;not null;uniqueIndex:ux_historial_disponibilidad_origen,priority:1"      json:"origen_id"`
	Maquina         string    `gorm:"column:maquina;type:varchar(120);not null;uniqueIndex:ux_historial_disponibilidad_origen,priority:3"                                     json:"maquina"`
	NoParteInterno  string    `gorm:"column:no_parte_interno;type:varchar(120)"                                     json:"no_parte_interno"`
	Operador        string    `gorm:"column:operador;type:varchar(160)"                                             json:"operador"`
	EstandarParo    float64   `gorm:"column:estandar_paro"                                                          json:"estandar_paro"`
	CausaParo       string    `gorm:"column:causa_paro;type:text"                                                   json:"causa_paro"`
	MinutosPerdidos int       `gorm:"column:minutos_perdidos"                                                       json:"minutos_perdidos"`
	Fecha           string    `gorm:"column:fecha;type:varchar(10);not null;uniqueIndex:ux_historial_disponibilidad_origen,priority:2"                                        json:"fecha"`
	Semana          int       `gorm:"column:semana"                                                                 json:"semana"`
	Anio            int       `gorm:"column:anio"                                                                   json:"anio"`
	RolloverSemana  int       `gorm:"column:rollover_semana;index:idx_historial_disponibilidad_rollover,priority:2" json:"rollover_semana"`
	RolloverAnio    int       `gorm:"column:rollover_anio;index:idx_historial_disponibilidad_rollover,priority:1"   json:"rollover_anio"`
	ArchivadoEn     time.Time `gorm:"column:archivado_en;not null"                                                  json:"archivado_en"`
}

func (HistoricalAvailabilityModel) TableName() string {
	return "historial_disponibilidad"
}

// Stamp identifies the rollover run a row was archived by.
type Stamp struct {
	Week int
	Year int
	At   time.Time
}

func FromEfficiency(m efficiencyModel.EfficiencyModel, s Stamp) HistoricalEfficiencyModel {
	return HistoricalEfficiencyModel{
		OrigenID:          m.ID,
		Maquina:           m.Maquina,
		NoParteInterno:    m.NoParteInterno,
		NombreOperador:    m.NombreOperador,
		PiezasProgramadas: m.PiezasProgramadas,
		PiezasReales:      m.PiezasReales,
		Scrap:             m.Scrap,
		Fecha:             m.Fecha,
		Semana:            m.Semana,
		Anio:              m.Anio,
		RolloverSemana:    s.Week,
		RolloverAnio:      s.Year,
		ArchivadoEn:       s.At,
	}
}

func FromAvailability(m availabilityModel.AvailabilityModel, s Stamp) HistoricalAvailabilityModel {
	return HistoricalAvailabilityModel{
		OrigenID:        m.ID,
		Maquina:         m.Maquina,
		NoParteInterno:  m.NoParteInterno,
		Operador:        m.Operador,
		EstandarParo:    m.EstandarParo,
		CausaParo:       m.CausaParo,
		MinutosPerdidos: m.MinutosPerdidos,
		Fecha:           m.Fecha,
		Semana:          m.Semana,
		Anio:            m.Anio,
		RolloverSemana:  s.Week,
		RolloverAnio:    s.Year,
		ArchivadoEn:     s.At,
	}
}
