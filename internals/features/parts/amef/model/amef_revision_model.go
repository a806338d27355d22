package model

import "time"

// AmefRevisionModel is one failure-mode line of a part's AMEF (FMEA).
type AmefRevisionModel struct {
	ID                uint      `gorm:"column:id;primaryKey"                                                        json:"id"`
	NoParteInterno    string    `gorm:"column:no_parte_interno;type:varchar(120);not null;index:idx_amef_revisions_parte" json:"no_parte_interno"`
	NoParteCliente    string    `gorm:"column:no_parte_cliente;type:varchar(120)"                                   json:"no_parte_cliente"`
	Revision          int       `gorm:"column:revision;not null"                                                    json:"revision"`
	Descripcion       string    `gorm:"column:descripcion;type:text;not null"                                       json:"descripcion"`
	Autor             string    `gorm:"column:autor;type:varchar(160);not null"                                     json:"autor"`
	Equipo            string    `gorm:"column:equipo;type:varchar(255);not null"                                    json:"equipo"`
	Sev               float64   `gorm:"column:sev"                                                                  json:"sev"`
	Class             float64   `gorm:"column:class"                                                                json:"class"`
	Causas            string    `gorm:"column:causas;type:text"                                                     json:"causas"`
	Occ               float64   `gorm:"column:occ"                                                                  json:"occ"`
	ControlPreventivo string    `gorm:"column:control_preventivo;type:text"                                         json:"control_preventivo"`
	ControlDeteccion  string    `gorm:"column:control_deteccion;type:text"                                          json:"control_deteccion"`
	Det               float64   `gorm:"column:det"                                                                  json:"det"`
	Rpn               float64   `gorm:"column:rpn"                                                                  json:"rpn"`
	Acciones          string    `gorm:"column:acciones;type:text"                                                   json:"acciones"`
	Responsables      string    `gorm:"column:responsables;type:text"                                               json:"responsables"`
	Fecha             time.Time `gorm:"column:fecha;autoCreateTime"                                                 json:"fecha"`
}

func (AmefRevisionModel) TableName() string {
	return "amef_revisions"
}
