package dto

import (
	"mantenimiento_backend/internals/features/metrics/availability/model"
	helper "mantenimiento_backend/internals/helpers"
	"mantenimiento_backend/internals/helpers/crud"
	"mantenimiento_backend/internals/helpers/dbtime"
)

// AvailabilityRequest is the body of /guardar_disponibilidad and
// /actualizar_disponibilidad/:id.
type AvailabilityRequest struct {
	Maquina        string  `json:"maquina"        validate:"required,max=120"`
	NoParteInterno string  `json:"noParteInterno" validate:"max=120"`
	Operador       string  `json:"operador"       validate:"max=160"`
	EstandarParo   float64 `json:"estandarParo"   validate:"gte=0"`
	CausaParo      string  `json:"causaParo"`
	Minutos        int     `json:"minutos"        validate:"gte=0"`
	Fecha          string  `json:"fecha"          validate:"required"`

	week, year int
}

func (r *AvailabilityRequest) Normalize() {
	crud.Trim(&r.Maquina, &r.NoParteInterno, &r.Operador, &r.CausaParo, &r.Fecha)
}

func (r *AvailabilityRequest) Check() error {
	week, year, err := dbtime.WeekOfDate(r.Fecha)
	if err != nil {
		return helper.FieldErr("fecha", "fecha must use YYYY-MM-DD")
	}
	r.week, r.year = week, year
	return nil
}

func (r *AvailabilityRequest) ApplyTo(m *model.AvailabilityModel) {
	m.Maquina = r.Maquina
	m.NoParteInterno = r.NoParteInterno
	m.Operador = r.Operador
	m.EstandarParo = r.EstandarParo
	m.CausaParo = r.CausaParo
	m.MinutosPerdidos = r.Minutos
	m.Fecha = r.Fecha
	m.Semana = r.week
	m.Anio = r.year
}
