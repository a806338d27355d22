package dto

import (
	"mantenimiento_backend/internals/features/metrics/efficiency/model"
	helper "mantenimiento_backend/internals/helpers"
	"mantenimiento_backend/internals/helpers/crud"
	"mantenimiento_backend/internals/helpers/dbtime"
)

// EfficiencyRequest is the body of /guardar_eficiencia and
// /actualizar_eficiencia/:id.
type EfficiencyRequest struct {
	Maquina        string  `json:"maquina"        validate:"required,max=120"`
	NoParteInterno string  `json:"noParteInterno" validate:"required,max=120"`
	NombreOperador string  `json:"nombreOperador" validate:"required,max=160"`
	Programado     float64 `json:"programado"     validate:"gte=0"`
	Real           float64 `json:"real"           validate:"gte=0"`
	Scrap          float64 `json:"scrap"          validate:"gte=0"`
	Fecha          string  `json:"fecha"          validate:"required"`

	week, year int
}

func (r *EfficiencyRequest) Normalize() {
	crud.Trim(&r.Maquina, &r.NoParteInterno, &r.NombreOperador, &r.Fecha)
}

func (r *EfficiencyRequest) Check() error {
	week, year, err := dbtime.WeekOfDate(r.Fecha)
	if err != nil {
		return helper.FieldErr("fecha", "fecha must use YYYY-MM-DD")
	}
	r.week, r.year = week, year
	return nil
}

func (r *EfficiencyRequest) ApplyTo(m *model.EfficiencyModel) {
	m.Maquina = r.Maquina
	m.NoParteInterno = r.NoParteInterno
	m.NombreOperador = r.NombreOperador
	m.PiezasProgramadas = r.Programado
	m.PiezasReales = r.Real
	m.Scrap = r.Scrap
	m.Fecha = r.Fecha
	m.Semana = r.week
	m.Anio = r.year
}
