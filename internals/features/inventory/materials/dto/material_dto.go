package dto

import (
	"mantenimiento_backend/internals/features/inventory/materials/model"
	"mantenimiento_backend/internals/helpers/crud"
	"mantenimiento_backend/internals/helpers/dbtime"

	helper "mantenimiento_backend/internals/helpers"
)

type MaterialRequest struct {
	Material           string  `json:"material"            validate:"required,max=160"`
	Proveedor          string  `json:"proveedor"           validate:"max=160"`
	LongitudBarra      float64 `json:"longitud_barra"      validate:"gte=0"`
	PesoBarra          float64 `json:"peso_barra"          validate:"gte=0"`
	LongitudPieza      float64 `json:"longitud_pieza"      validate:"gte=0"`
	CantidadLaton      int     `json:"cantidad_laton"      validate:"gte=0"`
	PiezasPorBarra     int     `json:"piezas_por_barra"    validate:"gte=0"`
	CantidadKilogramos float64 `json:"cantidad_kilogramos" validate:"gte=0"`
	NumeroParte        string  `json:"numero_parte"        validate:"max=120"`
	Densidad           float64 `json:"densidad"            validate:"gte=0"`
	TipoMateriaPrima   string  `json:"tipo_materia_prima"  validate:"max=120"`
	DiametroMaterial   float64 `json:"diametro_material"   validate:"gte=0"`
	VolumenKg          float64 `json:"volumen_kg"          validate:"gte=0"`
	HorasXPieza        float64 `json:"horas_x_pieza"       validate:"gte=0"`
	NoParteInterno     string  `json:"no_parte_interno"    validate:"max=120"`
	CantidadDeOrden    int     `json:"cantidad_de_orden"   validate:"gte=0"`
	Tornos             int     `json:"tornos"              validate:"gte=0"`
	Scrap              int     `json:"scrap"               validate:"gte=0"`
	FechaOrden         string  `json:"fecha_orden"`
}

func (r *MaterialRequest) Normalize() {
	crud.Trim(&r.Material, &r.Proveedor, &r.NumeroParte, &r.TipoMateriaPrima, &r.NoParteInterno, &r.FechaOrden)
}

func (r *MaterialRequest) Check() error {
	if r.FechaOrden == "" {
		return nil
	}
	if _, err := dbtime.ParseDate(r.FechaOrden); err != nil {
		return helper.FieldErr("fecha_orden", "fecha_orden must use YYYY-MM-DD")
	}
	return nil
}

func (r *MaterialRequest) ApplyTo(m *model.MaterialModel) {
	m.Material = r.Material
	m.Proveedor = r.Proveedor
	m.LongitudBarra = r.LongitudBarra
	m.PesoBarra = r.PesoBarra
	m.LongitudPieza = r.LongitudPieza
	m.CantidadLaton = r.CantidadLaton
	m.PiezasPorBarra = r.PiezasPorBarra
	m.CantidadKilogramos = r.CantidadKilogramos
	m.NumeroParte = r.NumeroParte
	m.Densidad = r.Densidad
	m.TipoMateriaPrima = r.TipoMateriaPrima
	m.DiametroMaterial = r.DiametroMaterial
	m.VolumenKg = r.VolumenKg
	m.HorasXPieza = r.HorasXPieza
	m.NoParteInterno = r.NoParteInterno
	m.CantidadDeOrden = r.CantidadDeOrden
	m.Tornos = r.Tornos
	m.Scrap = r.Scrap
	m.FechaOrden = r.FechaOrden
}

// MaterialView is a material row joined with its part card: the display
// name prefers the part's raw material and pieza_x_hora comes from the part.
type MaterialView struct {
	model.MaterialModel
	DisplayMaterial string `json:"display_material"`
	PiezaXHora      *int   `json:"pieza_x_hora"`
}
