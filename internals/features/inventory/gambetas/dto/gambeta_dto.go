package dto

import (
	"mantenimiento_backend/internals/features/inventory/gambetas/model"
	"mantenimiento_backend/internals/helpers/crud"

	"github.com/shopspring/decimal"
)

type GambetaRequest struct {
	TipoGambeta      string          `json:"tipo_gambeta"      validate:"required,max=120"`
	NombreProducto   string          `json:"nombre_producto"   validate:"required,max=200"`
	Nivel            string          `json:"nivel"             validate:"required,max=60"`
	Codigo           string          `json:"codigo"            validate:"max=120"`
	CantidadPrestada int             `json:"cantidad_prestada" validate:"gte=0"`
	VuPesos          decimal.Decimal `json:"vu_pesos"`
	Minimo           int             `json:"minimo"            validate:"gte=0"`
	Maximo           int             `json:"maximo"            validate:"gte=0"`
	CantidadActual   int             `json:"cantidad_actual"   validate:"gte=0"`
}

func (r *GambetaRequest) Normalize() {
	crud.Trim(&r.TipoGambeta, &r.NombreProducto, &r.Nivel, &r.Codigo)
}

func (r *GambetaRequest) Check() error {
	return crud.FirstErr(
		crud.NonNegative("vu_pesos", r.VuPesos),
		crud.CheckMinMax("minimo", r.Minimo, "maximo", r.Maximo),
	)
}

func (r *GambetaRequest) ApplyTo(m *model.GambetaModel) {
	m.TipoGambeta = r.TipoGambeta
	m.NombreProducto = r.NombreProducto
	m.Nivel = r.Nivel
	m.Codigo = r.Codigo
	m.CantidadPrestada = r.CantidadPrestada
	m.VuPesos = r.VuPesos
	m.Minimo = r.Minimo
	m.Maximo = r.Maximo
	m.CantidadActual = r.CantidadActual
}

// GambetaInfo answers the lookup by product name and level.
type GambetaInfo struct {
	Minimo         int `json:"minimo"`
	Maximo         int `json:"maximo"`
	CantidadActual int `json:"cantidad_actual"`
}

func ToGambetaInfo(m *model.GambetaModel) GambetaInfo {
	return GambetaInfo{
		Minimo:         m.Minimo,
		Maximo:         m.Maximo,
		CantidadActual: m.CantidadActual,
	}
}
