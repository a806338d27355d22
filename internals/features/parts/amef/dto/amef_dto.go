package dto

import (
	"mantenimiento_backend/internals/features/parts/amef/model"
	"mantenimiento_backend/internals/helpers/crud"
)

// AmefRevisionRequest is one FMEA line. Severity, occurrence and detection
// are rated 0..10; when rpn is omitted it is sev × occ × det.
type AmefRevisionRequest struct {
	NoParteInterno    string   `json:"no_parte_interno"   validate:"required,max=120"`
	NoParteCliente    string   `json:"no_parte_cliente"   validate:"max=120"`
	Revision          int      `json:"revision"           validate:"gte=0"`
	Descripcion       string   `json:"descripcion"        validate:"required"`
	Autor             string   `json:"autor"              validate:"required,max=160"`
	Equipo            string   `json:"equipo"             validate:"required,max=255"`
	Sev               float64  `json:"sev"                validate:"gte=0,lte=10"`
	Class             float64  `json:"class"              validate:"gte=0"`
	Causas            string   `json:"causas"`
	Occ               float64  `json:"occ"                validate:"gte=0,lte=10"`
	ControlPreventivo string   `json:"control_preventivo"`
	ControlDeteccion  string   `json:"control_deteccion"`
	Det               float64  `json:"det"                validate:"gte=0,lte=10"`
	Rpn               *float64 `json:"rpn"                validate:"omitempty,gte=0"`
	Acciones          string   `json:"acciones"`
	Responsables      string   `json:"responsables"`
}

func (r *AmefRevisionRequest) Normalize() {
	crud.Trim(&r.NoParteInterno, &r.NoParteCliente, &r.Descripcion, &r.Autor, &r.Equipo,
		&r.Causas, &r.ControlPreventivo, &r.ControlDeteccion, &r.Acciones, &r.Responsables)
}

func (r *AmefRevisionRequest) Check() error { return nil }

// RPN returns the explicit rpn or the computed product.
func (r *AmefRevisionRequest) RPN() float64 {
	if r.Rpn != nil {
		return *r.Rpn
	}
	return r.Sev * r.Occ * r.Det
}

func (r *AmefRevisionRequest) ApplyTo(m *model.AmefRevisionModel) {
	m.NoParteInterno = r.NoParteInterno
	m.NoParteCliente = r.NoParteCliente
	m.Revision = r.Revision
	m.Descripcion = r.Descripcion
	m.Autor = r.Autor
	m.Equipo = r.Equipo
	m.Sev = r.Sev
	m.Class = r.Class
	m.Causas = r.Causas
	m.Occ = r.Occ
	m.ControlPreventivo = r.ControlPreventivo
	m.ControlDeteccion = r.ControlDeteccion
	m.Det = r.Det
	m.Rpn = r.RPN()
	m.Acciones = r.Acciones
	m.Responsables = r.Responsables
}
