package dto

import (
	"mantenimiento_backend/internals/features/parts/part_specs/model"
	"mantenimiento_backend/internals/helpers/crud"
)

type PartSpecRequest struct {
	NoParteInterno   string  `json:"no_parte_interno"  validate:"required,max=120"`
	NoParteCliente   string  `json:"no_parte_cliente"  validate:"max=120"`
	Descripcion      string  `json:"descripcion"`
	Cliente          string  `json:"cliente"           validate:"max=160"`
	MateriaPrima     string  `json:"materia_prima"     validate:"max=160"`
	MedidaPulgadas   float64 `json:"medida_pulgadas"   validate:"gte=0"`
	MedidaMilimetros float64 `json:"medida_milimetros" validate:"gte=0"`
	PiezaXHora       int     `json:"pieza_x_hora"      validate:"gte=0"`
	PiezaXTurnoLaj   int     `json:"pieza_x_turno_laj" validate:"gte=0"`
	PiezasPorBarra   int     `json:"piezas_por_barra"  validate:"gte=0"`
	LongitudMedida   float64 `json:"longitud_medida"   validate:"gte=0"`
}

func (r *PartSpecRequest) Normalize() {
	crud.Trim(&r.NoParteInterno, &r.NoParteCliente, &r.Descripcion, &r.Cliente, &r.MateriaPrima)
}

func (r *PartSpecRequest) Check() error { return nil }

func (r *PartSpecRequest) ApplyTo(m *model.PartSpecModel) {
	m.NoParteInterno = r.NoParteInterno
	m.NoParteCliente = r.NoParteCliente
	m.Descripcion = r.Descripcion
	m.Cliente = r.Cliente
	m.MateriaPrima = r.MateriaPrima
	m.MedidaPulgadas = r.MedidaPulgadas
	m.MedidaMilimetros = r.MedidaMilimetros
	m.PiezaXHora = r.PiezaXHora
	m.PiezaXTurnoLaj = r.PiezaXTurnoLaj
	m.PiezasPorBarra = r.PiezasPorBarra
	m.LongitudMedida = r.LongitudMedida
}

// QuickPartRequest is the short form used by the AMEF screen to register
// a part before its first revision.
type QuickPartRequest struct {
	NoParteInterno string `json:"no_parte_interno" validate:"required,max=120"`
	NoParteCliente string `json:"no_parte_cliente" validate:"max=120"`
	Descripcion    string `json:"descripcion"`
}

func (r *QuickPartRequest) Normalize() {
	crud.Trim(&r.NoParteInterno, &r.NoParteCliente, &r.Descripcion)
}

func (r *QuickPartRequest) Check() error { return nil }

func (r *QuickPartRequest) ApplyTo(m *model.PartSpecModel) {
	m.NoParteInterno = r.NoParteInterno
	m.NoParteCliente = r.NoParteCliente
	m.Descripcion = r.Descripcion
}
