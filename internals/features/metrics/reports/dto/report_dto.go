package dto

// WeekFilter narrows a report to one ISO week. A nil filter means all live data.
type WeekFilter struct {
	Year int
	Week int
}

// MachineIndicator is one row of /obtener_indicadores_maquinas.
type MachineIndicator struct {
	Nombre                 string  `json:"nombre"`
	MinutosParo            int64   `json:"minutos_paro"`
	MinutosProgramados     int     `json:"minutos_programados"`
	PiezasScrap            float64 `json:"piezas_scrap"`
	PiezasProducidas       float64 `json:"piezas_producidas"`
	ObjetivoTiempoMuerto   float64 `json:"objetivo_tiempo_muerto"`
	ObjetivoScrap          float64 `json:"objetivo_scrap"`
	PorcentajeTiempoMuerto float64 `json:"porcentaje_tiempo_muerto"`
	PorcentajeScrap        float64 `json:"porcentaje_scrap"`
}

// MachinePart is a (machine, part) pair seen in the live metrics.
type MachinePart struct {
	Maquina        string `json:"maquina"`
	NoParteInterno string `json:"no_parte_interno"`
}

// MonthlyTotals is manufactured/scrap pieces for one calendar month,
// taken from materiales.fecha_orden.
type MonthlyTotals struct {
	Month             int `json:"month"`
	TotalManufactured int `json:"total_manufactured"`
	TotalScrap        int `json:"total_scrap"`
}
