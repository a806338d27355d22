package model

import "time"

// MaterialModel is one raw-material bar order. FechaOrden is YYYY-MM-DD and
// feeds the monthly manufactured/scrap totals.
type MaterialModel struct {
	ID                 uint      `gorm:"column:id;primaryKey"                                                 json:"id"`
	Material           string    `gorm:"column:material;type:varchar(160)"                                    json:"material"`
	Proveedor          string    `gorm:"column:proveedor;type:varchar(160)"                                   json:"proveedor"`
	LongitudBarra      float64   `gorm:"column:longitud_barra"                                                json:"longitud_barra"`
	PesoBarra          float64   `gorm:"column:peso_barra"                                                    json:"peso_barra"`
	LongitudPieza      float64   `gorm:"column:longitud_pieza"                                                json:"longitud_pieza"`
	CantidadLaton      int       `gorm:"column:cantidad_laton"                                                json:"cantidad_laton"`
	PiezasPorBarra     int       `gorm:"column:piezas_por_barra"                                              json:"piezas_por_barra"`
	CantidadKilogramos float64   `gorm:"column:cantidad_kilogramos"                                           json:"cantidad_kilogramos"`
	NumeroParte        string    `gorm:"column:numero_parte;type:varchar(120)"                                json:"numero_parte"`
	Densidad           float64   `gorm:"column:densidad"                                                      json:"densidad"`
	TipoMateriaPrima   string    `gorm:"column:tipo_materia_prima;type:varchar(120)"                          json:"tipo_materia_prima"`
	DiametroMaterial   float64   `gorm:"column:diametro_material"                                             json:"diametro_material"`
	VolumenKg          float64   `gorm:"column:volumen_kg"                                                    json:"volumen_kg"`
	HorasXPieza        float64   `gorm:"column:horas_x_pieza"                                                 json:"horas_x_pieza"`
	NoParteInterno     string    `gorm:"column:no_parte_interno;type:varchar(120);index:idx_materiales_parte" json:"no_parte_interno"`
	CantidadDeOrden    int       `gorm:"column:cantidad_de_orden"                                             json:"cantidad_de_orden"`
	Tornos             int       `gorm:"column:tornos"                                                        json:"tornos"`
	Scrap              int       `gorm:"column:scrap"                                                         json:"scrap"`
	FechaOrden         string    `gorm:"column:fecha_orden;type:varchar(10);index:idx_materiales_fecha_orden" json:"fecha_orden"`
	CreatedAt          time.Time `gorm:"column:created_at;autoCreateTime"                                     json:"created_at"`
	UpdatedAt          time.Time `gorm:"column:updated_at;autoUpdateTime"                                     json:"updated_at"`
}

func (MaterialModel) TableName() string {
	return "materiales"
}
