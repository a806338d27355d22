package model

import "time"

// BandModel is a belt/band stocked per column. CantidadActual is what is left
// on the shelf after CantidadPrestada was lent out.
type BandModel struct {
	ID               uint      `gorm:"column:id;primaryKey"                              json:"id"`
	NombreProducto   string    `gorm:"column:nombre_producto;type:varchar(200);not null" json:"nombre_producto"`
	MarcaProducto    string    `gorm:"column:marca_producto;type:varchar(120)"           json:"marca_producto"`
	Columna          string    `gorm:"column:columna;type:varchar(60);not null"          json:"columna"`
	CodigoProveedor  string    `gorm:"column:codigo_proveedor;type:varchar(120);not null" json:"codigo_proveedor"`
	CantidadPrestada int       `gorm:"column:cantidad_prestada;not null;default:0"       json:"cantidad_prestada"`
	CantidadActual   int       `gorm:"column:cantidad_actual;not null;default:0"         json:"cantidad_actual"`
	CreatedAt        time.Time `gorm:"column:created_at;autoCreateTime"                  json:"created_at"`
	UpdatedAt        time.Time `gorm:"column:updated_at;autoUpdateTime"                  json:"updated_at"`
}

func (BandModel) TableName() string {
	return "bandas"
}
