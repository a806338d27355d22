package model

import "time"

type ToolCartModel struct {
	ID                uint      `gorm:"column:id;primaryKey"                                 json:"id"`
	ZonaProducto      string    `gorm:"column:zona_producto;type:varchar(120);not null"      json:"zona_producto"`
	NombreProducto    string    `gorm:"column:nombre_producto;type:varchar(200);not null"    json:"nombre_producto"`
	Proveedor         string    `gorm:"column:proveedor;type:varchar(160)"                   json:"proveedor"`
	MedidaDescripcion string    `gorm:"column:medida_descripcion;type:varchar(255);not null" json:"medida_descripcion"`
	CodigoCliente     string    `gorm:"column:codigo_cliente;type:varchar(120)"              json:"codigo_cliente"`
	CantidadPrestada  int       `gorm:"column:cantidad_prestada;not null;default:0"          json:"cantidad_prestada"`
	CantidadActual    int       `gorm:"column:cantidad_actual;not null;default:0"            json:"cantidad_actual"`
	Minimo            int       `gorm:"column:minimo;not null;default:0"                     json:"minimo"`
	Maximo            int       `gorm:"column:maximo;not null;default:0"                     json:"maximo"`
	CreatedAt         time.Time `gorm:"column:created_at;autoCreateTime"                     json:"created_at"`
	UpdatedAt         time.Time `gorm:"column:updated_at;autoUpdateTime"                     json:"updated_at"`
}

func (ToolCartModel) TableName() string {
	return "carrito_herramientas"
}
