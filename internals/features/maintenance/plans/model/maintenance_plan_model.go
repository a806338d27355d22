package model

import (
	"time"

	"gorm.io/datatypes"
)

// MaintenancePlanModel is one row of the preventive-maintenance board.
// Status maps "<month>-<week>" to {"status": ..., "date": ...}.
type MaintenancePlanModel struct {
	ID          uint              `gorm:"column:id;primaryKey"                                                      json:"id"`
	MachineName string            `gorm:"column:machine_name;type:varchar(160);not null;uniqueIndex:ux_mantenimiento_machine" json:"machine_name"`
	WeekNumber  int               `gorm:"column:week_number;not null;default:0"                                     json:"week_number"`
	Year        int               `gorm:"column:year;not null;index:idx_mantenimiento_year"                         json:"year"`
	Status      datatypes.JSONMap `gorm:"column:status;type:json"                                                   json:"status"`
	OrderIndex  int               `gorm:"column:order_index;not null;default:0"                                     json:"order_index"`
	CreatedAt   time.Time         `gorm:"column:created_at;autoCreateTime"                                          json:"created_at"`
	UpdatedAt   time.Time         `gorm:"column:updated_at;autoUpdateTime"                                          json:"updated_at"`
}

func (MaintenancePlanModel) TableName() string {
	return "mantenimiento"
}
