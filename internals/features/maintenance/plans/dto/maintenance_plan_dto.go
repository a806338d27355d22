package dto

import (
	"strings"

	helper "mantenimiento_backend/internals/helpers"
)

// SavePlanRequest creates a board row or merges status cells into the
// existing row of the same machine.
type SavePlanRequest struct {
	MachineName string         `json:"machineName" validate:"required,max=160"`
	WeekNumber  int            `json:"weekNumber"  validate:"gte=1,lte=53"`
	Year        int            `json:"year"        validate:"omitempty,gte=2000,lte=2100"`
	Status      map[string]any `json:"status"      validate:"required"`
}

func (r *SavePlanRequest) Normalize() {
	r.MachineName = strings.TrimSpace(r.MachineName)
}

// UpdateCellRequest sets one "<month>-<week>" cell of a row.
type UpdateCellRequest struct {
	MachineID uint   `json:"machineId" validate:"required"`
	Month     string `json:"month"     validate:"required,max=20"`
	Week      string `json:"week"      validate:"required,max=10"`
	NewStatus string `json:"newStatus" validate:"required,max=40"`
	NewDate   string `json:"newDate"   validate:"max=20"`
}

func (r *UpdateCellRequest) Normalize() {
	r.Month = strings.TrimSpace(r.Month)
	r.Week = strings.TrimSpace(r.Week)
	r.NewStatus = strings.TrimSpace(r.NewStatus)
	r.NewDate = strings.TrimSpace(r.NewDate)
}

func (r *UpdateCellRequest) CellKey() string { return r.Month + "-" + r.Week }

func (r *UpdateCellRequest) Cell() map[string]any {
	return map[string]any{"status": r.NewStatus, "date": r.NewDate}
}

type ReorderItem struct {
	ID         uint `json:"id"          validate:"required"`
	OrderIndex *int `json:"order_index" validate:"required,gte=0"`
}

// CheckReorder rejects an empty list or a row listed twice.
func CheckReorder(items []ReorderItem) error {
	if len(items) == 0 {
		return helper.ValidationErr("no data provided")
	}
	seen := make(map[uint]bool, len(items))
	for _, it := range items {
		if it.ID == 0 || it.OrderIndex == nil || *it.OrderIndex < 0 {
			return helper.ValidationErr("each item needs id and order_index >= 0")
		}
		if seen[it.ID] {
			return helper.ValidationErr("duplicate id in reorder list")
		}
		seen[it.ID] = true
	}
	return nil
}
