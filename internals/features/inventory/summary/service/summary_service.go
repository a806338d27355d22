package service

import (
	"context"

	gambetaModel "mantenimiento_backend/internals/features/inventory/gambetas/model"
	lockerModel "mantenimiento_backend/internals/features/inventory/lockers/model"
	officeModel "mantenimiento_backend/internals/features/inventory/office_supplies/model"
	shelfModel "mantenimiento_backend/internals/features/inventory/shelf_materials/model"
	"mantenimiento_backend/internals/features/inventory/summary/dto"
	toolCartModel "mantenimiento_backend/internals/features/inventory/tool_carts/model"
	helper "mantenimiento_backend/internals/helpers"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	SourceGambeta = "Gambeta"
	SourceLocker  = "Locker"
	SourcePapel   = "Papeleria"
	SourceShelf   = "Estanteria"
	SourceCart    = "Carrito"
)

type SummaryService struct {
	DB *gorm.DB
}

func NewSummaryService(db *gorm.DB) *SummaryService {
	return &SummaryService{DB: db}
}

// Valuation prices every stocked item (quantity > 0) at its unit value.
func (s *SummaryService) Valuation(ctx context.Context) (dto.Valuation, error) {
	db := s.DB.WithContext(ctx)
	out := dto.Valuation{Lineas: make([]dto.ValuationLine, 0), ValorTotal: decimal.Zero}

	add := func(nombre string, qty int, vu decimal.Decimal, fuente string) {
		valor := vu.Mul(decimal.NewFromInt(int64(qty)))
		out.Lineas = append(out.Lineas, dto.ValuationLine{
			Nombre: nombre, Cantidad: qty, Vu: vu, Valor: valor, Fuente: fuente,
		})
		out.ValorTotal = out.ValorTotal.Add(valor)
	}

	var gambetas []gambetaModel.GambetaModel
	if err := db.Where("cantidad_actual > 0").Order("nombre_producto").Find(&gambetas).Error; err != nil {
		return out, helper.Classify(err, "inventory")
	}
	for _, g := range gambetas {
		add(g.NombreProducto, g.CantidadActual, g.VuPesos, SourceGambeta)
	}

	var lockers []lockerModel.LockerModel
	if err := db.Where("stock_producto > 0").Order("nombre_producto").Find(&lockers).Error; err != nil {
		return out, helper.Classify(err, "inventory")
	}
	for _, l := range lockers {
		add(l.NombreProducto, l.StockProducto, l.ValorUnitario, SourceLocker)
	}

	var office []officeModel.OfficeSupplyModel
	if err := db.Where("cantidad_actual > 0").Order("nombre_producto").Find(&office).Error; err != nil {
		return out, helper.Classify(err, "inventory")
	}
	for _, o := range office {
		add(o.NombreProducto, o.CantidadActual, o.ValorUnitario, SourcePapel)
	}

	var shelf []shelfModel.ShelfMaterialModel
	if err := db.Where("cantidad_actual > 0").Order("nombre_producto").Find(&shelf).Error; err != nil {
		return out, helper.Classify(err, "inventory")
	}
	for _, m := range shelf {
		add(m.NombreProducto, m.CantidadActual, m.ValorUnitario1, SourceShelf)
	}

	return out, nil
}

// Alerts lists every item whose quantity is outside its configured range.
func (s *SummaryService) Alerts(ctx context.Context) ([]dto.StockAlert, error) {
	db := s.DB.WithContext(ctx)
	out := make([]dto.StockAlert, 0)

	check := func(fuente string, id uint, nombre string, qty, min, max int) {
		if estado := dto.CheckRange(qty, min, max); estado != "" {
			out = append(out, dto.StockAlert{
				Fuente: fuente, ID: id, Nombre: nombre,
				Cantidad: qty, Minimo: min, Maximo: max, Estado: estado,
			})
		}
	}

	var lockers []lockerModel.LockerModel
	if err := db.Order("id").Find(&lockers).Error; err != nil {
		return nil, helper.Classify(err, "inventory")
	}
	for _, l := range lockers {
		check(SourceLocker, l.ID, l.NombreProducto, l.StockProducto, l.StockMinimo, l.StockMaximo)
	}

	var gambetas []gambetaModel.GambetaModel
	if err := db.Order("id").Find(&gambetas).Error; err != nil {
		return nil, helper.Classify(err, "inventory")
	}
	for _, g := range gambetas {
		check(SourceGambeta, g.ID, g.NombreProducto, g.CantidadActual, g.Minimo, g.Maximo)
	}

	var carts []toolCartModel.ToolCartModel
	if err := db.Order("id").Find(&carts).Error; err != nil {
		return nil, helper.Classify(err, "inventory")
	}
	for _, t := range carts {
		check(SourceCart, t.ID, t.NombreProducto, t.CantidadActual, t.Minimo, t.Maximo)
	}

	var shelf []shelfModel.ShelfMaterialModel
	if err := db.Order("id").Find(&shelf).Error; err != nil {
		return nil, helper.Classify(err, "inventory")
	}
	for _, m := range shelf {
		check(SourceShelf, m.ID, m.NombreProducto, m.CantidadActual, m.Minimo, m.Maximo)
	}

	var office []officeModel.OfficeSupplyModel
	if err := db.Order("id").Find(&office).Error; err != nil {
		return nil, helper.Classify(err, "inventory")
	}
	for _, o := range office {
		check(SourcePapel, o.ID, o.NombreProducto, o.CantidadActual, o.CantidadMinima, o.CantidadMaxima)
	}

	return out, nil
}
