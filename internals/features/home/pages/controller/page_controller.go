package controller

import (
	"mantenimiento_backend/internals/features/home/pages/view"
	summaryService "mantenimiento_backend/internals/features/inventory/summary/service"
	helperAuth "mantenimiento_backend/internals/helpers/auth"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Section is a list page backed by one JSON endpoint.
type Section struct {
	Path   string
	Title  string
	Source string
}

var Sections = []Section{
	{"/listas_lockers", "Lockers", "/obtener_lista_lockers"},
	{"/gambetas", "Gambetas", "/obtener_gambetas"},
	{"/carrito_de_herramientas", "Carrito de herramientas", "/obtener_carrito_herramientas"},
	{"/estanterias", "Material de estantería", "/obtener_material_estanteria"},
	{"/bandas", "Bandas", "/obtener_bandas"},
	{"/papeleria", "Papelería", "/obtener_papeleria"},
	{"/mantenimento", "Plan de mantenimiento", "/api/mantenimiento"},
	{"/piezas", "Partes y piezas", "/obtener_partes_piezas"},
	{"/indicadores", "Indicadores por máquina", "/obtener_indicadores_maquinas"},
	{"/eficiencia", "Eficiencia", "/obtener_eficiencias"},
	{"/disponibilidad", "Disponibilidad", "/obtener_disponibilidades"},
	{"/tiempo_muerto_scrap", "Tiempo muerto y scrap", "/api/get_all_monthly_data"},
}

type PageController struct {
	Summary *summaryService.SummaryService
}

func NewPageController(db *gorm.DB) *PageController {
	return &PageController{Summary: summaryService.NewSummaryService(db)}
}

func page(c *fiber.Ctx, title string, data any) view.Page {
	a := helperAuth.FromCtx(c)
	return view.Page{Title: title, Username: a.Username, IsAdmin: a.IsAdmin(), Data: data}
}

// GET /
func (h *PageController) Dashboard(c *fiber.Ctx) error {
	v, err := h.Summary.Valuation(c.UserContext())
	if err != nil {
		return err
	}
	return view.Render(c, fiber.StatusOK, "index.html", page(c, "Inicio", v))
}

func (h *PageController) Section(s Section) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return view.Render(c, fiber.StatusOK, "section.html", page(c, s.Title, s.Source))
	}
}
