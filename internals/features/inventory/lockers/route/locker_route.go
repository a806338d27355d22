package route

import (
	"mantenimiento_backend/internals/constants"
	"mantenimiento_backend/internals/features/inventory/lockers/controller"
	authMiddleware "mantenimiento_backend/internals/middlewares/auth"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func LockerRoutes(r fiber.Router, db *gorm.DB) {
	h := controller.NewLockerController(db)
	adminOnly := authMiddleware.OnlyRoles(constants.RoleErrorAdmin("lockers"), constants.AdminOnly...)

	r.Post("/guardar_locker", authMiddleware.RequireLogin(), h.Create)
	r.Get("/obtener_lista_lockers", h.List)
	r.Get("/obtener_lockers", h.ProductMeasures)
	r.Get("/obtener_todos_nombres_lockers", h.ProductNames)
	r.Get("/obtener_registros_lockers", h.StockRecords)
	r.Get("/obtener_detalle_locker_por_nombre", h.DetailByName)
	r.Get("/obtener_locker/:id", h.Get)
	r.Get("/buscar_lockers", h.Search)
	r.Post("/actualizar_locker/:id", adminOnly, h.Update)
	r.Post("/eliminar_locker/:id", adminOnly, h.Delete)
}
