package route

import (
	"mantenimiento_backend/internals/constants"
	"mantenimiento_backend/internals/features/inventory/gambetas/controller"
	authMiddleware "mantenimiento_backend/internals/middlewares/auth"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func GambetaRoutes(r fiber.Router, db *gorm.DB) {
	h := controller.NewGambetaController(db)
	adminOnly := authMiddleware.OnlyRoles(constants.RoleErrorAdmin("gambetas"), constants.AdminOnly...)

	r.Post("/guardar_gambeta", authMiddleware.RequireLogin(), h.Create)
	r.Get("/obtener_gambetas", h.List)
	r.Get("/obtener_gambeta/:id", h.Get)
	r.Get("/buscar_gambetas", h.Search)
	r.Get("/obtener_info_producto_gambeta/:nombre/:nivel", h.ProductInfo)
	r.Get("/obtener_registros_gambetas", h.StockRecords)
	r.Get("/obtener_detalle_gambeta_por_nombre", h.DetailByName)
	r.Post("/actualizar_gambeta/:id", adminOnly, h.Update)
	r.Post("/eliminar_gambeta/:id", adminOnly, h.Delete)
}
