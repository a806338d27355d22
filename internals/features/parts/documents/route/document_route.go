package route

import (
	"mantenimiento_backend/internals/constants"
	"mantenimiento_backend/internals/features/parts/documents/controller"
	"mantenimiento_backend/internals/features/parts/documents/storage"
	authMiddleware "mantenimiento_backend/internals/middlewares/auth"

	"github.com/gofiber/fiber/v2"
)

func DocumentRoutes(r fiber.Router, store storage.Store, maxMB int) {
	h := controller.NewDocumentController(store, maxMB)
	adminOnly := authMiddleware.OnlyRoles(constants.RoleErrorAdmin("documents"), constants.AdminOnly...)

	r.Post("/guardar_archivo", authMiddleware.RequireLogin(), h.Upload)
	r.Get("/obtener_archivos", h.List)
	r.Get("/archivos/:part/:doc/:file", h.Serve)
	r.Post("/borrar_archivo", adminOnly, h.Delete)
	r.Delete("/borrar_archivos_columna", adminOnly, h.DeleteFolder)
}
