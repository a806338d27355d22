package route

import (
	"mantenimiento_backend/internals/features/home/pages/controller"
	authMiddleware "mantenimiento_backend/internals/middlewares/auth"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func PageRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewPageController(db)
	login := authMiddleware.RequireLogin()

	r.Get("/", login, ctrl.Dashboard)
	for _, s := range controller.Sections {
		r.Get(s.Path, login, ctrl.Section(s))
	}
}
