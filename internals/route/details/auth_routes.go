package details

import (
	pageRoute "mantenimiento_backend/internals/features/home/pages/route"
	authRoute "mantenimiento_backend/internals/features/users/auth/route"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"gorm.io/gorm"
)

func AuthRoutes(app *fiber.App, db *gorm.DB, store *session.Store) {
	authRoute.AuthRoutes(app, db, store)
}

func PageRoutes(app *fiber.App, db *gorm.DB) {
	pageRoute.PageRoutes(app, db)
}
