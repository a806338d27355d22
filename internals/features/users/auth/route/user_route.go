package route

import (
	controller "mantenimiento_backend/internals/features/users/auth/controller"
	rateLimiter "mantenimiento_backend/internals/middlewares"
	authMiddleware "mantenimiento_backend/internals/middlewares/auth"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"gorm.io/gorm"
)

func AuthRoutes(r fiber.Router, db *gorm.DB, store *session.Store) {
	authController := controller.NewAuthController(db, store)
	login := authMiddleware.RequireLogin()

	// pages
	r.Get(authMiddleware.LoginPath, authController.LoginPage)
	r.Post(authMiddleware.LoginPath, rateLimiter.LoginRateLimiter(), authController.Login)
	r.Get("/logout", authController.Logout)
	r.Get("/register", authController.RegisterPage)
	r.Post("/register", rateLimiter.RegisterRateLimiter(), authController.Register)

	// API clients
	r.Post("/api/auth/token", rateLimiter.LoginRateLimiter(), authController.IssueToken)
	r.Post("/api/auth/logout", authController.Logout)
	r.Get("/api/auth/me", login, authController.Me)
	r.Post("/api/auth/change-password", login, authController.ChangePassword)
}
