package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "descubrecurico_backend/internals/features/users/auth/controller"
	middlewares "descubrecurico_backend/internals/middlewares"
	authMiddleware "descubrecurico_backend/internals/middlewares/auth"
)

// Acceso: /api/auth/...
func AuthRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.NewAuthController(db)

	auth := api.Group("/auth")
	auth.Post("/login", middlewares.LoginRateLimiter(), ctl.Login)
	auth.Post("/login-google", middlewares.LoginRateLimiter(), ctl.LoginGoogle)
	auth.Post("/refresh", ctl.Refresh)
	auth.Post("/logout", ctl.Logout)
	auth.Get("/me", authMiddleware.OptionalAuthMiddleware(db), ctl.Me)
}

// Acceso: /api/a/auth/register (solo admin)
func AuthAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.NewAuthController(db)

	api.Post("/auth/register", middlewares.RegisterRateLimiter(), ctl.Register)
}
