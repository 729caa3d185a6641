package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/medsupply-pro/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Store      *Store
	JWTSecret  string
	JWTExpDays int
}

// Router registra las rutas del contrato del marketplace.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	authHandler := NewAuthHandler(deps.Store, deps.JWTSecret, deps.JWTExpDays)
	productHandler := NewProductHandler(deps.Store)
	orderHandler := NewOrderHandler(deps.Store)
	analyticsHandler := NewAnalyticsHandler(deps.Store)

	// Auth (público)
	api.Post("/signup", authHandler.Signup)
	api.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	auth := AuthMiddleware(deps.JWTSecret, deps.Store)

	api.Get("/me", auth, authHandler.Me)
	api.Post("/verify_license", auth, RequireRole(entity.RoleFacility), authHandler.VerifyLicense)

	api.Get("/products", auth, productHandler.List)
	api.Post("/vendor/products", auth, RequireRole(entity.RoleVendor), productHandler.Create)

	api.Get("/orders", auth, orderHandler.List)
	api.Post("/orders", auth, RequireRole(entity.RoleFacility), orderHandler.Place)

	api.Get("/analytics/spend", auth, RequireRole(entity.RoleFacility), analyticsHandler.Spend)
}
