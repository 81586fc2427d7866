package adminRoutes

import (
	settingsControllers "lms/controllers/settings"
	statsControllers "lms/controllers/stats"
	uploadControllers "lms/controllers/upload"
	"lms/middleware"

	"github.com/gofiber/fiber/v2"
)

// SetupAdminRoutes sets up settings, stats and upload routes
func SetupAdminRoutes(app *fiber.App) {
	settingsGroup := app.Group("/settings")

	settingsGroup.Get("/", settingsControllers.GetSettings)
	settingsGroup.Post("/", middleware.JWTMiddleware, middleware.RequireRole("admin"), settingsControllers.SaveSettings)

	app.Get("/stats", middleware.JWTMiddleware, middleware.RequireRole("admin"), statsControllers.GetStats)

	app.Post("/upload", middleware.JWTMiddleware, uploadControllers.UploadImage)
}
