package userRoutes

import (
	controllers "lms/controllers/user"
	"lms/middleware"
	validators "lms/validators/user"

	"github.com/gofiber/fiber/v2"
)

// SetupUserRoutes sets up admin user-management routes
func SetupUserRoutes(app *fiber.App) {
	userGroup := app.Group("/users", middleware.JWTMiddleware, middleware.RequireRole("admin"))

	userGroup.Get("/", controllers.GetUsers)
	userGroup.Post("/", validators.CreateUser(), controllers.CreateUser)
	userGroup.Put("/:id", controllers.UpdateUser)
	userGroup.Delete("/:id", controllers.DeleteUser)
}
