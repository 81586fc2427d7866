package progressRoutes

import (
	controllers "lms/controllers/progress"
	validators "lms/validators/progress"

	"github.com/gofiber/fiber/v2"
)

// SetupProgressRoutes sets up completion tracking routes
func SetupProgressRoutes(app *fiber.App) {
	progressGroup := app.Group("/progress")

	progressGroup.Get("/", validators.GetProgress(), controllers.GetProgress)
	progressGroup.Post("/", validators.SetProgress(), controllers.SetProgress)
}
