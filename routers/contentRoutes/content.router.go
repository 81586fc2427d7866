package contentRoutes

import (
	articleControllers "lms/controllers/article"
	categoryControllers "lms/controllers/category"
	faqControllers "lms/controllers/faq"
	"lms/middleware"
	articleValidators "lms/validators/article"

	"github.com/gofiber/fiber/v2"
)

// SetupContentRoutes sets up article, category and FAQ routes
func SetupContentRoutes(app *fiber.App) {
	articleGroup := app.Group("/articles")

	articleGroup.Get("/", articleValidators.ArticleList(), articleControllers.GetArticles)
	articleGroup.Post("/", middleware.JWTMiddleware, articleValidators.CreateArticle(), articleControllers.CreateArticle)
	articleGroup.Put("/:id", middleware.JWTMiddleware, articleValidators.ArticleID(), articleControllers.UpdateArticle)
	articleGroup.Delete("/:id", middleware.JWTMiddleware, articleValidators.ArticleID(), articleControllers.DeleteArticle)

	categoryGroup := app.Group("/categories")

	categoryGroup.Get("/", categoryControllers.GetCategories)
	categoryGroup.Post("/", middleware.JWTMiddleware, categoryControllers.CreateCategory)
	categoryGroup.Put("/:id", middleware.JWTMiddleware, categoryControllers.UpdateCategory)
	categoryGroup.Delete("/:id", middleware.JWTMiddleware, categoryControllers.DeleteCategory)

	faqGroup := app.Group("/faqs")

	faqGroup.Get("/", faqControllers.GetFAQs)
	faqGroup.Post("/", middleware.JWTMiddleware, faqControllers.CreateFAQ)
	faqGroup.Put("/:id", middleware.JWTMiddleware, faqControllers.UpdateFAQ)
	faqGroup.Delete("/:id", middleware.JWTMiddleware, faqControllers.DeleteFAQ)
}
