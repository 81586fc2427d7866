package courseRoutes

import (
	courseControllers "lms/controllers/course"
	lessonControllers "lms/controllers/lesson"
	"lms/middleware"
	courseValidators "lms/validators/course"
	lessonValidators "lms/validators/lesson"

	"github.com/gofiber/fiber/v2"
)

// SetupCourseRoutes sets up course and lesson routes
func SetupCourseRoutes(app *fiber.App) {
	courseGroup := app.Group("/courses")

	courseGroup.Get("/", courseValidators.CourseList(), courseControllers.GetAllCourses)
	courseGroup.Get("/:id", courseValidators.CourseID(), courseControllers.GetCourse)
	courseGroup.Post("/", middleware.JWTMiddleware, courseValidators.CreateCourse(), courseControllers.CreateCourse)
	courseGroup.Put("/:id", middleware.JWTMiddleware, courseValidators.CourseID(), courseControllers.UpdateCourse)
	courseGroup.Delete("/:id", middleware.JWTMiddleware, courseValidators.CourseID(), courseControllers.DeleteCourse)

	lessonGroup := app.Group("/lessons")

	lessonGroup.Get("/", lessonValidators.LessonList(), lessonControllers.GetLessons)
	lessonGroup.Post("/", middleware.JWTMiddleware, lessonValidators.CreateLesson(), lessonControllers.CreateLesson)
	lessonGroup.Put("/:id", middleware.JWTMiddleware, lessonValidators.LessonID(), lessonControllers.UpdateLesson)
	lessonGroup.Delete("/:id", middleware.JWTMiddleware, lessonValidators.LessonID(), lessonControllers.DeleteLesson)
}
