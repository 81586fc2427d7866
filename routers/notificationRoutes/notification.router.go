package notificationRoutes

import (
	announcementControllers "lms/controllers/announcement"
	notificationControllers "lms/controllers/notification"
	"lms/middleware"
	announcementValidators "lms/validators/announcement"
	notificationValidators "lms/validators/notification"

	"github.com/gofiber/fiber/v2"
)

// SetupNotificationRoutes sets up notification and announcement routes
func SetupNotificationRoutes(app *fiber.App) {
	notificationGroup := app.Group("/notifications")

	notificationGroup.Get("/", notificationValidators.ListNotifications(), notificationControllers.GetNotifications)
	notificationGroup.Post("/", middleware.JWTMiddleware, notificationValidators.CreateNotification(), notificationControllers.CreateNotification)
	notificationGroup.Post("/mark-read", notificationValidators.MarkRead(), notificationControllers.MarkRead)
	notificationGroup.Post("/mark-all-read", notificationValidators.MarkAllRead(), notificationControllers.MarkAllRead)

	announcementGroup := app.Group("/announcements")

	announcementGroup.Get("/", announcementControllers.GetAnnouncements)
	announcementGroup.Post("/", middleware.JWTMiddleware, announcementValidators.CreateAnnouncement(), announcementControllers.CreateAnnouncement)
	announcementGroup.Post("/mark-read", announcementValidators.MarkRead(), announcementControllers.MarkRead)
	announcementGroup.Put("/:id", middleware.JWTMiddleware, announcementValidators.AnnouncementID(), announcementControllers.UpdateAnnouncement)
	announcementGroup.Delete("/:id", middleware.JWTMiddleware, announcementValidators.AnnouncementID(), announcementControllers.DeleteAnnouncement)
}
