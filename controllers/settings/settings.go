package settingsController

import (
	"lms/database"
	"lms/middleware"
	"lms/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GetSettings returns all settings as a flat key/value map
func GetSettings(c *fiber.Ctx) error {
	var settings []models.Setting
	if err := database.Database.Db.Find(&settings).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch settings!", nil)
	}

	result := make(map[string]string, len(settings))
	for _, setting := range settings {
		result[setting.Key] = setting.Value
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Settings fetched successfully!", result)
}

// SaveSettings upserts every submitted key/value pair in one transaction
func SaveSettings(c *fiber.Ctx) error {
	data := map[string]string{}
	if err := c.BodyParser(&data); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	if len(data) == 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "No settings to save!", nil)
	}

	err := database.Database.Db.Transaction(func(tx *gorm.DB) error {
		for key, value := range data {
			setting := models.Setting{Key: key, Value: value}
			if err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "key"}},
				DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
			}).Create(&setting).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save settings!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Settings updated successfully!", fiber.Map{
		"success": true,
	})
}
