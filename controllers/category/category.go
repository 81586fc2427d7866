package categoryController

import (
	"lms/database"
	"lms/middleware"
	"lms/models"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

func parseID(c *fiber.Ctx) (int, bool) {
	id, err := strconv.Atoi(strings.TrimSpace(c.Params("id")))
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// GetCategories lists all categories
func GetCategories(c *fiber.Ctx) error {
	var categories []models.Category
	if err := database.Database.Db.Find(&categories).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch categories!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Categories fetched successfully!", categories)
}

// CreateCategory creates a category
func CreateCategory(c *fiber.Ctx) error {
	reqData := new(struct {
		Name        string `json:"name"`
		Description string `json:"description"`
		Icon        string `json:"icon"`
		Color       string `json:"color"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	if strings.TrimSpace(reqData.Name) == "" {
		return middleware.ValidationErrorResponse(c, map[string]string{"name": "Name is required!"})
	}

	category := models.Category{
		Name:        reqData.Name,
		Description: reqData.Description,
		Icon:        reqData.Icon,
		Color:       reqData.Color,
	}

	if err := database.Database.Db.Create(&category).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create category!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Category created successfully!", category)
}

// UpdateCategory applies a partial update
func UpdateCategory(c *fiber.Ctx) error {
	categoryID, ok := parseID(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Category ID!", nil)
	}

	reqData := new(struct {
		Name        *string `json:"name"`
		Description *string `json:"description"`
		Icon        *string `json:"icon"`
		Color       *string `json:"color"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	updates := map[string]interface{}{}
	if reqData.Name != nil {
		updates["name"] = *reqData.Name
	}
	if reqData.Description != nil {
		updates["description"] = *reqData.Description
	}
	if reqData.Icon != nil {
		updates["icon"] = *reqData.Icon
	}
	if reqData.Color != nil {
		updates["color"] = *reqData.Color
	}

	if len(updates) == 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "No fields to update!", nil)
	}

	db := database.Database.Db

	var category models.Category
	if err := db.First(&category, categoryID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Category not found!", nil)
	}

	if err := db.Model(&category).Updates(updates).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update category!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Category updated successfully!", fiber.Map{
		"success": true,
	})
}

// DeleteCategory removes a category
func DeleteCategory(c *fiber.Ctx) error {
	categoryID, ok := parseID(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Category ID!", nil)
	}

	db := database.Database.Db

	var category models.Category
	if err := db.First(&category, categoryID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Category not found!", nil)
	}

	if err := db.Unscoped().Delete(&category).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete category!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Category deleted successfully!", fiber.Map{
		"success": true,
	})
}
