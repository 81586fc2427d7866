package faqController

import (
	"lms/database"
	"lms/middleware"
	"lms/models"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// GetFAQs lists FAQ entries in display order
func GetFAQs(c *fiber.Ctx) error {
	var faqs []models.FAQ
	if err := database.Database.Db.
		Order("order_index asc, id asc").
		Find(&faqs).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch FAQs!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "FAQs fetched successfully!", faqs)
}

// CreateFAQ creates an FAQ entry
func CreateFAQ(c *fiber.Ctx) error {
	reqData := new(struct {
		Question   string `json:"question"`
		Answer     string `json:"answer"`
		Category   string `json:"category"`
		OrderIndex int    `json:"order_index"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	if strings.TrimSpace(reqData.Question) == "" {
		return middleware.ValidationErrorResponse(c, map[string]string{"question": "Question is required!"})
	}

	faq := models.FAQ{
		Question:   reqData.Question,
		Answer:     reqData.Answer,
		Category:   reqData.Category,
		OrderIndex: reqData.OrderIndex,
	}

	if err := database.Database.Db.Create(&faq).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create FAQ!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "FAQ created successfully!", faq)
}

// UpdateFAQ applies a partial update
func UpdateFAQ(c *fiber.Ctx) error {
	faqID, err := strconv.Atoi(strings.TrimSpace(c.Params("id")))
	if err != nil || faqID <= 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid FAQ ID!", nil)
	}

	reqData := new(struct {
		Question   *string `json:"question"`
		Answer     *string `json:"answer"`
		Category   *string `json:"category"`
		OrderIndex *int    `json:"order_index"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	updates := map[string]interface{}{}
	if reqData.Question != nil {
		updates["question"] = *reqData.Question
	}
	if reqData.Answer != nil {
		updates["answer"] = *reqData.Answer
	}
	if reqData.Category != nil {
		updates["category"] = *reqData.Category
	}
	if reqData.OrderIndex != nil {
		updates["order_index"] = *reqData.OrderIndex
	}

	if len(updates) == 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "No fields to update!", nil)
	}

	db := database.Database.Db

	var faq models.FAQ
	if err := db.First(&faq, faqID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "FAQ not found!", nil)
	}

	if err := db.Model(&faq).Updates(updates).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update FAQ!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "FAQ updated successfully!", fiber.Map{
		"success": true,
	})
}

// DeleteFAQ removes an FAQ entry
func DeleteFAQ(c *fiber.Ctx) error {
	faqID, err := strconv.Atoi(strings.TrimSpace(c.Params("id")))
	if err != nil || faqID <= 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid FAQ ID!", nil)
	}

	db := database.Database.Db

	var faq models.FAQ
	if err := db.First(&faq, faqID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "FAQ not found!", nil)
	}

	if err := db.Unscoped().Delete(&faq).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete FAQ!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "FAQ deleted successfully!", fiber.Map{
		"success": true,
	})
}
