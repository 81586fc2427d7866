package userController

import (
	"lms/database"
	"lms/middleware"
	"lms/models"
	userValidator "lms/validators/user"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// GetUsers lists all accounts
func GetUsers(c *fiber.Ctx) error {
	var users []models.User
	if err := database.Database.Db.Find(&users).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch users!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Users fetched successfully!", users)
}

// CreateUser creates an account
func CreateUser(c *fiber.Ctx) error {
	reqData := c.Locals("userData").(*userValidator.CreateUserRequest)

	db := database.Database.Db

	// Check if email already exists
	if err := db.Where("email = ?", reqData.Email).First(&models.User{}).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Email is already registered!", nil)
	}

	user := models.User{
		Name:     reqData.Name,
		Email:    reqData.Email,
		Password: reqData.Password,
		Role:     reqData.Role,
		Avatar:   reqData.Avatar,
	}
	if user.Role == "" {
		user.Role = "collaborator"
	}

	if err := db.Create(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create user!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "User created successfully!", user)
}

// UpdateUser applies a partial update
func UpdateUser(c *fiber.Ctx) error {
	userID, err := strconv.Atoi(strings.TrimSpace(c.Params("id")))
	if err != nil || userID <= 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid User ID!", nil)
	}

	reqData := new(struct {
		Name     *string `json:"name"`
		Email    *string `json:"email"`
		Password *string `json:"password"`
		Role     *string `json:"role"`
		Avatar   *string `json:"avatar"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	updates := map[string]interface{}{}
	if reqData.Name != nil {
		updates["name"] = *reqData.Name
	}
	if reqData.Email != nil {
		updates["email"] = strings.ToLower(strings.TrimSpace(*reqData.Email))
	}
	if reqData.Password != nil {
		updates["password"] = *reqData.Password
	}
	if reqData.Role != nil {
		updates["role"] = *reqData.Role
	}
	if reqData.Avatar != nil {
		updates["avatar"] = *reqData.Avatar
	}

	if len(updates) == 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "No fields to update!", nil)
	}

	db := database.Database.Db

	var user models.User
	if err := db.First(&user, userID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	if err := db.Model(&user).Updates(updates).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update user!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "User updated successfully!", fiber.Map{
		"success": true,
	})
}

// DeleteUser removes an account
func DeleteUser(c *fiber.Ctx) error {
	userID, err := strconv.Atoi(strings.TrimSpace(c.Params("id")))
	if err != nil || userID <= 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid User ID!", nil)
	}

	db := database.Database.Db

	var user models.User
	if err := db.First(&user, userID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	if err := db.Unscoped().Delete(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete user!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "User deleted successfully!", fiber.Map{
		"success": true,
	})
}
