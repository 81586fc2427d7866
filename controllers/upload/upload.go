package uploadController

import (
	"lms/config"
	"lms/middleware"
	"lms/utils"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
)

const maxUploadSize = 5 * 1024 * 1024 // 5 MB

var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

// UploadImage stores an uploaded image and returns its public URL
func UploadImage(c *fiber.Ctx) error {
	file, err := c.FormFile("image")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Image file is required!", nil)
	}

	if file.Size > maxUploadSize {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Image must be 5MB or smaller!", nil)
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedExtensions[ext] {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Only image files are allowed!", nil)
	}

	filename, err := utils.SaveUploadedFile(file, config.AppConfig.UploadDir)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save image!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Image uploaded successfully!", fiber.Map{
		"filename": filename,
		"url":      utils.GetFileURL(filename),
	})
}
