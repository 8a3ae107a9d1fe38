package upload

import (
	"errors"
	"io"
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/essa0044/ImageCategorizer/app/render"
)

// UploadFile accepts a multipart file, renders it into a temp asset and
// returns the asset's identifier and serving URL.
func UploadFile(c *fiber.Ctx, renderer *render.Renderer) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "No file part"})
	}
	if fileHeader.Filename == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "No selected file"})
	}

	f, err := fileHeader.Open()
	if err != nil {
		log.Printf("Error opening uploaded file %s: %v", fileHeader.Filename, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to process file"})
	}
	data, err := io.ReadAll(f)
	f.Close()
	if err != nil {
		log.Printf("Error reading uploaded file %s: %v", fileHeader.Filename, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to process file"})
	}

	tempName, err := renderer.Render(data, fileHeader.Filename)
	if err != nil {
		if errors.Is(err, render.ErrUnsupportedType) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Unsupported file type"})
		}
		log.Printf("Error processing file %s: %v", fileHeader.Filename, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to process file"})
	}

	return c.JSON(fiber.Map{
		"message":          "File processed successfully",
		"tempAssetId":      tempName,
		"imageUrl":         "/api/images/" + tempName,
		"originalFilename": fileHeader.Filename,
	})
}
