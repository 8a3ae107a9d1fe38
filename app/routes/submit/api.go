package submit

import (
	"errors"
	"log"
	"path"
	"path/filepath"

	"github.com/gofiber/fiber/v2"

	"github.com/essa0044/ImageCategorizer/app/assets"
)

type submitRequest struct {
	ImageURL         string                   `json:"imageUrl"`
	OriginalFilename string                   `json:"originalFilename"`
	Rectangles       []map[string]interface{} `json:"rectangles"`
}

// SubmitClassification handles POST /api/submit.
func SubmitClassification(c *fiber.Ctx, co *Coordinator) error {
	var req submitRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if req.ImageURL == "" || req.Rectangles == nil {
		log.Println("Submit request missing imageUrl or rectangles")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Missing image identifier or rectangles data",
		})
	}
	if req.OriginalFilename == "" {
		req.OriginalFilename = "unknown_original_file"
	}

	// The client sends back the /api/images/<name> URL it was given on
	// upload; only the last segment identifies the temp asset.
	tempName := path.Base(req.ImageURL)

	res, err := co.Submit(tempName, req.OriginalFilename, req.Rectangles)
	if err != nil {
		switch {
		case errors.Is(err, assets.ErrNotFound):
			log.Printf("Source image not found for submit: %s", tempName)
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Processed image not found on server for submission",
			})
		case errors.Is(err, assets.ErrInvalidPath):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid path"})
		default:
			log.Printf("Error during submit process: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Submission failed",
			})
		}
	}

	return c.JSON(fiber.Map{
		"message":        "Classification submitted successfully",
		"examId":         res.ExamID,
		"finalImageUrl":  "/api/images/" + filepath.ToSlash(res.FinalImagePath),
		"processedCount": res.ProcessedCount(),
		"rectangles":     res.Rectangles,
	})
}
