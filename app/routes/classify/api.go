package classify

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// AutoClassify is a placeholder until a real classifier is plugged in. It
// returns fixed geometry regardless of the referenced image.
func AutoClassify(c *fiber.Ctx) error {
	var body struct {
		ImageURL string `json:"imageUrl"`
	}
	_ = c.BodyParser(&body)
	log.Printf("Auto-classifying image: %s", body.ImageURL)

	rects := []fiber.Map{
		{"id": "auto-rect-" + uuid.New().String(), "x": 50, "y": 50, "width": 100, "height": 80, "categoryId": 1, "hierarchy": "1"},
		{"id": "auto-rect-" + uuid.New().String(), "x": 200, "y": 100, "width": 150, "height": 60, "categoryId": 2, "hierarchy": "2.1"},
	}
	return c.JSON(fiber.Map{"rectangles": rects, "autoClassified": true})
}
