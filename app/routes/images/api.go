package images

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/essa0044/ImageCategorizer/app/assets"
)

// ServeImage streams an asset from the upload directory. The path may
// reference a temp asset or a finalized per-exam file.
func ServeImage(c *fiber.Ctx, store *assets.Store) error {
	name := c.Params("*")

	abs, err := store.Resolve(name)
	if err != nil {
		if errors.Is(err, assets.ErrInvalidPath) {
			log.Printf("Attempted invalid image path access: %s", name)
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid path"})
		}
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Image not found"})
	}
	return c.SendFile(abs)
}
