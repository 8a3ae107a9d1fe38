package images

import (
	"github.com/gofiber/fiber/v2"

	"github.com/essa0044/ImageCategorizer/app/assets"
)

// SetupImagesRoutes sets up the asset serving route
func SetupImagesRoutes(app *fiber.App, store *assets.Store) {
	app.Get("/api/images/*", func(c *fiber.Ctx) error { return ServeImage(c, store) })
}
