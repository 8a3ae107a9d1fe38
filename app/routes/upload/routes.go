package upload

import (
	"github.com/gofiber/fiber/v2"

	"github.com/essa0044/ImageCategorizer/app/render"
)

// SetupUploadRoutes sets up the document upload route
func SetupUploadRoutes(app *fiber.App, renderer *render.Renderer) {
	app.Post("/api/upload", func(c *fiber.Ctx) error { return UploadFile(c, renderer) })
}
