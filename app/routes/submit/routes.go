package submit

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"github.com/essa0044/ImageCategorizer/app/assets"
)

// SetupSubmitRoutes sets up the classification submission route
func SetupSubmitRoutes(app *fiber.App, db *sql.DB, store *assets.Store) {
	co := &Coordinator{Store: NewStore(db), Assets: store}
	app.Post("/api/submit", func(c *fiber.Ctx) error { return SubmitClassification(c, co) })
}
