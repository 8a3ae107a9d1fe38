package categories

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"
)

// SetupCategoriesRoutes sets up the category lookup route
func SetupCategoriesRoutes(app *fiber.App, db *sql.DB) {
	app.Get("/api/categories", func(c *fiber.Ctx) error { return GetCategories(c, db) })
}
