package categories

import (
	"database/sql"
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/essa0044/ImageCategorizer/app/database"
)

// GetCategories returns all categories ordered by name.
func GetCategories(c *fiber.Ctx, db *sql.DB) error {
	categories, err := database.GetAllCategories(db)
	if err != nil {
		log.Printf("Database query failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to retrieve categories",
		})
	}
	return c.JSON(categories)
}
