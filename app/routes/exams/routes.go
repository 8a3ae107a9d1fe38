package exams

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"github.com/essa0044/ImageCategorizer/app/database"
)

// SetupExamRoutes sets up all exam-related routes
func SetupExamRoutes(app *fiber.App, db *sql.DB) {
	// API routes
	api := app.Group("/api/exams")
	api.Get("/", func(c *fiber.Ctx) error { return GetAllExams(c, db) })
	api.Get("/:id", func(c *fiber.Ctx) error { return GetExam(c, db) })

	// Page routes
	app.Get("/exams", func(c *fiber.Ctx) error {
		exams, err := database.GetAllExams(db)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to load exams")
		}
		return c.Render("exams/index", fiber.Map{
			"Title":       "Classified Exams",
			"CurrentPage": "exams",
			"Exams":       exams,
		})
	})
}
