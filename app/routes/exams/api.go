package exams

import (
	"database/sql"
	"errors"
	"log"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/essa0044/ImageCategorizer/app/database"
)

// GetAllExams returns every exam, newest first.
func GetAllExams(c *fiber.Ctx, db *sql.DB) error {
	exams, err := database.GetAllExams(db)
	if err != nil {
		log.Printf("Failed to load exams: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load exams",
		})
	}
	return c.JSON(exams)
}

// GetExam returns one exam with its rectangles ordered by rect_index.
func GetExam(c *fiber.Ctx, db *sql.DB) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid exam id"})
	}

	exam, err := database.GetExamByID(db, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Exam not found"})
		}
		log.Printf("Failed to load exam %d: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load exam",
		})
	}
	return c.JSON(exam)
}
