package database

import (
	"database/sql"

	"github.com/essa0044/ImageCategorizer/app/models"
)

// GetAllCategories returns every category ordered by name.
func GetAllCategories(db *sql.DB) ([]*models.Category, error) {
	rows, err := db.Query(`SELECT id, name, color FROM category ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := []*models.Category{} // Initialize to empty slice for non-null JSON
	for rows.Next() {
		cat := &models.Category{}
		if err := rows.Scan(&cat.ID, &cat.Name, &cat.Color); err != nil {
			return nil, err
		}
		categories = append(categories, cat)
	}
	return categories, rows.Err()
}

// GetAllExams returns every exam, newest first, without rectangles.
func GetAllExams(db *sql.DB) ([]*models.Exam, error) {
	query := `SELECT id, original_filename, processed_image_path, created_at
			  FROM exam
			  ORDER BY created_at DESC, id DESC`

	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	exams := []*models.Exam{}
	for rows.Next() {
		e := &models.Exam{}
		if err := rows.Scan(&e.ID, &e.OriginalFilename, &e.ProcessedImagePath, &e.CreatedAt); err != nil {
			return nil, err
		}
		exams = append(exams, e)
	}
	return exams, rows.Err()
}

// GetExamByID returns one exam with its rectangles ordered by rect_index.
// Returns sql.ErrNoRows when the exam does not exist.
func GetExamByID(db *sql.DB, id int) (*models.Exam, error) {
	e := &models.Exam{}
	err := db.QueryRow(
		`SELECT id, original_filename, processed_image_path, created_at FROM exam WHERE id = $1`,
		id,
	).Scan(&e.ID, &e.OriginalFilename, &e.ProcessedImagePath, &e.CreatedAt)
	if err != nil {
		return nil, err
	}

	query := `SELECT id, exam_id, rect_index, category_id, hierarchy,
			  x_coord, y_coord, width, height, cropped_image_path, source
			  FROM classified_rectangle
			  WHERE exam_id = $1
			  ORDER BY rect_index`

	rows, err := db.Query(query, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	e.Rectangles = []*models.ClassifiedRectangle{}
	for rows.Next() {
		r := &models.ClassifiedRectangle{}
		var categoryID sql.NullInt64
		err := rows.Scan(
			&r.ID, &r.ExamID, &r.RectIndex, &categoryID, &r.Hierarchy,
			&r.X, &r.Y, &r.Width, &r.Height, &r.CroppedImagePath, &r.Source,
		)
		if err != nil {
			return nil, err
		}
		if categoryID.Valid {
			cid := int(categoryID.Int64)
			r.CategoryID = &cid
		}
		e.Rectangles = append(e.Rectangles, r)
	}
	return e, rows.Err()
}
