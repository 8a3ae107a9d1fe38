package submit

import (
	"database/sql"
	"fmt"

	"github.com/essa0044/ImageCategorizer/app/models"
)

// ExamTx is the write set of one submission transaction.
type ExamTx interface {
	InsertExam(originalFilename, tempName string) (int, error)
	UpdateExamImagePath(examID int, relPath string) error
	InsertRectangle(rect *models.ClassifiedRectangle) error
	Commit() error
	Rollback() error
}

// ExamStore opens submission transactions.
type ExamStore interface {
	Begin() (ExamTx, error)
}

// NewStore returns the Postgres-backed ExamStore.
func NewStore(db *sql.DB) ExamStore {
	return &sqlStore{db: db}
}

type sqlStore struct {
	db *sql.DB
}

func (s *sqlStore) Begin() (ExamTx, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return nil, err
	}
	return &sqlTx{tx: tx}, nil
}

type sqlTx struct {
	tx *sql.Tx
}

func (t *sqlTx) InsertExam(originalFilename, tempName string) (int, error) {
	var id int
	err := t.tx.QueryRow(
		`INSERT INTO exam (original_filename, processed_image_path) VALUES ($1, $2) RETURNING id`,
		originalFilename, tempName,
	).Scan(&id)
	return id, err
}

func (t *sqlTx) UpdateExamImagePath(examID int, relPath string) error {
	_, err := t.tx.Exec(`UPDATE exam SET processed_image_path = $1 WHERE id = $2`, relPath, examID)
	return err
}

// InsertRectangle runs inside a savepoint so a failed insert poisons only
// this rectangle, not the whole transaction.
func (t *sqlTx) InsertRectangle(r *models.ClassifiedRectangle) error {
	if _, err := t.tx.Exec(`SAVEPOINT rect_insert`); err != nil {
		return err
	}
	_, err := t.tx.Exec(
		`INSERT INTO classified_rectangle
		 (exam_id, rect_index, category_id, hierarchy, x_coord, y_coord, width, height, cropped_image_path, source)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		r.ExamID, r.RectIndex, r.CategoryID, r.Hierarchy,
		r.X, r.Y, r.Width, r.Height, r.CroppedImagePath, r.Source,
	)
	if err != nil {
		if _, rbErr := t.tx.Exec(`ROLLBACK TO SAVEPOINT rect_insert`); rbErr != nil {
			return fmt.Errorf("%v (savepoint rollback failed: %w)", err, rbErr)
		}
		return err
	}
	_, err = t.tx.Exec(`RELEASE SAVEPOINT rect_insert`)
	return err
}

func (t *sqlTx) Commit() error {
	return t.tx.Commit()
}

func (t *sqlTx) Rollback() error {
	return t.tx.Rollback()
}
