package database

import (
	"database/sql"
	"log"
)

// RunMigrations creates the schema if it does not exist and seeds the
// default categories.
func RunMigrations(db *sql.DB) error {
	log.Println("Running database migrations...")

	queries := []string{
		`CREATE TABLE IF NOT EXISTS category (
			id SERIAL PRIMARY KEY,
			name VARCHAR(255) UNIQUE NOT NULL,
			color VARCHAR(32) NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS exam (
			id SERIAL PRIMARY KEY,
			original_filename VARCHAR(512) NOT NULL,
			processed_image_path VARCHAR(512) NOT NULL,
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS classified_rectangle (
			id SERIAL PRIMARY KEY,
			exam_id INTEGER NOT NULL REFERENCES exam(id) ON DELETE CASCADE,
			rect_index INTEGER NOT NULL,
			category_id INTEGER REFERENCES category(id),
			hierarchy TEXT NOT NULL DEFAULT '',
			x_coord DOUBLE PRECISION NOT NULL,
			y_coord DOUBLE PRECISION NOT NULL,
			width DOUBLE PRECISION NOT NULL,
			height DOUBLE PRECISION NOT NULL,
			cropped_image_path VARCHAR(512) NOT NULL,
			source VARCHAR(64) NOT NULL DEFAULT 'manual'
		)`,
		`CREATE INDEX IF NOT EXISTS idx_classified_rectangle_exam_id ON classified_rectangle(exam_id)`,
	}

	for _, q := range queries {
		if _, err := db.Exec(q); err != nil {
			log.Printf("Error creating classification tables: %v", err)
			return err
		}
	}

	// Seed default data
	seeds := []string{
		`INSERT INTO category (name, color) VALUES ('Header', '#e6194b') ON CONFLICT (name) DO NOTHING`,
		`INSERT INTO category (name, color) VALUES ('Question', '#3cb44b') ON CONFLICT (name) DO NOTHING`,
		`INSERT INTO category (name, color) VALUES ('Answer', '#4363d8') ON CONFLICT (name) DO NOTHING`,
		`INSERT INTO category (name, color) VALUES ('Figure', '#f58231') ON CONFLICT (name) DO NOTHING`,
	}

	for _, s := range seeds {
		if _, err := db.Exec(s); err != nil {
			log.Printf("Error seeding categories: %v", err)
		}
	}

	log.Println("Database migrations completed successfully")
	return nil
}
