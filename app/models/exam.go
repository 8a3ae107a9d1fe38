package models

import "time"

// Exam represents one classification session over one source document.
// ProcessedImagePath is relative to the upload directory and points at the
// finalized image once a submission has committed.
type Exam struct {
	ID                 int                    `json:"id"`
	OriginalFilename   string                 `json:"original_filename"`
	ProcessedImagePath string                 `json:"processed_image_path"`
	CreatedAt          time.Time              `json:"created_at"`
	Rectangles         []*ClassifiedRectangle `json:"rectangles,omitempty"`
}
