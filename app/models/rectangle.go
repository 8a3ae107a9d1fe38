package models

// ClassifiedRectangle is one user-drawn region within an exam's image.
// Coordinates are kept as the client supplied them, unclamped; the stored
// crop was produced from the clamped box.
type ClassifiedRectangle struct {
	ID               int     `json:"id"`
	ExamID           int     `json:"exam_id"`
	RectIndex        int     `json:"rect_index"`
	CategoryID       *int    `json:"category_id,omitempty"`
	Hierarchy        string  `json:"hierarchy"`
	X                float64 `json:"x"`
	Y                float64 `json:"y"`
	Width            float64 `json:"width"`
	Height           float64 `json:"height"`
	CroppedImagePath string  `json:"cropped_image_path"`
	Source           string  `json:"source"`
}
