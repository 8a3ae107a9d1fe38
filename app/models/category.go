package models

// Category is a classification label a rectangle can be tagged with.
type Category struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}
