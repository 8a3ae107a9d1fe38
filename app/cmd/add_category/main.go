package main

import (
	"fmt"
	"os"

	"github.com/essa0044/ImageCategorizer/app/config"
)

func main() {
	if len(os.Args) != 3 {
		fmt.Println("Usage: add_category <name> <color>")
		return
	}
	name, color := os.Args[1], os.Args[2]

	// Initialize database connection
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to connect to database:", err)
		return
	}
	defer cfg.DB.Close()

	var id int
	err = cfg.DB.QueryRow(
		`INSERT INTO category (name, color) VALUES ($1, $2) RETURNING id`,
		name, color,
	).Scan(&id)
	if err != nil {
		fmt.Printf("Error creating category: %v\n", err)
		return
	}

	fmt.Printf("Category created successfully: %s (%s) with id %d\n", name, color, id)
}
