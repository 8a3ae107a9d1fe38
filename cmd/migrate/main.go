package main

import (
	"log"

	"github.com/essa0044/ImageCategorizer/app/config"
	"github.com/essa0044/ImageCategorizer/app/database"
)

func main() {
	log.Println("Starting manual migration...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	defer cfg.DB.Close()

	if err := database.RunMigrations(cfg.DB); err != nil {
		log.Fatal("Migration failed:", err)
	}

	log.Println("Manual migration completed successfully!")
}
