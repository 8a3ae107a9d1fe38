package config

import (
	"database/sql"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

// Config holds everything the application needs at runtime. It is built
// once in main and passed explicitly to the components that need it.
type Config struct {
	DB         *sql.DB
	UploadDir  string
	ListenAddr string
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// Load reads the environment (plus an optional .env file) and opens the
// database connection pool.
func Load() (*Config, error) {
	// Missing .env is fine, plain environment variables work too.
	_ = godotenv.Load()

	host := getenv("DB_HOST", "localhost")
	port := getenv("DB_PORT", "5432")
	user := getenv("POSTGRES_USER", "postgres")
	password := os.Getenv("POSTGRES_PASSWORD")
	dbname := getenv("POSTGRES_DB", "examdb")

	psqlInfo := fmt.Sprintf("host=%s port=%s user=%s dbname=%s sslmode=disable connect_timeout=60",
		host, port, user, dbname)
	if password != "" {
		psqlInfo += " password=" + password
	}

	db, err := sql.Open("postgres", psqlInfo)
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	// Connection pool settings
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)

	log.Println("Testing database connection...")
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("cannot establish database connection to %s:%s: %w", host, port, err)
	}
	log.Println("Database connected successfully")

	return &Config{
		DB:         db,
		UploadDir:  getenv("UPLOAD_DIR", "uploads"),
		ListenAddr: getenv("LISTEN_ADDR", ":8080"),
	}, nil
}
