package config

import (
	"log"
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Config holds everything the server reads from the environment besides the
// database DSN.
type Config struct {
	Port             string
	AuditCSVPath     string
	Assignee         string
	PermalinkBaseURL string
}

func Load() Config {
	return Config{
		Port:             getenv("PORT", "8080"),
		AuditCSVPath:     getenv("AUDIT_CSV_PATH", "wire_recall_cases.csv"),
		Assignee:         getenv("CASE_ASSIGNEE", "unassigned"),
		PermalinkBaseURL: getenv("PERMALINK_BASE_URL", "http://localhost:8080"),
	}
}

// InitDB opens the reporting database from DATABASE_URL.
func InitDB() *gorm.DB {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL is not set")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	return db
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
