package config

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

type Config struct {
	DB         *sql.DB
	Port       string
	Cloudinary CloudinaryConfig
}

// CloudinaryConfig points at the image host student and guardian photos
// are uploaded to before records are created.
type CloudinaryConfig struct {
	BaseURL      string
	CloudName    string
	UploadPreset string
}

var AppConfig *Config

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// Load reads .env if present and initializes the database connection and
// photo-host settings.
func Load() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	host := getenv("DB_HOST", "localhost")
	port, err := strconv.Atoi(getenv("DB_PORT", "5432"))
	if err != nil {
		log.Fatal("Invalid DB_PORT:", err)
	}
	user := getenv("DB_USER", "postgres")
	password := os.Getenv("DB_PASSWORD")
	dbname := getenv("DB_NAME", "mjs_admissions")
	sslmode := getenv("DB_SSLMODE", "disable")

	psqlInfo := fmt.Sprintf("host=%s port=%d user=%s dbname=%s sslmode=%s connect_timeout=60",
		host, port, user, dbname, sslmode)
	if password != "" {
		psqlInfo += " password=" + password
	}
	log.Printf("Connecting to database %s at %s:%d", dbname, host, port)

	db, err := sql.Open("postgres", psqlInfo)
	if err != nil {
		log.Fatal("Failed to open database connection:", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)

	log.Println("Testing database connection...")
	if err = db.Ping(); err != nil {
		log.Fatal("Cannot establish database connection: ", err)
	}

	AppConfig = &Config{
		DB:   db,
		Port: getenv("PORT", "5000"),
		Cloudinary: CloudinaryConfig{
			BaseURL:      getenv("CLOUDINARY_BASE_URL", "https://api.cloudinary.com"),
			CloudName:    getenv("CLOUDINARY_CLOUD_NAME", "dzidperyt"),
			UploadPreset: getenv("CLOUDINARY_UPLOAD_PRESET", "mjs-admission-photos"),
		},
	}
	log.Println("Database connected successfully")
}

func GetDB() *sql.DB {
	return AppConfig.DB
}
