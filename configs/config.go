package configs

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DBSource  string
	Port      string
	JWTSecret string
	JWTTTL    time.Duration

	// unsigned image upload (Cloudinary-style media host)
	MediaCloudName    string
	MediaUploadPreset string
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using environment")
	}

	return &Config{
		DBSource:          getEnv("DB_SOURCE", "foodcourt.db"),
		Port:              getEnv("PORT", "8000"),
		JWTSecret:         getEnv("JWT_SECRET", "changeme"),
		JWTTTL:            24 * time.Hour,
		MediaCloudName:    os.Getenv("MEDIA_CLOUD_NAME"),
		MediaUploadPreset: os.Getenv("MEDIA_UPLOAD_PRESET"),
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}
