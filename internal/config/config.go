package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port       string
	DBDSN      string
	MediaDir   string
	LogFile    string
	MockDelay  string // artificial latency for mock auth/newsletter, e.g. "400ms"
	AdminEmail string
}

func Load() Config {
	// .env is optional; env vars win when both are set.
	_ = godotenv.Load()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		dsn = "luffi.db"
	} // sqlite file in project root
	media := os.Getenv("MEDIA_DIR")
	if media == "" {
		media = "./web/media"
	}
	logFile := os.Getenv("LOG_FILE")
	if logFile == "" {
		logFile = "./luffi.log"
	}
	delay := os.Getenv("MOCK_DELAY")
	if delay == "" {
		delay = "400ms"
	}
	adminEmail := os.Getenv("ADMIN_EMAIL")
	if adminEmail == "" {
		adminEmail = "admin@luffi.com"
	}

	cfg := Config{Port: port, DBDSN: dsn, MediaDir: media, LogFile: logFile, MockDelay: delay, AdminEmail: adminEmail}
	log.Printf("[config] PORT=%s DB_DSN=%s MEDIA_DIR=%s LOG_FILE=%s MOCK_DELAY=%s", cfg.Port, cfg.DBDSN, cfg.MediaDir, cfg.LogFile, cfg.MockDelay)
	return cfg
}
