package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port           string
	DBDSN          string
	MediaDir       string
	LogFile        string
	WhatsAppNumber string
	RemoveBGKey    string
	RemoveBGURL    string
}

func Load() Config {
	// .env is optional; real deployments set env vars directly
	_ = godotenv.Load()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		dsn = "artesania.db"
	} // sqlite file in project root
	media := os.Getenv("MEDIA_DIR")
	if media == "" {
		media = "./web/media"
	}
	logFile := os.Getenv("LOG_FILE")
	if logFile == "" {
		logFile = "./artesania.log"
	}
	wa := os.Getenv("WHATSAPP_NUMBER")
	if wa == "" {
		wa = "56939123751"
	}
	rbURL := os.Getenv("REMOVEBG_URL")
	if rbURL == "" {
		rbURL = "https://api.remove.bg/v1.0/removebg"
	}
	rbKey := os.Getenv("REMOVEBG_API_KEY") // empty disables background removal

	cfg := Config{
		Port:           port,
		DBDSN:          dsn,
		MediaDir:       media,
		LogFile:        logFile,
		WhatsAppNumber: wa,
		RemoveBGKey:    rbKey,
		RemoveBGURL:    rbURL,
	}
	log.Printf("[config] PORT=%s DB_DSN=%s MEDIA_DIR=%s LOG_FILE=%s WHATSAPP=%s removebg=%v",
		cfg.Port, cfg.DBDSN, cfg.MediaDir, cfg.LogFile, cfg.WhatsAppNumber, cfg.RemoveBGKey != "")
	return cfg
}
