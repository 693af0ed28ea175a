package config

import (
	"os"
	"strconv"
	"sync"
)

// AppConfig holds global application configuration
var AppConfig *Config
var once sync.Once

type Config struct {
	AppName string
	Port    string
	Env     string
	Debug   bool

	// Awin partner API credentials and feed defaults
	AwinAPIToken    string
	AwinPublisherID string
	AwinFeedBase    string
	ImportLimit     int
}

// defaultImportLimit matches the edge-function generation of the importer.
const defaultImportLimit = 100

// LoadAppConfig initializes the global AppConfig variable
func LoadAppConfig() {
	once.Do(func() {
		limit := defaultImportLimit
		if v, err := strconv.Atoi(os.Getenv("AWIN_IMPORT_LIMIT")); err == nil && v > 0 {
			limit = v
		}
		feedBase := os.Getenv("AWIN_FEED_BASE")
		if feedBase == "" {
			feedBase = "https://api.awin.com"
		}
		AppConfig = &Config{
			AppName:         os.Getenv("APP_NAME"),
			Port:            os.Getenv("PORT"),
			Env:             os.Getenv("APP_ENV"),
			Debug:           os.Getenv("DEBUG") == "true",
			AwinAPIToken:    os.Getenv("AWIN_API_TOKEN"),
			AwinPublisherID: os.Getenv("AWIN_PUBLISHER_ID"),
			AwinFeedBase:    feedBase,
			ImportLimit:     limit,
		}
	})
}
