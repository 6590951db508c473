package config

import (
	"log"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// Config is the process-level environment configuration. Everything
// else (grid hours, timer defaults) lives in the data dir's
// settings.yaml so it travels with the user's data.
type Config struct {
	Environment string // "development" or "production"
	DataDir     string // where the JSON blobs and settings.yaml live
	FontPath    string // optional TTF for the week renderer
}

// Load reads an optional .env file, then the environment, applying
// defaults for anything unset.
func Load() (*Config, error) {
	if err := godotenv.Load(".env"); err == nil {
		log.Println("Loaded configuration from .env file")
	}

	cfg := &Config{
		Environment: os.Getenv("ENV"),
		DataDir:     os.Getenv("PLANNER_DATA_DIR"),
		FontPath:    os.Getenv("PLANNER_FONT"),
	}

	if cfg.Environment == "" {
		cfg.Environment = "development"
	}
	if cfg.DataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		cfg.DataDir = filepath.Join(home, ".vlinks")
	}

	return cfg, nil
}
