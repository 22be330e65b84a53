package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// DefaultBaseURL is the remote image directory used when no override is set
const DefaultBaseURL = "https://wallpaper-0jy8.onrender.com"

// Environment keys
const (
	EnvBaseURL     = "WALLGRID_BASE_URL"
	EnvDownloadDir = "WALLGRID_DOWNLOAD_DIR"
)

// DotEnvFile is loaded from the working directory when present
const DotEnvFile = ".env"

// Env holds process-level configuration shared by the GUI and the CLI.
type Env struct {
	BaseURL     string
	DownloadDir string // empty means the platform downloads directory
}

// LoadEnv reads DotEnvFile if it exists and then the process environment.
// Variables already set in the environment win over the file.
func LoadEnv() Env {
	_ = godotenv.Load(DotEnvFile)

	return Env{
		BaseURL:     normalizeBaseURL(getEnv(EnvBaseURL, DefaultBaseURL)),
		DownloadDir: strings.TrimSpace(os.Getenv(EnvDownloadDir)),
	}
}

func getEnv(key, fallback string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return fallback
}

// normalizeBaseURL drops trailing slashes; record URLs start with "/".
func normalizeBaseURL(raw string) string {
	return strings.TrimRight(raw, "/")
}
