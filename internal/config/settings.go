package config

import (
	"fyne.io/fyne/v2"

	"github.com/ytget/wallgrid/internal/platform"
)

// Settings keys for Fyne preferences
const (
	KeyDownloadDir = "download_directory"
	KeyLanguage    = "app_language"
)

// Default values
const (
	DefaultLanguage     = "system"
	FallbackDownloadDir = "/tmp/downloads"
)

// Settings manages user-editable application configuration
type Settings struct {
	app fyne.App
	env Env
}

// NewSettings creates a new settings manager. Values from env act as defaults
// for keys the user never saved.
func NewSettings(app fyne.App, env Env) *Settings {
	return &Settings{app: app, env: env}
}

// GetBaseURL returns the remote image directory address
func (s *Settings) GetBaseURL() string {
	if s.env.BaseURL == "" {
		return DefaultBaseURL
	}
	return s.env.BaseURL
}

// GetDownloadDirectory returns the configured download directory: the saved
// preference, then the environment, then the platform downloads directory.
// Only an explicit SetDownloadDirectory is persisted.
func (s *Settings) GetDownloadDirectory() string {
	dir := s.app.Preferences().String(KeyDownloadDir)
	if dir != "" {
		return dir
	}

	if s.env.DownloadDir != "" {
		return s.env.DownloadDir
	}

	// Use system default Downloads directory
	defaultDir, err := platform.GetHomeDownloadsDir()
	if err != nil {
		defaultDir = FallbackDownloadDir
	}
	return defaultDir
}

// SetDownloadDirectory sets the download directory
func (s *Settings) SetDownloadDirectory(dir string) {
	s.app.Preferences().SetString(KeyDownloadDir, dir)
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetLanguageOptions returns the selectable language codes in display order
func (s *Settings) GetLanguageOptions() []string {
	return []string{DefaultLanguage, "en", "ru", "pt"}
}
