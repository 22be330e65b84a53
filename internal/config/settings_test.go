package config

import (
	"reflect"
	"testing"

	"fyne.io/fyne/v2/test"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app, Env{})

	if settings.app != app {
		t.Error("Settings app reference should match provided app")
	}
}

func TestBaseURL(t *testing.T) {
	app := test.NewApp()

	if got := NewSettings(app, Env{}).GetBaseURL(); got != DefaultBaseURL {
		t.Errorf("Expected default base URL %s, got %s", DefaultBaseURL, got)
	}

	custom := "http://localhost:8080"
	if got := NewSettings(app, Env{BaseURL: custom}).GetBaseURL(); got != custom {
		t.Errorf("Expected base URL %s, got %s", custom, got)
	}
}

func TestDownloadDirectory(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app, Env{})

	// Test default value
	dir := settings.GetDownloadDirectory()
	if dir == "" {
		t.Error("Download directory should not be empty")
	}

	// Test setting custom value
	customDir := "/custom/downloads"
	settings.SetDownloadDirectory(customDir)

	retrievedDir := settings.GetDownloadDirectory()
	if retrievedDir != customDir {
		t.Errorf("Expected download directory %s, got %s", customDir, retrievedDir)
	}
}

func TestDownloadDirectory_EnvDefault(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app, Env{DownloadDir: "/env/downloads"})

	if got := settings.GetDownloadDirectory(); got != "/env/downloads" {
		t.Errorf("Expected env download directory, got %s", got)
	}

	// A saved preference wins over the environment
	settings.SetDownloadDirectory("/saved/downloads")
	if got := settings.GetDownloadDirectory(); got != "/saved/downloads" {
		t.Errorf("Expected saved download directory, got %s", got)
	}
}

func TestDownloadDirectory_EnvAppliesOnLaterLaunch(t *testing.T) {
	app := test.NewApp()

	first := NewSettings(app, Env{}).GetDownloadDirectory()
	if first == "" {
		t.Fatal("Download directory should not be empty")
	}
	if saved := app.Preferences().String(KeyDownloadDir); saved != "" {
		t.Errorf("Computed default should not be persisted, got %s", saved)
	}

	if got := NewSettings(app, Env{DownloadDir: "/data/walls"}).GetDownloadDirectory(); got != "/data/walls" {
		t.Errorf("Expected env download directory on later launch, got %s", got)
	}
}

func TestLanguage(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app, Env{})

	// Test default value
	lang := settings.GetLanguage()
	if lang != DefaultLanguage {
		t.Errorf("Expected default language %s, got %s", DefaultLanguage, lang)
	}

	// Test setting custom value
	settings.SetLanguage("en")

	retrievedLang := settings.GetLanguage()
	if retrievedLang != "en" {
		t.Errorf("Expected language 'en', got %s", retrievedLang)
	}
}

func TestGetLanguageOptions(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app, Env{})

	options := settings.GetLanguageOptions()

	expectedLangs := []string{"system", "en", "ru", "pt"}
	if !reflect.DeepEqual(options, expectedLangs) {
		t.Errorf("Expected language options %v, got %v", expectedLangs, options)
	}
}
