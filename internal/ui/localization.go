package ui

import (
	"fmt"
	"strings"
	"sync"

	"fyne.io/fyne/v2/lang"
)

// Localization manages UI text translations
type Localization struct {
	mu              sync.RWMutex
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle           = "app_title"
	KeyAll                = "all"
	KeyDownload           = "download"
	KeyRefresh            = "refresh"
	KeyPullToRefresh      = "pull_to_refresh"
	KeySettings           = "settings"
	KeyFile               = "file"
	KeyLanguage           = "language"
	KeyDownloadDirectory  = "download_directory"
	KeySave               = "save"
	KeyCancel             = "cancel"
	KeyBrowse             = "browse"
	KeyOK                 = "ok"
	KeySettingsSaved      = "settings_saved"
	KeyDownloading        = "downloading"
	KeyDownloadComplete   = "download_complete"
	KeyDownloadFailed     = "download_failed"
	KeyImageDownloadedTo  = "image_downloaded_to"
	KeyErrorDownloading   = "error_downloading"
	KeyNoImages           = "no_images"
	KeyLanguageSystem     = "language_system"
	KeyDownloadDirMissing = "download_dir_missing"
)

// Supported language codes
const (
	LangSystem  = "system"
	LangEnglish = "en"
	LangRussian = "ru"
	LangPortug  = "pt"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: LangEnglish,
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language. "system" follows the device locale
// and falls back to English for languages without translations.
func (l *Localization) SetLanguage(code string) {
	if code == LangSystem {
		code = systemLanguage()
	}

	if _, exists := l.texts[code]; !exists {
		code = LangEnglish
	}

	l.mu.Lock()
	l.currentLanguage = code
	l.mu.Unlock()
}

func systemLanguage() string {
	locale := lang.SystemLocale().LanguageString()
	code, _, _ := strings.Cut(locale, "-")
	return strings.ToLower(code)
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.GetCurrentLanguage()]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if text, found := l.texts[LangEnglish][key]; found {
		return text
	}

	return key
}

// Format returns the localized format string for key applied to args
func (l *Localization) Format(key string, args ...any) string {
	return fmt.Sprintf(l.GetText(key), args...)
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.currentLanguage
}

// GetAvailableLanguages returns the translated languages in menu order
func (l *Localization) GetAvailableLanguages() []string {
	return []string{LangEnglish, LangRussian, LangPortug}
}

// LanguageName returns the display name of a language code
func (l *Localization) LanguageName(code string) string {
	switch code {
	case LangEnglish:
		return "English"
	case LangRussian:
		return "Русский"
	case LangPortug:
		return "Português"
	case LangSystem:
		return l.GetText(KeyLanguageSystem)
	}
	return code
}

// NoticeTexts adapts the localization to the controller's notice formatter.
// It is called from download goroutines.
func (l *Localization) NoticeTexts(success bool, path string) (string, string) {
	if success {
		return l.GetText(KeyDownloadComplete), l.Format(KeyImageDownloadedTo, path)
	}
	return l.GetText(KeyDownloadFailed), l.GetText(KeyErrorDownloading)
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	l.texts[LangEnglish] = map[string]string{
		KeyAppTitle:           "Wallpapers",
		KeyAll:                "All",
		KeyDownload:           "Download",
		KeyRefresh:            "Refresh",
		KeyPullToRefresh:      "Pull down to refresh",
		KeySettings:           "Settings",
		KeyFile:               "File",
		KeyLanguage:           "Language",
		KeyDownloadDirectory:  "Download Directory",
		KeySave:               "Save",
		KeyCancel:             "Cancel",
		KeyBrowse:             "Browse",
		KeyOK:                 "OK",
		KeySettingsSaved:      "Settings saved successfully!",
		KeyDownloading:        "Downloading %s…",
		KeyDownloadComplete:   "Download Complete",
		KeyDownloadFailed:     "Download Failed",
		KeyImageDownloadedTo:  "Image downloaded to %s",
		KeyErrorDownloading:   "Error downloading image",
		KeyNoImages:           "No images",
		KeyLanguageSystem:     "System",
		KeyDownloadDirMissing: "Download directory is required",
	}

	l.texts[LangRussian] = map[string]string{
		KeyAppTitle:           "Обои",
		KeyAll:                "Все",
		KeyDownload:           "Скачать",
		KeyRefresh:            "Обновить",
		KeyPullToRefresh:      "Потяните вниз, чтобы обновить",
		KeySettings:           "Настройки",
		KeyFile:               "Файл",
		KeyLanguage:           "Язык",
		KeyDownloadDirectory:  "Папка загрузки",
		KeySave:               "Сохранить",
		KeyCancel:             "Отмена",
		KeyBrowse:             "Обзор",
		KeyOK:                 "ОК",
		KeySettingsSaved:      "Настройки успешно сохранены!",
		KeyDownloading:        "Загрузка %s…",
		KeyDownloadComplete:   "Загрузка завершена",
		KeyDownloadFailed:     "Ошибка загрузки",
		KeyImageDownloadedTo:  "Изображение сохранено в %s",
		KeyErrorDownloading:   "Не удалось скачать изображение",
		KeyNoImages:           "Нет изображений",
		KeyLanguageSystem:     "Системный",
		KeyDownloadDirMissing: "Укажите папку загрузки",
	}

	l.texts[LangPortug] = map[string]string{
		KeyAppTitle:           "Papéis de Parede",
		KeyAll:                "Todos",
		KeyDownload:           "Baixar",
		KeyRefresh:            "Atualizar",
		KeyPullToRefresh:      "Puxe para baixo para atualizar",
		KeySettings:           "Configurações",
		KeyFile:               "Arquivo",
		KeyLanguage:           "Idioma",
		KeyDownloadDirectory:  "Diretório de Download",
		KeySave:               "Salvar",
		KeyCancel:             "Cancelar",
		KeyBrowse:             "Navegar",
		KeyOK:                 "OK",
		KeySettingsSaved:      "Configurações salvas com sucesso!",
		KeyDownloading:        "Baixando %s…",
		KeyDownloadComplete:   "Download concluído",
		KeyDownloadFailed:     "Falha no download",
		KeyImageDownloadedTo:  "Imagem salva em %s",
		KeyErrorDownloading:   "Erro ao baixar a imagem",
		KeyNoImages:           "Nenhuma imagem",
		KeyLanguageSystem:     "Sistema",
		KeyDownloadDirMissing: "Informe o diretório de download",
	}
}
