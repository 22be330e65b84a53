package ui

// Package ui contains the Fyne-based user interface for the application.
// It renders the wallpaper grid, the category chips, the download notice and
// settings, and forwards user actions to the gallery controller. All UI strings
// are localized via Localization.
