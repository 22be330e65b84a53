package model

import (
	"path/filepath"
	"strings"
	"time"
)

// DownloadTask represents a single image download
type DownloadTask struct {
	ID           string
	RemoteURL    string
	Filename     string // requested file name, e.g. "Sunset.jpg"
	Status       TaskStatus
	BytesWritten int64
	LastError    string    // last error message if any
	OutputPath   string    // resolved local path
	StartedAt    time.Time // when download started
	FinishedAt   time.Time // when download finished
}

// GetDisplayTitle returns the file name without extension, the output file
// name, or the remote URL in order of preference
func (dt *DownloadTask) GetDisplayTitle() string {
	if dt.Filename != "" {
		return strings.TrimSuffix(dt.Filename, filepath.Ext(dt.Filename))
	}

	if dt.OutputPath != "" {
		// Support both / and \ separators
		parts := strings.FieldsFunc(dt.OutputPath, func(r rune) bool {
			return r == '/' || r == '\\'
		})
		if len(parts) > 0 {
			name := parts[len(parts)-1]
			if idx := strings.LastIndex(name, "."); idx > 0 {
				name = name[:idx]
			}
			return name
		}
	}

	return dt.RemoteURL
}

// Duration returns how long the transfer took, or zero while it is running.
func (dt *DownloadTask) Duration() time.Duration {
	if dt.FinishedAt.IsZero() || dt.StartedAt.IsZero() {
		return 0
	}
	return dt.FinishedAt.Sub(dt.StartedAt)
}
