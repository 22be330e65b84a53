package download

import (
	"context"

	"github.com/ytget/wallgrid/internal/model"
)

// Downloader defines the interface for the download service.
type Downloader interface {
	SetUpdateCallback(func(*model.DownloadTask))

	// Download transfers remoteURL into the download directory as filename.
	// It blocks until the file is written or the transfer fails.
	Download(ctx context.Context, remoteURL, filename string) (*model.DownloadTask, error)

	GetAllTasks() []*model.DownloadTask

	// SetDownloadDirectory sets the download directory
	SetDownloadDirectory(dir string)
	GetDownloadDirectory() string
}
