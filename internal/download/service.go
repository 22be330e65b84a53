package download

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/ytget/wallgrid/internal/logging"
	"github.com/ytget/wallgrid/internal/model"
	"github.com/ytget/wallgrid/internal/platform"
)

// Temp file pattern used while a transfer is in progress
const partFilePattern = ".wallgrid-*.part"

// Service handles download operations
type Service struct {
	tasks       map[string]*model.DownloadTask
	tasksMutex  sync.RWMutex
	downloadDir string
	httpClient  *http.Client
	onUpdate    func(*model.DownloadTask) // callback for UI updates
	log         *logrus.Entry
}

// NewService creates a new download service. A nil httpClient means
// http.DefaultClient.
func NewService(downloadDir string, httpClient *http.Client) *Service {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Service{
		tasks:       make(map[string]*model.DownloadTask),
		downloadDir: downloadDir,
		httpClient:  httpClient,
		log:         logging.NewLogger("download"),
	}
}

// SetUpdateCallback sets the callback function for task updates
func (s *Service) SetUpdateCallback(callback func(*model.DownloadTask)) {
	s.tasksMutex.Lock()
	defer s.tasksMutex.Unlock()
	s.onUpdate = callback
}

// SetDownloadDirectory sets the download directory used by later downloads
func (s *Service) SetDownloadDirectory(dir string) {
	s.tasksMutex.Lock()
	defer s.tasksMutex.Unlock()
	s.downloadDir = dir
}

// GetDownloadDirectory returns the current download directory
func (s *Service) GetDownloadDirectory() string {
	s.tasksMutex.RLock()
	defer s.tasksMutex.RUnlock()
	return s.downloadDir
}

// Download fetches remoteURL and writes it to the download directory as
// filename, replacing any existing file of that name. There is no retry.
func (s *Service) Download(ctx context.Context, remoteURL, filename string) (*model.DownloadTask, error) {
	dir := s.GetDownloadDirectory()
	dest := filepath.Join(dir, platform.SanitizeFilename(filename))

	task := &model.DownloadTask{
		ID:         generateTaskID(),
		RemoteURL:  remoteURL,
		Filename:   filename,
		Status:     model.TaskStatusPending,
		OutputPath: dest,
		StartedAt:  time.Now(),
	}

	s.tasksMutex.Lock()
	s.tasks[task.ID] = task
	s.tasksMutex.Unlock()
	s.notifyUpdate(task)

	log := s.log.WithFields(logrus.Fields{
		"task_id": task.ID,
		"url":     remoteURL,
		"path":    dest,
	})

	if err := platform.CreateDirectoryIfNotExists(dir); err != nil {
		return s.fail(task, log, &DownloadError{Op: "mkdir", URL: remoteURL, Path: dest, Err: err})
	}

	s.setStatus(task, model.TaskStatusDownloading)
	log.Debug("Download started")

	written, err := s.transfer(ctx, remoteURL, dest)
	if err != nil {
		return s.fail(task, log, err)
	}

	s.tasksMutex.Lock()
	task.Status = model.TaskStatusCompleted
	task.BytesWritten = written
	task.FinishedAt = time.Now()
	duration := task.Duration()
	s.tasksMutex.Unlock()
	s.notifyUpdate(task)

	log.WithFields(logrus.Fields{"bytes": written, "duration": duration}).Info("Download completed")

	if err := platform.NotifyMediaScanner(dest); err != nil {
		log.WithError(err).Warn("Media scanner notification failed")
	}

	return s.copyTask(task), nil
}

// transfer streams the response body to a temp file next to dest and renames
// it over dest once complete, so a failed transfer never clobbers an existing
// file.
func (s *Service) transfer(ctx context.Context, remoteURL, dest string) (int64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, remoteURL, nil)
	if err != nil {
		return 0, &DownloadError{Op: "request", URL: remoteURL, Path: dest, Err: err}
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return 0, &DownloadError{Op: "request", URL: remoteURL, Path: dest, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return 0, &DownloadError{Op: "status", URL: remoteURL, Path: dest, Err: fmt.Errorf("unexpected status %s", resp.Status)}
	}

	tmp, err := os.CreateTemp(filepath.Dir(dest), partFilePattern)
	if err != nil {
		return 0, &DownloadError{Op: "write", URL: remoteURL, Path: dest, Err: err}
	}
	tmpName := tmp.Name()

	written, copyErr := io.Copy(tmp, resp.Body)
	closeErr := tmp.Close()
	if copyErr == nil {
		copyErr = closeErr
	}
	if copyErr != nil {
		os.Remove(tmpName)
		return 0, &DownloadError{Op: "write", URL: remoteURL, Path: dest, Err: copyErr}
	}

	if err := os.Rename(tmpName, dest); err != nil {
		os.Remove(tmpName)
		return 0, &DownloadError{Op: "rename", URL: remoteURL, Path: dest, Err: err}
	}

	return written, nil
}

// fail marks the task as failed and returns err
func (s *Service) fail(task *model.DownloadTask, log *logrus.Entry, err error) (*model.DownloadTask, error) {
	s.tasksMutex.Lock()
	task.Status = model.TaskStatusError
	task.LastError = err.Error()
	task.FinishedAt = time.Now()
	s.tasksMutex.Unlock()
	s.notifyUpdate(task)

	log.WithError(err).Error("Download failed")
	return s.copyTask(task), err
}

func (s *Service) setStatus(task *model.DownloadTask, status model.TaskStatus) {
	s.tasksMutex.Lock()
	task.Status = status
	s.tasksMutex.Unlock()
	s.notifyUpdate(task)
}

// GetAllTasks returns all tasks, oldest first
func (s *Service) GetAllTasks() []*model.DownloadTask {
	s.tasksMutex.RLock()
	defer s.tasksMutex.RUnlock()

	tasks := make([]*model.DownloadTask, 0, len(s.tasks))
	for _, task := range s.tasks {
		copied := *task
		tasks = append(tasks, &copied)
	}
	sort.Slice(tasks, func(i, j int) bool {
		return tasks[i].StartedAt.Before(tasks[j].StartedAt)
	})
	return tasks
}

// copyTask returns a snapshot of task taken under the lock
func (s *Service) copyTask(task *model.DownloadTask) *model.DownloadTask {
	s.tasksMutex.RLock()
	defer s.tasksMutex.RUnlock()
	copied := *task
	return &copied
}

// notifyUpdate calls the update callback if set. The callback gets a copy.
func (s *Service) notifyUpdate(task *model.DownloadTask) {
	s.tasksMutex.RLock()
	callback := s.onUpdate
	copied := *task
	s.tasksMutex.RUnlock()

	if callback != nil {
		callback(&copied)
	}
}

// generateTaskID generates a unique task ID
func generateTaskID() string {
	return "task-" + uuid.New().String()
}
