// Package gallery drives the gallery screen: the load/refresh lifecycle, the
// category selection and download notices. It owns all mutable screen state;
// the UI only renders the View it publishes.
package gallery

import (
	"context"
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/ytget/wallgrid/internal/catalog"
	"github.com/ytget/wallgrid/internal/logging"
	"github.com/ytget/wallgrid/internal/model"
)

// Default notice texts
const (
	NoticeTitleSuccess = "Download Complete"
	NoticeTitleFailure = "Download Failed"
	NoticeFailure      = "Error downloading image"
	noticeSuccessFmt   = "Image downloaded to %s"
)

// Directory is the remote image directory as seen by the controller.
type Directory interface {
	catalog.Fetcher
	ImageURL(rec model.ImageRecord) string
}

// Downloader saves one image to local storage.
type Downloader interface {
	Download(ctx context.Context, remoteURL, filename string) (*model.DownloadTask, error)
}

// NoticeFormatter builds the title and message of a download notice.
// path is empty when the download failed.
type NoticeFormatter func(success bool, path string) (title, message string)

// View is an immutable snapshot of everything the screen renders.
type View struct {
	Version uint64 // increases with every published change
	Catalog model.CatalogState
	Status  model.UIStatus
	Notice  model.DownloadNotice
}

// Controller coordinates fetches, filtering and downloads.
type Controller struct {
	mu         sync.Mutex
	store      *catalog.Store
	directory  Directory
	downloader Downloader
	status     model.UIStatus
	notice     model.DownloadNotice
	epoch      uint64 // stamp of the newest fetch started
	version    uint64
	observers  []func(View)
	formatter  NoticeFormatter
	pending    sync.WaitGroup
	log        *logrus.Entry
}

// NewController creates a controller in the Loading state.
func NewController(directory Directory, downloader Downloader) *Controller {
	return &Controller{
		store:      catalog.NewStore(),
		directory:  directory,
		downloader: downloader,
		status:     model.UIStatusLoading,
		formatter:  DefaultNoticeFormatter,
		log:        logging.NewLogger("gallery"),
	}
}

// DefaultNoticeFormatter produces the English notice texts
func DefaultNoticeFormatter(success bool, path string) (string, string) {
	if success {
		return NoticeTitleSuccess, fmt.Sprintf(noticeSuccessFmt, path)
	}
	return NoticeTitleFailure, NoticeFailure
}

// SetNoticeFormatter replaces the notice texts, e.g. with localized ones.
func (c *Controller) SetNoticeFormatter(f NoticeFormatter) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if f == nil {
		f = DefaultNoticeFormatter
	}
	c.formatter = f
}

// OnChange registers an observer. Observers are called after every state
// change, from whichever goroutine made it.
func (c *Controller) OnChange(fn func(View)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.observers = append(c.observers, fn)
}

// View returns the current snapshot
func (c *Controller) View() View {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.viewLocked()
}

// Mount starts the initial load.
func (c *Controller) Mount(ctx context.Context) {
	c.startFetch(ctx, true)
}

// Refresh starts a user-initiated reload. The grid stays visible. A refresh
// issued while another fetch is running supersedes it.
func (c *Controller) Refresh(ctx context.Context) {
	c.startFetch(ctx, false)
}

// startFetch bumps the epoch and picks the status under one lock. A refresh
// during the initial load keeps Loading.
func (c *Controller) startFetch(ctx context.Context, initial bool) {
	c.mu.Lock()
	c.epoch++
	epoch := c.epoch
	if initial || c.status == model.UIStatusLoading {
		c.status = model.UIStatusLoading
	} else {
		c.status = model.UIStatusRefreshing
	}
	status := c.status
	c.mu.Unlock()

	c.log.WithFields(logrus.Fields{"epoch": epoch, "status": status}).Debug("Fetch started")
	c.emit()

	c.pending.Add(1)
	go func() {
		defer c.pending.Done()
		records, err := c.directory.FetchImages(ctx)
		c.finishFetch(epoch, records, err)
	}()
}

// finishFetch applies a fetch result unless a newer fetch has been started.
// Failures keep the previous catalog and are only logged.
func (c *Controller) finishFetch(epoch uint64, records []model.ImageRecord, err error) {
	log := c.log.WithField("epoch", epoch)

	c.mu.Lock()
	if epoch != c.epoch {
		c.mu.Unlock()
		log.Debug("Discarding superseded fetch result")
		return
	}
	if err != nil {
		log.WithError(err).Error("Error fetching images")
	} else {
		c.store.Replace(records)
		log.WithField("records", len(records)).Info("Catalog loaded")
	}
	c.status = model.UIStatusReady
	c.mu.Unlock()

	c.emit()
}

// SelectCategory applies a filter chip tap.
func (c *Controller) SelectCategory(category string) {
	selected := c.store.Select(category)
	c.log.WithField("category", selected).Debug("Filter changed")
	c.emit()
}

// Download saves rec in the background and publishes a notice when done.
func (c *Controller) Download(ctx context.Context, rec model.ImageRecord) {
	remoteURL := c.directory.ImageURL(rec)
	filename := rec.DownloadFilename()

	c.pending.Add(1)
	go func() {
		defer c.pending.Done()

		task, err := c.downloader.Download(ctx, remoteURL, filename)

		c.mu.Lock()
		if err != nil {
			c.log.WithError(err).WithField("record_id", rec.ID).Error("Error downloading image")
			title, message := c.formatter(false, "")
			c.notice = model.DownloadNotice{Visible: true, Success: false, Title: title, Message: message}
		} else {
			title, message := c.formatter(true, task.OutputPath)
			c.notice = model.DownloadNotice{Visible: true, Success: true, Title: title, Message: message}
		}
		c.mu.Unlock()

		c.emit()
	}()
}

// DismissNotice hides the current notice
func (c *Controller) DismissNotice() {
	c.mu.Lock()
	c.notice = model.DownloadNotice{}
	c.mu.Unlock()
	c.emit()
}

// Wait blocks until every fetch and download started so far has finished.
func (c *Controller) Wait() {
	c.pending.Wait()
}

func (c *Controller) viewLocked() View {
	return View{
		Version: c.version,
		Catalog: c.store.Snapshot(),
		Status:  c.status,
		Notice:  c.notice,
	}
}

func (c *Controller) emit() {
	c.mu.Lock()
	c.version++
	view := c.viewLocked()
	observers := append([]func(View){}, c.observers...)
	c.mu.Unlock()

	for _, fn := range observers {
		fn(view)
	}
}
