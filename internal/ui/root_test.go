package ui

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/wallgrid/internal/config"
	"github.com/ytget/wallgrid/internal/gallery"
	"github.com/ytget/wallgrid/internal/model"
)

type stubDirectory struct {
	records []model.ImageRecord
	err     error
}

func (d *stubDirectory) FetchImages(ctx context.Context) ([]model.ImageRecord, error) {
	return d.records, d.err
}

func (d *stubDirectory) ImageURL(rec model.ImageRecord) string {
	return "https://walls.example.com" + rec.URL
}

type stubDownloader struct {
	mu       sync.Mutex
	dir      string
	err      error
	onUpdate func(*model.DownloadTask)
	tasks    []*model.DownloadTask
}

func (d *stubDownloader) SetUpdateCallback(fn func(*model.DownloadTask)) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.onUpdate = fn
}

func (d *stubDownloader) Download(ctx context.Context, remoteURL, filename string) (*model.DownloadTask, error) {
	task := &model.DownloadTask{ID: "task-1", RemoteURL: remoteURL, Filename: filename, OutputPath: filepath.Join(d.GetDownloadDirectory(), filename)}
	if d.err != nil {
		task.Status = model.TaskStatusError
	} else {
		task.Status = model.TaskStatusCompleted
	}

	d.mu.Lock()
	d.tasks = append(d.tasks, task)
	onUpdate := d.onUpdate
	d.mu.Unlock()

	if onUpdate != nil {
		onUpdate(task)
	}
	return task, d.err
}

func (d *stubDownloader) GetAllTasks() []*model.DownloadTask {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]*model.DownloadTask(nil), d.tasks...)
}

func (d *stubDownloader) SetDownloadDirectory(dir string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.dir = dir
}

func (d *stubDownloader) GetDownloadDirectory() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.dir
}

func sampleRecords() []model.ImageRecord {
	return []model.ImageRecord{
		{ID: "1", Title: "Sunset", Category: "Nature", URL: "/i/1.jpg"},
		{ID: "2", Title: "City", Category: "Urban", URL: "/i/2.jpg"},
	}
}

type harness struct {
	ui         *RootUI
	controller *gallery.Controller
	downloader *stubDownloader
	window     fyne.Window
}

func newHarness(t *testing.T, dir *stubDirectory, dl *stubDownloader) *harness {
	t.Helper()
	a := test.NewTempApp(t)
	w := a.NewWindow("test")
	t.Cleanup(w.Close)

	settings := config.NewSettings(a, config.Env{DownloadDir: t.TempDir()})
	settings.SetLanguage(LangEnglish)
	controller := gallery.NewController(dir, dl)

	var loads atomic.Int32
	ui := NewRootUI(context.Background(), w, controller, dir, dl, settings, WithImageLoader(staticLoader(&loads)))
	controller.Wait()

	return &harness{ui: ui, controller: controller, downloader: dl, window: w}
}

// onUI reads UI state on the UI goroutine
func onUI[T any](fn func() T) T {
	var v T
	fyne.DoAndWait(func() { v = fn() })
	return v
}

func TestRootUI_InitialLoad(t *testing.T) {
	h := newHarness(t, &stubDirectory{records: sampleRecords()}, &stubDownloader{})

	assert.Eventually(t, func() bool {
		return onUI(func() int { return len(h.ui.grid.Objects) }) == 2
	}, waitFor, tick)

	assert.Equal(t, model.UIStatusReady, onUI(func() model.UIStatus { return h.ui.status }))
	assert.True(t, onUI(func() bool { return h.ui.gridScroll.Visible() }))
	assert.False(t, onUI(func() bool { return h.ui.loadingView.Visible() }))
	assert.False(t, onUI(func() bool { return h.ui.emptyLabel.Visible() }))
	assert.Len(t, h.ui.filterBar.chips, 2)

	tile := h.ui.tiles[0]
	assert.Equal(t, "Sunset", tile.titleLabel.Text)
	assert.Equal(t, "https://walls.example.com/i/1.jpg", tile.imageURL)
}

func TestRootUI_FetchFailureShowsEmptyGrid(t *testing.T) {
	h := newHarness(t, &stubDirectory{err: errors.New("offline")}, &stubDownloader{})

	assert.Eventually(t, func() bool {
		return onUI(func() bool { return h.ui.status == model.UIStatusReady })
	}, waitFor, tick)
	assert.True(t, onUI(func() bool { return h.ui.emptyLabel.Visible() }))
	assert.Nil(t, onUI(func() fyne.CanvasObject { return h.window.Canvas().Overlays().Top() }))
}

func TestRootUI_FilterChip(t *testing.T) {
	h := newHarness(t, &stubDirectory{records: sampleRecords()}, &stubDownloader{})
	require.Eventually(t, func() bool {
		return onUI(func() int { return len(h.ui.filterBar.chips) }) == 2
	}, waitFor, tick)

	fyne.DoAndWait(func() { test.Tap(h.ui.filterBar.chips[0]) })

	assert.Eventually(t, func() bool {
		return onUI(func() int { return len(h.ui.grid.Objects) }) == 1
	}, waitFor, tick)
	assert.Equal(t, widget.HighImportance, onUI(func() widget.Importance { return h.ui.filterBar.chips[0].Importance }))
	assert.Equal(t, "Nature", h.controller.View().Catalog.Selected)
}

func TestRootUI_DownloadNotice(t *testing.T) {
	dl := &stubDownloader{dir: "/sdcard/Download"}
	h := newHarness(t, &stubDirectory{records: sampleRecords()}, dl)
	require.Eventually(t, func() bool {
		return onUI(func() int { return len(h.ui.tiles) }) == 2
	}, waitFor, tick)

	fyne.DoAndWait(func() { test.Tap(h.ui.tiles[0].downloadBtn) })
	h.controller.Wait()

	require.Eventually(t, func() bool {
		return onUI(func() bool { return h.ui.noticeDialog != nil })
	}, waitFor, tick)
	notice := onUI(func() model.DownloadNotice { return h.ui.shownNotice })
	assert.True(t, notice.Success)
	assert.Equal(t, "Image downloaded to "+filepath.Join("/sdcard/Download", "Sunset.jpg"), notice.Message)

	// OK closes the dialog and clears the notice
	fyne.DoAndWait(func() { h.ui.noticeDialog.Hide() })
	assert.Eventually(t, func() bool {
		return !h.controller.View().Notice.Visible
	}, waitFor, tick)
	assert.Nil(t, onUI(func() any { return h.ui.noticeDialog }))
}

func TestRootUI_DownloadFailureNotice(t *testing.T) {
	dl := &stubDownloader{err: errors.New("disk full")}
	h := newHarness(t, &stubDirectory{records: sampleRecords()}, dl)

	h.controller.Download(context.Background(), sampleRecords()[1])
	h.controller.Wait()

	require.Eventually(t, func() bool {
		return onUI(func() bool { return h.ui.noticeDialog != nil })
	}, waitFor, tick)
	notice := onUI(func() model.DownloadNotice { return h.ui.shownNotice })
	assert.False(t, notice.Success)
	assert.Equal(t, "Error downloading image", notice.Message)
}

func TestRootUI_RenderDropsOlderViews(t *testing.T) {
	h := newHarness(t, &stubDirectory{records: sampleRecords()}, &stubDownloader{})
	require.Eventually(t, func() bool {
		return onUI(func() int { return len(h.ui.grid.Objects) }) == 2
	}, waitFor, tick)

	fyne.DoAndWait(func() {
		h.ui.render(gallery.View{Version: 1, Status: model.UIStatusLoading})
	})
	assert.Equal(t, model.UIStatusReady, onUI(func() model.UIStatus { return h.ui.status }))
	assert.Len(t, onUI(func() []fyne.CanvasObject { return h.ui.grid.Objects }), 2)
}

func TestRootUI_LanguageChange(t *testing.T) {
	h := newHarness(t, &stubDirectory{records: sampleRecords()}, &stubDownloader{})
	require.Eventually(t, func() bool {
		return onUI(func() int { return len(h.ui.tiles) }) == 2
	}, waitFor, tick)

	fyne.DoAndWait(func() { h.ui.onLanguageChange("pt") })

	assert.Equal(t, "pt", h.ui.settings.GetLanguage())
	assert.Equal(t, "Todos", onUI(func() string { return h.ui.filterBar.allChip.Text }))
	assert.Equal(t, "Baixar", onUI(func() string { return h.ui.tiles[0].downloadBtn.Text }))
}

func TestRootUI_SettingsSavedUpdatesDownloadDir(t *testing.T) {
	dl := &stubDownloader{}
	h := newHarness(t, &stubDirectory{}, dl)

	h.ui.settings.SetDownloadDirectory("/data/walls")
	fyne.DoAndWait(h.ui.onSettingsSaved)

	assert.Equal(t, "/data/walls", dl.GetDownloadDirectory())
}
