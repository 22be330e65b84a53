package ui

import (
	"context"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/sirupsen/logrus"

	"github.com/ytget/wallgrid/internal/config"
	"github.com/ytget/wallgrid/internal/download"
	"github.com/ytget/wallgrid/internal/gallery"
	"github.com/ytget/wallgrid/internal/logging"
	"github.com/ytget/wallgrid/internal/model"
)

// Option customises a RootUI
type Option func(*RootUI)

// WithImageLoader replaces the HTTP loader used for tile images
func WithImageLoader(load ImageLoader) Option {
	return func(ui *RootUI) {
		ui.images = NewImageCache(load)
	}
}

// RootUI represents the main UI structure
type RootUI struct {
	ctx          context.Context
	window       fyne.Window
	controller   *gallery.Controller
	directory    gallery.Directory
	downloadSvc  download.Downloader
	settings     *config.Settings
	localization *Localization
	mobile       *MobileUI
	images       *ImageCache
	log          *logrus.Entry

	// Grid
	filterBar   *FilterBar
	pullHandle  *PullToRefresh
	grid        *fyne.Container
	gridScroll  *container.Scroll
	tiles       []*Tile
	emptyLabel  *widget.Label
	refreshBar  *widget.ProgressBarInfinite
	loadingView *fyne.Container
	spinner     *widget.Activity

	// Notification panel for running downloads
	notificationContainer *fyne.Container
	notificationLabel     *widget.Label
	notificationSpinner   *widget.ProgressBarInfinite

	// Notice dialog
	noticeDialog dialog.Dialog
	shownNotice  model.DownloadNotice
	noticeGen    uint64

	lastVersion uint64
	status      model.UIStatus
}

// NewRootUI creates the gallery screen, wires it to controller and starts the
// initial load. directory resolves tile image addresses.
func NewRootUI(ctx context.Context, window fyne.Window, controller *gallery.Controller, directory gallery.Directory, downloadSvc download.Downloader, settings *config.Settings, opts ...Option) *RootUI {
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		ctx:          ctx,
		window:       window,
		controller:   controller,
		directory:    directory,
		downloadSvc:  downloadSvc,
		settings:     settings,
		localization: localization,
		mobile:       NewMobileUI(),
		log:          logging.NewLogger("ui"),
		status:       model.UIStatusLoading,
	}
	for _, opt := range opts {
		opt(ui)
	}
	if ui.images == nil {
		ui.images = NewImageCache(nil)
	}

	window.SetTitle(localization.GetText(KeyAppTitle))

	controller.SetNoticeFormatter(localization.NoticeTexts)
	controller.OnChange(ui.onViewChanged)
	downloadSvc.SetUpdateCallback(ui.onTaskUpdate)

	ui.setupUI()
	ui.render(controller.View())

	controller.Mount(ctx)
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	toolbar := widget.NewToolbar(
		widget.NewToolbarSpacer(),
		widget.NewToolbarAction(theme.ViewRefreshIcon(), ui.onRefresh),
		widget.NewToolbarAction(theme.SettingsIcon(), ui.onShowSettings),
	)

	ui.filterBar = NewFilterBar(ui.localization.GetText(KeyAll), ui.controller.SelectCategory)

	ui.refreshBar = widget.NewProgressBarInfinite()
	ui.refreshBar.Hide()

	// Notification panel (hidden by default)
	ui.notificationLabel = widget.NewLabel("")
	ui.notificationLabel.Truncation = fyne.TextTruncateEllipsis
	ui.notificationSpinner = widget.NewProgressBarInfinite()
	ui.notificationSpinner.Hide()
	ui.notificationContainer = container.NewBorder(nil, nil, nil, nil,
		container.NewVBox(ui.notificationSpinner, container.NewPadded(ui.notificationLabel)))
	ui.notificationContainer.Hide()

	top := container.NewVBox(toolbar, ui.filterBar, ui.refreshBar, ui.notificationContainer)

	ui.pullHandle = NewPullToRefresh(ui.localization.GetText(KeyPullToRefresh), ui.onRefresh)
	ui.grid = container.NewGridWithColumns(GridColumns)
	ui.emptyLabel = widget.NewLabel(ui.localization.GetText(KeyNoImages))
	ui.emptyLabel.Alignment = fyne.TextAlignCenter
	ui.emptyLabel.Hide()
	ui.gridScroll = container.NewVScroll(container.NewVBox(ui.pullHandle, ui.emptyLabel, ui.grid))

	ui.spinner = widget.NewActivity()
	ui.loadingView = container.NewCenter(ui.spinner)

	content := container.NewBorder(top, nil, nil, nil, container.NewStack(ui.gridScroll, ui.loadingView))
	ui.window.SetContent(content)

	// Desktop refresh shortcut
	ui.window.Canvas().AddShortcut(
		&desktop.CustomShortcut{KeyName: fyne.KeyR, Modifier: fyne.KeyModifierShortcutDefault},
		func(fyne.Shortcut) { ui.onRefresh() },
	)
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	refreshItem := fyne.NewMenuItem(ui.localization.GetText(KeyRefresh), ui.onRefresh)
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)

	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))
	current := ui.settings.GetLanguage()
	for _, code := range ui.settings.GetLanguageOptions() {
		langCode := code
		langItem := fyne.NewMenuItem(ui.localization.LanguageName(code), func() {
			ui.onLanguageChange(langCode)
		})
		langItem.Checked = code == current
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	ui.window.SetMainMenu(fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), refreshItem, settingsItem),
		languageMenu,
	))
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.settings.SetLanguage(langCode)
	ui.localization.SetLanguage(langCode)
	ui.refreshUITexts()
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	l := ui.localization
	ui.window.SetTitle(l.GetText(KeyAppTitle))
	ui.filterBar.SetAllText(l.GetText(KeyAll))
	ui.pullHandle.SetHint(l.GetText(KeyPullToRefresh))
	ui.emptyLabel.SetText(l.GetText(KeyNoImages))
	for _, tile := range ui.tiles {
		tile.SetDownloadText(l.GetText(KeyDownload))
	}
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	ShowSettingsDialog(ui.window, ui.settings, ui.localization, ui.onSettingsSaved)
}

// onSettingsSaved applies saved settings to the running services
func (ui *RootUI) onSettingsSaved() {
	dir := ui.settings.GetDownloadDirectory()
	ui.downloadSvc.SetDownloadDirectory(dir)
	ui.log.WithField("dir", dir).Info("Download directory updated")

	if lang := ui.settings.GetLanguage(); lang != ui.localization.GetCurrentLanguage() {
		ui.localization.SetLanguage(lang)
		ui.refreshUITexts()
		ui.createMenu()
	}
}

// onRefresh handles the pull gesture, toolbar action and shortcut
func (ui *RootUI) onRefresh() {
	ui.log.Debug("Refresh requested")
	ui.controller.Refresh(ui.ctx)
}

// onDownload handles a tile's download button
func (ui *RootUI) onDownload(rec model.ImageRecord) {
	ui.log.WithField("record_id", rec.ID).Info("Download requested")
	ui.controller.Download(ui.ctx, rec)
}

// onViewChanged receives controller updates from any goroutine
func (ui *RootUI) onViewChanged(view gallery.View) {
	fyne.Do(func() {
		ui.render(view)
	})
}

// render applies view to the widgets. Views older than the last one rendered
// are dropped. Must be called on the UI goroutine.
func (ui *RootUI) render(view gallery.View) {
	if view.Version != 0 && view.Version <= ui.lastVersion {
		return
	}
	ui.lastVersion = view.Version

	ui.renderStatus(view.Status)
	ui.filterBar.Update(view.Catalog.Categories, view.Catalog.Selected)
	ui.renderGrid(view.Catalog.Visible, view.Status)
	ui.renderNotice(view.Notice)
}

func (ui *RootUI) renderStatus(status model.UIStatus) {
	ui.status = status

	if status.ShowsGrid() {
		ui.spinner.Stop()
		ui.loadingView.Hide()
		ui.gridScroll.Show()
	} else {
		ui.gridScroll.Hide()
		ui.loadingView.Show()
		ui.spinner.Start()
	}

	if status == model.UIStatusRefreshing {
		ui.refreshBar.Show()
	} else {
		ui.refreshBar.Hide()
	}
	ui.pullHandle.SetEnabled(!status.IsBusy())
}

// renderGrid shows records in the two-column grid, reusing tile widgets
func (ui *RootUI) renderGrid(records []model.ImageRecord, status model.UIStatus) {
	side := TileSize(ui.viewportWidth())
	downloadText := ui.localization.GetText(KeyDownload)

	for len(ui.tiles) < len(records) {
		ui.tiles = append(ui.tiles, NewTile(ui.images, downloadText, ui.onDownload))
	}

	objects := make([]fyne.CanvasObject, len(records))
	for i, rec := range records {
		tile := ui.tiles[i]
		tile.SetSide(side)
		tile.SetRecord(rec, ui.directory.ImageURL(rec))
		objects[i] = tile
	}
	ui.grid.Objects = objects
	ui.grid.Refresh()

	if len(records) == 0 && status == model.UIStatusReady {
		ui.emptyLabel.Show()
	} else {
		ui.emptyLabel.Hide()
	}
}

func (ui *RootUI) viewportWidth() float32 {
	width := ui.window.Canvas().Size().Width
	if width <= 0 {
		return DefaultViewport
	}
	return width - 2*ui.mobile.GetMobileSpacing()
}

// renderNotice shows, replaces or hides the download notice dialog
func (ui *RootUI) renderNotice(notice model.DownloadNotice) {
	if !notice.Visible {
		ui.closeNoticeDialog()
		return
	}
	if ui.noticeDialog != nil && notice == ui.shownNotice {
		return
	}

	ui.closeNoticeDialog()

	gen := ui.noticeGen
	d := dialog.NewInformation(notice.Title, notice.Message, ui.window)
	d.SetDismissText(ui.localization.GetText(KeyOK))
	d.SetOnClosed(func() {
		// A dialog closed because it was replaced must not clear the new notice
		if gen != ui.noticeGen {
			return
		}
		ui.noticeDialog = nil
		ui.controller.DismissNotice()
	})
	ui.noticeDialog = d
	ui.shownNotice = notice
	d.Show()
}

func (ui *RootUI) closeNoticeDialog() {
	if ui.noticeDialog == nil {
		return
	}
	ui.noticeGen++
	d := ui.noticeDialog
	ui.noticeDialog = nil
	ui.shownNotice = model.DownloadNotice{}
	d.Hide()
}

// onTaskUpdate handles task updates from the download service
func (ui *RootUI) onTaskUpdate(task *model.DownloadTask) {
	ui.log.WithFields(logrus.Fields{
		"task_id": task.ID,
		"status":  task.Status,
	}).Debug("Task update received")

	if task.Status == model.TaskStatusDownloading {
		ui.showNotification(ui.localization.Format(KeyDownloading, task.GetDisplayTitle()), true)
		return
	}

	if task.Status.IsFinished() && !ui.hasActiveDownloads() {
		ui.hideNotification()
	}
}

func (ui *RootUI) hasActiveDownloads() bool {
	for _, task := range ui.downloadSvc.GetAllTasks() {
		if task.Status.IsActive() {
			return true
		}
	}
	return false
}

// showNotification displays a message in the notification panel.
// When spinning is true, a progress bar indicates background activity.
func (ui *RootUI) showNotification(message string, spinning bool) {
	if ui.notificationLabel == nil || ui.notificationContainer == nil || ui.notificationSpinner == nil {
		return
	}
	fyne.Do(func() {
		ui.notificationLabel.SetText(message)
		if spinning {
			ui.notificationSpinner.Show()
		} else {
			ui.notificationSpinner.Hide()
		}
		ui.notificationContainer.Show()
		ui.notificationContainer.Refresh()
	})
}

// hideNotification hides the notification panel.
func (ui *RootUI) hideNotification() {
	if ui.notificationContainer == nil || ui.notificationSpinner == nil {
		return
	}
	fyne.Do(func() {
		ui.notificationSpinner.Hide()
		ui.notificationContainer.Hide()
	})
}
