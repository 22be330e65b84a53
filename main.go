package main

import (
	"context"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/sirupsen/logrus"

	"github.com/ytget/wallgrid/internal/catalog"
	"github.com/ytget/wallgrid/internal/config"
	"github.com/ytget/wallgrid/internal/download"
	"github.com/ytget/wallgrid/internal/gallery"
	"github.com/ytget/wallgrid/internal/logging"
	"github.com/ytget/wallgrid/internal/platform"
	"github.com/ytget/wallgrid/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ytget.wallgrid"
	AppName = "Wallgrid"
)

func main() {
	log := logging.NewLogger("main")
	log.WithField("version", version).Infof("%s starting", AppName)

	env := config.LoadEnv()

	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewGalleryTheme())

	myWindow := myApp.NewWindow(AppName)
	myWindow.Resize(fyne.NewSize(ui.WindowWidth, ui.WindowHeight))

	settings := config.NewSettings(myApp, env)
	downloadsDir := settings.GetDownloadDirectory()
	if err := platform.CreateDirectoryIfNotExists(downloadsDir); err != nil {
		log.WithError(err).WithField("dir", downloadsDir).Warn("Failed to ensure downloads dir")
	}

	log.WithFields(logrus.Fields{
		"base_url":     settings.GetBaseURL(),
		"download_dir": downloadsDir,
	}).Debug("Configuration loaded")

	directory := catalog.NewClient(settings.GetBaseURL(), nil)
	downloadSvc := download.NewService(downloadsDir, nil)
	controller := gallery.NewController(directory, downloadSvc)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	myApp.Lifecycle().SetOnStopped(cancel)

	ui.NewRootUI(ctx, myWindow, controller, directory, downloadSvc, settings)

	myWindow.ShowAndRun()
}
