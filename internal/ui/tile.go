package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/wallgrid/internal/model"
)

// TileSize returns the side of a square tile for the given viewport width:
// half the width minus the gutter, never below TileMinSide.
func TileSize(viewportWidth float32) float32 {
	side := viewportWidth/GridColumns - TileGutter
	if side < TileMinSide {
		return TileMinSide
	}
	return side
}

// Tile shows one wallpaper with its title, category and a download button
type Tile struct {
	widget.BaseWidget

	record   model.ImageRecord
	imageURL string
	side     float32
	images   *ImageCache

	// UI components
	image       *canvas.Image
	titleLabel  *widget.Label
	catLabel    *widget.Label
	downloadBtn *widget.Button

	onDownload func(model.ImageRecord)
}

// NewTile creates an empty tile. onDownload receives the tile's record.
func NewTile(images *ImageCache, downloadText string, onDownload func(model.ImageRecord)) *Tile {
	t := &Tile{
		images:     images,
		side:       TileSize(DefaultViewport),
		onDownload: onDownload,
	}
	t.ExtendBaseWidget(t)
	t.createUI(downloadText)
	return t
}

func (t *Tile) createUI(downloadText string) {
	t.image = canvas.NewImageFromResource(theme.FileImageIcon())
	t.image.FillMode = canvas.ImageFillContain
	t.image.SetMinSize(fyne.NewSize(t.side, t.side))

	t.titleLabel = widget.NewLabel("")
	t.titleLabel.TextStyle = fyne.TextStyle{Bold: true}
	t.titleLabel.Truncation = fyne.TextTruncateEllipsis

	t.catLabel = widget.NewLabel("")
	t.catLabel.Importance = widget.LowImportance
	t.catLabel.Truncation = fyne.TextTruncateEllipsis

	t.downloadBtn = widget.NewButtonWithIcon(downloadText, theme.DownloadIcon(), func() {
		if t.onDownload != nil {
			t.onDownload(t.record)
		}
	})
	t.downloadBtn.Importance = widget.HighImportance
}

// SetRecord shows rec, loading its image from imageURL. Must be called on the
// UI goroutine.
func (t *Tile) SetRecord(rec model.ImageRecord, imageURL string) {
	t.record = rec
	t.titleLabel.SetText(rec.Title)
	t.catLabel.SetText(rec.Category)

	if imageURL == t.imageURL {
		return
	}
	t.imageURL = imageURL

	if t.images == nil || imageURL == "" {
		t.showImage(theme.FileImageIcon())
		return
	}
	if res, ok := t.images.Cached(imageURL); ok {
		t.showImage(res)
		return
	}

	t.showImage(theme.FileImageIcon())
	t.images.Load(imageURL, func(res fyne.Resource, err error) {
		fyne.Do(func() {
			// The tile may have been recycled for another record meanwhile
			if t.imageURL != imageURL {
				return
			}
			if err != nil {
				// Forget the URL so the next SetRecord retries
				t.imageURL = ""
				t.showImage(theme.BrokenImageIcon())
				return
			}
			t.showImage(res)
		})
	})
}

func (t *Tile) showImage(res fyne.Resource) {
	t.image.Resource = res
	t.image.Image = nil
	t.image.File = ""
	t.image.Refresh()
}

// SetSide resizes the image area to a side x side square
func (t *Tile) SetSide(side float32) {
	if side == t.side {
		return
	}
	t.side = side
	t.image.SetMinSize(fyne.NewSize(side, side))
	t.Refresh()
}

// SetDownloadText updates the button caption after a language change
func (t *Tile) SetDownloadText(text string) {
	t.downloadBtn.SetText(text)
}

// CreateRenderer implements fyne.Widget
func (t *Tile) CreateRenderer() fyne.WidgetRenderer {
	caption := container.NewVBox(t.titleLabel, t.catLabel, t.downloadBtn)
	card := container.NewBorder(nil, caption, nil, nil, t.image)
	return widget.NewSimpleRenderer(card)
}
