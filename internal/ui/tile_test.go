package ui

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/theme"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/wallgrid/internal/model"
)

const (
	waitFor = 2 * time.Second
	tick    = 5 * time.Millisecond
)

func TestTileSize(t *testing.T) {
	tests := []struct {
		width float32
		want  float32
	}{
		{400, 190},
		{1080, 530},
		{220, 100},
		{100, TileMinSide},
		{0, TileMinSide},
	}

	for _, tt := range tests {
		if got := TileSize(tt.width); got != tt.want {
			t.Errorf("TileSize(%v) = %v, want %v", tt.width, got, tt.want)
		}
	}
}

func staticLoader(calls *atomic.Int32) ImageLoader {
	return func(url string) (fyne.Resource, error) {
		calls.Add(1)
		return fyne.NewStaticResource(url, theme.FileImageIcon().Content()), nil
	}
}

func TestTile_SetRecord(t *testing.T) {
	test.NewTempApp(t)

	var calls atomic.Int32
	tile := NewTile(NewImageCache(staticLoader(&calls)), "Download", nil)
	rec := model.ImageRecord{ID: "1", Title: "Sunset", Category: "Nature", URL: "/i/1.jpg"}

	tile.SetRecord(rec, "https://walls.example.com/i/1.jpg")

	assert.Equal(t, "Sunset", tile.titleLabel.Text)
	assert.Equal(t, "Nature", tile.catLabel.Text)
	assert.Equal(t, rec, tile.record)
	assert.Eventually(t, func() bool {
		var name string
		fyne.DoAndWait(func() { name = tile.image.Resource.Name() })
		return name == "https://walls.example.com/i/1.jpg"
	}, waitFor, tick)

	// Same image again does not reload
	tile.SetRecord(rec, "https://walls.example.com/i/1.jpg")
	assert.Equal(t, int32(1), calls.Load())
}

func TestTile_LoadFailureShowsBrokenImage(t *testing.T) {
	test.NewTempApp(t)

	cache := NewImageCache(func(string) (fyne.Resource, error) {
		return nil, errors.New("404")
	})
	tile := NewTile(cache, "Download", nil)
	tile.SetRecord(model.ImageRecord{ID: "1", Title: "Gone"}, "https://walls.example.com/missing.jpg")

	assert.Eventually(t, func() bool {
		var res fyne.Resource
		fyne.DoAndWait(func() { res = tile.image.Resource })
		return res != nil && res.Name() == theme.BrokenImageIcon().Name()
	}, waitFor, tick)
}

func TestTile_DownloadButton(t *testing.T) {
	test.NewTempApp(t)

	var got []model.ImageRecord
	tile := NewTile(nil, "Download", func(rec model.ImageRecord) {
		got = append(got, rec)
	})
	rec := model.ImageRecord{ID: "2", Title: "City", Category: "Urban", URL: "/i/2.jpg"}
	tile.SetRecord(rec, "")

	test.Tap(tile.downloadBtn)
	require.Len(t, got, 1)
	assert.Equal(t, rec, got[0])

	tile.SetDownloadText("Скачать")
	assert.Equal(t, "Скачать", tile.downloadBtn.Text)
}

func TestTile_SetSide(t *testing.T) {
	test.NewTempApp(t)

	tile := NewTile(nil, "Download", nil)
	tile.SetSide(150)
	assert.Equal(t, fyne.NewSize(150, 150), tile.image.MinSize())
}

func TestImageCache_SharesLoads(t *testing.T) {
	var calls atomic.Int32
	release := make(chan struct{})
	cache := NewImageCache(func(url string) (fyne.Resource, error) {
		calls.Add(1)
		<-release
		return fyne.NewStaticResource(url, nil), nil
	})

	var wg sync.WaitGroup
	wg.Add(3)
	for i := 0; i < 3; i++ {
		cache.Load("https://walls.example.com/i/1.jpg", func(res fyne.Resource, err error) {
			defer wg.Done()
			assert.NoError(t, err)
			assert.Equal(t, "https://walls.example.com/i/1.jpg", res.Name())
		})
	}
	close(release)
	wg.Wait()

	assert.Equal(t, int32(1), calls.Load())

	res, ok := cache.Cached("https://walls.example.com/i/1.jpg")
	assert.True(t, ok)
	assert.NotNil(t, res)
}

func TestImageCache_DoesNotRememberFailures(t *testing.T) {
	var calls atomic.Int32
	cache := NewImageCache(func(string) (fyne.Resource, error) {
		calls.Add(1)
		return nil, errors.New("timeout")
	})

	for i := 0; i < 2; i++ {
		done := make(chan error, 1)
		cache.Load("https://walls.example.com/i/1.jpg", func(_ fyne.Resource, err error) { done <- err })
		assert.Error(t, <-done)
	}

	assert.Equal(t, int32(2), calls.Load())
	_, ok := cache.Cached("https://walls.example.com/i/1.jpg")
	assert.False(t, ok)
}

func TestTile_RetriesFailedImage(t *testing.T) {
	test.NewTempApp(t)

	var calls atomic.Int32
	cache := NewImageCache(func(url string) (fyne.Resource, error) {
		if calls.Add(1) == 1 {
			return nil, errors.New("timeout")
		}
		return fyne.NewStaticResource(url, theme.FileImageIcon().Content()), nil
	})
	tile := NewTile(cache, "Download", nil)
	rec := model.ImageRecord{ID: "1", Title: "Sunset", URL: "/i/1.jpg"}
	imageURL := "https://walls.example.com/i/1.jpg"

	fyne.DoAndWait(func() { tile.SetRecord(rec, imageURL) })
	assert.Eventually(t, func() bool {
		return onUI(func() string { return tile.image.Resource.Name() }) == theme.BrokenImageIcon().Name()
	}, waitFor, tick)

	// A refresh hands the tile the same record again
	fyne.DoAndWait(func() { tile.SetRecord(rec, imageURL) })
	assert.Eventually(t, func() bool {
		return onUI(func() string { return tile.image.Resource.Name() }) == imageURL
	}, waitFor, tick)
	assert.Equal(t, int32(2), calls.Load())
}

func TestTile_CachedImageShowsImmediately(t *testing.T) {
	test.NewTempApp(t)

	var calls atomic.Int32
	cache := NewImageCache(staticLoader(&calls))
	imageURL := "https://walls.example.com/i/1.jpg"

	done := make(chan struct{})
	cache.Load(imageURL, func(fyne.Resource, error) { close(done) })
	<-done

	tile := NewTile(cache, "Download", nil)
	fyne.DoAndWait(func() { tile.SetRecord(model.ImageRecord{ID: "1"}, imageURL) })

	assert.Equal(t, imageURL, onUI(func() string { return tile.image.Resource.Name() }))
	assert.Equal(t, int32(1), calls.Load())
}
