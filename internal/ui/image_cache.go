package ui

import (
	"sync"

	"fyne.io/fyne/v2"
	"github.com/sirupsen/logrus"

	"github.com/ytget/wallgrid/internal/logging"
)

// ImageLoader fetches the image at url
type ImageLoader func(url string) (fyne.Resource, error)

// ImageCache memoises loaded tile images per URL for the life of the window.
// Concurrent requests for the same URL share one load. Failures are not
// remembered so the next refresh retries them.
type ImageCache struct {
	mu       sync.Mutex
	load     ImageLoader
	entries  map[string]fyne.Resource
	inflight map[string][]func(fyne.Resource, error)
	log      *logrus.Entry
}

// NewImageCache creates a cache backed by load. A nil load fetches over HTTP.
func NewImageCache(load ImageLoader) *ImageCache {
	if load == nil {
		load = fyne.LoadResourceFromURLString
	}
	return &ImageCache{
		load:     load,
		entries:  make(map[string]fyne.Resource),
		inflight: make(map[string][]func(fyne.Resource, error)),
		log:      logging.NewLogger("images"),
	}
}

// Cached returns the resource for url if it has been loaded
func (c *ImageCache) Cached(url string) (fyne.Resource, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	res, ok := c.entries[url]
	return res, ok
}

// Load calls done with the resource for url. Cache hits call done
// synchronously; misses load on a new goroutine and call done from it.
func (c *ImageCache) Load(url string, done func(fyne.Resource, error)) {
	c.mu.Lock()
	if res, ok := c.entries[url]; ok {
		c.mu.Unlock()
		done(res, nil)
		return
	}
	waiters, loading := c.inflight[url]
	c.inflight[url] = append(waiters, done)
	c.mu.Unlock()

	if loading {
		return
	}

	go func() {
		res, err := c.load(url)

		c.mu.Lock()
		if err == nil {
			c.entries[url] = res
		}
		waiters := c.inflight[url]
		delete(c.inflight, url)
		c.mu.Unlock()

		if err != nil {
			c.log.WithError(err).WithField("url", url).Warn("Error loading image")
		}
		for _, fn := range waiters {
			fn(res, err)
		}
	}()
}
