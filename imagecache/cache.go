// Package imagecache keeps decoded images used by collage slots and loads
// missing ones in background.
package imagecache

import (
	"context"
	"image"
	"sync"
	"time"

	"github.com/elliotchance/orderedmap/v3"
	"go.uber.org/zap"
)

// Loader fetches and decodes image referenced by url.
type Loader func(ctx context.Context, url string) (image.Image, error)

// Cache is bounded LRU of decoded images keyed by source URL. Loads are
// started on request, one per URL, and every waiting callback is invoked
// when image is stored. Failed URLs are remembered until forgotten.
//
// Requested URLs stay pinned until Release: pinned images are never
// evicted, so the cache may hold more than capacity while they are in use.
type Cache struct {
	mu       sync.Mutex
	capacity int
	entries  *orderedmap.OrderedMap[string, image.Image] // front is least recently used
	failed   map[string]error
	pending  map[string][]func(string)
	pinned   map[string]struct{}

	load    Loader
	timeout time.Duration
	log     *zap.Logger
	wg      sync.WaitGroup
}

// New creates cache holding at most capacity images (at least one).
func New(capacity int, load Loader, timeout time.Duration, log *zap.Logger) *Cache {
	if log == nil {
		log = zap.NewNop()
	}
	return &Cache{
		capacity: max(capacity, 1),
		entries:  orderedmap.NewOrderedMap[string, image.Image](),
		failed:   make(map[string]error),
		pending:  make(map[string][]func(string)),
		pinned:   make(map[string]struct{}),
		load:     load,
		timeout:  timeout,
		log:      log.Named("images"),
	}
}

// Get returns cached image marking it as recently used.
func (c *Cache) Get(url string) (image.Image, bool) {
	if c == nil || len(url) == 0 {
		return nil, false
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	img, ok := c.entries.Get(url)
	if ok {
		c.entries.Delete(url)
		c.entries.Set(url, img)
	}
	return img, ok
}

// Put stores image evicting least recently used ones over capacity.
func (c *Cache) Put(url string, img image.Image) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.put(url, img)
}

func (c *Cache) put(url string, img image.Image) {
	c.entries.Delete(url)
	c.entries.Set(url, img)
	delete(c.failed, url)
	c.trim()
}

// trim evicts least recently used unpinned images over capacity.
func (c *Cache) trim() {
	var victims []string
	over := c.entries.Len() - c.capacity
	for el := c.entries.Front(); el != nil && len(victims) < over; el = el.Next() {
		if _, ok := c.pinned[el.Key]; !ok {
			victims = append(victims, el.Key)
		}
	}
	for _, url := range victims {
		c.log.Debug("Evicting image", zap.String("url", url))
		c.entries.Delete(url)
	}
	if c.entries.Len() > c.capacity {
		c.log.Debug("Image cache over capacity", zap.Int("images", c.entries.Len()), zap.Int("pinned", len(c.pinned)))
	}
}

// Release unpins all requested images and evicts the ones over capacity.
func (c *Cache) Release() {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	clear(c.pinned)
	c.trim()
}

// Len returns number of cached images.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.entries.Len()
}

// Failed returns error of the last load attempt for url, if it failed.
func (c *Cache) Failed(url string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.failed[url]
}

// Request pins url and makes sure image is being loaded. It returns true
// when image is already cached and onLoaded will not be called. Otherwise
// onLoaded (if not nil) is called from loading goroutine once image is
// available.
// Concurrent requests for the same url share a single load.
func (c *Cache) Request(url string, onLoaded func(url string)) bool {
	if c == nil || len(url) == 0 {
		return false
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	c.pinned[url] = struct{}{}
	if _, ok := c.entries.Get(url); ok {
		return true
	}
	if _, ok := c.failed[url]; ok {
		return false
	}
	waiters, loading := c.pending[url]
	if onLoaded != nil {
		waiters = append(waiters, onLoaded)
	}
	c.pending[url] = waiters
	if loading || c.load == nil {
		return false
	}

	c.wg.Add(1)
	go c.fetch(url)
	return false
}

func (c *Cache) fetch(url string) {
	defer c.wg.Done()

	ctx := context.Background()
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	start := time.Now()
	img, err := c.load(ctx, url)

	c.mu.Lock()
	waiters := c.pending[url]
	delete(c.pending, url)
	if err != nil {
		c.failed[url] = err
		c.mu.Unlock()
		c.log.Warn("Unable to load image", zap.String("url", url), zap.Error(err))
		return
	}
	c.put(url, img)
	c.mu.Unlock()

	b := img.Bounds()
	c.log.Debug("Image loaded", zap.String("url", url), zap.Int("width", b.Dx()), zap.Int("height", b.Dy()), zap.Duration("elapsed", time.Since(start)))
	for _, fn := range waiters {
		fn(url)
	}
}

// Forget drops cached image and failure record so the next request loads
// url again.
func (c *Cache) Forget(url string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries.Delete(url)
	delete(c.failed, url)
	delete(c.pinned, url)
}

// Wait blocks until all started loads are finished.
func (c *Cache) Wait() {
	c.wg.Wait()
}
