package imagecache

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/disintegration/imaging"
	"go.uber.org/zap/zaptest"
)

func solid(w, h int) image.Image {
	return imaging.New(w, h, color.NRGBA{R: 200, A: 255})
}

func pngBytes(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestCache_LRU(t *testing.T) {
	c := New(2, nil, 0, zaptest.NewLogger(t))
	c.Put("a", solid(1, 1))
	c.Put("b", solid(1, 1))
	if _, ok := c.Get("a"); !ok { // a becomes most recent
		t.Fatal("a missing")
	}
	c.Put("c", solid(1, 1))

	if _, ok := c.Get("b"); ok {
		t.Error("b should have been evicted")
	}
	for _, k := range []string{"a", "c"} {
		if _, ok := c.Get(k); !ok {
			t.Errorf("%s missing", k)
		}
	}
	if c.Len() != 2 {
		t.Errorf("Len() = %d", c.Len())
	}
}

func TestCache_PinnedNotEvicted(t *testing.T) {
	var calls atomic.Int32
	load := func(ctx context.Context, url string) (image.Image, error) {
		calls.Add(1)
		return solid(1, 1), nil
	}
	c := New(1, load, 0, zaptest.NewLogger(t))

	for _, url := range []string{"a", "b", "c"} {
		c.Request(url, nil)
		c.Wait()
	}
	if c.Len() != 3 {
		t.Fatalf("Len() = %d, want 3 pinned images", c.Len())
	}
	for _, url := range []string{"a", "b", "c"} {
		if !c.Request(url, nil) {
			t.Errorf("pinned %q was evicted", url)
		}
	}
	if calls.Load() != 3 {
		t.Errorf("loader called %d times, want 3", calls.Load())
	}

	c.Release()
	if c.Len() != 1 {
		t.Errorf("Len() after Release = %d, want 1", c.Len())
	}
	if _, ok := c.Get("c"); !ok {
		t.Error("most recently used image evicted")
	}
}

func TestCache_RequestCoalesces(t *testing.T) {
	var (
		calls   atomic.Int32
		release = make(chan struct{})
	)
	load := func(ctx context.Context, url string) (image.Image, error) {
		calls.Add(1)
		<-release
		return solid(4, 2), nil
	}
	c := New(4, load, 0, zaptest.NewLogger(t))

	var (
		mu   sync.Mutex
		done []string
	)
	cb := func(url string) {
		mu.Lock()
		done = append(done, url)
		mu.Unlock()
	}
	if c.Request("x", cb) {
		t.Fatal("Request() reported cached image")
	}
	if c.Request("x", cb) {
		t.Fatal("Request() reported cached image")
	}
	close(release)
	c.Wait()

	if calls.Load() != 1 {
		t.Errorf("loader called %d times, want 1", calls.Load())
	}
	if len(done) != 2 {
		t.Errorf("callbacks = %v, want 2 calls", done)
	}
	img, ok := c.Get("x")
	if !ok || img.Bounds().Dx() != 4 {
		t.Error("image not cached after load")
	}
	if !c.Request("x", cb) {
		t.Error("Request() for cached image should return true")
	}
}

func TestCache_FailureRemembered(t *testing.T) {
	var calls atomic.Int32
	boom := errors.New("boom")
	load := func(ctx context.Context, url string) (image.Image, error) {
		calls.Add(1)
		return nil, boom
	}
	c := New(4, load, 0, zaptest.NewLogger(t))

	called := false
	c.Request("bad", func(string) { called = true })
	c.Wait()
	if called {
		t.Error("callback called for failed load")
	}
	if !errors.Is(c.Failed("bad"), boom) {
		t.Errorf("Failed() = %v", c.Failed("bad"))
	}

	c.Request("bad", nil)
	c.Wait()
	if calls.Load() != 1 {
		t.Errorf("failed url retried, calls = %d", calls.Load())
	}

	c.Forget("bad")
	c.Request("bad", nil)
	c.Wait()
	if calls.Load() != 2 {
		t.Errorf("forgotten url not retried, calls = %d", calls.Load())
	}
}

func TestCache_NilSafe(t *testing.T) {
	var c *Cache
	if _, ok := c.Get("a"); ok {
		t.Error("nil cache returned image")
	}
	if c.Request("a", nil) {
		t.Error("nil cache reported cached image")
	}
	c.Release()
}

func TestDecode(t *testing.T) {
	img, err := Decode(pngBytes(t, solid(3, 5)))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if b := img.Bounds(); b.Dx() != 3 || b.Dy() != 5 {
		t.Errorf("bounds = %v", b)
	}
	if _, err := Decode([]byte("plain text is not an image")); !errors.Is(err, ErrNotImage) {
		t.Errorf("Decode(text) error = %v, want ErrNotImage", err)
	}
}

func TestNewLoader(t *testing.T) {
	data := pngBytes(t, solid(2, 2))
	path := filepath.Join(t.TempDir(), "photo.png")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/photo.png" {
			http.NotFound(w, r)
			return
		}
		w.Write(data)
	}))
	defer srv.Close()

	load := NewLoader(srv.Client(), 0)
	tests := []struct {
		name    string
		src     string
		wantErr bool
	}{
		{"path", path, false},
		{"file url", "file://" + filepath.ToSlash(path), false},
		{"http", srv.URL + "/photo.png", false},
		{"http missing", srv.URL + "/missing.png", true},
		{"scheme", "ftp://example.com/a.png", true},
		{"no file", filepath.Join(t.TempDir(), "none.png"), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := load(context.Background(), tt.src)
			if (err != nil) != tt.wantErr {
				t.Errorf("load(%q) error = %v, wantErr %v", tt.src, err, tt.wantErr)
			}
		})
	}

	small := NewLoader(srv.Client(), 8)
	if _, err := small(context.Background(), path); err == nil {
		t.Error("expected size limit error")
	}
}
