package imagecache

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/h2non/filetype"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// ErrNotImage is returned when loaded content is not a supported image.
var ErrNotImage = errors.New("not an image")

// NewLoader returns Loader reading local files (plain paths and file://
// URLs) and http(s) URLs. Content larger than maxBytes is rejected when
// maxBytes is positive.
func NewLoader(client *http.Client, maxBytes int64) Loader {
	if client == nil {
		client = http.DefaultClient
	}
	return func(ctx context.Context, src string) (image.Image, error) {
		data, err := read(ctx, client, src, maxBytes)
		if err != nil {
			return nil, err
		}
		return Decode(data)
	}
}

// Decode sniffs content type and decodes image applying EXIF orientation.
func Decode(data []byte) (image.Image, error) {
	kind, err := filetype.Match(data)
	if err != nil {
		return nil, fmt.Errorf("unable to detect content type: %w", err)
	}
	if kind == filetype.Unknown || kind.MIME.Type != "image" {
		return nil, fmt.Errorf("%w: %s", ErrNotImage, kind.MIME.Value)
	}
	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("unable to decode %s image: %w", kind.Extension, err)
	}
	return img, nil
}

func read(ctx context.Context, client *http.Client, src string, maxBytes int64) ([]byte, error) {
	u, err := url.Parse(src)
	if err != nil || len(u.Scheme) <= 1 {
		// plain path, including windows drive letters
		return readFile(src, maxBytes)
	}
	switch strings.ToLower(u.Scheme) {
	case "file":
		return readFile(u.Path, maxBytes)
	case "http", "https":
		return readHTTP(ctx, client, u.String(), maxBytes)
	default:
		return nil, fmt.Errorf("unsupported image source scheme %q", u.Scheme)
	}
}

func readFile(path string, maxBytes int64) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("unable to open image: %w", err)
	}
	defer f.Close()
	return readLimited(f, maxBytes)
}

func readHTTP(ctx context.Context, client *http.Client, src string, maxBytes int64) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, src, nil)
	if err != nil {
		return nil, fmt.Errorf("unable to create request: %w", err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("unable to fetch image: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unable to fetch image: %s", resp.Status)
	}
	return readLimited(resp.Body, maxBytes)
}

func readLimited(r io.Reader, maxBytes int64) ([]byte, error) {
	if maxBytes <= 0 {
		return io.ReadAll(r)
	}
	data, err := io.ReadAll(io.LimitReader(r, maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("unable to read image: %w", err)
	}
	if int64(len(data)) > maxBytes {
		return nil, fmt.Errorf("image is larger than %d bytes", maxBytes)
	}
	return data, nil
}
