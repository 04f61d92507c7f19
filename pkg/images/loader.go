package images

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"strings"
	"sync"
)

// ImageCache caches loaded images
type ImageCache struct {
	cache map[string]image.Image
	mu    sync.RWMutex
}

// Global image cache
var globalCache = &ImageCache{
	cache: make(map[string]image.Image),
}

// IsDataURI reports whether the source is an inline data: URI rather
// than a filesystem path.
func IsDataURI(src string) bool {
	return strings.HasPrefix(src, "data:")
}

// LoadImageFromDataURI decodes an image from a base64 data URI.
func LoadImageFromDataURI(uri string) (image.Image, error) {
	comma := strings.IndexByte(uri, ',')
	if !IsDataURI(uri) || comma < 0 {
		return nil, fmt.Errorf("malformed data URI")
	}
	data, err := base64.StdEncoding.DecodeString(uri[comma+1:])
	if err != nil {
		return nil, fmt.Errorf("decoding data URI: %w", err)
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decoding data URI image: %w", err)
	}
	return img, nil
}

// LoadImage loads an image from a data URI or the filesystem. Loaded
// images are cached; a float whose shape image fails to load here is
// simply registered without a shape, and a later reflow retries.
func LoadImage(src string) (image.Image, error) {
	// Check cache first
	globalCache.mu.RLock()
	if img, ok := globalCache.cache[src]; ok {
		globalCache.mu.RUnlock()
		return img, nil
	}
	globalCache.mu.RUnlock()

	var img image.Image
	if IsDataURI(src) {
		var err error
		img, err = LoadImageFromDataURI(src)
		if err != nil {
			return nil, err
		}
	} else {
		file, err := os.Open(src)
		if err != nil {
			return nil, err
		}
		defer file.Close()

		img, _, err = image.Decode(file)
		if err != nil {
			return nil, err
		}
	}

	// Cache the image
	globalCache.mu.Lock()
	globalCache.cache[src] = img
	globalCache.mu.Unlock()

	return img, nil
}

// GetImageDimensions returns the width and height of an image
func GetImageDimensions(src string) (width, height int, err error) {
	img, err := LoadImage(src)
	if err != nil {
		return 0, 0, err
	}

	bounds := img.Bounds()
	return bounds.Dx(), bounds.Dy(), nil
}
