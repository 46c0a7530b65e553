package imageio

import (
	"fmt"
	_ "image/gif" // Register GIF format decoder; imgio covers PNG/JPEG/BMP
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/anthonynsimon/bild/imgio"

	"github.com/pixelsmith/raster-edit-mcp/internal/raster"
)

// Cache provides thread-safe caching of decoded raster buffers keyed by file
// path, so repeated loads of the same file skip disk I/O and decoding.
//
// Cached buffers are shared read-only values; callers clone before any
// mutation (the session layer already does). Entries stay in memory until
// Evict or Clear, so long-running processes handling many files should evict
// what they no longer need.
type Cache struct {
	mu      sync.RWMutex
	buffers map[string]*raster.Buffer
}

// NewCache creates an empty cache ready for concurrent use.
func NewCache() *Cache {
	return &Cache{
		buffers: make(map[string]*raster.Buffer),
	}
}

// Load returns the buffer for path, decoding from disk on a cache miss.
//
// Supported formats are PNG, JPEG, GIF, and BMP. The cache key is the exact
// path string, so relative and absolute paths to the same file produce
// separate entries.
func (c *Cache) Load(path string) (*raster.Buffer, error) {
	c.mu.RLock()
	if buf, ok := c.buffers[path]; ok {
		c.mu.RUnlock()
		return buf, nil
	}
	c.mu.RUnlock()

	img, err := imgio.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	buf := raster.FromImage(img)

	c.mu.Lock()
	c.buffers[path] = buf
	c.mu.Unlock()

	return buf, nil
}

// Evict removes one cached entry. Unknown paths are ignored.
func (c *Cache) Evict(path string) {
	c.mu.Lock()
	delete(c.buffers, path)
	c.mu.Unlock()
}

// Clear drops every cached buffer.
func (c *Cache) Clear() {
	c.mu.Lock()
	c.buffers = make(map[string]*raster.Buffer)
	c.mu.Unlock()
}

// Info describes a loaded image file.
type Info struct {
	// Width is the image width in pixels.
	Width int `json:"width"`

	// Height is the image height in pixels.
	Height int `json:"height"`

	// Format is derived from the file extension: "png", "jpeg", "gif",
	// "bmp", or "unknown".
	Format string `json:"format"`

	// FileSizeBytes is the on-disk size of the image file.
	FileSizeBytes int64 `json:"file_size_bytes"`
}

// LoadInfo loads an image (through the cache) and reports its metadata.
func LoadInfo(cache *Cache, path string) (*Info, error) {
	buf, err := cache.Load(path)
	if err != nil {
		return nil, err
	}

	stat, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	return &Info{
		Width:         buf.Width,
		Height:        buf.Height,
		Format:        formatForPath(path),
		FileSizeBytes: stat.Size(),
	}, nil
}

// formatForPath maps a file extension to a format name.
func formatForPath(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return "png"
	case ".jpg", ".jpeg":
		return "jpeg"
	case ".gif":
		return "gif"
	case ".bmp":
		return "bmp"
	default:
		return "unknown"
	}
}
