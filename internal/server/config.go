package server

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds the server configuration, loaded from environment variables.
type Config struct {
	// DebugMode enables verbose request logging to stderr.
	DebugMode bool

	// PreviewMaxDim caps the longest side of base64 image payloads in tool
	// responses. 0 disables downscaling.
	PreviewMaxDim int

	// JPEGQuality is the quality used when saving JPEG output, 1-100.
	JPEGQuality int
}

// LoadConfig reads configuration from the environment, applying defaults:
//
//	RASTER_MCP_LOG_LEVEL    "debug" enables debug logging
//	RASTER_MCP_PREVIEW_MAX  longest preview side in pixels (default 1024, 0 = off)
//	RASTER_MCP_JPEG_QUALITY JPEG save quality (default 90)
func LoadConfig() (*Config, error) {
	cfg := &Config{
		PreviewMaxDim: 1024,
		JPEGQuality:   90,
	}

	if os.Getenv("RASTER_MCP_LOG_LEVEL") == "debug" {
		cfg.DebugMode = true
	}

	if v := os.Getenv("RASTER_MCP_PREVIEW_MAX"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return nil, fmt.Errorf("invalid RASTER_MCP_PREVIEW_MAX %q", v)
		}
		cfg.PreviewMaxDim = n
	}

	if v := os.Getenv("RASTER_MCP_JPEG_QUALITY"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > 100 {
			return nil, fmt.Errorf("invalid RASTER_MCP_JPEG_QUALITY %q", v)
		}
		cfg.JPEGQuality = n
	}

	return cfg, nil
}
