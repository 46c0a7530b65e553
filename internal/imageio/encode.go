package imageio

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image/png"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/disintegration/imaging"

	"github.com/pixelsmith/raster-edit-mcp/internal/raster"
)

// DefaultJPEGQuality is used when a save request does not specify one.
const DefaultJPEGQuality = 90

// EncodePNGBase64 encodes a buffer as a base64 PNG string for protocol
// payloads.
//
// When maxDim is positive and either dimension exceeds it, the image is
// downscaled with Lanczos resampling to fit inside maxDim x maxDim while
// keeping its aspect ratio. The buffer itself is never modified; previews
// are purely a transport concern.
func EncodePNGBase64(buf *raster.Buffer, maxDim int) (string, error) {
	img := buf.ToNRGBA()
	if maxDim > 0 && (buf.Width > maxDim || buf.Height > maxDim) {
		img = imaging.Fit(img, maxDim, maxDim, imaging.Lanczos)
	}

	var out bytes.Buffer
	if err := png.Encode(&out, img); err != nil {
		return "", fmt.Errorf("failed to encode png: %w", err)
	}
	return base64.StdEncoding.EncodeToString(out.Bytes()), nil
}

// Save writes a buffer to disk in the named format.
//
// Formats are "png", "jpeg" (or "jpg"), and "bmp". The JPEG quality applies
// only to JPEG output; pass 0 for DefaultJPEGQuality. JPEG and BMP discard
// the alpha channel, which is a property of those formats, not of the
// buffer.
func Save(path string, buf *raster.Buffer, format string, jpegQuality int) error {
	if jpegQuality <= 0 {
		jpegQuality = DefaultJPEGQuality
	}

	var encoder imgio.Encoder
	switch format {
	case "png":
		encoder = imgio.PNGEncoder()
	case "jpeg", "jpg":
		encoder = imgio.JPEGEncoder(jpegQuality)
	case "bmp":
		encoder = imgio.BMPEncoder()
	default:
		return fmt.Errorf("unsupported save format %q (want png, jpeg, or bmp)", format)
	}

	if err := imgio.Save(path, buf.ToNRGBA(), encoder); err != nil {
		return fmt.Errorf("failed to save image: %w", err)
	}
	return nil
}
