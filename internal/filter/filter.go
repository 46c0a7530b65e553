package filter

import (
	"fmt"

	"github.com/pixelsmith/raster-edit-mcp/internal/raster"
)

// Kind identifies one of the supported pixel transforms.
type Kind string

const (
	// None returns the source unchanged (as a clone).
	None Kind = "none"
	// Grayscale replaces each pixel with its BT.601 luminance.
	Grayscale Kind = "grayscale"
	// Brightness shifts every color channel by a constant offset.
	Brightness Kind = "brightness"
	// Contrast scales every color channel around the 128 midpoint.
	Contrast Kind = "contrast"
	// BrightnessContrast applies both adjustments in one pass.
	BrightnessContrast Kind = "brightness_contrast"
	// GaussianBlur approximates a Gaussian blur with repeated box blurs.
	GaussianBlur Kind = "gaussian_blur"
	// EdgeDetection produces a Sobel gradient-magnitude image.
	EdgeDetection Kind = "edge_detection"
	// Sepia applies the classic sepia color matrix.
	Sepia Kind = "sepia"
)

// Params carries the adjustable inputs for the parameterized filters.
// Filters that take no parameters ignore it.
type Params struct {
	// Brightness offset in the range -100 to 100. 0 is neutral.
	Brightness float64 `json:"brightness"`

	// Contrast adjustment in the range -100 to 100. 0 is neutral.
	Contrast float64 `json:"contrast"`

	// BlurRadius is the box blur window half-width, 1 to 10.
	// Values <= 0 make the blur a no-op rather than an error.
	BlurRadius int `json:"blur_radius"`
}

// transforms maps each filter kind to its implementation. Unlisted kinds
// fall back to the identity transform in Apply.
var transforms = map[Kind]func(*raster.Buffer, Params) *raster.Buffer{
	None:               identity,
	Grayscale:          grayscale,
	Brightness:         brightness,
	Contrast:           contrast,
	BrightnessContrast: brightnessContrast,
	GaussianBlur:       gaussianBlur,
	EdgeDetection:      edgeDetect,
	Sepia:              sepia,
}

// Apply runs the named transform over src and returns a new buffer.
//
// The source buffer is never modified. Unrecognized kinds degrade to the
// identity transform, matching the behavior of None. The only error is a
// source buffer that violates the width*height*4 layout invariant, reported
// as raster.ErrInvalidDimensions; no partial result is produced in that case.
func Apply(src *raster.Buffer, kind Kind, p Params) (*raster.Buffer, error) {
	if len(src.Pix) != src.Width*src.Height*raster.BytesPerPixel {
		return nil, fmt.Errorf("source buffer %dx%d with %d bytes: %w",
			src.Width, src.Height, len(src.Pix), raster.ErrInvalidDimensions)
	}

	fn, ok := transforms[kind]
	if !ok {
		fn = identity
	}
	return fn(src, p), nil
}

// Kinds returns every registered filter kind. Order is unspecified.
func Kinds() []Kind {
	kinds := make([]Kind, 0, len(transforms))
	for k := range transforms {
		kinds = append(kinds, k)
	}
	return kinds
}

func identity(src *raster.Buffer, _ Params) *raster.Buffer {
	return src.Clone()
}

// clamp8 constrains an integer channel value to the displayable 0-255 range.
func clamp8(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
