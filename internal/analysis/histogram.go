package analysis

import (
	"fmt"

	"github.com/pixelsmith/raster-edit-mcp/internal/raster"
)

// Bins is the number of intensity buckets per channel: one per 8-bit value.
const Bins = 256

// Histogram holds per-channel intensity frequency counts for one image.
//
// Each array has exactly 256 bins; bin i counts the pixels whose channel
// value is i. Alpha is not counted. MaxValue is the largest count across all
// 768 bins and exists purely so a renderer can normalize bar heights. A
// Histogram is never modified after Compute returns it.
type Histogram struct {
	// Red bins: Red[v] is the number of pixels with red value v.
	Red [Bins]int `json:"red"`

	// Green bins.
	Green [Bins]int `json:"green"`

	// Blue bins.
	Blue [Bins]int `json:"blue"`

	// MaxValue is the maximum count over all bins of all three channels.
	MaxValue int `json:"max_value"`
}

// Compute counts channel intensities over every pixel of the buffer.
//
// Runs in one pass over the pixel bytes, O(width*height). Returns
// raster.ErrInvalidDimensions if the buffer violates its layout invariant;
// callers on the edit path degrade that to "no histogram" rather than
// failing the edit.
func Compute(buf *raster.Buffer) (*Histogram, error) {
	if len(buf.Pix) != buf.Width*buf.Height*raster.BytesPerPixel {
		return nil, fmt.Errorf("histogram source %dx%d with %d bytes: %w",
			buf.Width, buf.Height, len(buf.Pix), raster.ErrInvalidDimensions)
	}

	h := &Histogram{}
	for i := 0; i < len(buf.Pix); i += raster.BytesPerPixel {
		h.Blue[buf.Pix[i]]++
		h.Green[buf.Pix[i+1]]++
		h.Red[buf.Pix[i+2]]++
	}

	for i := 0; i < Bins; i++ {
		if h.Red[i] > h.MaxValue {
			h.MaxValue = h.Red[i]
		}
		if h.Green[i] > h.MaxValue {
			h.MaxValue = h.Green[i]
		}
		if h.Blue[i] > h.MaxValue {
			h.MaxValue = h.Blue[i]
		}
	}
	return h, nil
}
