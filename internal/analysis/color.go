package analysis

import (
	"fmt"
	"sort"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/pixelsmith/raster-edit-mcp/internal/raster"
)

// RGBColor represents an RGB color with 8-bit components.
type RGBColor struct {
	R uint8 `json:"r"` // Red component (0-255)
	G uint8 `json:"g"` // Green component (0-255)
	B uint8 `json:"b"` // Blue component (0-255)
}

// RGBAColor represents an RGBA color with 8-bit components including alpha.
// Alpha 0 is fully transparent, 255 fully opaque.
type RGBAColor struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
	A uint8 `json:"a"`
}

// HSLColor represents a color in HSL space, which is often more intuitive
// for describing edits than raw RGB.
type HSLColor struct {
	H int `json:"h"` // Hue: 0-360 degrees (0=red, 120=green, 240=blue)
	S int `json:"s"` // Saturation: 0-100 percent
	L int `json:"l"` // Lightness: 0-100 percent
}

// ColorResult contains one color value in several representations:
// hex for compactness, RGB/RGBA for exact bytes, HSL for perceptual work.
type ColorResult struct {
	Hex  string    `json:"hex"`  // "#rrggbb", alpha excluded
	RGB  RGBColor  `json:"rgb"`  // RGB components
	RGBA RGBAColor `json:"rgba"` // RGBA components with alpha
	HSL  HSLColor  `json:"hsl"`  // HSL representation
}

// SampleColor returns the color at pixel (x, y) of a buffer.
//
// Coordinates are 0-based from the top-left corner. Returns an error if the
// coordinates fall outside the buffer.
func SampleColor(buf *raster.Buffer, x, y int) (*ColorResult, error) {
	if x < 0 || x >= buf.Width || y < 0 || y >= buf.Height {
		return nil, fmt.Errorf("coordinates (%d,%d) outside %dx%d image", x, y, buf.Width, buf.Height)
	}

	c := buf.At(x, y)
	return &ColorResult{
		Hex:  hexString(c.R, c.G, c.B),
		RGB:  RGBColor{R: c.R, G: c.G, B: c.B},
		RGBA: RGBAColor{R: c.R, G: c.G, B: c.B, A: c.A},
		HSL:  rgbToHSL(c.R, c.G, c.B),
	}, nil
}

// ColorFrequency pairs a quantized color with how often it occurs.
type ColorFrequency struct {
	Hex        string   `json:"hex"`        // Hex color "#rrggbb" (quantized)
	Percentage float64  `json:"percentage"` // Share of pixels, 0-100
	RGB        RGBColor `json:"rgb"`        // RGB components (quantized)
}

// DominantColorsResult lists the most common colors, most frequent first.
type DominantColorsResult struct {
	Colors []ColorFrequency `json:"colors"`
}

// DominantColors extracts the count most frequent colors in the buffer.
//
// To group near-identical shades, channels are quantized to multiples of 16
// before counting ((v/16)*16), so colors within one quantization step of each
// other land in the same bucket. Fewer than count entries come back when the
// image has fewer distinct quantized colors. An empty buffer yields an empty
// list.
func DominantColors(buf *raster.Buffer, count int) (*DominantColorsResult, error) {
	counts := make(map[RGBColor]int)
	total := 0

	for i := 0; i < len(buf.Pix); i += raster.BytesPerPixel {
		q := RGBColor{
			R: buf.Pix[i+2] / 16 * 16,
			G: buf.Pix[i+1] / 16 * 16,
			B: buf.Pix[i] / 16 * 16,
		}
		counts[q]++
		total++
	}

	colors := make([]ColorFrequency, 0, len(counts))
	for rgb, n := range counts {
		colors = append(colors, ColorFrequency{
			Hex:        hexString(rgb.R, rgb.G, rgb.B),
			Percentage: float64(n) / float64(total) * 100,
			RGB:        rgb,
		})
	}

	sort.Slice(colors, func(i, j int) bool {
		if colors[i].Percentage != colors[j].Percentage {
			return colors[i].Percentage > colors[j].Percentage
		}
		return colors[i].Hex < colors[j].Hex
	})

	if len(colors) > count {
		colors = colors[:count]
	}
	return &DominantColorsResult{Colors: colors}, nil
}

// hexString formats 8-bit RGB components as "#rrggbb".
func hexString(r, g, b uint8) string {
	return colorful.Color{
		R: float64(r) / 255.0,
		G: float64(g) / 255.0,
		B: float64(b) / 255.0,
	}.Hex()
}

// rgbToHSL converts 8-bit RGB to HSL with integer degrees and percentages.
func rgbToHSL(r, g, b uint8) HSLColor {
	h, s, l := colorful.Color{
		R: float64(r) / 255.0,
		G: float64(g) / 255.0,
		B: float64(b) / 255.0,
	}.Hsl()
	return HSLColor{H: int(h), S: int(s * 100), L: int(l * 100)}
}
