package filter

import (
	"github.com/pixelsmith/raster-edit-mcp/internal/raster"
)

// grayscale converts every pixel to its luminance using the BT.601 weights
// (0.299 R + 0.587 G + 0.114 B), which track the eye's sensitivity: strongest
// to green, weakest to blue. Alpha passes through unchanged.
func grayscale(src *raster.Buffer, _ Params) *raster.Buffer {
	out := src.Clone()
	for i := 0; i < len(out.Pix); i += raster.BytesPerPixel {
		b := float64(out.Pix[i])
		g := float64(out.Pix[i+1])
		r := float64(out.Pix[i+2])
		gray := uint8(0.299*r + 0.587*g + 0.114*b)
		out.Pix[i] = gray
		out.Pix[i+1] = gray
		out.Pix[i+2] = gray
	}
	return out
}

// brightness shifts each color channel by trunc(b * 2.55), mapping the
// -100..100 parameter range onto roughly -255..255. Alpha is untouched.
func brightness(src *raster.Buffer, p Params) *raster.Buffer {
	adj := int(p.Brightness * 2.55)
	out := src.Clone()
	for i := 0; i < len(out.Pix); i += raster.BytesPerPixel {
		out.Pix[i] = clamp8(int(out.Pix[i]) + adj)
		out.Pix[i+1] = clamp8(int(out.Pix[i+1]) + adj)
		out.Pix[i+2] = clamp8(int(out.Pix[i+2]) + adj)
	}
	return out
}

// contrast scales each color channel around the 128 midpoint by
// factor = (100+c)/100, floored at 0. A factor below 1 compresses values
// toward gray, above 1 pushes them apart. Alpha is untouched.
func contrast(src *raster.Buffer, p Params) *raster.Buffer {
	factor := (100 + p.Contrast) / 100
	if factor < 0 {
		factor = 0
	}
	out := src.Clone()
	for i := 0; i < len(out.Pix); i += raster.BytesPerPixel {
		out.Pix[i] = clamp8(int(factor*(float64(out.Pix[i])-128) + 128))
		out.Pix[i+1] = clamp8(int(factor*(float64(out.Pix[i+1])-128) + 128))
		out.Pix[i+2] = clamp8(int(factor*(float64(out.Pix[i+2])-128) + 128))
	}
	return out
}

// brightnessContrast applies both adjustments inside a single expression:
// clamp(trunc(factor*(channel-128) + 128 + adj)). This truncates once per
// channel instead of once per filter, so the result can differ by a unit or
// two from running contrast then brightness sequentially. The single-pass
// form is the contract, not an accident.
func brightnessContrast(src *raster.Buffer, p Params) *raster.Buffer {
	adj := float64(int(p.Brightness * 2.55))
	factor := (100 + p.Contrast) / 100
	if factor < 0 {
		factor = 0
	}
	out := src.Clone()
	for i := 0; i < len(out.Pix); i += raster.BytesPerPixel {
		out.Pix[i] = clamp8(int(factor*(float64(out.Pix[i])-128) + 128 + adj))
		out.Pix[i+1] = clamp8(int(factor*(float64(out.Pix[i+1])-128) + 128 + adj))
		out.Pix[i+2] = clamp8(int(factor*(float64(out.Pix[i+2])-128) + 128 + adj))
	}
	return out
}

// sepia applies the standard sepia color matrix. Each output channel is a
// weighted mix of all three input channels, clamped at 255 (bright inputs
// saturate toward warm white). Alpha is untouched.
func sepia(src *raster.Buffer, _ Params) *raster.Buffer {
	out := src.Clone()
	for i := 0; i < len(out.Pix); i += raster.BytesPerPixel {
		b := float64(out.Pix[i])
		g := float64(out.Pix[i+1])
		r := float64(out.Pix[i+2])
		out.Pix[i] = clamp8(int(0.272*r + 0.534*g + 0.131*b))
		out.Pix[i+1] = clamp8(int(0.349*r + 0.686*g + 0.168*b))
		out.Pix[i+2] = clamp8(int(0.393*r + 0.769*g + 0.189*b))
	}
	return out
}
