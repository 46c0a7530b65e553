package raster

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
)

// BytesPerPixel is the storage size of one pixel: blue, green, red, alpha.
const BytesPerPixel = 4

// ErrInvalidDimensions reports a byte slice whose length does not match the
// declared width*height*4 layout.
var ErrInvalidDimensions = errors.New("byte length does not match width*height*4")

// Buffer is a fixed-format raster image: Width x Height pixels stored in Pix
// as 4 bytes per pixel in blue-green-red-alpha order, row-major from the
// top-left corner.
//
// The invariant len(Pix) == Width*Height*4 holds for every Buffer produced by
// this package. Callers treat buffers as immutable once created; producing a
// modified image means allocating a new Buffer (usually via Clone).
type Buffer struct {
	// Width is the image width in pixels.
	Width int

	// Height is the image height in pixels.
	Height int

	// Pix holds the pixel data in BGRA order, 4 bytes per pixel.
	Pix []uint8
}

// New allocates a zero-filled buffer of the given dimensions.
//
// All pixels start as transparent black (0,0,0,0). Returns
// ErrInvalidDimensions if either dimension is negative.
func New(width, height int) (*Buffer, error) {
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("dimensions %dx%d: %w", width, height, ErrInvalidDimensions)
	}
	return &Buffer{
		Width:  width,
		Height: height,
		Pix:    make([]uint8, width*height*BytesPerPixel),
	}, nil
}

// NewFromBytes wraps an existing BGRA byte slice as a buffer.
//
// The slice is used directly, not copied; the caller must not retain a
// mutable reference to it. Returns ErrInvalidDimensions if len(pix) does not
// equal width*height*4 or a dimension is negative.
func NewFromBytes(width, height int, pix []uint8) (*Buffer, error) {
	if width < 0 || height < 0 || len(pix) != width*height*BytesPerPixel {
		return nil, fmt.Errorf("%d bytes for %dx%d image: %w", len(pix), width, height, ErrInvalidDimensions)
	}
	return &Buffer{Width: width, Height: height, Pix: pix}, nil
}

// Stride returns the number of bytes in one pixel row.
func (b *Buffer) Stride() int {
	return b.Width * BytesPerPixel
}

// PixOffset returns the index in Pix of the first byte (blue) of the pixel
// at (x, y). Coordinates are not bounds-checked.
func (b *Buffer) PixOffset(x, y int) int {
	return (y*b.Width + x) * BytesPerPixel
}

// Clone returns an independent deep copy of the buffer. Mutating the copy's
// Pix never affects the original, which is what allows history stacks to
// retain buffers safely.
func (b *Buffer) Clone() *Buffer {
	pix := make([]uint8, len(b.Pix))
	copy(pix, b.Pix)
	return &Buffer{Width: b.Width, Height: b.Height, Pix: pix}
}

// Equal reports whether two buffers have identical dimensions and identical
// pixel bytes.
func (b *Buffer) Equal(other *Buffer) bool {
	if other == nil {
		return false
	}
	return b.Width == other.Width && b.Height == other.Height && bytes.Equal(b.Pix, other.Pix)
}

// At returns the color of the pixel at (x, y) as non-premultiplied RGBA.
// Coordinates are not bounds-checked.
func (b *Buffer) At(x, y int) color.NRGBA {
	i := b.PixOffset(x, y)
	return color.NRGBA{R: b.Pix[i+2], G: b.Pix[i+1], B: b.Pix[i], A: b.Pix[i+3]}
}

// FromImage converts any image.Image into a BGRA buffer.
//
// *image.NRGBA inputs take a fast path that reorders channels row by row;
// other image types go through the generic color model conversion, scaling
// 16-bit channels down to 8 bits.
func FromImage(img image.Image) *Buffer {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	buf := &Buffer{Width: w, Height: h, Pix: make([]uint8, w*h*BytesPerPixel)}

	if src, ok := img.(*image.NRGBA); ok {
		for y := 0; y < h; y++ {
			si := src.PixOffset(bounds.Min.X, bounds.Min.Y+y)
			di := y * buf.Stride()
			for x := 0; x < w; x++ {
				buf.Pix[di+0] = src.Pix[si+2] // blue
				buf.Pix[di+1] = src.Pix[si+1] // green
				buf.Pix[di+2] = src.Pix[si+0] // red
				buf.Pix[di+3] = src.Pix[si+3] // alpha
				si += 4
				di += 4
			}
		}
		return buf
	}

	nrgba := color.NRGBAModel
	for y := 0; y < h; y++ {
		di := y * buf.Stride()
		for x := 0; x < w; x++ {
			c := nrgba.Convert(img.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.NRGBA)
			buf.Pix[di+0] = c.B
			buf.Pix[di+1] = c.G
			buf.Pix[di+2] = c.R
			buf.Pix[di+3] = c.A
			di += 4
		}
	}
	return buf
}

// ToNRGBA converts the buffer into a standard library *image.NRGBA, swapping
// the channel order back to RGBA. The returned image owns its own pixel
// storage.
func (b *Buffer) ToNRGBA() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, b.Width, b.Height))
	for y := 0; y < b.Height; y++ {
		si := y * b.Stride()
		di := img.PixOffset(0, y)
		for x := 0; x < b.Width; x++ {
			img.Pix[di+0] = b.Pix[si+2]
			img.Pix[di+1] = b.Pix[si+1]
			img.Pix[di+2] = b.Pix[si+0]
			img.Pix[di+3] = b.Pix[si+3]
			si += 4
			di += 4
		}
	}
	return img
}
