package filter

import (
	"math"

	"github.com/pixelsmith/raster-edit-mcp/internal/raster"
)

// Sobel gradient kernels: sobelX responds to horizontal intensity changes,
// sobelY to vertical ones.
var (
	sobelX = [3][3]int{
		{-1, 0, 1},
		{-2, 0, 2},
		{-1, 0, 1},
	}
	sobelY = [3][3]int{
		{-1, -2, -1},
		{0, 0, 0},
		{1, 2, 1},
	}
)

// edgeDetect converts the image to grayscale and writes the Sobel gradient
// magnitude of every strictly interior pixel into all three color channels
// with alpha forced to 255.
//
// Only pixels with a full 3x3 neighborhood are convolved. The output starts
// zero-filled and the outermost 1-pixel ring is never written, so the border
// comes out as transparent black. That ring is a documented artifact of the
// original behavior, kept as-is rather than padded or replicated.
func edgeDetect(src *raster.Buffer, _ Params) *raster.Buffer {
	gray := grayscale(src, Params{})

	out := &raster.Buffer{
		Width:  src.Width,
		Height: src.Height,
		Pix:    make([]uint8, len(src.Pix)),
	}

	for y := 1; y < src.Height-1; y++ {
		for x := 1; x < src.Width-1; x++ {
			var gx, gy int
			for ky := -1; ky <= 1; ky++ {
				for kx := -1; kx <= 1; kx++ {
					// All channels are equal after grayscale; sample blue.
					v := int(gray.Pix[gray.PixOffset(x+kx, y+ky)])
					gx += v * sobelX[ky+1][kx+1]
					gy += v * sobelY[ky+1][kx+1]
				}
			}

			mag := clamp8(int(math.Sqrt(float64(gx*gx + gy*gy))))
			i := out.PixOffset(x, y)
			out.Pix[i] = mag
			out.Pix[i+1] = mag
			out.Pix[i+2] = mag
			out.Pix[i+3] = 255
		}
	}
	return out
}
