package filter

import (
	"github.com/pixelsmith/raster-edit-mcp/internal/raster"
)

// blurPasses is the number of box blur iterations used to approximate a
// Gaussian kernel. Three passes get close to a Gaussian shape (central limit
// effect) while staying linear in the window size.
const blurPasses = 3

// gaussianBlur approximates a Gaussian blur by running blurPasses iterations
// of a separable box blur, each iteration a horizontal pass followed by a
// vertical pass with a (2*radius+1)-sample window.
//
// A radius of zero or less is a no-op and returns a clone. Alpha is never
// averaged; each pass copies the alpha byte straight from its source pixel.
func gaussianBlur(src *raster.Buffer, p Params) *raster.Buffer {
	radius := p.BlurRadius
	if radius <= 0 {
		return src.Clone()
	}

	cur := src
	for pass := 0; pass < blurPasses; pass++ {
		cur = boxBlurPass(cur, radius, true)
		cur = boxBlurPass(cur, radius, false)
	}
	return cur
}

// boxBlurPass averages each color channel over a 1D window of
// 2*radius+1 samples along one axis. Samples falling outside the image are
// skipped and the divisor is the count of in-bounds samples, so border pixels
// average over a shorter window instead of pulling in phantom values.
func boxBlurPass(src *raster.Buffer, radius int, horizontal bool) *raster.Buffer {
	out := &raster.Buffer{
		Width:  src.Width,
		Height: src.Height,
		Pix:    make([]uint8, len(src.Pix)),
	}

	for y := 0; y < src.Height; y++ {
		for x := 0; x < src.Width; x++ {
			var sumB, sumG, sumR, count int
			for k := -radius; k <= radius; k++ {
				sx, sy := x, y
				if horizontal {
					sx += k
				} else {
					sy += k
				}
				if sx < 0 || sx >= src.Width || sy < 0 || sy >= src.Height {
					continue
				}
				i := src.PixOffset(sx, sy)
				sumB += int(src.Pix[i])
				sumG += int(src.Pix[i+1])
				sumR += int(src.Pix[i+2])
				count++
			}

			o := out.PixOffset(x, y)
			out.Pix[o] = uint8(sumB / count)
			out.Pix[o+1] = uint8(sumG / count)
			out.Pix[o+2] = uint8(sumR / count)
			out.Pix[o+3] = src.Pix[o+3]
		}
	}
	return out
}
