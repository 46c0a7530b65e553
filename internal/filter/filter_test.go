package filter

import (
	"errors"
	"testing"

	"github.com/pixelsmith/raster-edit-mcp/internal/raster"
)

// mustBuffer builds a buffer from raw BGRA bytes, failing the test on a
// layout mismatch.
func mustBuffer(t *testing.T, width, height int, pix []uint8) *raster.Buffer {
	t.Helper()
	buf, err := raster.NewFromBytes(width, height, pix)
	if err != nil {
		t.Fatalf("bad test buffer: %v", err)
	}
	return buf
}

// uniformBuffer builds a width x height buffer with every pixel set to the
// given BGRA value.
func uniformBuffer(t *testing.T, width, height int, b, g, r, a uint8) *raster.Buffer {
	t.Helper()
	pix := make([]uint8, width*height*raster.BytesPerPixel)
	for i := 0; i < len(pix); i += raster.BytesPerPixel {
		pix[i] = b
		pix[i+1] = g
		pix[i+2] = r
		pix[i+3] = a
	}
	return mustBuffer(t, width, height, pix)
}

func assertPix(t *testing.T, got *raster.Buffer, want []uint8) {
	t.Helper()
	if len(got.Pix) != len(want) {
		t.Fatalf("pixel byte length: got %d, want %d", len(got.Pix), len(want))
	}
	for i := range want {
		if got.Pix[i] != want[i] {
			t.Errorf("Pix[%d]: got %d, want %d", i, got.Pix[i], want[i])
		}
	}
}

func TestApply_InvalidDimensions(t *testing.T) {
	bad := &raster.Buffer{Width: 2, Height: 2, Pix: make([]uint8, 7)}
	_, err := Apply(bad, Grayscale, Params{})
	if !errors.Is(err, raster.ErrInvalidDimensions) {
		t.Errorf("got %v, want ErrInvalidDimensions", err)
	}
}

func TestApply_NoneIsIdentityClone(t *testing.T) {
	src := mustBuffer(t, 1, 1, []uint8{10, 20, 30, 40})
	out, err := Apply(src, None, Params{})
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	if !out.Equal(src) {
		t.Error("None changed pixel bytes")
	}
	out.Pix[0] = 99
	if src.Pix[0] != 10 {
		t.Error("None aliased the source storage")
	}
}

func TestApply_UnknownKindIsIdentity(t *testing.T) {
	src := mustBuffer(t, 1, 1, []uint8{10, 20, 30, 40})
	out, err := Apply(src, Kind("posterize"), Params{})
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	if !out.Equal(src) {
		t.Error("unknown kind should behave like None")
	}
}

func TestApply_NeverMutatesSource(t *testing.T) {
	kinds := []Kind{Grayscale, Brightness, Contrast, BrightnessContrast, GaussianBlur, EdgeDetection, Sepia}
	params := Params{Brightness: 40, Contrast: -25, BlurRadius: 2}

	for _, kind := range kinds {
		t.Run(string(kind), func(t *testing.T) {
			src := mustBuffer(t, 3, 3, sequentialPix(3*3))
			before := src.Clone()
			if _, err := Apply(src, kind, params); err != nil {
				t.Fatalf("Apply failed: %v", err)
			}
			if !src.Equal(before) {
				t.Errorf("%s mutated its source buffer", kind)
			}
		})
	}
}

func TestKinds_CoversRegistry(t *testing.T) {
	kinds := Kinds()
	if len(kinds) != 8 {
		t.Errorf("got %d kinds, want 8", len(kinds))
	}
	seen := make(map[Kind]bool, len(kinds))
	for _, k := range kinds {
		seen[k] = true
	}
	for _, want := range []Kind{None, Grayscale, Brightness, Contrast, BrightnessContrast, GaussianBlur, EdgeDetection, Sepia} {
		if !seen[want] {
			t.Errorf("Kinds() missing %q", want)
		}
	}
}

func TestClamp8(t *testing.T) {
	tests := []struct {
		val  int
		want uint8
	}{
		{-300, 0},
		{-1, 0},
		{0, 0},
		{128, 128},
		{255, 255},
		{256, 255},
		{1020, 255},
	}

	for _, tt := range tests {
		if got := clamp8(tt.val); got != tt.want {
			t.Errorf("clamp8(%d): got %d, want %d", tt.val, got, tt.want)
		}
	}
}

// sequentialPix returns n pixels of varied, valid BGRA bytes.
func sequentialPix(n int) []uint8 {
	pix := make([]uint8, n*raster.BytesPerPixel)
	for i := range pix {
		pix[i] = uint8(i * 7 % 256)
	}
	return pix
}
