package raster

import (
	"errors"
	"image"
	"image/color"
	"testing"
)

func TestNewFromBytes_Valid(t *testing.T) {
	pix := make([]uint8, 2*3*4)
	buf, err := NewFromBytes(2, 3, pix)
	if err != nil {
		t.Fatalf("NewFromBytes failed: %v", err)
	}
	if buf.Width != 2 || buf.Height != 3 {
		t.Errorf("dimensions: got %dx%d, want 2x3", buf.Width, buf.Height)
	}
	if buf.Stride() != 8 {
		t.Errorf("Stride: got %d, want 8", buf.Stride())
	}
}

func TestNewFromBytes_LengthMismatch(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		byteLen       int
	}{
		{"too short", 2, 2, 15},
		{"too long", 2, 2, 17},
		{"empty for nonzero dims", 1, 1, 0},
		{"negative width", -1, 2, 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewFromBytes(tt.width, tt.height, make([]uint8, tt.byteLen))
			if !errors.Is(err, ErrInvalidDimensions) {
				t.Errorf("got %v, want ErrInvalidDimensions", err)
			}
		})
	}
}

func TestNew_ZeroFilled(t *testing.T) {
	buf, err := New(3, 2)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if len(buf.Pix) != 3*2*4 {
		t.Fatalf("Pix length: got %d, want 24", len(buf.Pix))
	}
	for i, v := range buf.Pix {
		if v != 0 {
			t.Fatalf("Pix[%d] = %d, want 0", i, v)
		}
	}
}

func TestClone_Independent(t *testing.T) {
	buf, _ := NewFromBytes(1, 1, []uint8{10, 20, 30, 40})
	dup := buf.Clone()

	if !buf.Equal(dup) {
		t.Fatal("clone is not byte-equal to original")
	}

	dup.Pix[0] = 99
	if buf.Pix[0] != 10 {
		t.Error("mutating clone leaked into original: storage is aliased")
	}
}

func TestEqual(t *testing.T) {
	a, _ := NewFromBytes(1, 1, []uint8{1, 2, 3, 4})
	b, _ := NewFromBytes(1, 1, []uint8{1, 2, 3, 4})
	c, _ := NewFromBytes(1, 1, []uint8{1, 2, 3, 5})

	if !a.Equal(b) {
		t.Error("identical buffers reported unequal")
	}
	if a.Equal(c) {
		t.Error("differing buffers reported equal")
	}
	if a.Equal(nil) {
		t.Error("nil comparison reported equal")
	}
}

func TestAt_ChannelOrder(t *testing.T) {
	// BGRA bytes: blue=10, green=20, red=30, alpha=40
	buf, _ := NewFromBytes(1, 1, []uint8{10, 20, 30, 40})
	got := buf.At(0, 0)
	want := color.NRGBA{R: 30, G: 20, B: 10, A: 40}
	if got != want {
		t.Errorf("At(0,0): got %+v, want %+v", got, want)
	}
}

func TestFromImage_NRGBA(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	img.SetNRGBA(0, 0, color.NRGBA{R: 200, G: 150, B: 100, A: 255})
	img.SetNRGBA(1, 0, color.NRGBA{R: 1, G: 2, B: 3, A: 4})

	buf := FromImage(img)
	if buf.Width != 2 || buf.Height != 1 {
		t.Fatalf("dimensions: got %dx%d, want 2x1", buf.Width, buf.Height)
	}

	// First pixel, BGRA order.
	want := []uint8{100, 150, 200, 255, 3, 2, 1, 4}
	for i, v := range want {
		if buf.Pix[i] != v {
			t.Errorf("Pix[%d]: got %d, want %d", i, buf.Pix[i], v)
		}
	}
}

func TestFromImage_GenericModel(t *testing.T) {
	// RGBA (premultiplied) path exercises the generic conversion.
	img := image.NewRGBA(image.Rect(0, 0, 1, 1))
	img.Set(0, 0, color.NRGBA{R: 50, G: 60, B: 70, A: 255})

	buf := FromImage(img)
	got := buf.At(0, 0)
	want := color.NRGBA{R: 50, G: 60, B: 70, A: 255}
	if got != want {
		t.Errorf("At(0,0): got %+v, want %+v", got, want)
	}
}

func TestFromImage_OffsetBounds(t *testing.T) {
	// Images whose bounds do not start at (0,0) must still convert correctly.
	img := image.NewNRGBA(image.Rect(5, 7, 7, 8))
	img.SetNRGBA(5, 7, color.NRGBA{R: 9, G: 8, B: 7, A: 6})

	buf := FromImage(img)
	if buf.Width != 2 || buf.Height != 1 {
		t.Fatalf("dimensions: got %dx%d, want 2x1", buf.Width, buf.Height)
	}
	got := buf.At(0, 0)
	want := color.NRGBA{R: 9, G: 8, B: 7, A: 6}
	if got != want {
		t.Errorf("At(0,0): got %+v, want %+v", got, want)
	}
}

func TestRoundTrip_ToNRGBA(t *testing.T) {
	buf, _ := NewFromBytes(2, 2, []uint8{
		1, 2, 3, 4, 5, 6, 7, 8,
		9, 10, 11, 12, 13, 14, 15, 16,
	})

	back := FromImage(buf.ToNRGBA())
	if !buf.Equal(back) {
		t.Error("Buffer -> NRGBA -> Buffer round trip changed pixel bytes")
	}
}
