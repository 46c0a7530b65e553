package filter

import (
	"testing"
)

func TestGrayscale_KnownPixel(t *testing.T) {
	// (B,G,R,A) = (100,150,200,255):
	// gray = trunc(0.299*200 + 0.587*150 + 0.114*100) = trunc(159.25) = 159
	src := mustBuffer(t, 1, 1, []uint8{100, 150, 200, 255})
	out, err := Apply(src, Grayscale, Params{})
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	assertPix(t, out, []uint8{159, 159, 159, 255})
}

func TestGrayscale_Idempotent(t *testing.T) {
	src := mustBuffer(t, 2, 1, []uint8{
		100, 150, 200, 255,
		7, 33, 250, 128,
	})
	once, err := Apply(src, Grayscale, Params{})
	if err != nil {
		t.Fatalf("first Apply failed: %v", err)
	}
	twice, err := Apply(once, Grayscale, Params{})
	if err != nil {
		t.Fatalf("second Apply failed: %v", err)
	}
	if !twice.Equal(once) {
		t.Error("grayscale(grayscale(x)) != grayscale(x)")
	}
}

func TestGrayscale_PreservesAlpha(t *testing.T) {
	src := mustBuffer(t, 1, 1, []uint8{10, 20, 30, 77})
	out, _ := Apply(src, Grayscale, Params{})
	if out.Pix[3] != 77 {
		t.Errorf("alpha: got %d, want 77", out.Pix[3])
	}
}

func TestBrightness_KnownPixel(t *testing.T) {
	// +30 -> adj = trunc(76.5) = 76.
	// B: 100+76=176, G: 150+76=226, R: 200+76=276 -> 255.
	src := mustBuffer(t, 1, 1, []uint8{100, 150, 200, 255})
	out, err := Apply(src, Brightness, Params{Brightness: 30})
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	assertPix(t, out, []uint8{176, 226, 255, 255})
}

func TestBrightness_NegativeTruncatesTowardZero(t *testing.T) {
	// -30 -> adj = trunc(-76.5) = -76, not -77.
	src := mustBuffer(t, 1, 1, []uint8{100, 100, 100, 255})
	out, _ := Apply(src, Brightness, Params{Brightness: -30})
	assertPix(t, out, []uint8{24, 24, 24, 255})
}

func TestBrightness_ZeroIsIdentity(t *testing.T) {
	src := mustBuffer(t, 2, 1, sequentialPix(2))
	out, _ := Apply(src, Brightness, Params{Brightness: 0})
	if !out.Equal(src) {
		t.Error("brightness(x, 0) != x")
	}
}

func TestBrightness_ClampsBothEnds(t *testing.T) {
	tests := []struct {
		name       string
		brightness float64
		want       uint8
	}{
		{"full positive saturates white", 100, 255},
		{"full negative saturates black", -100, 0},
	}

	src := mustBuffer(t, 1, 1, []uint8{128, 128, 128, 255})
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _ := Apply(src, Brightness, Params{Brightness: tt.brightness})
			for c := 0; c < 3; c++ {
				if out.Pix[c] != tt.want {
					t.Errorf("channel %d: got %d, want %d", c, out.Pix[c], tt.want)
				}
			}
		})
	}
}

func TestContrast_KnownPixel(t *testing.T) {
	// +50 -> factor 1.5.
	// B: 1.5*(100-128)+128 = 86, G: 1.5*(150-128)+128 = 161,
	// R: 1.5*(200-128)+128 = 236.
	src := mustBuffer(t, 1, 1, []uint8{100, 150, 200, 255})
	out, err := Apply(src, Contrast, Params{Contrast: 50})
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	assertPix(t, out, []uint8{86, 161, 236, 255})
}

func TestContrast_ZeroIsIdentity(t *testing.T) {
	src := mustBuffer(t, 2, 2, sequentialPix(4))
	out, _ := Apply(src, Contrast, Params{Contrast: 0})
	if !out.Equal(src) {
		t.Error("contrast(x, 0) != x")
	}
}

func TestContrast_MinusHundredCollapsesToGray(t *testing.T) {
	// factor 0 pins every channel to the 128 midpoint.
	src := mustBuffer(t, 1, 1, []uint8{3, 250, 77, 200})
	out, _ := Apply(src, Contrast, Params{Contrast: -100})
	assertPix(t, out, []uint8{128, 128, 128, 200})
}

func TestBrightnessContrast_SinglePass(t *testing.T) {
	// b=30, c=50: adj=76, factor=1.5.
	// B: 1.5*(100-128)+128+76 = 162
	// G: 1.5*(150-128)+128+76 = 237
	// R: 1.5*(200-128)+128+76 = 312 -> 255
	src := mustBuffer(t, 1, 1, []uint8{100, 150, 200, 255})
	out, err := Apply(src, BrightnessContrast, Params{Brightness: 30, Contrast: 50})
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	assertPix(t, out, []uint8{162, 237, 255, 255})
}

func TestBrightnessContrast_ZeroIsIdentity(t *testing.T) {
	src := mustBuffer(t, 2, 1, sequentialPix(2))
	out, _ := Apply(src, BrightnessContrast, Params{})
	if !out.Equal(src) {
		t.Error("brightness/contrast at (0,0) != x")
	}
}

func TestSepia_KnownPixel(t *testing.T) {
	// (B,G,R) = (100,150,200):
	// newR = trunc(0.393*200 + 0.769*150 + 0.189*100) = trunc(212.85) = 212
	// newG = trunc(0.349*200 + 0.686*150 + 0.168*100) = trunc(189.50) = 189
	// newB = trunc(0.272*200 + 0.534*150 + 0.131*100) = trunc(147.60) = 147
	src := mustBuffer(t, 1, 1, []uint8{100, 150, 200, 255})
	out, err := Apply(src, Sepia, Params{})
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	assertPix(t, out, []uint8{147, 189, 212, 255})
}

func TestSepia_WhiteSaturates(t *testing.T) {
	// The red and green weight rows sum above 1.0, so white clamps to a warm
	// near-white: newB = trunc(255*0.937) = 238, newG and newR clamp to 255.
	src := mustBuffer(t, 1, 1, []uint8{255, 255, 255, 200})
	out, _ := Apply(src, Sepia, Params{})
	assertPix(t, out, []uint8{238, 255, 255, 200})
}
