package analysis

import (
	"testing"
)

func TestSampleColor_KnownPixel(t *testing.T) {
	// BGRA bytes for pure red with half-ish alpha.
	buf := mustBuffer(t, 1, 1, []uint8{0, 0, 255, 128})

	c, err := SampleColor(buf, 0, 0)
	if err != nil {
		t.Fatalf("SampleColor failed: %v", err)
	}

	if c.Hex != "#ff0000" {
		t.Errorf("Hex: got %s, want #ff0000", c.Hex)
	}
	if c.RGB != (RGBColor{R: 255}) {
		t.Errorf("RGB: got %+v, want {255 0 0}", c.RGB)
	}
	if c.RGBA != (RGBAColor{R: 255, A: 128}) {
		t.Errorf("RGBA: got %+v, want {255 0 0 128}", c.RGBA)
	}
	if c.HSL.H != 0 || c.HSL.S != 100 || c.HSL.L != 50 {
		t.Errorf("HSL: got %+v, want {0 100 50}", c.HSL)
	}
}

func TestSampleColor_Gray(t *testing.T) {
	buf := mustBuffer(t, 1, 1, []uint8{128, 128, 128, 255})

	c, err := SampleColor(buf, 0, 0)
	if err != nil {
		t.Fatalf("SampleColor failed: %v", err)
	}
	if c.HSL.S != 0 {
		t.Errorf("gray saturation: got %d, want 0", c.HSL.S)
	}
	if c.Hex != "#808080" {
		t.Errorf("Hex: got %s, want #808080", c.Hex)
	}
}

func TestSampleColor_OutOfBounds(t *testing.T) {
	buf := mustBuffer(t, 2, 2, make([]uint8, 16))

	tests := []struct {
		name string
		x, y int
	}{
		{"negative x", -1, 0},
		{"negative y", 0, -1},
		{"x at width", 2, 0},
		{"y at height", 0, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := SampleColor(buf, tt.x, tt.y); err == nil {
				t.Errorf("SampleColor(%d,%d) should fail", tt.x, tt.y)
			}
		})
	}
}

func TestDominantColors_QuantizesAndSorts(t *testing.T) {
	// Three red-ish pixels (quantize to the same bucket) and one blue pixel.
	buf := mustBuffer(t, 2, 2, []uint8{
		0, 0, 240, 255, // red 240 -> bucket 240
		0, 0, 243, 255, // red 243 -> bucket 240
		0, 0, 250, 255, // red 250 -> bucket 240
		200, 0, 0, 255, // blue 200 -> bucket 192
	})

	result, err := DominantColors(buf, 5)
	if err != nil {
		t.Fatalf("DominantColors failed: %v", err)
	}

	if len(result.Colors) != 2 {
		t.Fatalf("got %d colors, want 2", len(result.Colors))
	}

	top := result.Colors[0]
	if top.RGB != (RGBColor{R: 240}) {
		t.Errorf("top color: got %+v, want {240 0 0}", top.RGB)
	}
	if top.Percentage != 75 {
		t.Errorf("top percentage: got %v, want 75", top.Percentage)
	}
	if result.Colors[1].RGB != (RGBColor{B: 192}) {
		t.Errorf("second color: got %+v, want {0 0 192}", result.Colors[1].RGB)
	}
}

func TestDominantColors_CountLimit(t *testing.T) {
	// Four distinct quantized colors, ask for two.
	buf := mustBuffer(t, 4, 1, []uint8{
		16, 0, 0, 255,
		0, 32, 0, 255,
		0, 0, 48, 255,
		64, 64, 64, 255,
	})

	result, err := DominantColors(buf, 2)
	if err != nil {
		t.Fatalf("DominantColors failed: %v", err)
	}
	if len(result.Colors) != 2 {
		t.Errorf("got %d colors, want 2", len(result.Colors))
	}
}

func TestDominantColors_EmptyBuffer(t *testing.T) {
	buf := mustBuffer(t, 0, 0, nil)
	result, err := DominantColors(buf, 3)
	if err != nil {
		t.Fatalf("DominantColors failed: %v", err)
	}
	if len(result.Colors) != 0 {
		t.Errorf("got %d colors, want 0", len(result.Colors))
	}
}
