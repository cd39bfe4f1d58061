package colour

import (
	"image"
	"image/color"
	"math"
	"testing"
)

// uniformImage creates a w x h image filled with a single colour.
func uniformImage(w, h int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

// gradientImage creates an image with many distinct colours so the full
// clustering path runs.
func gradientImage(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, color.RGBA{
				R: uint8(x * 255 / w),
				G: uint8(y * 255 / h),
				B: uint8((x + y) * 255 / (w + h)),
				A: 255,
			})
		}
	}
	return img
}

func TestExtractUniformImage(t *testing.T) {
	tests := []struct {
		name    string
		colour  color.RGBA
		wantHue float64
	}{
		{name: "red", colour: color.RGBA{R: 255, A: 255}, wantHue: 0},
		{name: "green", colour: color.RGBA{G: 255, A: 255}, wantHue: 120},
		{name: "blue", colour: color.RGBA{B: 255, A: 255}, wantHue: 240},
	}

	e := NewExtractor(4)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sample, err := e.Extract(uniformImage(20, 20, tt.colour))
			if err != nil {
				t.Fatalf("Extract returned error: %v", err)
			}
			if math.Abs(sample.HSV.H-tt.wantHue) > 1e-9 {
				t.Errorf("hue = %g, want %g", sample.HSV.H, tt.wantHue)
			}
			if sample.Weight != 1 {
				t.Errorf("weight = %g, want 1 for a uniform image", sample.Weight)
			}
		})
	}
}

func TestExtractDominantOfTwoColours(t *testing.T) {
	// 10x10 image: rows 0-6 blue (70 pixels), rows 7-9 red (30 pixels).
	img := image.NewRGBA(image.Rect(0, 0, 10, 10))
	blue := color.RGBA{B: 255, A: 255}
	red := color.RGBA{R: 255, A: 255}
	for y := 0; y < 10; y++ {
		c := blue
		if y >= 7 {
			c = red
		}
		for x := 0; x < 10; x++ {
			img.SetRGBA(x, y, c)
		}
	}

	sample, err := NewExtractor(4).Extract(img)
	if err != nil {
		t.Fatalf("Extract returned error: %v", err)
	}
	if math.Abs(sample.HSV.H-240) > 1e-9 {
		t.Errorf("dominant hue = %g, want 240 (blue)", sample.HSV.H)
	}
	if math.Abs(sample.Weight-0.7) > 1e-9 {
		t.Errorf("weight = %g, want 0.7", sample.Weight)
	}
}

func TestExtractDeterministic(t *testing.T) {
	img := gradientImage(64, 64)
	e := NewExtractor(5)

	first, err := e.Extract(img)
	if err != nil {
		t.Fatalf("Extract returned error: %v", err)
	}
	for i := 0; i < 5; i++ {
		got, err := e.Extract(img)
		if err != nil {
			t.Fatalf("Extract returned error: %v", err)
		}
		if got != first {
			t.Fatalf("extraction not deterministic: run %d produced %+v, first run produced %+v", i+2, got, first)
		}
	}
}

func TestExtractSampleRanges(t *testing.T) {
	images := []image.Image{
		uniformImage(5, 5, color.RGBA{R: 255, A: 255}),
		uniformImage(5, 5, color.RGBA{A: 255}),
		uniformImage(5, 5, color.RGBA{R: 255, G: 255, B: 255, A: 255}),
		gradientImage(40, 30),
		gradientImage(200, 100),
	}

	e := NewExtractor(4)
	for i, img := range images {
		sample, err := e.Extract(img)
		if err != nil {
			t.Fatalf("image %d: Extract returned error: %v", i, err)
		}
		if sample.HSV.H < 0 || sample.HSV.H >= 360 {
			t.Errorf("image %d: hue %g out of [0, 360)", i, sample.HSV.H)
		}
		if sample.HSV.S < 0 || sample.HSV.S > 1 {
			t.Errorf("image %d: saturation %g out of [0, 1]", i, sample.HSV.S)
		}
		if sample.HSV.V < 0 || sample.HSV.V > 1 {
			t.Errorf("image %d: value %g out of [0, 1]", i, sample.HSV.V)
		}
		if sample.Weight <= 0 || sample.Weight > 1 {
			t.Errorf("image %d: weight %g out of (0, 1]", i, sample.Weight)
		}
	}
}

func TestExtractNilImage(t *testing.T) {
	if _, err := NewExtractor(4).Extract(nil); err == nil {
		t.Fatal("expected error for nil image")
	}
}

func TestExtractDegenerateClusterCount(t *testing.T) {
	// Two distinct colours with k=5: clustering collapses to the
	// available colours instead of failing.
	img := image.NewRGBA(image.Rect(0, 0, 4, 2))
	for x := 0; x < 4; x++ {
		img.SetRGBA(x, 0, color.RGBA{R: 255, A: 255})
		img.SetRGBA(x, 1, color.RGBA{G: 255, A: 255})
	}

	sample, err := NewExtractor(5).Extract(img)
	if err != nil {
		t.Fatalf("Extract returned error: %v", err)
	}
	// Equal populations: the lower hue (red, 0) wins the tie.
	if sample.HSV.H != 0 {
		t.Errorf("hue = %g, want 0 (tie broken by lowest hue)", sample.HSV.H)
	}
	if sample.Weight != 0.5 {
		t.Errorf("weight = %g, want 0.5", sample.Weight)
	}
}

func TestSamplePixelsBounded(t *testing.T) {
	img := gradientImage(300, 300)
	points := samplePixels(img, defaultMaxSamples)
	if len(points) == 0 {
		t.Fatal("no points sampled")
	}
	if len(points) > defaultMaxSamples {
		t.Errorf("sampled %d points, budget is %d", len(points), defaultMaxSamples)
	}
}
