package postprocess

import (
	"image"
	"image/color"
	"testing"
)

func checker(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := color.NRGBA{0, 0, 0, 255}
			if (x+y)%2 == 0 {
				c = color.NRGBA{255, 255, 255, 255}
			}
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func TestUpscale(t *testing.T) {
	src := checker(3, 2)
	dst := Upscale(src, 4)

	if dst.Bounds().Dx() != 12 || dst.Bounds().Dy() != 8 {
		t.Fatalf("Expected 12x8, got %v", dst.Bounds().Size())
	}
	for y := 0; y < 8; y++ {
		for x := 0; x < 12; x++ {
			want := src.NRGBAAt(x/4, y/4)
			if got := dst.NRGBAAt(x, y); got != want {
				t.Fatalf("pixel (%d,%d): expected %v, got %v", x, y, want, got)
			}
		}
	}
}

func TestUpscale_FactorOne(t *testing.T) {
	src := checker(2, 2)
	if dst := Upscale(src, 1); dst != src {
		t.Error("Expected factor 1 to return the source image")
	}
	if dst := Upscale(src, 0); dst != src {
		t.Error("Expected factor 0 to return the source image")
	}
}

func TestFit(t *testing.T) {
	tests := []struct {
		w, h, size int
		wantW      int
		wantH      int
	}{
		{400, 200, 100, 100, 50},
		{90, 160, 320, 180, 320},
		{1000, 1, 10, 10, 1},
	}
	for _, tt := range tests {
		dst := Fit(checker(tt.w, tt.h), tt.size)
		if dst.Bounds().Dx() != tt.wantW || dst.Bounds().Dy() != tt.wantH {
			t.Errorf("Fit %dx%d to %d: expected %dx%d, got %v",
				tt.w, tt.h, tt.size, tt.wantW, tt.wantH, dst.Bounds().Size())
		}
	}
}
