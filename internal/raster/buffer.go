package raster

import (
	"image"
	"image/color"
	"math"
)

// PixelSink receives one color per pixel. Render writes every pixel exactly
// once, so implementations need no locking as long as distinct pixels do not
// share state.
type PixelSink interface {
	SetPixel(col, row int, c color.NRGBA)
}

// FrameBuffer holds the rendering target as flat slices for cache locality.
type FrameBuffer struct {
	Width  int
	Height int
	Color  []uint8   // RGBA interleaved, len = W*H*4
	Depth  []float64 // hit distance per pixel, -Inf for background
}

// NewFrameBuffer allocates a zeroed color buffer and a -Inf depth buffer.
func NewFrameBuffer(w, h int) *FrameBuffer {
	n := w * h
	depth := make([]float64, n)
	for i := range depth {
		depth[i] = math.Inf(-1)
	}
	return &FrameBuffer{
		Width:  w,
		Height: h,
		Color:  make([]uint8, n*4),
		Depth:  depth,
	}
}

func (fb *FrameBuffer) SetPixel(col, row int, c color.NRGBA) {
	i := (row*fb.Width + col) * 4
	fb.Color[i] = c.R
	fb.Color[i+1] = c.G
	fb.Color[i+2] = c.B
	fb.Color[i+3] = c.A
}

// SetDepth records the hit distance for a pixel.
func (fb *FrameBuffer) SetDepth(col, row int, t float64) {
	fb.Depth[row*fb.Width+col] = t
}

// At returns the color stored at (col, row).
func (fb *FrameBuffer) At(col, row int) color.NRGBA {
	i := (row*fb.Width + col) * 4
	return color.NRGBA{fb.Color[i], fb.Color[i+1], fb.Color[i+2], fb.Color[i+3]}
}

// Coverage counts pixels whose depth holds a hit.
func (fb *FrameBuffer) Coverage() int {
	n := 0
	for _, d := range fb.Depth {
		if !math.IsInf(d, -1) {
			n++
		}
	}
	return n
}

// Image copies the color buffer into an NRGBA image.
func (fb *FrameBuffer) Image() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	copy(img.Pix, fb.Color)
	return img
}
