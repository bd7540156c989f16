package raster

import (
	"image/color"
	"sync"

	"shape-raycaster/internal/camera"
	"shape-raycaster/internal/geom"
	"shape-raycaster/internal/mathutil"
	"shape-raycaster/internal/scene"
)

type depthSink interface {
	SetDepth(col, row int, t float64)
}

// Nearest tests r against every shape and returns the closest forward hit
// and the index of the shape that produced it, or (NoHit, -1).
func Nearest(shapes []geom.Shape, r geom.Ray) (geom.Hit, int) {
	best, idx := geom.NoHit, -1
	for i, s := range shapes {
		h := geom.Intersect(s, r)
		if !h.Ok() {
			continue
		}
		if idx < 0 || h.T < best.T {
			best, idx = h, i
		}
	}
	return best, idx
}

// Trace samples pixel (col, row) and returns its color and nearest hit.
func Trace(cam camera.Camera, sc scene.Scene, col, row int) (color.NRGBA, geom.Hit) {
	h, idx := Nearest(sc.Shapes, cam.Sample(col, row))
	if idx < 0 {
		return ToNRGBA(cam.Background), h
	}
	return ToNRGBA(geom.MaterialOf(sc.Shapes[idx]).Color), h
}

// Classify returns the shape color for foreground pixels and the camera
// background otherwise.
func Classify(cam camera.Camera, sc scene.Scene, col, row int) color.NRGBA {
	c, _ := Trace(cam, sc, col, row)
	return c
}

// Render classifies every pixel of the camera grid into sink. Rows are
// handed out to workers over a channel; each row is written by exactly one
// worker. workers <= 1 renders on the calling goroutine.
func Render(cam camera.Camera, sc scene.Scene, sink PixelSink, workers int) {
	cols, rows := cam.Size()
	ds, _ := sink.(depthSink)

	renderRow := func(row int) {
		for col := 0; col < cols; col++ {
			c, h := Trace(cam, sc, col, row)
			sink.SetPixel(col, row, c)
			if ds != nil && h.Ok() {
				ds.SetDepth(col, row, h.T)
			}
		}
	}

	if workers <= 1 {
		for row := 0; row < rows; row++ {
			renderRow(row)
		}
		return
	}

	rowChan := make(chan int, workers*2)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for row := range rowChan {
				renderRow(row)
			}
		}()
	}

	for row := 0; row < rows; row++ {
		rowChan <- row
	}
	close(rowChan)

	wg.Wait()
}

// RenderImage renders into a fresh framebuffer sized to the camera grid.
func RenderImage(cam camera.Camera, sc scene.Scene, workers int) *FrameBuffer {
	cols, rows := cam.Size()
	fb := NewFrameBuffer(cols, rows)
	Render(cam, sc, fb, workers)
	return fb
}

// ToNRGBA converts a 0–1 color to opaque 8-bit RGBA.
func ToNRGBA(c mathutil.Vec3) color.NRGBA {
	v := c.Clamp(0, 1).RGB255()
	return color.NRGBA{clamp255(v[0]), clamp255(v[1]), clamp255(v[2]), 255}
}

func clamp255(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}
