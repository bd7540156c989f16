package camera

import (
	"errors"
	"fmt"

	"shape-raycaster/internal/geom"
	"shape-raycaster/internal/mathutil"
)

// ErrInvalidCamera is returned for non-positive viewport dimensions or counts.
var ErrInvalidCamera = errors.New("invalid camera")

// Viewport is the image plane sampled once per pixel. It is axis-aligned:
// columns advance along +X and rows along −Y.
type Viewport struct {
	Pos     mathutil.Vec3 // center of the image plane
	Width   float64
	Height  float64
	Cols    int
	Rows    int
	DX      mathutil.Vec3 // (Width/Cols, 0, 0)
	DY      mathutil.Vec3 // (0, Height/Rows, 0)
	TopLeft mathutil.Vec3
	P00     mathutil.Vec3 // center of pixel (0,0)
}

// NewViewport derives the per-pixel steps and corner coordinates.
func NewViewport(pos mathutil.Vec3, width, height float64, cols, rows int) (Viewport, error) {
	if cols <= 0 || rows <= 0 {
		return Viewport{}, fmt.Errorf("camera: grid %dx%d: %w", cols, rows, ErrInvalidCamera)
	}
	if !(width > 0) || !(height > 0) {
		return Viewport{}, fmt.Errorf("camera: viewport %gx%g: %w", width, height, ErrInvalidCamera)
	}

	topLeft := mathutil.Vec3{pos[0] - width/2, pos[1] + height/2, pos[2]}
	dx := mathutil.Vec3{width / float64(cols), 0, 0}
	dy := mathutil.Vec3{0, height / float64(rows), 0}

	return Viewport{
		Pos:     pos,
		Width:   width,
		Height:  height,
		Cols:    cols,
		Rows:    rows,
		DX:      dx,
		DY:      dy,
		TopLeft: topLeft,
		P00:     topLeft.Add(dx.Div(2)).Sub(dy.Div(2)),
	}, nil
}

// Camera is an observer looking down −Z through its viewport.
type Camera struct {
	Pos        mathutil.Vec3
	Background mathutil.Vec3 // 0–1 range
	Viewport   Viewport
}

// New places the viewport distance units in front of pos.
func New(pos mathutil.Vec3, cols, rows int, width, height, distance float64, bg mathutil.Vec3) (Camera, error) {
	if !(distance > 0) {
		return Camera{}, fmt.Errorf("camera: distance %g: %w", distance, ErrInvalidCamera)
	}
	vp, err := NewViewport(pos.Add(mathutil.ViewAxis.Scale(distance)), width, height, cols, rows)
	if err != nil {
		return Camera{}, err
	}
	return Camera{Pos: pos, Background: bg, Viewport: vp}, nil
}

// Direction returns the unnormalized ray direction through pixel (col, row).
func (c Camera) Direction(col, row int) mathutil.Vec3 {
	vp := c.Viewport
	return vp.P00.
		Add(vp.DX.Scale(float64(col))).
		Sub(vp.DY.Scale(float64(row))).
		Sub(c.Pos)
}

// Sample returns the ray from the observer through pixel (col, row).
func (c Camera) Sample(col, row int) geom.Ray {
	return geom.NewRay(c.Pos, c.Direction(col, row))
}

// Size returns the pixel grid dimensions.
func (c Camera) Size() (cols, rows int) {
	return c.Viewport.Cols, c.Viewport.Rows
}
