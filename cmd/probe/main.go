package main

import (
	"flag"
	"fmt"
	"os"

	"shape-raycaster/internal/batch"
	"shape-raycaster/internal/geom"
	"shape-raycaster/internal/raster"
)

func main() {
	sceneFile := flag.String("scene", "", "Scene JSON file")
	builtin := flag.String("builtin", "mixed", "Built-in scene, used when -scene is empty")
	col := flag.Int("col", -1, "Pixel column (default: center)")
	row := flag.Int("row", -1, "Pixel row (default: center)")
	flag.Parse()

	job := batch.BuiltinJob(*builtin)
	if *sceneFile != "" {
		job = batch.FileJob(*sceneFile)
	}
	doc, err := batch.LoadJob(job)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	cam := doc.Camera
	cols, rows := cam.Size()
	if *col < 0 {
		*col = cols / 2
	}
	if *row < 0 {
		*row = rows / 2
	}
	if *col >= cols || *row >= rows {
		fmt.Printf("Error: pixel (%d,%d) outside %dx%d grid\n", *col, *row, cols, rows)
		os.Exit(1)
	}

	vp := cam.Viewport
	fmt.Printf("Scene: %s, shapes=%d\n", doc.Scene.Name, len(doc.Scene.Shapes))
	fmt.Printf("Viewport: %gx%g at %v, grid %dx%d\n", vp.Width, vp.Height, vp.Pos, cols, rows)
	fmt.Printf("  dx=%v dy=%v\n  topLeft=%v p00=%v\n", vp.DX, vp.DY, vp.TopLeft, vp.P00)

	ray := cam.Sample(*col, *row)
	fmt.Printf("Pixel (%d,%d): origin=%v dir=%v\n", *col, *row, ray.Origin, ray.Dir)

	for i, s := range doc.Scene.Shapes {
		h := geom.Intersect(s, ray)
		if !h.Ok() {
			fmt.Printf("  [%d] %-8s miss\n", i, geom.Name(s))
			continue
		}
		fmt.Printf("  [%d] %-8s t=%.6f point=%.4v normal=%.4v\n", i, geom.Name(s), h.T, ray.At(h.T), h.Normal)
	}

	h, idx := raster.Nearest(doc.Scene.Shapes, ray)
	c := raster.Classify(cam, doc.Scene, *col, *row)
	if idx < 0 {
		fmt.Printf("Result: background rgba(%d,%d,%d,%d)\n", c.R, c.G, c.B, c.A)
		return
	}
	fmt.Printf("Result: shape %d (%s) at t=%.6f rgba(%d,%d,%d,%d)\n", idx, geom.Name(doc.Scene.Shapes[idx]), h.T, c.R, c.G, c.B, c.A)
}
