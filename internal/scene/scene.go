package scene

import (
	"shape-raycaster/internal/camera"
	"shape-raycaster/internal/geom"
	"shape-raycaster/internal/mathutil"
)

// Light is a point light. The renderer carries it but does not shade with it.
type Light struct {
	Pos       mathutil.Vec3
	Intensity mathutil.Vec3 // color scaled by intensity
}

// NewLight stores color·intensity as the light's radiance.
func NewLight(pos, color mathutil.Vec3, intensity float64) Light {
	return Light{Pos: pos, Intensity: color.Scale(intensity)}
}

// Scene is the set of shapes to render plus its light.
type Scene struct {
	Name   string
	Shapes []geom.Shape
	Light  Light
}

// Document is a loaded scene together with the camera it was described with.
type Document struct {
	Scene  Scene
	Camera camera.Camera
}
