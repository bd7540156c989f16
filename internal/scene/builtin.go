package scene

import (
	"errors"
	"fmt"
	"sort"

	"shape-raycaster/internal/camera"
	"shape-raycaster/internal/geom"
	"shape-raycaster/internal/mathutil"
)

// ErrUnknownScene is returned by Builtin for names it does not know.
var ErrUnknownScene = errors.New("unknown built-in scene")

var (
	red    = geom.Material{Color: mathutil.Vec3{255, 0, 0}.RGBNormal()}
	green  = geom.Material{Color: mathutil.Vec3{40, 160, 60}.RGBNormal()}
	blue   = geom.Material{Color: mathutil.Vec3{40, 90, 220}.RGBNormal()}
	bgGray = mathutil.Vec3{30, 30, 30}.RGBNormal()
)

var builtins = map[string]func() (Document, error){
	"sphere":   sphereScene,
	"plane":    planeScene,
	"cylinder": cylinderScene,
	"mixed":    mixedScene,
}

// BuiltinNames lists the available built-in scenes in sorted order.
func BuiltinNames() []string {
	names := make([]string, 0, len(builtins))
	for n := range builtins {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Builtin returns one of the scenes compiled into the binary.
func Builtin(name string) (Document, error) {
	fn, ok := builtins[name]
	if !ok {
		return Document{}, fmt.Errorf("scene: %q: %w", name, ErrUnknownScene)
	}
	doc, err := fn()
	if err != nil {
		return Document{}, fmt.Errorf("scene: build %s: %w", name, err)
	}
	doc.Scene.Name = name
	return doc, nil
}

func defaultLight() Light {
	return NewLight(mathutil.Vec3{0, 5, 0}, mathutil.White, 0.7)
}

// sphereScene is a radius-2 sphere five units ahead, seen through a 2×2
// viewport on a 4×4 grid. Only the four inner pixel centers fall inside its
// silhouette (asin(2/5) ≈ 23.6° against 19.5° and 38.3° off-axis).
func sphereScene() (Document, error) {
	cam, err := camera.New(mathutil.Zero, 4, 4, 2, 2, 1, mathutil.Black)
	if err != nil {
		return Document{}, err
	}
	s, err := geom.NewSphere(mathutil.Vec3{0, 0, -5}, 2, red)
	if err != nil {
		return Document{}, err
	}
	return Document{
		Scene:  Scene{Shapes: []geom.Shape{s}, Light: defaultLight()},
		Camera: cam,
	}, nil
}

func planeScene() (Document, error) {
	cam, err := camera.New(mathutil.Zero, 320, 180, 1.6, 0.9, 1, bgGray)
	if err != nil {
		return Document{}, err
	}
	p, err := geom.NewPlane(mathutil.Vec3{0, -1, 0}, mathutil.Vec3{0, 1, 0}, green)
	if err != nil {
		return Document{}, err
	}
	return Document{
		Scene:  Scene{Shapes: []geom.Shape{p}, Light: defaultLight()},
		Camera: cam,
	}, nil
}

func cylinderScene() (Document, error) {
	cam, err := camera.New(mathutil.Zero, 320, 180, 1.6, 0.9, 1, bgGray)
	if err != nil {
		return Document{}, err
	}
	c, err := geom.NewCylinder(0.6, 1.5, mathutil.Vec3{0, -0.75, -4}, mathutil.Vec3{0.3, 1, 0.2}, blue)
	if err != nil {
		return Document{}, err
	}
	return Document{
		Scene:  Scene{Shapes: []geom.Shape{c}, Light: defaultLight()},
		Camera: cam,
	}, nil
}

func mixedScene() (Document, error) {
	cam, err := camera.New(mathutil.Zero, 640, 360, 1.6, 0.9, 1, bgGray)
	if err != nil {
		return Document{}, err
	}
	s, err := geom.NewSphere(mathutil.Vec3{-0.8, 0, -5}, 1, red)
	if err != nil {
		return Document{}, err
	}
	p, err := geom.NewPlane(mathutil.Vec3{0, -1, 0}, mathutil.Vec3{0, 1, 0}, green)
	if err != nil {
		return Document{}, err
	}
	c, err := geom.NewCylinder(0.5, 1.8, mathutil.Vec3{1.4, -1, -5.5}, mathutil.Vec3{0, 1, 0}, blue)
	if err != nil {
		return Document{}, err
	}
	return Document{
		Scene:  Scene{Shapes: []geom.Shape{p, s, c}, Light: defaultLight()},
		Camera: cam,
	}, nil
}
