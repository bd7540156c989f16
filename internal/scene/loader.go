package scene

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"shape-raycaster/internal/camera"
	"shape-raycaster/internal/geom"
	"shape-raycaster/internal/mathutil"
)

// jsonScene matches the scene file schema. Colors are 0–255.
type jsonScene struct {
	Camera jsonCamera  `json:"camera"`
	Light  *jsonLight  `json:"light"`
	Shapes []jsonShape `json:"shapes"`
}

type jsonCamera struct {
	Position   mathutil.Vec3 `json:"position"`
	Cols       int           `json:"cols"`
	Rows       int           `json:"rows"`
	Width      float64       `json:"width"`
	Height     float64       `json:"height"`
	Distance   float64       `json:"distance"`
	Background mathutil.Vec3 `json:"background"`
}

type jsonLight struct {
	Position  mathutil.Vec3 `json:"position"`
	Color     mathutil.Vec3 `json:"color"`
	Intensity float64       `json:"intensity"`
}

type jsonShape struct {
	Type  string        `json:"type"`
	Color mathutil.Vec3 `json:"color"`

	// sphere
	Center mathutil.Vec3 `json:"center"`
	Radius float64       `json:"radius"`

	// plane
	Point  mathutil.Vec3 `json:"point"`
	Normal mathutil.Vec3 `json:"normal"`

	// cylinder
	Base   mathutil.Vec3 `json:"base"`
	Axis   mathutil.Vec3 `json:"axis"`
	Height float64       `json:"height"`
}

// Load reads a JSON scene file and builds its camera and shapes.
func Load(path string) (Document, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Document{}, fmt.Errorf("scene: read %s: %w", path, err)
	}

	doc, err := Parse(raw)
	if err != nil {
		return Document{}, fmt.Errorf("scene: parse %s: %w", path, err)
	}
	doc.Scene.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return doc, nil
}

// Parse decodes a scene document from JSON bytes.
func Parse(raw []byte) (Document, error) {
	var js jsonScene
	if err := json.Unmarshal(raw, &js); err != nil {
		return Document{}, err
	}

	jc := js.Camera
	if jc.Distance == 0 {
		jc.Distance = 1
	}
	cam, err := camera.New(jc.Position, jc.Cols, jc.Rows, jc.Width, jc.Height, jc.Distance,
		jc.Background.Clamp(0, 255).RGBNormal())
	if err != nil {
		return Document{}, err
	}

	sc := Scene{}
	if js.Light != nil {
		sc.Light = NewLight(js.Light.Position, js.Light.Color.Clamp(0, 255).RGBNormal(), js.Light.Intensity)
	}

	for i, s := range js.Shapes {
		shape, err := s.build()
		if err != nil {
			return Document{}, fmt.Errorf("shape %d: %w", i, err)
		}
		sc.Shapes = append(sc.Shapes, shape)
	}

	return Document{Scene: sc, Camera: cam}, nil
}

func (s jsonShape) build() (geom.Shape, error) {
	mat := geom.Material{Color: s.Color.Clamp(0, 255).RGBNormal()}

	switch strings.ToLower(s.Type) {
	case "sphere":
		return geom.NewSphere(s.Center, s.Radius, mat)
	case "plane":
		return geom.NewPlane(s.Point, s.Normal, mat)
	case "cylinder":
		return geom.NewCylinder(s.Radius, s.Height, s.Base, s.Axis, mat)
	default:
		return nil, fmt.Errorf("unknown shape type %q: %w", s.Type, geom.ErrInvalidShape)
	}
}
