// Package prefabs holds the authored ship and asteroid definitions: hull
// polygons in pivot-relative coordinates, a palette color, and an
// optional behavior block. Files are embedded into the binary and can be
// overridden from disk for live editing; the watcher reports edits so the
// game can rebuild spawned bodies.
package prefabs

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
	"gopkg.in/yaml.v3"

	"github.com/milk9111/starwreck/collision"
)

// ShipSpec is one authored prefab.
type ShipSpec struct {
	Name     string       `yaml:"name"`
	Size     SizeSpec     `yaml:"size"`
	Scale    float64      `yaml:"scale"`
	Color    *YAMLColor   `yaml:"color"`
	Hull     HullSpec     `yaml:"hull"`
	Behavior BehaviorSpec `yaml:"behavior"`
}

type SizeSpec struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// HullSpec is the collidable geometry: a list of convex polygons, each a
// list of [x, y] vertices relative to the ship's pivot. A concave
// silhouette must be authored as several convex parts; cmd/hullcheck
// verifies that.
type HullSpec struct {
	Polygons [][]VertexSpec `yaml:"polygons"`
}

// VertexSpec decodes a YAML [x, y] pair.
type VertexSpec struct {
	X float64
	Y float64
}

func (v *VertexSpec) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.SequenceNode || len(value.Content) != 2 {
		return fmt.Errorf("vertex must be an [x, y] pair")
	}
	var pair [2]float64
	for i, n := range value.Content {
		f, err := strconv.ParseFloat(n.Value, 64)
		if err != nil {
			return fmt.Errorf("vertex component %d: %w", i, err)
		}
		pair[i] = f
	}
	v.X, v.Y = pair[0], pair[1]
	return nil
}

// BehaviorSpec selects and tunes the movement behavior attached to a
// spawned body. Kind is one of "", "wander", or "script".
type BehaviorSpec struct {
	Kind         string  `yaml:"kind"`
	Speed        float64 `yaml:"speed"`
	TurnRate     float64 `yaml:"turn_rate"`
	WanderRadius float64 `yaml:"wander_radius"`
	GoalEpsilon  float64 `yaml:"goal_epsilon"`
	GoalInterval float64 `yaml:"goal_interval"`
	Spin         float64 `yaml:"spin"`
	Script       string  `yaml:"script"`
}

// LoadSpec decodes one YAML prefab file into T, honoring the disk
// override.
func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// LoadShip loads a ship prefab by file name, e.g. "dreadnought.yaml".
func LoadShip(filename string) (*ShipSpec, error) {
	spec, err := LoadSpec[ShipSpec](filename)
	if err != nil {
		return nil, err
	}
	if spec.Scale == 0 {
		spec.Scale = 1
	}
	return &spec, nil
}

// BuildShape constructs the collision shape authored in a hull spec.
func BuildShape(hull HullSpec) *collision.Shape {
	shape := collision.NewShape()
	for _, poly := range hull.Polygons {
		verts := make([]mgl64.Vec2, len(poly))
		for i, v := range poly {
			verts[i] = mgl64.Vec2{v.X, v.Y}
		}
		shape.AddPolygon(verts)
	}
	return shape
}

// YAMLColor decodes "#rrggbb" or "#rrggbbaa" strings.
type YAMLColor struct {
	color.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.Color = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}
