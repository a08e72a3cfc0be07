package scene

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/Faultbox/voxelate/internal/shape"
	"github.com/Faultbox/voxelate/pkg/vmath"
)

// Scene file schema. Vectors are [x y z] arrays, quaternions [x y z w].
type sceneFile struct {
	Objects []objectSpec `yaml:"objects"`
}

type objectSpec struct {
	ID         string          `yaml:"id"`
	Name       string          `yaml:"name"`
	Components []componentSpec `yaml:"components"`
}

type componentSpec struct {
	Position []float64   `yaml:"position"`
	Rotation []float64   `yaml:"rotation"`
	Scale    []float64   `yaml:"scale"`
	Bounds   *boundsSpec `yaml:"bounds"`
	Shapes   []shapeSpec `yaml:"shapes"`
}

type boundsSpec struct {
	Min []float64 `yaml:"min"`
	Max []float64 `yaml:"max"`
}

type shapeSpec struct {
	Kind     string      `yaml:"kind"`
	Center   []float64   `yaml:"center"`
	Extents  []float64   `yaml:"extents"`
	Radius   float64     `yaml:"radius"`
	Length   float64     `yaml:"length"`
	Rotation []float64   `yaml:"rotation"`
	Vertices [][]float64 `yaml:"vertices"`
	Indices  []int32     `yaml:"indices"`
	Samples  []uint16    `yaml:"samples"`
}

// Load reads a YAML scene file into a StaticScene. Objects without an
// explicit ID get a fresh one; components without explicit bounds get
// bounds computed from their shapes.
func Load(path string) (*StaticScene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading scene from %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes YAML scene data.
func Parse(data []byte) (*StaticScene, error) {
	var file sceneFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing scene: %w", err)
	}

	s := NewStaticScene()
	for i, spec := range file.Objects {
		obj, err := buildObject(spec)
		if err != nil {
			return nil, fmt.Errorf("object %d (%s): %w", i, spec.Name, err)
		}
		s.Add(obj)
	}
	return s, nil
}

func buildObject(spec objectSpec) (Object, error) {
	id := uuid.New()
	if spec.ID != "" {
		parsed, err := uuid.Parse(spec.ID)
		if err != nil {
			return Object{}, fmt.Errorf("parsing id: %w", err)
		}
		id = parsed
	}

	obj := Object{ID: id, Name: spec.Name}
	for i, cs := range spec.Components {
		c, err := buildComponent(cs)
		if err != nil {
			return Object{}, fmt.Errorf("component %d: %w", i, err)
		}
		obj.Components = append(obj.Components, c)
	}
	return obj, nil
}

func buildComponent(spec componentSpec) (Component, error) {
	pos, err := vec3(spec.Position, vmath.Vec3{})
	if err != nil {
		return Component{}, fmt.Errorf("position: %w", err)
	}
	rot, err := quat(spec.Rotation)
	if err != nil {
		return Component{}, fmt.Errorf("rotation: %w", err)
	}
	scale, err := vec3(spec.Scale, vmath.Vec3{X: 1, Y: 1, Z: 1})
	if err != nil {
		return Component{}, fmt.Errorf("scale: %w", err)
	}

	c := Component{Transform: vmath.NewTransform(pos, rot, scale)}
	for i, ss := range spec.Shapes {
		sh, err := buildShape(ss)
		if err != nil {
			return Component{}, fmt.Errorf("shape %d: %w", i, err)
		}
		c.Shapes = append(c.Shapes, sh)
	}

	if spec.Bounds != nil {
		min, err := vec3(spec.Bounds.Min, vmath.Vec3{})
		if err != nil {
			return Component{}, fmt.Errorf("bounds min: %w", err)
		}
		max, err := vec3(spec.Bounds.Max, vmath.Vec3{})
		if err != nil {
			return Component{}, fmt.Errorf("bounds max: %w", err)
		}
		c.Bounds = vmath.NewBox(min, max)
		return c, nil
	}

	bounds, err := computeBounds(c)
	if err != nil {
		return Component{}, err
	}
	c.Bounds = bounds
	return c, nil
}

func buildShape(spec shapeSpec) (Shape, error) {
	kind, err := ParseShapeKind(spec.Kind)
	if err != nil {
		return Shape{}, err
	}

	sh := Shape{Kind: kind}
	switch kind {
	case ShapeBox:
		center, err := vec3(spec.Center, vmath.Vec3{})
		if err != nil {
			return Shape{}, fmt.Errorf("center: %w", err)
		}
		extents, err := vec3(spec.Extents, vmath.Vec3{})
		if err != nil {
			return Shape{}, fmt.Errorf("extents: %w", err)
		}
		sh.LocalBounds = vmath.NewBox(center.Sub(extents), center.Add(extents))

	case ShapeSphere:
		sh.Center, err = vec3(spec.Center, vmath.Vec3{})
		if err != nil {
			return Shape{}, fmt.Errorf("center: %w", err)
		}
		if spec.Radius <= 0 {
			return Shape{}, fmt.Errorf("sphere radius %v must be positive", spec.Radius)
		}
		sh.Radius = spec.Radius

	case ShapeCapsule:
		sh.Center, err = vec3(spec.Center, vmath.Vec3{})
		if err != nil {
			return Shape{}, fmt.Errorf("center: %w", err)
		}
		sh.Rotation, err = quat(spec.Rotation)
		if err != nil {
			return Shape{}, fmt.Errorf("rotation: %w", err)
		}
		if spec.Radius <= 0 {
			return Shape{}, fmt.Errorf("capsule radius %v must be positive", spec.Radius)
		}
		sh.Radius = spec.Radius
		sh.Length = spec.Length

	case ShapeConvex:
		for i, v := range spec.Vertices {
			p, err := vec3(v, vmath.Vec3{})
			if err != nil {
				return Shape{}, fmt.Errorf("vertex %d: %w", i, err)
			}
			sh.Vertices = append(sh.Vertices, p)
		}
		if len(spec.Indices)%3 != 0 {
			return Shape{}, fmt.Errorf("index count %d is not a multiple of 3", len(spec.Indices))
		}
		for _, idx := range spec.Indices {
			if int(idx) < 0 || int(idx) >= len(sh.Vertices) {
				return Shape{}, fmt.Errorf("index %d out of range", idx)
			}
		}
		sh.Indices = spec.Indices

	case ShapeHeightfield:
		sh.Samples = spec.Samples
	}
	return sh, nil
}

// computeBounds derives component bounds from world-space shape proxies.
// Heightfields need explicit bounds since their footprint comes from the
// bounds themselves.
func computeBounds(c Component) (vmath.Box, error) {
	if len(c.Shapes) == 0 {
		p := c.Transform.Position
		return vmath.Box{Min: p, Max: p}, nil
	}

	var bounds vmath.Box
	for i, sh := range c.Shapes {
		var b vmath.Box
		switch sh.Kind {
		case ShapeBox:
			obb := shape.NewOBB(sh.LocalBounds, c.Transform)
			corners := obb.Corners()
			b = vmath.BoxFromPoints(corners[:]...)
		case ShapeSphere:
			sp := shape.NewSphere(sh.Center, sh.Radius, c.Transform)
			b = vmath.Box{Min: sp.Center, Max: sp.Center}.Expand(sp.Radius)
		case ShapeCapsule:
			cp := shape.NewCapsule(sh.Center, sh.Length, sh.Radius, sh.Rotation, c.Transform)
			b = vmath.BoxFromPoints(cp.Start, cp.End).Expand(cp.Radius)
		case ShapeConvex:
			world := make([]vmath.Vec3, len(sh.Vertices))
			for j, v := range sh.Vertices {
				world[j] = c.Transform.TransformPosition(v)
			}
			b = vmath.BoxFromPoints(world...)
		case ShapeHeightfield:
			return vmath.Box{}, fmt.Errorf("heightfield shapes require explicit component bounds")
		}
		if i == 0 {
			bounds = b
		} else {
			bounds = bounds.Union(b)
		}
	}
	return bounds, nil
}

func vec3(v []float64, def vmath.Vec3) (vmath.Vec3, error) {
	if v == nil {
		return def, nil
	}
	if len(v) != 3 {
		return vmath.Vec3{}, fmt.Errorf("expected 3 components, got %d", len(v))
	}
	return vmath.Vec3{X: v[0], Y: v[1], Z: v[2]}, nil
}

func quat(v []float64) (vmath.Quat, error) {
	if v == nil {
		return vmath.QuatIdentity(), nil
	}
	if len(v) != 4 {
		return vmath.Quat{}, fmt.Errorf("expected 4 components, got %d", len(v))
	}
	return vmath.Quat{X: v[0], Y: v[1], Z: v[2], W: v[3]}.Normalize(), nil
}
