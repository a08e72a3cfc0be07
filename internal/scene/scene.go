package scene

import (
	"github.com/google/uuid"

	"github.com/Faultbox/voxelate/pkg/vmath"
)

// Component is one placed collision element group of an object: a world
// transform, the world bounds enclosing all of its shapes, and the
// shapes themselves.
type Component struct {
	Bounds    vmath.Box
	Transform vmath.Transform
	Shapes    []Shape
}

// Object is a scene entry addressable by ID.
type Object struct {
	ID         uuid.UUID
	Name       string
	Components []Component
}

// Bounds returns the union of the object's component bounds.
func (o Object) Bounds() vmath.Box {
	if len(o.Components) == 0 {
		return vmath.Box{}
	}
	b := o.Components[0].Bounds
	for _, c := range o.Components[1:] {
		b = b.Union(c.Bounds)
	}
	return b
}

// Query enumerates collision geometry for the voxelator. Implementations
// must return objects whose component bounds intersect the region.
type Query interface {
	// OverlappingObjects returns every object with at least one
	// component whose bounds intersect the region.
	OverlappingObjects(region vmath.Box) []Object

	// ObjectByID looks up a single object.
	ObjectByID(id uuid.UUID) (Object, bool)
}

// StaticScene is an immutable-after-build in-memory Query.
type StaticScene struct {
	objects []Object
	byID    map[uuid.UUID]int
}

// NewStaticScene builds a scene from a fixed object list.
func NewStaticScene(objects ...Object) *StaticScene {
	s := &StaticScene{byID: make(map[uuid.UUID]int, len(objects))}
	for _, obj := range objects {
		s.Add(obj)
	}
	return s
}

// Add appends an object. A duplicate ID replaces the earlier entry's
// lookup slot but keeps both in iteration order.
func (s *StaticScene) Add(obj Object) {
	s.byID[obj.ID] = len(s.objects)
	s.objects = append(s.objects, obj)
}

// Objects returns all objects in insertion order.
func (s *StaticScene) Objects() []Object {
	return s.objects
}

// OverlappingObjects implements Query.
func (s *StaticScene) OverlappingObjects(region vmath.Box) []Object {
	var out []Object
	for _, obj := range s.objects {
		for _, c := range obj.Components {
			if c.Bounds.Intersects(region) {
				out = append(out, obj)
				break
			}
		}
	}
	return out
}

// ObjectByID implements Query.
func (s *StaticScene) ObjectByID(id uuid.UUID) (Object, bool) {
	i, ok := s.byID[id]
	if !ok {
		return Object{}, false
	}
	return s.objects[i], true
}
