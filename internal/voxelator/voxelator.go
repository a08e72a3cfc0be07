// Package voxelator rasterizes scene collision geometry into occupancy
// grids. It asks the scene which objects overlap the target region,
// builds world-space shape proxies per component, tests each grid cell
// against them, and merges the per-component results into the target.
package voxelator

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Faultbox/voxelate/internal/scene"
	"github.com/Faultbox/voxelate/internal/shape"
	"github.com/Faultbox/voxelate/internal/voxel"
	"github.com/Faultbox/voxelate/pkg/vmath"
)

// ErrObjectNotFound is returned when a requested object ID is not in
// the scene.
var ErrObjectNotFound = errors.New("object not found")

// Option configures a Voxelator.
type Option func(*Voxelator)

// WithMergeOp sets the operator used when folding per-component results
// into the output store. The default is MergeOr.
func WithMergeOp(op voxel.MergeOp) Option {
	return func(v *Voxelator) { v.merge = op }
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(log *zap.Logger) Option {
	return func(v *Voxelator) { v.log = log }
}

// Voxelator turns scene collision geometry into cell occupancy.
type Voxelator struct {
	scene scene.Query
	merge voxel.MergeOp
	log   *zap.Logger
}

// New builds a Voxelator over a scene query.
func New(q scene.Query, opts ...Option) *Voxelator {
	v := &Voxelator{
		scene: q,
		merge: voxel.MergeOr,
		log:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// VoxelizeRegion rasterizes every object overlapping the grid's bounds.
func (v *Voxelator) VoxelizeRegion(grid voxel.Grid) (*voxel.OccupancyStore, error) {
	store := voxel.NewOccupancyStore(grid)
	objects := v.scene.OverlappingObjects(grid.Bounds())
	for _, obj := range objects {
		if err := v.rasterizeObject(store, obj); err != nil {
			return nil, fmt.Errorf("voxelizing object %s (%s): %w", obj.Name, obj.ID, err)
		}
	}
	v.log.Debug("voxelized region",
		zap.Int("objects", len(objects)),
		zap.Int("cells", grid.CellCount()),
		zap.Int("occupied", store.OccupiedCount()))
	return store, nil
}

// VoxelizeObject rasterizes a single object, addressed by ID, into a
// fresh store over the given grid.
func (v *Voxelator) VoxelizeObject(id uuid.UUID, grid voxel.Grid) (*voxel.OccupancyStore, error) {
	obj, ok := v.scene.ObjectByID(id)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrObjectNotFound, id)
	}
	store := voxel.NewOccupancyStore(grid)
	if err := v.rasterizeObject(store, obj); err != nil {
		return nil, fmt.Errorf("voxelizing object %s (%s): %w", obj.Name, obj.ID, err)
	}
	return store, nil
}

// rasterizeObject folds each overlapping component of obj into store.
func (v *Voxelator) rasterizeObject(store *voxel.OccupancyStore, obj scene.Object) error {
	grid := store.Grid()
	for i, c := range obj.Components {
		region, ok := c.Bounds.Intersection(grid.Bounds())
		if !ok {
			continue
		}
		local, err := v.rasterizeComponent(grid, region, c)
		if err != nil {
			return fmt.Errorf("component %d: %w", i, err)
		}
		if err := store.Merge(local, v.merge); err != nil {
			return fmt.Errorf("component %d: merging: %w", i, err)
		}
	}
	return nil
}

// rasterizeComponent builds a sub-grid over the component's clipped
// bounds, tests each of its cells against the component's shape
// proxies, and returns the local store for merging.
func (v *Voxelator) rasterizeComponent(grid voxel.Grid, region vmath.Box, c scene.Component) (*voxel.OccupancyStore, error) {
	sub, err := voxel.NewSubGrid(grid, region)
	if err != nil {
		return nil, err
	}
	local := voxel.NewOccupancyStore(sub)

	proxies, err := buildProxies(c)
	if err != nil {
		return nil, err
	}

	for index := 0; index < sub.CellCount(); index++ {
		cell, err := sub.CellBoundsByIndex(index)
		if err != nil {
			return nil, err
		}
		if proxies.intersectsCell(cell) {
			if err := local.Set(index, true); err != nil {
				return nil, err
			}
		}
	}
	return local, nil
}

// componentProxies holds the world-space shape proxies built once per
// component and reused for every cell test.
type componentProxies struct {
	boxes        []shape.OBB
	spheres      []shape.Sphere
	capsules     []shape.Capsule
	triangles    []shape.Triangle
	heightfields []shape.Heightfield
}

func buildProxies(c scene.Component) (componentProxies, error) {
	var p componentProxies
	for i, s := range c.Shapes {
		switch s.Kind {
		case scene.ShapeBox:
			p.boxes = append(p.boxes, shape.NewOBB(s.LocalBounds, c.Transform))
		case scene.ShapeSphere:
			p.spheres = append(p.spheres, shape.NewSphere(s.Center, s.Radius, c.Transform))
		case scene.ShapeCapsule:
			p.capsules = append(p.capsules, shape.NewCapsule(s.Center, s.Length, s.Radius, s.Rotation, c.Transform))
		case scene.ShapeConvex:
			p.triangles = append(p.triangles, shape.TrianglesFromMesh(s.Vertices, s.Indices, c.Transform)...)
		case scene.ShapeHeightfield:
			hf, err := shape.NewHeightfield(s.Samples, c.Bounds, c.Transform)
			if err != nil {
				return componentProxies{}, fmt.Errorf("shape %d: %w", i, err)
			}
			p.heightfields = append(p.heightfields, hf)
		default:
			return componentProxies{}, fmt.Errorf("shape %d: unhandled kind %v", i, s.Kind)
		}
	}
	return p, nil
}

// intersectsCell reports whether any proxy touches the cell, stopping
// at the first hit.
func (p componentProxies) intersectsCell(cell vmath.Box) bool {
	for _, b := range p.boxes {
		if b.IntersectsBox(cell) {
			return true
		}
	}
	for _, s := range p.spheres {
		if s.Intersects(cell) {
			return true
		}
	}
	for _, c := range p.capsules {
		if c.Intersects(cell) {
			return true
		}
	}
	for _, t := range p.triangles {
		if t.Intersects(cell) {
			return true
		}
	}
	for _, h := range p.heightfields {
		if heightfieldIntersectsCell(h, cell) {
			return true
		}
	}
	return false
}

// heightfieldIntersectsCell marks a cell occupied when the terrain
// column under the cell's center spans into the cell's Z extent. Cells
// outside the heightfield footprint never intersect.
func heightfieldIntersectsCell(h shape.Heightfield, cell vmath.Box) bool {
	lo, hi, err := h.ColumnSpan(cell.Center().XY())
	if err != nil {
		return false
	}
	return hi >= cell.Min.Z && lo <= cell.Max.Z
}
