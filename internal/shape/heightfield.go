package shape

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/Faultbox/voxelate/internal/voxel"
	"github.com/Faultbox/voxelate/pkg/vmath"
)

// Height samples are packed 16-bit values linearly mapped onto this
// fixed range before Z scaling.
const (
	heightRangeMin = -256.0
	heightRangeMax = 255.992
)

// DecodeHeight converts a packed 16-bit height sample into a local-space
// height: lerp over [-256, 255.992] scaled by the instance Z scale.
func DecodeHeight(sample uint16, scaleZ float64) float64 {
	f := float64(sample) / float64(math.MaxUint16)
	return (heightRangeMin + (heightRangeMax-heightRangeMin)*f) * scaleZ
}

// Heightfield is a terrain collision surface proxy: a row-major lattice
// of world-space height samples over an XY footprint. Samples are laid
// out at (resolution+1) stride; each lattice cell (quad) is bounded by
// its four corner samples.
type Heightfield struct {
	transform vmath.Transform
	bounds    vmath.Box
	heights   []float64
	columns   voxel.Grid2D // quad lattice in footprint-local XY space
	stride    int          // samples per row
}

// NewHeightfield decodes the packed samples once and builds the column
// lattice. samples must hold a square sample count of at least 2x2;
// bounds are the component's world bounds and instance its transform.
func NewHeightfield(samples []uint16, bounds vmath.Box, instance vmath.Transform) (Heightfield, error) {
	stride := int(math.Sqrt(float64(len(samples))))
	if stride < 2 || stride*stride != len(samples) {
		return Heightfield{}, fmt.Errorf("heightfield: sample count %d is not a square of at least 2", len(samples))
	}

	heights := make([]float64, len(samples))
	for i, s := range samples {
		heights[i] = instance.Position.Z + DecodeHeight(s, instance.Scale.Z)
	}

	// Column lattice in footprint-local space: (stride-1) quads per axis
	// anchored at the origin, so quad edges land exactly on sample rows.
	size := bounds.Size()
	quad := vmath.Vec2{
		X: size.X / float64(stride-1),
		Y: size.Y / float64(stride-1),
	}
	columns := voxel.NewGrid2D(quad, vmath.Rect{
		Max: vmath.Vec2{X: size.X, Y: size.Y},
	})

	return Heightfield{
		transform: instance,
		bounds:    bounds,
		heights:   heights,
		columns:   columns,
		stride:    stride,
	}, nil
}

// Bounds returns the component's world bounds.
func (h Heightfield) Bounds() vmath.Box {
	return h.bounds
}

// SampleCount returns the number of height samples.
func (h Heightfield) SampleCount() int {
	return len(h.heights)
}

// Height returns the world-space height at a flat sample index.
func (h Heightfield) Height(index int) (float64, error) {
	if index < 0 || index >= len(h.heights) {
		return 0, fmt.Errorf("%w: %d", voxel.ErrInvalidIndex, index)
	}
	return h.heights[index], nil
}

// HeightAt returns the world-space height at a sample coordinate.
func (h Heightfield) HeightAt(c vmath.IVec2) (float64, error) {
	if c.X < 0 || c.X >= h.stride || c.Y < 0 || c.Y >= h.stride {
		return 0, fmt.Errorf("%w: %v", voxel.ErrInvalidCoordinate, c)
	}
	return h.heights[c.X+c.Y*h.stride], nil
}

// column returns the quad coordinate containing a world XY location,
// clamped so the quad's far corner samples stay in range.
func (h Heightfield) column(loc vmath.Vec2) (vmath.IVec2, error) {
	local := loc.Sub(h.bounds.Min.XY())
	c, err := h.columns.CellCoordinateAt(local)
	if err != nil {
		return vmath.IVec2{}, err
	}
	if c.X > h.stride-2 {
		c.X = h.stride - 2
	}
	if c.Y > h.stride-2 {
		c.Y = h.stride - 2
	}
	return c, nil
}

// CornerHeights returns the four world-space sample heights bounding the
// quad that contains the world XY location, in row-major order.
func (h Heightfield) CornerHeights(loc vmath.Vec2) ([]float64, error) {
	c, err := h.column(loc)
	if err != nil {
		return nil, err
	}
	return []float64{
		h.heights[c.X+c.Y*h.stride],
		h.heights[(c.X+1)+c.Y*h.stride],
		h.heights[c.X+(c.Y+1)*h.stride],
		h.heights[(c.X+1)+(c.Y+1)*h.stride],
	}, nil
}

// MinHeight returns the lowest corner height of the quad containing the
// world XY location.
func (h Heightfield) MinHeight(loc vmath.Vec2) (float64, error) {
	corners, err := h.CornerHeights(loc)
	if err != nil {
		return 0, err
	}
	return floats.Min(corners), nil
}

// MaxHeight returns the highest corner height of the quad containing the
// world XY location.
func (h Heightfield) MaxHeight(loc vmath.Vec2) (float64, error) {
	corners, err := h.CornerHeights(loc)
	if err != nil {
		return 0, err
	}
	return floats.Max(corners), nil
}

// MeanHeight returns the mean corner height of the quad containing the
// world XY location.
func (h Heightfield) MeanHeight(loc vmath.Vec2) (float64, error) {
	corners, err := h.CornerHeights(loc)
	if err != nil {
		return 0, err
	}
	return stat.Mean(corners, nil), nil
}

// ColumnSpan returns the [min, max] world Z range of the quad containing
// the world XY location. A grid cell in that column is occupied when its
// Z extent intersects this span.
func (h Heightfield) ColumnSpan(loc vmath.Vec2) (min, max float64, err error) {
	corners, err := h.CornerHeights(loc)
	if err != nil {
		return 0, 0, err
	}
	return floats.Min(corners), floats.Max(corners), nil
}
