package voxel

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// SampleFunc is an implicit function evaluated at world positions.
// Negative is solid, positive is air.
type SampleFunc func(p mgl32.Vec3) float32

// Field is a fixed-size grid of signed-distance-like samples stored in one
// flat slice. Node (x, y, z) lives at x + nx*(y + ny*z).
type Field struct {
	values   []float32
	size     Int3
	cellSize float32
	origin   mgl32.Vec3
}

// NewField allocates a zeroed field with size.X*size.Y*size.Z nodes.
// Each axis is clamped to at least two nodes so there is always one cell.
func NewField(size Int3, cellSize float32, origin mgl32.Vec3) *Field {
	size.X = max(size.X, 2)
	size.Y = max(size.Y, 2)
	size.Z = max(size.Z, 2)
	if cellSize <= 0 {
		cellSize = 1
	}
	return &Field{
		values:   make([]float32, size.X*size.Y*size.Z),
		size:     size,
		cellSize: cellSize,
		origin:   origin,
	}
}

func (f *Field) Size() Int3         { return f.size }
func (f *Field) CellSize() float32  { return f.cellSize }
func (f *Field) Origin() mgl32.Vec3 { return f.origin }
func (f *Field) NodeCount() int     { return len(f.values) }

// Values exposes the backing slice; callers must not resize it.
func (f *Field) Values() []float32 { return f.values }

func (f *Field) CellDims() Int3 {
	return Int3{f.size.X - 1, f.size.Y - 1, f.size.Z - 1}
}

func (f *Field) CellCount() int {
	c := f.CellDims()
	return int(c.X * c.Y * c.Z)
}

func (f *Field) Index(x, y, z int32) int32 {
	return x + f.size.X*(y+f.size.Y*z)
}

func (f *Field) String() string {
	return fmt.Sprintf("Field{%dx%dx%d, cell %.3f}", f.size.X, f.size.Y, f.size.Z, f.cellSize)
}

// Coords is the inverse of Index.
func (f *Field) Coords(index int32) Int3 {
	x := index % f.size.X
	rest := index / f.size.X
	return Int3{X: x, Y: rest % f.size.Y, Z: rest / f.size.Y}
}

func (f *Field) Contains(x, y, z int32) bool {
	return x >= 0 && x < f.size.X && y >= 0 && y < f.size.Y && z >= 0 && z < f.size.Z
}

// Get returns the sample at a node; out-of-range nodes read as air (+1).
func (f *Field) Get(x, y, z int32) float32 {
	if !f.Contains(x, y, z) {
		return 1
	}
	return f.values[f.Index(x, y, z)]
}

func (f *Field) Set(x, y, z int32, value float32) {
	if !f.Contains(x, y, z) {
		return
	}
	f.values[f.Index(x, y, z)] = value
}

func (f *Field) NodePosition(x, y, z int32) mgl32.Vec3 {
	return f.origin.Add(Int3{x, y, z}.ToVec3().Mul(f.cellSize))
}

// Fill samples fn at the world position of every node.
func (f *Field) Fill(fn SampleFunc) {
	for z := int32(0); z < f.size.Z; z++ {
		for y := int32(0); y < f.size.Y; y++ {
			for x := int32(0); x < f.size.X; x++ {
				f.values[f.Index(x, y, z)] = fn(f.NodePosition(x, y, z))
			}
		}
	}
}

// Clone returns a deep copy.
func (f *Field) Clone() *Field {
	values := make([]float32, len(f.values))
	copy(values, f.values)
	return &Field{values: values, size: f.size, cellSize: f.cellSize, origin: f.origin}
}
