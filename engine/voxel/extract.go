package voxel

import "github.com/go-gl/mathgl/mgl32"

const noVertex = int32(-1)

// cellCorners are the node offsets of a cell's eight corners.
var cellCorners = [8]Int3{
	{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {1, 1, 0},
	{0, 0, 1}, {1, 0, 1}, {0, 1, 1}, {1, 1, 1},
}

// CellCrossesSurface reports whether the cell whose lowest corner is node
// (x, y, z) has both a strictly negative and a strictly positive corner.
func (f *Field) CellCrossesSurface(x, y, z int32) bool {
	hasSolid, hasAir := false, false
	for _, corner := range cellCorners {
		value := f.values[f.Index(x+corner.X, y+corner.Y, z+corner.Z)]
		if value < 0 {
			hasSolid = true
		} else if value > 0 {
			hasAir = true
		}
		if hasSolid && hasAir {
			return true
		}
	}
	return false
}

// cellTable maps every cell to the index of the vertex it emitted.
type cellTable struct {
	dims     Int3
	vertices []int32
}

func newCellTable(dims Int3) *cellTable {
	vertices := make([]int32, dims.X*dims.Y*dims.Z)
	for i := range vertices {
		vertices[i] = noVertex
	}
	return &cellTable{dims: dims, vertices: vertices}
}

func (t *cellTable) index(c Int3) int32 {
	return c.X + t.dims.X*(c.Y+t.dims.Y*c.Z)
}

func (t *cellTable) set(c Int3, vertex uint32) {
	t.vertices[t.index(c)] = int32(vertex)
}

func (t *cellTable) vertex(c Int3) (uint32, bool) {
	if c.X < 0 || c.Y < 0 || c.Z < 0 || c.X >= t.dims.X || c.Y >= t.dims.Y || c.Z >= t.dims.Z {
		return 0, false
	}
	v := t.vertices[t.index(c)]
	if v == noVertex {
		return 0, false
	}
	return uint32(v), true
}

// Extract builds a surface-nets style mesh from the field: one vertex at the
// center of every cell the surface passes through, and a quad for every 2x2
// patch of such cells. A patch with a missing cell leaves a hole; no
// degenerate triangles are produced. The field is not modified.
//
// Quads are wound the same way along each axis regardless of which side is
// air, so normals of faces looking down -X, -Y or -Z point into the solid.
// Consumers that need outward normals must orient them against the field.
func Extract(f *Field) *ExtractedMesh {
	mesh := NewExtractedMesh()
	dims := f.CellDims()
	cells := newCellTable(dims)
	half := f.cellSize * 0.5
	centerOffset := mgl32.Vec3{half, half, half}

	for z := int32(0); z < dims.Z; z++ {
		for y := int32(0); y < dims.Y; y++ {
			for x := int32(0); x < dims.X; x++ {
				if !f.CellCrossesSurface(x, y, z) {
					continue
				}
				center := f.NodePosition(x, y, z).Add(centerOffset)
				u := (float32(x) + 0.5) / float32(dims.X)
				v := (float32(z) + 0.5) / float32(dims.Z)
				cells.set(Int3{x, y, z}, mesh.addVertex(center, u, v))
			}
		}
	}

	if mesh.IsEmpty() {
		return mesh
	}

	for z := int32(0); z < dims.Z; z++ {
		for y := int32(0); y < dims.Y; y++ {
			for x := int32(0); x < dims.X; x++ {
				cell := Int3{x, y, z}
				a, ok := cells.vertex(cell)
				if !ok {
					continue
				}
				for axis := 0; axis < 3; axis++ {
					step := unitAxis(axis)
					side := unitAxis((axis + 1) % 3)
					b, okB := cells.vertex(cell.Add(step))
					c, okC := cells.vertex(cell.Add(step).Add(side))
					d, okD := cells.vertex(cell.Add(side))
					if okB && okC && okD {
						mesh.AppendQuad(a, b, c, d)
					}
				}
			}
		}
	}

	mesh.computeNormals()
	return mesh
}
