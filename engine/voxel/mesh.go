package voxel

import "github.com/go-gl/mathgl/mgl32"

// ExtractedMesh holds parallel flat vertex arrays: three floats per vertex
// for positions and normals, two per vertex for UVs, three indices per
// triangle with counter-clockwise winding.
type ExtractedMesh struct {
	Positions []float32
	Normals   []float32
	UVs       []float32
	Indices   []uint32
}

func NewExtractedMesh() *ExtractedMesh {
	return &ExtractedMesh{}
}

func (m *ExtractedMesh) VertexCount() int {
	return len(m.Positions) / 3
}

func (m *ExtractedMesh) TriangleCount() int {
	return len(m.Indices) / 3
}

func (m *ExtractedMesh) IsEmpty() bool {
	return len(m.Positions) == 0
}

func (m *ExtractedMesh) Reset() {
	m.Positions = m.Positions[:0]
	m.Normals = m.Normals[:0]
	m.UVs = m.UVs[:0]
	m.Indices = m.Indices[:0]
}

func (m *ExtractedMesh) Position(i int) mgl32.Vec3 {
	return mgl32.Vec3{m.Positions[i*3], m.Positions[i*3+1], m.Positions[i*3+2]}
}

func (m *ExtractedMesh) Normal(i int) mgl32.Vec3 {
	return mgl32.Vec3{m.Normals[i*3], m.Normals[i*3+1], m.Normals[i*3+2]}
}

func (m *ExtractedMesh) Triangle(i int) [3]uint32 {
	return [3]uint32{m.Indices[i*3], m.Indices[i*3+1], m.Indices[i*3+2]}
}

// addVertex appends a vertex with a zero normal and returns its index.
func (m *ExtractedMesh) addVertex(position mgl32.Vec3, u, v float32) uint32 {
	index := uint32(m.VertexCount())
	m.Positions = append(m.Positions, position.X(), position.Y(), position.Z())
	m.Normals = append(m.Normals, 0, 0, 0)
	m.UVs = append(m.UVs, u, v)
	return index
}

// AppendQuad adds a, b, c, d (counter-clockwise) as the triangles (a,b,c) and (a,c,d).
func (m *ExtractedMesh) AppendQuad(a, b, c, d uint32) {
	m.Indices = append(m.Indices, a, b, c, a, c, d)
}

// computeNormals accumulates area-weighted face normals into each vertex and
// normalizes them. Vertices not referenced by any triangle point up.
func (m *ExtractedMesh) computeNormals() {
	for i := range m.Normals {
		m.Normals[i] = 0
	}
	for t := 0; t < m.TriangleCount(); t++ {
		tri := m.Triangle(t)
		a, b, c := m.Position(int(tri[0])), m.Position(int(tri[1])), m.Position(int(tri[2]))
		// the cross product length is twice the triangle area
		faceNormal := b.Sub(a).Cross(c.Sub(a))
		for _, vi := range tri {
			m.Normals[vi*3] += faceNormal.X()
			m.Normals[vi*3+1] += faceNormal.Y()
			m.Normals[vi*3+2] += faceNormal.Z()
		}
	}
	for i := 0; i < m.VertexCount(); i++ {
		n := m.Normal(i)
		if n.Dot(n) < 1e-12 {
			n = mgl32.Vec3{0, 1, 0}
		} else {
			n = n.Normalize()
		}
		m.Normals[i*3], m.Normals[i*3+1], m.Normals[i*3+2] = n.X(), n.Y(), n.Z()
	}
}
