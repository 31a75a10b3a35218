package util

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// MeshCollider is a triangle soup over flat xyz position data, optionally
// indexed. It does not copy the slices it is given.
type MeshCollider struct {
	Positions     []float32
	Indices       []uint32
	TransformFunc func() mgl32.Mat4
	name          string
}

func NewMeshCollider(name string, positions []float32, indices []uint32) *MeshCollider {
	return &MeshCollider{
		Positions: positions,
		Indices:   indices,
		name:      name,
	}
}

func (m *MeshCollider) TriangleCount() int {
	if m.Indices != nil {
		return len(m.Indices) / 3
	}
	return len(m.Positions) / 9
}

func (m *MeshCollider) vertex(i uint32, transform mgl32.Mat4, transformed bool) mgl32.Vec3 {
	v := mgl32.Vec3{m.Positions[i*3], m.Positions[i*3+1], m.Positions[i*3+2]}
	if !transformed {
		return v
	}
	return transform.Mul4x1(v.Vec4(1)).Vec3()
}

func (m *MeshCollider) IterateTrianglesTransformed(callback func(triangle [3]mgl32.Vec3)) {
	var transform mgl32.Mat4
	transformed := m.TransformFunc != nil
	if transformed {
		transform = m.TransformFunc()
	}
	if m.Indices != nil {
		for i := 0; i+2 < len(m.Indices); i += 3 {
			a := m.vertex(m.Indices[i], transform, transformed)
			b := m.vertex(m.Indices[i+1], transform, transformed)
			c := m.vertex(m.Indices[i+2], transform, transformed)
			callback([3]mgl32.Vec3{a, b, c})
		}
		return
	}
	vertexCount := uint32(len(m.Positions) / 3)
	for i := uint32(0); i+2 < vertexCount; i += 3 {
		callback([3]mgl32.Vec3{
			m.vertex(i, transform, transformed),
			m.vertex(i+1, transform, transformed),
			m.vertex(i+2, transform, transformed),
		})
	}
}

// IntersectsRay reports the hit closest to rayStart on the segment rayStart..rayEnd.
func (m *MeshCollider) IntersectsRay(rayStart, rayEnd mgl32.Vec3) (bool, mgl32.Vec3) {
	minDist := float32(math.MaxFloat32)
	doesIntersect := false
	nearestIntersection := mgl32.Vec3{0, 0, 0}
	m.IterateTrianglesTransformed(func(triangle [3]mgl32.Vec3) {
		intersection, atPoint := intersectLineSegmentTriangle(rayStart, rayEnd, triangle[0], triangle[1], triangle[2])
		if !intersection {
			return
		}
		doesIntersect = true
		dist := atPoint.Sub(rayStart).Len()
		if dist < minDist {
			minDist = dist
			nearestIntersection = atPoint
		}
	})
	return doesIntersect, nearestIntersection
}

func (m *MeshCollider) String() string {
	if len(m.Positions) < 3 {
		return fmt.Sprintf("MeshCollider{%s, empty}", m.name)
	}
	return fmt.Sprintf("MeshCollider{%s, %d triangles, FirstVertex = %v}", m.name, m.TriangleCount(), m.Positions[0:3])
}
