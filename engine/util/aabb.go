package util

import (
	"github.com/go-gl/mathgl/mgl32"
)

type AABB struct {
	center  mgl32.Vec3
	extents mgl32.Vec3 // size in respective axis, they extend from the center to the max and min
}

func NewAABB(center, extents mgl32.Vec3) AABB {
	return AABB{
		center:  center,
		extents: extents,
	}
}

func NewAABBFromMin(min, extents mgl32.Vec3) AABB {
	return AABB{
		center:  min.Add(extents.Mul(0.5)),
		extents: extents,
	}
}
func (a AABB) Min() mgl32.Vec3 {
	return a.center.Sub(a.extents.Mul(0.5))
}

func (a AABB) Max() mgl32.Vec3 {
	return a.center.Add(a.extents.Mul(0.5))
}

func (a AABB) Contains(vec3 mgl32.Vec3) bool {
	minVal := a.Min()
	maxVal := a.Max()
	return vec3.X() >= minVal.X() && vec3.X() <= maxVal.X() &&
		vec3.Y() >= minVal.Y() && vec3.Y() <= maxVal.Y() &&
		vec3.Z() >= minVal.Z() && vec3.Z() <= maxVal.Z()
}

func (a AABB) Center() mgl32.Vec3 {
	return a.center
}

func (a AABB) Extents() mgl32.Vec3 {
	return a.extents
}

// ClosestPoint clamps p onto the box.
func (a AABB) ClosestPoint(p mgl32.Vec3) mgl32.Vec3 {
	minVal := a.Min()
	maxVal := a.Max()
	return mgl32.Vec3{
		mgl32.Clamp(p.X(), minVal.X(), maxVal.X()),
		mgl32.Clamp(p.Y(), minVal.Y(), maxVal.Y()),
		mgl32.Clamp(p.Z(), minVal.Z(), maxVal.Z()),
	}
}

// IntersectsSphere reports whether the box and the sphere share at least one
// point. Touching counts.
func (a AABB) IntersectsSphere(center mgl32.Vec3, radius float32) bool {
	offset := a.ClosestPoint(center).Sub(center)
	return offset.Dot(offset) <= radius*radius
}
