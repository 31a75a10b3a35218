package voxel

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// CarveEpsilon is added to the magnitude of a carved node so it ends up
// strictly positive.
const CarveEpsilon = float32(0.01)

type CarveRequest struct {
	Center mgl32.Vec3
	Radius float32
}

func isFinite32(v float32) bool {
	f := float64(v)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// Valid reports whether the request has a finite center and a positive, finite radius.
func (r CarveRequest) Valid() bool {
	for _, c := range r.Center {
		if !isFinite32(c) {
			return false
		}
	}
	return isFinite32(r.Radius) && r.Radius > 0
}

type CarveResult struct {
	// Visited is the number of nodes inside the sphere.
	Visited int
	// Changed is the number of nodes flipped from solid to air.
	Changed int
}

// CarveSphere erodes every solid node within req.Radius of req.Center by
// replacing its value with abs(value)+CarveEpsilon. Air nodes and nodes outside
// the sphere keep their value.
//
// This is not a distance-field subtraction: the new values are not distances to
// the carved surface, so overlapping carves only approximate a union of spheres.
func CarveSphere(f *Field, req CarveRequest) CarveResult {
	var result CarveResult
	if !req.Valid() {
		return result
	}
	lo, hi, ok := f.nodeBounds(req.Center, req.Radius)
	if !ok {
		return result
	}
	radiusSq := req.Radius * req.Radius
	for z := lo.Z; z <= hi.Z; z++ {
		for y := lo.Y; y <= hi.Y; y++ {
			for x := lo.X; x <= hi.X; x++ {
				offset := f.NodePosition(x, y, z).Sub(req.Center)
				if offset.Dot(offset) > radiusSq {
					continue
				}
				result.Visited++
				i := f.Index(x, y, z)
				if value := f.values[i]; value < 0 {
					f.values[i] = -value + CarveEpsilon
					result.Changed++
				}
			}
		}
	}
	return result
}

// nodeBounds clamps the node-space AABB of a sphere to the grid.
func (f *Field) nodeBounds(center mgl32.Vec3, radius float32) (Int3, Int3, bool) {
	local := center.Sub(f.origin).Mul(1 / f.cellSize)
	r := float64(radius / f.cellSize)
	var lo, hi Int3
	for axis := 0; axis < 3; axis++ {
		limit := float64(f.size.Axis(axis) - 1)
		from := math.Floor(float64(local[axis]) - r)
		to := math.Ceil(float64(local[axis]) + r)
		if to < 0 || from > limit {
			return lo, hi, false
		}
		lo = lo.withAxis(axis, int32(math.Max(from, 0)))
		hi = hi.withAxis(axis, int32(math.Min(to, limit)))
	}
	return lo, hi, true
}
