package voxel

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// RayHit describes the first surface cell a segment enters.
type RayHit struct {
	Hit bool
	// Cell is the surface cell that stopped the ray, Previous the cell before it.
	Cell     Int3
	Previous Int3
	// Position is where the segment enters Cell, in world space.
	Position mgl32.Vec3
	Distance float32
}

// Raycast walks the cells along start..end (DDA, one cell per step) and stops
// at the first cell that crosses the surface.
func (f *Field) Raycast(start, end mgl32.Vec3) RayHit {
	dims := f.CellDims()
	return ddaRaycast(f.toGrid(start), f.toGrid(end), func(x, y, z int32) bool {
		if x < 0 || y < 0 || z < 0 || x >= dims.X || y >= dims.Y || z >= dims.Z {
			return false
		}
		return f.CellCrossesSurface(x, y, z)
	}).toWorld(f)
}

func (f *Field) toGrid(p mgl32.Vec3) mgl32.Vec3 {
	return p.Sub(f.origin).Mul(1 / f.cellSize)
}

func (h RayHit) toWorld(f *Field) RayHit {
	if !h.Hit {
		return h
	}
	h.Position = h.Position.Mul(f.cellSize).Add(f.origin)
	h.Distance *= f.cellSize
	return h
}

// ddaRaycast works in grid space where every cell is a unit cube.
// adapted from: https://github.com/fenomas/fast-voxel-raycast/blob/master/index.js
func ddaRaycast(rayStart, rayEnd mgl32.Vec3, stopRay func(x, y, z int32) bool) RayHit {
	ray := rayEnd.Sub(rayStart)
	maxRayLength := float64(ray.Len())
	if maxRayLength == 0 || math.IsNaN(maxRayLength) || math.IsInf(maxRayLength, 0) {
		return RayHit{}
	}
	rayDir := ray.Mul(float32(1 / maxRayLength))

	var (
		cell  [3]int32
		step  [3]int32
		delta [3]float64
		next  [3]float64
	)
	for axis := 0; axis < 3; axis++ {
		origin := float64(rayStart[axis])
		cell[axis] = int32(math.Floor(origin))
		step[axis] = -1
		dist := origin - float64(cell[axis])
		if rayDir[axis] > 0 {
			step[axis] = 1
			dist = float64(cell[axis]+1) - origin
		}
		delta[axis] = math.Abs(1 / float64(rayDir[axis]))
		next[axis] = math.Inf(1)
		if delta[axis] < math.Inf(1) {
			next[axis] = delta[axis] * dist
		}
	}

	t := 0.0
	previous := Int3{cell[0], cell[1], cell[2]}
	for t <= maxRayLength {
		if stopRay(cell[0], cell[1], cell[2]) {
			return RayHit{
				Hit:      true,
				Cell:     Int3{cell[0], cell[1], cell[2]},
				Previous: previous,
				Position: rayStart.Add(rayDir.Mul(float32(t))),
				Distance: float32(t),
			}
		}
		previous = Int3{cell[0], cell[1], cell[2]}

		axis := 2
		if next[0] < next[1] {
			if next[0] < next[2] {
				axis = 0
			}
		} else if next[1] < next[2] {
			axis = 1
		}
		cell[axis] += step[axis]
		t = next[axis]
		next[axis] += delta[axis]
	}
	return RayHit{}
}
