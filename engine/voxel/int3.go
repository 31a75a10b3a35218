package voxel

import "github.com/go-gl/mathgl/mgl32"

type Int3 struct {
	X, Y, Z int32
}

func (i Int3) Add(other Int3) Int3 {
	return Int3{i.X + other.X, i.Y + other.Y, i.Z + other.Z}
}

func (i Int3) ToVec3() mgl32.Vec3 {
	return mgl32.Vec3{float32(i.X), float32(i.Y), float32(i.Z)}
}

// Axis returns the component along axis 0 (X), 1 (Y) or 2 (Z).
func (i Int3) Axis(axis int) int32 {
	switch axis {
	case 0:
		return i.X
	case 1:
		return i.Y
	default:
		return i.Z
	}
}

func (i Int3) withAxis(axis int, value int32) Int3 {
	switch axis {
	case 0:
		i.X = value
	case 1:
		i.Y = value
	default:
		i.Z = value
	}
	return i
}

// unitAxis is the unit step along axis 0, 1 or 2.
func unitAxis(axis int) Int3 {
	switch axis {
	case 0:
		return Int3{X: 1}
	case 1:
		return Int3{Y: 1}
	default:
		return Int3{Z: 1}
	}
}
