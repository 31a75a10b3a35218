package voxel

import (
	"math"
	"math/rand"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/require"
)

func noisyField() *Field {
	rng := rand.New(rand.NewSource(11))
	f := NewField(Int3{10, 10, 10}, 0.75, mgl32.Vec3{-2, -2, -2})
	f.Fill(func(mgl32.Vec3) float32 { return rng.Float32()*4 - 3 })
	return f
}

func TestCarveSphereErodesOnlySolidNodesInside(t *testing.T) {
	f := noisyField()
	before := f.Clone()
	req := CarveRequest{Center: mgl32.Vec3{1.3, 0.4, 2.1}, Radius: 2.4}

	result := CarveSphere(f, req)
	require.NotZero(t, result.Changed)

	changed := 0
	size := f.Size()
	for z := int32(0); z < size.Z; z++ {
		for y := int32(0); y < size.Y; y++ {
			for x := int32(0); x < size.X; x++ {
				old, now := before.Get(x, y, z), f.Get(x, y, z)
				offset := f.NodePosition(x, y, z).Sub(req.Center)
				inside := offset.Dot(offset) <= req.Radius*req.Radius
				if inside && old < 0 {
					require.Greater(t, now, float32(0))
					require.Equal(t, -old+CarveEpsilon, now)
					changed++
					continue
				}
				require.Equal(t, old, now, "node %d,%d,%d", x, y, z)
			}
		}
	}
	require.Equal(t, changed, result.Changed)
	require.GreaterOrEqual(t, result.Visited, result.Changed)
}

func TestCarveSphereIgnoresInvalidRequests(t *testing.T) {
	nan := float32(math.NaN())
	inf := float32(math.Inf(1))
	for name, req := range map[string]CarveRequest{
		"zero radius":     {Center: mgl32.Vec3{1, 1, 1}, Radius: 0},
		"negative radius": {Center: mgl32.Vec3{1, 1, 1}, Radius: -2},
		"nan radius":      {Center: mgl32.Vec3{1, 1, 1}, Radius: nan},
		"infinite radius": {Center: mgl32.Vec3{1, 1, 1}, Radius: inf},
		"nan center":      {Center: mgl32.Vec3{nan, 1, 1}, Radius: 2},
	} {
		t.Run(name, func(t *testing.T) {
			f := noisyField()
			before := f.Clone()
			require.False(t, req.Valid())
			require.Equal(t, CarveResult{}, CarveSphere(f, req))
			require.Equal(t, before.Values(), f.Values())
		})
	}
}

func TestCarveSphereOutsideGrid(t *testing.T) {
	f := noisyField()
	before := f.Clone()
	result := CarveSphere(f, CarveRequest{Center: mgl32.Vec3{100, 0, 0}, Radius: 3})
	require.Zero(t, result.Visited)
	require.Equal(t, before.Values(), f.Values())
}

func TestCarveSphereCoveringGrid(t *testing.T) {
	f := constantField(6, -1)
	result := CarveSphere(f, CarveRequest{Center: mgl32.Vec3{2.5, 2.5, 2.5}, Radius: 1e6})
	require.Equal(t, f.NodeCount(), result.Changed)
	for _, v := range f.Values() {
		require.Equal(t, 1+CarveEpsilon, v)
	}
}

func TestCarveOpensSolidBlock(t *testing.T) {
	f := constantField(9, -1)
	require.True(t, Extract(f).IsEmpty())

	CarveSphere(f, CarveRequest{Center: mgl32.Vec3{4, 4, 4}, Radius: 2})
	mesh := Extract(f)
	require.False(t, mesh.IsEmpty())
	require.NotZero(t, mesh.TriangleCount())

	// carving the same sphere again changes nothing
	again := CarveSphere(f, CarveRequest{Center: mgl32.Vec3{4, 4, 4}, Radius: 2})
	require.Zero(t, again.Changed)
	require.NotZero(t, again.Visited)
}
