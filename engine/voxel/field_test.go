package voxel

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/require"
)

func TestFieldIndexIsBijection(t *testing.T) {
	f := NewField(Int3{4, 3, 5}, 1, mgl32.Vec3{})
	seen := make(map[int32]bool, f.NodeCount())
	for z := int32(0); z < 5; z++ {
		for y := int32(0); y < 3; y++ {
			for x := int32(0); x < 4; x++ {
				i := f.Index(x, y, z)
				require.GreaterOrEqual(t, i, int32(0))
				require.Less(t, i, int32(f.NodeCount()))
				require.False(t, seen[i], "index %d reused", i)
				seen[i] = true
				require.Equal(t, Int3{x, y, z}, f.Coords(i))
			}
		}
	}
	require.Len(t, seen, 60)
	require.Equal(t, int32(1+4*(2+3*3)), f.Index(1, 2, 3))
}

func TestNewFieldClampsDegenerateSizes(t *testing.T) {
	f := NewField(Int3{0, 1, 7}, -2, mgl32.Vec3{})
	require.Equal(t, Int3{2, 2, 7}, f.Size())
	require.Equal(t, Int3{1, 1, 6}, f.CellDims())
	require.Equal(t, 6, f.CellCount())
	require.Equal(t, float32(1), f.CellSize())
}

func TestFieldGetSet(t *testing.T) {
	f := NewField(Int3{3, 3, 3}, 1, mgl32.Vec3{})
	f.Set(1, 2, 0, -4)
	require.Equal(t, float32(-4), f.Get(1, 2, 0))
	require.Equal(t, float32(-4), f.Values()[f.Index(1, 2, 0)])

	// out of range reads as air and writes are dropped
	require.Equal(t, float32(1), f.Get(-1, 0, 0))
	require.Equal(t, float32(1), f.Get(0, 3, 0))
	f.Set(3, 0, 0, -1)
	for _, v := range f.Values() {
		if v != 0 {
			require.Equal(t, float32(-4), v)
		}
	}
}

func TestFieldFillSamplesNodePositions(t *testing.T) {
	origin := mgl32.Vec3{10, -2, 4}
	f := NewField(Int3{3, 4, 2}, 0.5, origin)
	f.Fill(func(p mgl32.Vec3) float32 { return p.Y() })

	require.Equal(t, mgl32.Vec3{10.5, -1, 4.5}, f.NodePosition(1, 2, 1))
	for y := int32(0); y < 4; y++ {
		require.InDelta(t, -2+0.5*float32(y), f.Get(2, y, 1), 1e-6)
	}
}

func TestFieldClone(t *testing.T) {
	f := NewField(Int3{2, 2, 2}, 1, mgl32.Vec3{})
	f.Fill(ConstantSampler(-1))
	c := f.Clone()
	c.Set(0, 0, 0, 5)
	require.Equal(t, float32(-1), f.Get(0, 0, 0))
	require.Equal(t, float32(5), c.Get(0, 0, 0))
}
