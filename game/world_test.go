package game

import (
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/memmaker/terracarve/engine/voxel"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
)

type stepClock struct {
	now time.Time
}

func (c *stepClock) Now() time.Time {
	return c.now
}

func newTestWorld(t *testing.T, flags ...string) (*World, *stepClock, *prometheus.Registry) {
	t.Helper()
	cfg := smallConfig()
	cfg.Scheduler.Rate = 2
	cfg.DebugFlags = flags
	clock := &stepClock{now: time.Unix(0, 0)}
	reg := prometheus.NewRegistry()
	world := NewWorld(cfg, nil, reg, clock.Now)
	world.Colliders.Add("near", mgl32.Vec3{4, 5, 4}, mgl32.Vec3{0.5, 0.5, 0.5})
	world.Colliders.Add("edge", mgl32.Vec3{4, 5, 6.5}, mgl32.Vec3{0.5, 0.5, 0.5})
	world.Colliders.Add("far", mgl32.Vec3{11, 5, 11}, mgl32.Vec3{0.5, 0.5, 0.5})
	return world, clock, reg
}

func TestWorldCarveWakesNearbyColliders(t *testing.T) {
	world, clock, _ := newTestWorld(t)

	_, ok := world.Carve(voxel.CarveRequest{Center: mgl32.Vec3{4, 5, 4}, Radius: 2}, 1)
	require.True(t, ok)
	require.Equal(t, 2, world.Scheduler.PendingCount())

	require.Zero(t, world.Tick())

	clock.now = clock.now.Add(500 * time.Millisecond)
	require.Equal(t, 1, world.Tick())
	clock.now = clock.now.Add(500 * time.Millisecond)
	require.Equal(t, 1, world.Tick())

	require.True(t, world.Colliders.Enabled("near"))
	require.True(t, world.Colliders.Enabled("edge"))
	require.False(t, world.Colliders.Enabled("far"))
	require.Equal(t, 3, world.Ticks())
	require.Equal(t, 2, world.Scheduler.ProcessedPerSecond())
}

func TestWorldIgnoresInvalidCarve(t *testing.T) {
	world, _, _ := newTestWorld(t)
	_, ok := world.Carve(voxel.CarveRequest{Center: mgl32.Vec3{4, 5, 4}, Radius: 0}, 1)
	require.False(t, ok)
	require.Zero(t, world.Scheduler.PendingCount())
}

func TestWorldMetrics(t *testing.T) {
	world, _, reg := newTestWorld(t)
	world.Carve(voxel.CarveRequest{Center: mgl32.Vec3{4, 5, 4}, Radius: 1}, 0)
	families, err := reg.Gather()
	require.NoError(t, err)
	require.NotEmpty(t, families)

	_, _, reg = newTestWorld(t, string(FlagDisableColliderMetrics))
	families, err = reg.Gather()
	require.NoError(t, err)
	require.Empty(t, families)
}
