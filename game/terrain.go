package game

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/memmaker/terracarve/engine/util"
	"github.com/memmaker/terracarve/engine/voxel"
)

const timerExtract = "extract"

// CarveEvent records one applied carve. It is what the save system persists
// and what Replay consumes.
type CarveEvent struct {
	Sequence int32   `nbt:"Sequence" yaml:"sequence"`
	X        float32 `nbt:"X" yaml:"x"`
	Y        float32 `nbt:"Y" yaml:"y"`
	Z        float32 `nbt:"Z" yaml:"z"`
	Radius   float32 `nbt:"Radius" yaml:"radius"`
	Changed  int32   `nbt:"Changed" yaml:"changed"`
}

func (e CarveEvent) Request() voxel.CarveRequest {
	return voxel.CarveRequest{Center: mgl32.Vec3{e.X, e.Y, e.Z}, Radius: e.Radius}
}

// Terrain owns a voxel field and the mesh last extracted from it.
type Terrain struct {
	field    *voxel.Field
	mesh     *voxel.ExtractedMesh
	collider *util.MeshCollider
	history  []CarveEvent

	timer  *util.Timer
	logger *util.Logger
	flags  DebugFlags
}

// NewTerrain creates the field described by cfg, fills it with simplex
// terrain and extracts the initial mesh.
func NewTerrain(cfg Config, logger *util.Logger) *Terrain {
	field := voxel.NewField(cfg.Field.SizeInt3(), cfg.Field.CellSize, cfg.Field.OriginVec3())
	field.Fill(voxel.TerrainSampler(cfg.Noise))
	return NewTerrainFromField(field, logger, cfg.Flags())
}

func NewTerrainFromField(field *voxel.Field, logger *util.Logger, flags DebugFlags) *Terrain {
	if flags == nil {
		flags = DebugFlags{}
	}
	t := &Terrain{
		field:  field,
		timer:  util.NewTimer(),
		logger: logger,
		flags:  flags,
	}
	t.Remesh()
	return t
}

func (t *Terrain) Field() *voxel.Field {
	return t.field
}

func (t *Terrain) Mesh() *voxel.ExtractedMesh {
	return t.mesh
}

// Collider is nil when DISABLE_TERRAIN_COLLIDER is set.
func (t *Terrain) Collider() *util.MeshCollider {
	return t.collider
}

func (t *Terrain) Timings() *util.Timer {
	return t.timer
}

// History returns a copy of the carves applied so far, oldest first.
func (t *Terrain) History() []CarveEvent {
	events := make([]CarveEvent, len(t.history))
	copy(events, t.history)
	return events
}

// Remesh discards the current mesh and extracts a new one from the field.
func (t *Terrain) Remesh() {
	stop := t.timer.Start(timerExtract)
	t.mesh = voxel.Extract(t.field)
	elapsed := stop()
	t.flags.IfNotSet(FlagDisableTerrainCollider, func() {
		// a nil index buffer would make the collider read the vertices as a triangle soup
		indices := t.mesh.Indices
		if indices == nil {
			indices = []uint32{}
		}
		t.collider = util.NewMeshCollider("terrain", t.mesh.Positions, indices)
	})
	t.logger.VoxelDebug("extracted %d vertices, %d triangles in %.2fms", t.mesh.VertexCount(), t.mesh.TriangleCount(), elapsed)
}

// Carve erodes a sphere out of the field and re-extracts the mesh. Invalid
// requests are ignored and reported with false.
func (t *Terrain) Carve(req voxel.CarveRequest) (CarveEvent, bool) {
	if !req.Valid() {
		t.logger.VoxelDebug("ignoring carve request %v r=%v", req.Center, req.Radius)
		return CarveEvent{}, false
	}
	result := voxel.CarveSphere(t.field, req)
	t.Remesh()

	event := CarveEvent{
		Sequence: int32(len(t.history)),
		X:        req.Center.X(),
		Y:        req.Center.Y(),
		Z:        req.Center.Z(),
		Radius:   req.Radius,
		Changed:  int32(result.Changed),
	}
	t.history = append(t.history, event)
	t.flags.IfSet(FlagLogCarves, func() {
		t.logger.VoxelInfo("carve #%d at (%.2f, %.2f, %.2f) r=%.2f changed %d of %d nodes", event.Sequence, event.X, event.Y, event.Z, event.Radius, result.Changed, result.Visited)
	})
	return event, true
}

// RaycastCarve carves at the first point where the segment start..end hits
// the terrain mesh. Without a terrain collider the field is walked cell by
// cell and the carve centers on the entry point of the first surface cell.
func (t *Terrain) RaycastCarve(start, end mgl32.Vec3, radius float32) (CarveEvent, bool) {
	if t.collider == nil {
		hit := t.field.Raycast(start, end)
		if !hit.Hit {
			return CarveEvent{}, false
		}
		return t.Carve(voxel.CarveRequest{Center: hit.Position, Radius: radius})
	}
	hit, point := t.collider.IntersectsRay(start, end)
	if !hit {
		return CarveEvent{}, false
	}
	return t.Carve(voxel.CarveRequest{Center: point, Radius: radius})
}

// Replay re-applies recorded carves in order and returns how many were valid.
func (t *Terrain) Replay(events []CarveEvent) int {
	applied := 0
	for _, event := range events {
		if _, ok := t.Carve(event.Request()); ok {
			applied++
		}
	}
	return applied
}
