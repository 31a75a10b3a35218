package game

import (
	"sort"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/memmaker/terracarve/engine/util"
)

// ColliderShape is an auxiliary collision volume whose checks can be toggled.
// Extents is the full box size centered on Position.
type ColliderShape struct {
	Name     string
	Position mgl32.Vec3
	Extents  mgl32.Vec3
	Enabled  bool
	Toggles  int
}

func (s *ColliderShape) Bounds() util.AABB {
	return util.NewAABB(s.Position, s.Extents)
}

// ColliderRegistry owns the auxiliary shapes. Apply is meant to be handed to
// the collider scheduler as its applier.
type ColliderRegistry struct {
	shapes map[string]*ColliderShape
}

func NewColliderRegistry() *ColliderRegistry {
	return &ColliderRegistry{shapes: make(map[string]*ColliderShape)}
}

func (r *ColliderRegistry) Add(name string, position, extents mgl32.Vec3) *ColliderShape {
	shape := &ColliderShape{Name: name, Position: position, Extents: extents}
	r.shapes[name] = shape
	return shape
}

func (r *ColliderRegistry) Get(name string) (*ColliderShape, bool) {
	shape, ok := r.shapes[name]
	return shape, ok
}

// Apply sets the enabled state of a shape. Unknown names are ignored.
func (r *ColliderRegistry) Apply(name string, enabled bool) {
	shape, ok := r.shapes[name]
	if !ok {
		return
	}
	if shape.Enabled != enabled {
		shape.Toggles++
	}
	shape.Enabled = enabled
}

func (r *ColliderRegistry) Enabled(name string) bool {
	shape, ok := r.shapes[name]
	return ok && shape.Enabled
}

func (r *ColliderRegistry) EnabledCount() int {
	count := 0
	for _, shape := range r.shapes {
		if shape.Enabled {
			count++
		}
	}
	return count
}

func (r *ColliderRegistry) Names() []string {
	names := make([]string, 0, len(r.shapes))
	for name := range r.shapes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Near lists shapes whose bounds touch the sphere around point, sorted by name.
func (r *ColliderRegistry) Near(point mgl32.Vec3, radius float32) []*ColliderShape {
	var result []*ColliderShape
	for _, shape := range r.shapes {
		if shape.Bounds().IntersectsSphere(point, radius) {
			result = append(result, shape)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result
}
