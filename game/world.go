package game

import (
	"time"

	"github.com/memmaker/terracarve/engine/collider"
	"github.com/memmaker/terracarve/engine/util"
	"github.com/memmaker/terracarve/engine/voxel"
	"github.com/prometheus/client_golang/prometheus"
)

// wakeMargin widens the carve radius when looking for shapes to re-enable.
const wakeMargin = float32(1)

// World is the per-tick driver: it owns the terrain, the auxiliary collider
// shapes and the scheduler that toggles them.
type World struct {
	Terrain   *Terrain
	Colliders *ColliderRegistry
	Scheduler *collider.Scheduler[string]

	logger *util.Logger
	ticks  int
}

// NewWorld wires the components described by cfg. reg may be nil; clock nil
// means time.Now.
func NewWorld(cfg Config, logger *util.Logger, reg prometheus.Registerer, clock func() time.Time) *World {
	if clock == nil {
		clock = time.Now
	}
	flags := cfg.Flags()
	options := []collider.Option[string]{
		collider.WithClock[string](clock),
		collider.WithRetention[string](cfg.Scheduler.Retention),
		collider.WithLogger[string](logger),
	}
	flags.IfNotSet(FlagDisableColliderMetrics, func() {
		options = append(options, collider.WithMetrics[string](collider.NewMetrics(reg)))
	})
	return &World{
		Terrain:   NewTerrain(cfg, logger),
		Colliders: NewColliderRegistry(),
		Scheduler: collider.NewScheduler[string](cfg.Scheduler.Rate, options...),
		logger:    logger,
	}
}

// Carve applies a carve and asks the scheduler to enable collision checks on
// every shape near the carved area.
func (w *World) Carve(req voxel.CarveRequest, priority int) (CarveEvent, bool) {
	event, ok := w.Terrain.Carve(req)
	if !ok {
		return event, false
	}
	for _, shape := range w.Colliders.Near(req.Center, req.Radius+wakeMargin) {
		w.Scheduler.Request(shape.Name, true, priority)
	}
	return event, true
}

// Tick runs one scheduling step and returns how many collider changes were applied.
func (w *World) Tick() int {
	w.ticks++
	applied := w.Scheduler.Process(w.Colliders.Apply)
	if applied > 0 {
		w.logger.ColliderDebug("tick %d: %d applied, %d queued", w.ticks, applied, w.Scheduler.QueueLength())
	}
	return applied
}

func (w *World) Ticks() int {
	return w.ticks
}
