// Package collider budgets how many collider state changes are applied per
// unit of time.
package collider

import (
	"math"
	"sort"
	"time"

	"github.com/memmaker/terracarve/engine/util"
)

const (
	DefaultRetention = 5 * time.Second
	telemetryWindow  = time.Second
)

// Applier performs the actual state change on a target. Failures are the
// applier's own business; the scheduler does not retry.
type Applier[T comparable] func(target T, enabled bool)

// Request is one pending "set enabled on target" change.
type Request[T comparable] struct {
	Target   T
	Enabled  bool
	Priority int
}

type sample struct {
	at    time.Time
	count int
}

// Scheduler coalesces requests per target and releases them at a bounded
// rate. Superseded queue entries are left in place and skipped when they
// reach the front.
//
// A Scheduler is driven from a single loop and is not safe for concurrent use.
type Scheduler[T comparable] struct {
	pending map[T]*Request[T]
	queue   []*Request[T]

	rate        float64
	accumulator float64
	lastProcess time.Time

	samples   []sample
	retention time.Duration

	clock   func() time.Time
	metrics *Metrics
	logger  *util.Logger
}

type Option[T comparable] func(s *Scheduler[T])

// WithClock replaces time.Now as the scheduler's notion of now.
func WithClock[T comparable](clock func() time.Time) Option[T] {
	return func(s *Scheduler[T]) {
		s.clock = clock
	}
}

// WithRetention sets how long applied-count samples are kept.
func WithRetention[T comparable](retention time.Duration) Option[T] {
	return func(s *Scheduler[T]) {
		if retention >= telemetryWindow {
			s.retention = retention
		}
	}
}

func WithMetrics[T comparable](metrics *Metrics) Option[T] {
	return func(s *Scheduler[T]) {
		s.metrics = metrics
	}
}

func WithLogger[T comparable](logger *util.Logger) Option[T] {
	return func(s *Scheduler[T]) {
		s.logger = logger
	}
}

// NewScheduler returns a scheduler that applies up to rate requests per second.
// An invalid rate leaves the scheduler at zero until SetRate succeeds.
func NewScheduler[T comparable](rate float64, options ...Option[T]) *Scheduler[T] {
	s := &Scheduler[T]{
		pending:   make(map[T]*Request[T]),
		retention: DefaultRetention,
		clock:     time.Now,
	}
	for _, option := range options {
		option(s)
	}
	s.SetRate(rate)
	s.lastProcess = s.clock()
	return s
}

// SetRate changes the number of requests processed per second. Non-finite and
// negative values are ignored and false is returned.
func (s *Scheduler[T]) SetRate(rate float64) bool {
	if math.IsNaN(rate) || math.IsInf(rate, 0) || rate < 0 {
		s.logger.ColliderWarning("ignoring invalid rate %v, keeping %v", rate, s.rate)
		return false
	}
	s.rate = rate
	return true
}

func (s *Scheduler[T]) Rate() float64 {
	return s.rate
}

// Accumulator is the unspent fractional budget carried to the next Process.
func (s *Scheduler[T]) Accumulator() float64 {
	return s.accumulator
}

// Request queues a state change for target. It returns false when the request
// was ignored: the target is the zero value, or an equal-state request with at
// least the same priority is already pending.
func (s *Scheduler[T]) Request(target T, enabled bool, priority int) bool {
	var none T
	if target == none {
		return false
	}
	if existing, ok := s.pending[target]; ok {
		if existing.Enabled == enabled && existing.Priority >= priority {
			s.metrics.instrumentDropped()
			return false
		}
		s.metrics.instrumentSuperseded()
	}
	req := &Request[T]{Target: target, Enabled: enabled, Priority: priority}
	s.pending[target] = req
	s.queue = append(s.queue, req)
	s.metrics.instrumentQueueLength(len(s.queue))
	return true
}

// Process spends the budget accumulated since the previous call and applies
// up to that many queued requests, highest priority first. It returns the
// number of requests applied. A nil apply drains the same requests without
// performing them; they still count as applied in the telemetry and metrics.
func (s *Scheduler[T]) Process(apply Applier[T]) int {
	now := s.clock()
	elapsed := now.Sub(s.lastProcess).Seconds()
	s.lastProcess = now
	if elapsed > 0 {
		s.accumulator += elapsed * s.rate
	}

	budget := int(math.Floor(s.accumulator))
	if budget <= 0 {
		s.pruneSamples(now)
		return 0
	}
	s.accumulator -= float64(budget)

	sort.SliceStable(s.queue, func(i, j int) bool {
		return s.queue[i].Priority > s.queue[j].Priority
	})

	take := min(budget, len(s.queue))
	applied, stale := 0, 0
	for _, req := range s.queue[:take] {
		if s.pending[req.Target] != req {
			stale++
			continue
		}
		if apply != nil {
			apply(req.Target, req.Enabled)
		}
		delete(s.pending, req.Target)
		applied++
	}
	clear(s.queue[:take])
	s.queue = s.queue[take:]

	if applied > 0 {
		s.samples = append(s.samples, sample{at: now, count: applied})
	}
	s.pruneSamples(now)

	s.metrics.instrumentApplied(applied)
	s.metrics.instrumentStale(stale)
	s.metrics.instrumentQueueLength(len(s.queue))
	if applied > 0 || stale > 0 {
		s.logger.ColliderDebug("applied %d, discarded %d stale, %d queued (budget %d)", applied, stale, len(s.queue), budget)
	}
	return applied
}

func (s *Scheduler[T]) pruneSamples(now time.Time) {
	cutoff := now.Add(-s.retention)
	drop := 0
	for drop < len(s.samples) && s.samples[drop].at.Before(cutoff) {
		drop++
	}
	if drop > 0 {
		s.samples = append(s.samples[:0], s.samples[drop:]...)
	}
}

// ProcessedPerSecond counts the requests applied during the last second.
func (s *Scheduler[T]) ProcessedPerSecond() int {
	cutoff := s.clock().Add(-telemetryWindow)
	total := 0
	for i := len(s.samples) - 1; i >= 0; i-- {
		if !s.samples[i].at.After(cutoff) {
			break
		}
		total += s.samples[i].count
	}
	return total
}

// QueueLength is the physical queue length, superseded entries included.
func (s *Scheduler[T]) QueueLength() int {
	return len(s.queue)
}

// PendingCount is the number of targets with a change still to apply.
func (s *Scheduler[T]) PendingCount() int {
	return len(s.pending)
}

func (s *Scheduler[T]) Pending(target T) (Request[T], bool) {
	req, ok := s.pending[target]
	if !ok {
		return Request[T]{}, false
	}
	return *req, true
}
