package engine

import (
	"context"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/lixenwraith/folio/animation"
	"github.com/lixenwraith/folio/input"
	"github.com/lixenwraith/folio/parameter"
	"github.com/lixenwraith/folio/physics"
)

// SessionConfig configures a session, zero values fall back to defaults
type SessionConfig struct {
	Targets      []physics.Target
	StartX       float64
	TickInterval time.Duration
	QueueSize    int
	KeyTable     *input.KeyTable
	// Clock drives pause accounting only, ticks are paced on wall time
	Clock TimeProvider
}

// Session owns all simulation state for one avatar and runs the tick sequence
// Only the tick goroutine (or a direct Step caller) mutates the body and input state
type Session struct {
	id     uuid.UUID
	period time.Duration

	queue      *input.Queue
	input      *input.State
	body       physics.Body
	integrator *physics.Integrator
	detector   *physics.Detector
	animator   *animation.Driver
	scheduler  *ClockScheduler
	pause      *PausableClock

	stepMu sync.Mutex
	tick   atomic.Uint64

	// selMu guards selection and snapshot publication so both writers stay ordered
	selMu     sync.Mutex
	selection string
	snapshot  atomic.Pointer[Snapshot]

	lisMu        sync.RWMutex
	selListeners []SelectionListener
	jumpHandlers []func(tick uint64)

	started atomic.Bool
}

// NewSession creates a session with the avatar resting at StartX
func NewSession(cfg SessionConfig) *Session {
	if cfg.TickInterval <= 0 {
		cfg.TickInterval = parameter.TickInterval
	}
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = parameter.InputQueueSize
	}

	s := &Session{
		id:       uuid.New(),
		period:   cfg.TickInterval,
		queue:    input.NewQueue(cfg.QueueSize),
		input:    input.NewState(cfg.KeyTable),
		body:     physics.NewBody(cfg.StartX),
		detector: physics.NewDetector(cfg.Targets),
		animator: animation.NewDriver(),
	}
	s.integrator = physics.NewIntegrator(&s.body, s.input)
	s.pause = NewPausableClock(cfg.Clock)
	s.scheduler = NewClockScheduler(s.period, s.scheduledStep)

	initial := s.buildSnapshot(animation.NewDriver().Pose())
	s.snapshot.Store(&initial)
	return s
}

// ID returns the session identifier used in logs
func (s *Session) ID() string {
	return s.id.String()
}

// Start begins fixed-rate ticking, returns false if already running
func (s *Session) Start(ctx context.Context) bool {
	if !s.scheduler.Start(ctx) {
		return false
	}
	s.started.Store(true)
	log.Printf("session %s: started, tick=%v targets=%d", s.id, s.period, len(s.detector.Targets()))
	return true
}

// Stop halts ticking and releases all held input, safe on every exit path and repeatable
func (s *Session) Stop() {
	s.scheduler.Stop()

	s.stepMu.Lock()
	s.queue.Discard()
	s.input.Clear()
	s.stepMu.Unlock()

	if s.started.CompareAndSwap(true, false) {
		log.Printf("session %s: stopped after %d ticks, %d input events dropped",
			s.id, s.TickCount(), s.queue.Dropped())
	}
}

// Run ticks until ctx is cancelled, teardown runs before returning
func (s *Session) Run(ctx context.Context) {
	s.Start(ctx)
	defer s.Stop()
	<-ctx.Done()
}

// Step runs one full tick: drain input, physics, collision, animation, publish
func (s *Session) Step() {
	s.stepMu.Lock()
	defer s.stepMu.Unlock()
	s.step()
}

func (s *Session) step() {
	s.queue.Drain(s.input)

	wasGrounded := s.body.Grounded
	s.integrator.Tick()
	tick := s.tick.Add(1)
	jumped := wasGrounded && !s.body.Grounded

	s.detector.Tick(s.body.Position, func(id string) {
		s.writeSelection(id, SourceProximity)
	})

	elapsed := float64(tick) * s.period.Seconds()
	pose := s.animator.Update(s.body.Velocity.X, elapsed)

	s.selMu.Lock()
	snap := s.buildSnapshot(pose)
	s.snapshot.Store(&snap)
	s.selMu.Unlock()

	if jumped {
		s.notifyJump(tick)
	}
}

// scheduledStep skips ticks while paused so the tick counter and simulated time freeze
// The pause check runs under stepMu so no tick lands after Pause returns
func (s *Session) scheduledStep() {
	s.stepMu.Lock()
	defer s.stepMu.Unlock()
	if s.pause.IsPaused() {
		return
	}
	s.step()
}

// Pause suspends scheduled ticks and releases held input, returns false if already paused
// Direct Step calls still advance the simulation
func (s *Session) Pause() bool {
	if !s.pause.Pause() {
		return false
	}
	s.stepMu.Lock()
	s.queue.Discard()
	s.input.Clear()
	s.stepMu.Unlock()

	log.Printf("session %s: paused at tick %d", s.id, s.tick.Load())
	return true
}

// Resume restarts scheduled ticks, returns false if not paused
func (s *Session) Resume() bool {
	if !s.pause.Resume() {
		return false
	}
	log.Printf("session %s: resumed at tick %d, paused %v total", s.id, s.tick.Load(), s.pause.TotalPauseDuration())
	return true
}

// IsPaused reports whether scheduled ticks are suspended
func (s *Session) IsPaused() bool {
	return s.pause.IsPaused()
}

// Select writes the active selection directly, outside the tick sequence
// Empty id clears the selection; ids not in the target list are ignored
func (s *Session) Select(id string) bool {
	if id != "" {
		if _, ok := s.detector.Lookup(id); !ok {
			return false
		}
	}
	s.writeSelection(id, SourceDirect)
	return true
}

// Selection returns the active target id, empty when none
func (s *Session) Selection() string {
	s.selMu.Lock()
	defer s.selMu.Unlock()
	return s.selection
}

// PressKey queues a key-down for the next tick boundary
func (s *Session) PressKey(code input.Code) bool {
	return s.queue.Press(code)
}

// ReleaseKey queues a key-up for the next tick boundary
func (s *Session) ReleaseKey(code input.Code) bool {
	return s.queue.Release(code)
}

// Queue exposes the input queue to front-ends
func (s *Session) Queue() *input.Queue {
	return s.queue
}

// Snapshot returns the latest published output, never nil
func (s *Session) Snapshot() Snapshot {
	return *s.snapshot.Load()
}

// Targets returns the fixed target list in detection order
func (s *Session) Targets() []physics.Target {
	return s.detector.Targets()
}

// TickCount returns ticks stepped since creation
func (s *Session) TickCount() uint64 {
	return s.tick.Load()
}

// Scheduler returns the underlying clock scheduler
func (s *Session) Scheduler() *ClockScheduler {
	return s.scheduler
}

// OnSelect registers a listener for every selection write
// Listeners may run on the tick goroutine and must not call Stop
func (s *Session) OnSelect(fn SelectionListener) {
	s.lisMu.Lock()
	defer s.lisMu.Unlock()
	s.selListeners = append(s.selListeners, fn)
}

// OnJump registers a handler called on the tick a jump leaves the ground
// Handlers run on the tick goroutine and must not call Stop, cancel the Start context instead
func (s *Session) OnJump(fn func(tick uint64)) {
	s.lisMu.Lock()
	defer s.lisMu.Unlock()
	s.jumpHandlers = append(s.jumpHandlers, fn)
}

// writeSelection stores id (last write wins), republishes the snapshot and notifies listeners
func (s *Session) writeSelection(id string, src SelectionSource) {
	s.selMu.Lock()
	prev := s.selection
	s.selection = id
	if cur := s.snapshot.Load(); cur != nil && cur.Selection != id {
		next := *cur
		next.Selection = id
		s.snapshot.Store(&next)
	}
	s.selMu.Unlock()

	ev := SelectionEvent{
		ID:       id,
		Previous: prev,
		Source:   src,
		Tick:     s.tick.Load(),
		Changed:  prev != id,
	}
	if ev.Changed {
		log.Printf("session %s: selection %q -> %q (%s)", s.id, prev, id, src)
	}

	s.lisMu.RLock()
	listeners := s.selListeners
	s.lisMu.RUnlock()
	for _, fn := range listeners {
		fn(ev)
	}
}

func (s *Session) notifyJump(tick uint64) {
	s.lisMu.RLock()
	handlers := s.jumpHandlers
	s.lisMu.RUnlock()
	for _, fn := range handlers {
		fn(tick)
	}
}

// buildSnapshot copies current state, caller holds selMu or owns the session exclusively
func (s *Session) buildSnapshot(pose animation.Pose) Snapshot {
	tick := s.tick.Load()
	return Snapshot{
		Tick:      tick,
		Elapsed:   float64(tick) * s.period.Seconds(),
		Position:  s.body.Position,
		Velocity:  s.body.Velocity,
		Grounded:  s.body.Grounded,
		Pose:      pose,
		Selection: s.selection,
	}
}
