package engine

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/looplab/fsm"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/modpack/host"
	"github.com/lixenwraith/modpack/mod"
	"github.com/lixenwraith/modpack/registry"
	"github.com/lixenwraith/modpack/status"
)

var (
	ErrInstantiate = errors.New("mod instantiation failed")
	ErrTick        = errors.New("mod tick failed")
	ErrNotStarted  = errors.New("scheduler not started")
	ErrFaulted     = errors.New("scheduler faulted")
)

// Instance is a live mod owned by the scheduler
type Instance struct {
	ID     uuid.UUID
	Name   string
	Timing registry.Timing
	Mod    mod.Mod
}

type updatable struct {
	name string
	hook mod.Updatable
}

// Scheduler constructs mods in two buckets and drives their tick hooks
// Immediate mods are built by Start; delayed mods on the first tick the host reports ready
// Single-threaded: Start, Tick and Run must not be called concurrently
type Scheduler struct {
	lifecycle *fsm.FSM
	ready     host.Readiness
	mctx      *mod.Context
	clock     Clock
	log       zerolog.Logger

	immediate []registry.Descriptor
	delayed   []registry.Descriptor

	instances  []*Instance
	byName     map[string]*Instance
	updatables []updatable
	lastTick   time.Time

	ticks        *atomic.Int64
	instanceCnt  *atomic.Int64
	updates      *atomic.Int64
	delayedReady *atomic.Bool
	stateName    *status.AtomicString
}

// Option configures a Scheduler
type Option func(*Scheduler)

// WithClock replaces the wall clock used for tick deltas
func WithClock(c Clock) Option {
	return func(s *Scheduler) {
		s.clock = c
	}
}

// NewScheduler prepares a scheduler for the discovered descriptors
// mctx is handed to every Initializer; its Metrics registry receives scheduler counters
func NewScheduler(descs []registry.Descriptor, ready host.Readiness, mctx *mod.Context, opts ...Option) *Scheduler {
	if mctx.Metrics == nil {
		mctx.Metrics = status.NewRegistry()
	}
	reg := mctx.Metrics

	immediate, delayed := registry.Split(descs)
	s := &Scheduler{
		ready:        ready,
		mctx:         mctx,
		clock:        NewTimeProvider(),
		log:          mctx.Log.With().Str("component", "scheduler").Logger(),
		immediate:    immediate,
		delayed:      delayed,
		byName:       make(map[string]*Instance),
		ticks:        reg.Ints.Get(status.SchedulerTicks),
		instanceCnt:  reg.Ints.Get(status.SchedulerInstances),
		updates:      reg.Ints.Get(status.SchedulerUpdates),
		delayedReady: reg.Bools.Get(status.SchedulerDelayedReady),
		stateName:    reg.Strings.Get(status.SchedulerState),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.lifecycle = newLifecycle(func(from, to State) {
		s.stateName.Store(string(to))
		s.log.Debug().Str("from", string(from)).Str("to", string(to)).Msg("Lifecycle transition")
	})
	s.stateName.Store(string(StateCreated))
	return s
}

// State returns the current lifecycle state
func (s *Scheduler) State() State {
	return State(s.lifecycle.Current())
}

// Start builds every immediate mod in discovery order
// The first failure faults the scheduler and is returned; nothing is retried
func (s *Scheduler) Start(ctx context.Context) error {
	if s.State() != StateCreated {
		return fmt.Errorf("start in state %s", s.State())
	}

	for _, d := range s.immediate {
		if err := s.instantiate(d); err != nil {
			s.fault(ctx, err)
			return err
		}
	}
	s.lastTick = s.clock.Now()

	s.log.Info().
		Int("immediate", len(s.immediate)).
		Int("delayed", len(s.delayed)).
		Msg("Immediate mods ready")
	return s.transition(ctx, eventImmediate)
}

// Tick polls host readiness until the delayed bucket is built, then runs every enabled
// tick hook in registration order
// A hook error stops the tick and is returned to the caller
func (s *Scheduler) Tick(ctx context.Context) error {
	switch s.State() {
	case StateCreated:
		return ErrNotStarted
	case StateFaulted:
		return ErrFaulted
	case StateImmediateReady, StateAwaitingDelayed:
		if err := s.pollDelayed(ctx); err != nil {
			return err
		}
	}

	now := s.clock.Now()
	dt := now.Sub(s.lastTick)
	s.lastTick = now
	s.ticks.Add(1)

	for _, u := range s.updatables {
		if !u.hook.IsEnabled() {
			continue
		}
		if err := u.hook.OnTick(dt); err != nil {
			return fmt.Errorf("%w: mod %s: %w", ErrTick, u.name, err)
		}
		s.updates.Add(1)
	}
	return nil
}

// Run ticks once per value received from ticks until ctx is done or ticks is closed
// Returns the first tick error, nil when stopped
func (s *Scheduler) Run(ctx context.Context, ticks <-chan time.Time) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case _, ok := <-ticks:
			if !ok {
				return nil
			}
			if err := s.Tick(ctx); err != nil {
				return err
			}
		}
	}
}

// Instances returns the live instances in construction order
func (s *Scheduler) Instances() []Instance {
	out := make([]Instance, len(s.instances))
	for i, inst := range s.instances {
		out[i] = *inst
	}
	return out
}

// Instance retrieves a live instance by mod name
func (s *Scheduler) Instance(name string) (Instance, bool) {
	inst, ok := s.byName[name]
	if !ok {
		return Instance{}, false
	}
	return *inst, true
}

func (s *Scheduler) pollDelayed(ctx context.Context) error {
	if !host.Ready(s.ready) {
		if s.State() == StateImmediateReady {
			s.log.Debug().Msg("Waiting for host readiness")
			return s.transition(ctx, eventWait)
		}
		return nil
	}

	for _, d := range s.delayed {
		if err := s.instantiate(d); err != nil {
			s.fault(ctx, err)
			return err
		}
	}
	s.delayedReady.Store(true)
	s.log.Info().Int("delayed", len(s.delayed)).Msg("Delayed mods ready")
	return s.transition(ctx, eventReady)
}

func (s *Scheduler) instantiate(d registry.Descriptor) error {
	m, err := d.Factory()
	if err != nil {
		return fmt.Errorf("%w: mod %s: %w", ErrInstantiate, d.Name, err)
	}
	if m == nil {
		return fmt.Errorf("%w: mod %s: factory returned nil", ErrInstantiate, d.Name)
	}

	if initer, ok := m.(mod.Initializer); ok {
		if err := initer.Init(s.mctx); err != nil {
			return fmt.Errorf("%w: mod %s: init: %w", ErrInstantiate, d.Name, err)
		}
	}

	hook, isUpdatable := m.(mod.Updatable)
	if d.Updatable && !isUpdatable {
		return fmt.Errorf("%w: mod %s: tagged updatable without a tick hook", ErrInstantiate, d.Name)
	}

	inst := &Instance{
		ID:     uuid.New(),
		Name:   d.Name,
		Timing: d.Timing,
		Mod:    m,
	}
	s.instances = append(s.instances, inst)
	s.byName[d.Name] = inst
	if isUpdatable {
		s.updatables = append(s.updatables, updatable{name: d.Name, hook: hook})
	}
	s.instanceCnt.Add(1)

	s.log.Debug().
		Str("mod", d.Name).
		Str("timing", d.Timing.String()).
		Bool("updatable", isUpdatable).
		Str("id", inst.ID.String()).
		Msg("Mod instantiated")
	return nil
}

func (s *Scheduler) transition(ctx context.Context, event string) error {
	if err := s.lifecycle.Event(ctx, event); err != nil {
		return fmt.Errorf("lifecycle %s: %w", event, err)
	}
	return nil
}

func (s *Scheduler) fault(ctx context.Context, cause error) {
	s.log.Error().Err(cause).Msg("Mod construction failed")
	_ = s.lifecycle.Event(ctx, eventFault)
}
