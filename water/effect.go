package water

import (
	"context"
	"fmt"
	"log/slog"

	mapset "github.com/deckarep/golang-set/v2"
)

type Scheduler func()
type OnStop func()

// anyEffect is what the tracking context and the registries hold. The result
// type of the body stays inside reactiveEffect.
type anyEffect interface {
	effectID() uint64
	label() string
	isActive() bool
	runUntracked()
	schedulerFn() Scheduler

	parent() anyEffect
	setParent(anyEffect)

	addDep(l *effectList)
	removeDep(l *effectList)
	depLists() []*effectList
}

type EffectOption func(*effectConfig)

type effectConfig struct {
	scheduler Scheduler
	onStop    OnStop
	name      string
}

// WithScheduler replaces the default re-run on trigger. The scheduler is
// called instead of the body; use the runner's Run to execute the body.
func WithScheduler(scheduler Scheduler) EffectOption {
	return func(c *effectConfig) {
		c.scheduler = scheduler
	}
}

// WithOnStop registers a callback fired once, on the first Stop. The effect
// is already marked stopped when the callback runs, so Runner.Active reports
// false inside it.
func WithOnStop(onStop OnStop) EffectOption {
	return func(c *effectConfig) {
		c.onStop = onStop
	}
}

func WithName(name string) EffectOption {
	return func(c *effectConfig) {
		c.name = name
	}
}

type reactiveEffect[T any] struct {
	rs *ReactiveSystem
	id uint64
	fn func() T

	name      string
	scheduler Scheduler
	onStop    OnStop

	active bool
	prev   anyEffect

	// lists this effect is currently registered in
	deps mapset.Set[*effectList]
}

// DefEffect creates an effect, runs it once with tracking so that its
// dependencies are known, and returns the handle used to re-run or stop it.
func DefEffect[T any](rs *ReactiveSystem, fn func() T, opts ...EffectOption) *Runner[T] {
	cfg := effectConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	e := &reactiveEffect[T]{
		rs:        rs,
		id:        rs.allocID(),
		fn:        fn,
		name:      cfg.name,
		scheduler: cfg.scheduler,
		onStop:    cfg.onStop,
		active:    true,
		deps:      mapset.NewThreadUnsafeSet[*effectList](),
	}
	rs.observer.EffectCreated(e.id)
	if rs.logger.Enabled(context.Background(), slog.LevelDebug) {
		rs.logger.Debug("effect created", "effect", e.label(), "depth", rs.depth)
	}

	e.run(true)

	return &Runner[T]{effect: e}
}

func (e *reactiveEffect[T]) run(track bool) T {
	rs := e.rs
	rs.observer.EffectRun(e.id, track)

	if !track {
		lastShouldTrack := rs.shouldTrack
		rs.shouldTrack = false
		defer func() { rs.shouldTrack = lastShouldTrack }()
		return e.fn()
	}

	// stopped effects never collect dependencies again
	if !e.active {
		return e.fn()
	}

	lastShouldTrack := rs.enter(e)
	defer rs.exit(e, lastShouldTrack)

	return e.fn()
}

func (e *reactiveEffect[T]) stop(target Reactor) {
	if !e.active {
		return
	}
	rs := e.rs
	rs.cleanupEffect(e, target)
	e.active = false

	rs.observer.EffectStopped(e.id)
	if rs.logger.Enabled(context.Background(), slog.LevelDebug) {
		targetLabel := "all"
		if target != nil {
			targetLabel = reactorLabel(target)
		}
		rs.logger.Debug("effect stopped", "effect", e.label(), "target", targetLabel)
	}

	if e.onStop != nil {
		e.onStop()
	}
}

func (e *reactiveEffect[T]) effectID() uint64 { return e.id }

func (e *reactiveEffect[T]) label() string {
	if e.name != "" {
		return e.name
	}
	return fmt.Sprintf("effect#%d", e.id)
}

func (e *reactiveEffect[T]) isActive() bool { return e.active }

func (e *reactiveEffect[T]) runUntracked() { e.run(false) }

func (e *reactiveEffect[T]) schedulerFn() Scheduler { return e.scheduler }

func (e *reactiveEffect[T]) parent() anyEffect { return e.prev }

func (e *reactiveEffect[T]) setParent(p anyEffect) { e.prev = p }

func (e *reactiveEffect[T]) addDep(l *effectList) { e.deps.Add(l) }

func (e *reactiveEffect[T]) removeDep(l *effectList) { e.deps.Remove(l) }

func (e *reactiveEffect[T]) depLists() []*effectList { return e.deps.ToSlice() }
