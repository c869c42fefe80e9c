// Package water tracks which reactors an effect reads and re-runs the effect
// when one of them is triggered.
package water

import (
	"errors"
	"io"
	"log/slog"
)

var ErrUnbalancedResume = errors.New("water: ResumeTracking without matching PauseTracking")

type ReactiveSystem struct {
	// activeEffect is the top of the implicit effect stack. Each effect
	// keeps a pointer to the one it replaced while it runs tracked.
	activeEffect anyEffect
	shouldTrack  bool
	depth        int
	pauseStack   []bool

	reactors *registry[Reactor]
	keyed    *registry[reactorKey]

	nextID   uint64
	logger   *slog.Logger
	observer Observer
}

type Option func(*ReactiveSystem)

// WithLogger routes debug records about effect lifecycle and trigger fan-out
// to logger.
func WithLogger(logger *slog.Logger) Option {
	return func(rs *ReactiveSystem) {
		if logger != nil {
			rs.logger = logger
		}
	}
}

func WithObserver(observer Observer) Option {
	return func(rs *ReactiveSystem) {
		if observer != nil {
			rs.observer = observer
		}
	}
}

func CreateReactiveSystem(opts ...Option) *ReactiveSystem {
	rs := &ReactiveSystem{
		reactors: newRegistry[Reactor](),
		keyed:    newRegistry[reactorKey](),
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		observer: nopObserver{},
	}
	for _, opt := range opts {
		opt(rs)
	}
	return rs
}

// ShouldTrack reports whether a read right now would register a dependency.
func (rs *ReactiveSystem) ShouldTrack() bool {
	return rs.shouldTrack && rs.activeEffect != nil
}

// ActiveEffect returns the id of the effect currently running tracked.
func (rs *ReactiveSystem) ActiveEffect() (id uint64, ok bool) {
	if rs.activeEffect == nil {
		return 0, false
	}
	return rs.activeEffect.effectID(), true
}

// Depth is the number of tracked effect runs currently on the stack.
func (rs *ReactiveSystem) Depth() int {
	return rs.depth
}

func (rs *ReactiveSystem) PauseTracking() {
	rs.pauseStack = append(rs.pauseStack, rs.shouldTrack)
	rs.shouldTrack = false
}

func (rs *ReactiveSystem) ResumeTracking() {
	lastIdx := len(rs.pauseStack) - 1
	if lastIdx < 0 {
		panic(ErrUnbalancedResume)
	}
	rs.shouldTrack = rs.pauseStack[lastIdx]
	rs.pauseStack = rs.pauseStack[:lastIdx]
}

// Untracked runs fn with tracking paused. Reads inside fn never register
// the active effect.
func Untracked[T any](rs *ReactiveSystem, fn func() T) T {
	rs.PauseTracking()
	defer rs.ResumeTracking()
	return fn()
}

// enter makes e the active effect and returns the tracking flag it replaced.
func (rs *ReactiveSystem) enter(e anyEffect) (lastShouldTrack bool) {
	lastShouldTrack = rs.shouldTrack
	e.setParent(rs.activeEffect)
	rs.activeEffect = e
	rs.shouldTrack = true
	rs.depth++
	return lastShouldTrack
}

func (rs *ReactiveSystem) exit(e anyEffect, lastShouldTrack bool) {
	rs.activeEffect = e.parent()
	rs.shouldTrack = lastShouldTrack
	rs.depth--
	e.setParent(nil)
}

func (rs *ReactiveSystem) allocID() uint64 {
	rs.nextID++
	return rs.nextID
}
