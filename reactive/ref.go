package reactive

import (
	"fmt"

	"github.com/delaneyj/water/water"
)

// Ref is a single reactive value. Reads track the whole ref, writes that
// change the value trigger it.
type Ref[T comparable] struct {
	rs    *water.ReactiveSystem
	name  string
	value T
}

func NewRef[T comparable](rs *water.ReactiveSystem, initial T) *Ref[T] {
	return &Ref[T]{rs: rs, value: initial}
}

// Named is NewRef with a label used in snapshots.
func Named[T comparable](rs *water.ReactiveSystem, name string, initial T) *Ref[T] {
	r := NewRef(rs, initial)
	r.name = name
	return r
}

func (r *Ref[T]) Get() T {
	r.TrackEffects()
	return r.value
}

// Peek returns the value without tracking.
func (r *Ref[T]) Peek() T {
	return r.value
}

func (r *Ref[T]) Set(v T) {
	if r.value == v {
		return
	}
	r.value = v
	r.TriggerEffects()
}

func (r *Ref[T]) Update(fn func(T) T) {
	r.Set(fn(r.value))
}

func (r *Ref[T]) TrackEffects()            { water.TrackReactor(r.rs, r) }
func (r *Ref[T]) TriggerEffects()          { water.TriggerReactor(r.rs, r) }
func (r *Ref[T]) TrackEffectsAt(key any)   { water.TrackReactorAt(r.rs, r, key) }
func (r *Ref[T]) TriggerEffectsAt(key any) { water.TriggerReactorAt(r.rs, r, key) }

func (r *Ref[T]) String() string {
	if r.name != "" {
		return r.name
	}
	return fmt.Sprintf("ref@%p", r)
}
