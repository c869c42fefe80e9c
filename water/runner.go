package water

// Runner is the handle returned by DefEffect. It re-runs or stops the effect
// without exposing its tracking state.
type Runner[T any] struct {
	effect *reactiveEffect[T]
}

// Run executes the body again without collecting dependencies. Whatever
// tracking context is current when Run is called is left untouched.
func (r *Runner[T]) Run() T {
	return r.effect.run(false)
}

// Stop removes the effect from every dependency list and fires its OnStop
// callback. Calling Stop on a stopped effect does nothing.
func (r *Runner[T]) Stop() {
	r.effect.stop(nil)
}

// StopWith only removes the effect from the lists owned by target, object
// level and keyed, and then stops it.
func (r *Runner[T]) StopWith(target Reactor) {
	r.effect.stop(target)
}

func (r *Runner[T]) Active() bool {
	return r.effect.active
}

func (r *Runner[T]) ID() uint64 {
	return r.effect.id
}

func (r *Runner[T]) Name() string {
	return r.effect.label()
}

func Stop[T any](r *Runner[T]) {
	r.Stop()
}
