package water

import (
	"sync"

	"github.com/petermattis/goid"
)

// systems holds one default ReactiveSystem per goroutine so that two
// goroutines never share an active effect stack.
var systems sync.Map

func Default() *ReactiveSystem {
	gid := goid.Get()
	if rs, ok := systems.Load(gid); ok {
		return rs.(*ReactiveSystem)
	}

	rs := CreateReactiveSystem()
	systems.Store(gid, rs)
	return rs
}

// SetDefault installs rs as the current goroutine's default system.
func SetDefault(rs *ReactiveSystem) {
	systems.Store(goid.Get(), rs)
}

// ResetDefault forgets the current goroutine's default system. Call it
// before a goroutine that used the package level functions exits.
func ResetDefault() {
	systems.Delete(goid.Get())
}

func Effect[T any](fn func() T, opts ...EffectOption) *Runner[T] {
	return DefEffect(Default(), fn, opts...)
}

func Track(r Reactor) {
	Default().Track(r)
}

func Trigger(r Reactor) {
	Default().Trigger(r)
}

func TrackKey(r Reactor, key any) {
	Default().TrackKey(r, key)
}

func TriggerKey(r Reactor, key any) {
	Default().TriggerKey(r, key)
}
