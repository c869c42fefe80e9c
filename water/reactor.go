package water

import "fmt"

// Reactor is implemented by state holders that report their reads and writes
// to a ReactiveSystem. Implementations must be comparable, usually pointers,
// since the registries key on them.
type Reactor interface {
	TrackEffects()
	TriggerEffects()
	TrackEffectsAt(key any)
	TriggerEffectsAt(key any)
}

// KeyLabeler lets a reactor name its key tokens in snapshots and logs.
type KeyLabeler interface {
	LabelKey(key any) string
}

func TrackReactor(rs *ReactiveSystem, r Reactor) {
	rs.Track(r)
}

func TriggerReactor(rs *ReactiveSystem, r Reactor) {
	rs.Trigger(r)
}

func TrackReactorAt(rs *ReactiveSystem, r Reactor, key any) {
	rs.TrackKey(r, key)
}

// TriggerReactorAt fires the effects of key and then every effect watching
// the whole reactor.
func TriggerReactorAt(rs *ReactiveSystem, r Reactor, key any) {
	rs.TriggerKey(r, key)
	rs.Trigger(r)
}

func IsReactor(v any) bool {
	_, ok := v.(Reactor)
	return ok
}

func reactorLabel(r Reactor) string {
	if s, ok := r.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("%T@%p", r, r)
}

func keyLabel(r Reactor, key any) string {
	if kl, ok := r.(KeyLabeler); ok {
		return kl.LabelKey(key)
	}
	return fmt.Sprint(key)
}
