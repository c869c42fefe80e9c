package water

// Observer receives engine events. All calls happen synchronously on the
// goroutine driving the ReactiveSystem.
//
// Triggered is reported once per fan-out, after it ends, with the number of
// effects that were still active and got notified.
type Observer interface {
	EffectCreated(id uint64)
	EffectRun(id uint64, tracked bool)
	EffectStopped(id uint64)
	Tracked(id uint64)
	Triggered(effects int, keyed bool)
}

type nopObserver struct{}

func (nopObserver) EffectCreated(uint64)   {}
func (nopObserver) EffectRun(uint64, bool) {}
func (nopObserver) EffectStopped(uint64)   {}
func (nopObserver) Tracked(uint64)         {}
func (nopObserver) Triggered(int, bool)    {}
