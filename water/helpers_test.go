package water_test

import "github.com/delaneyj/water/water"

// box is a minimal reactor with two keyed fields.
type box struct {
	rs   *water.ReactiveSystem
	name string
	x, y int
}

func newBox(rs *water.ReactiveSystem, name string) *box {
	return &box{rs: rs, name: name}
}

func (b *box) TrackEffects()            { water.TrackReactor(b.rs, b) }
func (b *box) TriggerEffects()          { water.TriggerReactor(b.rs, b) }
func (b *box) TrackEffectsAt(key any)   { water.TrackReactorAt(b.rs, b, key) }
func (b *box) TriggerEffectsAt(key any) { water.TriggerReactorAt(b.rs, b, key) }
func (b *box) String() string           { return b.name }

func (b *box) X() int {
	b.TrackEffectsAt("x")
	return b.x
}

func (b *box) Y() int {
	b.TrackEffectsAt("y")
	return b.y
}

func (b *box) All() (int, int) {
	b.TrackEffects()
	return b.x, b.y
}

func (b *box) SetX(v int) {
	b.x = v
	b.TriggerEffectsAt("x")
}

func (b *box) SetY(v int) {
	b.y = v
	b.TriggerEffectsAt("y")
}

func effectIDs(entry water.ReactorEntry) []uint64 {
	ids := []uint64{}
	for _, e := range entry.Effects {
		ids = append(ids, e.ID)
	}
	return ids
}
