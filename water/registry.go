package water

import (
	"context"
	"log/slog"
	"slices"
)

// effectList is the ordered set of effects depending on one reactor, or on one
// key of one reactor.
type effectList struct {
	owner   Reactor
	key     any
	keyed   bool
	effects []anyEffect
}

func (l *effectList) contains(e anyEffect) bool {
	return slices.Contains(l.effects, e)
}

func (l *effectList) remove(e anyEffect) bool {
	if i := slices.Index(l.effects, e); i != -1 {
		l.effects = slices.Delete(l.effects, i, i+1)
		return true
	}
	return false
}

type reactorKey struct {
	reactor Reactor
	key     any
}

// registry keeps lists in first-registration order and also indexes them by
// the owning reactor for targeted cleanup.
type registry[K comparable] struct {
	lists map[K]*effectList
	order []*effectList
	owned map[Reactor][]*effectList
}

func newRegistry[K comparable]() *registry[K] {
	return &registry[K]{
		lists: map[K]*effectList{},
		owned: map[Reactor][]*effectList{},
	}
}

func (r *registry[K]) get(k K) *effectList {
	return r.lists[k]
}

func (r *registry[K]) getOrCreate(k K, owner Reactor, key any, keyed bool) *effectList {
	if l, ok := r.lists[k]; ok {
		return l
	}
	l := &effectList{owner: owner, key: key, keyed: keyed}
	r.lists[k] = l
	r.order = append(r.order, l)
	r.owned[owner] = append(r.owned[owner], l)
	return l
}

func (r *registry[K]) ownedBy(owner Reactor) []*effectList {
	return r.owned[owner]
}

func (rs *ReactiveSystem) Track(r Reactor) {
	l := rs.reactors.getOrCreate(r, r, nil, false)
	rs.trackEffects(l)
}

func (rs *ReactiveSystem) Trigger(r Reactor) {
	l := rs.reactors.get(r)
	if l == nil {
		return
	}
	rs.triggerEffects(l)
}

func (rs *ReactiveSystem) TrackKey(r Reactor, key any) {
	l := rs.keyed.getOrCreate(reactorKey{r, key}, r, key, true)
	rs.trackEffects(l)
}

// TriggerKey fires only the effects registered for key. Reactors normally go
// through TriggerReactorAt, which also fires the object level list.
func (rs *ReactiveSystem) TriggerKey(r Reactor, key any) {
	l := rs.keyed.get(reactorKey{r, key})
	if l == nil {
		return
	}
	rs.triggerEffects(l)
}

func (rs *ReactiveSystem) trackEffects(l *effectList) {
	if !rs.ShouldTrack() {
		return
	}
	e := rs.activeEffect
	if !e.isActive() || l.contains(e) {
		return
	}
	l.effects = append(l.effects, e)
	e.addDep(l)
	rs.observer.Tracked(e.effectID())
}

func (rs *ReactiveSystem) triggerEffects(l *effectList) {
	// effects may stop themselves or others while we iterate
	effects := slices.Clone(l.effects)

	notified := 0
	defer func() { rs.observer.Triggered(notified, l.keyed) }()

	if rs.logger.Enabled(context.Background(), slog.LevelDebug) {
		attrs := []any{"reactor", reactorLabel(l.owner), "effects", len(effects), "depth", rs.depth}
		if l.keyed {
			attrs = append(attrs, "key", keyLabel(l.owner, l.key))
		}
		rs.logger.Debug("trigger", attrs...)
	}

	for _, e := range effects {
		if !e.isActive() {
			continue
		}
		notified++
		if scheduler := e.schedulerFn(); scheduler != nil {
			scheduler()
		} else {
			e.runUntracked()
		}
	}
}

func (rs *ReactiveSystem) cleanupEffect(e anyEffect, target Reactor) {
	if target != nil {
		for _, l := range rs.reactors.ownedBy(target) {
			if l.remove(e) {
				e.removeDep(l)
			}
		}
		for _, l := range rs.keyed.ownedBy(target) {
			if l.remove(e) {
				e.removeDep(l)
			}
		}
		return
	}

	for _, l := range e.depLists() {
		l.remove(e)
		e.removeDep(l)
	}
}
