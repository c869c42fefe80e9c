package water

type EffectInfo struct {
	ID     uint64
	Name   string
	Active bool
}

// ReactorEntry is one dependency list. Key is empty for object level lists.
type ReactorEntry struct {
	Reactor string
	Key     string
	Keyed   bool
	Effects []EffectInfo
}

type Snapshot struct {
	Entries []ReactorEntry
}

// Snapshot copies both registries, object level lists first, each in the
// order the lists were created.
func (rs *ReactiveSystem) Snapshot() Snapshot {
	s := Snapshot{}
	for _, l := range rs.reactors.order {
		s.Entries = append(s.Entries, entryOf(l))
	}
	for _, l := range rs.keyed.order {
		s.Entries = append(s.Entries, entryOf(l))
	}
	return s
}

func entryOf(l *effectList) ReactorEntry {
	entry := ReactorEntry{
		Reactor: reactorLabel(l.owner),
		Keyed:   l.keyed,
		Effects: make([]EffectInfo, 0, len(l.effects)),
	}
	if l.keyed {
		entry.Key = keyLabel(l.owner, l.key)
	}
	for _, e := range l.effects {
		entry.Effects = append(entry.Effects, EffectInfo{
			ID:     e.effectID(),
			Name:   e.label(),
			Active: e.isActive(),
		})
	}
	return entry
}

// Effects returns the distinct effects present in any list, by first
// appearance.
func (s Snapshot) Effects() []EffectInfo {
	seen := map[uint64]bool{}
	var out []EffectInfo
	for _, entry := range s.Entries {
		for _, e := range entry.Effects {
			if seen[e.ID] {
				continue
			}
			seen[e.ID] = true
			out = append(out, e)
		}
	}
	return out
}

// Find returns the list for reactor, or reactor and key when key is not
// empty.
func (s Snapshot) Find(reactor, key string) (ReactorEntry, bool) {
	for _, entry := range s.Entries {
		if entry.Reactor == reactor && entry.Key == key && entry.Keyed == (key != "") {
			return entry, true
		}
	}
	return ReactorEntry{}, false
}
