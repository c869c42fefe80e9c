package reactive

import (
	"fmt"
	"slices"

	"github.com/cespare/xxhash/v2"
	"github.com/delaneyj/water/water"
)

// Key is the token a Record registers field dependencies under.
type Key uint64

func KeyOf(field string) Key {
	return Key(xxhash.Sum64String(field))
}

// Record is an object with named fields. Each field is tracked on its own
// key; Keys and Len track the record as a whole.
type Record struct {
	rs     *water.ReactiveSystem
	name   string
	fields map[Key]any
	// labels remembers every field name seen, set or only read
	labels map[Key]string
}

func NewRecord(rs *water.ReactiveSystem, name string) *Record {
	return &Record{
		rs:     rs,
		name:   name,
		fields: map[Key]any{},
		labels: map[Key]string{},
	}
}

func (r *Record) key(field string) Key {
	k := KeyOf(field)
	r.labels[k] = field
	return k
}

func (r *Record) Get(field string) any {
	k := r.key(field)
	r.TrackEffectsAt(k)
	return r.fields[k]
}

func (r *Record) Lookup(field string) (any, bool) {
	k := r.key(field)
	r.TrackEffectsAt(k)
	v, ok := r.fields[k]
	return v, ok
}

// Set stores v and triggers the field and the record. Storing an equal
// comparable value does nothing.
func (r *Record) Set(field string, v any) {
	k := r.key(field)
	if old, ok := r.fields[k]; ok && sameValue(old, v) {
		return
	}
	r.fields[k] = v
	r.TriggerEffectsAt(k)
}

func (r *Record) Delete(field string) {
	k := r.key(field)
	if _, ok := r.fields[k]; !ok {
		return
	}
	delete(r.fields, k)
	r.TriggerEffectsAt(k)
}

// Keys returns the field names in sorted order.
func (r *Record) Keys() []string {
	r.TrackEffects()
	keys := make([]string, 0, len(r.fields))
	for k := range r.fields {
		keys = append(keys, r.labels[k])
	}
	slices.Sort(keys)
	return keys
}

func (r *Record) Len() int {
	r.TrackEffects()
	return len(r.fields)
}

func (r *Record) TrackEffects()            { water.TrackReactor(r.rs, r) }
func (r *Record) TriggerEffects()          { water.TriggerReactor(r.rs, r) }
func (r *Record) TrackEffectsAt(key any)   { water.TrackReactorAt(r.rs, r, key) }
func (r *Record) TriggerEffectsAt(key any) { water.TriggerReactorAt(r.rs, r, key) }

func (r *Record) String() string {
	return r.name
}

// LabelKey names a field key for snapshots.
func (r *Record) LabelKey(key any) string {
	if k, ok := key.(Key); ok {
		if name, ok := r.labels[k]; ok {
			return name
		}
		return fmt.Sprintf("%#x", uint64(k))
	}
	return fmt.Sprint(key)
}

func sameValue(a, b any) (same bool) {
	defer func() {
		// uncomparable dynamic types always count as a change
		if recover() != nil {
			same = false
		}
	}()
	return a == b
}
