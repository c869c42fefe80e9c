package reactive_test

import (
	"fmt"
	"testing"

	"github.com/delaneyj/water/reactive"
	"github.com/delaneyj/water/water"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// should re-run effects on changed writes only
func TestRef(t *testing.T) {
	rs := water.CreateReactiveSystem()
	count := reactive.Named(rs, "count", 1)

	log := []string{}
	runner := water.DefEffect(rs, func() int {
		v := count.Get()
		log = append(log, fmt.Sprintf("count %d", v))
		return v
	})

	count.Set(1)
	count.Set(2)
	count.Update(func(v int) int { return v * 10 })
	assert.Equal(t, []string{"count 1", "count 2", "count 20"}, log)
	assert.Equal(t, 20, count.Peek())

	runner.Stop()
	count.Set(3)
	assert.Len(t, log, 3)
	assert.Equal(t, "count", count.String())
}

// should not track peeks
func TestRefPeek(t *testing.T) {
	rs := water.CreateReactiveSystem()
	count := reactive.NewRef(rs, "a")

	calls := 0
	water.DefEffect(rs, func() string {
		calls++
		return count.Peek()
	})

	count.Set("b")
	assert.Equal(t, 1, calls)
	assert.Contains(t, count.String(), "ref@")
}

// should isolate record fields and notify whole record readers
func TestRecordFields(t *testing.T) {
	rs := water.CreateReactiveSystem()
	user := reactive.NewRecord(rs, "user")
	user.Set("name", "ada")
	user.Set("age", 36)

	nameCalls, keysCalls := 0, 0
	var keys []string
	water.DefEffect(rs, func() any {
		nameCalls++
		return user.Get("name")
	})
	water.DefEffect(rs, func() int {
		keysCalls++
		keys = user.Keys()
		return len(keys)
	})
	assert.Equal(t, []string{"age", "name"}, keys)

	user.Set("age", 37)
	assert.Equal(t, 1, nameCalls)
	assert.Equal(t, 2, keysCalls)

	user.Set("name", "grace")
	assert.Equal(t, 2, nameCalls)
	assert.Equal(t, 3, keysCalls)

	user.Set("name", "grace")
	assert.Equal(t, 2, nameCalls)

	user.Set("email", "g@example.com")
	assert.Equal(t, 2, nameCalls)
	assert.Equal(t, []string{"age", "email", "name"}, keys)

	user.Delete("name")
	assert.Equal(t, 3, nameCalls)
	assert.Equal(t, []string{"age", "email"}, keys)

	v, ok := user.Lookup("name")
	assert.False(t, ok)
	assert.Nil(t, v)
}

// should treat uncomparable values as always changed
func TestRecordUncomparableValues(t *testing.T) {
	rs := water.CreateReactiveSystem()
	rec := reactive.NewRecord(rs, "rec")
	rec.Set("tags", []string{"a"})

	calls := 0
	water.DefEffect(rs, func() any {
		calls++
		return rec.Get("tags")
	})

	assert.NotPanics(t, func() { rec.Set("tags", []string{"a"}) })
	assert.Equal(t, 2, calls)
}

// should label keyed lists with field names
func TestRecordSnapshotLabels(t *testing.T) {
	rs := water.CreateReactiveSystem()
	rec := reactive.NewRecord(rs, "settings")

	runner := water.DefEffect(rs, func() int {
		rec.Get("theme")
		return rec.Len()
	})

	snap := rs.Snapshot()
	theme, ok := snap.Find("settings", "theme")
	require.True(t, ok)
	require.Len(t, theme.Effects, 1)
	assert.Equal(t, runner.ID(), theme.Effects[0].ID)

	whole, ok := snap.Find("settings", "")
	require.True(t, ok)
	assert.Len(t, whole.Effects, 1)

	assert.Equal(t, "theme", rec.LabelKey(reactive.KeyOf("theme")))
	assert.Equal(t, "0x1", rec.LabelKey(reactive.Key(1)))
	assert.Equal(t, "other", rec.LabelKey("other"))
}

// should hash field names deterministically
func TestKeyOf(t *testing.T) {
	assert.Equal(t, reactive.KeyOf("x"), reactive.KeyOf("x"))
	assert.NotEqual(t, reactive.KeyOf("x"), reactive.KeyOf("y"))
}
