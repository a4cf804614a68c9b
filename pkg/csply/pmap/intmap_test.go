package pmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapGetSetEmpty(t *testing.T) {
	var m Map[string]
	_, ok := m.Get(1)
	assert.False(t, ok)
	assert.Equal(t, 0, m.Len())
}

func TestMapSetThenGet(t *testing.T) {
	var m Map[string]
	m2 := m.Set(1, "a")
	m3 := m2.Set(2, "b")

	v, ok := m3.Get(1)
	require.True(t, ok)
	assert.Equal(t, "a", v)

	v, ok = m3.Get(2)
	require.True(t, ok)
	assert.Equal(t, "b", v)

	assert.Equal(t, 2, m3.Len())
}

func TestMapSetSharesUntouchedEntries(t *testing.T) {
	var m Map[int]
	for i := uint32(0); i < 100; i++ {
		m = m.Set(i, int(i)*10)
	}

	pruned := m.Set(50, -1)

	// Original map is untouched (persistence).
	v, ok := m.Get(50)
	require.True(t, ok)
	assert.Equal(t, 500, v)

	v, ok = pruned.Get(50)
	require.True(t, ok)
	assert.Equal(t, -1, v)

	for i := uint32(0); i < 100; i++ {
		if i == 50 {
			continue
		}
		want, _ := m.Get(i)
		got, ok := pruned.Get(i)
		require.True(t, ok)
		assert.Equal(t, want, got)
	}
}

func TestMapSetReplaceDoesNotGrowSize(t *testing.T) {
	var m Map[int]
	m = m.Set(7, 1)
	m = m.Set(7, 2)
	assert.Equal(t, 1, m.Len())
	v, _ := m.Get(7)
	assert.Equal(t, 2, v)
}

func TestMapDelete(t *testing.T) {
	var m Map[int]
	m = m.Set(1, 1).Set(2, 2).Set(3, 3)

	m2 := m.Delete(2)
	assert.Equal(t, 2, m2.Len())
	_, ok := m2.Get(2)
	assert.False(t, ok)

	// Original unaffected.
	_, ok = m.Get(2)
	assert.True(t, ok)
}

func TestMapDeleteAbsentKeyIsNoop(t *testing.T) {
	var m Map[int]
	m = m.Set(1, 1)
	m2 := m.Delete(99)
	assert.Equal(t, m.Len(), m2.Len())
}

func TestMapRangeVisitsEveryEntry(t *testing.T) {
	var m Map[int]
	want := map[uint32]int{}
	for i := uint32(0); i < 50; i++ {
		m = m.Set(i, int(i))
		want[i] = int(i)
	}

	got := map[uint32]int{}
	m.Range(func(k uint32, v int) bool {
		got[k] = v
		return true
	})

	assert.Equal(t, want, got)
}

func TestMapRangeCanStopEarly(t *testing.T) {
	var m Map[int]
	for i := uint32(0); i < 20; i++ {
		m = m.Set(i, int(i))
	}

	seen := 0
	m.Range(func(k uint32, v int) bool {
		seen++
		return seen < 3
	})

	assert.Equal(t, 3, seen)
}
