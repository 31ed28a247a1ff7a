package arena

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type node struct {
	name     string
	children []*node
}

func TestAlloc(t *testing.T) {
	a := New()
	n := Alloc[node](a)
	require.NotNil(t, n)
	assert.Empty(t, n.name)

	m := Alloc[node](a)
	assert.NotSame(t, n, m)

	stats := a.Stats()
	assert.Equal(t, 2, stats.Allocs)
	assert.Equal(t, 1, stats.Chunks)
}

func TestMakeAndAppend(t *testing.T) {
	a := NewWithChunkSize(64)
	s := Make[int](a, 2, 4)
	assert.Len(t, s, 2)
	assert.Equal(t, 4, cap(s))

	s = Append(a, s, 1, 2)
	assert.Equal(t, []int{0, 0, 1, 2}, s)

	s = Append(a, s, 3)
	assert.Equal(t, []int{0, 0, 1, 2, 3}, s)
	assert.GreaterOrEqual(t, cap(s), 8)

	assert.Nil(t, Make[int](a, 0, 0))
}

func TestAppendDoesNotAlias(t *testing.T) {
	a := New()
	first := Make[int](a, 0, 1)
	first = Append(a, first, 1)
	second := Make[int](a, 0, 1)
	second = Append(a, second, 2)
	assert.Equal(t, []int{1}, first)
	assert.Equal(t, []int{2}, second)

	grown := Append(a, first, 3)
	assert.Equal(t, []int{1, 3}, grown)
	assert.Equal(t, []int{2}, second)
}

func TestBufferAndFreeze(t *testing.T) {
	a := NewWithChunkSize(8)
	b := a.Buffer(5)
	b = append(b, "hello"...)
	s := a.Freeze(b)
	assert.Equal(t, "hello", s)

	other := a.CopyString("world, longer than a chunk")
	assert.Equal(t, "world, longer than a chunk", other)
	assert.Equal(t, "hello", s)
	assert.Empty(t, a.Freeze(nil))
}

func TestNilArena(t *testing.T) {
	var a *Arena
	n := Alloc[node](a)
	require.NotNil(t, n)

	s := Append(a, Make[string](a, 0, 0), "x")
	assert.Equal(t, []string{"x"}, s)

	b := append(a.Buffer(2), 'o', 'k')
	assert.Equal(t, "ok", a.Freeze(b))
	assert.Equal(t, "copy", a.CopyString("copy"))
	assert.Equal(t, Stats{}, a.Stats())
	a.Reset()
}

func TestReset(t *testing.T) {
	a := NewWithChunkSize(1024)
	for range 10 {
		n := Alloc[node](a)
		n.children = Make[*node](a, 0, 2)
		_ = a.CopyString("text")
	}
	before := a.Stats()
	assert.Positive(t, before.Used)

	a.Reset()
	after := a.Stats()
	assert.Zero(t, after.Used)
	assert.Zero(t, after.Allocs)
	assert.Equal(t, before.Reserved, after.Reserved)

	n := Alloc[node](a)
	assert.Empty(t, n.name)
	assert.Nil(t, n.children)
}

// Usage is a function of the work done, so repeating the same sequence of
// allocations after a reset reserves no new chunks.
func TestResetReusesChunks(t *testing.T) {
	a := New()
	build := func() {
		for range 100 {
			_ = Alloc[node](a)
			_ = a.CopyString("color")
		}
	}
	build()
	first := a.Stats()
	a.Reset()
	build()
	second := a.Stats()
	assert.Equal(t, first, second)
}
