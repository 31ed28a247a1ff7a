// Package arena provides a region allocator whose allocations share one
// lifetime. A parse call owns one Arena; every node, list and decoded string
// it produces is carved out of that arena and becomes garbage together when
// the arena is dropped or reset.
//
// Allocation is bump-pointer within typed chunks, so building a tree costs a
// handful of heap allocations regardless of node count. All methods accept a
// nil *Arena and fall back to ordinary heap allocation.
package arena

import (
	"reflect"
	"unsafe"
)

// DefaultChunkSize is the number of bytes reserved per chunk.
const DefaultChunkSize = 16 << 10

// Arena is a region allocator. It is not safe for concurrent use.
type Arena struct {
	chunkSize int
	slabs     map[reflect.Type]slabber
	bytes     []byte

	used     int
	reserved int
	allocs   int
	chunks   int
}

type slabber interface {
	reset()
}

type slab[T any] struct {
	buf []T
}

func (s *slab[T]) reset() {
	clear(s.buf[:cap(s.buf)])
	s.buf = s.buf[:0]
}

// New creates an arena with the default chunk size.
func New() *Arena {
	return NewWithChunkSize(DefaultChunkSize)
}

// NewWithChunkSize creates an arena reserving size bytes per chunk.
func NewWithChunkSize(size int) *Arena {
	if size <= 0 {
		size = DefaultChunkSize
	}
	return &Arena{chunkSize: size, slabs: make(map[reflect.Type]slabber)}
}

// Stats describes arena usage.
type Stats struct {
	// Used is the number of bytes handed out.
	Used int
	// Reserved is the number of bytes held in chunks.
	Reserved int
	// Allocs is the number of allocation requests served.
	Allocs int
	// Chunks is the number of chunks reserved from the heap.
	Chunks int
}

// Stats reports the arena's usage. Used and Allocs restart at zero after
// Reset; reserved chunks are kept for reuse.
func (a *Arena) Stats() Stats {
	if a == nil {
		return Stats{}
	}
	return Stats{Used: a.used, Reserved: a.reserved, Allocs: a.allocs, Chunks: a.chunks}
}

// Reset makes all memory reusable. Values previously returned by the arena
// must no longer be used.
func (a *Arena) Reset() {
	if a == nil {
		return
	}
	for _, s := range a.slabs {
		s.reset()
	}
	clear(a.bytes[:cap(a.bytes)])
	a.bytes = a.bytes[:0]
	a.used = 0
	a.allocs = 0
}

func slabFor[T any](a *Arena) *slab[T] {
	t := reflect.TypeFor[T]()
	if s, ok := a.slabs[t]; ok {
		return s.(*slab[T])
	}
	s := &slab[T]{}
	a.slabs[t] = s
	return s
}

// reserve returns a zero-length slice of T with room for n elements from
// the arena's chunk for T.
func reserve[T any](a *Arena, n int) []T {
	s := slabFor[T](a)
	size := int(unsafe.Sizeof(*new(T)))
	if cap(s.buf)-len(s.buf) < n {
		per := 1
		if size > 0 {
			per = max(a.chunkSize/size, 1)
		}
		per = max(per, n)
		s.buf = make([]T, 0, per)
		a.reserved += per * size
		a.chunks++
	}
	start := len(s.buf)
	s.buf = s.buf[:start+n]
	a.used += n * size
	a.allocs++
	return s.buf[start : start : start+n]
}

// Alloc returns a pointer to a zero T owned by a.
func Alloc[T any](a *Arena) *T {
	if a == nil {
		return new(T)
	}
	s := reserve[T](a, 1)
	s = s[:1]
	return &s[0]
}

// Make returns a slice of T with the given length and capacity owned by a.
func Make[T any](a *Arena, length, capacity int) []T {
	capacity = max(capacity, length)
	if a == nil {
		return make([]T, length, capacity)
	}
	if capacity == 0 {
		return nil
	}
	return reserve[T](a, capacity)[:length]
}

// Append appends values to s, growing it inside the arena when the capacity
// is exhausted.
func Append[T any](a *Arena, s []T, values ...T) []T {
	if len(s)+len(values) <= cap(s) {
		return append(s, values...)
	}
	if a == nil {
		return append(s, values...)
	}
	grown := Make[T](a, len(s), max(2*cap(s), len(s)+len(values), 4))
	copy(grown, s)
	return append(grown, values...)
}

// Buffer returns an empty byte slice with the given capacity owned by a.
// Appending within the capacity does not allocate.
func (a *Arena) Buffer(capacity int) []byte {
	if a == nil {
		return make([]byte, 0, capacity)
	}
	if cap(a.bytes)-len(a.bytes) < capacity {
		size := max(a.chunkSize, capacity)
		a.bytes = make([]byte, 0, size)
		a.reserved += size
		a.chunks++
	}
	start := len(a.bytes)
	a.bytes = a.bytes[:start+capacity]
	a.used += capacity
	a.allocs++
	return a.bytes[start : start : start+capacity]
}

// Freeze converts an arena-owned buffer into a string without copying. The
// buffer must not be modified afterwards.
func (a *Arena) Freeze(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	if a == nil {
		return string(b)
	}
	return unsafe.String(&b[0], len(b))
}

// CopyString copies s into the arena.
func (a *Arena) CopyString(s string) string {
	if a == nil || s == "" {
		return s
	}
	b := a.Buffer(len(s))
	b = append(b, s...)
	return a.Freeze(b)
}
