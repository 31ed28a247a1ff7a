package atomgen

// Word packing mirrors the helpers the generated code calls at runtime, so
// the constants emitted here compare equal to folded input.

const (
	lowBits   = 0x7f7f7f7f7f7f7f7f
	highBits  = 0x8080808080808080
	addA      = 0x3f3f3f3f3f3f3f3f // 0x80 - 'A'
	addPastZ  = 0x2525252525252525 // 0x80 - 'Z' - 1
	shiftCase = 2                  // 0x80 >> 2 == 0x20
)

// Fold64 lower-cases every ASCII letter in the eight bytes of x, leaving
// all other bytes untouched.
func Fold64(x uint64) uint64 {
	heptets := x & lowBits
	geA := heptets + addA
	gtZ := heptets + addPastZ
	upper := (geA ^ gtZ) & ^x & highBits
	return x | upper>>shiftCase
}

// Load64 packs up to eight bytes of s starting at off into a little-endian
// word, zero padding the missing high bytes.
func Load64(s string, off, n int) uint64 {
	var x uint64
	for i := n - 1; i >= 0; i-- {
		x = x<<8 | uint64(s[off+i])
	}
	return x
}

// Words splits s into folded 64-bit words.
func Words(s string) []uint64 {
	var out []uint64
	for off := 0; off < len(s); off += 8 {
		out = append(out, Fold64(Load64(s, off, min(8, len(s)-off))))
	}
	return out
}
