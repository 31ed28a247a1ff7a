package atoms

func lowerByte(c byte) byte {
	if c-'A' < 26 {
		return c | 0x20
	}
	return c
}

// load64 packs n bytes of s starting at off into a little-endian word.
func load64[T string | []byte](s T, off, n int) uint64 {
	var x uint64
	for i := n - 1; i >= 0; i-- {
		x = x<<8 | uint64(s[off+i])
	}
	return x
}

// fold64 lower-cases the ASCII letters among the eight bytes of x without
// branching.
func fold64(x uint64) uint64 {
	heptets := x & 0x7f7f7f7f7f7f7f7f
	geA := heptets + 0x3f3f3f3f3f3f3f3f
	gtZ := heptets + 0x2525252525252525
	upper := (geA ^ gtZ) &^ x & 0x8080808080808080
	return x | upper>>2
}
