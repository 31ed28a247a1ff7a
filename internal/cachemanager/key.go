package cachemanager

import (
	"strconv"

	"github.com/cespare/xxhash/v2"
)

// Key identifies cached content.
type Key string

// ContentKey hashes parts into a key. Parts are length-prefixed so that
// ("ab", "c") and ("a", "bc") differ.
func ContentKey(parts ...string) Key {
	d := xxhash.New()
	var n [20]byte
	for _, p := range parts {
		_, _ = d.Write(strconv.AppendInt(n[:0], int64(len(p)), 10))
		_, _ = d.Write([]byte{':'})
		_, _ = d.WriteString(p)
	}
	return Key(strconv.FormatUint(d.Sum64(), 16))
}
