package value

import (
	"encoding/binary"
	"hash/maphash"
	"math"
)

// hashSeed is shared so that structurally equal values hash the same for
// the lifetime of the process.
var hashSeed = maphash.MakeSeed()

// Hash returns a 64-bit structural hash of the value. Equal values hash
// equal within a process; the seed is not stable across runs.
func (v Value) Hash() uint64 {
	var h maphash.Hash
	h.SetSeed(hashSeed)

	n := v.impl()
	h.WriteByte(byte(n.kind))

	switch n.kind {
	case NullKind:
	case BoolKind:
		if n.b {
			h.WriteByte(1)
		} else {
			h.WriteByte(0)
		}
	case IntKind:
		var b [8]byte
		binary.LittleEndian.PutUint64(b[:], uint64(n.i))
		h.Write(b[:])
	case NumberKind:
		var b [8]byte
		binary.LittleEndian.PutUint64(b[:], math.Float64bits(n.f))
		h.Write(b[:])
	case StringKind:
		h.WriteString(n.s)
	case ArrayKind:
		var b [8]byte
		for _, e := range n.arr {
			binary.LittleEndian.PutUint64(b[:], e.Hash())
			h.Write(b[:])
		}
	case ObjectKind:
		var b [8]byte
		keys, _ := v.Keys()
		for _, k := range keys {
			binary.LittleEndian.PutUint64(b[:], FromString(k).Hash())
			h.Write(b[:])
			binary.LittleEndian.PutUint64(b[:], n.obj[k].Hash())
			h.Write(b[:])
		}
	}
	return h.Sum64()
}
