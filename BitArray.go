package Util

import (
	"math/bits"
)

// NewBitArray returns a bit array with room for at least size bits, all clear.
func NewBitArray(size uint) BitArray {
	words := size/uint(bits.UintSize) + 1
	return BitArray{bits: make([]uint, words)}
}

// BitArray is a flat bitset backed by a slice of machine words. Used
// wherever a dense visited/marked set over small integer ids is cheaper
// than a keyed container (see Trees.Decompose and Sets.HashSet).
type BitArray struct {
	bits []uint
}

func (u BitArray) Len() int {
	return len(u.bits) * bits.UintSize
}

func (u BitArray) Get(i int) bool {
	return (u.bits[i/bits.UintSize]>>(i%bits.UintSize))&1 == 1
}

// Set marks bit i.
func (u BitArray) Set(i int) {
	u.bits[i/bits.UintSize] |= 1 << (i % bits.UintSize)
}

// Clr clears bit i.
func (u BitArray) Clr(i int) {
	u.bits[i/bits.UintSize] &^= 1 << (i % bits.UintSize)
}

// First returns the index of the lowest set bit, or -1 if none is set.
func (u BitArray) First() int {
	for w, word := range u.bits {
		if word != 0 {
			return w*bits.UintSize + bits.TrailingZeros(word)
		}
	}
	return -1
}
