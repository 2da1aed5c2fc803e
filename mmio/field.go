package mmio

import (
	"math/bits"

	"golang.org/x/exp/constraints"
)

// Field extracts the value under a contiguous mask, shifted down to bit 0.
func Field[T constraints.Unsigned](v, mask T) T {
	if mask == 0 {
		return 0
	}
	return (v & mask) >> bits.TrailingZeros64(uint64(mask))
}

// Place shifts val up into a contiguous mask, dropping bits that do not fit.
func Place[T constraints.Unsigned](mask, val T) T {
	if mask == 0 {
		return 0
	}
	return (val << bits.TrailingZeros64(uint64(mask))) & mask
}

// SetField is Set with an unshifted field value.
func SetField(r Register, mask, val uint32) {
	r.Set(mask, Place(mask, val))
}

// GetField is Read followed by Field.
func GetField(r Register, mask uint32) uint32 {
	return Field(r.Read(), mask)
}
