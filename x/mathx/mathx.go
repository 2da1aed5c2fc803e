// Package mathx holds small generic helpers for firmware arithmetic.
package mathx

import "golang.org/x/exp/constraints"

// Clamp limits v to [lo, hi]. If lo > hi, the bounds are swapped.
func Clamp[T constraints.Ordered](v, lo, hi T) T {
	if hi < lo {
		lo, hi = hi, lo
	}
	return min(max(v, lo), hi)
}

// IsPow2 reports whether v is a non-zero power of two.
func IsPow2[T constraints.Unsigned](v T) bool {
	return v != 0 && v&(v-1) == 0
}
