//go:build !tremo

package strconvx

import "strconv"

func Atoi(s string) (int, error) { return strconv.Atoi(s) }

func ParseUint(s string, base, bitSize int) (uint64, error) {
	return strconv.ParseUint(s, base, bitSize)
}
