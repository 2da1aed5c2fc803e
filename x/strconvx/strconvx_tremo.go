//go:build tremo

package strconvx

import "tremo-go/errcode"

// strconv pulls in float formatting tables, so the MCU build carries its
// own integer parsers with the same prefix and range rules.

var (
	errSyntax = &errcode.E{C: errcode.InvalidParams, Op: "strconvx", Msg: "invalid syntax"}
	errRange  = &errcode.E{C: errcode.InvalidParams, Op: "strconvx", Msg: "out of range"}
)

func Atoi(s string) (int, error) {
	neg := false
	if len(s) > 0 && (s[0] == '+' || s[0] == '-') {
		neg = s[0] == '-'
		s = s[1:]
	}
	u, err := ParseUint(s, 10, 32)
	if err != nil {
		return 0, err
	}
	if neg {
		return -int(u), nil
	}
	if u > 1<<31-1 {
		return 0, errRange
	}
	return int(u), nil
}

// ParseUint accepts bases 2 to 36. Base 0 reads 0x, 0b, 0o and bare
// leading-zero prefixes like strconv.
func ParseUint(s string, base, bitSize int) (uint64, error) {
	if base == 0 {
		base, s = prefix(s)
	}
	if base < 2 || base > 36 || len(s) == 0 {
		return 0, errSyntax
	}
	if bitSize <= 0 || bitSize > 64 {
		bitSize = 64
	}
	max := uint64(1)<<uint(bitSize) - 1
	var v uint64
	for i := 0; i < len(s); i++ {
		d := digit(s[i])
		if d >= base {
			return 0, errSyntax
		}
		if v > (max-uint64(d))/uint64(base) {
			return 0, errRange
		}
		v = v*uint64(base) + uint64(d)
	}
	return v, nil
}

func prefix(s string) (int, string) {
	if len(s) < 2 || s[0] != '0' {
		return 10, s
	}
	switch s[1] | 0x20 {
	case 'x':
		return 16, s[2:]
	case 'b':
		return 2, s[2:]
	case 'o':
		return 8, s[2:]
	}
	return 8, s[1:]
}

func digit(c byte) int {
	switch {
	case '0' <= c && c <= '9':
		return int(c - '0')
	case 'a' <= c|0x20 && c|0x20 <= 'z':
		return int(c|0x20-'a') + 10
	}
	return 99
}
