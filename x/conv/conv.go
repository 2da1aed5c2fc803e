// Package conv formats integers into caller-provided buffers without fmt or
// strconv, for MCU builds where both are too heavy.
package conv

const hexDigits = "0123456789abcdef"

// AppendUint appends the base-10 form of n.
func AppendUint(dst []byte, n uint64) []byte {
	var tmp [20]byte
	i := len(tmp)
	for {
		i--
		tmp[i] = byte('0' + n%10)
		n /= 10
		if n == 0 {
			break
		}
	}
	return append(dst, tmp[i:]...)
}

// AppendInt appends the base-10 form of n, with a leading '-' when negative.
func AppendInt(dst []byte, n int64) []byte {
	if n < 0 {
		dst = append(dst, '-')
		return AppendUint(dst, uint64(-n))
	}
	return AppendUint(dst, uint64(n))
}

// AppendHex appends n in lowercase hex, zero-padded to at least width digits.
func AppendHex(dst []byte, n uint64, width int) []byte {
	var tmp [16]byte
	i := len(tmp)
	for n != 0 || i == len(tmp) {
		i--
		tmp[i] = hexDigits[n&0xF]
		n >>= 4
	}
	for len(tmp)-i < width && i > 0 {
		i--
		tmp[i] = '0'
	}
	return append(dst, tmp[i:]...)
}

// Upper rewrites a-f to A-F in place and returns b.
func Upper(b []byte) []byte {
	for i, c := range b {
		if c >= 'a' && c <= 'f' {
			b[i] = c - 'a' + 'A'
		}
	}
	return b
}
