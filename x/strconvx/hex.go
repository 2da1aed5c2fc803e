// Package strconvx parses the integers the console and board config read.
// Host builds delegate to strconv.
package strconvx

import "tremo-go/errcode"

// ParseHex fills dst from exactly 2*len(dst) hex digits, most significant
// byte first.
func ParseHex(dst []byte, src string) error {
	if len(src) != 2*len(dst) {
		return &errcode.E{C: errcode.InvalidParams, Op: "strconvx.hex", Msg: "length"}
	}
	for i := range dst {
		v, err := ParseUint(src[2*i:2*i+2], 16, 8)
		if err != nil {
			return &errcode.E{C: errcode.InvalidParams, Op: "strconvx.hex", Msg: src, Err: err}
		}
		dst[i] = byte(v)
	}
	return nil
}
