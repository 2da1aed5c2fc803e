//go:build tremo

// Package fmtx is a printf subset for the MCU. Host builds forward to fmt.
package fmtx

import (
	"io"

	"tremo-go/x/conv"
)

// DefaultOutput is used by Printf on MCU builds. The platform points it at
// the UART0 writer during board init.
var DefaultOutput io.Writer = discard{}

type discard struct{}

func (discard) Write(p []byte) (int, error) { return len(p), nil }

func Sprintf(format string, a ...any) string {
	return string(appendf(nil, format, a))
}

func Fprintf(w io.Writer, format string, a ...any) (int, error) {
	return w.Write(appendf(nil, format, a))
}

func Printf(format string, a ...any) (int, error) {
	return Fprintf(DefaultOutput, format, a...)
}

// appendf supports %d %u %x %X %s %c %t %v %% with an optional zero-padded
// width for the integer verbs.
func appendf(dst []byte, format string, args []any) []byte {
	ai := 0
	for i := 0; i < len(format); i++ {
		c := format[i]
		if c != '%' || i+1 >= len(format) {
			dst = append(dst, c)
			continue
		}
		i++
		width := 0
		for i < len(format) && format[i] >= '0' && format[i] <= '9' {
			width = width*10 + int(format[i]-'0')
			i++
		}
		if i >= len(format) {
			break
		}
		verb := format[i]
		if verb == '%' {
			dst = append(dst, '%')
			continue
		}
		if ai >= len(args) {
			dst = append(dst, "%!"...)
			dst = append(dst, verb)
			continue
		}
		dst = appendArg(dst, args[ai], verb, width)
		ai++
	}
	return dst
}

func appendArg(dst []byte, v any, verb byte, width int) []byte {
	switch x := v.(type) {
	case string:
		return append(dst, x...)
	case []byte:
		return append(dst, x...)
	case bool:
		if x {
			return append(dst, "true"...)
		}
		return append(dst, "false"...)
	case error:
		return append(dst, x.Error()...)
	}
	n, signed, ok := toInt(v)
	if !ok {
		return append(dst, "%!v"...)
	}
	switch verb {
	case 'x', 'X':
		start := len(dst)
		dst = conv.AppendHex(dst, n, width)
		if verb == 'X' {
			conv.Upper(dst[start:])
		}
		return dst
	case 'c':
		return append(dst, byte(n))
	}
	var tmp [24]byte
	var digits []byte
	if signed {
		digits = conv.AppendInt(tmp[:0], int64(n))
	} else {
		digits = conv.AppendUint(tmp[:0], n)
	}
	for pad := width - len(digits); pad > 0; pad-- {
		dst = append(dst, '0')
	}
	return append(dst, digits...)
}

func toInt(v any) (uint64, bool, bool) {
	switch x := v.(type) {
	case int:
		return uint64(x), true, true
	case int8:
		return uint64(x), true, true
	case int16:
		return uint64(x), true, true
	case int32:
		return uint64(x), true, true
	case int64:
		return uint64(x), true, true
	case uint:
		return uint64(x), false, true
	case uint8:
		return uint64(x), false, true
	case uint16:
		return uint64(x), false, true
	case uint32:
		return uint64(x), false, true
	case uint64:
		return x, false, true
	case uintptr:
		return uint64(x), false, true
	}
	return 0, false, false
}
