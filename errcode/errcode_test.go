package errcode

import (
	"errors"
	"testing"
)

func TestCodesAreStableStrings(t *testing.T) {
	cases := map[string]Code{
		"ok":               OK,
		"timeout":          Timeout,
		"baud_too_high":    BaudTooHigh,
		"nack":             Nack,
		"bus_error":        BusError,
		"arbitration_lost": ArbitrationLost,
		"unknown_register": UnknownReg,
		"mac_rejected":     MacRejected,
		"bad_mic":          BadMIC,
	}
	for want, c := range cases {
		if c.Error() != want {
			t.Fatalf("code %q mismatch: got %q", want, c.Error())
		}
	}
}

func TestOf(t *testing.T) {
	if Of(nil) != OK {
		t.Fatalf("Of(nil) != OK")
	}
	if Of(Timeout) != Timeout {
		t.Fatalf("Of(Timeout) mismatch")
	}
	wrapped := &E{C: Nack, Op: "i2c.tx", Msg: "addr 0x70"}
	if Of(wrapped) != Nack {
		t.Fatalf("Of(E) = %q", Of(wrapped))
	}
	if Of(errors.New("x")) != Error {
		t.Fatalf("Of(plain) should be Error")
	}
}

func TestEMatchesCode(t *testing.T) {
	err := error(&E{C: Timeout, Op: "rcc.wait"})
	if !errors.Is(err, Timeout) {
		t.Fatalf("errors.Is(E{Timeout}, Timeout) = false")
	}
	if errors.Is(err, Nack) {
		t.Fatalf("errors.Is(E{Timeout}, Nack) = true")
	}
	if got := err.Error(); got != "rcc.wait: timeout" {
		t.Fatalf("Error() = %q", got)
	}
}
