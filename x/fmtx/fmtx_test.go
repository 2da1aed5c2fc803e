package fmtx

import (
	"bytes"
	"testing"
)

func TestFprintfMatchesFormat(t *testing.T) {
	var buf bytes.Buffer
	_, err := Fprintf(&buf, "rssi = %d, snr = %d, byte %02x\r\n", -97, 7, 0x0a)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := buf.String(), "rssi = -97, snr = 7, byte 0a\r\n"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestPrintfUsesDefaultOutput(t *testing.T) {
	old := DefaultOutput
	var buf bytes.Buffer
	DefaultOutput = &buf
	t.Cleanup(func() { DefaultOutput = old })

	Printf("%s %X\n", "clk", uint32(0xBEEF))
	if buf.String() != "clk BEEF\n" {
		t.Fatalf("got %q", buf.String())
	}
}
