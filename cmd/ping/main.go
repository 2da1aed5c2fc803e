//go:build tremo

// Command ping listens on 470 MHz and reports raw LoRa radio events.
package main

import (
	"tremo-go/app/ping"
	"tremo-go/internal/platform"
	"tremo-go/x/fmtx"
)

func main() {
	defer platform.Recover()

	b, err := platform.Open()
	if err != nil {
		platform.Halt(err.Error())
	}

	p := ping.New(platform.LoRaRadio{}, b.Log())
	p.Setup()
	for {
		switch s := p.Step(); s {
		case ping.Rx:
			fmtx.Printf("rx %d bytes rssi %d snr %d\r\n", len(p.Received()), p.RSSI(), p.SNR())
		case ping.RxError, ping.TxTimeout:
			fmtx.Printf("radio %s\r\n", s.String())
		}
	}
}
