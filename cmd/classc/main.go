//go:build tremo

// Command classc joins a LoRaWAN network over OTAA as a class C device and
// sends the board's payload every duty cycle.
package main

import (
	"tremo-go/app/classc"
	"tremo-go/internal/platform"
)

func main() {
	defer platform.Recover()

	b, err := platform.Open()
	if err != nil {
		platform.Halt(err.Error())
	}

	app := classc.New(classc.DefaultConfig(),
		platform.LoRaMac{}, platform.RTCTimer{}, platform.LoRaRadio{},
		classc.WithPayload(b.Payload()),
		classc.WithOutput(b.Log()),
	)
	app.Run()
}
