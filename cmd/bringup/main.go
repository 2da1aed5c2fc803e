//go:build tremo

// Command bringup boots the board, prints clocks and the reset cause, and
// serves the diagnostic console on the log UART.
package main

import (
	"device/arm"

	"tremo-go/internal/platform"
)

func main() {
	defer platform.Recover()

	b, err := platform.Open()
	if err != nil {
		platform.Halt(err.Error())
	}
	c := b.Console(b.Log())
	for _, cmd := range []string{"clk", "osc", "reset-cause"} {
		if err := c.Exec(cmd); err != nil {
			println("[bringup]", cmd, err.Error())
		}
	}
	b.RCC.ClearResetCause()

	c.Echo = true
	// Rx is filled from the UART interrupt; sleep until it fires.
	c.Serve(b.Input(func() { arm.Asm("wfi") }))
}
