//go:build !tremo

// Command simclassc runs the class C application against the simulated
// LoRaWAN network and prints every frame the device puts on the air.
package main

import (
	"flag"
	"os"
	"time"

	"tremo-go/app/classc"
	"tremo-go/mac/sim"
	"tremo-go/x/fmtx"
)

func main() {
	uplinks := flag.Int("n", 5, "stop after this many data uplinks")
	realtime := flag.Bool("realtime", false, "wait out each duty cycle")
	rejects := flag.Int("reject", 1, "joins the network refuses first")
	downlink := flag.String("downlink", "hello", "payload queued on port 3, empty for none")
	flag.Parse()

	net := &sim.Network{NetID: [3]byte{0x13}, DevAddr: 0x26011BDA, RejectJoins: *rejects, Margin: 10, Gateways: 1}
	if *downlink != "" {
		net.Send(sim.Downlink{Port: 3, Payload: []byte(*downlink)})
	}
	var timer sim.Timer
	app := classc.New(classc.DefaultConfig(), net, &timer, net.Radio(), classc.WithOutput(os.Stdout))
	fmtx.Printf("ClassC app start\r\n")

	seen, data := 0, 0
	for data < *uplinks {
		app.Step()
		for ; seen < len(net.Uplinks); seen++ {
			f := net.Uplinks[seen]
			if f[0] != 0 {
				data++
			}
			fmtx.Printf("air: %X\r\n", f)
		}
		if app.State() != classc.StateSleep || net.Pending() {
			continue
		}
		if !timer.Running() {
			println("[simclassc] stalled in", app.State().String())
			os.Exit(1)
		}
		if *realtime {
			time.Sleep(time.Duration(timer.Value()) * time.Millisecond)
		}
		timer.Fire()
	}
}
