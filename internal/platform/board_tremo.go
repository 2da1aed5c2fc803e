//go:build tremo

package platform

/*
#include <stdbool.h>

extern void RadioOnDioIrq(void);
extern void RtcOnIrq(void);
extern void RtcInit(void);
extern void pwr_xo32k_lpm_cmd(bool on);
*/
import "C"

import (
	"device/arm"
	"runtime/interrupt"

	"tremo-go/drivers/uart"
	"tremo-go/internal/platform/setups"
	"tremo-go/mmio"
	"tremo-go/regmap"
	"tremo-go/x/fmtx"
)

// board is read by interrupt handlers, which cannot capture.
var board *Board

// Open builds the selected board over the hardware address space and boots
// it. fmtx then prints to the log UART, the RTC runs, and interrupts are
// enabled for the radio, the RTC, GPIO and log UART reception.
func Open() (*Board, error) {
	b, err := New(mmio.Hardware(), setups.Selected, mmio.WithGuard(mmio.IRQGuard()))
	if err != nil {
		return nil, err
	}
	b.LowPower = func() { C.pwr_xo32k_lpm_cmd(true) }
	if err := b.Init(); err != nil {
		return nil, err
	}
	fmtx.DefaultOutput = b.Log()
	C.RtcInit()

	board = b
	interrupt.New(regmap.IRQ_LORA, func(interrupt.Interrupt) { C.RadioOnDioIrq() }).Enable()
	interrupt.New(regmap.IRQ_RTC, func(interrupt.Interrupt) { C.RtcOnIrq() }).Enable()
	interrupt.New(regmap.IRQ_GPIO, handleGPIO).Enable()
	enableLogRx(b.Plan.Log.N)
	b.UART[b.Plan.Log.N].StartRx(uart.Level1_2)
	return b, nil
}

// The IRQ number handed to interrupt.New must be a constant.
func enableLogRx(n int) {
	switch n {
	case 0:
		interrupt.New(regmap.IRQ_UART0, handleLogRx).Enable()
	case 1:
		interrupt.New(regmap.IRQ_UART1, handleLogRx).Enable()
	case 2:
		interrupt.New(regmap.IRQ_UART2, handleLogRx).Enable()
	case 3:
		interrupt.New(regmap.IRQ_UART3, handleLogRx).Enable()
	}
}

func handleLogRx(interrupt.Interrupt) {
	if board != nil {
		board.UART[board.Plan.Log.N].Drain(board.Rx)
	}
}

func handleGPIO(interrupt.Interrupt) {
	if board == nil {
		return
	}
	for _, g := range board.GPIO {
		g.HandleIRQ()
	}
}

// Recover halts the board when the deferring function panics. Use it as
// defer platform.Recover() at the top of main.
func Recover() {
	r := recover()
	if r == nil {
		return
	}
	switch v := r.(type) {
	case error:
		Halt(v.Error())
	case string:
		Halt(v)
	default:
		Halt("panic")
	}
}

// Halt prints msg and parks the core.
func Halt(msg string) {
	println("PANICKED", msg)
	for {
		arm.Asm("wfi")
	}
}

//export MemManage_Handler
func memManageHandler() { fault() }

//export BusFault_Handler
func busFaultHandler() { fault() }

//export UsageFault_Handler
func usageFaultHandler() { fault() }

func fault() {
	for {
	}
}
