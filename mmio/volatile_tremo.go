//go:build tremo

package mmio

import (
	"runtime/interrupt"
	"runtime/volatile"
	"unsafe"
)

type hardware struct{}

// Hardware is the MCU's physical address space.
func Hardware() Space { return hardware{} }

func (hardware) Load(addr uintptr) uint32 {
	return (*volatile.Register32)(unsafe.Pointer(addr)).Get()
}

func (hardware) Store(addr uintptr, v uint32) {
	(*volatile.Register32)(unsafe.Pointer(addr)).Set(v)
}

type irqGuard struct{}

// IRQGuard masks interrupts for the duration of a read-modify-write.
func IRQGuard() Guard { return irqGuard{} }

func (irqGuard) Enter() uintptr { return uintptr(interrupt.Disable()) }
func (irqGuard) Exit(s uintptr) { interrupt.Restore(interrupt.State(s)) }
