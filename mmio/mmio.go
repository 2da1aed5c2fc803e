// Package mmio provides the register access primitives every driver is built
// on: raw Read and Write, masked Set, and boolean Enable, over a pluggable
// address Space.
//
// Set and Enable are read-modify-write sequences. They are not atomic with
// respect to an interrupt handler writing the same register; each register has
// a single writer unless the handle carries a Guard that masks interrupts for
// the span of the update.
package mmio

import "tremo-go/regmap"

// Space is a 32-bit memory-mapped address space.
type Space interface {
	Load(addr uintptr) uint32
	Store(addr uintptr, v uint32)
}

// Guard brackets a read-modify-write span.
type Guard interface {
	Enter() uintptr
	Exit(state uintptr)
}

type noGuard struct{}

func (noGuard) Enter() uintptr { return 0 }
func (noGuard) Exit(uintptr)   {}

// NoGuard leaves interrupts alone.
var NoGuard Guard = noGuard{}

// Register is one 32-bit hardware register.
type Register interface {
	Read() uint32
	Write(v uint32)
	// Set replaces the bits under mask with value. Bits of value outside
	// mask are dropped.
	Set(mask, value uint32)
	// Enable sets every bit of mask when on, clears them otherwise.
	Enable(mask uint32, on bool)
}

// Reg addresses a register in a Space.
type Reg struct {
	space Space
	addr  uintptr
	guard Guard
}

func NewReg(space Space, addr uintptr, g Guard) Reg {
	if g == nil {
		g = NoGuard
	}
	return Reg{space: space, addr: addr, guard: g}
}

func (r Reg) Addr() uintptr        { return r.addr }
func (r Reg) Read() uint32         { return r.space.Load(r.addr) }
func (r Reg) Write(v uint32)       { r.space.Store(r.addr, v) }
func (r Reg) Has(mask uint32) bool { return r.space.Load(r.addr)&mask != 0 }

func (r Reg) Set(mask, value uint32) {
	s := r.guard.Enter()
	cur := r.space.Load(r.addr)
	r.space.Store(r.addr, (cur&^mask)|(value&mask))
	r.guard.Exit(s)
}

func (r Reg) Enable(mask uint32, on bool) {
	s := r.guard.Enter()
	cur := r.space.Load(r.addr)
	if on {
		cur |= mask
	} else {
		cur &^= mask
	}
	r.space.Store(r.addr, cur)
	r.guard.Exit(s)
}

// Block is a handle on one peripheral instance. The base never changes after
// construction.
type Block struct {
	space Space
	base  uintptr
	guard Guard
}

func NewBlock(space Space, base uintptr, g Guard) Block {
	if g == nil {
		g = NoGuard
	}
	return Block{space: space, base: base, guard: g}
}

func (b Block) Base() uintptr { return b.base }
func (b Block) Space() Space  { return b.space }
func (b Block) Guard() Guard  { return b.guard }

func (b Block) Reg(off uintptr) Reg {
	return Reg{space: b.space, addr: b.base + off, guard: b.guard}
}

// Analog returns the analog front-end register with the given 8-bit address.
func Analog(space Space, reg uint8, g Guard) Reg {
	return NewReg(space, regmap.AnalogAddr(reg), g)
}
