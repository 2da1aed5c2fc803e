package mmio

// Access is one logged bus cycle.
type Access struct {
	Addr  uintptr
	Value uint32
	Write bool
}

// Bank is an in-memory Space for host builds and tests. Unwritten addresses
// read as zero. Hooks stand in for hardware that changes state on its own,
// such as sync flags clearing after a gate is dropped.
//
// A Bank is not safe for concurrent use.
type Bank struct {
	regs    map[uintptr]uint32
	onLoad  map[uintptr]func(cur uint32) uint32
	onStore map[uintptr]func(old, v uint32) uint32
	trace   []Access
	stored  map[uintptr]int
}

func NewBank() *Bank {
	return &Bank{
		regs:    map[uintptr]uint32{},
		onLoad:  map[uintptr]func(uint32) uint32{},
		onStore: map[uintptr]func(uint32, uint32) uint32{},
		stored:  map[uintptr]int{},
	}
}

func (b *Bank) Load(addr uintptr) uint32 {
	v := b.regs[addr]
	if h := b.onLoad[addr]; h != nil {
		v = h(v)
		b.regs[addr] = v
	}
	b.trace = append(b.trace, Access{Addr: addr, Value: v})
	return v
}

func (b *Bank) Store(addr uintptr, v uint32) {
	b.trace = append(b.trace, Access{Addr: addr, Value: v, Write: true})
	b.stored[addr]++
	if h := b.onStore[addr]; h != nil {
		v = h(b.regs[addr], v)
	}
	b.regs[addr] = v
}

// Poke sets a register without logging or hooks.
func (b *Bank) Poke(addr uintptr, v uint32) { b.regs[addr] = v }

// Peek reads a register without logging or hooks.
func (b *Bank) Peek(addr uintptr) uint32 { return b.regs[addr] }

// OnLoad installs a hook whose result is both returned and latched.
func (b *Bank) OnLoad(addr uintptr, h func(cur uint32) uint32) { b.onLoad[addr] = h }

// OnStore installs a hook that decides what a write latches.
func (b *Bank) OnStore(addr uintptr, h func(old, v uint32) uint32) { b.onStore[addr] = h }

// Trace returns every access since the last ResetTrace.
func (b *Bank) Trace() []Access { return b.trace }

// Writes returns the logged stores, in order.
func (b *Bank) Writes() []Access {
	var out []Access
	for _, a := range b.trace {
		if a.Write {
			out = append(out, a)
		}
	}
	return out
}

// WritesTo returns the values stored at addr, in order.
func (b *Bank) WritesTo(addr uintptr) []uint32 {
	var out []uint32
	for _, a := range b.trace {
		if a.Write && a.Addr == addr {
			out = append(out, a.Value)
		}
	}
	return out
}

// Touched reports whether addr has been stored to since the last ResetTrace.
func (b *Bank) Touched(addr uintptr) bool { return b.stored[addr] > 0 }

// TouchedIn reports whether any address in [base, base+size) was stored to.
func (b *Bank) TouchedIn(base, size uintptr) bool {
	for a, n := range b.stored {
		if n > 0 && a >= base && a < base+size {
			return true
		}
	}
	return false
}

func (b *Bank) ResetTrace() {
	b.trace = b.trace[:0]
	clear(b.stored)
}
