package gpio

import (
	"testing"

	"tremo-go/drivers/rcc"
	"tremo-go/errcode"
	"tremo-go/mmio"
	"tremo-go/regmap"
)

func addr(p Port, off uintptr) uintptr {
	return regmap.GPIOA_BASE + uintptr(p)*regmap.GPIO_PORT_STRIDE + off
}

func newPort(t *testing.T, p Port) (*GPIO, *mmio.Bank) {
	t.Helper()
	b := mmio.NewBank()
	g, err := New(b, p, nil)
	if err != nil {
		t.Fatal(err)
	}
	return g, b
}

type bits struct{ oer, ier, per, psr, otyper, odr bool }

func snapshot(b *mmio.Bank, p Port, pin uint8) bits {
	m := uint32(1) << pin
	has := func(off uintptr) bool { return b.Peek(addr(p, off))&m != 0 }
	return bits{
		oer:    has(regmap.GPIO_OER),
		ier:    has(regmap.GPIO_IER),
		per:    has(regmap.GPIO_PER),
		psr:    has(regmap.GPIO_PSR),
		otyper: has(regmap.GPIO_OTYPER),
		odr:    has(regmap.GPIO_ODR),
	}
}

func TestModeTable(t *testing.T) {
	cases := []struct {
		mode Mode
		want bits
	}{
		{InputFloating, bits{oer: true, ier: true}},
		{InputPullUp, bits{oer: true, ier: true, per: true, psr: true}},
		{InputPullDown, bits{oer: true, ier: true, per: true}},
		{OutputPPHigh, bits{odr: true}},
		{OutputPPLow, bits{}},
		{OutputODHiZ, bits{otyper: true, odr: true}},
		{OutputODLow, bits{otyper: true}},
		{Analog, bits{oer: true}},
	}
	for _, c := range cases {
		g, b := newPort(t, PortB)
		g.Init(3, c.mode)
		if got := snapshot(b, PortB, 3); got != c.want {
			t.Errorf("mode %d: got %+v, want %+v", c.mode, got, c.want)
		}
		for _, a := range b.Writes() {
			if a.Value&^(1<<3) != 0 {
				t.Errorf("mode %d: write %#x touched other pins", c.mode, a.Value)
			}
		}
	}
}

func TestPortDHighPinsUseAlternateOpenDrain(t *testing.T) {
	g, b := newPort(t, PortD)
	g.Init(9, OutputODHiZ)
	if got, want := snapshot(b, PortD, 9), (bits{oer: true, psr: true}); got != want {
		t.Fatalf("hi-z: %+v, want %+v", got, want)
	}
	g.Init(10, OutputODLow)
	if got, want := snapshot(b, PortD, 10), (bits{psr: true}); got != want {
		t.Fatalf("low: %+v, want %+v", got, want)
	}
	if b.Touched(addr(PortD, regmap.GPIO_OTYPER)) {
		t.Fatal("alternate path wrote OTYPER")
	}

	// pin 7 is below the erratum range
	g.Init(7, OutputODHiZ)
	if got, want := snapshot(b, PortD, 7), (bits{otyper: true, odr: true}); got != want {
		t.Fatalf("pd7: %+v, want %+v", got, want)
	}
}

func TestWriteUsesSetResetRegisters(t *testing.T) {
	g, b := newPort(t, PortA)
	g.Write(5, true)
	g.Write(5, false)
	w := b.Writes()
	if len(w) != 2 ||
		w[0].Addr != addr(PortA, regmap.GPIO_BSR) || w[0].Value != 1<<5 ||
		w[1].Addr != addr(PortA, regmap.GPIO_BRR) || w[1].Value != 1<<5 {
		t.Fatalf("writes = %+v", w)
	}
	if len(b.Trace()) != 2 {
		t.Fatal("Write should not read any register")
	}
}

func TestPortDWriteFromHiZ(t *testing.T) {
	g, b := newPort(t, PortD)
	g.Init(12, OutputODHiZ)

	// high on a released pin is left alone
	b.ResetTrace()
	g.Write(12, true)
	if n := len(b.Writes()); n != 0 {
		t.Fatalf("write high from hi-z issued %d writes", n)
	}
	if got, want := snapshot(b, PortD, 12), (bits{oer: true, psr: true}); got != want {
		t.Fatalf("state changed: %+v", got)
	}

	// low re-applies the released pattern rather than driving the line
	g.Write(12, false)
	if got, want := snapshot(b, PortD, 12), (bits{oer: true, psr: true}); got != want {
		t.Fatalf("after low: %+v, want %+v", got, want)
	}
	if oer := b.WritesTo(addr(PortD, regmap.GPIO_OER)); len(oer) != 1 || oer[0]&(1<<12) == 0 {
		t.Fatalf("oer writes %v, want one write setting pin 12", oer)
	}
	if b.Touched(addr(PortD, regmap.GPIO_BRR)) {
		t.Fatal("alternate pin must not use BRR")
	}
}

func TestPortDWriteFromLowReleases(t *testing.T) {
	for _, level := range []bool{true, false} {
		g, b := newPort(t, PortD)
		g.Init(8, OutputODLow)
		b.ResetTrace()
		g.Write(8, level)
		if got, want := snapshot(b, PortD, 8), (bits{oer: true, psr: true}); got != want {
			t.Errorf("level %v: %+v, want %+v", level, got, want)
		}
		oer := b.WritesTo(addr(PortD, regmap.GPIO_OER))
		if len(oer) != 2 || oer[0] != 0 || oer[1] != 1<<8 {
			t.Errorf("level %v: oer writes %v", level, oer)
		}
	}
}

func TestPortDOtherStatesFallThrough(t *testing.T) {
	g, b := newPort(t, PortD)
	g.Init(11, OutputPPLow)
	g.Write(11, true)
	if w := b.WritesTo(addr(PortD, regmap.GPIO_BSR)); len(w) != 1 || w[0] != 1<<11 {
		t.Fatalf("bsr writes = %v", w)
	}
}

func TestToggleTwiceRestores(t *testing.T) {
	g, b := newPort(t, PortC)
	b.Poke(addr(PortC, regmap.GPIO_ODR), 0xA5A5)
	g.Toggle(0)
	if got := b.Peek(addr(PortC, regmap.GPIO_ODR)); got != 0xA5A4 {
		t.Fatalf("after one toggle: %#x", got)
	}
	g.Toggle(0)
	if got := b.Peek(addr(PortC, regmap.GPIO_ODR)); got != 0xA5A5 {
		t.Fatalf("after two toggles: %#x", got)
	}
}

func TestReadAndDrive(t *testing.T) {
	g, b := newPort(t, PortA)
	b.Poke(addr(PortA, regmap.GPIO_IDR), 1<<4)
	if !g.Read(4) || g.Read(5) || g.Read(40) {
		t.Fatal("Read disagrees with IDR")
	}
	g.ConfigDriveCapability(2, Drive4mA)
	g.ConfigDriveCapability(3, Drive4mA)
	g.ConfigDriveCapability(3, Drive8mA)
	if got := b.Peek(addr(PortA, regmap.GPIO_DSR)); got != 1<<2 {
		t.Fatalf("dsr = %#x", got)
	}
}

func TestIOMux(t *testing.T) {
	cases := []struct {
		port Port
		pin  uint8
		fn   uint8
		off  uintptr
		want uint32
	}{
		{PortA, 0, 1, regmap.GPIO_AFRL, 0x1},
		{PortA, 7, 0xA, regmap.GPIO_AFRL, 0xA0000000},
		{PortB, 8, 3, regmap.GPIO_AFRH, 0x3},
		{PortB, 15, 0xF, regmap.GPIO_AFRH, 0xF0000000},
		{PortD, 3, 0xF, regmap.GPIO_AFRL, 0xF000},
		{PortD, 9, 5, regmap.GPIO_AFRH, 5 << 3},
		{PortD, 15, 0xF, regmap.GPIO_AFRH, 7 << 21},
	}
	for _, c := range cases {
		g, b := newPort(t, c.port)
		g.SetIOMux(c.pin, c.fn)
		if got := b.Peek(addr(c.port, c.off)); got != c.want {
			t.Errorf("%v%d fn %d: %#x, want %#x", c.port, c.pin, c.fn, got, c.want)
		}
		want := c.fn
		if c.port == PortD && c.pin > 7 {
			want &= 7
		}
		if got := g.IOMux(c.pin); got != want {
			t.Errorf("%v%d IOMux = %d, want %d", c.port, c.pin, got, want)
		}
	}

	g, b := newPort(t, PortB)
	b.Poke(addr(PortB, regmap.GPIO_AFRL), 0xFFFFFFFF)
	g.SetIOMux(2, 0)
	if got := b.Peek(addr(PortB, regmap.GPIO_AFRL)); got != 0xFFFFF0FF {
		t.Fatalf("neighbours disturbed: %#x", got)
	}
}

func TestInterruptConfigAndAcknowledge(t *testing.T) {
	g, b := newPort(t, PortA)
	ifr := addr(PortA, regmap.GPIO_IFR)
	icr := addr(PortA, regmap.GPIO_ICR)
	b.Poke(ifr, 0x3<<10|0x1<<2)
	if !g.InterruptStatus(1) || !g.InterruptStatus(5) || g.InterruptStatus(6) {
		t.Fatal("status mismatch")
	}

	g.ConfigInterrupt(5, TriggerFalling)
	if w := b.WritesTo(ifr); len(w) != 1 || w[0] != 0x3<<10 {
		t.Fatalf("acknowledge wrote %v", w)
	}
	if got := b.Peek(icr); got != 0x2<<10 {
		t.Fatalf("icr = %#x", got)
	}
	if g.InterruptTrigger(5) != TriggerFalling {
		t.Fatal("trigger readback")
	}
}

func TestHandleIRQ(t *testing.T) {
	g, b := newPort(t, PortB)
	ifr := addr(PortB, regmap.GPIO_IFR)
	// hardware clears the bits written back to IFR
	b.OnStore(ifr, func(old, v uint32) uint32 { return old &^ v })

	var fired []uint8
	p, _ := g.Pin(4)
	if err := p.SetIRQ(TriggerRising, func() { fired = append(fired, 4) }); err != nil {
		t.Fatal(err)
	}
	g.OnInterrupt(9, func() { fired = append(fired, 9) })
	b.Poke(ifr, 0x1<<8|0x2<<18|0x1<<30)

	if n := g.HandleIRQ(); n != 3 {
		t.Fatalf("serviced %d pins", n)
	}
	if len(fired) != 2 || fired[0] != 4 || fired[1] != 9 {
		t.Fatalf("fired = %v", fired)
	}
	if got := b.Peek(ifr); got != 0 {
		t.Fatalf("ifr left %#x", got)
	}
	if err := p.SetIRQ(TriggerNone, func() {}); errcode.Of(err) != errcode.InvalidParams {
		t.Fatalf("SetIRQ(none) = %v", err)
	}
}

func TestWakeup(t *testing.T) {
	g, b := newPort(t, PortC)
	g.ConfigWakeup(6, true, true)
	g.ConfigWakeup(7, true, false)
	if b.Peek(addr(PortC, regmap.GPIO_WUCR)) != 0xC0 || b.Peek(addr(PortC, regmap.GPIO_WULVL)) != 0x40 {
		t.Fatal("wakeup registers")
	}
}

func TestStop3Wakeup(t *testing.T) {
	cases := []struct {
		port   Port
		pin    uint8
		en, hi bool
		want   uint32
	}{
		{PortB, 1, true, true, (0x8 | 0x4 | 1) << 0},
		{PortB, 5, true, false, (0x8 | 1) << 4},
		{PortA, 6, true, false, (0x8 | 0) << 12},
		{PortA, 13, true, true, (0x8 | 0x4 | 3) << 4},
		{PortC, 6, false, false, 2 << 4},
		{PortD, 7, true, false, (0x8 | 3) << 4},
	}
	for _, c := range cases {
		g, b := newPort(t, c.port)
		g.ConfigStop3Wakeup(c.pin, c.en, c.hi)
		if got := b.Peek(addr(c.port, regmap.GPIO_STOP3_WUCR)); got != c.want {
			t.Errorf("%v%d: %#x, want %#x", c.port, c.pin, got, c.want)
		}
	}

	g, b := newPort(t, PortD)
	g.ConfigStop3Wakeup(8, true, true)
	if len(b.Trace()) != 0 {
		t.Fatal("pd8 has no stop3 slot")
	}
}

type fakeClocks struct {
	calls []string
}

func (f *fakeClocks) EnablePeripheralClk(p rcc.Peripheral, on bool) error {
	if on {
		f.calls = append(f.calls, "on")
	} else {
		f.calls = append(f.calls, "off")
	}
	return nil
}

func (f *fakeClocks) ResetPeripheral(p rcc.Peripheral, assert bool) {
	if assert {
		f.calls = append(f.calls, "assert")
	} else {
		f.calls = append(f.calls, "release")
	}
}

func TestDeinit(t *testing.T) {
	clk := &fakeClocks{}
	g, err := New(mmio.NewBank(), PortC, clk)
	if err != nil {
		t.Fatal(err)
	}
	if err := g.Deinit(); err != nil {
		t.Fatal(err)
	}
	want := []string{"off", "off", "off", "off", "assert", "release"}
	if len(clk.calls) != len(want) {
		t.Fatalf("calls = %v", clk.calls)
	}
	for i := range want {
		if clk.calls[i] != want[i] {
			t.Fatalf("calls = %v, want %v", clk.calls, want)
		}
	}

	g, _ = newPort(t, PortA)
	if errcode.Of(g.Deinit()) != errcode.Unsupported {
		t.Fatal("Deinit without clocks should fail")
	}
}

func TestDeinitAgainstRCC(t *testing.T) {
	b := mmio.NewBank()
	b.Poke(regmap.RCC_BASE+regmap.RCC_CGR0, 0xFFFFFFFF)
	b.Poke(regmap.RCC_BASE+regmap.RCC_RST0, 0xFFFFFFFF)
	g, _ := New(b, PortA, rcc.New(b))
	if err := g.Deinit(); err != nil {
		t.Fatal(err)
	}
	gates := uint32(regmap.RCC_CGR0_IOM0_CLK_EN_Msk | regmap.RCC_CGR0_IOM1_CLK_EN_Msk |
		regmap.RCC_CGR0_IOM2_CLK_EN_Msk | regmap.RCC_CGR0_IOM3_CLK_EN_Msk)
	if got := b.Peek(regmap.RCC_BASE + regmap.RCC_CGR0); got != 0xFFFFFFFF&^gates {
		t.Fatalf("cgr0 = %#x", got)
	}
	w := b.WritesTo(regmap.RCC_BASE + regmap.RCC_RST0)
	if len(w) != 2 || w[0]&regmap.RCC_RST0_IOM_RST_N_Msk != 0 || w[1]&regmap.RCC_RST0_IOM_RST_N_Msk == 0 {
		t.Fatalf("reset pulse = %#x", w)
	}
}

func TestNewRejectsUnknownPort(t *testing.T) {
	if _, err := New(mmio.NewBank(), Port(4), nil); errcode.Of(err) != errcode.UnknownPort {
		t.Fatalf("err = %v", err)
	}
}

func TestPinAdapter(t *testing.T) {
	g, b := newPort(t, PortC)
	p, ok := g.Pin(9)
	if !ok || p.Number() != 41 {
		t.Fatalf("pin c9 number = %d", p.Number())
	}
	if _, ok := g.Pin(16); ok {
		t.Fatal("pin 16 accepted")
	}
	if err := p.ConfigureOutput(true); err != nil {
		t.Fatal(err)
	}
	if got, want := snapshot(b, PortC, 9), (bits{odr: true}); got != want {
		t.Fatalf("output high: %+v", got)
	}
	if err := p.ConfigureInput(PullDown); err != nil {
		t.Fatal(err)
	}
	if got, want := snapshot(b, PortC, 9), (bits{oer: true, ier: true, per: true, odr: true}); got != want {
		t.Fatalf("input pulldown: %+v", got)
	}
	if errcode.Of(p.ConfigureInput(Pull(9))) != errcode.InvalidParams {
		t.Fatal("bad pull accepted")
	}
}

func TestSplit(t *testing.T) {
	cases := []struct {
		in   string
		port Port
		pin  uint8
		code errcode.Code
	}{
		{"a5", PortA, 5, errcode.OK},
		{"PD11", PortD, 11, errcode.OK},
		{"pb0", PortB, 0, errcode.OK},
		{"C15", PortC, 15, errcode.OK},
		{"e1", 0, 0, errcode.UnknownPort},
		{"a16", 0, 0, errcode.UnknownPin},
		{"a", 0, 0, errcode.UnknownPin},
		{"bx", 0, 0, errcode.UnknownPin},
	}
	for _, c := range cases {
		port, pin, err := Split(c.in)
		if errcode.Of(err) != c.code {
			t.Errorf("%q: err %v, want %s", c.in, err, c.code)
			continue
		}
		if err == nil && (port != c.port || pin != c.pin) {
			t.Errorf("%q: got %v%d", c.in, port, pin)
		}
	}
}
