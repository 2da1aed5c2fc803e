// Package gpio drives the four 16-pin GPIO ports.
//
// Each port handle owns its registers. Write goes through the BSR/BRR
// set/reset registers and never races other pins; Toggle, the mode table
// and the iomux fields are read-modify-write and rely on the caller keeping
// one writer per register (or installing mmio.IRQGuard).
package gpio

import (
	"tremo-go/drivers/rcc"
	"tremo-go/errcode"
	"tremo-go/mmio"
	"tremo-go/regmap"
)

// Port names one of the four GPIO ports.
type Port uint8

const (
	PortA Port = iota
	PortB
	PortC
	PortD
)

func (p Port) String() string {
	if p <= PortD {
		return string(rune('a' + p))
	}
	return "?"
}

// Peripheral is the clock-gate id of the port.
func (p Port) Peripheral() rcc.Peripheral {
	switch p {
	case PortB:
		return rcc.GPIOB
	case PortC:
		return rcc.GPIOC
	case PortD:
		return rcc.GPIOD
	}
	return rcc.GPIOA
}

// Mode is a pin configuration from the fixed mode table.
type Mode uint8

const (
	InputFloating Mode = iota
	InputPullUp
	InputPullDown
	OutputPPHigh
	OutputPPLow
	OutputODHiZ
	OutputODLow
	Analog
)

// Drive is the output drive strength.
type Drive uint8

const (
	Drive4mA Drive = iota
	Drive8mA
)

// Trigger is the edge selection written to ICR.
type Trigger uint8

const (
	TriggerNone    Trigger = regmap.GPIO_ICR_NONE
	TriggerRising  Trigger = regmap.GPIO_ICR_RISING
	TriggerFalling Trigger = regmap.GPIO_ICR_FALLING
	TriggerBoth    Trigger = regmap.GPIO_ICR_RISE_FALL
)

// Clocks is the part of the clock controller a port needs.
type Clocks interface {
	EnablePeripheralClk(p rcc.Peripheral, on bool) error
	ResetPeripheral(p rcc.Peripheral, assert bool)
}

// GPIO is one port.
type GPIO struct {
	port Port
	clk  Clocks

	oer, otyper, ier, per, psr mmio.Reg
	idr, odr, brr, bsr, dsr    mmio.Reg
	icr, ifr, wucr, wulvl      mmio.Reg
	afrl, afrh, stop3          mmio.Reg

	handlers [regmap.GPIO_PINS]func()
}

// New returns the handle for port. clk may be nil if Deinit is never used.
func New(space mmio.Space, port Port, clk Clocks, opts ...mmio.Option) (*GPIO, error) {
	if port > PortD {
		return nil, &errcode.E{C: errcode.UnknownPort, Op: "gpio.new"}
	}
	c := mmio.Apply(opts...)
	b := mmio.NewBlock(space, regmap.GPIOA_BASE+uintptr(port)*regmap.GPIO_PORT_STRIDE, c.Guard)
	return &GPIO{
		port:   port,
		clk:    clk,
		oer:    b.Reg(regmap.GPIO_OER),
		otyper: b.Reg(regmap.GPIO_OTYPER),
		ier:    b.Reg(regmap.GPIO_IER),
		per:    b.Reg(regmap.GPIO_PER),
		psr:    b.Reg(regmap.GPIO_PSR),
		idr:    b.Reg(regmap.GPIO_IDR),
		odr:    b.Reg(regmap.GPIO_ODR),
		brr:    b.Reg(regmap.GPIO_BRR),
		bsr:    b.Reg(regmap.GPIO_BSR),
		dsr:    b.Reg(regmap.GPIO_DSR),
		icr:    b.Reg(regmap.GPIO_ICR),
		ifr:    b.Reg(regmap.GPIO_IFR),
		wucr:   b.Reg(regmap.GPIO_WUCR),
		wulvl:  b.Reg(regmap.GPIO_WULVL),
		afrl:   b.Reg(regmap.GPIO_AFRL),
		afrh:   b.Reg(regmap.GPIO_AFRH),
		stop3:  b.Reg(regmap.GPIO_STOP3_WUCR),
	}, nil
}

func (g *GPIO) Port() Port { return g.port }

// Pins above 7 on port D have a different open-drain circuit.
func (g *GPIO) odAlt(pin uint8) bool { return g.port == PortD && pin > 7 }

func valid(pin uint8) bool { return pin < regmap.GPIO_PINS }

type regID uint8

const (
	rOER regID = iota
	rIER
	rPER
	rPSR
	rOTYPER
	rODR
)

type step struct {
	r  regID
	on bool
}

// OER is active low: a set bit disables the output driver.
var modeTable = [...][]step{
	InputFloating: {{rOER, true}, {rIER, true}, {rPER, false}},
	InputPullUp:   {{rOER, true}, {rIER, true}, {rPER, true}, {rPSR, true}},
	InputPullDown: {{rOER, true}, {rIER, true}, {rPER, true}, {rPSR, false}},
	OutputPPHigh:  {{rOER, false}, {rIER, false}, {rOTYPER, false}, {rODR, true}},
	OutputPPLow:   {{rOER, false}, {rIER, false}, {rOTYPER, false}, {rODR, false}},
	OutputODHiZ:   {{rOER, false}, {rIER, false}, {rOTYPER, true}, {rODR, true}},
	OutputODLow:   {{rOER, false}, {rIER, false}, {rOTYPER, true}, {rODR, false}},
	Analog:        {{rOER, true}, {rIER, false}, {rPER, false}},
}

// Port D pins 8..15 emulate open drain with the pull-up and output enable.
var odAltTable = [...][]step{
	OutputODHiZ: {{rODR, false}, {rIER, false}, {rOER, true}, {rPSR, true}},
	OutputODLow: {{rODR, false}, {rIER, false}, {rOER, false}, {rPSR, true}},
}

func (g *GPIO) reg(id regID) mmio.Reg {
	switch id {
	case rOER:
		return g.oer
	case rIER:
		return g.ier
	case rPER:
		return g.per
	case rPSR:
		return g.psr
	case rOTYPER:
		return g.otyper
	}
	return g.odr
}

func (g *GPIO) apply(pin uint8, steps []step) {
	bit := uint32(1) << pin
	for _, s := range steps {
		g.reg(s.r).Enable(bit, s.on)
	}
}

// Init configures pin. Out-of-range pins and modes are ignored.
func (g *GPIO) Init(pin uint8, mode Mode) {
	if !valid(pin) || int(mode) >= len(modeTable) {
		return
	}
	if g.odAlt(pin) && (mode == OutputODHiZ || mode == OutputODLow) {
		g.apply(pin, odAltTable[mode])
		return
	}
	g.apply(pin, modeTable[mode])
}

// state reports whether pin currently matches the alternate open-drain
// pattern for mode.
func (g *GPIO) state(pin uint8, mode Mode) bool {
	bit := uint32(1) << pin
	for _, s := range odAltTable[mode] {
		if g.reg(s.r).Has(bit) != s.on {
			return false
		}
	}
	return true
}

// Write drives pin high or low. On port D pins above 7 in an open-drain
// mode the direction bits are reprogrammed instead and the pin ends up
// released whatever level is asked for; writing high to a pin already at
// high impedance does nothing.
func (g *GPIO) Write(pin uint8, high bool) {
	if !valid(pin) {
		return
	}
	bit := uint32(1) << pin
	if g.odAlt(pin) {
		switch {
		case g.state(pin, OutputODHiZ):
			if !high {
				g.apply(pin, odAltTable[OutputODHiZ])
			}
			return
		case g.state(pin, OutputODLow):
			g.oer.Enable(bit, false)
			g.ier.Enable(bit, false)
			g.oer.Enable(bit, true)
			g.psr.Enable(bit, true)
			return
		}
	}
	if high {
		g.bsr.Write(bit)
	} else {
		g.brr.Write(bit)
	}
}

func (g *GPIO) Read(pin uint8) bool {
	return valid(pin) && g.idr.Has(1<<pin)
}

// Toggle flips the ODR bit with a read-modify-write of the whole register.
func (g *GPIO) Toggle(pin uint8) {
	if !valid(pin) {
		return
	}
	g.odr.Write(g.odr.Read() ^ 1<<pin)
}

// ConfigDriveCapability sets the output drive strength. DSR set means 4 mA.
func (g *GPIO) ConfigDriveCapability(pin uint8, d Drive) {
	if !valid(pin) {
		return
	}
	g.dsr.Enable(1<<pin, d == Drive4mA)
}

// SetIOMux selects the alternate function of pin. Pins 0..7 use 4-bit
// AFRL fields; pins 8..15 use AFRH, 3 bits wide on port D.
func (g *GPIO) SetIOMux(pin uint8, function uint8) {
	if !valid(pin) {
		return
	}
	if pin < 8 {
		sh := 4 * uint32(pin)
		g.afrl.Set(regmap.GPIO_AFR_Msk<<sh, uint32(function)<<sh)
		return
	}
	idx := uint32(pin - 8)
	if g.port == PortD {
		g.afrh.Set(regmap.GPIO_AFR_PORTD_HI_Msk<<(3*idx), uint32(function)<<(3*idx))
		return
	}
	g.afrh.Set(regmap.GPIO_AFR_Msk<<(4*idx), uint32(function)<<(4*idx))
}

// IOMux reads back the alternate function of pin.
func (g *GPIO) IOMux(pin uint8) uint8 {
	switch {
	case !valid(pin):
		return 0
	case pin < 8:
		return uint8(mmio.Field(g.afrl.Read(), uint32(regmap.GPIO_AFR_Msk)<<(4*uint32(pin))))
	case g.port == PortD:
		return uint8(mmio.Field(g.afrh.Read(), uint32(regmap.GPIO_AFR_PORTD_HI_Msk)<<(3*uint32(pin-8))))
	}
	return uint8(mmio.Field(g.afrh.Read(), uint32(regmap.GPIO_AFR_Msk)<<(4*uint32(pin-8))))
}

// Deinit gates off every port clock and pulses the shared GPIO reset.
func (g *GPIO) Deinit() error {
	if g.clk == nil {
		return &errcode.E{C: errcode.Unsupported, Op: "gpio.deinit", Msg: "no clock controller"}
	}
	for _, p := range []Port{PortA, PortB, PortC, PortD} {
		if err := g.clk.EnablePeripheralClk(p.Peripheral(), false); err != nil {
			return err
		}
	}
	g.clk.ResetPeripheral(rcc.GPIOA, true)
	g.clk.ResetPeripheral(rcc.GPIOB, false)
	return nil
}
