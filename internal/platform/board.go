// Package platform brings up the board: it constructs one handle per
// peripheral over an address space, runs the boot clock sequence, and wires
// the log UART, I2C sensor bus and console.
package platform

import (
	"io"
	"time"

	"tremo-go/app/classc"
	"tremo-go/console"
	"tremo-go/drivers/gpio"
	"tremo-go/drivers/i2c"
	"tremo-go/drivers/rcc"
	"tremo-go/drivers/uart"
	"tremo-go/errcode"
	"tremo-go/internal/platform/setups"
	"tremo-go/mmio"
	"tremo-go/x/fmtx"
	"tremo-go/x/shmring"
)

// Board holds every peripheral handle. Handles live for the whole program.
type Board struct {
	Plan  setups.Plan
	Space mmio.Space

	RCC  *rcc.RCC
	GPIO [4]*gpio.GPIO
	UART [4]*uart.UART
	I2C  [3]*i2c.I2C

	// Rx holds bytes received on the log UART once interrupts run.
	Rx *shmring.Ring

	// Delay lets the 32 kHz crystal settle. LowPower, when set, runs after
	// the delay and before the log UART comes up.
	Delay    func(time.Duration)
	LowPower func()
}

func New(space mmio.Space, plan setups.Plan, opts ...mmio.Option) (*Board, error) {
	b := &Board{
		Plan:  plan,
		Space: space,
		RCC:   rcc.New(space, opts...),
		Rx:    shmring.New(rxSize),
		Delay: time.Sleep,
	}
	for p := gpio.PortA; p <= gpio.PortD; p++ {
		g, err := gpio.New(space, p, b.RCC, opts...)
		if err != nil {
			return nil, err
		}
		b.GPIO[p] = g
	}
	for n := range b.UART {
		u, err := uart.New(space, n, b.RCC, opts...)
		if err != nil {
			return nil, err
		}
		b.UART[n] = u
	}
	for n := range b.I2C {
		i, err := i2c.New(space, n, b.RCC, opts...)
		if err != nil {
			return nil, err
		}
		b.I2C[n] = i
	}
	return b, nil
}

// bootClocks are gated on at every boot, after the log UART.
var bootClocks = []rcc.Peripheral{
	rcc.GPIOA, rcc.GPIOB, rcc.GPIOC, rcc.GPIOD,
	rcc.PWR, rcc.RTC, rcc.SAC, rcc.LORA,
}

const (
	settle = 100 * time.Millisecond
	rxSize = 256
)

// Init runs the boot sequence: 32 kHz crystal on, boot clocks gated, log
// UART up, planned I2C buses configured, then "boot" on the log.
func (b *Board) Init() error {
	if b.Plan.Log.N < 0 || b.Plan.Log.N >= len(b.UART) {
		return &errcode.E{C: errcode.UnknownPort, Op: "platform.init", Msg: "log uart"}
	}
	if err := b.RCC.EnableOscillator(rcc.XO32K, true); err != nil {
		return err
	}
	logClk, _ := rcc.UARTPeripheral(b.Plan.Log.N)
	for _, p := range append([]rcc.Peripheral{logClk}, bootClocks...) {
		if err := b.RCC.EnablePeripheralClk(p, true); err != nil {
			return err
		}
	}
	if b.Delay != nil {
		b.Delay(settle)
	}
	if b.LowPower != nil {
		b.LowPower()
	}
	if err := b.initLog(); err != nil {
		return err
	}
	for _, p := range b.Plan.I2C {
		if err := b.initI2C(p); err != nil {
			return err
		}
	}
	println("[platform] boot", b.Plan.Name)
	fmtx.Fprintf(b.Log(), "boot\r\n")
	return nil
}

func (b *Board) mux(name string, fn uint8) error {
	port, pin, err := gpio.Split(name)
	if err != nil {
		return err
	}
	b.GPIO[port].SetIOMux(pin, fn)
	return nil
}

func (b *Board) initLog() error {
	l := b.Plan.Log
	for _, pin := range []string{l.TX, l.RX} {
		if err := b.mux(pin, l.Mux); err != nil {
			return err
		}
	}
	cfg := uart.DefaultConfig()
	if l.Baud != 0 {
		cfg.BaudRate = l.Baud
	}
	u := b.UART[l.N]
	if err := u.Init(cfg); err != nil {
		return err
	}
	u.Cmd(true)
	return nil
}

func (b *Board) initI2C(p setups.I2CPlan) error {
	if p.N < 0 || p.N >= len(b.I2C) {
		return &errcode.E{C: errcode.UnknownPort, Op: "platform.i2c"}
	}
	bus := b.I2C[p.N]
	if err := b.RCC.EnablePeripheralClk(bus.Peripheral(), true); err != nil {
		return err
	}
	for _, pin := range []string{p.SCL, p.SDA} {
		if err := b.mux(pin, p.Mux); err != nil {
			return err
		}
	}
	cfg := i2c.DefaultConfig()
	if p.Hz != 0 {
		cfg.Frequency = p.Hz
	}
	return bus.Configure(cfg)
}

// Log is the diagnostic UART.
func (b *Board) Log() io.Writer { return b.UART[b.Plan.Log.N] }

// Input reads console bytes from Rx, running idle while it is empty.
func (b *Board) Input(idle func()) uart.Receiver {
	return uart.Receiver{Ring: b.Rx, Idle: idle}
}

// Payload picks the uplink source the plan names.
func (b *Board) Payload() classc.Payload {
	switch b.Plan.Sensor {
	case "shtc3":
		return classc.NewClimate(classc.NewSHTC3(b.I2C[0]))
	case "aht20":
		return classc.NewClimate(classc.NewAHT20(b.I2C[0]))
	}
	return classc.TestFrame
}

// Console returns a diagnostic console over the board's handles.
func (b *Board) Console(out io.Writer) *console.Console {
	t := console.Target{Space: b.Space, Clocks: b.RCC, Rx: b.Rx}
	for i, g := range b.GPIO {
		t.Ports[i] = g
	}
	for i, u := range b.UART {
		t.UARTs[i] = u
	}
	return console.New(t, out)
}
