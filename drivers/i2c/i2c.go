// Package i2c is a polled master for the TWSI-style I2C controllers. It
// implements the tinygo.org/x/drivers I2C contract so sensor drivers from
// that module run unchanged.
package i2c

import (
	"strconv"

	"tinygo.org/x/drivers"

	"tremo-go/drivers/rcc"
	"tremo-go/errcode"
	"tremo-go/mmio"
	"tremo-go/regmap"
)

var _ drivers.I2C = (*I2C)(nil)

var bases = [...]uintptr{regmap.I2C0_BASE, regmap.I2C1_BASE, regmap.I2C2_BASE}

var peripherals = [...]rcc.Peripheral{rcc.I2C0, rcc.I2C1, rcc.I2C2}

// Clocks is the part of the clock controller the bus needs.
type Clocks interface {
	ClkFreq(clk rcc.Clock) uint32
	EnablePeripheralClk(p rcc.Peripheral, on bool) error
	ResetPeripheral(p rcc.Peripheral, assert bool)
}

// Config selects the SCL rate. Rates above 100 kHz use fast mode.
type Config struct {
	Frequency uint32 `json:"frequency"`
}

func DefaultConfig() Config { return Config{Frequency: regmap.I2C_FREQ_STD} }

type I2C struct {
	n   int
	clk Clocks

	cr, sr, dbr, lcr mmio.Reg

	wait mmio.WaitPolicy
}

// New returns the handle for I2C n (0..2).
func New(space mmio.Space, n int, clk Clocks, opts ...mmio.Option) (*I2C, error) {
	if n < 0 || n >= len(bases) {
		return nil, &errcode.E{C: errcode.UnknownPort, Op: "i2c.new", Msg: strconv.Itoa(n)}
	}
	c := mmio.Apply(opts...)
	b := mmio.NewBlock(space, bases[n], c.Guard)
	return &I2C{
		n:    n,
		clk:  clk,
		cr:   b.Reg(regmap.I2C_CR),
		sr:   b.Reg(regmap.I2C_SR),
		dbr:  b.Reg(regmap.I2C_DBR),
		lcr:  b.Reg(regmap.I2C_LCR),
		wait: c.Wait,
	}, nil
}

// Peripheral is the clock-gate id of this bus.
func (i *I2C) Peripheral() rcc.Peripheral { return peripherals[i.n] }

// Configure resets the unit, programs the SCL counts from PCLK0 and enables
// the master.
func (i *I2C) Configure(cfg Config) error {
	if cfg.Frequency == 0 || cfg.Frequency > regmap.I2C_FREQ_FAST {
		return &errcode.E{C: errcode.InvalidParams, Op: "i2c.configure", Msg: "frequency"}
	}
	if i.clk == nil {
		return &errcode.E{C: errcode.InvalidParams, Op: "i2c.configure", Msg: "no clock controller"}
	}
	pclk := i.clk.ClkFreq(rcc.PCLK0)
	count := pclk / (2 * cfg.Frequency)
	if count == 0 {
		return &errcode.E{C: errcode.InvalidParams, Op: "i2c.configure", Msg: "bus clock too slow"}
	}

	i.cr.Write(regmap.I2C_CR_UNIT_RESET)
	i.cr.Write(0)
	i.sr.Write(regmap.I2C_SR_W1C_Msk)

	if cfg.Frequency > regmap.I2C_FREQ_STD {
		mmio.SetField(i.lcr, regmap.I2C_LCR_FLV_Msk, count)
		i.cr.Set(regmap.I2C_CR_BUS_MODE_Msk, regmap.I2C_CR_BUS_MODE_FAST)
	} else {
		mmio.SetField(i.lcr, regmap.I2C_LCR_SLV_Msk, count)
		i.cr.Set(regmap.I2C_CR_BUS_MODE_Msk, regmap.I2C_CR_BUS_MODE_STD)
	}
	i.cr.Enable(regmap.I2C_CR_TWSI_UNIT_EN|regmap.I2C_CR_SCL_EN, true)
	return nil
}

// Tx writes w then reads len(r) bytes from the 7-bit address addr, with a
// repeated start between the phases. An empty transfer probes the address.
func (i *I2C) Tx(addr uint16, w, r []byte) error {
	if addr > 0x7F {
		return &errcode.E{C: errcode.InvalidParams, Op: "i2c.tx", Msg: "address"}
	}
	if len(w) > 0 || len(r) == 0 {
		if err := i.start(addr, false, len(w) == 0 && len(r) == 0); err != nil {
			return err
		}
		for k, b := range w {
			last := k == len(w)-1 && len(r) == 0
			if err := i.put(b, last); err != nil {
				return err
			}
		}
	}
	if len(r) == 0 {
		return nil
	}
	if err := i.start(addr, true, false); err != nil {
		return err
	}
	for k := range r {
		last := k == len(r)-1
		ctl := uint32(regmap.I2C_CR_TRANS_BEGIN)
		if last {
			ctl |= regmap.I2C_CR_ACKNAK | regmap.I2C_CR_STOP
		}
		i.cr.Set(regmap.I2C_CR_XFER_Msk, ctl)
		if err := i.done("i2c.read", false); err != nil {
			return err
		}
		r[k] = byte(i.dbr.Read())
	}
	return nil
}

func (i *I2C) start(addr uint16, read, stop bool) error {
	v := uint32(addr) << 1
	if read {
		v |= 1
	}
	i.dbr.Write(v)
	ctl := uint32(regmap.I2C_CR_START | regmap.I2C_CR_TRANS_BEGIN)
	if stop {
		ctl |= regmap.I2C_CR_STOP
	}
	i.cr.Set(regmap.I2C_CR_XFER_Msk, ctl)
	return i.done("i2c.start", true)
}

func (i *I2C) put(b byte, stop bool) error {
	i.dbr.Write(uint32(b))
	ctl := uint32(regmap.I2C_CR_TRANS_BEGIN)
	if stop {
		ctl |= regmap.I2C_CR_STOP
	}
	i.cr.Set(regmap.I2C_CR_XFER_Msk, ctl)
	return i.done("i2c.write", true)
}

// done waits for the byte transfer, acknowledges the status and maps bus
// faults to error codes. A NAK while writing aborts the transfer.
func (i *I2C) done(op string, wantAck bool) error {
	if err := mmio.Until(i.wait, op, i.sr, regmap.I2C_SR_TRANS_DONE, true); err != nil {
		i.abort()
		return err
	}
	sr := i.sr.Read()
	i.sr.Write(sr & regmap.I2C_SR_W1C_Msk)
	var code errcode.Code
	switch {
	case sr&regmap.I2C_SR_BUS_ERROR != 0:
		code = errcode.BusError
	case sr&regmap.I2C_SR_ARB_LOSS != 0:
		code = errcode.ArbitrationLost
	case wantAck && sr&regmap.I2C_SR_ACK_STATUS != 0:
		code = errcode.Nack
	default:
		return nil
	}
	i.abort()
	return &errcode.E{C: code, Op: op}
}

func (i *I2C) abort() {
	i.cr.Set(regmap.I2C_CR_XFER_Msk|regmap.I2C_CR_MASTER_ABORT, regmap.I2C_CR_MASTER_ABORT)
}

// Deinit gates the bus clock off and pulses its reset.
func (i *I2C) Deinit() error {
	if i.clk == nil {
		return &errcode.E{C: errcode.InvalidParams, Op: "i2c.deinit", Msg: "no clock controller"}
	}
	p := i.Peripheral()
	if err := i.clk.EnablePeripheralClk(p, false); err != nil {
		return err
	}
	i.clk.ResetPeripheral(p, true)
	i.clk.ResetPeripheral(p, false)
	return nil
}
