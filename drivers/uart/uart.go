// Package uart drives the four PL011-style UARTs.
//
// Init checks the kernel clock against the 16x oversampling floor before it
// touches any register, so a rejected configuration leaves the block as it
// was. Data transfer is polled; the wait policy decides whether a stuck
// FIFO hangs the caller or surfaces errcode.Timeout.
package uart

import (
	"strconv"

	"tremo-go/drivers/rcc"
	"tremo-go/errcode"
	"tremo-go/mmio"
	"tremo-go/regmap"
)

var bases = [...]uintptr{regmap.UART0_BASE, regmap.UART1_BASE, regmap.UART2_BASE, regmap.UART3_BASE}

// Clocks is the part of the clock controller a UART needs.
type Clocks interface {
	UARTClkFreq(n int) uint32
	EnablePeripheralClk(p rcc.Peripheral, on bool) error
	ResetPeripheral(p rcc.Peripheral, assert bool)
}

// UART is one instance.
type UART struct {
	n   int
	clk Clocks

	dr, fr, ibrd, fbrd, lcrh, cr mmio.Reg
	ifls, imsc, ris, mis, icr    mmio.Reg
	dmacr                        mmio.Reg

	wait mmio.WaitPolicy
}

// New returns the handle for UART n (0..3).
func New(space mmio.Space, n int, clk Clocks, opts ...mmio.Option) (*UART, error) {
	if n < 0 || n >= len(bases) {
		return nil, &errcode.E{C: errcode.UnknownPort, Op: "uart.new", Msg: strconv.Itoa(n)}
	}
	if clk == nil {
		return nil, &errcode.E{C: errcode.InvalidParams, Op: "uart.new", Msg: "no clock controller"}
	}
	c := mmio.Apply(opts...)
	b := mmio.NewBlock(space, bases[n], c.Guard)
	return &UART{
		n:     n,
		clk:   clk,
		dr:    b.Reg(regmap.UART_DR),
		fr:    b.Reg(regmap.UART_FR),
		ibrd:  b.Reg(regmap.UART_IBRD),
		fbrd:  b.Reg(regmap.UART_FBRD),
		lcrh:  b.Reg(regmap.UART_LCR_H),
		cr:    b.Reg(regmap.UART_CR),
		ifls:  b.Reg(regmap.UART_IFLS),
		imsc:  b.Reg(regmap.UART_IMSC),
		ris:   b.Reg(regmap.UART_RIS),
		mis:   b.Reg(regmap.UART_MIS),
		icr:   b.Reg(regmap.UART_ICR),
		dmacr: b.Reg(regmap.UART_DMACR),
		wait:  c.Wait,
	}, nil
}

// Index is the instance number.
func (u *UART) Index() int { return u.n }

// InitError reports a baud rate the kernel clock cannot oversample 16x.
type InitError struct {
	UART  int
	Clock uint32
	Baud  uint32
}

func (e *InitError) Error() string {
	return "uart" + strconv.Itoa(e.UART) + ": baud " + strconv.FormatUint(uint64(e.Baud), 10) +
		" too high for " + strconv.FormatUint(uint64(e.Clock), 10) + " Hz clock"
}

func (e *InitError) Code() errcode.Code { return errcode.BaudTooHigh }

func (e *InitError) Is(target error) bool { return target == errcode.BaudTooHigh }

// Divisor computes the combined baud divisor: integer part in the upper
// 16 bits, 6-bit fraction below. The fraction keeps the low bit of the
// 1/128 estimate as a sticky bit rather than rounding. Returns 0 when the
// clock cannot reach 16x baud.
func Divisor(clockHz, baud uint32) uint32 {
	scaled := uint64(baud) * 16
	if baud == 0 || uint64(clockHz) < scaled {
		return 0
	}
	ip := uint64(clockHz) / scaled
	rem := uint64(clockHz) % scaled
	raw := 8 * rem / uint64(baud)
	frac := raw>>1 | raw&1
	return uint32(ip<<16) | uint32(frac&regmap.UART_FBRD_Msk)
}

// Init programs the line. The UART is left disabled; call Cmd(true).
func (u *UART) Init(cfg Config) error {
	enc, err := cfg.encode()
	if err != nil {
		return err
	}
	clk := u.clk.UARTClkFreq(u.n)
	if uint64(clk) < 16*uint64(cfg.BaudRate) {
		return &InitError{UART: u.n, Clock: clk, Baud: cfg.BaudRate}
	}

	u.cr.Enable(regmap.UART_CR_UART_EN_Msk, false)
	u.lcrh.Enable(regmap.UART_LCR_H_FEN_Msk, false) // flush
	u.imsc.Write(0)

	div := Divisor(clk, cfg.BaudRate)
	u.ibrd.Write(div >> 16)
	u.fbrd.Write(div & regmap.UART_FBRD_Msk)

	u.lcrh.Set(regmap.UART_LCR_H_WLEN_Msk, enc.wlen)
	u.lcrh.Set(regmap.UART_LCR_H_STOP_Msk, enc.stop)
	u.lcrh.Enable(regmap.UART_LCR_H_FEN_Msk, cfg.FIFO)
	switch cfg.Parity {
	case ParityOdd:
		u.lcrh.Set(regmap.UART_LCR_H_PEN_Msk|regmap.UART_LCR_H_EPS_Msk, regmap.UART_LCR_H_PEN_Msk)
	case ParityEven:
		u.lcrh.Enable(regmap.UART_LCR_H_PEN_Msk|regmap.UART_LCR_H_EPS_Msk, true)
	default:
		u.lcrh.Enable(regmap.UART_LCR_H_PEN_Msk, false)
	}
	u.cr.Set(regmap.UART_CR_UART_MODE_Msk, enc.mode)
	u.cr.Set(regmap.UART_CR_FLOW_CTRL_Msk, enc.flow)
	return nil
}

// Cmd enables or disables the UART.
func (u *UART) Cmd(on bool) { u.cr.Enable(regmap.UART_CR_UART_EN_Msk, on) }

func (u *UART) Enabled() bool { return u.cr.Has(regmap.UART_CR_UART_EN_Msk) }

// BaudRate reports the rate the current divisor produces from the kernel
// clock, or 0 before Init.
func (u *UART) BaudRate() uint32 {
	div := uint64(u.ibrd.Read()&regmap.UART_IBRD_Msk)<<6 | uint64(u.fbrd.Read()&regmap.UART_FBRD_Msk)
	if div == 0 {
		return 0
	}
	return uint32(uint64(u.clk.UARTClkFreq(u.n)) * 4 / div)
}

// Deinit gates the clock off and pulses the reset line.
func (u *UART) Deinit() error {
	p, _ := rcc.UARTPeripheral(u.n)
	if err := u.clk.EnablePeripheralClk(p, false); err != nil {
		return err
	}
	u.clk.ResetPeripheral(p, true)
	u.clk.ResetPeripheral(p, false)
	return nil
}

// Flag is an FR status bit.
type Flag uint32

const (
	FlagTxEmpty Flag = regmap.UART_FR_TXFE
	FlagRxFull  Flag = regmap.UART_FR_RXFF
	FlagTxFull  Flag = regmap.UART_FR_TXFF
	FlagRxEmpty Flag = regmap.UART_FR_RXFE
	FlagBusy    Flag = regmap.UART_FR_BUSY
)

func (u *UART) FlagStatus(f Flag) bool { return u.fr.Has(uint32(f)) }

// Interrupt is a set of IMSC/RIS/MIS/ICR bits.
type Interrupt uint32

const (
	IntRx        Interrupt = regmap.UART_INT_RX
	IntTx        Interrupt = regmap.UART_INT_TX
	IntRxTimeout Interrupt = regmap.UART_INT_RX_TIMO
	IntFrame     Interrupt = regmap.UART_INT_FE
	IntParity    Interrupt = regmap.UART_INT_PE
	IntBreak     Interrupt = regmap.UART_INT_BE
	IntOverrun   Interrupt = regmap.UART_INT_OE
	IntAll       Interrupt = regmap.UART_INT_Msk
)

func (u *UART) ConfigInterrupt(i Interrupt, on bool) {
	u.imsc.Enable(uint32(i)&regmap.UART_INT_Msk, on)
}

// InterruptStatus reports whether any of i is pending and unmasked.
func (u *UART) InterruptStatus(i Interrupt) bool { return u.mis.Has(uint32(i)) }

// RawInterrupts returns RIS regardless of the mask.
func (u *UART) RawInterrupts() Interrupt { return Interrupt(u.ris.Read() & regmap.UART_INT_Msk) }

// ClearInterrupt acknowledges i; ICR is write-one-to-clear.
func (u *UART) ClearInterrupt(i Interrupt) { u.icr.Write(uint32(i) & regmap.UART_INT_Msk) }

// Level is a FIFO fill threshold in eighths.
type Level uint8

const (
	Level1_8 Level = iota
	Level1_4
	Level1_2
	Level3_4
	Level7_8
)

func (u *UART) SetRxFIFOThreshold(l Level) {
	mmio.SetField(u.ifls, regmap.UART_IFLS_RX_Msk, uint32(l))
}

func (u *UART) SetTxFIFOThreshold(l Level) {
	mmio.SetField(u.ifls, regmap.UART_IFLS_TX_Msk, uint32(l))
}

// DMA selects DMACR request lines.
type DMA uint32

const (
	DMARx      DMA = regmap.UART_DMACR_RX_EN_Msk
	DMATx      DMA = regmap.UART_DMACR_TX_EN_Msk
	DMAOnError DMA = regmap.UART_DMACR_ONERR_EN_Msk
)

func (u *UART) ConfigDMA(d DMA, on bool) { u.dmacr.Enable(uint32(d), on) }
