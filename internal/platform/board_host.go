//go:build !tremo

package platform

import (
	"io"
	"os"

	"tremo-go/internal/platform/setups"
	"tremo-go/mmio"
	"tremo-go/regmap"
)

// simPolls bounds every hardware wait on the simulated bank, so an
// unmodelled handshake fails with errcode.Timeout instead of hanging.
const simPolls = 1000

// Simulate turns a bank into a board that boots: the clock controller
// reports done, oscillator ready flags follow their power-down bits, UARTs
// never fill, and bytes written to UART data registers go to out.
func Simulate(b *mmio.Bank, out io.Writer) {
	b.OnLoad(regmap.RCC_BASE+regmap.RCC_SR, func(cur uint32) uint32 {
		return cur | regmap.RCC_SR_ALL_DONE
	})
	ana06 := regmap.AnalogAddr(regmap.ANA_REG_06)
	b.OnLoad(regmap.AFEC_REG_BASE+regmap.AFEC_RAW_SR, func(cur uint32) uint32 {
		v := b.Peek(ana06)
		cur &^= regmap.AFEC_RAW_SR_RCO24M_READY_Msk | regmap.AFEC_RAW_SR_RCO4M_READY_Msk
		if v&regmap.ANA_06_RCO48M_PD_Msk == 0 {
			cur |= regmap.AFEC_RAW_SR_RCO24M_READY_Msk
		}
		if v&regmap.ANA_06_RCO4M_PD_Msk == 0 {
			cur |= regmap.AFEC_RAW_SR_RCO4M_READY_Msk
		}
		return cur
	})
	cr1 := regmap.LORAC_BASE + regmap.LORAC_CR1
	b.OnLoad(regmap.LORAC_BASE+regmap.LORAC_SR, func(cur uint32) uint32 {
		if b.Peek(cr1)&regmap.LORAC_CR1_XO32M_EN_Msk != 0 {
			return cur | regmap.LORAC_SR_XO32M_READY
		}
		return cur &^ regmap.LORAC_SR_XO32M_READY
	})
	for _, base := range []uintptr{regmap.UART0_BASE, regmap.UART1_BASE, regmap.UART2_BASE, regmap.UART3_BASE} {
		b.OnLoad(base+regmap.UART_FR, func(uint32) uint32 {
			return regmap.UART_FR_TXFE | regmap.UART_FR_RXFE
		})
		b.OnStore(base+regmap.UART_DR, func(_, v uint32) uint32 {
			if out != nil {
				out.Write([]byte{byte(v)})
			}
			return v
		})
	}
}

// Open builds and boots the selected board on a simulated bank whose UART
// output goes to stdout.
func Open() (*Board, error) {
	b, _, err := OpenSim(os.Stdout)
	return b, err
}

// OpenSim is Open with the bank exposed and UART output sent to out.
func OpenSim(out io.Writer) (*Board, *mmio.Bank, error) {
	bank := mmio.NewBank()
	Simulate(bank, out)
	plan := setups.Selected
	// Nothing answers on a simulated I2C bus.
	plan.I2C, plan.Sensor = nil, ""
	b, err := New(bank, plan, mmio.WithWait(mmio.Bounded(simPolls)))
	if err != nil {
		return nil, nil, err
	}
	b.Delay = nil
	if err := b.Init(); err != nil {
		return nil, nil, err
	}
	return b, bank, nil
}
