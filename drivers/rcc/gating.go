package rcc

import (
	"tremo-go/mmio"
	"tremo-go/regmap"
)

type gate struct {
	reg  uint8 // 0: CGR0, 1: CGR1
	mask uint32
}

// Peripherals with a single gate bit.
var gates = map[Peripheral]gate{
	UART0:    {0, regmap.RCC_CGR0_UART0_CLK_EN_Msk},
	UART1:    {0, regmap.RCC_CGR0_UART1_CLK_EN_Msk},
	UART2:    {0, regmap.RCC_CGR0_UART2_CLK_EN_Msk},
	UART3:    {0, regmap.RCC_CGR0_UART3_CLK_EN_Msk},
	SSP0:     {0, regmap.RCC_CGR0_SSP0_CLK_EN_Msk},
	SSP1:     {0, regmap.RCC_CGR0_SSP1_CLK_EN_Msk},
	SSP2:     {0, regmap.RCC_CGR0_SSP2_CLK_EN_Msk},
	I2C0:     {0, regmap.RCC_CGR0_I2C0_CLK_EN_Msk},
	I2C1:     {0, regmap.RCC_CGR0_I2C1_CLK_EN_Msk},
	I2C2:     {0, regmap.RCC_CGR0_I2C2_CLK_EN_Msk},
	ADC:      {0, regmap.RCC_CGR0_ADC_CLK_EN_Msk},
	DAC:      {0, regmap.RCC_CGR0_DAC_CLK_EN_Msk},
	AFEC:     {0, regmap.RCC_CGR0_AFEC_CLK_EN_Msk},
	LORA:     {0, regmap.RCC_CGR0_LORA_CLK_EN_Msk},
	GPIOA:    {0, regmap.RCC_CGR0_IOM0_CLK_EN_Msk},
	GPIOB:    {0, regmap.RCC_CGR0_IOM1_CLK_EN_Msk},
	GPIOC:    {0, regmap.RCC_CGR0_IOM2_CLK_EN_Msk},
	GPIOD:    {0, regmap.RCC_CGR0_IOM3_CLK_EN_Msk},
	TIMER0:   {0, regmap.RCC_CGR0_TIMER0_CLK_EN_Msk},
	TIMER1:   {0, regmap.RCC_CGR0_TIMER1_CLK_EN_Msk},
	TIMER2:   {0, regmap.RCC_CGR0_TIMER2_CLK_EN_Msk},
	TIMER3:   {0, regmap.RCC_CGR0_TIMER3_CLK_EN_Msk},
	BSTIMER0: {0, regmap.RCC_CGR0_BSTIMER0_CLK_EN_Msk},
	BSTIMER1: {0, regmap.RCC_CGR0_BSTIMER1_CLK_EN_Msk},
	CRC:      {0, regmap.RCC_CGR0_CRC_CLK_EN_Msk},
	DMA0:     {0, regmap.RCC_CGR0_DMAC0_CLK_EN_Msk},
	DMA1:     {0, regmap.RCC_CGR0_DMAC1_CLK_EN_Msk},
	SYSCFG:   {0, regmap.RCC_CGR0_SYSCFG_CLK_EN_Msk},
	PWR:      {0, regmap.RCC_CGR0_PWR_CLK_EN_Msk},
	QSPI:     {1, regmap.RCC_CGR1_QSPI_CLK_EN_Msk},
	SEC:      {1, regmap.RCC_CGR1_SEC_CLK_EN_Msk},
	SAC:      {1, regmap.RCC_CGR1_SAC_CLK_EN_Msk},
	I2S:      {1, regmap.RCC_CGR1_I2S_CLK_EN_Msk},
	RNGC:     {1, regmap.RCC_CGR1_RNGC_CLK_EN_Msk},
}

// Peripherals whose gate has an always-on mirror in CGR2.
var aonGates = map[Peripheral]struct {
	main gate
	aon  uint32
}{
	LPUART: {gate{0, regmap.RCC_CGR0_LPUART_CLK_EN_Msk}, regmap.RCC_CGR2_LPUART_AON_CLK_EN_Msk},
	LCD:    {gate{0, regmap.RCC_CGR0_LCD_CLK_EN_Msk}, regmap.RCC_CGR2_LCD_AON_CLK_EN_Msk},
	IWDG:   {gate{1, regmap.RCC_CGR1_IWDG_CLK_EN_Msk}, regmap.RCC_CGR2_IWDG_CLK_EN_Msk},
	RTC:    {gate{1, regmap.RCC_CGR1_RTC_CLK_EN_Msk}, regmap.RCC_CGR2_RTC_AON_CLK_EN_Msk},
}

func (r *RCC) gateReg(g gate) mmio.Reg {
	if g.reg == 1 {
		return r.cgr1
	}
	return r.cgr0
}

func (r *RCC) allDone() error {
	return mmio.UntilAll(r.wait, "rcc.aon_sync", r.sr, regmap.RCC_SR_ALL_DONE)
}

// EnablePeripheralClk gates or ungates a peripheral clock. For blocks with an
// always-on mirror, enabling sets the main gate, waits for the controller to
// settle, then sets the mirror; disabling walks the same steps backwards.
// Unknown ids are ignored.
func (r *RCC) EnablePeripheralClk(p Peripheral, on bool) error {
	if g, ok := gates[p]; ok {
		r.gateReg(g).Enable(g.mask, on)
		return nil
	}
	if a, ok := aonGates[p]; ok {
		if !on {
			r.cgr2.Enable(a.aon, false)
		} else {
			r.gateReg(a.main).Enable(a.main.mask, true)
		}
		if err := r.allDone(); err != nil {
			return err
		}
		if !on {
			r.gateReg(a.main).Enable(a.main.mask, false)
		} else {
			r.cgr2.Enable(a.aon, true)
		}
		return nil
	}
	switch p {
	case LPTIMER0:
		return r.lptimerGate(on, regmap.RCC_CGR1_LPTIMER0_PCLK_EN_Msk,
			regmap.RCC_CGR1_LPTIMER0_CLK_EN_Msk, regmap.RCC_CGR2_LPTIMER0_AON_CLK_EN_Msk)
	case LPTIMER1:
		return r.lptimerGate(on, regmap.RCC_CGR1_LPTIMER1_PCLK_EN_Msk,
			regmap.RCC_CGR1_LPTIMER1_CLK_EN_Msk, regmap.RCC_CGR2_LPTIMER1_AON_CLK_EN_Msk)
	case WDG:
		r.cgr1.Enable(regmap.RCC_CGR1_WDG_CLK_EN_Msk, on)
		r.cgr1.Enable(regmap.RCC_CGR1_WDG_CNT_CLK_EN_Msk, on)
	}
	return nil
}

// Enabling runs bus clock, settle, AON, kernel clock; disabling reverses it.
func (r *RCC) lptimerGate(on bool, pclk, clk, aon uint32) error {
	first, last := pclk, clk
	if !on {
		first, last = clk, pclk
	}
	r.cgr1.Enable(first, on)
	if err := r.allDone(); err != nil {
		return err
	}
	r.cgr2.Enable(aon, on)
	r.cgr1.Enable(last, on)
	return nil
}

// PeripheralClkEnabled reports the main gate bit.
func (r *RCC) PeripheralClkEnabled(p Peripheral) bool {
	if g, ok := gates[p]; ok {
		return r.gateReg(g).Has(g.mask)
	}
	if a, ok := aonGates[p]; ok {
		return r.gateReg(a.main).Has(a.main.mask)
	}
	switch p {
	case LPTIMER0:
		return r.cgr1.Has(regmap.RCC_CGR1_LPTIMER0_CLK_EN_Msk)
	case LPTIMER1:
		return r.cgr1.Has(regmap.RCC_CGR1_LPTIMER1_CLK_EN_Msk)
	case WDG:
		return r.cgr1.Has(regmap.RCC_CGR1_WDG_CLK_EN_Msk)
	}
	return false
}

// ResetPeripheral drives a peripheral's active-low reset line: assert holds
// the block in reset, release lets it run. GPIO ports share one line, so
// any port id resets all four. Ids without a line are ignored.
func (r *RCC) ResetPeripheral(p Peripheral, assert bool) {
	switch p {
	case GPIOB, GPIOC, GPIOD:
		p = GPIOA
	}
	switch {
	case p >= SYSCFG:
		return
	case p >= DMA1:
		r.rst1.Enable(1<<(p-DMA1), !assert)
	default:
		r.rst0.Enable(1<<p, !assert)
	}
}
