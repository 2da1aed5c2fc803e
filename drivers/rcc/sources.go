package rcc

import (
	"tremo-go/mmio"
	"tremo-go/regmap"
)

// switchSource is the shared source-change protocol: while the kernel clock
// is still synchronising, drop its gate and wait for the sync flag to clear,
// then write the selector.
func (r *RCC) switchSource(op string, sync uint32, gate mmio.Reg, gateMask uint32, sel mmio.Reg, selMask, code uint32) error {
	if r.sr1.Has(sync) {
		gate.Enable(gateMask, false)
		if err := mmio.Until(r.wait, op, r.sr1, sync, false); err != nil {
			return err
		}
	}
	mmio.SetField(sel, selMask, code)
	return nil
}

type uartClk struct {
	sync, gate, sel uint32
}

var uartClks = [4]uartClk{
	{regmap.RCC_SR1_UART0_CLK_EN_SYNC, regmap.RCC_CGR0_UART0_CLK_EN_Msk, regmap.RCC_CR2_UART0_CLK_SEL_Msk},
	{regmap.RCC_SR1_UART1_CLK_EN_SYNC, regmap.RCC_CGR0_UART1_CLK_EN_Msk, regmap.RCC_CR2_UART1_CLK_SEL_Msk},
	{regmap.RCC_SR1_UART2_CLK_EN_SYNC, regmap.RCC_CGR0_UART2_CLK_EN_Msk, regmap.RCC_CR2_UART2_CLK_SEL_Msk},
	{regmap.RCC_SR1_UART3_CLK_EN_SYNC, regmap.RCC_CGR0_UART3_CLK_EN_Msk, regmap.RCC_CR2_UART3_CLK_SEL_Msk},
}

// SetUARTClkSrc selects the kernel clock of UART n (0..3).
func (r *RCC) SetUARTClkSrc(n int, src UARTSource) error {
	if n < 0 || n >= len(uartClks) {
		return nil
	}
	u := uartClks[n]
	return r.switchSource("rcc.uart_src", u.sync, r.cgr0, u.gate, r.cr2, u.sel, uint32(src))
}

// UARTClkSrc reads UART n's selector from its own CR2 field.
func (r *RCC) UARTClkSrc(n int) UARTSource {
	if n < 0 || n >= len(uartClks) {
		return UARTBus
	}
	return UARTSource(mmio.GetField(r.cr2, uartClks[n].sel))
}

// UARTClkFreq is the nominal kernel clock frequency of UART n.
func (r *RCC) UARTClkFreq(n int) uint32 {
	switch r.UARTClkSrc(n) {
	case UARTRCO4M:
		return regmap.FREQ_4M
	case UARTXO32K:
		return regmap.FREQ_32768
	case UARTXO24M:
		return regmap.FREQ_24M
	}
	if n >= 2 {
		return r.ClkFreq(PCLK1)
	}
	return r.ClkFreq(PCLK0)
}

type lptimerClk struct {
	sync, gate, sel, ext uint32
}

var lptimerClks = [2]lptimerClk{
	{regmap.RCC_SR1_LPTIMER0_CLK_EN_SYNC, regmap.RCC_CGR1_LPTIMER0_CLK_EN_Msk,
		regmap.RCC_CR1_LPTIMER0_CLK_SEL_Msk, regmap.RCC_CR1_LPTIMER0_EXTCLK_SEL_Msk},
	{regmap.RCC_SR1_LPTIMER1_CLK_EN_SYNC, regmap.RCC_CGR1_LPTIMER1_CLK_EN_Msk,
		regmap.RCC_CR1_LPTIMER1_CLK_SEL_Msk, regmap.RCC_CR1_LPTIMER1_EXTCLK_SEL_Msk},
}

// SetLPTimerClkSrc selects the clock of LPTIMER n (0..1). Selecting EXTCLK
// only raises the external-clock bit; the internal selector is left alone.
func (r *RCC) SetLPTimerClkSrc(n int, src LPTimerSource) error {
	if n < 0 || n >= len(lptimerClks) {
		return nil
	}
	l := lptimerClks[n]
	if r.sr1.Has(l.sync) {
		r.cgr1.Enable(l.gate, false)
		if err := mmio.Until(r.wait, "rcc.lptimer_src", r.sr1, l.sync, false); err != nil {
			return err
		}
	}
	if src == LPTimerEXTCLK {
		r.cr1.Enable(l.ext, true)
		return nil
	}
	mmio.SetField(r.cr1, l.sel, uint32(src))
	return nil
}

func (r *RCC) LPTimerClkSrc(n int) LPTimerSource {
	if n < 0 || n >= len(lptimerClks) {
		return LPTimerPCLK0
	}
	l := lptimerClks[n]
	cr1 := r.cr1.Read()
	if cr1&l.ext != 0 {
		return LPTimerEXTCLK
	}
	return LPTimerSource(mmio.Field(cr1, l.sel))
}

func (r *RCC) SetLCDClkSrc(src LowPowerSource) error {
	return r.switchSource("rcc.lcd_src", regmap.RCC_SR1_LCD_CLK_EN_SYNC,
		r.cgr0, regmap.RCC_CGR0_LCD_CLK_EN_Msk, r.cr1, regmap.RCC_CR1_LCD_CLK_SEL_Msk, uint32(src))
}

func (r *RCC) LCDClkSrc() LowPowerSource {
	return LowPowerSource(mmio.GetField(r.cr1, regmap.RCC_CR1_LCD_CLK_SEL_Msk))
}

func (r *RCC) SetLPUARTClkSrc(src LowPowerSource) error {
	return r.switchSource("rcc.lpuart_src", regmap.RCC_SR1_LPUART_CLK_EN_SYNC,
		r.cgr0, regmap.RCC_CGR0_LPUART_CLK_EN_Msk, r.cr1, regmap.RCC_CR1_LPUART_CLK_SEL_Msk, uint32(src))
}

func (r *RCC) LPUARTClkSrc() LowPowerSource {
	return LowPowerSource(mmio.GetField(r.cr1, regmap.RCC_CR1_LPUART_CLK_SEL_Msk))
}

func (r *RCC) SetRTCClkSrc(src LowPowerSource) error {
	return r.switchSource("rcc.rtc_src", regmap.RCC_SR1_RTC_CLK_EN_SYNC,
		r.cgr1, regmap.RCC_CGR1_RTC_CLK_EN_Msk, r.cr1, regmap.RCC_CR1_RTC_CLK_SEL_Msk, uint32(src))
}

func (r *RCC) RTCClkSrc() LowPowerSource {
	return LowPowerSource(mmio.GetField(r.cr1, regmap.RCC_CR1_RTC_CLK_SEL_Msk))
}

func (r *RCC) SetIWDGClkSrc(src LowPowerSource) error {
	return r.switchSource("rcc.iwdg_src", regmap.RCC_SR1_IWDG_CLK_EN_SYNC,
		r.cgr1, regmap.RCC_CGR1_IWDG_CLK_EN_Msk, r.cr1, regmap.RCC_CR1_IWDG_CLK_SEL_Msk, uint32(src))
}

func (r *RCC) IWDGClkSrc() LowPowerSource {
	return LowPowerSource(mmio.GetField(r.cr1, regmap.RCC_CR1_IWDG_CLK_SEL_Msk))
}

func (r *RCC) SetADCClkSrc(src ADCSource) error {
	return r.switchSource("rcc.adc_src", regmap.RCC_SR1_ADC_CLK_EN_SYNC,
		r.cgr0, regmap.RCC_CGR0_ADC_CLK_EN_Msk, r.cr2, regmap.RCC_CR2_ADC_CLK_SEL_Msk, uint32(src))
}

func (r *RCC) ADCClkSrc() ADCSource {
	return ADCSource(mmio.GetField(r.cr2, regmap.RCC_CR2_ADC_CLK_SEL_Msk))
}

func (r *RCC) SetQSPIClkSrc(src QSPISource) error {
	return r.switchSource("rcc.qspi_src", regmap.RCC_SR1_QSPI_CLK_EN_SYNC,
		r.cgr1, regmap.RCC_CGR1_QSPI_CLK_EN_Msk, r.cr2, regmap.RCC_CR2_QSPI_CLK_SEL_Msk, uint32(src))
}

func (r *RCC) QSPIClkSrc() QSPISource {
	return QSPISource(mmio.GetField(r.cr2, regmap.RCC_CR2_QSPI_CLK_SEL_Msk))
}

func (r *RCC) SetI2SClkSrc(src I2SSource) error {
	return r.switchSource("rcc.i2s_src", regmap.RCC_SR1_I2S_CLK_EN_SYNC,
		r.cgr1, regmap.RCC_CGR1_I2S_CLK_EN_Msk, r.cr2, regmap.RCC_CR2_I2S_CLK_SEL_Msk, uint32(src))
}

func (r *RCC) I2SClkSrc() I2SSource {
	return I2SSource(mmio.GetField(r.cr2, regmap.RCC_CR2_I2S_CLK_SEL_Msk))
}

// SetMCOClkSrc routes a clock to the MCO pin. The output gate is what the
// sync flag tracks, so that is the bit dropped during the switch.
func (r *RCC) SetMCOClkSrc(src MCOSource) error {
	return r.switchSource("rcc.mco_src", regmap.RCC_SR1_MCO_CLK_EN_SYNC,
		r.cr0, regmap.RCC_CR0_MCO_CLK_OUT_EN_Msk, r.cr0, regmap.RCC_CR0_MCO_CLK_SEL_Msk, uint32(src))
}

func (r *RCC) MCOClkSrc() MCOSource {
	return MCOSource(mmio.GetField(r.cr0, regmap.RCC_CR0_MCO_CLK_SEL_Msk))
}

func (r *RCC) SetMCOClkDiv(d MCODiv) error {
	return r.switchSource("rcc.mco_div", regmap.RCC_SR1_MCO_CLK_EN_SYNC,
		r.cr0, regmap.RCC_CR0_MCO_CLK_OUT_EN_Msk, r.cr0, regmap.RCC_CR0_MCO_CLK_DIV_Msk, uint32(d))
}
