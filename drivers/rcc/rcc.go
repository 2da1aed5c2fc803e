// Package rcc drives the reset and clock controller: frequency queries,
// oscillator control, kernel clock selection, peripheral gating and resets.
//
// Every handshake with the hardware goes through the handle's WaitPolicy.
// With the default mmio.Forever the returned errors are always nil and a
// handshake that never completes hangs the caller.
package rcc

import (
	"tremo-go/mmio"
	"tremo-go/regmap"
)

// RCC is the single clock controller handle.
type RCC struct {
	cr0, cr1, cr2, cr3 mmio.Reg
	cgr0, cgr1, cgr2   mmio.Reg
	rst0, rst1         mmio.Reg
	rstSR, rstCR       mmio.Reg
	sr, sr1            mmio.Reg

	ana02, ana06 mmio.Reg
	afecRaw      mmio.Reg
	loraCR1      mmio.Reg
	loraSR       mmio.Reg

	wait   mmio.WaitPolicy
	warned bool
}

func New(space mmio.Space, opts ...mmio.Option) *RCC {
	c := mmio.Apply(opts...)
	b := mmio.NewBlock(space, regmap.RCC_BASE, c.Guard)
	afec := mmio.NewBlock(space, regmap.AFEC_REG_BASE, c.Guard)
	lorac := mmio.NewBlock(space, regmap.LORAC_BASE, c.Guard)
	return &RCC{
		cr0:   b.Reg(regmap.RCC_CR0),
		cr1:   b.Reg(regmap.RCC_CR1),
		cr2:   b.Reg(regmap.RCC_CR2),
		cr3:   b.Reg(regmap.RCC_CR3),
		cgr0:  b.Reg(regmap.RCC_CGR0),
		cgr1:  b.Reg(regmap.RCC_CGR1),
		cgr2:  b.Reg(regmap.RCC_CGR2),
		rst0:  b.Reg(regmap.RCC_RST0),
		rst1:  b.Reg(regmap.RCC_RST1),
		rstSR: b.Reg(regmap.RCC_RST_SR),
		rstCR: b.Reg(regmap.RCC_RST_CR),
		sr:    b.Reg(regmap.RCC_SR),
		sr1:   b.Reg(regmap.RCC_SR1),

		ana02:   mmio.Analog(space, regmap.ANA_REG_02, c.Guard),
		ana06:   mmio.Analog(space, regmap.ANA_REG_06, c.Guard),
		afecRaw: afec.Reg(regmap.AFEC_RAW_SR),
		loraCR1: lorac.Reg(regmap.LORAC_CR1),
		loraSR:  lorac.Reg(regmap.LORAC_SR),

		wait: c.Wait,
	}
}

func (r *RCC) sysFreq(cr0 uint32) uint32 {
	switch cr0 & regmap.RCC_CR0_SYSCLK_SEL_Msk {
	case regmap.RCC_CR0_SYSCLK_SEL_RCO48M:
		return regmap.FREQ_48M
	case regmap.RCC_CR0_SYSCLK_SEL_RCO32K:
		return regmap.FREQ_32000
	case regmap.RCC_CR0_SYSCLK_SEL_XO32K:
		return regmap.FREQ_32768
	case regmap.RCC_CR0_SYSCLK_SEL_XO24M:
		return regmap.FREQ_24M
	case regmap.RCC_CR0_SYSCLK_SEL_XO32M:
		return regmap.FREQ_32M
	case regmap.RCC_CR0_SYSCLK_SEL_RCO4M:
		return regmap.FREQ_4M
	}
	// RCO48M/2, PLL and anything unexpected read as 24 MHz.
	if !r.warned {
		r.warned = true
		println("[rcc] sysclk source", (cr0&regmap.RCC_CR0_SYSCLK_SEL_Msk)>>12, "not modelled, assuming 24MHz")
	}
	return regmap.FREQ_24M
}

// ClkFreq derives a clock frequency in Hz from the current CR0 contents.
// Unknown ids report SYSCLK.
func (r *RCC) ClkFreq(clk Clock) uint32 {
	cr0 := r.cr0.Read()
	sys := r.sysFreq(cr0)
	hclk := sys >> mmio.Field(cr0, regmap.RCC_CR0_HCLK_DIV_Msk)
	switch clk {
	case HCLK:
		return hclk
	case PCLK0:
		return hclk >> mmio.Field(cr0, regmap.RCC_CR0_PCLK0_DIV_Msk)
	case PCLK1:
		return hclk >> mmio.Field(cr0, regmap.RCC_CR0_PCLK1_DIV_Msk)
	}
	return sys
}

func (r *RCC) SetSysClkSrc(src SysClkSource) {
	mmio.SetField(r.cr0, regmap.RCC_CR0_SYSCLK_SEL_Msk, uint32(src))
}

func (r *RCC) SysClkSrc() SysClkSource {
	return SysClkSource(mmio.GetField(r.cr0, regmap.RCC_CR0_SYSCLK_SEL_Msk))
}

// SetSysTickSrc selects the SysTick reference. The core-clock path lives in
// the Cortex-M SysTick block, which this driver does not own.
func (r *RCC) SetSysTickSrc(src SysTickSource) {
	if src == SysTickHCLK {
		panic("rcc: SysTick HCLK source unimplemented")
	}
	mmio.SetField(r.cr0, regmap.RCC_CR0_STCLKEN_SEL_Msk, uint32(src))
}

// SysTickSrc cannot be answered without the SysTick block.
func (r *RCC) SysTickSrc() SysTickSource {
	panic("rcc: SysTick source query unimplemented")
}

func (r *RCC) SetHCLKDiv(d Div) {
	mmio.SetField(r.cr0, regmap.RCC_CR0_HCLK_DIV_Msk, uint32(d))
}

// SetPCLKDiv programs both APB dividers in one write.
func (r *RCC) SetPCLKDiv(pclk0, pclk1 Div) {
	v := mmio.Place(uint32(regmap.RCC_CR0_PCLK0_DIV_Msk), uint32(pclk0)) |
		mmio.Place(uint32(regmap.RCC_CR0_PCLK1_DIV_Msk), uint32(pclk1))
	r.cr0.Set(regmap.RCC_CR0_PCLK0_DIV_Msk|regmap.RCC_CR0_PCLK1_DIV_Msk, v)
}

func (r *RCC) EnableMCOOutput(on bool) {
	r.cr0.Enable(regmap.RCC_CR0_MCO_CLK_OUT_EN_Msk, on)
}

func (r *RCC) SetI2SMclkDiv(div uint8) {
	mmio.SetField(r.cr3, regmap.RCC_CR3_I2S_MCLK_DIV_Msk, uint32(div))
}

func (r *RCC) SetI2SSclkDiv(div uint8) {
	mmio.SetField(r.cr3, regmap.RCC_CR3_I2S_SCLK_DIV_Msk, uint32(div))
}

// SetResetMask selects which reset requests (RST_CR bits) are honoured.
func (r *RCC) SetResetMask(mask uint32) {
	r.rstCR.Set(regmap.RCC_RST_CR_RESET_REQ_EN_Msk, mask)
}

func (r *RCC) ResetMask() uint32 {
	return r.rstCR.Read() & regmap.RCC_RST_CR_RESET_REQ_EN_Msk
}

func (r *RCC) ResetCause() ResetCause {
	return ResetCause(r.rstSR.Read() & regmap.RCC_RST_SR_Msk)
}

// ClearResetCause acknowledges the latched reset flags.
func (r *RCC) ClearResetCause() {
	r.rstSR.Write(regmap.RCC_RST_SR_Msk)
}
