package rcc

import (
	"errors"
	"testing"

	"tremo-go/errcode"
	"tremo-go/mmio"
	"tremo-go/regmap"
)

const (
	cr0  = regmap.RCC_BASE + regmap.RCC_CR0
	cr1  = regmap.RCC_BASE + regmap.RCC_CR1
	cr2  = regmap.RCC_BASE + regmap.RCC_CR2
	cr3  = regmap.RCC_BASE + regmap.RCC_CR3
	cgr0 = regmap.RCC_BASE + regmap.RCC_CGR0
	cgr1 = regmap.RCC_BASE + regmap.RCC_CGR1
	cgr2 = regmap.RCC_BASE + regmap.RCC_CGR2
	rst0 = regmap.RCC_BASE + regmap.RCC_RST0
	rst1 = regmap.RCC_BASE + regmap.RCC_RST1
	rsr  = regmap.RCC_BASE + regmap.RCC_RST_SR
	rcr  = regmap.RCC_BASE + regmap.RCC_RST_CR
	sr   = regmap.RCC_BASE + regmap.RCC_SR
	sr1  = regmap.RCC_BASE + regmap.RCC_SR1

	rawSR  = regmap.AFEC_REG_BASE + regmap.AFEC_RAW_SR
	loraC1 = regmap.LORAC_BASE + regmap.LORAC_CR1
	loraSR = regmap.LORAC_BASE + regmap.LORAC_SR
)

var (
	ana02 = regmap.AnalogAddr(regmap.ANA_REG_02)
	ana06 = regmap.AnalogAddr(regmap.ANA_REG_06)
)

func newRCC(t *testing.T, opts ...mmio.Option) (*RCC, *mmio.Bank) {
	t.Helper()
	b := mmio.NewBank()
	b.Poke(sr, regmap.RCC_SR_ALL_DONE)
	return New(b, opts...), b
}

func TestPCLK0FromRCO48MDividedByTwo(t *testing.T) {
	r, b := newRCC(t)
	b.Poke(cr0, regmap.RCC_CR0_SYSCLK_SEL_RCO48M|regmap.RCC_CR0_HCLK_DIV_1|regmap.RCC_CR0_PCLK0_DIV_2)
	if got := r.ClkFreq(PCLK0); got != 24_000_000 {
		t.Fatalf("PCLK0 = %d, want 24000000", got)
	}
}

func TestClkFreqTable(t *testing.T) {
	cases := []struct {
		name string
		cr0  uint32
		clk  Clock
		want uint32
	}{
		{"xo24m sys", regmap.RCC_CR0_SYSCLK_SEL_XO24M, SYSCLK, 24_000_000},
		{"xo32m hclk/4", regmap.RCC_CR0_SYSCLK_SEL_XO32M | regmap.RCC_CR0_HCLK_DIV_4, HCLK, 8_000_000},
		{"rco4m pclk1/2", regmap.RCC_CR0_SYSCLK_SEL_RCO4M | regmap.RCC_CR0_PCLK1_DIV_2, PCLK1, 2_000_000},
		{"rco48m hclk/2 pclk1/4", regmap.RCC_CR0_SYSCLK_SEL_RCO48M | regmap.RCC_CR0_HCLK_DIV_2 | regmap.RCC_CR0_PCLK1_DIV_4, PCLK1, 6_000_000},
		{"xo32k", regmap.RCC_CR0_SYSCLK_SEL_XO32K, HCLK, 32_768},
		{"rco32k", regmap.RCC_CR0_SYSCLK_SEL_RCO32K, PCLK0, 32_000},
		{"pll falls back", regmap.RCC_CR0_SYSCLK_SEL_PLL, SYSCLK, 24_000_000},
		{"rco48m/2 falls back", regmap.RCC_CR0_SYSCLK_SEL_RCO48M_DIV2 | regmap.RCC_CR0_PCLK0_DIV_8, PCLK0, 3_000_000},
		{"unknown id is sysclk", regmap.RCC_CR0_SYSCLK_SEL_XO32M | regmap.RCC_CR0_HCLK_DIV_2, Clock(9), 32_000_000},
		{"hclk/512", regmap.RCC_CR0_SYSCLK_SEL_RCO48M | regmap.RCC_CR0_HCLK_DIV_512, HCLK, 93_750},
	}
	for _, c := range cases {
		r, b := newRCC(t)
		b.Poke(cr0, c.cr0)
		if got := r.ClkFreq(c.clk); got != c.want {
			t.Errorf("%s: got %d, want %d", c.name, got, c.want)
		}
	}
}

func TestClkFreqIsPure(t *testing.T) {
	r, b := newRCC(t)
	b.Poke(cr0, regmap.RCC_CR0_SYSCLK_SEL_XO32M|regmap.RCC_CR0_HCLK_DIV_2|regmap.RCC_CR0_PCLK0_DIV_4)
	first := [4]uint32{r.ClkFreq(SYSCLK), r.ClkFreq(HCLK), r.ClkFreq(PCLK0), r.ClkFreq(PCLK1)}
	for i := 0; i < 5; i++ {
		again := [4]uint32{r.ClkFreq(SYSCLK), r.ClkFreq(HCLK), r.ClkFreq(PCLK0), r.ClkFreq(PCLK1)}
		if again != first {
			t.Fatalf("call %d: %v != %v", i, again, first)
		}
	}
	if w := b.Writes(); len(w) != 0 {
		t.Fatalf("ClkFreq wrote registers: %v", w)
	}
}

func TestSysClkSelectRoundTrip(t *testing.T) {
	r, b := newRCC(t)
	b.Poke(cr0, 0xFFFF_0000)
	r.SetSysClkSrc(SysClkXO24M)
	if got := b.Peek(cr0); got != 0xFFFF_0000|regmap.RCC_CR0_SYSCLK_SEL_XO24M {
		t.Fatalf("cr0 = %#x", got)
	}
	if r.SysClkSrc() != SysClkXO24M {
		t.Fatalf("SysClkSrc = %d", r.SysClkSrc())
	}
}

func TestDividers(t *testing.T) {
	r, b := newRCC(t)
	r.SetHCLKDiv(Div8)
	r.SetPCLKDiv(Div2, Div16)
	want := uint32(regmap.RCC_CR0_HCLK_DIV_8 | regmap.RCC_CR0_PCLK0_DIV_2 | regmap.RCC_CR0_PCLK1_DIV_16)
	if got := b.Peek(cr0); got != want {
		t.Fatalf("cr0 = %#x, want %#x", got, want)
	}
	if n := len(b.WritesTo(cr0)); n != 2 {
		t.Fatalf("cr0 written %d times, want 2", n)
	}
	r.SetI2SMclkDiv(0x12)
	r.SetI2SSclkDiv(0x34)
	if got := b.Peek(cr3); got != 0x1234 {
		t.Fatalf("cr3 = %#x", got)
	}
}

func TestResetAliasesGPIOPorts(t *testing.T) {
	for _, p := range []Peripheral{GPIOA, GPIOB, GPIOC, GPIOD} {
		r, b := newRCC(t)
		b.Poke(rst0, 0xFFFFFFFF)
		r.ResetPeripheral(p, true)
		if got := b.Peek(rst0); got != 0xFFFFFFFF&^regmap.RCC_RST0_IOM_RST_N_Msk {
			t.Errorf("assert %d: rst0 = %#x", p, got)
		}
		r.ResetPeripheral(p, false)
		if got := b.Peek(rst0); got != 0xFFFFFFFF {
			t.Errorf("release %d: rst0 = %#x", p, got)
		}
		if b.Touched(rst1) {
			t.Errorf("%d touched rst1", p)
		}
	}
}

func TestResetLines(t *testing.T) {
	cases := []struct {
		p    Peripheral
		addr uintptr
		bit  uint32
	}{
		{UART0, rst0, regmap.RCC_RST0_UART0_RST_N_Msk},
		{UART2, rst0, regmap.RCC_RST0_UART2_RST_N_Msk},
		{I2C0, rst0, regmap.RCC_RST0_I2C0_RST_N_Msk},
		{LORA, rst0, regmap.RCC_RST0_LORA_RST_N_Msk},
		{SAC, rst0, regmap.RCC_RST0_SAC_RST_N_Msk},
		{LPTIMER0, rst0, regmap.RCC_RST0_LPTIMER0_RST_N_Msk},
		{DMA1, rst1, regmap.RCC_RST1_DMAC1_RST_N_Msk},
		{DMA0, rst1, regmap.RCC_RST1_DMAC0_RST_N_Msk},
		{I2S, rst1, regmap.RCC_RST1_I2S_RST_N_Msk},
		{RNGC, rst1, regmap.RCC_RST1_RNGC_RST_N_Msk},
		{LPTIMER1, rst1, regmap.RCC_RST1_LPTIMER1_RST_N_Msk},
	}
	for _, c := range cases {
		r, b := newRCC(t)
		b.Poke(c.addr, 0xFFFFFFFF)
		r.ResetPeripheral(c.p, true)
		if got := b.Peek(c.addr); got != 0xFFFFFFFF&^c.bit {
			t.Errorf("peripheral %d: reg %#x = %#x, want bit %#x low", c.p, c.addr, got, c.bit)
		}
	}

	r, b := newRCC(t)
	r.ResetPeripheral(SYSCFG, true)
	r.ResetPeripheral(PWR, true)
	r.ResetPeripheral(Peripheral(200), true)
	if len(b.Writes()) != 0 {
		t.Fatalf("ids without a reset line wrote: %v", b.Writes())
	}
}

func TestPlainGates(t *testing.T) {
	cases := []struct {
		p    Peripheral
		addr uintptr
		bit  uint32
	}{
		{UART0, cgr0, regmap.RCC_CGR0_UART0_CLK_EN_Msk},
		{GPIOA, cgr0, regmap.RCC_CGR0_IOM0_CLK_EN_Msk},
		{GPIOD, cgr0, regmap.RCC_CGR0_IOM3_CLK_EN_Msk},
		{LORA, cgr0, regmap.RCC_CGR0_LORA_CLK_EN_Msk},
		{PWR, cgr0, regmap.RCC_CGR0_PWR_CLK_EN_Msk},
		{DMA0, cgr0, regmap.RCC_CGR0_DMAC0_CLK_EN_Msk},
		{DMA1, cgr0, regmap.RCC_CGR0_DMAC1_CLK_EN_Msk},
		{SAC, cgr1, regmap.RCC_CGR1_SAC_CLK_EN_Msk},
		{QSPI, cgr1, regmap.RCC_CGR1_QSPI_CLK_EN_Msk},
	}
	for _, c := range cases {
		r, b := newRCC(t)
		if err := r.EnablePeripheralClk(c.p, true); err != nil {
			t.Fatal(err)
		}
		if got := b.Peek(c.addr); got != c.bit {
			t.Errorf("peripheral %d: %#x = %#x, want %#x", c.p, c.addr, got, c.bit)
		}
		if !r.PeripheralClkEnabled(c.p) {
			t.Errorf("peripheral %d not reported enabled", c.p)
		}
		_ = r.EnablePeripheralClk(c.p, false)
		if got := b.Peek(c.addr); got != 0 {
			t.Errorf("peripheral %d: disable left %#x", c.p, got)
		}
	}

	r, b := newRCC(t)
	_ = r.EnablePeripheralClk(WDG, true)
	if got := b.Peek(cgr1); got != regmap.RCC_CGR1_WDG_CLK_EN_Msk|regmap.RCC_CGR1_WDG_CNT_CLK_EN_Msk {
		t.Fatalf("wdg cgr1 = %#x", got)
	}
	if err := r.EnablePeripheralClk(Peripheral(250), true); err != nil {
		t.Fatal(err)
	}
}

// step is one write or one status poll seen in the bank trace.
type step struct {
	addr  uintptr
	write bool
}

func steps(b *mmio.Bank, keep ...uintptr) []step {
	var out []step
	for _, a := range b.Trace() {
		for _, k := range keep {
			if a.Addr == k && (a.Write || k == sr) {
				out = append(out, step{a.Addr, a.Write})
			}
		}
	}
	return out
}

func TestAONOrdering(t *testing.T) {
	r, b := newRCC(t)
	if err := r.EnablePeripheralClk(LPUART, true); err != nil {
		t.Fatal(err)
	}
	want := []step{{cgr0, true}, {sr, false}, {cgr2, true}}
	if got := steps(b, cgr0, cgr2, sr); !equalSteps(got, want) {
		t.Fatalf("enable order = %v, want %v", got, want)
	}
	if b.Peek(cgr2) != regmap.RCC_CGR2_LPUART_AON_CLK_EN_Msk {
		t.Fatalf("cgr2 = %#x", b.Peek(cgr2))
	}

	b.ResetTrace()
	_ = r.EnablePeripheralClk(LPUART, false)
	want = []step{{cgr2, true}, {sr, false}, {cgr0, true}}
	if got := steps(b, cgr0, cgr2, sr); !equalSteps(got, want) {
		t.Fatalf("disable order = %v, want %v", got, want)
	}
	if b.Peek(cgr0) != 0 || b.Peek(cgr2) != 0 {
		t.Fatalf("gates left on: cgr0 %#x cgr2 %#x", b.Peek(cgr0), b.Peek(cgr2))
	}
}

func TestAONWaitsForAllDone(t *testing.T) {
	r, b := newRCC(t)
	b.Poke(sr, 0x1F)
	polls := 0
	b.OnLoad(sr, func(cur uint32) uint32 {
		polls++
		if polls == 4 {
			return regmap.RCC_SR_ALL_DONE
		}
		return cur
	})
	if err := r.EnablePeripheralClk(RTC, true); err != nil {
		t.Fatal(err)
	}
	if polls != 4 {
		t.Fatalf("polled %d times", polls)
	}
	if b.Peek(cgr1) != regmap.RCC_CGR1_RTC_CLK_EN_Msk || b.Peek(cgr2) != regmap.RCC_CGR2_RTC_AON_CLK_EN_Msk {
		t.Fatalf("cgr1 %#x cgr2 %#x", b.Peek(cgr1), b.Peek(cgr2))
	}
}

func TestLPTimerGateOrdering(t *testing.T) {
	r, b := newRCC(t)
	_ = r.EnablePeripheralClk(LPTIMER1, true)
	w := b.Writes()
	if len(w) != 3 ||
		w[0].Addr != cgr1 || w[0].Value != regmap.RCC_CGR1_LPTIMER1_PCLK_EN_Msk ||
		w[1].Addr != cgr2 || w[1].Value != regmap.RCC_CGR2_LPTIMER1_AON_CLK_EN_Msk ||
		w[2].Addr != cgr1 || w[2].Value != regmap.RCC_CGR1_LPTIMER1_PCLK_EN_Msk|regmap.RCC_CGR1_LPTIMER1_CLK_EN_Msk {
		t.Fatalf("enable writes = %+v", w)
	}

	b.ResetTrace()
	_ = r.EnablePeripheralClk(LPTIMER1, false)
	w = b.Writes()
	if len(w) != 3 ||
		w[0].Addr != cgr1 || w[0].Value != regmap.RCC_CGR1_LPTIMER1_PCLK_EN_Msk ||
		w[1].Addr != cgr2 || w[1].Value != 0 ||
		w[2].Addr != cgr1 || w[2].Value != 0 {
		t.Fatalf("disable writes = %+v", w)
	}
}

func equalSteps(a, b []step) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestSourceSwitchWithSyncHandshake(t *testing.T) {
	r, b := newRCC(t)
	b.Poke(cgr0, regmap.RCC_CGR0_UART0_CLK_EN_Msk|regmap.RCC_CGR0_IOM0_CLK_EN_Msk)
	b.Poke(sr1, regmap.RCC_SR1_UART0_CLK_EN_SYNC|regmap.RCC_SR1_RTC_CLK_EN_SYNC)
	// hardware drops the sync flag a few polls after the gate goes low
	pending := -1
	b.OnStore(cgr0, func(_, v uint32) uint32 {
		if v&regmap.RCC_CGR0_UART0_CLK_EN_Msk == 0 {
			pending = 3
		}
		return v
	})
	b.OnLoad(sr1, func(cur uint32) uint32 {
		if pending > 0 {
			pending--
			if pending == 0 {
				return cur &^ regmap.RCC_SR1_UART0_CLK_EN_SYNC
			}
		}
		return cur
	})

	if err := r.SetUARTClkSrc(0, UARTXO24M); err != nil {
		t.Fatal(err)
	}
	if got := b.Peek(cgr0); got != regmap.RCC_CGR0_IOM0_CLK_EN_Msk {
		t.Fatalf("cgr0 = %#x, want only IOM0 left", got)
	}
	if got := b.Peek(cr2); got != regmap.RCC_CR2_UART0_CLK_SEL_XO24M {
		t.Fatalf("cr2 = %#x", got)
	}
	if pending != 0 {
		t.Fatal("selector written before sync cleared")
	}
	if r.UARTClkSrc(0) != UARTXO24M {
		t.Fatalf("UARTClkSrc(0) = %d", r.UARTClkSrc(0))
	}
}

func TestSourceSwitchWithoutSync(t *testing.T) {
	r, b := newRCC(t)
	b.Poke(cgr0, regmap.RCC_CGR0_UART2_CLK_EN_Msk)
	if err := r.SetUARTClkSrc(2, UARTRCO4M); err != nil {
		t.Fatal(err)
	}
	if b.Touched(cgr0) {
		t.Fatal("gate touched with no sync pending")
	}
	if got := b.Peek(cr2); got != regmap.RCC_CR2_UART2_CLK_SEL_RCO4M {
		t.Fatalf("cr2 = %#x", got)
	}
	if err := r.SetUARTClkSrc(7, UARTRCO4M); err != nil || len(b.WritesTo(cr2)) != 1 {
		t.Fatal("out of range UART must be ignored")
	}
}

func TestSourceSwitchBoundedTimeout(t *testing.T) {
	r, b := newRCC(t, mmio.WithWait(mmio.Bounded(16)))
	b.Poke(sr1, regmap.RCC_SR1_ADC_CLK_EN_SYNC)
	b.Poke(cgr0, regmap.RCC_CGR0_ADC_CLK_EN_Msk)
	err := r.SetADCClkSrc(ADCRCO48M)
	if !errors.Is(err, errcode.Timeout) {
		t.Fatalf("err = %v, want timeout", err)
	}
	if b.Touched(cr2) {
		t.Fatal("selector written after failed handshake")
	}
}

func TestLowPowerAndBusSources(t *testing.T) {
	r, b := newRCC(t)
	_ = r.SetLCDClkSrc(LowPowerRCO4M)
	_ = r.SetLPUARTClkSrc(LowPowerRCO32K)
	_ = r.SetRTCClkSrc(LowPowerRCO32K)
	_ = r.SetIWDGClkSrc(LowPowerRCO32K)
	want1 := uint32(regmap.RCC_CR1_LCD_CLK_SEL_RCO4M | regmap.RCC_CR1_LPUART_CLK_SEL_RCO32K |
		regmap.RCC_CR1_RTC_CLK_SEL_RCO32K | regmap.RCC_CR1_IWDG_CLK_SEL_RCO32K)
	if got := b.Peek(cr1); got != want1 {
		t.Fatalf("cr1 = %#x, want %#x", got, want1)
	}
	if r.LCDClkSrc() != LowPowerRCO4M || r.LPUARTClkSrc() != LowPowerRCO32K ||
		r.RTCClkSrc() != LowPowerRCO32K || r.IWDGClkSrc() != LowPowerRCO32K {
		t.Fatal("low-power getters disagree")
	}

	_ = r.SetQSPIClkSrc(QSPIPLL)
	_ = r.SetI2SClkSrc(I2SEXTCLK)
	_ = r.SetADCClkSrc(ADCSYSCLK)
	want2 := uint32(regmap.RCC_CR2_QSPI_CLK_SEL_PLL | regmap.RCC_CR2_I2S_CLK_SEL_EXT_CLK | regmap.RCC_CR2_ADC_CLK_SEL_SYSCLK)
	if got := b.Peek(cr2); got != want2 {
		t.Fatalf("cr2 = %#x, want %#x", got, want2)
	}
	if r.QSPIClkSrc() != QSPIPLL || r.I2SClkSrc() != I2SEXTCLK || r.ADCClkSrc() != ADCSYSCLK {
		t.Fatal("bus getters disagree")
	}
}

func TestLPTimerSources(t *testing.T) {
	r, b := newRCC(t)
	_ = r.SetLPTimerClkSrc(0, LPTimerXO32K)
	if got := b.Peek(cr1); got != regmap.RCC_CR1_LPTIMER0_CLK_SEL_XO32K {
		t.Fatalf("cr1 = %#x", got)
	}
	if r.LPTimerClkSrc(0) != LPTimerXO32K {
		t.Fatal("LPTimerClkSrc(0)")
	}
	_ = r.SetLPTimerClkSrc(1, LPTimerEXTCLK)
	if got := b.Peek(cr1); got != regmap.RCC_CR1_LPTIMER0_CLK_SEL_XO32K|regmap.RCC_CR1_LPTIMER1_EXTCLK_SEL_Msk {
		t.Fatalf("cr1 = %#x", got)
	}
	if r.LPTimerClkSrc(1) != LPTimerEXTCLK {
		t.Fatal("EXTCLK not reported")
	}
}

func TestMCO(t *testing.T) {
	r, b := newRCC(t)
	r.EnableMCOOutput(true)
	b.Poke(sr1, regmap.RCC_SR1_MCO_CLK_EN_SYNC)
	b.OnStore(cr0, func(_, v uint32) uint32 {
		if v&regmap.RCC_CR0_MCO_CLK_OUT_EN_Msk == 0 {
			b.Poke(sr1, 0)
		}
		return v
	})
	if err := r.SetMCOClkSrc(MCOXO32M); err != nil {
		t.Fatal(err)
	}
	if err := r.SetMCOClkDiv(MCODiv4); err != nil {
		t.Fatal(err)
	}
	want := uint32(regmap.RCC_CR0_MCO_CLK_SEL_XO32M | regmap.RCC_CR0_MCO_CLK_DIV_4)
	if got := b.Peek(cr0); got != want {
		t.Fatalf("cr0 = %#x, want %#x (output gate dropped during switch)", got, want)
	}
	if r.MCOClkSrc() != MCOXO32M {
		t.Fatal("MCOClkSrc")
	}
}

func TestSysTick(t *testing.T) {
	r, b := newRCC(t)
	r.SetSysTickSrc(SysTickRCO32K)
	if got := b.Peek(cr0); got != regmap.RCC_CR0_STCLKEN_SEL_RCO32K {
		t.Fatalf("cr0 = %#x", got)
	}

	// the 32k selector is the only field written; the HCLK divider stays
	b.Poke(cr0, regmap.RCC_CR0_HCLK_DIV_8|regmap.RCC_CR0_STCLKEN_SEL_RCO32K)
	r.SetSysTickSrc(SysTickXO32K)
	if got := b.Peek(cr0); got != regmap.RCC_CR0_HCLK_DIV_8 {
		t.Fatalf("cr0 = %#x, want hclk div kept", got)
	}
	if got := r.ClkFreq(HCLK); got != regmap.FREQ_24M/8 {
		t.Fatalf("hclk = %d", got)
	}

	mustPanic(t, "SetSysTickSrc(HCLK)", func() { r.SetSysTickSrc(SysTickHCLK) })
	mustPanic(t, "SysTickSrc", func() { r.SysTickSrc() })
}

func mustPanic(t *testing.T, name string, f func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("%s did not panic", name)
		}
	}()
	f()
}

func TestOscillators(t *testing.T) {
	r, b := newRCC(t)
	b.Poke(ana06, regmap.ANA_06_XO24M_PD_Msk|regmap.ANA_06_RCO48M_PD_Msk|regmap.ANA_06_RCO4M_PD_Msk)
	b.Poke(ana02, 0xFFFF)

	_ = r.EnableOscillator(XO24M, true)
	if got := b.Peek(ana06) & regmap.ANA_06_XO24M_STATE_Msk; got != regmap.ANA_06_XO24M_EN_Msk {
		t.Fatalf("xo24m on: ana06 state %#x", got)
	}
	_ = r.EnableOscillator(XO24M, false)
	if got := b.Peek(ana06) & regmap.ANA_06_XO24M_STATE_Msk; got != regmap.ANA_06_XO24M_PD_Msk {
		t.Fatalf("xo24m off: ana06 state %#x", got)
	}

	_ = r.EnableOscillator(XO32K, true)
	_ = r.EnableOscillator(RCO32K, true)
	if got := b.Peek(ana02); got != 0xFFFF&^(regmap.ANA_02_XO32K_PD_Msk|regmap.ANA_02_RCO32K_PD_Msk) {
		t.Fatalf("ana02 = %#x", got)
	}

	// RCO48M ready follows its power-down bit
	b.OnStore(ana06, func(_, v uint32) uint32 {
		raw := b.Peek(rawSR)
		if v&regmap.ANA_06_RCO48M_PD_Msk == 0 {
			raw |= regmap.AFEC_RAW_SR_RCO24M_READY_Msk
		} else {
			raw &^= regmap.AFEC_RAW_SR_RCO24M_READY_Msk
		}
		b.Poke(rawSR, raw)
		return v
	})
	if err := r.EnableOscillator(RCO48M, true); err != nil {
		t.Fatal(err)
	}
	if ready, _ := r.OscillatorReady(RCO48M); !ready {
		t.Fatal("rco48m not ready")
	}
	if err := r.EnableOscillator(RCO48M, false); err != nil {
		t.Fatal(err)
	}
	if ready, _ := r.OscillatorReady(RCO48M); ready {
		t.Fatal("rco48m still ready")
	}
	if _, known := r.OscillatorReady(XO24M); known {
		t.Fatal("xo24m has no ready flag")
	}
}

func TestRCO4MTimesOutWithoutReady(t *testing.T) {
	r, _ := newRCC(t, mmio.WithWait(mmio.Bounded(8)))
	err := r.EnableOscillator(RCO4M, true)
	if errcode.Of(err) != errcode.Timeout {
		t.Fatalf("err = %v", err)
	}
}

func TestXO32MSequence(t *testing.T) {
	r, b := newRCC(t)
	b.OnStore(loraC1, func(_, v uint32) uint32 {
		if v&regmap.LORAC_CR1_XO32M_EN_Msk != 0 {
			b.Poke(loraSR, regmap.LORAC_SR_XO32M_READY)
		} else {
			b.Poke(loraSR, 0)
		}
		return v
	})
	b.Poke(loraC1, regmap.LORAC_CR1_XO32M_PD_Msk)
	if err := r.EnableOscillator(XO32M, true); err != nil {
		t.Fatal(err)
	}
	if b.Peek(cgr0)&regmap.RCC_CGR0_LORA_CLK_EN_Msk == 0 {
		t.Fatal("LORA clock not enabled first")
	}
	want := uint32(regmap.LORAC_CR1_XO32M_CFG_Msk | regmap.LORAC_CR1_XO32M_EN_Msk)
	if got := b.Peek(loraC1); got != want {
		t.Fatalf("lorac cr1 = %#x, want %#x", got, want)
	}
	// the nreset/por step only runs once
	b.ResetTrace()
	_ = r.EnableOscillator(XO32M, false)
	_ = r.EnableOscillator(XO32M, true)
	if n := len(b.WritesTo(loraC1)); n != 2 {
		t.Fatalf("cr1 writes = %d, want 2", n)
	}
	if ready, _ := r.OscillatorReady(XO32M); !ready {
		t.Fatal("xo32m not ready")
	}
}

func TestResetMaskAndCause(t *testing.T) {
	r, b := newRCC(t)
	b.Poke(rcr, 0xC1)
	r.SetResetMask(0xFF)
	if got := b.Peek(rcr); got != 0xFF {
		t.Fatalf("rst_cr = %#x", got)
	}
	if r.ResetMask() != regmap.RCC_RST_CR_RESET_REQ_EN_Msk {
		t.Fatalf("ResetMask = %#x", r.ResetMask())
	}
	b.Poke(rsr, regmap.RCC_RST_SR_IWDG_RESET_SR|regmap.RCC_RST_SR_CPU_RESET_SR|0x80)
	c := r.ResetCause()
	names := c.Names()
	if len(names) != 2 || names[0] != "iwdg" || names[1] != "cpu" {
		t.Fatalf("cause %#x names %v", uint32(c), names)
	}
	r.ClearResetCause()
	if w := b.WritesTo(rsr); len(w) != 1 || w[0] != regmap.RCC_RST_SR_Msk {
		t.Fatalf("clear wrote %v", w)
	}
	if got := ResetCause(0).Names(); len(got) != 1 || got[0] != "power-on" {
		t.Fatalf("empty cause = %v", got)
	}
}

func TestUARTClkFreq(t *testing.T) {
	r, b := newRCC(t)
	b.Poke(cr0, regmap.RCC_CR0_SYSCLK_SEL_RCO48M|regmap.RCC_CR0_PCLK0_DIV_2|regmap.RCC_CR0_PCLK1_DIV_4)
	b.Poke(cr2, regmap.RCC_CR2_UART1_CLK_SEL_XO32K|regmap.RCC_CR2_UART3_CLK_SEL_RCO4M)
	cases := []struct {
		n    int
		want uint32
	}{
		{0, 24_000_000},
		{1, 32_768},
		{2, 12_000_000},
		{3, 4_000_000},
	}
	for _, c := range cases {
		if got := r.UARTClkFreq(c.n); got != c.want {
			t.Errorf("uart%d: %d, want %d", c.n, got, c.want)
		}
	}
}
