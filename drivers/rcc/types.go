package rcc

import "tremo-go/regmap"

// Clock names a node of the clock tree.
type Clock uint8

const (
	SYSCLK Clock = iota
	HCLK
	PCLK0
	PCLK1
)

// Oscillator names a clock generator.
type Oscillator uint8

const (
	RCO48M Oscillator = iota
	RCO32K
	XO32K
	XO24M
	XO32M
	RCO4M
)

var oscNames = [...]string{"rco48m", "rco32k", "xo32k", "xo24m", "xo32m", "rco4m"}

func (o Oscillator) String() string {
	if int(o) < len(oscNames) {
		return oscNames[o]
	}
	return "osc?"
}

// Source selector codes are the field values shifted down to bit 0.

// SysClkSource selects SYSCLK (CR0.SYSCLK_SEL).
type SysClkSource uint8

const (
	SysClkRCO48MDiv2 SysClkSource = iota
	SysClkRCO32K
	SysClkXO32K
	SysClkPLL
	SysClkXO24M
	SysClkXO32M
	SysClkRCO4M
	SysClkRCO48M
)

// SysTickSource selects the SysTick reference.
type SysTickSource uint8

const (
	SysTickXO32K SysTickSource = iota
	SysTickRCO32K
	SysTickHCLK
)

// UARTSource selects a UART kernel clock. UARTBus is PCLK0 for UART0/1 and
// PCLK1 for UART2/3.
type UARTSource uint8

const (
	UARTBus UARTSource = iota
	UARTRCO4M
	UARTXO32K
	UARTXO24M
)

// LPTimerSource selects a low-power timer clock.
type LPTimerSource uint8

const (
	LPTimerPCLK0 LPTimerSource = iota
	LPTimerRCO4M
	LPTimerXO32K
	LPTimerRCO32K
	LPTimerEXTCLK
)

// LowPowerSource selects the LCD, LPUART, RTC or IWDG clock. RTC and IWDG
// only accept the two 32 kHz sources.
type LowPowerSource uint8

const (
	LowPowerXO32K LowPowerSource = iota
	LowPowerRCO32K
	LowPowerRCO4M
)

// ADCSource selects the ADC clock.
type ADCSource uint8

const (
	ADCPCLK1 ADCSource = iota
	ADCSYSCLK
	ADCPLL
	ADCRCO48M
)

// QSPISource selects the QSPI clock.
type QSPISource uint8

const (
	QSPIHCLK QSPISource = iota
	QSPISYSCLK
	QSPIPLL
)

// I2SSource selects the I2S clock.
type I2SSource uint8

const (
	I2SPCLK0 I2SSource = iota
	I2SXO24M
	I2SPLL
	I2SXO32M
	I2SEXTCLK
)

// MCOSource selects the clock routed to the MCO pin.
type MCOSource uint8

const (
	MCORCO32K MCOSource = iota
	MCOXO32K
	MCORCO4M
	MCOXO24M
	MCOXO32M
	MCORCO48M
	MCOPLL
	MCOSYSCLK
)

// Div is a power-of-two bus divider, stored as its shift count.
type Div uint8

const (
	Div1 Div = iota
	Div2
	Div4
	Div8
	Div16
	Div32
	Div64
	Div128
	Div256
	Div512
)

// MCODiv is the MCO output divider encoding.
type MCODiv uint8

const (
	MCODiv1  MCODiv = 0
	MCODiv2  MCODiv = 4
	MCODiv4  MCODiv = 5
	MCODiv8  MCODiv = 6
	MCODiv16 MCODiv = 7
)

// Peripheral identifies a clock-gated block. Values 0..31 are the RST0 bit
// index, DMA1..LPTIMER1 map onto RST1 from bit 0, and the rest have no reset
// line of their own.
type Peripheral uint8

const (
	SAC Peripheral = iota
	SEC
	CRC
	RTC
	WDG
	IWDG
	LPTIMER0
	BSTIMER1
	BSTIMER0
	TIMER3
	TIMER2
	TIMER1
	TIMER0
	GPIOA
	LORA
	DAC
	LCD
	AFEC
	ADC
	SCC
	I2C2
	I2C1
	I2C0
	QSPI
	SSP2
	SSP1
	SSP0
	LPUART
	UART3
	UART2
	UART1
	UART0
	DMA1
	DMA0
	I2S
	RNGC
	LPTIMER1
	SYSCFG
	PWR
	GPIOB
	GPIOC
	GPIOD
)

// UARTPeripheral maps a UART instance number to its id.
func UARTPeripheral(n int) (Peripheral, bool) {
	switch n {
	case 0:
		return UART0, true
	case 1:
		return UART1, true
	case 2:
		return UART2, true
	case 3:
		return UART3, true
	}
	return 0, false
}

// ResetCause is the RST_SR snapshot.
type ResetCause uint32

const (
	ResetStandby ResetCause = regmap.RCC_RST_SR_STANDBY_RESET_SR
	ResetSEC     ResetCause = regmap.RCC_RST_SR_SEC_RESET_SR
	ResetCPU     ResetCause = regmap.RCC_RST_SR_CPU_RESET_SR
	ResetEFC     ResetCause = regmap.RCC_RST_SR_EFC_RESET_SR
	ResetWDG     ResetCause = regmap.RCC_RST_SR_WDG_RESET_SR
	ResetIWDG    ResetCause = regmap.RCC_RST_SR_IWDG_RESET_SR
	ResetBOR     ResetCause = regmap.RCC_RST_SR_BOR_RESET_SR
)

var causeNames = []struct {
	c    ResetCause
	name string
}{
	{ResetBOR, "bor"}, {ResetIWDG, "iwdg"}, {ResetWDG, "wdg"}, {ResetEFC, "efc"},
	{ResetCPU, "cpu"}, {ResetSEC, "sec"}, {ResetStandby, "standby"},
}

// Names lists the set causes, most severe first.
func (c ResetCause) Names() []string {
	var out []string
	for _, n := range causeNames {
		if c&n.c != 0 {
			out = append(out, n.name)
		}
	}
	if len(out) == 0 {
		out = append(out, "power-on")
	}
	return out
}
