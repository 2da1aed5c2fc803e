package regmap

import "unsafe"

// RCC_Type is the reset and clock controller block.
type RCC_Type struct {
	CR0    uint32
	CR1    uint32
	CR2    uint32
	CGR0   uint32
	CGR1   uint32
	CGR2   uint32
	RST0   uint32
	RST1   uint32
	RST_SR uint32
	RST_CR uint32
	SR     uint32
	SR1    uint32
	CR3    uint32
}

const (
	RCC_CR0    = unsafe.Offsetof(RCC_Type{}.CR0)
	RCC_CR1    = unsafe.Offsetof(RCC_Type{}.CR1)
	RCC_CR2    = unsafe.Offsetof(RCC_Type{}.CR2)
	RCC_CGR0   = unsafe.Offsetof(RCC_Type{}.CGR0)
	RCC_CGR1   = unsafe.Offsetof(RCC_Type{}.CGR1)
	RCC_CGR2   = unsafe.Offsetof(RCC_Type{}.CGR2)
	RCC_RST0   = unsafe.Offsetof(RCC_Type{}.RST0)
	RCC_RST1   = unsafe.Offsetof(RCC_Type{}.RST1)
	RCC_RST_SR = unsafe.Offsetof(RCC_Type{}.RST_SR)
	RCC_RST_CR = unsafe.Offsetof(RCC_Type{}.RST_CR)
	RCC_SR     = unsafe.Offsetof(RCC_Type{}.SR)
	RCC_SR1    = unsafe.Offsetof(RCC_Type{}.SR1)
	RCC_CR3    = unsafe.Offsetof(RCC_Type{}.CR3)
)

var _ = [1]struct{}{}[RCC_CR3-0x30]

// Nominal oscillator frequencies (Hz).
const (
	FREQ_48M    = 48_000_000
	FREQ_32M    = 32_000_000
	FREQ_24M    = 24_000_000
	FREQ_4M     = 4_000_000
	FREQ_32768  = 32_768
	FREQ_32000  = 32_000
	FREQ_RCO48M = FREQ_48M
)

// CR0
const (
	RCC_CR0_STCLKEN_SEL_Msk    = 0x02000000
	RCC_CR0_STCLKEN_SEL_XO32K  = 0x00000000
	RCC_CR0_STCLKEN_SEL_RCO32K = 0x02000000

	RCC_CR0_MCO_CLK_DIV_Msk = 0x01C00000
	RCC_CR0_MCO_CLK_DIV_1   = 0x00000000
	RCC_CR0_MCO_CLK_DIV_2   = 0x01000000
	RCC_CR0_MCO_CLK_DIV_4   = 0x01400000
	RCC_CR0_MCO_CLK_DIV_8   = 0x01800000
	RCC_CR0_MCO_CLK_DIV_16  = 0x01C00000

	RCC_CR0_MCO_CLK_SEL_Msk    = 0x00380000
	RCC_CR0_MCO_CLK_SEL_RCO32K = 0x00000000
	RCC_CR0_MCO_CLK_SEL_XO32K  = 0x00080000
	RCC_CR0_MCO_CLK_SEL_RCO4M  = 0x00100000
	RCC_CR0_MCO_CLK_SEL_XO24M  = 0x00180000
	RCC_CR0_MCO_CLK_SEL_XO32M  = 0x00200000
	RCC_CR0_MCO_CLK_SEL_RCO48M = 0x00280000
	RCC_CR0_MCO_CLK_SEL_PLL    = 0x00300000
	RCC_CR0_MCO_CLK_SEL_SYSCLK = 0x00380000

	RCC_CR0_MCO_CLK_OUT_EN_Msk = 0x00040000

	RCC_CR0_PCLK1_DIV_Msk = 0x00038000
	RCC_CR0_PCLK1_DIV_Pos = 15
	RCC_CR0_PCLK1_DIV_1   = 0x00000000
	RCC_CR0_PCLK1_DIV_2   = 0x00008000
	RCC_CR0_PCLK1_DIV_4   = 0x00010000
	RCC_CR0_PCLK1_DIV_8   = 0x00018000
	RCC_CR0_PCLK1_DIV_16  = 0x00020000

	RCC_CR0_SYSCLK_SEL_Msk         = 0x00007000
	RCC_CR0_SYSCLK_SEL_RCO48M_DIV2 = 0x00000000
	RCC_CR0_SYSCLK_SEL_RCO32K      = 0x00001000
	RCC_CR0_SYSCLK_SEL_XO32K       = 0x00002000
	RCC_CR0_SYSCLK_SEL_PLL         = 0x00003000
	RCC_CR0_SYSCLK_SEL_XO24M       = 0x00004000
	RCC_CR0_SYSCLK_SEL_XO32M       = 0x00005000
	RCC_CR0_SYSCLK_SEL_RCO4M       = 0x00006000
	RCC_CR0_SYSCLK_SEL_RCO48M      = 0x00007000

	RCC_CR0_HCLK_DIV_Msk = 0x00000F00
	RCC_CR0_HCLK_DIV_Pos = 8
	RCC_CR0_HCLK_DIV_1   = 0x00000000
	RCC_CR0_HCLK_DIV_2   = 0x00000100
	RCC_CR0_HCLK_DIV_4   = 0x00000200
	RCC_CR0_HCLK_DIV_8   = 0x00000300
	RCC_CR0_HCLK_DIV_16  = 0x00000400
	RCC_CR0_HCLK_DIV_32  = 0x00000500
	RCC_CR0_HCLK_DIV_64  = 0x00000600
	RCC_CR0_HCLK_DIV_128 = 0x00000700
	RCC_CR0_HCLK_DIV_256 = 0x00000800
	RCC_CR0_HCLK_DIV_512 = 0x00000900

	RCC_CR0_PCLK0_DIV_Msk = 0x000000E0
	RCC_CR0_PCLK0_DIV_Pos = 5
	RCC_CR0_PCLK0_DIV_1   = 0x00000000
	RCC_CR0_PCLK0_DIV_2   = 0x00000020
	RCC_CR0_PCLK0_DIV_4   = 0x00000040
	RCC_CR0_PCLK0_DIV_8   = 0x00000060
	RCC_CR0_PCLK0_DIV_16  = 0x00000080
)

// CR1
const (
	RCC_CR1_LPTIMER1_EXTCLK_SEL_Msk = 0x00000800
	RCC_CR1_LPTIMER0_EXTCLK_SEL_Msk = 0x00000400

	RCC_CR1_LPTIMER1_CLK_SEL_Msk    = 0x00000300
	RCC_CR1_LPTIMER1_CLK_SEL_PCLK0  = 0x00000000
	RCC_CR1_LPTIMER1_CLK_SEL_RCO4M  = 0x00000100
	RCC_CR1_LPTIMER1_CLK_SEL_XO32K  = 0x00000200
	RCC_CR1_LPTIMER1_CLK_SEL_RCO32K = 0x00000300

	RCC_CR1_LPTIMER0_CLK_SEL_Msk    = 0x000000C0
	RCC_CR1_LPTIMER0_CLK_SEL_PCLK0  = 0x00000000
	RCC_CR1_LPTIMER0_CLK_SEL_RCO4M  = 0x00000040
	RCC_CR1_LPTIMER0_CLK_SEL_XO32K  = 0x00000080
	RCC_CR1_LPTIMER0_CLK_SEL_RCO32K = 0x000000C0

	RCC_CR1_LCD_CLK_SEL_Msk    = 0x00000030
	RCC_CR1_LCD_CLK_SEL_XO32K  = 0x00000000
	RCC_CR1_LCD_CLK_SEL_RCO32K = 0x00000010
	RCC_CR1_LCD_CLK_SEL_RCO4M  = 0x00000020

	RCC_CR1_LPUART_CLK_SEL_Msk    = 0x0000000C
	RCC_CR1_LPUART_CLK_SEL_XO32K  = 0x00000000
	RCC_CR1_LPUART_CLK_SEL_RCO32K = 0x00000004
	RCC_CR1_LPUART_CLK_SEL_RCO4M  = 0x00000008

	RCC_CR1_RTC_CLK_SEL_Msk    = 0x00000002
	RCC_CR1_RTC_CLK_SEL_XO32K  = 0x00000000
	RCC_CR1_RTC_CLK_SEL_RCO32K = 0x00000002

	RCC_CR1_IWDG_CLK_SEL_Msk    = 0x00000001
	RCC_CR1_IWDG_CLK_SEL_XO32K  = 0x00000000
	RCC_CR1_IWDG_CLK_SEL_RCO32K = 0x00000001
)

// CR2. The four UART selectors share one encoding, shifted per instance.
const (
	RCC_CR2_UART0_CLK_SEL_Msk   = 0x00018000
	RCC_CR2_UART0_CLK_SEL_Pos   = 15
	RCC_CR2_UART0_CLK_SEL_PCLK0 = 0x00000000
	RCC_CR2_UART0_CLK_SEL_RCO4M = 0x00008000
	RCC_CR2_UART0_CLK_SEL_XO32K = 0x00010000
	RCC_CR2_UART0_CLK_SEL_XO24M = 0x00018000

	RCC_CR2_UART1_CLK_SEL_Msk   = 0x00006000
	RCC_CR2_UART1_CLK_SEL_Pos   = 13
	RCC_CR2_UART1_CLK_SEL_PCLK0 = 0x00000000
	RCC_CR2_UART1_CLK_SEL_RCO4M = 0x00002000
	RCC_CR2_UART1_CLK_SEL_XO32K = 0x00004000
	RCC_CR2_UART1_CLK_SEL_XO24M = 0x00006000

	RCC_CR2_UART2_CLK_SEL_Msk   = 0x00001800
	RCC_CR2_UART2_CLK_SEL_Pos   = 11
	RCC_CR2_UART2_CLK_SEL_PCLK1 = 0x00000000
	RCC_CR2_UART2_CLK_SEL_RCO4M = 0x00000800
	RCC_CR2_UART2_CLK_SEL_XO32K = 0x00001000
	RCC_CR2_UART2_CLK_SEL_XO24M = 0x00001800

	RCC_CR2_UART3_CLK_SEL_Msk   = 0x00000600
	RCC_CR2_UART3_CLK_SEL_Pos   = 9
	RCC_CR2_UART3_CLK_SEL_PCLK1 = 0x00000000
	RCC_CR2_UART3_CLK_SEL_RCO4M = 0x00000200
	RCC_CR2_UART3_CLK_SEL_XO32K = 0x00000400
	RCC_CR2_UART3_CLK_SEL_XO24M = 0x00000600

	// Shifted-down UART selector codes.
	RCC_UART_CLK_SEL_BUS   = 0
	RCC_UART_CLK_SEL_RCO4M = 1
	RCC_UART_CLK_SEL_XO32K = 2
	RCC_UART_CLK_SEL_XO24M = 3

	RCC_CR2_SCC_CLK_SEL_Msk    = 0x00000180
	RCC_CR2_SCC_CLK_SEL_PCLK1  = 0x00000000
	RCC_CR2_SCC_CLK_SEL_SYSCLK = 0x00000080
	RCC_CR2_SCC_CLK_SEL_PLL    = 0x00000100
	RCC_CR2_SCC_CLK_SEL_EXT    = 0x00000180

	RCC_CR2_ADC_CLK_SEL_Msk    = 0x00000060
	RCC_CR2_ADC_CLK_SEL_PCLK1  = 0x00000000
	RCC_CR2_ADC_CLK_SEL_SYSCLK = 0x00000020
	RCC_CR2_ADC_CLK_SEL_PLL    = 0x00000040
	RCC_CR2_ADC_CLK_SEL_RCO48M = 0x00000060

	RCC_CR2_I2S_CLK_SEL_Msk     = 0x0000001C
	RCC_CR2_I2S_CLK_SEL_PCLK0   = 0x00000000
	RCC_CR2_I2S_CLK_SEL_XO24M   = 0x00000004
	RCC_CR2_I2S_CLK_SEL_PLL     = 0x00000008
	RCC_CR2_I2S_CLK_SEL_XO32M   = 0x0000000C
	RCC_CR2_I2S_CLK_SEL_EXT_CLK = 0x00000010

	RCC_CR2_QSPI_CLK_SEL_Msk    = 0x00000003
	RCC_CR2_QSPI_CLK_SEL_HCLK   = 0x00000000
	RCC_CR2_QSPI_CLK_SEL_SYSCLK = 0x00000001
	RCC_CR2_QSPI_CLK_SEL_PLL    = 0x00000002
)

// CR3
const (
	RCC_CR3_I2S_MCLK_DIV_Msk = 0x0000FF00
	RCC_CR3_I2S_MCLK_DIV_Pos = 8
	RCC_CR3_I2S_SCLK_DIV_Msk = 0x000000FF
)

// CGR0
const (
	RCC_CGR0_PWR_CLK_EN_Msk      = 0x80000000
	RCC_CGR0_DMAC0_CLK_EN_Msk    = 0x40000000
	RCC_CGR0_DMAC1_CLK_EN_Msk    = 0x20000000
	RCC_CGR0_CRC_CLK_EN_Msk      = 0x10000000
	RCC_CGR0_BSTIMER0_CLK_EN_Msk = 0x08000000
	RCC_CGR0_BSTIMER1_CLK_EN_Msk = 0x04000000
	RCC_CGR0_IOM0_CLK_EN_Msk     = 0x02000000
	RCC_CGR0_IOM1_CLK_EN_Msk     = 0x01000000
	RCC_CGR0_IOM2_CLK_EN_Msk     = 0x00800000
	RCC_CGR0_IOM3_CLK_EN_Msk     = 0x00400000
	RCC_CGR0_SYSCFG_CLK_EN_Msk   = 0x00200000
	RCC_CGR0_UART0_CLK_EN_Msk    = 0x00100000
	RCC_CGR0_UART1_CLK_EN_Msk    = 0x00080000
	RCC_CGR0_UART2_CLK_EN_Msk    = 0x00040000
	RCC_CGR0_UART3_CLK_EN_Msk    = 0x00020000
	RCC_CGR0_LPUART_CLK_EN_Msk   = 0x00010000
	RCC_CGR0_SSP0_CLK_EN_Msk     = 0x00008000
	RCC_CGR0_SSP1_CLK_EN_Msk     = 0x00004000
	RCC_CGR0_SSP2_CLK_EN_Msk     = 0x00002000
	RCC_CGR0_I2C0_CLK_EN_Msk     = 0x00001000
	RCC_CGR0_I2C1_CLK_EN_Msk     = 0x00000800
	RCC_CGR0_I2C2_CLK_EN_Msk     = 0x00000400
	RCC_CGR0_SCC_CLK_EN_Msk      = 0x00000200
	RCC_CGR0_ADC_CLK_EN_Msk      = 0x00000100
	RCC_CGR0_AFEC_CLK_EN_Msk     = 0x00000080
	RCC_CGR0_LCD_CLK_EN_Msk      = 0x00000040
	RCC_CGR0_DAC_CLK_EN_Msk      = 0x00000020
	RCC_CGR0_LORA_CLK_EN_Msk     = 0x00000010
	RCC_CGR0_TIMER0_CLK_EN_Msk   = 0x00000008
	RCC_CGR0_TIMER1_CLK_EN_Msk   = 0x00000004
	RCC_CGR0_TIMER2_CLK_EN_Msk   = 0x00000002
	RCC_CGR0_TIMER3_CLK_EN_Msk   = 0x00000001
)

// CGR1
const (
	RCC_CGR1_LPTIMER1_PCLK_EN_Msk = 0x00001000
	RCC_CGR1_LPTIMER1_CLK_EN_Msk  = 0x00000800
	RCC_CGR1_RNGC_CLK_EN_Msk      = 0x00000400
	RCC_CGR1_LPTIMER0_PCLK_EN_Msk = 0x00000200
	RCC_CGR1_I2S_CLK_EN_Msk       = 0x00000100
	RCC_CGR1_SAC_CLK_EN_Msk       = 0x00000080
	RCC_CGR1_WDG_CNT_CLK_EN_Msk   = 0x00000040
	RCC_CGR1_QSPI_CLK_EN_Msk      = 0x00000020
	RCC_CGR1_LPTIMER0_CLK_EN_Msk  = 0x00000010
	RCC_CGR1_IWDG_CLK_EN_Msk      = 0x00000008
	RCC_CGR1_WDG_CLK_EN_Msk       = 0x00000004
	RCC_CGR1_RTC_CLK_EN_Msk       = 0x00000002
	RCC_CGR1_SEC_CLK_EN_Msk       = 0x00000001
)

// CGR2 (always-on domain mirrors)
const (
	RCC_CGR2_LPTIMER1_AON_CLK_EN_Msk = 0x00000020
	RCC_CGR2_LPTIMER0_AON_CLK_EN_Msk = 0x00000010
	RCC_CGR2_LCD_AON_CLK_EN_Msk      = 0x00000008
	RCC_CGR2_LPUART_AON_CLK_EN_Msk   = 0x00000004
	RCC_CGR2_RTC_AON_CLK_EN_Msk      = 0x00000002
	RCC_CGR2_IWDG_CLK_EN_Msk         = 0x00000001
)

// RST0/RST1. Reset lines are active low: a cleared bit holds the block in reset.
const (
	RCC_RST0_UART0_RST_N_Msk    = 0x80000000
	RCC_RST0_UART1_RST_N_Msk    = 0x40000000
	RCC_RST0_UART2_RST_N_Msk    = 0x20000000
	RCC_RST0_UART3_RST_N_Msk    = 0x10000000
	RCC_RST0_LPUART_RST_N_Msk   = 0x08000000
	RCC_RST0_SSP0_RST_N_Msk     = 0x04000000
	RCC_RST0_SSP1_RST_N_Msk     = 0x02000000
	RCC_RST0_SSP2_RST_N_Msk     = 0x01000000
	RCC_RST0_QSPI_RST_N_Msk     = 0x00800000
	RCC_RST0_I2C0_RST_N_Msk     = 0x00400000
	RCC_RST0_I2C1_RST_N_Msk     = 0x00200000
	RCC_RST0_I2C2_RST_N_Msk     = 0x00100000
	RCC_RST0_SCC_RST_N_Msk      = 0x00080000
	RCC_RST0_ADC_RST_N_Msk      = 0x00040000
	RCC_RST0_AFEC_RST_N_Msk     = 0x00020000
	RCC_RST0_LCD_RST_N_Msk      = 0x00010000
	RCC_RST0_DAC_RST_N_Msk      = 0x00008000
	RCC_RST0_LORA_RST_N_Msk     = 0x00004000
	RCC_RST0_IOM_RST_N_Msk      = 0x00002000
	RCC_RST0_TIMER0_RST_N_Msk   = 0x00001000
	RCC_RST0_TIMER1_RST_N_Msk   = 0x00000800
	RCC_RST0_TIMER2_RST_N_Msk   = 0x00000400
	RCC_RST0_TIMER3_RST_N_Msk   = 0x00000200
	RCC_RST0_BSTIMER0_RST_N_Msk = 0x00000100
	RCC_RST0_BSTIMER1_RST_N_Msk = 0x00000080
	RCC_RST0_LPTIMER0_RST_N_Msk = 0x00000040
	RCC_RST0_IWDG_RST_N_Msk     = 0x00000020
	RCC_RST0_WDG_RST_N_Msk      = 0x00000010
	RCC_RST0_RTC_RST_N_Msk      = 0x00000008
	RCC_RST0_CRC_RST_N_Msk      = 0x00000004
	RCC_RST0_SEC_RST_N_Msk      = 0x00000002
	RCC_RST0_SAC_RST_N_Msk      = 0x00000001

	RCC_RST1_LPTIMER1_RST_N_Msk = 0x00000010
	RCC_RST1_RNGC_RST_N_Msk     = 0x00000008
	RCC_RST1_I2S_RST_N_Msk      = 0x00000004
	RCC_RST1_DMAC0_RST_N_Msk    = 0x00000002
	RCC_RST1_DMAC1_RST_N_Msk    = 0x00000001
)

// RST_SR (reset cause), RST_CR (reset request enables)
const (
	RCC_RST_SR_BOR_RESET_SR     = 0x00000040
	RCC_RST_SR_IWDG_RESET_SR    = 0x00000020
	RCC_RST_SR_WDG_RESET_SR     = 0x00000010
	RCC_RST_SR_EFC_RESET_SR     = 0x00000008
	RCC_RST_SR_CPU_RESET_SR     = 0x00000004
	RCC_RST_SR_SEC_RESET_SR     = 0x00000002
	RCC_RST_SR_STANDBY_RESET_SR = 0x00000001
	RCC_RST_SR_Msk              = 0x0000007F

	RCC_RST_CR_RESET_REQ_EN_Msk      = 0x0000003E
	RCC_RST_CR_IWDG_RESET_REQ_EN_Msk = 0x00000020
	RCC_RST_CR_WDG_RESET_REQ_EN_Msk  = 0x00000010
	RCC_RST_CR_EFC_RESET_REQ_EN_Msk  = 0x00000008
	RCC_RST_CR_CPU_RESET_REQ_EN_Msk  = 0x00000004
	RCC_RST_CR_SEC_RESET_REQ_EN_Msk  = 0x00000002
)

// SR: AON clock-gate completion. SR1: clock-enable sync flags.
const (
	RCC_SR_ALL_DONE                 = 0x0000003F
	RCC_SR_LPTIMER1_AON_CLK_EN_DONE = 0x00000020
	RCC_SR_LPTIMER0_AON_CLK_EN_DONE = 0x00000010
	RCC_SR_LCD_AON_CLK_EN_DONE      = 0x00000008
	RCC_SR_LPUART_AON_CLK_EN_DONE   = 0x00000004
	RCC_SR_RTC_AON_CLK_EN_DONE      = 0x00000002
	RCC_SR_IWDG_AON_CLK_EN_DONE     = 0x00000001

	RCC_SR1_LPTIMER1_CLK_EN_SYNC     = 0x00100000
	RCC_SR1_LPTIMER1_AON_CLK_EN_SYNC = 0x00080000
	RCC_SR1_UART0_CLK_EN_SYNC        = 0x00040000
	RCC_SR1_UART1_CLK_EN_SYNC        = 0x00020000
	RCC_SR1_UART2_CLK_EN_SYNC        = 0x00010000
	RCC_SR1_UART3_CLK_EN_SYNC        = 0x00008000
	RCC_SR1_SCC_CLK_EN_SYNC          = 0x00004000
	RCC_SR1_ADC_CLK_EN_SYNC          = 0x00002000
	RCC_SR1_LPTIMER0_CLK_EN_SYNC     = 0x00001000
	RCC_SR1_QSPI_CLK_EN_SYNC         = 0x00000800
	RCC_SR1_LPUART_CLK_EN_SYNC       = 0x00000400
	RCC_SR1_LCD_CLK_EN_SYNC          = 0x00000200
	RCC_SR1_IWDG_CLK_EN_SYNC         = 0x00000100
	RCC_SR1_RTC_CLK_EN_SYNC          = 0x00000080
	RCC_SR1_MCO_CLK_EN_SYNC          = 0x00000040
	RCC_SR1_I2S_CLK_EN_SYNC          = 0x00000020
	RCC_SR1_LPTIMER0_AON_CLK_EN_SYNC = 0x00000010
	RCC_SR1_LCD_AON_CLK_EN_SYNC      = 0x00000008
	RCC_SR1_LPUART_AON_CLK_EN_SYNC   = 0x00000004
	RCC_SR1_RTC_AON_CLK_EN_SYNC      = 0x00000002
	RCC_SR1_IWDG_AON_CLK_EN_SYNC     = 0x00000001
)
