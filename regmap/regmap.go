// Package regmap describes the ASR6601 (Tremo) memory map: base addresses,
// register block layouts and the named bitfields inside them.
//
// Each block is a Go struct whose uint32 fields follow hardware order, with
// reserved words kept as padding arrays. Register offsets are derived from the
// struct with unsafe.Offsetof so the struct is the single source of truth;
// load-bearing offsets are pinned by compile-time guards and by tests.
//
// Masks end in _Msk; values that belong to a mask share its prefix. Every
// value fits inside its mask.
package regmap

// Memory regions.
const (
	FLASH_BASE      uintptr = 0x08000000
	FLASH_INFO_BASE uintptr = 0x10000000
	SRAM_BASE       uintptr = 0x20000000
	RET_SRAM_BASE   uintptr = 0x30000000
	PERIPH_BASE     uintptr = 0x40000000
)

// Peripheral base addresses.
const (
	RCC_BASE    = PERIPH_BASE + 0x0000
	SYSCFG_BASE = PERIPH_BASE + 0x1000
	PWR_BASE    = PERIPH_BASE + 0x1800
	I2S_BASE    = PERIPH_BASE + 0x2000
	UART0_BASE  = PERIPH_BASE + 0x3000
	UART1_BASE  = PERIPH_BASE + 0x4000
	LPUART_BASE = PERIPH_BASE + 0x5000
	SSP0_BASE   = PERIPH_BASE + 0x6000
	I2C0_BASE   = PERIPH_BASE + 0x7000
	AFEC_BASE   = PERIPH_BASE + 0x8000
	LORAC_BASE  = PERIPH_BASE + 0x9000

	TIMER0_BASE   = PERIPH_BASE + 0xA000
	TIMER2_BASE   = PERIPH_BASE + 0xB000
	BSTIMER0_BASE = PERIPH_BASE + 0xC000
	LPTIMER0_BASE = PERIPH_BASE + 0xD000
	LPTIMER1_BASE = PERIPH_BASE + 0xD800
	RTC_BASE      = PERIPH_BASE + 0xE000
	SEC_BASE      = PERIPH_BASE + 0xF000

	UART2_BASE    = PERIPH_BASE + 0x10000
	UART3_BASE    = PERIPH_BASE + 0x11000
	SSP1_BASE     = PERIPH_BASE + 0x12000
	SSP2_BASE     = PERIPH_BASE + 0x13000
	I2C1_BASE     = PERIPH_BASE + 0x14000
	I2C2_BASE     = PERIPH_BASE + 0x15000
	ADC_BASE      = PERIPH_BASE + 0x17000
	LCD_BASE      = PERIPH_BASE + 0x18000
	DAC_BASE      = PERIPH_BASE + 0x19000
	TIMER1_BASE   = PERIPH_BASE + 0x1A000
	TIMER3_BASE   = PERIPH_BASE + 0x1B000
	BSTIMER1_BASE = PERIPH_BASE + 0x1C000
	IWDG_BASE     = PERIPH_BASE + 0x1D000
	WDG_BASE      = PERIPH_BASE + 0x1E000
	GPIO_BASE     = PERIPH_BASE + 0x1F000
	EFC_BASE      = PERIPH_BASE + 0x20000
	QSPI_BASE     = PERIPH_BASE + 0x21000
	CRC_BASE      = PERIPH_BASE + 0x22000

	GPIOA_BASE = GPIO_BASE
	GPIOB_BASE = GPIO_BASE + 0x400
	GPIOC_BASE = GPIO_BASE + 0x800
	GPIOD_BASE = GPIO_BASE + 0xC00
)
