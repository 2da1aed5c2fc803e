package regmap

// External interrupt numbers (NVIC lines).
const (
	IRQ_SEC      = 0
	IRQ_RTC      = 1
	IRQ_WDG      = 2
	IRQ_EFC      = 3
	IRQ_UART3    = 4
	IRQ_I2C2     = 5
	IRQ_UART0    = 6
	IRQ_UART1    = 7
	IRQ_UART2    = 8
	IRQ_LPUART   = 9
	IRQ_SSP0     = 10
	IRQ_SSP1     = 11
	IRQ_QSPI     = 12
	IRQ_I2C0     = 13
	IRQ_I2C1     = 14
	IRQ_SCC      = 15
	IRQ_ADC      = 16
	IRQ_AFEC     = 17
	IRQ_SSP2     = 18
	IRQ_DMA1     = 19
	IRQ_DAC      = 20
	IRQ_LORA     = 21
	IRQ_GPIO     = 22
	IRQ_TIMER0   = 23
	IRQ_TIMER1   = 24
	IRQ_TIMER2   = 25
	IRQ_TIMER3   = 26
	IRQ_BSTIMER0 = 27
	IRQ_BSTIMER1 = 28
	IRQ_LPTIMER0 = 29
	IRQ_SAC      = 30
	IRQ_DMA0     = 31
	IRQ_I2S      = 32
	IRQ_LCD      = 33
	IRQ_PWR      = 34
	IRQ_LPTIMER1 = 35
	IRQ_IWDG     = 36
)
