package regmap

import (
	"strings"
	"unsafe"
)

// Register names one word inside a block.
type Register struct {
	Name   string
	Offset uintptr
}

// Block is a named peripheral instance and the registers worth inspecting.
type Block struct {
	Name string
	Base uintptr
	Size uintptr
	Regs []Register
}

// Reg finds a register by case-insensitive name.
func (b Block) Reg(name string) (Register, bool) {
	for _, r := range b.Regs {
		if strings.EqualFold(r.Name, name) {
			return r, true
		}
	}
	return Register{}, false
}

var (
	rccRegs = []Register{
		{"cr0", RCC_CR0}, {"cr1", RCC_CR1}, {"cr2", RCC_CR2},
		{"cgr0", RCC_CGR0}, {"cgr1", RCC_CGR1}, {"cgr2", RCC_CGR2},
		{"rst0", RCC_RST0}, {"rst1", RCC_RST1},
		{"rst_sr", RCC_RST_SR}, {"rst_cr", RCC_RST_CR},
		{"sr", RCC_SR}, {"sr1", RCC_SR1}, {"cr3", RCC_CR3},
	}
	gpioRegs = []Register{
		{"oer", GPIO_OER}, {"otyper", GPIO_OTYPER}, {"ier", GPIO_IER},
		{"per", GPIO_PER}, {"psr", GPIO_PSR}, {"idr", GPIO_IDR},
		{"odr", GPIO_ODR}, {"brr", GPIO_BRR}, {"bsr", GPIO_BSR},
		{"dsr", GPIO_DSR}, {"icr", GPIO_ICR}, {"ifr", GPIO_IFR},
		{"wucr", GPIO_WUCR}, {"wulvl", GPIO_WULVL},
		{"afrl", GPIO_AFRL}, {"afrh", GPIO_AFRH},
		{"stop3_wucr", GPIO_STOP3_WUCR},
	}
	uartRegs = []Register{
		{"dr", UART_DR}, {"rsc_ecr", UART_RSC_ECR}, {"fr", UART_FR},
		{"ilpr", UART_ILPR}, {"ibrd", UART_IBRD}, {"fbrd", UART_FBRD},
		{"lcr_h", UART_LCR_H}, {"cr", UART_CR}, {"ifls", UART_IFLS},
		{"imsc", UART_IMSC}, {"ris", UART_RIS}, {"mis", UART_MIS},
		{"icr", UART_ICR}, {"dmacr", UART_DMACR}, {"id0", UART_ID},
	}
	i2cRegs = []Register{
		{"cr", I2C_CR}, {"sr", I2C_SR}, {"sar", I2C_SAR}, {"dbr", I2C_DBR},
		{"lcr", I2C_LCR}, {"wcr", I2C_WCR}, {"bmr", I2C_BMR},
		{"wfifo_status", I2C_WFIFO_STATUS}, {"rfifo_status", I2C_RFIFO_STATUS},
	}
	afecRegs = []Register{
		{"cr", AFEC_CR}, {"int_sr", AFEC_INT_SR}, {"raw_sr", AFEC_RAW_SR},
	}
	loracRegs = []Register{
		{"ssp_cr0", LORAC_SSP_CR0}, {"ssp_sr", LORAC_SSP_SR},
		{"cr0", LORAC_CR0}, {"cr1", LORAC_CR1}, {"sr", LORAC_SR},
		{"nss_cr", LORAC_NSS_CR}, {"sck_cr", LORAC_SCK_CR},
		{"mosi_cr", LORAC_MOSI_CR}, {"miso_sr", LORAC_MISO_SR},
	}
	pwrRegs = []Register{
		{"cr0", PWR_CR0}, {"cr1", PWR_CR1}, {"sr0", PWR_SR0}, {"sr1", PWR_SR1},
		{"cr2", PWR_CR2}, {"cr3", PWR_CR3}, {"cr4", PWR_CR4}, {"cr5", PWR_CR5},
	}
	rtcRegs = []Register{
		{"ctrl", RTC_CTRL}, {"calendar", RTC_CALENDAR},
		{"calendar_h", RTC_CALENDAR_H}, {"sr", RTC_SR}, {"sr1", RTC_SR1},
		{"calendar_r", RTC_CALENDAR_R}, {"calendar_r_h", RTC_CALENDAR_R_H},
	}
	iwdgRegs = []Register{
		{"cr", IWDG_CR}, {"max", IWDG_MAX}, {"win", IWDG_WIN}, {"sr", IWDG_SR},
		{"sr1", IWDG_SR1}, {"cr1", IWDG_CR1}, {"sr2", IWDG_SR2},
	}
	wdgRegs = []Register{
		{"load", WDG_LOAD}, {"value", WDG_VALUE}, {"control", WDG_CONTROL},
		{"ris", WDG_RIS}, {"mis", WDG_MIS}, {"lock", WDG_LOCK},
		{"periphid0", WDG_PERIPHID0},
	}
	efcRegs = []Register{
		{"cr", EFC_CR}, {"sr", EFC_SR}, {"timing_cfg", EFC_TIMING_CFG},
		{"chip_pattern", EFC_CHIP_PATTERN}, {"sn_l", EFC_SN_L}, {"sn_h", EFC_SN_H},
	}
	crcRegs = []Register{
		{"cr", CRC_CR}, {"dr", CRC_DR}, {"init", CRC_INIT}, {"poly", CRC_POLY},
	}
	timerRegs = []Register{
		{"cr1", TIMER_CR1}, {"dier", TIMER_DIER}, {"sr", TIMER_SR},
		{"egr", TIMER_EGR}, {"cnt", TIMER_CNT}, {"psc", TIMER_PSC},
		{"arr", TIMER_ARR}, {"ccr0", TIMER_CCR0}, {"or", TIMER_OR},
	}
	lptimerRegs = []Register{
		{"isr", LPTIMER_ISR}, {"cfgr", LPTIMER_CFGR}, {"cr", LPTIMER_CR},
		{"cmp", LPTIMER_CMP}, {"arr", LPTIMER_ARR}, {"cnt", LPTIMER_CNT},
	}
	sspRegs = []Register{
		{"cr0", SSP_CR0}, {"cr1", SSP_CR1}, {"dr", SSP_DR}, {"sr", SSP_SR},
		{"cpsr", SSP_CPSR}, {"periph_id0", SSP_PERIPH_ID0},
	}
	adcRegs = []Register{
		{"cr", ADC_CR}, {"cfgr", ADC_CFGR}, {"isr", ADC_ISR}, {"dr", ADC_DR},
	}
)

// Blocks lists the inspectable peripheral instances in address order.
var Blocks = []Block{
	{"rcc", RCC_BASE, unsafe.Sizeof(RCC_Type{}), rccRegs},
	{"pwr", PWR_BASE, unsafe.Sizeof(PWR_Type{}), pwrRegs},
	{"uart0", UART0_BASE, unsafe.Sizeof(UART_Type{}), uartRegs},
	{"uart1", UART1_BASE, unsafe.Sizeof(UART_Type{}), uartRegs},
	{"ssp0", SSP0_BASE, unsafe.Sizeof(SSP_Type{}), sspRegs},
	{"i2c0", I2C0_BASE, unsafe.Sizeof(I2C_Type{}), i2cRegs},
	{"afec", AFEC_REG_BASE, unsafe.Sizeof(AFEC_Type{}), afecRegs},
	{"lorac", LORAC_BASE, unsafe.Sizeof(LORAC_Type{}), loracRegs},
	{"timer0", TIMER0_BASE, unsafe.Sizeof(TIMER_Type{}), timerRegs},
	{"lptimer0", LPTIMER0_BASE, unsafe.Sizeof(LPTIMER_Type{}), lptimerRegs},
	{"lptimer1", LPTIMER1_BASE, unsafe.Sizeof(LPTIMER_Type{}), lptimerRegs},
	{"rtc", RTC_BASE, unsafe.Sizeof(RTC_Type{}), rtcRegs},
	{"uart2", UART2_BASE, unsafe.Sizeof(UART_Type{}), uartRegs},
	{"uart3", UART3_BASE, unsafe.Sizeof(UART_Type{}), uartRegs},
	{"i2c1", I2C1_BASE, unsafe.Sizeof(I2C_Type{}), i2cRegs},
	{"i2c2", I2C2_BASE, unsafe.Sizeof(I2C_Type{}), i2cRegs},
	{"adc", ADC_BASE, unsafe.Sizeof(ADC_Type{}), adcRegs},
	{"iwdg", IWDG_BASE, unsafe.Sizeof(IWDG_Type{}), iwdgRegs},
	{"wdg", WDG_BASE, unsafe.Sizeof(WDG_Type{}), wdgRegs},
	{"gpioa", GPIOA_BASE, unsafe.Sizeof(GPIO_Type{}), gpioRegs},
	{"gpiob", GPIOB_BASE, unsafe.Sizeof(GPIO_Type{}), gpioRegs},
	{"gpioc", GPIOC_BASE, unsafe.Sizeof(GPIO_Type{}), gpioRegs},
	{"gpiod", GPIOD_BASE, unsafe.Sizeof(GPIO_Type{}), gpioRegs},
	{"efc", EFC_BASE, unsafe.Sizeof(EFC_Type{}), efcRegs},
	{"crc", CRC_BASE, unsafe.Sizeof(CRC_Type{}), crcRegs},
}

// FindBlock looks up a block by case-insensitive name.
func FindBlock(name string) (Block, bool) {
	for _, b := range Blocks {
		if strings.EqualFold(b.Name, name) {
			return b, true
		}
	}
	return Block{}, false
}

// Lookup resolves "block", "reg" to an absolute address.
func Lookup(block, reg string) (uintptr, bool) {
	b, ok := FindBlock(block)
	if !ok {
		return 0, false
	}
	r, ok := b.Reg(reg)
	if !ok {
		return 0, false
	}
	return b.Base + r.Offset, true
}
