package regmap

import "unsafe"

// ADC_Type is the SAR ADC.
type ADC_Type struct {
	CR        uint32
	CFGR      uint32
	SEQR0     uint32
	SEQR1     uint32
	DIFFSEL   uint32
	ISR       uint32
	IER       uint32
	DR        uint32
	AWD0_CFGR uint32
	AWD1_CFGR uint32
	AWD2_CFGR uint32
}

const (
	ADC_CR   = unsafe.Offsetof(ADC_Type{}.CR)
	ADC_CFGR = unsafe.Offsetof(ADC_Type{}.CFGR)
	ADC_ISR  = unsafe.Offsetof(ADC_Type{}.ISR)
	ADC_DR   = unsafe.Offsetof(ADC_Type{}.DR)
)

// DAC_Type is the DAC.
type DAC_Type struct {
	CR      uint32
	SWTRIGR uint32
	DHR     uint32
	DOR     uint32
	SR      uint32
}

const (
	DAC_CR  = unsafe.Offsetof(DAC_Type{}.CR)
	DAC_DHR = unsafe.Offsetof(DAC_Type{}.DHR)
	DAC_DOR = unsafe.Offsetof(DAC_Type{}.DOR)
	DAC_SR  = unsafe.Offsetof(DAC_Type{}.SR)

	DAC_CR_INTR_EMPTY_EN_Msk     = 0x00010000
	DAC_CR_INTR_UNDERFLOW_EN_Msk = 0x00008000
	DAC_CR_DMA_EN_Msk            = 0x00004000
	DAC_CR_MASK_AMP_SEL_Msk      = 0x00003C00
	DAC_CR_MASK_AMP_SEL_1        = 0x00000000
	DAC_CR_MASK_AMP_SEL_3        = 0x00000400
	DAC_CR_MASK_AMP_SEL_7        = 0x00000800
	DAC_CR_MASK_AMP_SEL_15       = 0x00000C00
	DAC_CR_MASK_AMP_SEL_31       = 0x00001000
)

// LCD_Type is the segment LCD controller.
type LCD_Type struct {
	CR0 uint32
	CR1 uint32
	DR  [8]uint32
	SR  uint32
	CR2 uint32
}

const (
	LCD_CR0 = unsafe.Offsetof(LCD_Type{}.CR0)
	LCD_CR1 = unsafe.Offsetof(LCD_Type{}.CR1)
	LCD_DR  = unsafe.Offsetof(LCD_Type{}.DR)
	LCD_SR  = unsafe.Offsetof(LCD_Type{}.SR)
	LCD_CR2 = unsafe.Offsetof(LCD_Type{}.CR2)
)

var _ = [1]struct{}{}[LCD_CR2-0x2C]
