package regmap

import "unsafe"

// GPIO_Type is one GPIO port. The four ports are 0x400 apart.
type GPIO_Type struct {
	OER        uint32
	OTYPER     uint32
	IER        uint32
	PER        uint32
	PSR        uint32
	IDR        uint32
	ODR        uint32
	BRR        uint32
	BSR        uint32
	DSR        uint32
	ICR        uint32
	IFR        uint32
	WUCR       uint32
	WULVL      uint32
	AFRL       uint32
	AFRH       uint32
	STOP3_WUCR uint32
}

const (
	GPIO_OER        = unsafe.Offsetof(GPIO_Type{}.OER)
	GPIO_OTYPER     = unsafe.Offsetof(GPIO_Type{}.OTYPER)
	GPIO_IER        = unsafe.Offsetof(GPIO_Type{}.IER)
	GPIO_PER        = unsafe.Offsetof(GPIO_Type{}.PER)
	GPIO_PSR        = unsafe.Offsetof(GPIO_Type{}.PSR)
	GPIO_IDR        = unsafe.Offsetof(GPIO_Type{}.IDR)
	GPIO_ODR        = unsafe.Offsetof(GPIO_Type{}.ODR)
	GPIO_BRR        = unsafe.Offsetof(GPIO_Type{}.BRR)
	GPIO_BSR        = unsafe.Offsetof(GPIO_Type{}.BSR)
	GPIO_DSR        = unsafe.Offsetof(GPIO_Type{}.DSR)
	GPIO_ICR        = unsafe.Offsetof(GPIO_Type{}.ICR)
	GPIO_IFR        = unsafe.Offsetof(GPIO_Type{}.IFR)
	GPIO_WUCR       = unsafe.Offsetof(GPIO_Type{}.WUCR)
	GPIO_WULVL      = unsafe.Offsetof(GPIO_Type{}.WULVL)
	GPIO_AFRL       = unsafe.Offsetof(GPIO_Type{}.AFRL)
	GPIO_AFRH       = unsafe.Offsetof(GPIO_Type{}.AFRH)
	GPIO_STOP3_WUCR = unsafe.Offsetof(GPIO_Type{}.STOP3_WUCR)
)

var _ = [1]struct{}{}[GPIO_STOP3_WUCR-0x40]

const (
	GPIO_PORT_STRIDE = 0x400
	GPIO_PINS        = 16

	// Interrupt trigger codes, two bits per pin in ICR.
	GPIO_ICR_Msk          = 0x3
	GPIO_ICR_NONE         = 0x0
	GPIO_ICR_RISING       = 0x1
	GPIO_ICR_FALLING      = 0x2
	GPIO_ICR_RISE_FALL    = 0x3
	GPIO_IFR_Msk          = 0x3
	GPIO_AFR_Msk          = 0xF
	GPIO_AFR_PORTD_HI_Msk = 0x7

	// STOP3_WUCR packs four 4-bit pin slots.
	GPIO_STOP3_WUCR_SLOT_Msk = 0xF
	GPIO_STOP3_WUCR_PIN_Msk  = 0x3
	GPIO_STOP3_WUCR_LVL_Msk  = 0x4
	GPIO_STOP3_WUCR_EN_Msk   = 0x8
)
