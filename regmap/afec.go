package regmap

import "unsafe"

// AFEC_Type is the digital status window of the analog front end. The analog
// trim registers themselves sit below it, one word per 8-bit analog address.
type AFEC_Type struct {
	CR     uint32
	INT_SR uint32
	RAW_SR uint32
}

const (
	AFEC_REG_BASE = AFEC_BASE + 0x200

	AFEC_CR     = unsafe.Offsetof(AFEC_Type{}.CR)
	AFEC_INT_SR = unsafe.Offsetof(AFEC_Type{}.INT_SR)
	AFEC_RAW_SR = unsafe.Offsetof(AFEC_Type{}.RAW_SR)

	AFEC_RAW_SR_RCO24M_READY_Msk = 0x00000004
	AFEC_RAW_SR_RCO4M_READY_Msk  = 0x80000000
)

// AnalogAddr maps an analog register number to its bus address.
func AnalogAddr(reg uint8) uintptr {
	return AFEC_BASE | uintptr(reg)<<2
}

// Analog registers and bits used by the oscillator controls.
const (
	ANA_REG_02 = 0x02
	ANA_REG_06 = 0x06

	ANA_02_RCO32K_PD_Msk   = 1 << 15
	ANA_02_XO32K_PD_Msk    = 1<<13 | 1<<14
	ANA_06_RCO48M_PD_Msk   = 1 << 5
	ANA_06_XO24M_EN_Msk    = 1 << 3
	ANA_06_XO24M_PD_Msk    = 1 << 4
	ANA_06_RCO4M_PD_Msk    = 1 << 6
	ANA_06_XO24M_STATE_Msk = ANA_06_XO24M_EN_Msk | ANA_06_XO24M_PD_Msk
)

// LORAC_Type is the sub-GHz radio controller wrapper: an SSP window to the
// radio core followed by its reset and crystal controls.
type LORAC_Type struct {
	SSP_CR0    uint32
	SSP_CR1    uint32
	SSP_DR     uint32
	SSP_SR     uint32
	SSP_CPSR   uint32
	SSP_IMSC   uint32
	SSP_RIS    uint32
	SSP_MIS    uint32
	SSP_ICR    uint32
	SSP_DMA_CR uint32
	_          [54]uint32
	CR0        uint32
	CR1        uint32
	SR         uint32
	NSS_CR     uint32
	SCK_CR     uint32
	MOSI_CR    uint32
	MISO_SR    uint32
}

const (
	LORAC_SSP_CR0 = unsafe.Offsetof(LORAC_Type{}.SSP_CR0)
	LORAC_SSP_SR  = unsafe.Offsetof(LORAC_Type{}.SSP_SR)
	LORAC_CR0     = unsafe.Offsetof(LORAC_Type{}.CR0)
	LORAC_CR1     = unsafe.Offsetof(LORAC_Type{}.CR1)
	LORAC_SR      = unsafe.Offsetof(LORAC_Type{}.SR)
	LORAC_NSS_CR  = unsafe.Offsetof(LORAC_Type{}.NSS_CR)
	LORAC_SCK_CR  = unsafe.Offsetof(LORAC_Type{}.SCK_CR)
	LORAC_MOSI_CR = unsafe.Offsetof(LORAC_Type{}.MOSI_CR)
	LORAC_MISO_SR = unsafe.Offsetof(LORAC_Type{}.MISO_SR)

	LORAC_CR1_XO32M_CFG_Msk = 0x20
	LORAC_CR1_XO32M_PD_Msk  = 0x80
	LORAC_CR1_XO32M_EN_Msk  = 0x04
	LORAC_SR_XO32M_READY    = 0x02
)

var (
	_ = [1]struct{}{}[LORAC_CR0-0x100]
	_ = [1]struct{}{}[LORAC_SR-0x108]
)
