package regmap

import "unsafe"

// SYSCFG_Type holds the system configuration words.
type SYSCFG_Type struct {
	CR0  uint32
	CR1  uint32
	CR2  uint32
	CR3  uint32
	CR4  uint32
	CR5  uint32
	CR6  uint32
	CR7  uint32
	CR8  uint32
	CR9  uint32
	CR10 uint32
}

const (
	SYSCFG_CR0  = unsafe.Offsetof(SYSCFG_Type{}.CR0)
	SYSCFG_CR10 = unsafe.Offsetof(SYSCFG_Type{}.CR10)
)

// PWR_Type is the power controller.
type PWR_Type struct {
	CR0 uint32
	CR1 uint32
	SR0 uint32
	SR1 uint32
	CR2 uint32
	CR3 uint32
	CR4 uint32
	CR5 uint32
}

const (
	PWR_CR0 = unsafe.Offsetof(PWR_Type{}.CR0)
	PWR_CR1 = unsafe.Offsetof(PWR_Type{}.CR1)
	PWR_SR0 = unsafe.Offsetof(PWR_Type{}.SR0)
	PWR_SR1 = unsafe.Offsetof(PWR_Type{}.SR1)
	PWR_CR2 = unsafe.Offsetof(PWR_Type{}.CR2)
	PWR_CR3 = unsafe.Offsetof(PWR_Type{}.CR3)
	PWR_CR4 = unsafe.Offsetof(PWR_Type{}.CR4)
	PWR_CR5 = unsafe.Offsetof(PWR_Type{}.CR5)
)

// EFC_Type is the embedded flash controller.
type EFC_Type struct {
	CR                uint32
	INT_EN            uint32
	SR                uint32
	PROGRAM_DATA0     uint32
	PROGRAM_DATA1     uint32
	TIMING_CFG        uint32
	PROTECT_SEQ       uint32
	_                 uint32
	CHIP_PATTERN      uint32
	IP_TRIM_L         uint32
	IP_TRIM_H         uint32
	SN_L              uint32
	SN_H              uint32
	TEST_INFO_L       uint32
	TEST_INFO_H       uint32
	OPTION_CSR_BYTES  uint32
	OPTION_E0_BYTES   uint32
	OPTION_WP_BYTES   uint32
	OPTION_SEC_BYTES0 uint32
	OPTION_SEC_BYTES1 uint32
}

const (
	EFC_CR           = unsafe.Offsetof(EFC_Type{}.CR)
	EFC_SR           = unsafe.Offsetof(EFC_Type{}.SR)
	EFC_TIMING_CFG   = unsafe.Offsetof(EFC_Type{}.TIMING_CFG)
	EFC_CHIP_PATTERN = unsafe.Offsetof(EFC_Type{}.CHIP_PATTERN)
	EFC_SN_L         = unsafe.Offsetof(EFC_Type{}.SN_L)
	EFC_SN_H         = unsafe.Offsetof(EFC_Type{}.SN_H)

	EFC_CR_INFO_LOAD_Msk        = 0x80000000
	EFC_CR_ECC_DISABLE_Msk      = 0x00000200
	EFC_CR_OPTION_OP_EN_Msk     = 0x00000100
	EFC_CR_FACTORY_OP_EN_Msk    = 0x00000080
	EFC_CR_WRITE_RELEASE_EN_Msk = 0x00000040
	EFC_CR_PREFETCH_EN_Msk      = 0x00000020
	EFC_CR_READ_ACC_EN_Msk      = 0x00000010
	EFC_CR_PROG_MODE_Msk        = 0x00000008
	EFC_CR_PROG_MODE_DWORD      = 0x00000000
	EFC_CR_PROG_MODE_WLINE      = 0x00000008
	EFC_CR_PROG_EN_Msk          = 0x00000004
	EFC_CR_PAGE_ERASE_EN_Msk    = 0x00000002
	EFC_CR_MASS_ERASE_EN_Msk    = 0x00000001
	EFC_TIMING_CFG_READ_NUM_Msk = 0x000F0000
	EFC_SR_OPTION_WRITE_ERROR   = 0x00000010
	EFC_SR_PROGRAM_DATA_WAIT    = 0x00000004
	EFC_SR_READ_NUM_DONE        = 0x00000002
	EFC_SR_OPERATION_DONE       = 0x00000001
)

var _ = [1]struct{}{}[EFC_SN_L-0x2C]

// CRC_Type is the CRC calculation unit.
type CRC_Type struct {
	CR   uint32
	DR   uint32
	INIT uint32
	POLY uint32
}

const (
	CRC_CR   = unsafe.Offsetof(CRC_Type{}.CR)
	CRC_DR   = unsafe.Offsetof(CRC_Type{}.DR)
	CRC_INIT = unsafe.Offsetof(CRC_Type{}.INIT)
	CRC_POLY = unsafe.Offsetof(CRC_Type{}.POLY)

	CRC_CR_CALC_FLAG = 0x40
	CRC_CR_CALC_INIT = 0x20

	CRC_CR_POLY_SIZE_Msk = 0x18
	CRC_CR_POLY_SIZE_7   = 0x18
	CRC_CR_POLY_SIZE_8   = 0x10
	CRC_CR_POLY_SIZE_16  = 0x08
	CRC_CR_POLY_SIZE_32  = 0x00

	CRC_CR_REVERSE_IN_Msk   = 0x06
	CRC_CR_REVERSE_IN_NONE  = 0x00
	CRC_CR_REVERSE_IN_BYTE  = 0x02
	CRC_CR_REVERSE_IN_HWORD = 0x04
	CRC_CR_REVERSE_IN_WORD  = 0x06

	CRC_CR_REVERSE_OUT_EN = 0x01
)

// SEC_Type is the security monitor.
type SEC_Type struct {
	INT     uint32
	RST     uint32
	SR      uint32
	FILTER0 uint32
	FILTER1 uint32
	FILTER2 uint32
	FILTER3 uint32
}

const (
	SEC_INT = unsafe.Offsetof(SEC_Type{}.INT)
	SEC_SR  = unsafe.Offsetof(SEC_Type{}.SR)
)

// RTC_Type is the real-time clock and calendar.
type RTC_Type struct {
	CTRL             uint32
	ALARM0           uint32
	ALARM1           uint32
	PPM_ADJUST       uint32
	CALENDAR         uint32
	CALENDAR_H       uint32
	CYC_MAX          uint32
	SR               uint32
	ASYN_DATA        uint32
	ASYN_DATA_H      uint32
	CR1              uint32
	SR1              uint32
	CR2              uint32
	SUB_SECOND_CNT   uint32
	CYC_CNT          uint32
	ALARM0_SUBSECOND uint32
	ALARM1_SUBSECOND uint32
	CALENDAR_R       uint32
	CALENDAR_R_H     uint32
}

const (
	RTC_CTRL         = unsafe.Offsetof(RTC_Type{}.CTRL)
	RTC_CALENDAR     = unsafe.Offsetof(RTC_Type{}.CALENDAR)
	RTC_CALENDAR_H   = unsafe.Offsetof(RTC_Type{}.CALENDAR_H)
	RTC_SR           = unsafe.Offsetof(RTC_Type{}.SR)
	RTC_SR1          = unsafe.Offsetof(RTC_Type{}.SR1)
	RTC_CALENDAR_R   = unsafe.Offsetof(RTC_Type{}.CALENDAR_R)
	RTC_CALENDAR_R_H = unsafe.Offsetof(RTC_Type{}.CALENDAR_R_H)
)

var _ = [1]struct{}{}[RTC_CALENDAR_R_H-0x48]

// IWDG_Type is the independent watchdog.
type IWDG_Type struct {
	CR  uint32
	MAX uint32
	WIN uint32
	SR  uint32
	SR1 uint32
	CR1 uint32
	SR2 uint32
}

const (
	IWDG_CR  = unsafe.Offsetof(IWDG_Type{}.CR)
	IWDG_MAX = unsafe.Offsetof(IWDG_Type{}.MAX)
	IWDG_WIN = unsafe.Offsetof(IWDG_Type{}.WIN)
	IWDG_SR  = unsafe.Offsetof(IWDG_Type{}.SR)
	IWDG_SR1 = unsafe.Offsetof(IWDG_Type{}.SR1)
	IWDG_CR1 = unsafe.Offsetof(IWDG_Type{}.CR1)
	IWDG_SR2 = unsafe.Offsetof(IWDG_Type{}.SR2)

	IWDG_CR_RSTEN_Msk  = 0x20
	IWDG_CR_WKEN_Msk   = 0x10
	IWDG_CR_PREDIV_Msk = 0x0E
	IWDG_CR_PREDIV_4   = 0x00
	IWDG_CR_PREDIV_8   = 0x02
	IWDG_CR_PREDIV_16  = 0x04
	IWDG_CR_PREDIV_32  = 0x06
	IWDG_CR_PREDIV_64  = 0x08
	IWDG_CR_PREDIV_128 = 0x0A
	IWDG_CR_PREDIV_256 = 0x0C
	IWDG_CR_START_Msk  = 0x01

	IWDG_SR_WRITE_SR2_DONE = 0x08
	IWDG_SR_WIN_SET_DONE   = 0x04
	IWDG_SR_MAX_SET_DONE   = 0x02
	IWDG_SR_WRITE_CR_DONE  = 0x01

	IWDG_SR1_RESET_REQ_SYNC = 0x1000

	IWDG_CR1_RESET_REQ_RST_EN_Msk = 0x02
	IWDG_CR1_RESET_REQ_INT_EN_Msk = 0x01
	IWDG_SR2_RESET_REQ_SR_Msk     = 0x01
)

// WDG_Type is the windowed watchdog (SP805 layout).
type WDG_Type struct {
	LOAD      uint32
	VALUE     uint32
	CONTROL   uint32
	INTCLR    uint32
	RIS       uint32
	MIS       uint32
	_         [0x2FA]uint32
	LOCK      uint32
	_         [0xBF]uint32
	ITCR      uint32
	ITOP      uint32
	_         [0x32]uint32
	PERIPHID4 uint32
	PERIPHID5 uint32
	PERIPHID6 uint32
	PERIPHID7 uint32
	PERIPHID0 uint32
	PERIPHID1 uint32
	PERIPHID2 uint32
	PERIPHID3 uint32
	PCELLID0  uint32
	PCELLID1  uint32
	PCELLID2  uint32
	PCELLID3  uint32
}

const (
	WDG_LOAD      = unsafe.Offsetof(WDG_Type{}.LOAD)
	WDG_VALUE     = unsafe.Offsetof(WDG_Type{}.VALUE)
	WDG_CONTROL   = unsafe.Offsetof(WDG_Type{}.CONTROL)
	WDG_INTCLR    = unsafe.Offsetof(WDG_Type{}.INTCLR)
	WDG_RIS       = unsafe.Offsetof(WDG_Type{}.RIS)
	WDG_MIS       = unsafe.Offsetof(WDG_Type{}.MIS)
	WDG_LOCK      = unsafe.Offsetof(WDG_Type{}.LOCK)
	WDG_ITCR      = unsafe.Offsetof(WDG_Type{}.ITCR)
	WDG_ITOP      = unsafe.Offsetof(WDG_Type{}.ITOP)
	WDG_PERIPHID4 = unsafe.Offsetof(WDG_Type{}.PERIPHID4)
	WDG_PERIPHID0 = unsafe.Offsetof(WDG_Type{}.PERIPHID0)
	WDG_PCELLID0  = unsafe.Offsetof(WDG_Type{}.PCELLID0)
)

var (
	_ = [1]struct{}{}[WDG_LOCK-0xC00]
	_ = [1]struct{}{}[WDG_ITCR-0xF00]
	_ = [1]struct{}{}[WDG_PERIPHID0-0xFE0]
)
