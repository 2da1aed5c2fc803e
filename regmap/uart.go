package regmap

import "unsafe"

// UART_Type is the PL011-style UART block shared by UART0..UART3.
type UART_Type struct {
	DR      uint32
	RSC_ECR uint32
	_       [4]uint32
	FR      uint32
	_       uint32
	ILPR    uint32
	IBRD    uint32
	FBRD    uint32
	LCR_H   uint32
	CR      uint32
	IFLS    uint32
	IMSC    uint32
	RIS     uint32
	MIS     uint32
	ICR     uint32
	DMACR   uint32
	_       [997]uint32
	ID      [8]uint32
}

const (
	UART_DR      = unsafe.Offsetof(UART_Type{}.DR)
	UART_RSC_ECR = unsafe.Offsetof(UART_Type{}.RSC_ECR)
	UART_FR      = unsafe.Offsetof(UART_Type{}.FR)
	UART_ILPR    = unsafe.Offsetof(UART_Type{}.ILPR)
	UART_IBRD    = unsafe.Offsetof(UART_Type{}.IBRD)
	UART_FBRD    = unsafe.Offsetof(UART_Type{}.FBRD)
	UART_LCR_H   = unsafe.Offsetof(UART_Type{}.LCR_H)
	UART_CR      = unsafe.Offsetof(UART_Type{}.CR)
	UART_IFLS    = unsafe.Offsetof(UART_Type{}.IFLS)
	UART_IMSC    = unsafe.Offsetof(UART_Type{}.IMSC)
	UART_RIS     = unsafe.Offsetof(UART_Type{}.RIS)
	UART_MIS     = unsafe.Offsetof(UART_Type{}.MIS)
	UART_ICR     = unsafe.Offsetof(UART_Type{}.ICR)
	UART_DMACR   = unsafe.Offsetof(UART_Type{}.DMACR)
	UART_ID      = unsafe.Offsetof(UART_Type{}.ID)
)

var (
	_ = [1]struct{}{}[UART_FR-0x18]
	_ = [1]struct{}{}[UART_IBRD-0x24]
	_ = [1]struct{}{}[UART_FBRD-0x28]
	_ = [1]struct{}{}[UART_CR-0x30]
	_ = [1]struct{}{}[UART_DMACR-0x48]
	_ = [1]struct{}{}[UART_ID-0xFE0]
)

// FR
const (
	UART_FR_TXFE = 0x80
	UART_FR_RXFF = 0x40
	UART_FR_TXFF = 0x20
	UART_FR_RXFE = 0x10
	UART_FR_BUSY = 0x08
	UART_FR_Msk  = 0xF8
)

// CR
const (
	UART_CR_UART_EN_Msk = 0x0001
	UART_CR_SIR_EN_Msk  = 0x0002
	UART_CR_SIR_LP_Msk  = 0x0004

	UART_CR_UART_MODE_Msk  = 0x0030
	UART_CR_UART_MODE_TX   = 0x0010
	UART_CR_UART_MODE_RX   = 0x0020
	UART_CR_UART_MODE_TXRX = 0x0030

	UART_CR_FLOW_CTRL_Msk     = 0xC000
	UART_CR_FLOW_CTRL_NONE    = 0x0000
	UART_CR_FLOW_CTRL_RTS     = 0x4000
	UART_CR_FLOW_CTRL_CTS     = 0x8000
	UART_CR_FLOW_CTRL_CTS_RTS = 0xC000
)

// LCR_H
const (
	UART_LCR_H_PEN_Msk  = 0x02
	UART_LCR_H_EPS_Msk  = 0x04
	UART_LCR_H_STOP_Msk = 0x08
	UART_LCR_H_STOP_1   = 0x00
	UART_LCR_H_STOP_2   = 0x08
	UART_LCR_H_FEN_Msk  = 0x10

	UART_LCR_H_WLEN_Msk = 0x60
	UART_LCR_H_WLEN_5   = 0x00
	UART_LCR_H_WLEN_6   = 0x20
	UART_LCR_H_WLEN_7   = 0x40
	UART_LCR_H_WLEN_8   = 0x60
)

// IFLS
const (
	UART_IFLS_TX_Msk = 0x07
	UART_IFLS_TX_1_8 = 0x00
	UART_IFLS_TX_1_4 = 0x01
	UART_IFLS_TX_1_2 = 0x02
	UART_IFLS_TX_3_4 = 0x03
	UART_IFLS_TX_7_8 = 0x04

	UART_IFLS_RX_Msk = 0x38
	UART_IFLS_RX_1_8 = 0x00
	UART_IFLS_RX_1_4 = 0x08
	UART_IFLS_RX_1_2 = 0x10
	UART_IFLS_RX_3_4 = 0x18
	UART_IFLS_RX_7_8 = 0x20
)

// Interrupt bits, shared by IMSC/RIS/MIS/ICR.
const (
	UART_INT_RX      = 0x010
	UART_INT_TX      = 0x020
	UART_INT_RX_TIMO = 0x040
	UART_INT_FE      = 0x080
	UART_INT_PE      = 0x100
	UART_INT_BE      = 0x200
	UART_INT_OE      = 0x400
	UART_INT_Msk     = 0x7F0
)

// DMACR
const (
	UART_DMACR_ONERR_EN_Msk = 0x04
	UART_DMACR_TX_EN_Msk    = 0x02
	UART_DMACR_RX_EN_Msk    = 0x01
)

// Baud divisor layout: integer part in the high half, 6-bit fraction below.
const (
	UART_IBRD_Msk = 0xFFFF
	UART_FBRD_Msk = 0x3F
)
