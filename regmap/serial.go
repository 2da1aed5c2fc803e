package regmap

import "unsafe"

// SSP_Type is a PL022-style synchronous serial port.
type SSP_Type struct {
	CR0        uint32
	CR1        uint32
	DR         uint32
	SR         uint32
	CPSR       uint32
	IMSC       uint32
	RIS        uint32
	MIS        uint32
	ICR        uint32
	DMA_CR     uint32
	_          [1006]uint32
	PERIPH_ID0 uint32
	PERIPH_ID1 uint32
	PERIPH_ID2 uint32
	PERIPH_ID3 uint32
	PCELL_ID0  uint32
	PCELL_ID1  uint32
	PCELL_ID2  uint32
	PCELL_ID3  uint32
}

const (
	SSP_CR0        = unsafe.Offsetof(SSP_Type{}.CR0)
	SSP_CR1        = unsafe.Offsetof(SSP_Type{}.CR1)
	SSP_DR         = unsafe.Offsetof(SSP_Type{}.DR)
	SSP_SR         = unsafe.Offsetof(SSP_Type{}.SR)
	SSP_CPSR       = unsafe.Offsetof(SSP_Type{}.CPSR)
	SSP_DMA_CR     = unsafe.Offsetof(SSP_Type{}.DMA_CR)
	SSP_PERIPH_ID0 = unsafe.Offsetof(SSP_Type{}.PERIPH_ID0)
	SSP_PCELL_ID0  = unsafe.Offsetof(SSP_Type{}.PCELL_ID0)

	SSP_NUM_PORTS = 3
)

var _ = [1]struct{}{}[SSP_PERIPH_ID0-0xFE0]

// LPUART_Type is the low-power UART.
type LPUART_Type struct {
	CR0  uint32
	CR1  uint32
	SR0  uint32
	SR1  uint32
	DATA uint32
}

const (
	LPUART_CR0  = unsafe.Offsetof(LPUART_Type{}.CR0)
	LPUART_CR1  = unsafe.Offsetof(LPUART_Type{}.CR1)
	LPUART_SR0  = unsafe.Offsetof(LPUART_Type{}.SR0)
	LPUART_SR1  = unsafe.Offsetof(LPUART_Type{}.SR1)
	LPUART_DATA = unsafe.Offsetof(LPUART_Type{}.DATA)
)

// I2S_Type is the I2S controller.
type I2S_Type struct {
	IER          uint32
	IRER         uint32
	ITER         uint32
	CER          uint32
	CCR          uint32
	RXFFR        uint32
	TXFFR        uint32
	_            uint32
	LRBR_LTHR    uint32
	RRBR_RTHR    uint32
	RER          uint32
	TER          uint32
	RCR          uint32
	TCR          uint32
	ISR          uint32
	IMR          uint32
	ROR          uint32
	TOR          uint32
	RFCR         uint32
	TFCR         uint32
	RFF          uint32
	TFF          uint32
	_            [0x5A]uint32
	RXDMA        uint32
	RRXDMA       uint32
	TXDMA        uint32
	RTXDMA       uint32
	_            [8]uint32
	COMP_PARAM_2 uint32
	COMP_PARAM_1 uint32
	COMP_VERSION uint32
	COMP_TYPE    uint32
}

const (
	I2S_IER          = unsafe.Offsetof(I2S_Type{}.IER)
	I2S_CER          = unsafe.Offsetof(I2S_Type{}.CER)
	I2S_CCR          = unsafe.Offsetof(I2S_Type{}.CCR)
	I2S_ISR          = unsafe.Offsetof(I2S_Type{}.ISR)
	I2S_TFF          = unsafe.Offsetof(I2S_Type{}.TFF)
	I2S_RXDMA        = unsafe.Offsetof(I2S_Type{}.RXDMA)
	I2S_TXDMA        = unsafe.Offsetof(I2S_Type{}.TXDMA)
	I2S_COMP_PARAM_2 = unsafe.Offsetof(I2S_Type{}.COMP_PARAM_2)
	I2S_COMP_TYPE    = unsafe.Offsetof(I2S_Type{}.COMP_TYPE)
)

var (
	_ = [1]struct{}{}[I2S_RXDMA-0x1C0]
	_ = [1]struct{}{}[I2S_COMP_PARAM_2-0x1F0]
)

// QSPI_Type is the quad-SPI flash interface.
type QSPI_Type struct {
	CR         uint32
	DCR        uint32
	SR         uint32
	FCR        uint32
	DLR        uint32
	CCR        uint32
	AR         uint32
	ABR        uint32
	DR         uint32
	PSMKR      uint32
	PSMAR      uint32
	PIR        uint32
	TOR        uint32
	_          [19]uint32
	HIT0R      uint32
	HIT1R      uint32
	MIR        uint32
	CFGR       uint32
	SBUS_START uint32
}

const (
	QSPI_CR         = unsafe.Offsetof(QSPI_Type{}.CR)
	QSPI_SR         = unsafe.Offsetof(QSPI_Type{}.SR)
	QSPI_CCR        = unsafe.Offsetof(QSPI_Type{}.CCR)
	QSPI_HIT0R      = unsafe.Offsetof(QSPI_Type{}.HIT0R)
	QSPI_SBUS_START = unsafe.Offsetof(QSPI_Type{}.SBUS_START)
)

var _ = [1]struct{}{}[QSPI_HIT0R-0x80]
