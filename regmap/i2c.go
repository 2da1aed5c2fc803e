package regmap

import "unsafe"

// I2C_Type is the TWSI controller.
type I2C_Type struct {
	CR           uint32
	SR           uint32
	SAR          uint32
	DBR          uint32
	LCR          uint32
	WCR          uint32
	RST_CYCL     uint32
	BMR          uint32
	WFIFO        uint32
	WFIFO_WPTR   uint32
	WFIFO_RPTR   uint32
	RFIFO        uint32
	RFIFO_WPTR   uint32
	RFIFO_RPTR   uint32
	_            [2]uint32
	WFIFO_STATUS uint32
	RFIFO_STATUS uint32
}

const (
	I2C_CR           = unsafe.Offsetof(I2C_Type{}.CR)
	I2C_SR           = unsafe.Offsetof(I2C_Type{}.SR)
	I2C_SAR          = unsafe.Offsetof(I2C_Type{}.SAR)
	I2C_DBR          = unsafe.Offsetof(I2C_Type{}.DBR)
	I2C_LCR          = unsafe.Offsetof(I2C_Type{}.LCR)
	I2C_WCR          = unsafe.Offsetof(I2C_Type{}.WCR)
	I2C_RST_CYCL     = unsafe.Offsetof(I2C_Type{}.RST_CYCL)
	I2C_BMR          = unsafe.Offsetof(I2C_Type{}.BMR)
	I2C_WFIFO        = unsafe.Offsetof(I2C_Type{}.WFIFO)
	I2C_WFIFO_WPTR   = unsafe.Offsetof(I2C_Type{}.WFIFO_WPTR)
	I2C_WFIFO_RPTR   = unsafe.Offsetof(I2C_Type{}.WFIFO_RPTR)
	I2C_RFIFO        = unsafe.Offsetof(I2C_Type{}.RFIFO)
	I2C_RFIFO_WPTR   = unsafe.Offsetof(I2C_Type{}.RFIFO_WPTR)
	I2C_RFIFO_RPTR   = unsafe.Offsetof(I2C_Type{}.RFIFO_RPTR)
	I2C_WFIFO_STATUS = unsafe.Offsetof(I2C_Type{}.WFIFO_STATUS)
	I2C_RFIFO_STATUS = unsafe.Offsetof(I2C_Type{}.RFIFO_STATUS)
)

var _ = [1]struct{}{}[I2C_RFIFO_STATUS-0x44]

// CR
const (
	I2C_CR_RFIFO_OVERRUN_INTR_EN   = 0x80000000
	I2C_CR_RFIFO_FULL_INTR_EN      = 0x40000000
	I2C_CR_RFIFO_HALFFULL_INTR_EN  = 0x20000000
	I2C_CR_TFIFO_EMPTY_INTR_EN     = 0x10000000
	I2C_CR_TRANS_DONE_INTR_EN      = 0x08000000
	I2C_CR_MASTER_STOP_DET_EN      = 0x04000000
	I2C_CR_MASTER_STOP_DET_INTR_EN = 0x02000000
	I2C_CR_SLAVE_STOP_DET_INTR_EN  = 0x01000000
	I2C_CR_SLAVE_ADDR_DET_INTR_EN  = 0x00800000
	I2C_CR_BUS_ERROR_INTR_EN       = 0x00400000
	I2C_CR_GENERAL_CALL_DIS        = 0x00200000
	I2C_CR_DBR_FULL_INTR_EN        = 0x00100000
	I2C_CR_IDBR_EMPTY_INTR_EN      = 0x00080000
	I2C_CR_ARB_LOSS_INTR_EN        = 0x00040000
	I2C_CR_INTR_Msk                = 0xFFFC0000

	I2C_CR_TWSI_UNIT_EN  = 0x4000
	I2C_CR_SCL_EN        = 0x2000
	I2C_CR_MASTER_ABORT  = 0x1000
	I2C_CR_BUS_RESET_REQ = 0x0800
	I2C_CR_UNIT_RESET    = 0x0400

	I2C_CR_BUS_MODE_Msk  = 0x0300
	I2C_CR_BUS_MODE_STD  = 0x0000
	I2C_CR_BUS_MODE_FAST = 0x0100
	I2C_CR_BUS_MODE_HIGH = 0x0200

	I2C_CR_DMA_EN  = 0x80
	I2C_CR_FIFO_EN = 0x20

	I2C_CR_TRANS_BEGIN = 0x10
	I2C_CR_TRANS_BYTE  = 0x08
	I2C_CR_ACKNAK      = 0x04
	I2C_CR_STOP        = 0x02
	I2C_CR_START       = 0x01
	I2C_CR_XFER_Msk    = 0x1F
)

// SR
const (
	I2C_SR_RFIFO_OVERRUN  = 0x80000000
	I2C_SR_RFIFO_FULL     = 0x40000000
	I2C_SR_RFIFO_HALFFULL = 0x20000000
	I2C_SR_TFIFO_EMPTY    = 0x10000000
	I2C_SR_TRANS_DONE     = 0x08000000
	I2C_SR_MASTER_STOP    = 0x02000000
	I2C_SR_SLAVE_STOP     = 0x01000000
	I2C_SR_SLAVE_ADDR     = 0x00800000
	I2C_SR_BUS_ERROR      = 0x00400000
	I2C_SR_GENERAL_CALL   = 0x00200000
	I2C_SR_DBR_FULL       = 0x00100000
	I2C_SR_IDBR_EMPTY     = 0x00080000
	I2C_SR_ARB_LOSS       = 0x00040000
	I2C_SR_BUS_BUSY       = 0x00010000
	I2C_SR_UNIT_BUSY      = 0x00008000
	I2C_SR_ACK_STATUS     = 0x00004000
	I2C_SR_RW_MODE        = 0x00002000
	I2C_SR_W1C_Msk        = 0xFFFC0000
)

// FIFO words and status
const (
	I2C_WFIFO_CONTROL_TB     = 0x800
	I2C_WFIFO_CONTROL_ACKNAK = 0x400
	I2C_WFIFO_CONTROL_STOP   = 0x200
	I2C_WFIFO_CONTROL_START  = 0x100

	I2C_WFIFO_STATUS_SIZE_Msk = 0x3C
	I2C_WFIFO_STATUS_EMPTY    = 0x02
	I2C_WFIFO_STATUS_FULL     = 0x01

	I2C_RFIFO_STATUS_SIZE_Msk = 0xF0
	I2C_RFIFO_STATUS_EMPTY    = 0x04
	I2C_RFIFO_STATUS_FULL     = 0x03
	I2C_RFIFO_STATUS_HFULL    = 0x02
	I2C_RFIFO_STATUS_OVERRUN  = 0x01
)

// LCR: SCL low/high counts per bus mode.
const (
	I2C_LCR_SLV_Msk = 0x000001FF
	I2C_LCR_FLV_Msk = 0x0003FE00

	I2C_FREQ_STD  = 100_000
	I2C_FREQ_FAST = 400_000
)
