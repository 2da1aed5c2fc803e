package mac

type Modem uint8

const (
	ModemFSK Modem = iota
	ModemLoRa
)

// LoRa bandwidth codes for TxConfig and RxConfig.
const (
	BW125 = 0
	BW250 = 1
	BW500 = 2
)

// LoRa coding rate codes.
const (
	CR4_5 = 1
	CR4_6 = 2
	CR4_7 = 3
	CR4_8 = 4
)

// RadioEvents are invoked from Radio.IrqProcess.
type RadioEvents struct {
	TxDone    func()
	RxDone    func(payload []byte, rssi int16, snr int8)
	TxTimeout func()
	RxTimeout func()
	RxError   func()
}

// TxConfig mirrors the radio driver's transmit settings. For LoRa, Datarate
// is the spreading factor.
type TxConfig struct {
	Modem       Modem
	Power       int8
	Fdev        uint32
	Bandwidth   uint32
	Datarate    uint32
	CodeRate    uint8
	PreambleLen uint16
	FixLen      bool
	CRC         bool
	FreqHop     bool
	HopPeriod   uint8
	IQInverted  bool
	TimeoutMs   uint32
}

type RxConfig struct {
	Modem        Modem
	Bandwidth    uint32
	Datarate     uint32
	CodeRate     uint8
	BandwidthAfc uint32
	PreambleLen  uint16
	SymbTimeout  uint16
	FixLen       bool
	PayloadLen   uint8
	CRC          bool
	FreqHop      bool
	HopPeriod    uint8
	IQInverted   bool
	Continuous   bool
}

// Radio is the raw transceiver driver below the MAC.
type Radio interface {
	Init(ev *RadioEvents)
	SetChannel(hz uint32)
	SetTxConfig(c TxConfig)
	SetRxConfig(c RxConfig)
	Send(p []byte)
	Rx(timeoutMs uint32)
	Sleep()
	// IrqProcess runs pending DIO work and dispatches events.
	IrqProcess()
}
