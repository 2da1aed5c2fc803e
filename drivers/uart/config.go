package uart

import (
	"tremo-go/errcode"
	"tremo-go/regmap"
)

// Config is one complete line setup. The zero value is not usable; start
// from DefaultConfig.
type Config struct {
	BaudRate    uint32 `json:"baud_rate"`
	DataBits    uint8  `json:"data_bits"`
	StopBits    uint8  `json:"stop_bits"`
	Parity      Parity `json:"parity"`
	FlowControl Flow   `json:"flow_control"`
	Mode        Mode   `json:"mode"`
	FIFO        bool   `json:"fifo,omitempty"`
}

// DefaultConfig is 115200 8N1, both directions, no flow control, FIFO off.
func DefaultConfig() Config {
	return Config{
		BaudRate: 115200,
		DataBits: 8,
		StopBits: 1,
		Parity:   ParityNone,
		Mode:     ModeTxRx,
	}
}

type Parity uint8

const (
	ParityNone Parity = iota
	ParityEven
	ParityOdd
)

type Flow uint8

const (
	FlowNone Flow = iota
	FlowRTS
	FlowCTS
	FlowCTSRTS
)

type Mode uint8

const (
	ModeTxRx Mode = iota
	ModeTx
	ModeRx
)

var (
	parityNames = [...]string{"none", "even", "odd"}
	flowNames   = [...]string{"none", "rts", "cts", "cts_rts"}
	modeNames   = [...]string{"txrx", "tx", "rx"}
)

func (p Parity) String() string { return name(parityNames[:], int(p)) }
func (f Flow) String() string   { return name(flowNames[:], int(f)) }
func (m Mode) String() string   { return name(modeNames[:], int(m)) }

func (p Parity) MarshalText() ([]byte, error) { return text(parityNames[:], int(p)) }
func (f Flow) MarshalText() ([]byte, error)   { return text(flowNames[:], int(f)) }
func (m Mode) MarshalText() ([]byte, error)   { return text(modeNames[:], int(m)) }

func (p *Parity) UnmarshalText(b []byte) error {
	i, err := index(parityNames[:], b)
	*p = Parity(i)
	return err
}

func (f *Flow) UnmarshalText(b []byte) error {
	i, err := index(flowNames[:], b)
	*f = Flow(i)
	return err
}

func (m *Mode) UnmarshalText(b []byte) error {
	i, err := index(modeNames[:], b)
	*m = Mode(i)
	return err
}

func name(names []string, i int) string {
	if i < len(names) {
		return names[i]
	}
	return "?"
}

func text(names []string, i int) ([]byte, error) {
	if i >= len(names) {
		return nil, errcode.InvalidParams
	}
	return []byte(names[i]), nil
}

func index(names []string, b []byte) (int, error) {
	for i, n := range names {
		if n == string(b) {
			return i, nil
		}
	}
	return 0, &errcode.E{C: errcode.InvalidParams, Msg: string(b)}
}

// Register encodings.
var (
	wlenBits = map[uint8]uint32{
		5: regmap.UART_LCR_H_WLEN_5,
		6: regmap.UART_LCR_H_WLEN_6,
		7: regmap.UART_LCR_H_WLEN_7,
		8: regmap.UART_LCR_H_WLEN_8,
	}
	stopBits = map[uint8]uint32{
		1: regmap.UART_LCR_H_STOP_1,
		2: regmap.UART_LCR_H_STOP_2,
	}
	flowBits = [...]uint32{
		FlowNone:   regmap.UART_CR_FLOW_CTRL_NONE,
		FlowRTS:    regmap.UART_CR_FLOW_CTRL_RTS,
		FlowCTS:    regmap.UART_CR_FLOW_CTRL_CTS,
		FlowCTSRTS: regmap.UART_CR_FLOW_CTRL_CTS_RTS,
	}
	modeBits = [...]uint32{
		ModeTxRx: regmap.UART_CR_UART_MODE_TXRX,
		ModeTx:   regmap.UART_CR_UART_MODE_TX,
		ModeRx:   regmap.UART_CR_UART_MODE_RX,
	}
)

// encoded is a validated Config in register form.
type encoded struct {
	wlen, stop, flow, mode uint32
}

func (c Config) encode() (encoded, error) {
	var e encoded
	var ok bool
	if e.wlen, ok = wlenBits[c.DataBits]; !ok {
		return e, &errcode.E{C: errcode.InvalidParams, Op: "uart.init", Msg: "data bits"}
	}
	if e.stop, ok = stopBits[c.StopBits]; !ok {
		return e, &errcode.E{C: errcode.InvalidParams, Op: "uart.init", Msg: "stop bits"}
	}
	if c.Parity > ParityOdd {
		return e, &errcode.E{C: errcode.InvalidParams, Op: "uart.init", Msg: "parity"}
	}
	if int(c.FlowControl) >= len(flowBits) {
		return e, &errcode.E{C: errcode.InvalidParams, Op: "uart.init", Msg: "flow control"}
	}
	if int(c.Mode) >= len(modeBits) {
		return e, &errcode.E{C: errcode.InvalidParams, Op: "uart.init", Msg: "mode"}
	}
	e.flow = flowBits[c.FlowControl]
	e.mode = modeBits[c.Mode]
	return e, nil
}
