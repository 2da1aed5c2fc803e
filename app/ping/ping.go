// Package ping listens on a fixed LoRa channel with the raw radio driver,
// below the MAC, and tracks the last radio event.
package ping

import (
	"io"

	"tremo-go/mac"
	"tremo-go/x/fmtx"
)

const (
	FrequencyHz     = 470_000_000
	TxPowerDBm      = 14
	SpreadingFactor = 7
	PreambleLen     = 8
	TxTimeoutMs     = 3000
	RxTimeoutMs     = 1800
	BufferSize      = 5
)

type State uint8

const (
	LowPower State = iota
	Rx
	RxTimeout
	RxError
	Tx
	TxTimeout
)

var stateNames = [...]string{"low_power", "rx", "rx_timeout", "rx_error", "tx", "tx_timeout"}

func (s State) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return "unknown"
}

// Ping owns the radio event handlers. Events run from Radio.IrqProcess.
type Ping struct {
	radio  mac.Radio
	out    io.Writer
	events mac.RadioEvents

	state State
	buf   [BufferSize]byte
	size  int
	rssi  int16
	snr   int8
}

func New(radio mac.Radio, out io.Writer) *Ping {
	p := &Ping{radio: radio, out: out}
	p.events = mac.RadioEvents{
		TxDone:    p.onTxDone,
		RxDone:    p.onRxDone,
		TxTimeout: p.onTxTimeout,
		RxTimeout: p.onRxTimeout,
		RxError:   p.onRxError,
	}
	return p
}

// TxConfig is LoRa SF7 BW125 CR4/5 with CRC at 14 dBm.
func TxConfig() mac.TxConfig {
	return mac.TxConfig{
		Modem:       mac.ModemLoRa,
		Power:       TxPowerDBm,
		Bandwidth:   mac.BW125,
		Datarate:    SpreadingFactor,
		CodeRate:    mac.CR4_5,
		PreambleLen: PreambleLen,
		CRC:         true,
		TimeoutMs:   TxTimeoutMs,
	}
}

// RxConfig matches TxConfig and receives continuously.
func RxConfig() mac.RxConfig {
	return mac.RxConfig{
		Modem:       mac.ModemLoRa,
		Bandwidth:   mac.BW125,
		Datarate:    SpreadingFactor,
		CodeRate:    mac.CR4_5,
		PreambleLen: PreambleLen,
		CRC:         true,
		Continuous:  true,
	}
}

// Setup registers the handlers, tunes the radio and starts receiving.
func (p *Ping) Setup() {
	p.radio.Init(&p.events)
	p.radio.SetChannel(FrequencyHz)
	p.radio.SetTxConfig(TxConfig())
	p.radio.SetRxConfig(RxConfig())
	p.radio.Rx(RxTimeoutMs)
}

// Step processes pending radio interrupts. Any event re-arms the receiver
// and is returned; with no event Step returns LowPower.
func (p *Ping) Step() State {
	p.radio.IrqProcess()
	s := p.state
	if s != LowPower {
		p.state = LowPower
		p.radio.Rx(RxTimeoutMs)
	}
	return s
}

func (p *Ping) State() State { return p.state }

// Received is the last payload, truncated to BufferSize.
func (p *Ping) Received() []byte { return p.buf[:p.size] }

func (p *Ping) RSSI() int16 { return p.rssi }
func (p *Ping) SNR() int8   { return p.snr }

func (p *Ping) onTxDone() {
	p.radio.Sleep()
	p.state = Tx
}

func (p *Ping) onRxDone(payload []byte, rssi int16, snr int8) {
	p.radio.Sleep()
	p.size = copy(p.buf[:], payload)
	p.rssi = rssi
	p.snr = snr
	p.state = Rx
}

func (p *Ping) onTxTimeout() {
	p.radio.Sleep()
	p.state = TxTimeout
}

func (p *Ping) onRxTimeout() {
	if p.out != nil {
		fmtx.Fprintf(p.out, "on_rx_timeout\r\n")
	}
	p.radio.Sleep()
	p.state = RxTimeout
}

func (p *Ping) onRxError() {
	p.radio.Sleep()
	p.state = RxError
}
