package sim

import "tremo-go/mac"

// Radio returns the radio half of the network. Only IrqProcess does
// anything: it delivers the network's queued events.
func (n *Network) Radio() mac.Radio { return radio{n} }

type radio struct{ n *Network }

func (radio) Init(*mac.RadioEvents)    {}
func (radio) SetChannel(uint32)        {}
func (radio) SetTxConfig(mac.TxConfig) {}
func (radio) SetRxConfig(mac.RxConfig) {}
func (radio) Send([]byte)              {}
func (radio) Rx(uint32)                {}
func (radio) Sleep()                   {}
func (r radio) IrqProcess()            { r.n.Process() }

// Timer is a one-shot timer the host fires by hand.
type Timer struct {
	cb      func()
	ms      uint32
	running bool
}

var _ mac.Timer = (*Timer)(nil)

func (t *Timer) Init(cb func())     { t.cb = cb }
func (t *Timer) SetValue(ms uint32) { t.ms = ms }
func (t *Timer) Start()             { t.running = true }
func (t *Timer) Stop()              { t.running = false }

// Running reports whether the timer is armed.
func (t *Timer) Running() bool { return t.running }

// Value is the last programmed timeout in milliseconds.
func (t *Timer) Value() uint32 { return t.ms }

// Fire expires an armed timer and runs its callback.
func (t *Timer) Fire() bool {
	if !t.running {
		return false
	}
	t.running = false
	if t.cb != nil {
		t.cb()
	}
	return true
}
