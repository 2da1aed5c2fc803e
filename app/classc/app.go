// Package classc is the LoRaWAN class C uplink application: join, send a
// frame every duty cycle, print what the network sends back, and otherwise
// sleep while the radio stack processes interrupts.
package classc

import (
	"io"
	"math/rand/v2"

	"tremo-go/mac"
	"tremo-go/x/fmtx"
)

type State uint8

const (
	StateInit State = iota
	StateJoin
	StateSend
	StateCycle
	StateSleep
)

var stateNames = [...]string{"init", "join", "send", "cycle", "sleep"}

func (s State) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return "unknown"
}

// App drives the MAC stack. The MAC primitives run from Radio.IrqProcess
// inside Step; OnTimer may run from the RTC interrupt. Both only write
// state and nextTx, each a single word.
type App struct {
	cfg   Config
	stack mac.Stack
	timer mac.Timer
	radio mac.Radio

	payload Payload
	battery func() uint8
	randn   func(n uint32) uint32
	out     io.Writer

	state     State
	nextTx    bool
	dutyCycle uint32

	buf  [MaxPayload]byte
	size int
}

type Option func(*App)

// WithPayload replaces the fixed test frame.
func WithPayload(p Payload) Option { return func(a *App) { a.payload = p } }

// WithOutput sends diagnostics to w instead of fmtx.DefaultOutput.
func WithOutput(w io.Writer) Option { return func(a *App) { a.out = w } }

// WithBattery reports a battery level to the network.
func WithBattery(f func() uint8) Option { return func(a *App) { a.battery = f } }

// WithRandom supplies the duty-cycle jitter source; f returns a value in
// [0, n).
func WithRandom(f func(n uint32) uint32) Option { return func(a *App) { a.randn = f } }

func New(cfg Config, stack mac.Stack, timer mac.Timer, radio mac.Radio, opts ...Option) *App {
	a := &App{
		cfg:       cfg,
		stack:     stack,
		timer:     timer,
		radio:     radio,
		payload:   TestFrame,
		battery:   func() uint8 { return 0 },
		randn:     rand.Uint32N,
		nextTx:    true,
		dutyCycle: cfg.DutyCycleMs,
	}
	for _, o := range opts {
		o(a)
	}
	return a
}

func (a *App) State() State { return a.state }

// DutyCycle is the delay armed by the last Cycle step, in milliseconds.
func (a *App) DutyCycle() uint32 { return a.dutyCycle }

// Frame is the last payload handed to the stack.
func (a *App) Frame() []byte { return a.buf[:a.size] }

// Run prints the banner and steps forever.
func (a *App) Run() {
	a.printf("ClassC app start\r\n")
	a.state = StateInit
	for {
		a.Step()
	}
}

// Step runs one iteration of the state machine.
func (a *App) Step() {
	switch a.state {
	case StateInit:
		a.init()
		a.state = StateJoin
	case StateJoin:
		a.join()
	case StateSend:
		if a.nextTx {
			a.nextTx = !a.send()
		}
		a.dutyCycle = a.cfg.DutyCycleMs + a.randn(a.cfg.DutyCycleJitterMs+1)
		a.state = StateCycle
	case StateCycle:
		a.state = StateSleep
		a.timer.SetValue(a.dutyCycle)
		a.timer.Start()
	case StateSleep:
		a.radio.IrqProcess()
	}
}

func (a *App) init() {
	st := a.stack.Init(mac.Primitives{
		McpsConfirm:    a.McpsConfirm,
		McpsIndication: a.McpsIndication,
		MlmeConfirm:    a.MlmeConfirm,
		MlmeIndication: a.MlmeIndication,
	}, mac.Callbacks{BatteryLevel: a.battery}, a.cfg.Region)
	if err := st.Err("mac.init"); err != nil {
		println("[classc]", err.Error())
	}
	a.timer.Init(a.OnTimer)

	a.stack.MibSet(&mac.Mib{Type: mac.MibADR, ADR: a.cfg.ADR})
	a.stack.MibSet(&mac.Mib{Type: mac.MibPublicNetwork, PublicNetwork: a.cfg.PublicNetwork})
	a.stack.MibSet(&mac.Mib{Type: mac.MibChannelsDefaultMask, ChannelsMask: a.cfg.ChannelsMask})
	a.stack.MibSet(&mac.Mib{Type: mac.MibChannelsMask, ChannelsMask: a.cfg.ChannelsMask})
	a.stack.MibSet(&mac.Mib{Type: mac.MibDeviceClass, Class: mac.ClassC})
}

// join issues an OTAA join. Accepted: sleep until MlmeConfirm. Rejected:
// retry after a duty cycle.
func (a *App) join() {
	req := mac.MlmeRequest{
		Type: mac.MlmeJoin,
		Join: mac.JoinRequest{
			DevEUI: a.cfg.DevEUI,
			AppEUI: a.cfg.AppEUI,
			AppKey: a.cfg.AppKey,
			Trials: a.cfg.JoinTrials,
		},
	}
	if a.stack.MlmeRequest(&req) == mac.StatusOK {
		a.state = StateSleep
	} else {
		a.state = StateCycle
	}
}

// send reports whether the stack accepted the uplink.
func (a *App) send() bool {
	n, err := a.payload.Frame(a.cfg.Port, a.buf[:])
	if err != nil {
		println("[classc] payload:", err.Error())
		return false
	}
	a.size = n

	var req mac.McpsRequest
	if _, st := a.stack.QueryTxPossible(uint8(n)); st != mac.StatusOK {
		// Empty frame flushes pending MAC commands.
		req = mac.McpsRequest{Type: mac.McpsUnconfirmed, Datarate: a.cfg.Datarate}
	} else if !a.cfg.Confirmed {
		req = mac.McpsRequest{
			Type:     mac.McpsUnconfirmed,
			Port:     a.cfg.Port,
			Buffer:   a.buf[:n],
			Datarate: a.cfg.Datarate,
		}
	} else {
		req = mac.McpsRequest{
			Type:     mac.McpsConfirmed,
			Port:     a.cfg.Port,
			Buffer:   a.buf[:n],
			Datarate: a.cfg.Datarate,
			Trials:   a.cfg.ConfirmedTrials,
		}
	}
	return a.stack.McpsRequest(&req) == mac.StatusOK
}

// OnTimer fires when the duty cycle expires, or early when the network has
// more to send. A joined device sends; otherwise it joins again.
func (a *App) OnTimer() {
	a.timer.Stop()
	m := mac.Mib{Type: mac.MibNetworkJoined}
	if a.stack.MibGet(&m) != mac.StatusOK {
		return
	}
	if m.NetworkJoined {
		a.state = StateSend
		a.nextTx = true
		return
	}
	a.join()
}

func (a *App) McpsConfirm(c *mac.McpsConfirm) {
	if c == nil {
		return
	}
	a.nextTx = true
}

func (a *App) McpsIndication(ind *mac.McpsIndication) {
	if ind == nil || ind.Status != mac.EventOK {
		return
	}
	a.printf("receive data: rssi = %d, snr = %d, datarate = %d\r\n", ind.RSSI, ind.SNR, int8(ind.RxDatarate))

	if ind.FramePending {
		a.OnTimer()
	}

	if len(ind.Buffer) > 0 {
		a.printf("Received: ")
		for _, b := range ind.Buffer {
			a.printf("%x ", b)
		}
	}
	a.printf("\r\n")
}

func (a *App) MlmeConfirm(c *mac.MlmeConfirm) {
	if c == nil {
		return
	}
	if c.Request == mac.MlmeJoin {
		if c.Status == mac.EventOK {
			a.printf("Joined\r\n")
			a.state = StateSend
		} else {
			a.printf("Join failed\r\n")
			a.join()
		}
	}
	a.nextTx = true
}

func (a *App) MlmeIndication(ind *mac.MlmeIndication) {
	if ind != nil && ind.Indication == mac.MlmeScheduleUplink {
		a.OnTimer()
	}
}

func (a *App) printf(format string, args ...any) {
	if a.out != nil {
		fmtx.Fprintf(a.out, format, args...)
		return
	}
	fmtx.Printf(format, args...)
}
