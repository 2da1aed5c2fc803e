package gpio

import (
	"tremo-go/errcode"
	"tremo-go/regmap"
	"tremo-go/x/strconvx"
)

type Pull uint8

const (
	PullNone Pull = iota
	PullUp
	PullDown
)

// Pin binds one pin of a port to the HAL pin contract.
type Pin struct {
	g   *GPIO
	pin uint8
}

// Pin returns the adapter for pin n of the port.
func (g *GPIO) Pin(n uint8) (*Pin, bool) {
	if !valid(n) {
		return nil, false
	}
	return &Pin{g: g, pin: n}, true
}

func (p *Pin) ConfigureInput(pull Pull) error {
	switch pull {
	case PullUp:
		p.g.Init(p.pin, InputPullUp)
	case PullDown:
		p.g.Init(p.pin, InputPullDown)
	case PullNone:
		p.g.Init(p.pin, InputFloating)
	default:
		return &errcode.E{C: errcode.InvalidParams, Op: "gpio.configure_input"}
	}
	return nil
}

func (p *Pin) ConfigureOutput(initial bool) error {
	if initial {
		p.g.Init(p.pin, OutputPPHigh)
	} else {
		p.g.Init(p.pin, OutputPPLow)
	}
	return nil
}

func (p *Pin) Set(level bool) { p.g.Write(p.pin, level) }
func (p *Pin) Get() bool      { return p.g.Read(p.pin) }
func (p *Pin) Toggle()        { p.g.Toggle(p.pin) }

// Number is the flat pin index: port*16 + pin.
func (p *Pin) Number() int { return int(p.g.port)*regmap.GPIO_PINS + int(p.pin) }

// SetIRQ arms an edge interrupt; handler runs from the port's HandleIRQ.
func (p *Pin) SetIRQ(t Trigger, handler func()) error {
	if t == TriggerNone || handler == nil {
		return &errcode.E{C: errcode.InvalidParams, Op: "gpio.set_irq"}
	}
	p.g.OnInterrupt(p.pin, handler)
	p.g.ConfigInterrupt(p.pin, t)
	return nil
}

func (p *Pin) ClearIRQ() error {
	p.g.ConfigInterrupt(p.pin, TriggerNone)
	p.g.OnInterrupt(p.pin, nil)
	return nil
}

// Split parses a pin name such as "a5" or "PD11".
func Split(name string) (Port, uint8, error) {
	s := name
	if len(s) > 0 && (s[0] == 'p' || s[0] == 'P') && len(s) > 2 {
		s = s[1:]
	}
	if len(s) < 2 {
		return 0, 0, &errcode.E{C: errcode.UnknownPin, Msg: name}
	}
	c := s[0] | 0x20
	if c < 'a' || c > 'd' {
		return 0, 0, &errcode.E{C: errcode.UnknownPort, Msg: name}
	}
	n, err := strconvx.Atoi(s[1:])
	if err != nil || n < 0 || n >= regmap.GPIO_PINS {
		return 0, 0, &errcode.E{C: errcode.UnknownPin, Msg: name, Err: err}
	}
	return Port(c - 'a'), uint8(n), nil
}
