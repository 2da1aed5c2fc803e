package gpio

import (
	"tremo-go/mmio"
	"tremo-go/regmap"
)

func irqMask(pin uint8) uint32 { return regmap.GPIO_IFR_Msk << (2 * uint32(pin)) }

// ConfigInterrupt acknowledges any pending edge on pin and selects t.
func (g *GPIO) ConfigInterrupt(pin uint8, t Trigger) {
	if !valid(pin) {
		return
	}
	g.ClearInterrupt(pin)
	sh := 2 * uint32(pin)
	g.icr.Set(regmap.GPIO_ICR_Msk<<sh, uint32(t)<<sh)
}

// ClearInterrupt acknowledges pin by writing its pending IFR bits back.
func (g *GPIO) ClearInterrupt(pin uint8) {
	if !valid(pin) {
		return
	}
	g.ifr.Write(g.ifr.Read() & irqMask(pin))
}

func (g *GPIO) InterruptStatus(pin uint8) bool {
	return valid(pin) && g.ifr.Has(irqMask(pin))
}

// InterruptTrigger reads back the ICR field of pin.
func (g *GPIO) InterruptTrigger(pin uint8) Trigger {
	if !valid(pin) {
		return TriggerNone
	}
	return Trigger(mmio.Field(g.icr.Read(), irqMask(pin)))
}

// OnInterrupt installs the handler HandleIRQ calls for pin.
func (g *GPIO) OnInterrupt(pin uint8, h func()) {
	if valid(pin) {
		g.handlers[pin] = h
	}
}

// HandleIRQ is the port interrupt body: every pending pin is acknowledged,
// then its handler runs. It returns the number of pins serviced.
func (g *GPIO) HandleIRQ() int {
	pending := g.ifr.Read()
	n := 0
	for pin := uint8(0); pin < regmap.GPIO_PINS; pin++ {
		if pending&irqMask(pin) == 0 {
			continue
		}
		g.ClearInterrupt(pin)
		n++
		if h := g.handlers[pin]; h != nil {
			h()
		}
	}
	return n
}

// ConfigWakeup arms pin as a wake source; high selects the wake level.
func (g *GPIO) ConfigWakeup(pin uint8, enable, high bool) {
	if !valid(pin) {
		return
	}
	g.wucr.Enable(1<<pin, enable)
	g.wulvl.Enable(1<<pin, high)
}

// ConfigStop3Wakeup programs the STOP3 wake slot that serves pin. Each
// 4-bit slot covers four pins. Port A pins 6/7 and 12/13 are wired to each
// other's slot; port D pins above 7 have no slot.
func (g *GPIO) ConfigStop3Wakeup(pin uint8, enable, high bool) {
	if !valid(pin) || g.odAlt(pin) {
		return
	}
	if g.port == PortA {
		switch pin {
		case 6, 7:
			pin += 6
		case 12, 13:
			pin -= 6
		}
	}
	group := uint32(pin / 4)
	v := uint32(pin % 4)
	if high {
		v |= regmap.GPIO_STOP3_WUCR_LVL_Msk
	}
	if enable {
		v |= regmap.GPIO_STOP3_WUCR_EN_Msk
	}
	g.stop3.Set(regmap.GPIO_STOP3_WUCR_SLOT_Msk<<(4*group), v<<(4*group))
}
