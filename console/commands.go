package console

import (
	"strings"

	"tremo-go/drivers/gpio"
	"tremo-go/drivers/rcc"
	"tremo-go/drivers/uart"
	"tremo-go/errcode"
	"tremo-go/regmap"
	"tremo-go/x/strconvx"
)

var commands []command

func init() {
	commands = []command{
		{"help", "help", 0, (*Console).help},
		{"clk", "clk", 0, (*Console).clk},
		{"rd", "rd <block> [reg] | rd <addr>", -1, (*Console).rd},
		{"reset-cause", "reset-cause", 0, (*Console).resetCause},
		{"gpio", "gpio <pin>", 1, (*Console).gpio},
		{"uart", "uart <n>", 1, (*Console).uart},
		{"osc", "osc", 0, (*Console).osc},
		{"rx", "rx", 0, (*Console).rx},
	}
}

func find(name string) (command, bool) {
	for _, c := range commands {
		if c.name == name {
			return c, true
		}
	}
	return command{}, false
}

func (c *Console) help(_ []string) error {
	for _, cmd := range commands {
		c.printf("  %s\r\n", cmd.usage)
	}
	return nil
}

func (c *Console) clocks(op string) (Clocks, error) {
	if c.t.Clocks == nil {
		return nil, &errcode.E{C: errcode.Unsupported, Op: op}
	}
	return c.t.Clocks, nil
}

func (c *Console) clk(_ []string) error {
	k, err := c.clocks("clk")
	if err != nil {
		return err
	}
	c.printf("sysclk src %d\r\n", uint8(k.SysClkSrc()))
	for _, e := range []struct {
		name string
		clk  rcc.Clock
	}{{"sysclk", rcc.SYSCLK}, {"hclk", rcc.HCLK}, {"pclk0", rcc.PCLK0}, {"pclk1", rcc.PCLK1}} {
		c.printf("%s %d Hz\r\n", e.name, k.ClkFreq(e.clk))
	}
	return nil
}

func (c *Console) osc(_ []string) error {
	k, err := c.clocks("osc")
	if err != nil {
		return err
	}
	for o := rcc.RCO48M; o <= rcc.RCO4M; o++ {
		ready, known := k.OscillatorReady(o)
		switch {
		case !known:
			c.printf("%s ?\r\n", o.String())
		case ready:
			c.printf("%s ready\r\n", o.String())
		default:
			c.printf("%s off\r\n", o.String())
		}
	}
	return nil
}

func (c *Console) resetCause(_ []string) error {
	k, err := c.clocks("reset-cause")
	if err != nil {
		return err
	}
	cause := k.ResetCause()
	c.printf("%s (0x%02x)\r\n", strings.Join(cause.Names(), ","), uint32(cause))
	return nil
}

// rd reads one register, every catalogued register of a block, or a raw
// word address.
func (c *Console) rd(args []string) error {
	if c.t.Space == nil {
		return &errcode.E{C: errcode.Unsupported, Op: "rd"}
	}
	switch len(args) {
	case 1:
		if addr, err := strconvx.ParseUint(args[0], 0, 32); err == nil {
			if addr&3 != 0 {
				return &errcode.E{C: errcode.InvalidParams, Op: "rd", Msg: "unaligned"}
			}
			c.printf("0x%08x = 0x%08x\r\n", uint32(addr), c.t.Space.Load(uintptr(addr)))
			return nil
		}
		b, ok := regmap.FindBlock(args[0])
		if !ok {
			return &errcode.E{C: errcode.UnknownBlock, Op: "rd", Msg: args[0]}
		}
		for _, r := range b.Regs {
			c.word(b, r)
		}
		return nil
	case 2:
		b, ok := regmap.FindBlock(args[0])
		if !ok {
			return &errcode.E{C: errcode.UnknownBlock, Op: "rd", Msg: args[0]}
		}
		r, ok := b.Reg(args[1])
		if !ok {
			return &errcode.E{C: errcode.UnknownReg, Op: "rd", Msg: args[1]}
		}
		c.word(b, r)
		return nil
	}
	return &errcode.E{C: errcode.InvalidParams, Op: "rd", Msg: "usage: rd <block> [reg] | rd <addr>"}
}

func (c *Console) word(b regmap.Block, r regmap.Register) {
	addr := b.Base + r.Offset
	c.printf("%s.%s @ 0x%08x = 0x%08x\r\n", b.Name, r.Name, uint32(addr), c.t.Space.Load(addr))
}

func (c *Console) gpio(args []string) error {
	port, pin, err := gpio.Split(args[0])
	if err != nil {
		return err
	}
	p := c.t.Ports[port]
	if p == nil {
		return &errcode.E{C: errcode.Unsupported, Op: "gpio", Msg: port.String()}
	}
	level := 0
	if p.Read(pin) {
		level = 1
	}
	c.printf("p%s%d = %d mux %d\r\n", port.String(), pin, level, p.IOMux(pin))
	return nil
}

func (c *Console) uart(args []string) error {
	n, err := strconvx.Atoi(args[0])
	if err != nil || n < 0 || n >= len(c.t.UARTs) {
		return &errcode.E{C: errcode.UnknownPort, Op: "uart", Msg: args[0]}
	}
	u := c.t.UARTs[n]
	if u == nil {
		return &errcode.E{C: errcode.Unsupported, Op: "uart", Msg: args[0]}
	}
	c.printf("uart%d en %t baud %d busy %t txfe %t rxfe %t\r\n",
		n, u.Enabled(), u.BaudRate(),
		u.FlagStatus(uart.FlagBusy), u.FlagStatus(uart.FlagTxEmpty), u.FlagStatus(uart.FlagRxEmpty))
	if c.t.Clocks != nil {
		c.printf("uart%d clk %d Hz\r\n", n, c.t.Clocks.UARTClkFreq(n))
	}
	return nil
}

func (c *Console) rx(_ []string) error {
	if c.t.Rx == nil {
		return &errcode.E{C: errcode.Unsupported, Op: "rx"}
	}
	c.printf("rx buffered %d dropped %d\r\n", c.t.Rx.Available(), c.t.Rx.Dropped())
	return nil
}
