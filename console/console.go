// Package console is a read-only diagnostic shell over a serial line. It
// reports clocks, oscillators, reset cause, pin levels, UART state, and raw
// register contents by block and register name.
package console

import (
	"io"
	"strings"

	"github.com/google/shlex"

	"tremo-go/drivers/rcc"
	"tremo-go/drivers/uart"
	"tremo-go/errcode"
	"tremo-go/mmio"
	"tremo-go/x/fmtx"
)

// Clocks is the clock controller as the console sees it.
type Clocks interface {
	ClkFreq(clk rcc.Clock) uint32
	SysClkSrc() rcc.SysClkSource
	UARTClkFreq(n int) uint32
	OscillatorReady(osc rcc.Oscillator) (ready, known bool)
	ResetCause() rcc.ResetCause
}

// Port is one GPIO bank.
type Port interface {
	Read(pin uint8) bool
	IOMux(pin uint8) uint8
}

// Serial is one UART.
type Serial interface {
	Enabled() bool
	BaudRate() uint32
	FlagStatus(f uart.Flag) bool
}

// Backlog is a receive buffer filled from an interrupt.
type Backlog interface {
	Available() int
	Dropped() uint32
}

// Target is everything the commands inspect. Nil entries report
// errcode.Unsupported.
type Target struct {
	Space  mmio.Space
	Clocks Clocks
	Ports  [4]Port
	UARTs  [4]Serial
	Rx     Backlog
}

type command struct {
	name  string
	usage string
	args  int // required positional arguments; -1 for variadic
	run   func(c *Console, args []string) error
}

type Console struct {
	t      Target
	out    io.Writer
	prompt string

	// Echo sends typed bytes back, for raw terminals.
	Echo bool
}

func New(t Target, out io.Writer) *Console {
	return &Console{t: t, out: out, prompt: "> "}
}

func (c *Console) printf(format string, args ...any) {
	fmtx.Fprintf(c.out, format, args...)
}

// Exec runs one command line. Blank lines do nothing.
func (c *Console) Exec(line string) error {
	words, err := shlex.Split(line)
	if err != nil {
		return &errcode.E{C: errcode.InvalidParams, Op: "console", Err: err}
	}
	if len(words) == 0 {
		return nil
	}
	cmd, ok := find(words[0])
	if !ok {
		return &errcode.E{C: errcode.UnknownCommand, Op: "console", Msg: words[0]}
	}
	args := words[1:]
	if cmd.args >= 0 && len(args) != cmd.args {
		return &errcode.E{C: errcode.InvalidParams, Op: cmd.name, Msg: "usage: " + cmd.usage}
	}
	return cmd.run(c, args)
}

// Serve reads lines from r until it fails, running each one. Errors are
// printed as their code and do not stop the loop. CR, LF and CRLF all end a
// line.
func (c *Console) Serve(r io.ByteReader) error {
	var line strings.Builder
	c.printf("%s", c.prompt)
	var last byte
	for {
		b, err := r.ReadByte()
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}
		switch {
		case b == '\n' && last == '\r':
		case b == '\r' || b == '\n':
			if c.Echo {
				c.printf("\r\n")
			}
			if err := c.Exec(line.String()); err != nil {
				c.printf("error: %s\r\n", err.Error())
			}
			line.Reset()
			c.printf("%s", c.prompt)
		case b == 0x08 || b == 0x7F:
			if s := line.String(); len(s) > 0 {
				line.Reset()
				line.WriteString(s[:len(s)-1])
				if c.Echo {
					c.printf("\b \b")
				}
			}
		default:
			line.WriteByte(b)
			if c.Echo {
				c.out.Write([]byte{b})
			}
		}
		last = b
	}
}
