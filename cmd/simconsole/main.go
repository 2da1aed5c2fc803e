//go:build !tremo

// Command simconsole runs the diagnostic console against a simulated board
// in the host terminal. Type help for the command list; Ctrl-D exits.
package main

import (
	"io"
	"os"

	"github.com/mattn/go-tty"

	"tremo-go/internal/platform"
)

// runes adapts a raw terminal to the console's byte reader. Ctrl-C and
// Ctrl-D end input.
type runes struct {
	t   *tty.TTY
	buf []byte
}

func (r *runes) ReadByte() (byte, error) {
	for len(r.buf) == 0 {
		c, err := r.t.ReadRune()
		if err != nil {
			return 0, err
		}
		if c == 0x03 || c == 0x04 {
			return 0, io.EOF
		}
		r.buf = []byte(string(c))
	}
	b := r.buf[0]
	r.buf = r.buf[1:]
	return b, nil
}

func main() {
	t, err := tty.Open()
	if err != nil {
		println("[simconsole]", err.Error())
		os.Exit(1)
	}
	defer t.Close()

	out := t.Output()
	b, _, err := platform.OpenSim(out)
	if err != nil {
		println("[simconsole]", err.Error())
		os.Exit(1)
	}
	c := b.Console(out)
	c.Echo = true
	if err := c.Serve(&runes{t: t}); err != nil {
		println("[simconsole]", err.Error())
	}
}
