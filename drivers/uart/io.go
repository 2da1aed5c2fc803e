package uart

import (
	"io"

	"tremo-go/mmio"
	"tremo-go/regmap"
)

var (
	_ io.Writer     = (*UART)(nil)
	_ io.ByteWriter = (*UART)(nil)
	_ io.ByteReader = (*UART)(nil)
)

// SendData waits for room in the TX FIFO and writes one byte.
func (u *UART) SendData(b byte) error {
	if err := mmio.Until(u.wait, "uart.tx", u.fr, regmap.UART_FR_TXFF, false); err != nil {
		return err
	}
	u.dr.Write(uint32(b))
	return nil
}

// ReceiveData waits for a byte in the RX FIFO.
func (u *UART) ReceiveData() (byte, error) {
	if err := mmio.Until(u.wait, "uart.rx", u.fr, regmap.UART_FR_RXFE, false); err != nil {
		return 0, err
	}
	return byte(u.dr.Read()), nil
}

func (u *UART) WriteByte(b byte) error { return u.SendData(b) }

func (u *UART) ReadByte() (byte, error) { return u.ReceiveData() }

// Write sends p byte by byte.
func (u *UART) Write(p []byte) (int, error) {
	for i, b := range p {
		if err := u.SendData(b); err != nil {
			return i, err
		}
	}
	return len(p), nil
}

// WriteString avoids the []byte conversion for diagnostics.
func (u *UART) WriteString(s string) (int, error) {
	for i := 0; i < len(s); i++ {
		if err := u.SendData(s[i]); err != nil {
			return i, err
		}
	}
	return len(s), nil
}

// Buffered reports whether a byte is waiting. The FIFO depth is not
// readable, so the answer is 0 or 1.
func (u *UART) Buffered() int {
	if u.fr.Has(regmap.UART_FR_RXFE) {
		return 0
	}
	return 1
}

// Flush waits until the last byte has left the shifter.
func (u *UART) Flush() error {
	return mmio.Until(u.wait, "uart.flush", u.fr, regmap.UART_FR_BUSY, false)
}
