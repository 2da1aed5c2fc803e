package uart

import (
	"io"

	"tremo-go/regmap"
	"tremo-go/x/shmring"
)

// Drain moves every byte waiting in the RX FIFO into r and acknowledges the
// receive and receive-timeout interrupts. It is meant to run from the UART
// interrupt handler. Bytes that do not fit are counted by r.Dropped.
func (u *UART) Drain(r *shmring.Ring) int {
	var buf [16]byte
	n, k := 0, 0
	for !u.fr.Has(regmap.UART_FR_RXFE) {
		buf[k] = byte(u.dr.Read())
		k++
		n++
		if k == len(buf) {
			r.WriteFrom(buf[:k])
			k = 0
		}
	}
	r.WriteFrom(buf[:k])
	u.ClearInterrupt(IntRx | IntRxTimeout | IntOverrun)
	return n
}

// StartRx enables interrupt-driven reception into r. The caller routes the
// UART interrupt to Drain.
func (u *UART) StartRx(l Level) {
	u.SetRxFIFOThreshold(l)
	u.ClearInterrupt(IntAll)
	u.ConfigInterrupt(IntRx|IntRxTimeout, true)
}

// Receiver reads from a ring filled by Drain. Idle runs while the ring is
// empty; a nil Idle makes ReadByte return io.EOF instead of waiting.
type Receiver struct {
	Ring *shmring.Ring
	Idle func()
}

func (r Receiver) ReadByte() (byte, error) {
	var b [1]byte
	for {
		if r.Ring.ReadInto(b[:]) == 1 {
			return b[0], nil
		}
		if r.Idle == nil {
			return 0, io.EOF
		}
		r.Idle()
	}
}
