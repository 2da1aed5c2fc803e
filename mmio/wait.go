package mmio

import "tremo-go/errcode"

// WaitPolicy decides how long a hardware handshake may spin.
type WaitPolicy interface {
	// Wait polls cond until it holds. op names the handshake in errors.
	Wait(op string, cond func() bool) error
}

type forever struct{}

// Forever spins until the condition holds and never reports an error. A
// missing oscillator or a stuck sync bit hangs the caller.
var Forever WaitPolicy = forever{}

func (forever) Wait(_ string, cond func() bool) error {
	for !cond() {
	}
	return nil
}

// Bounded gives up after n polls with an errcode.Timeout error.
type Bounded int

func (n Bounded) Wait(op string, cond func() bool) error {
	for i := 0; i < max(int(n), 1); i++ {
		if cond() {
			return nil
		}
	}
	return &errcode.E{C: errcode.Timeout, Op: op}
}

// Until is a convenience for waiting on a mask to reach a state.
func Until(w WaitPolicy, op string, r Register, mask uint32, set bool) error {
	if w == nil {
		w = Forever
	}
	return w.Wait(op, func() bool { return (r.Read()&mask != 0) == set })
}

// UntilAll waits for every bit of mask to read one.
func UntilAll(w WaitPolicy, op string, r Register, mask uint32) error {
	if w == nil {
		w = Forever
	}
	return w.Wait(op, func() bool { return r.Read()&mask == mask })
}
