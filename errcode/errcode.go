package errcode

// Code is a stable error identifier shared by drivers, the console and the
// application. It is a string newtype, comparable, allocation-free, and
// implements error.
type Code string

func (c Code) Error() string { return string(c) }

// Canonical codes (short, stable).
const (
	OK            Code = "ok"
	Busy          Code = "busy"
	Unsupported   Code = "unsupported"
	InvalidParams Code = "invalid_params"
	Timeout       Code = "timeout"

	// Clock and serial
	BaudTooHigh    Code = "baud_too_high"
	UnknownClock   Code = "unknown_clock"
	UnknownPort    Code = "unknown_port"
	UnknownPin     Code = "unknown_pin"
	UnknownBlock   Code = "unknown_block"
	UnknownReg     Code = "unknown_register"
	UnknownCommand Code = "unknown_command"

	// I2C bus
	Nack            Code = "nack"
	BusError        Code = "bus_error"
	ArbitrationLost Code = "arbitration_lost"

	// LoRaWAN MAC boundary
	MacRejected Code = "mac_rejected"
	BadMIC      Code = "bad_mic"

	Error Code = "error" // generic fallback
)

// E keeps an operation name and a cause next to a Code.
type E struct {
	C   Code
	Op  string
	Msg string
	Err error
}

func (e *E) Error() string {
	s := string(e.C)
	if e.Op != "" {
		s = e.Op + ": " + s
	}
	if e.Msg != "" {
		s += ": " + e.Msg
	}
	return s
}
func (e *E) Unwrap() error { return e.Err }
func (e *E) Code() Code    { return e.C }

// Is lets errors.Is(err, errcode.Timeout) match a wrapped code.
func (e *E) Is(target error) bool {
	c, ok := target.(Code)
	return ok && c == e.C
}

// Of extracts a Code from an error, defaulting to Error.
func Of(err error) Code {
	if err == nil {
		return OK
	}
	if c, ok := err.(Code); ok {
		return c
	}
	type coder interface{ Code() Code }
	if x, ok := err.(coder); ok {
		return x.Code()
	}
	return Error
}
