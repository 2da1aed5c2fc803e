package mac

// Primitives are the four event callbacks the stack invokes. They run from
// the radio IRQ processing context, never concurrently with each other.
type Primitives struct {
	McpsConfirm    func(*McpsConfirm)
	McpsIndication func(*McpsIndication)
	MlmeConfirm    func(*MlmeConfirm)
	MlmeIndication func(*MlmeIndication)
}

// Callbacks are queries the stack makes of the board.
type Callbacks struct {
	// BatteryLevel returns 0 (empty) to 254 (full), or 255 when unknown.
	BatteryLevel func() uint8
}

const BatteryUnknown = 255

// Stack is the MAC request surface.
type Stack interface {
	Init(p Primitives, c Callbacks, r Region) Status
	MlmeRequest(req *MlmeRequest) Status
	McpsRequest(req *McpsRequest) Status
	MibSet(m *Mib) Status
	MibGet(m *Mib) Status
	QueryTxPossible(size uint8) (TxInfo, Status)
}

// Timer is a one-shot software timer driven by the RTC.
type Timer interface {
	Init(cb func())
	SetValue(ms uint32)
	Start()
	Stop()
}
