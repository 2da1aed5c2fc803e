// Package mac is the Go face of the vendor LoRaWAN MAC and radio stack: the
// request, confirm and indication contract the application drives, and the
// status codes that come back. It holds no MAC logic of its own.
package mac

import "tremo-go/errcode"

// Status is the synchronous result of a MAC request.
type Status uint8

const (
	StatusOK Status = iota
	StatusBusy
	StatusServiceUnknown
	StatusParameterInvalid
	StatusFrequencyInvalid
	StatusDatarateInvalid
	StatusFreqAndDrInvalid
	StatusNoNetworkJoined
	StatusLengthError
	StatusDeviceOff
	StatusRegionNotSupported
)

var statusNames = [...]string{
	StatusOK:                 "ok",
	StatusBusy:               "busy",
	StatusServiceUnknown:     "service_unknown",
	StatusParameterInvalid:   "parameter_invalid",
	StatusFrequencyInvalid:   "frequency_invalid",
	StatusDatarateInvalid:    "datarate_invalid",
	StatusFreqAndDrInvalid:   "freq_and_dr_invalid",
	StatusNoNetworkJoined:    "no_network_joined",
	StatusLengthError:        "length_error",
	StatusDeviceOff:          "device_off",
	StatusRegionNotSupported: "region_not_supported",
}

func (s Status) String() string {
	if int(s) < len(statusNames) {
		return statusNames[s]
	}
	return "unknown"
}

// Err maps a non-OK status to an error carrying errcode.MacRejected, or
// errcode.Busy when the stack is still handling a previous request.
func (s Status) Err(op string) error {
	switch s {
	case StatusOK:
		return nil
	case StatusBusy:
		return &errcode.E{C: errcode.Busy, Op: op, Msg: s.String()}
	}
	return &errcode.E{C: errcode.MacRejected, Op: op, Msg: s.String()}
}

// EventStatus is the outcome reported in confirms and indications.
type EventStatus uint8

const (
	EventOK EventStatus = iota
	EventError
	EventTxTimeout
	EventRx1Timeout
	EventRx2Timeout
	EventRx1Error
	EventRx2Error
	EventJoinFail
	EventDownlinkRepeated
	EventTxDrPayloadSizeError
	EventDownlinkTooManyFramesLoss
	EventAddressFail
	EventMicFail
)

var eventNames = [...]string{
	EventOK:                        "ok",
	EventError:                     "error",
	EventTxTimeout:                 "tx_timeout",
	EventRx1Timeout:                "rx1_timeout",
	EventRx2Timeout:                "rx2_timeout",
	EventRx1Error:                  "rx1_error",
	EventRx2Error:                  "rx2_error",
	EventJoinFail:                  "join_fail",
	EventDownlinkRepeated:          "downlink_repeated",
	EventTxDrPayloadSizeError:      "tx_dr_payload_size_error",
	EventDownlinkTooManyFramesLoss: "downlink_too_many_frames_loss",
	EventAddressFail:               "address_fail",
	EventMicFail:                   "mic_fail",
}

func (s EventStatus) String() string {
	if int(s) < len(eventNames) {
		return eventNames[s]
	}
	return "unknown"
}
