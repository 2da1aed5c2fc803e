package classc

import (
	"tremo-go/errcode"
	"tremo-go/mac"
	"tremo-go/x/conv"
	"tremo-go/x/strconvx"
)

// EUI is an 8-byte IEEE identifier, written as 16 hex digits in JSON.
type EUI [8]byte

// Key is a 128-bit AES key, written as 32 hex digits in JSON.
type Key [16]byte

func (e EUI) MarshalText() ([]byte, error)  { return appendHex(nil, e[:]), nil }
func (e *EUI) UnmarshalText(b []byte) error { return parseHex(e[:], b) }
func (k Key) MarshalText() ([]byte, error)  { return appendHex(nil, k[:]), nil }
func (k *Key) UnmarshalText(b []byte) error { return parseHex(k[:], b) }
func (e EUI) String() string                { return string(appendHex(nil, e[:])) }

func appendHex(dst, src []byte) []byte {
	for _, b := range src {
		start := len(dst)
		dst = conv.AppendHex(dst, uint64(b), 2)
		conv.Upper(dst[start:])
	}
	return dst
}

func parseHex(dst, src []byte) error {
	if err := strconvx.ParseHex(dst, string(src)); err != nil {
		return &errcode.E{C: errcode.InvalidParams, Op: "classc.hex", Err: err}
	}
	return nil
}

// Config holds the commissioning and scheduling parameters of the uplink
// loop.
type Config struct {
	DevEUI EUI `json:"dev_eui"`
	AppEUI EUI `json:"app_eui"`
	AppKey Key `json:"app_key"`

	Port          uint8        `json:"port"`
	Confirmed     bool         `json:"confirmed"`
	ADR           bool         `json:"adr"`
	PublicNetwork bool         `json:"public_network"`
	Datarate      mac.Datarate `json:"datarate"`
	Region        mac.Region   `json:"region"`

	// ChannelsMask is applied as both the default and the active mask.
	ChannelsMask mac.ChannelsMask `json:"channels_mask"`

	DutyCycleMs       uint32 `json:"duty_cycle_ms"`
	DutyCycleJitterMs uint32 `json:"duty_cycle_jitter_ms"`

	// JoinTrials and ConfirmedTrials bound the stack's retransmissions.
	JoinTrials      uint8 `json:"join_trials"`
	ConfirmedTrials uint8 `json:"confirmed_trials"`
}

const (
	DefaultDutyCycleMs = 30_000
	DefaultJitterMs    = 1_000
	DefaultPort        = 2
	MaxPayload         = 16
)

// DefaultConfig is the evaluation board's commissioning: EU868, confirmed
// uplinks on port 2 at DR0 with ADR, first eight channels.
func DefaultConfig() Config {
	return Config{
		DevEUI:            EUI{0x70, 0xB3, 0xD5, 0x7E, 0xD0, 0x07, 0x5C, 0xD4},
		AppEUI:            EUI{0xAC, 0x1F, 0x09, 0xFF, 0xFE, 0x21, 0x7E, 0x7D},
		AppKey:            Key{0xEB, 0xB4, 0xEB, 0x14, 0x6C, 0xF1, 0xF9, 0x02, 0xED, 0x7B, 0xE1, 0x7B, 0x71, 0x31, 0x35, 0xD2},
		Port:              DefaultPort,
		Confirmed:         true,
		ADR:               true,
		PublicNetwork:     true,
		Datarate:          mac.DR0,
		Region:            mac.RegionEU868,
		ChannelsMask:      mac.ChannelsMask{0x00FF},
		DutyCycleMs:       DefaultDutyCycleMs,
		DutyCycleJitterMs: DefaultJitterMs,
		JoinTrials:        8,
		ConfirmedTrials:   8,
	}
}
