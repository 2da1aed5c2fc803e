// Package sim is an in-memory LoRaWAN network for running the MAC-facing
// applications on a host. Network implements mac.Stack on the device side
// and answers as the network server; its frames are real LoRaWAN 1.0
// messages. Events reach the application when the radio's IrqProcess runs,
// as they do on the board.
package sim

import (
	"tremo-go/errcode"
	"tremo-go/mac"
	"tremo-go/mac/lorawan"
)

// maxPayload is the EU868 N by data rate, used for every region.
var maxPayload = [...]uint8{51, 51, 51, 115, 242, 242, 242, 242}

// Network is a simulated MAC stack plus network server. Configure the
// exported fields before Init.
type Network struct {
	// Server side. A zero AppKey adopts the key from the first join request.
	AppKey  [16]byte
	NetID   [3]byte
	DevAddr uint32

	// RejectJoins makes that many joins fail before one is accepted.
	RejectJoins int
	// Margin and Gateways answer link checks.
	Margin, Gateways uint8

	// Uplinks records every frame the device sent, join requests included.
	Uplinks [][]byte

	prims   mac.Primitives
	cb      mac.Callbacks
	inited  bool
	busy    bool
	pending []func()

	class       mac.Class
	adr, public bool
	mask, dmask mac.ChannelsMask
	dr          mac.Datarate

	joined   bool
	keys     lorawan.Keys
	devNonce uint16
	appNonce uint32
	fcntUp   uint32
	fcntDown uint32

	downlinks []Downlink
}

// Downlink is an application message queued on the server. It goes out
// after the next data uplink.
type Downlink struct {
	Port      uint8
	Payload   []byte
	Confirmed bool
	Pending   bool
}

var _ mac.Stack = (*Network)(nil)

func (n *Network) Init(p mac.Primitives, c mac.Callbacks, r mac.Region) mac.Status {
	if r > mac.RegionRU864 {
		return mac.StatusRegionNotSupported
	}
	n.prims, n.cb = p, c
	n.inited = true
	return mac.StatusOK
}

func (n *Network) queue(f func()) {
	n.busy = true
	n.pending = append(n.pending, f)
}

// Pending reports whether events wait for IrqProcess.
func (n *Network) Pending() bool { return len(n.pending) > 0 }

// Joined reports whether the device holds a session.
func (n *Network) Joined() bool { return n.joined }

// Keys returns the current session keys.
func (n *Network) Keys() lorawan.Keys { return n.keys }

// Send queues d for the device.
func (n *Network) Send(d Downlink) { n.downlinks = append(n.downlinks, d) }

// Process delivers queued events. Events queued while delivering wait for
// the next call.
func (n *Network) Process() {
	evs := n.pending
	n.pending = nil
	n.busy = false
	for _, f := range evs {
		f()
	}
}

func (n *Network) MlmeRequest(req *mac.MlmeRequest) mac.Status {
	switch {
	case !n.inited:
		return mac.StatusDeviceOff
	case n.busy:
		return mac.StatusBusy
	}
	switch req.Type {
	case mac.MlmeJoin:
		n.join(&req.Join)
	case mac.MlmeLinkCheck:
		if !n.joined {
			return mac.StatusNoNetworkJoined
		}
		n.queue(func() {
			n.mlmeConfirm(&mac.MlmeConfirm{Request: mac.MlmeLinkCheck, DemodMargin: n.Margin, NbGateways: n.Gateways})
		})
	default:
		return mac.StatusServiceUnknown
	}
	return mac.StatusOK
}

func (n *Network) join(j *mac.JoinRequest) {
	n.devNonce++
	nonce := n.devNonce
	n.Uplinks = append(n.Uplinks, lorawan.JoinRequest(j.AppEUI, j.DevEUI, nonce, j.AppKey))
	if n.AppKey == ([16]byte{}) {
		n.AppKey = j.AppKey
	}
	deviceKey := j.AppKey

	n.queue(func() {
		c := &mac.MlmeConfirm{Request: mac.MlmeJoin, Status: mac.EventJoinFail}
		defer n.mlmeConfirm(c)
		if n.RejectJoins > 0 {
			n.RejectJoins--
			return
		}
		n.appNonce++
		accept := lorawan.JoinAccept{NetID: n.NetID, DevAddr: n.DevAddr, RxDelay: 1}
		accept.AppNonce = [3]byte{byte(n.appNonce), byte(n.appNonce >> 8), byte(n.appNonce >> 16)}
		frame, err := lorawan.EncodeJoinAccept(n.AppKey, accept)
		if err != nil {
			return
		}
		// Device side from here.
		got, err := lorawan.DecodeJoinAccept(deviceKey, frame)
		if err != nil {
			return
		}
		keys, err := lorawan.DeriveKeys(deviceKey, got, nonce)
		if err != nil {
			return
		}
		n.keys, n.joined = keys, true
		n.fcntUp, n.fcntDown = 0, 0
		c.Status = mac.EventOK
	})
}

func (n *Network) mlmeConfirm(c *mac.MlmeConfirm) {
	if n.prims.MlmeConfirm != nil {
		n.prims.MlmeConfirm(c)
	}
}

func (n *Network) McpsRequest(req *mac.McpsRequest) mac.Status {
	switch {
	case !n.inited:
		return mac.StatusDeviceOff
	case n.busy:
		return mac.StatusBusy
	case !n.joined:
		return mac.StatusNoNetworkJoined
	case req.Datarate < mac.DR0 || int(req.Datarate) >= len(maxPayload):
		return mac.StatusDatarateInvalid
	case len(req.Buffer) > int(maxPayload[req.Datarate]):
		return mac.StatusLengthError
	}

	f := lorawan.Frame{MType: lorawan.UnconfirmedUp, DevAddr: n.DevAddr, FCnt: n.fcntUp, FPort: req.Port, Payload: req.Buffer}
	switch req.Type {
	case mac.McpsUnconfirmed:
	case mac.McpsConfirmed:
		f.MType = lorawan.ConfirmedUp
	default:
		return mac.StatusServiceUnknown
	}
	if n.adr {
		f.FCtrl |= lorawan.FCtrlADR
	}
	wire, err := lorawan.Encode(n.keys, f)
	if err != nil {
		return mac.StatusParameterInvalid
	}
	n.Uplinks = append(n.Uplinks, wire)
	n.dr = req.Datarate
	counter := n.fcntUp
	n.fcntUp++

	confirmed := req.Type == mac.McpsConfirmed
	n.queue(func() {
		if n.prims.McpsConfirm != nil {
			n.prims.McpsConfirm(&mac.McpsConfirm{
				Request:       req.Type,
				Datarate:      req.Datarate,
				TxPower:       14,
				AckReceived:   confirmed,
				Trials:        1,
				UplinkCounter: counter,
			})
		}
		n.deliver(confirmed)
	})
	return mac.StatusOK
}

// deliver sends the next queued downlink, or a bare ack for a confirmed
// uplink, through the codec and up to the application.
func (n *Network) deliver(ack bool) {
	if len(n.downlinks) == 0 && !ack {
		return
	}
	f := lorawan.Frame{MType: lorawan.UnconfirmedDown, DevAddr: n.DevAddr, FCnt: n.fcntDown}
	if ack {
		f.FCtrl |= lorawan.FCtrlACK
	}
	if len(n.downlinks) > 0 {
		d := n.downlinks[0]
		n.downlinks = n.downlinks[1:]
		f.FPort, f.Payload = d.Port, d.Payload
		if d.Confirmed {
			f.MType = lorawan.ConfirmedDown
		}
		if d.Pending || len(n.downlinks) > 0 {
			f.FCtrl |= lorawan.FCtrlPending
		}
	}
	wire, err := lorawan.Encode(n.keys, f)
	if err != nil {
		return
	}
	ind := &mac.McpsIndication{Indication: mac.McpsUnconfirmed, RxDatarate: n.dr, RSSI: -60, SNR: 7, RxSlot: 1}
	got, err := lorawan.Decode(n.keys, wire, n.fcntDown)
	switch {
	case errcode.Of(err) == errcode.BadMIC:
		ind.Status = mac.EventMicFail
	case err != nil:
		ind.Status = mac.EventError
	default:
		n.fcntDown = got.FCnt + 1
		if got.MType == lorawan.ConfirmedDown {
			ind.Indication = mac.McpsConfirmed
		}
		ind.Port = got.FPort
		ind.Buffer = got.Payload
		ind.RxData = len(got.Payload) > 0
		ind.FramePending = got.FCtrl&lorawan.FCtrlPending != 0
		ind.AckReceived = got.FCtrl&lorawan.FCtrlACK != 0
		ind.DownlinkCounter = got.FCnt
	}
	if n.prims.McpsIndication != nil {
		n.prims.McpsIndication(ind)
	}
}

func (n *Network) MibSet(m *mac.Mib) mac.Status {
	switch m.Type {
	case mac.MibDeviceClass:
		if m.Class > mac.ClassC {
			return mac.StatusParameterInvalid
		}
		n.class = m.Class
	case mac.MibNetworkJoined:
		n.joined = m.NetworkJoined
	case mac.MibADR:
		n.adr = m.ADR
	case mac.MibPublicNetwork:
		n.public = m.PublicNetwork
	case mac.MibChannelsMask:
		n.mask = m.ChannelsMask
	case mac.MibChannelsDefaultMask:
		n.dmask = m.ChannelsMask
	default:
		return mac.StatusServiceUnknown
	}
	return mac.StatusOK
}

func (n *Network) MibGet(m *mac.Mib) mac.Status {
	switch m.Type {
	case mac.MibDeviceClass:
		m.Class = n.class
	case mac.MibNetworkJoined:
		m.NetworkJoined = n.joined
	case mac.MibADR:
		m.ADR = n.adr
	case mac.MibPublicNetwork:
		m.PublicNetwork = n.public
	case mac.MibChannelsMask:
		m.ChannelsMask = n.mask
	case mac.MibChannelsDefaultMask:
		m.ChannelsMask = n.dmask
	default:
		return mac.StatusServiceUnknown
	}
	return mac.StatusOK
}

func (n *Network) QueryTxPossible(size uint8) (mac.TxInfo, mac.Status) {
	limit := maxPayload[n.dr]
	info := mac.TxInfo{MaxPossiblePayload: limit, CurrentPayloadSize: limit}
	if size > limit {
		return info, mac.StatusLengthError
	}
	return info, mac.StatusOK
}
