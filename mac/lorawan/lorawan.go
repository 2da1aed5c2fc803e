// Package lorawan frames, encrypts and signs LoRaWAN 1.0.x messages: the
// OTAA join exchange and data frames without FOpts. EUIs are taken
// most-significant byte first, the way they are printed and configured,
// and reversed onto the wire.
package lorawan

import (
	"crypto/aes"
	"encoding/binary"

	"github.com/jacobsa/crypto/cmac"

	"tremo-go/errcode"
)

// MType is the message type carried in MHDR bits 7..5 (major version 0).
type MType byte

const (
	JoinRequestType MType = 0x00
	JoinAcceptType  MType = 0x20
	UnconfirmedUp   MType = 0x40
	UnconfirmedDown MType = 0x60
	ConfirmedUp     MType = 0x80
	ConfirmedDown   MType = 0xA0
)

func (m MType) Uplink() bool { return m == UnconfirmedUp || m == ConfirmedUp }

func (m MType) dir() byte {
	if m.Uplink() {
		return 0
	}
	return 1
}

// FCtrl bits that do not depend on direction.
const (
	FCtrlADR     = 0x80
	FCtrlACK     = 0x20
	FCtrlPending = 0x10 // downlink only
	fctrlFOptsN  = 0x0F
)

// MaxPayload is the largest FRMPayload any region allows.
const MaxPayload = 242

// MIC is the first four bytes of the AES-CMAC of msg under key.
func MIC(key [16]byte, msg []byte) [4]byte {
	var mic [4]byte
	h, err := cmac.New(key[:])
	if err != nil {
		// Only returned for bad key lengths.
		panic(err)
	}
	h.Write(msg)
	copy(mic[:], h.Sum(nil))
	return mic
}

func appendReversed(dst, src []byte) []byte {
	for i := len(src) - 1; i >= 0; i-- {
		dst = append(dst, src[i])
	}
	return dst
}

// JoinRequest builds the 23-byte join-request frame.
func JoinRequest(appEUI, devEUI [8]byte, devNonce uint16, appKey [16]byte) []byte {
	buf := make([]byte, 0, 23)
	buf = append(buf, byte(JoinRequestType))
	buf = appendReversed(buf, appEUI[:])
	buf = appendReversed(buf, devEUI[:])
	buf = binary.LittleEndian.AppendUint16(buf, devNonce)
	mic := MIC(appKey, buf)
	return append(buf, mic[:]...)
}

// JoinAccept is the network's answer to a join request.
type JoinAccept struct {
	AppNonce   [3]byte // wire order
	NetID      [3]byte // wire order
	DevAddr    uint32
	DLSettings byte
	RxDelay    byte
	CFList     []byte // empty or 16 bytes
}

func (a *JoinAccept) appendFields(buf []byte) []byte {
	buf = append(buf, a.AppNonce[:]...)
	buf = append(buf, a.NetID[:]...)
	buf = binary.LittleEndian.AppendUint32(buf, a.DevAddr)
	buf = append(buf, a.DLSettings, a.RxDelay)
	return append(buf, a.CFList...)
}

// EncodeJoinAccept is the network side: it signs the accept and encrypts it
// with the AES decrypt operation so the device can recover it by encrypting.
func EncodeJoinAccept(appKey [16]byte, a JoinAccept) ([]byte, error) {
	if n := len(a.CFList); n != 0 && n != 16 {
		return nil, &errcode.E{C: errcode.InvalidParams, Op: "lorawan.accept", Msg: "cflist"}
	}
	plain := a.appendFields([]byte{byte(JoinAcceptType)})
	mic := MIC(appKey, plain)
	plain = append(plain, mic[:]...)

	block, err := aes.NewCipher(appKey[:])
	if err != nil {
		return nil, err
	}
	frame := make([]byte, len(plain))
	frame[0] = plain[0]
	for i := 1; i < len(plain); i += aes.BlockSize {
		block.Decrypt(frame[i:], plain[i:])
	}
	return frame, nil
}

// DecodeJoinAccept decrypts and verifies a join-accept frame.
func DecodeJoinAccept(appKey [16]byte, frame []byte) (JoinAccept, error) {
	var a JoinAccept
	if len(frame) != 17 && len(frame) != 33 {
		return a, &errcode.E{C: errcode.InvalidParams, Op: "lorawan.accept", Msg: "length"}
	}
	if MType(frame[0]) != JoinAcceptType {
		return a, &errcode.E{C: errcode.InvalidParams, Op: "lorawan.accept", Msg: "mtype"}
	}
	block, err := aes.NewCipher(appKey[:])
	if err != nil {
		return a, err
	}
	plain := make([]byte, len(frame))
	plain[0] = frame[0]
	for i := 1; i < len(frame); i += aes.BlockSize {
		block.Encrypt(plain[i:], frame[i:])
	}
	body, rx := plain[:len(plain)-4], plain[len(plain)-4:]
	if mic := MIC(appKey, body); string(mic[:]) != string(rx) {
		return a, &errcode.E{C: errcode.BadMIC, Op: "lorawan.accept"}
	}
	f := body[1:]
	copy(a.AppNonce[:], f[0:3])
	copy(a.NetID[:], f[3:6])
	a.DevAddr = binary.LittleEndian.Uint32(f[6:10])
	a.DLSettings, a.RxDelay = f[10], f[11]
	if len(f) > 12 {
		a.CFList = append([]byte(nil), f[12:]...)
	}
	return a, nil
}

// Keys are the session keys derived from a join.
type Keys struct {
	Nwk [16]byte
	App [16]byte
}

// DeriveKeys computes NwkSKey and AppSKey from the accept and the nonce the
// device sent.
func DeriveKeys(appKey [16]byte, a JoinAccept, devNonce uint16) (Keys, error) {
	var k Keys
	block, err := aes.NewCipher(appKey[:])
	if err != nil {
		return k, err
	}
	var in [aes.BlockSize]byte
	copy(in[1:4], a.AppNonce[:])
	copy(in[4:7], a.NetID[:])
	binary.LittleEndian.PutUint16(in[7:9], devNonce)
	in[0] = 0x01
	block.Encrypt(k.Nwk[:], in[:])
	in[0] = 0x02
	block.Encrypt(k.App[:], in[:])
	return k, nil
}

// Frame is a data message. Payload is plaintext; FPort travels only when
// Payload is non-empty.
type Frame struct {
	MType   MType
	DevAddr uint32
	FCtrl   byte
	FCnt    uint32
	FPort   uint8
	Payload []byte
}

// crypt applies the FRMPayload keystream; it both encrypts and decrypts.
func crypt(key [16]byte, dir byte, addr, fcnt uint32, p []byte) ([]byte, error) {
	block, err := aes.NewCipher(key[:])
	if err != nil {
		return nil, err
	}
	out := make([]byte, len(p))
	var a, s [aes.BlockSize]byte
	a[0] = 0x01
	a[5] = dir
	binary.LittleEndian.PutUint32(a[6:10], addr)
	binary.LittleEndian.PutUint32(a[10:14], fcnt)
	for i := 0; i < len(p); i += aes.BlockSize {
		a[15] = byte(i/aes.BlockSize + 1)
		block.Encrypt(s[:], a[:])
		for j := i; j < len(p) && j < i+aes.BlockSize; j++ {
			out[j] = p[j] ^ s[j-i]
		}
	}
	return out, nil
}

func dataMIC(key [16]byte, dir byte, addr, fcnt uint32, msg []byte) [4]byte {
	b0 := make([]byte, 16, 16+len(msg))
	b0[0] = 0x49
	b0[5] = dir
	binary.LittleEndian.PutUint32(b0[6:10], addr)
	binary.LittleEndian.PutUint32(b0[10:14], fcnt)
	b0[15] = byte(len(msg))
	return MIC(key, append(b0, msg...))
}

func payloadKey(k Keys, port uint8) [16]byte {
	if port == 0 {
		return k.Nwk
	}
	return k.App
}

// Encode builds a signed data frame.
func Encode(k Keys, f Frame) ([]byte, error) {
	switch f.MType {
	case UnconfirmedUp, UnconfirmedDown, ConfirmedUp, ConfirmedDown:
	default:
		return nil, &errcode.E{C: errcode.InvalidParams, Op: "lorawan.encode", Msg: "mtype"}
	}
	if f.FCtrl&fctrlFOptsN != 0 {
		return nil, &errcode.E{C: errcode.Unsupported, Op: "lorawan.encode", Msg: "fopts"}
	}
	if len(f.Payload) > MaxPayload {
		return nil, &errcode.E{C: errcode.InvalidParams, Op: "lorawan.encode", Msg: "payload too long"}
	}
	dir := f.MType.dir()
	buf := make([]byte, 0, 13+len(f.Payload))
	buf = append(buf, byte(f.MType))
	buf = binary.LittleEndian.AppendUint32(buf, f.DevAddr)
	buf = append(buf, f.FCtrl)
	buf = binary.LittleEndian.AppendUint16(buf, uint16(f.FCnt))
	if len(f.Payload) > 0 {
		enc, err := crypt(payloadKey(k, f.FPort), dir, f.DevAddr, f.FCnt, f.Payload)
		if err != nil {
			return nil, err
		}
		buf = append(buf, f.FPort)
		buf = append(buf, enc...)
	}
	mic := dataMIC(k.Nwk, dir, f.DevAddr, f.FCnt, buf)
	return append(buf, mic[:]...), nil
}

// Decode verifies and decrypts a data frame. last is the last counter seen
// in this direction; it supplies the 16 bits the frame does not carry.
func Decode(k Keys, frame []byte, last uint32) (Frame, error) {
	var f Frame
	if len(frame) < 12 {
		return f, &errcode.E{C: errcode.InvalidParams, Op: "lorawan.decode", Msg: "length"}
	}
	f.MType = MType(frame[0])
	switch f.MType {
	case UnconfirmedUp, UnconfirmedDown, ConfirmedUp, ConfirmedDown:
	default:
		return f, &errcode.E{C: errcode.InvalidParams, Op: "lorawan.decode", Msg: "mtype"}
	}
	f.DevAddr = binary.LittleEndian.Uint32(frame[1:5])
	f.FCtrl = frame[5]
	if f.FCtrl&fctrlFOptsN != 0 {
		return f, &errcode.E{C: errcode.Unsupported, Op: "lorawan.decode", Msg: "fopts"}
	}
	f.FCnt = last&^0xFFFF | uint32(binary.LittleEndian.Uint16(frame[6:8]))
	if f.FCnt < last {
		f.FCnt += 0x10000
	}

	dir := f.MType.dir()
	body, rx := frame[:len(frame)-4], frame[len(frame)-4:]
	if mic := dataMIC(k.Nwk, dir, f.DevAddr, f.FCnt, body); string(mic[:]) != string(rx) {
		return f, &errcode.E{C: errcode.BadMIC, Op: "lorawan.decode"}
	}
	if len(body) > 8 {
		f.FPort = body[8]
		p, err := crypt(payloadKey(k, f.FPort), dir, f.DevAddr, f.FCnt, body[9:])
		if err != nil {
			return f, err
		}
		f.Payload = p
	}
	return f, nil
}
