package lorawan

import (
	"bytes"
	"encoding/hex"
	"testing"

	"tremo-go/errcode"
)

var (
	appEUI = [8]byte{0x70, 0xB3, 0xD5, 0x7E, 0xD0, 0x00, 0x00, 0xDC}
	devEUI = [8]byte{0x00, 0xAF, 0xEE, 0x7C, 0xF5, 0xED, 0x6F, 0x1E}
	appKey = [16]byte{0xB6, 0xB5, 0x3F, 0x4A, 0x16, 0x8A, 0x7A, 0x88, 0xBD, 0xF7, 0xEA, 0x13, 0x5C, 0xE9, 0xCF, 0xCA}
)

const devNonce = 0xCC85

func unhex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	if err != nil {
		t.Fatal(err)
	}
	return b
}

func TestJoinRequestVector(t *testing.T) {
	got := JoinRequest(appEUI, devEUI, devNonce, appKey)
	want := unhex(t, "00DC0000D07ED5B3701E6FEDF57CEEAF0085CC587FE913")
	if !bytes.Equal(got, want) {
		t.Fatalf("join request\n got %X\nwant %X", got, want)
	}
}

func TestJoinAcceptVector(t *testing.T) {
	frame := unhex(t, "204DD85AE608B87FC4889970B7D2042C9E72959B0057AED6094B16003DF12DE145")
	a, err := DecodeJoinAccept(appKey, frame)
	if err != nil {
		t.Fatal(err)
	}
	if len(a.CFList) != 16 {
		t.Fatalf("cflist = %X", a.CFList)
	}
	k, err := DeriveKeys(appKey, a, devNonce)
	if err != nil {
		t.Fatal(err)
	}
	if want := unhex(t, "2C96F7028184BB0BE8AA49275290D4FC"); !bytes.Equal(k.Nwk[:], want) {
		t.Errorf("NwkSKey %X", k.Nwk)
	}
	if want := unhex(t, "F3A5C8F0232A38C144029C165865802C"); !bytes.Equal(k.App[:], want) {
		t.Errorf("AppSKey %X", k.App)
	}

	// The network side reproduces the same frame.
	again, err := EncodeJoinAccept(appKey, a)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(again, frame) {
		t.Fatalf("re-encoded accept %X", again)
	}
}

func TestJoinAcceptRejects(t *testing.T) {
	a := JoinAccept{AppNonce: [3]byte{1, 2, 3}, NetID: [3]byte{0x13}, DevAddr: 0x26011BDA, RxDelay: 1}
	frame, err := EncodeJoinAccept(appKey, a)
	if err != nil {
		t.Fatal(err)
	}
	if len(frame) != 17 {
		t.Fatalf("len = %d", len(frame))
	}
	got, err := DecodeJoinAccept(appKey, frame)
	if err != nil || got.DevAddr != a.DevAddr || got.CFList != nil {
		t.Fatalf("decode = %+v, %v", got, err)
	}

	wrong := appKey
	wrong[0] ^= 1
	if _, err := DecodeJoinAccept(wrong, frame); errcode.Of(err) != errcode.BadMIC {
		t.Fatalf("wrong key: %v", err)
	}
	if _, err := DecodeJoinAccept(appKey, frame[:16]); errcode.Of(err) != errcode.InvalidParams {
		t.Fatalf("short frame: %v", err)
	}
	a.CFList = []byte{1}
	if _, err := EncodeJoinAccept(appKey, a); errcode.Of(err) != errcode.InvalidParams {
		t.Fatalf("bad cflist: %v", err)
	}
}

func TestDataRoundTrip(t *testing.T) {
	k := Keys{Nwk: [16]byte{1}, App: [16]byte{2}}
	cases := []Frame{
		{MType: UnconfirmedUp, DevAddr: 0x26011BDA, FCnt: 7, FPort: 2, Payload: []byte{0, 1, 2, 3}},
		{MType: ConfirmedUp, DevAddr: 0x26011BDA, FCtrl: FCtrlADR, FCnt: 0x10002, FPort: 2, Payload: bytes.Repeat([]byte{0xAB}, 40)},
		{MType: UnconfirmedDown, DevAddr: 1, FCtrl: FCtrlPending, FCnt: 3, FPort: 0, Payload: []byte("mac")},
		{MType: UnconfirmedUp, DevAddr: 1, FCnt: 9},
	}
	for _, f := range cases {
		wire, err := Encode(k, f)
		if err != nil {
			t.Fatal(err)
		}
		if n := 12 + len(f.Payload); len(f.Payload) > 0 && len(wire) != n+1 || len(f.Payload) == 0 && len(wire) != n {
			t.Fatalf("len(wire) = %d for %d byte payload", len(wire), len(f.Payload))
		}
		if len(f.Payload) > 0 && bytes.Contains(wire, f.Payload) {
			t.Errorf("payload sent in clear: %X", wire)
		}
		got, err := Decode(k, wire, f.FCnt&^0xFFFF)
		if err != nil {
			t.Fatal(err)
		}
		if got.MType != f.MType || got.DevAddr != f.DevAddr || got.FCtrl != f.FCtrl ||
			got.FCnt != f.FCnt || got.FPort != f.FPort || !bytes.Equal(got.Payload, f.Payload) {
			t.Fatalf("decoded %+v, want %+v", got, f)
		}
	}
}

func TestDecodeRejects(t *testing.T) {
	k := Keys{Nwk: [16]byte{1}, App: [16]byte{2}}
	wire, err := Encode(k, Frame{MType: UnconfirmedUp, DevAddr: 5, FCnt: 1, FPort: 1, Payload: []byte{9}})
	if err != nil {
		t.Fatal(err)
	}
	wire[len(wire)-1] ^= 0xFF
	if _, err := Decode(k, wire, 0); errcode.Of(err) != errcode.BadMIC {
		t.Fatalf("tampered: %v", err)
	}
	if _, err := Decode(k, wire[:8], 0); errcode.Of(err) != errcode.InvalidParams {
		t.Fatalf("short: %v", err)
	}
	if _, err := Encode(k, Frame{MType: JoinAcceptType}); errcode.Of(err) != errcode.InvalidParams {
		t.Fatalf("mtype: %v", err)
	}
	if _, err := Encode(k, Frame{MType: UnconfirmedUp, FCtrl: 0x01}); errcode.Of(err) != errcode.Unsupported {
		t.Fatalf("fopts: %v", err)
	}
}

func TestDecodeCounterRollover(t *testing.T) {
	k := Keys{Nwk: [16]byte{3}}
	wire, err := Encode(k, Frame{MType: UnconfirmedDown, DevAddr: 5, FCnt: 0x10001})
	if err != nil {
		t.Fatal(err)
	}
	f, err := Decode(k, wire, 0xFFF0)
	if err != nil || f.FCnt != 0x10001 {
		t.Fatalf("fcnt = %#x, %v", f.FCnt, err)
	}
}
