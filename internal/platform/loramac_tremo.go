//go:build tremo

package platform

/*
#include <stdbool.h>
#include <stdint.h>
#include <string.h>
#include "LoRaMac.h"
#include "timer.h"
#include "radio.h"

extern void goMcpsConfirm(uint8_t req, uint8_t status, int8_t dr, int8_t power, bool ack, uint8_t retries, uint32_t counter);
extern void goMcpsIndication(uint8_t ind, uint8_t status, bool multicast, uint8_t port, int8_t dr, bool pending,
	uint8_t *buf, uint8_t size, bool rxData, int16_t rssi, int8_t snr, uint8_t slot, bool ack, uint32_t counter);
extern void goMlmeConfirm(uint8_t req, uint8_t status, uint8_t margin, uint8_t gateways);
extern void goMlmeIndication(uint8_t ind, uint8_t status);
extern uint8_t goBatteryLevel(void);
extern void goTimerFired(void);
extern void goTxDone(void);
extern void goRxDone(uint8_t *payload, uint16_t size, int16_t rssi, int8_t snr);
extern void goTxTimeout(void);
extern void goRxTimeout(void);
extern void goRxError(void);

static void onMcpsConfirm(McpsConfirm_t *c) {
	if (c) goMcpsConfirm(c->McpsRequest, c->Status, c->Datarate, c->TxPower, c->AckReceived, c->NbRetries, c->UpLinkCounter);
}
static void onMcpsIndication(McpsIndication_t *i) {
	if (i) goMcpsIndication(i->McpsIndication, i->Status, i->Multicast, i->Port, i->RxDatarate, i->FramePending,
		i->Buffer, i->BufferSize, i->RxData, i->Rssi, i->Snr, i->RxSlot, i->AckReceived, i->DownLinkCounter);
}
static void onMlmeConfirm(MlmeConfirm_t *c) {
	if (c) goMlmeConfirm(c->MlmeRequest, c->Status, c->DemodMargin, c->NbGateways);
}
static void onMlmeIndication(MlmeIndication_t *i) {
	if (i) goMlmeIndication(i->MlmeIndication, i->Status);
}

static LoRaMacPrimitives_t prims;
static LoRaMacCallback_t callbacks;

static uint8_t shim_init(uint8_t region) {
	prims.MacMcpsConfirm = onMcpsConfirm;
	prims.MacMcpsIndication = onMcpsIndication;
	prims.MacMlmeConfirm = onMlmeConfirm;
	prims.MacMlmeIndication = onMlmeIndication;
	callbacks.GetBatteryLevel = goBatteryLevel;
	return LoRaMacInitialization(&prims, &callbacks, (LoRaMacRegion_t)region);
}

// The MAC keeps the credential pointers after the join request.
static uint8_t devEui[8], appEui[8], appKey[16];

static uint8_t shim_mlme(uint8_t type, const uint8_t *dev, const uint8_t *app, const uint8_t *key, uint8_t trials) {
	MlmeReq_t req;
	memset(&req, 0, sizeof(req));
	req.Type = (Mlme_t)type;
	if (req.Type == MLME_JOIN) {
		memcpy(devEui, dev, 8);
		memcpy(appEui, app, 8);
		memcpy(appKey, key, 16);
		req.Req.Join.DevEui = devEui;
		req.Req.Join.AppEui = appEui;
		req.Req.Join.AppKey = appKey;
		req.Req.Join.NbTrials = trials;
	}
	return LoRaMacMlmeRequest(&req);
}

static uint8_t shim_mcps(uint8_t type, uint8_t port, uint8_t *buf, uint16_t size, int8_t dr, uint8_t trials) {
	McpsReq_t req;
	memset(&req, 0, sizeof(req));
	req.Type = (Mcps_t)type;
	switch (req.Type) {
	case MCPS_CONFIRMED:
		req.Req.Confirmed.fPort = port;
		req.Req.Confirmed.fBuffer = buf;
		req.Req.Confirmed.fBufferSize = size;
		req.Req.Confirmed.NbTrials = trials;
		req.Req.Confirmed.Datarate = dr;
		break;
	case MCPS_PROPRIETARY:
		req.Req.Proprietary.fBuffer = buf;
		req.Req.Proprietary.fBufferSize = size;
		req.Req.Proprietary.Datarate = dr;
		break;
	default:
		req.Req.Unconfirmed.fPort = port;
		req.Req.Unconfirmed.fBuffer = size ? buf : NULL;
		req.Req.Unconfirmed.fBufferSize = size;
		req.Req.Unconfirmed.Datarate = dr;
	}
	return LoRaMacMcpsRequest(&req);
}

static uint16_t mask[6];

static uint8_t shim_mib_set(uint8_t type, bool flag, uint8_t class, const uint16_t *m) {
	MibRequestConfirm_t req;
	memset(&req, 0, sizeof(req));
	req.Type = (Mib_t)type;
	switch (req.Type) {
	case MIB_ADR:
		req.Param.AdrEnable = flag;
		break;
	case MIB_PUBLIC_NETWORK:
		req.Param.EnablePublicNetwork = flag;
		break;
	case MIB_NETWORK_JOINED:
		req.Param.IsNetworkJoined = flag;
		break;
	case MIB_DEVICE_CLASS:
		req.Param.Class = (DeviceClass_t)class;
		break;
	case MIB_CHANNELS_MASK:
		memcpy(mask, m, sizeof(mask));
		req.Param.ChannelsMask = mask;
		break;
	case MIB_CHANNELS_DEFAULT_MASK:
		memcpy(mask, m, sizeof(mask));
		req.Param.ChannelsDefaultMask = mask;
		break;
	default:
		return LORAMAC_STATUS_SERVICE_UNKNOWN;
	}
	return LoRaMacMibSetRequestConfirm(&req);
}

static uint8_t shim_mib_get(uint8_t type, bool *flag, uint8_t *class, uint16_t *m) {
	MibRequestConfirm_t req;
	memset(&req, 0, sizeof(req));
	req.Type = (Mib_t)type;
	uint8_t st = LoRaMacMibGetRequestConfirm(&req);
	if (st != LORAMAC_STATUS_OK) return st;
	switch (req.Type) {
	case MIB_ADR:
		*flag = req.Param.AdrEnable;
		break;
	case MIB_PUBLIC_NETWORK:
		*flag = req.Param.EnablePublicNetwork;
		break;
	case MIB_NETWORK_JOINED:
		*flag = req.Param.IsNetworkJoined;
		break;
	case MIB_DEVICE_CLASS:
		*class = req.Param.Class;
		break;
	case MIB_CHANNELS_MASK:
		memcpy(m, req.Param.ChannelsMask, sizeof(mask));
		break;
	case MIB_CHANNELS_DEFAULT_MASK:
		memcpy(m, req.Param.ChannelsDefaultMask, sizeof(mask));
		break;
	default:
		return LORAMAC_STATUS_SERVICE_UNKNOWN;
	}
	return st;
}

static uint8_t shim_query(uint8_t size, uint8_t *max, uint8_t *cur) {
	LoRaMacTxInfo_t info;
	uint8_t st = LoRaMacQueryTxPossible(size, &info);
	*max = info.MaxPossiblePayload;
	*cur = info.CurrentPayloadSize;
	return st;
}

static TimerEvent_t txTimer;

static void shim_timer_init(void) { TimerInit(&txTimer, goTimerFired); }
static void shim_timer_set(uint32_t ms) { TimerSetValue(&txTimer, ms); }
static void shim_timer_start(void) { TimerStart(&txTimer); }
static void shim_timer_stop(void) { TimerStop(&txTimer); }

static RadioEvents_t radioEvents;

static void shim_radio_init(void) {
	radioEvents.TxDone = goTxDone;
	radioEvents.RxDone = goRxDone;
	radioEvents.TxTimeout = goTxTimeout;
	radioEvents.RxTimeout = goRxTimeout;
	radioEvents.RxError = goRxError;
	Radio.Init(&radioEvents);
}
static void shim_radio_channel(uint32_t hz) { Radio.SetChannel(hz); }
static void shim_radio_tx(uint8_t modem, int8_t power, uint32_t fdev, uint32_t bw, uint32_t dr, uint8_t cr,
	uint16_t preamble, bool fixLen, bool crc, bool hop, uint8_t hopPeriod, bool iq, uint32_t timeout) {
	Radio.SetTxConfig((RadioModems_t)modem, power, fdev, bw, dr, cr, preamble, fixLen, crc, hop, hopPeriod, iq, timeout);
}
static void shim_radio_rx(uint8_t modem, uint32_t bw, uint32_t dr, uint8_t cr, uint32_t bwAfc, uint16_t preamble,
	uint16_t symbTimeout, bool fixLen, uint8_t payloadLen, bool crc, bool hop, uint8_t hopPeriod, bool iq, bool continuous) {
	Radio.SetRxConfig((RadioModems_t)modem, bw, dr, cr, bwAfc, preamble, symbTimeout, fixLen, payloadLen, crc, hop, hopPeriod, iq, continuous);
}
static void shim_radio_send(uint8_t *buf, uint8_t size) { Radio.Send(buf, size); }
static void shim_radio_rx_start(uint32_t ms) { Radio.Rx(ms); }
static void shim_radio_sleep(void) { Radio.Sleep(); }
static void shim_radio_irq(void) { Radio.IrqProcess(); }
*/
import "C"

import (
	"unsafe"

	"tremo-go/mac"
)

// LoRaMac is the vendor MAC stack. There is one per program; the C side
// keeps its callbacks in statics.
type LoRaMac struct{}

// RTCTimer is the MAC's RTC-backed timer list with a single event.
type RTCTimer struct{}

// LoRaRadio is the vendor SX126x-style radio driver.
type LoRaRadio struct{}

var (
	_ mac.Stack = LoRaMac{}
	_ mac.Timer = RTCTimer{}
	_ mac.Radio = LoRaRadio{}
)

var (
	prims      mac.Primitives
	callbacks  mac.Callbacks
	timerFired func()
	radioEv    *mac.RadioEvents
)

func (LoRaMac) Init(p mac.Primitives, c mac.Callbacks, r mac.Region) mac.Status {
	prims, callbacks = p, c
	return mac.Status(C.shim_init(C.uint8_t(r)))
}

func (LoRaMac) MlmeRequest(req *mac.MlmeRequest) mac.Status {
	j := &req.Join
	return mac.Status(C.shim_mlme(C.uint8_t(req.Type),
		(*C.uint8_t)(unsafe.Pointer(&j.DevEUI[0])),
		(*C.uint8_t)(unsafe.Pointer(&j.AppEUI[0])),
		(*C.uint8_t)(unsafe.Pointer(&j.AppKey[0])),
		C.uint8_t(j.Trials)))
}

func (LoRaMac) McpsRequest(req *mac.McpsRequest) mac.Status {
	var buf *C.uint8_t
	if len(req.Buffer) > 0 {
		buf = (*C.uint8_t)(unsafe.Pointer(&req.Buffer[0]))
	}
	return mac.Status(C.shim_mcps(C.uint8_t(req.Type), C.uint8_t(req.Port), buf,
		C.uint16_t(len(req.Buffer)), C.int8_t(req.Datarate), C.uint8_t(req.Trials)))
}

func (LoRaMac) MibSet(m *mac.Mib) mac.Status {
	var flag bool
	switch m.Type {
	case mac.MibADR:
		flag = m.ADR
	case mac.MibPublicNetwork:
		flag = m.PublicNetwork
	case mac.MibNetworkJoined:
		flag = m.NetworkJoined
	}
	return mac.Status(C.shim_mib_set(C.uint8_t(m.Type), C.bool(flag), C.uint8_t(m.Class),
		(*C.uint16_t)(unsafe.Pointer(&m.ChannelsMask[0]))))
}

func (LoRaMac) MibGet(m *mac.Mib) mac.Status {
	var flag C.bool
	var class C.uint8_t
	st := mac.Status(C.shim_mib_get(C.uint8_t(m.Type), &flag, &class,
		(*C.uint16_t)(unsafe.Pointer(&m.ChannelsMask[0]))))
	if st != mac.StatusOK {
		return st
	}
	switch m.Type {
	case mac.MibADR:
		m.ADR = bool(flag)
	case mac.MibPublicNetwork:
		m.PublicNetwork = bool(flag)
	case mac.MibNetworkJoined:
		m.NetworkJoined = bool(flag)
	case mac.MibDeviceClass:
		m.Class = mac.Class(class)
	}
	return st
}

func (LoRaMac) QueryTxPossible(size uint8) (mac.TxInfo, mac.Status) {
	var maxLen, cur C.uint8_t
	st := C.shim_query(C.uint8_t(size), &maxLen, &cur)
	return mac.TxInfo{MaxPossiblePayload: uint8(maxLen), CurrentPayloadSize: uint8(cur)}, mac.Status(st)
}

//export goMcpsConfirm
func goMcpsConfirm(req, status C.uint8_t, dr, power C.int8_t, ack C.bool, retries C.uint8_t, counter C.uint32_t) {
	if prims.McpsConfirm == nil {
		return
	}
	prims.McpsConfirm(&mac.McpsConfirm{
		Request:       mac.McpsType(req),
		Status:        mac.EventStatus(status),
		Datarate:      mac.Datarate(dr),
		TxPower:       int8(power),
		AckReceived:   bool(ack),
		Trials:        uint8(retries),
		UplinkCounter: uint32(counter),
	})
}

//export goMcpsIndication
func goMcpsIndication(ind, status C.uint8_t, multicast C.bool, port C.uint8_t, dr C.int8_t, pending C.bool,
	buf *C.uint8_t, size C.uint8_t, rxData C.bool, rssi C.int16_t, snr C.int8_t, slot C.uint8_t, ack C.bool, counter C.uint32_t) {
	if prims.McpsIndication == nil {
		return
	}
	var payload []byte
	if buf != nil && size > 0 {
		// Valid for the duration of the callback only.
		payload = unsafe.Slice((*byte)(unsafe.Pointer(buf)), int(size))
	}
	prims.McpsIndication(&mac.McpsIndication{
		Indication:      mac.McpsType(ind),
		Status:          mac.EventStatus(status),
		Multicast:       bool(multicast),
		Port:            uint8(port),
		RxDatarate:      mac.Datarate(dr),
		FramePending:    bool(pending),
		Buffer:          payload,
		RxData:          bool(rxData),
		RSSI:            int16(rssi),
		SNR:             int8(snr),
		RxSlot:          uint8(slot),
		AckReceived:     bool(ack),
		DownlinkCounter: uint32(counter),
	})
}

//export goMlmeConfirm
func goMlmeConfirm(req, status, margin, gateways C.uint8_t) {
	if prims.MlmeConfirm != nil {
		prims.MlmeConfirm(&mac.MlmeConfirm{
			Request:     mac.MlmeType(req),
			Status:      mac.EventStatus(status),
			DemodMargin: uint8(margin),
			NbGateways:  uint8(gateways),
		})
	}
}

//export goMlmeIndication
func goMlmeIndication(ind, status C.uint8_t) {
	if prims.MlmeIndication != nil {
		prims.MlmeIndication(&mac.MlmeIndication{Indication: mac.MlmeType(ind), Status: mac.EventStatus(status)})
	}
}

//export goBatteryLevel
func goBatteryLevel() C.uint8_t {
	if callbacks.BatteryLevel == nil {
		return mac.BatteryUnknown
	}
	return C.uint8_t(callbacks.BatteryLevel())
}

func (RTCTimer) Init(cb func()) {
	timerFired = cb
	C.shim_timer_init()
}

func (RTCTimer) SetValue(ms uint32) { C.shim_timer_set(C.uint32_t(ms)) }
func (RTCTimer) Start()             { C.shim_timer_start() }
func (RTCTimer) Stop()              { C.shim_timer_stop() }

//export goTimerFired
func goTimerFired() {
	if timerFired != nil {
		timerFired()
	}
}

func (LoRaRadio) Init(ev *mac.RadioEvents) {
	radioEv = ev
	C.shim_radio_init()
}

func (LoRaRadio) SetChannel(hz uint32) { C.shim_radio_channel(C.uint32_t(hz)) }

func (LoRaRadio) SetTxConfig(c mac.TxConfig) {
	C.shim_radio_tx(C.uint8_t(c.Modem), C.int8_t(c.Power), C.uint32_t(c.Fdev), C.uint32_t(c.Bandwidth),
		C.uint32_t(c.Datarate), C.uint8_t(c.CodeRate), C.uint16_t(c.PreambleLen), C.bool(c.FixLen),
		C.bool(c.CRC), C.bool(c.FreqHop), C.uint8_t(c.HopPeriod), C.bool(c.IQInverted), C.uint32_t(c.TimeoutMs))
}

func (LoRaRadio) SetRxConfig(c mac.RxConfig) {
	C.shim_radio_rx(C.uint8_t(c.Modem), C.uint32_t(c.Bandwidth), C.uint32_t(c.Datarate), C.uint8_t(c.CodeRate),
		C.uint32_t(c.BandwidthAfc), C.uint16_t(c.PreambleLen), C.uint16_t(c.SymbTimeout), C.bool(c.FixLen),
		C.uint8_t(c.PayloadLen), C.bool(c.CRC), C.bool(c.FreqHop), C.uint8_t(c.HopPeriod), C.bool(c.IQInverted),
		C.bool(c.Continuous))
}

func (LoRaRadio) Send(p []byte) {
	if len(p) == 0 {
		return
	}
	C.shim_radio_send((*C.uint8_t)(unsafe.Pointer(&p[0])), C.uint8_t(len(p)))
}

func (LoRaRadio) Rx(timeoutMs uint32) { C.shim_radio_rx_start(C.uint32_t(timeoutMs)) }
func (LoRaRadio) Sleep()              { C.shim_radio_sleep() }
func (LoRaRadio) IrqProcess()         { C.shim_radio_irq() }

//export goTxDone
func goTxDone() {
	if radioEv != nil && radioEv.TxDone != nil {
		radioEv.TxDone()
	}
}

//export goRxDone
func goRxDone(payload *C.uint8_t, size C.uint16_t, rssi C.int16_t, snr C.int8_t) {
	if radioEv == nil || radioEv.RxDone == nil {
		return
	}
	var p []byte
	if payload != nil && size > 0 {
		p = unsafe.Slice((*byte)(unsafe.Pointer(payload)), int(size))
	}
	radioEv.RxDone(p, int16(rssi), int8(snr))
}

//export goTxTimeout
func goTxTimeout() {
	if radioEv != nil && radioEv.TxTimeout != nil {
		radioEv.TxTimeout()
	}
}

//export goRxTimeout
func goRxTimeout() {
	if radioEv != nil && radioEv.RxTimeout != nil {
		radioEv.RxTimeout()
	}
}

//export goRxError
func goRxError() {
	if radioEv != nil && radioEv.RxError != nil {
		radioEv.RxError()
	}
}
