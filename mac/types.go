package mac

// McpsType selects a data service.
type McpsType uint8

const (
	McpsUnconfirmed McpsType = iota
	McpsConfirmed
	McpsMulticast
	McpsProprietary
)

// MlmeType selects a management service.
type MlmeType uint8

const (
	MlmeJoin MlmeType = iota
	MlmeLinkCheck
	MlmeTxCw
	MlmeTxCw1
	MlmeScheduleUplink
)

// MibType names a MAC information base attribute.
type MibType uint8

const (
	MibDeviceClass MibType = iota
	MibNetworkJoined
	MibADR
	MibNetID
	MibDevAddr
	MibNwkSKey
	MibAppSKey
	MibPublicNetwork
	MibRepeaterSupport
	MibChannels
	MibRx2Channel
	MibRx2DefaultChannel
	MibChannelsMask
	MibChannelsDefaultMask
)

// Class is the LoRaWAN device class.
type Class uint8

const (
	ClassA Class = iota
	ClassB
	ClassC
)

// Region is the regional channel plan handed to Init.
type Region uint8

const (
	RegionAS923 Region = iota
	RegionAU915
	RegionCN470
	RegionCN779
	RegionEU433
	RegionEU868
	RegionKR920
	RegionIN865
	RegionUS915
	RegionRU864
)

// Datarate indexes the region's data rate table. DR0 is SF12/BW125 in EU868.
type Datarate int8

const (
	DR0 Datarate = iota
	DR1
	DR2
	DR3
	DR4
	DR5
	DR6
	DR7
)

// ChannelsMask covers up to 96 channels, 16 per word.
type ChannelsMask [6]uint16

// McpsRequest sends one uplink. Trials only applies to confirmed frames.
type McpsRequest struct {
	Type     McpsType
	Port     uint8
	Buffer   []byte
	Datarate Datarate
	Trials   uint8
}

// JoinRequest carries the OTAA credentials.
type JoinRequest struct {
	DevEUI [8]byte
	AppEUI [8]byte
	AppKey [16]byte
	Trials uint8
}

type MlmeRequest struct {
	Type MlmeType
	Join JoinRequest
}

// Mib is a get/set request. Only the field matching Type is meaningful.
type Mib struct {
	Type MibType

	Class         Class
	NetworkJoined bool
	ADR           bool
	PublicNetwork bool
	ChannelsMask  ChannelsMask
}

// TxInfo is returned by QueryTxPossible.
type TxInfo struct {
	MaxPossiblePayload uint8
	CurrentPayloadSize uint8
}

type McpsConfirm struct {
	Request       McpsType
	Status        EventStatus
	Datarate      Datarate
	TxPower       int8
	AckReceived   bool
	Trials        uint8
	UplinkCounter uint32
}

type McpsIndication struct {
	Indication      McpsType
	Status          EventStatus
	Multicast       bool
	Port            uint8
	RxDatarate      Datarate
	FramePending    bool
	Buffer          []byte
	RxData          bool
	RSSI            int16
	SNR             int8
	RxSlot          uint8
	AckReceived     bool
	DownlinkCounter uint32
}

type MlmeConfirm struct {
	Request     MlmeType
	Status      EventStatus
	DemodMargin uint8
	NbGateways  uint8
}

type MlmeIndication struct {
	Indication MlmeType
	Status     EventStatus
}
