package classc

import (
	"tinygo.org/x/drivers"
	"tinygo.org/x/drivers/shtc3"

	"tremo-go/drivers/aht20"
	"tremo-go/errcode"
	"tremo-go/x/mathx"
)

// Payload fills the next uplink frame and returns its length.
type Payload interface {
	Frame(port uint8, buf []byte) (int, error)
}

// Fixed sends the same bytes every cycle.
type Fixed []byte

// TestFrame is the bring-up uplink.
var TestFrame = Fixed{0x00, 0x01, 0x02, 0x03}

func (f Fixed) Frame(_ uint8, buf []byte) (int, error) {
	if len(f) > len(buf) {
		return 0, &errcode.E{C: errcode.InvalidParams, Op: "classc.frame", Msg: "payload too long"}
	}
	return copy(buf, f), nil
}

// Reading is one climate measurement.
type Reading struct {
	DeciCelsius int32 // tenths of a degree
	CentiRH     int32 // hundredths of a percent
}

// Sensor takes one climate measurement.
type Sensor interface {
	Measure() (Reading, error)
}

// Climate sends four bytes per uplink: temperature in deci-degrees Celsius
// as a signed big-endian int16, then relative humidity in hundredths of a
// percent as a big-endian uint16.
type Climate struct {
	sensor Sensor
}

func NewClimate(s Sensor) *Climate { return &Climate{sensor: s} }

func (c *Climate) Frame(_ uint8, buf []byte) (int, error) {
	if len(buf) < 4 {
		return 0, &errcode.E{C: errcode.InvalidParams, Op: "classc.climate", Msg: "buffer"}
	}
	r, err := c.sensor.Measure()
	if err != nil {
		return 0, err
	}
	deci := int16(mathx.Clamp(r.DeciCelsius, -32768, 32767))
	hum := uint16(mathx.Clamp(r.CentiRH, 0, 10000))
	buf[0], buf[1] = byte(uint16(deci)>>8), byte(deci)
	buf[2], buf[3] = byte(hum>>8), byte(hum)
	return 4, nil
}

// SHTC3 measures with a Sensirion SHTC3, sleeping it between readings.
type SHTC3 struct {
	bus drivers.I2C
	dev shtc3.Device
}

func NewSHTC3(bus drivers.I2C) *SHTC3 {
	return &SHTC3{bus: bus, dev: shtc3.New(bus)}
}

func (s *SHTC3) Measure() (Reading, error) {
	// The driver drops bus errors, so check the sensor answers first.
	if err := s.bus.Tx(shtc3.SHTC3_ADDRESS, nil, nil); err != nil {
		return Reading{}, err
	}
	_ = s.dev.WakeUp()
	defer func() { _ = s.dev.Sleep() }()

	mc, rh, err := s.dev.ReadTemperatureHumidity()
	if err != nil {
		return Reading{}, err
	}
	return Reading{DeciCelsius: mc / 100, CentiRH: int32(rh)}, nil
}

// AHT20 measures with an Aosong AHT20.
type AHT20 struct {
	dev aht20.Device
}

func NewAHT20(bus drivers.I2C) *AHT20 {
	return &AHT20{dev: aht20.New(bus)}
}

func (a *AHT20) Measure() (Reading, error) {
	var s aht20.Sample
	if err := a.dev.Read(&s); err != nil {
		return Reading{}, err
	}
	return Reading{DeciCelsius: s.DeciCelsius(), CentiRH: s.CentiRelHumidity()}, nil
}
