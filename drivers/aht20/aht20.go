// Package aht20 drives the AHT20 temperature/humidity sensor over any
// tinygo.org/x/drivers I2C bus. Measurement is two-phase:
//
//	d.Trigger()              // start a conversion (fast)
//	err := d.Collect(&s)     // fetch when ready; errcode.Busy while converting
//
// Read does both with bounded polling. Conversions are fixed point: tenths
// of a degree Celsius and hundredths of a percent RH.
//
// I2C.Tx must perform a write followed by a repeated-start read when both w
// and r are given.
package aht20

import (
	"time"

	"tinygo.org/x/drivers"

	"tremo-go/errcode"
)

// I2C address.
const Address = 0x38

const (
	cmdTrigger    = 0xAC
	cmdInitialize = 0xBE
	cmdSoftReset  = 0xBA
	cmdStatus     = 0x71

	statusBusy       = 0x80
	statusCalibrated = 0x08

	fullScale = 1 << 20
)

// Config controls timing. Zero fields take defaults.
type Config struct {
	Address        uint16
	PollInterval   time.Duration // between Collect attempts in Read; 15 ms
	CollectTimeout time.Duration // bound on Read; 250 ms
	TriggerHint    time.Duration // nominal conversion time; 80 ms

	// Sleep waits between polls; time.Sleep when nil.
	Sleep func(time.Duration)
}

func (c *Config) defaults() {
	if c.Address == 0 {
		c.Address = Address
	}
	if c.PollInterval <= 0 {
		c.PollInterval = 15 * time.Millisecond
	}
	if c.CollectTimeout <= 0 {
		c.CollectTimeout = 250 * time.Millisecond
	}
	if c.TriggerHint <= 0 {
		c.TriggerHint = 80 * time.Millisecond
	}
	if c.Sleep == nil {
		c.Sleep = time.Sleep
	}
}

// Device wraps an I2C connection to an AHT20.
type Device struct {
	bus drivers.I2C
	cfg Config
	buf [7]byte

	configured bool
}

// New does not touch the bus.
func New(bus drivers.I2C) Device {
	d := Device{bus: bus}
	d.cfg.defaults()
	return d
}

// Configure applies cfg and calibrates the sensor unless it already
// reports calibrated.
func (d *Device) Configure(cfg Config) error {
	cfg.defaults()
	d.cfg = cfg
	d.configured = true

	st, err := d.Status()
	if err != nil {
		return err
	}
	if st&statusCalibrated != 0 {
		return nil
	}
	if err := d.bus.Tx(d.cfg.Address, []byte{cmdInitialize, 0x08, 0x00}, nil); err != nil {
		return err
	}
	d.cfg.Sleep(10 * time.Millisecond)
	return nil
}

// Reset issues a soft reset. Give the device ~20ms afterwards.
func (d *Device) Reset() error {
	return d.bus.Tx(d.cfg.Address, []byte{cmdSoftReset}, nil)
}

func (d *Device) Status() (byte, error) {
	data := d.buf[:1]
	if err := d.bus.Tx(d.cfg.Address, []byte{cmdStatus}, data); err != nil {
		return 0, err
	}
	return data[0], nil
}

// Trigger starts a conversion without waiting for it.
func (d *Device) Trigger() error {
	if !d.configured {
		if err := d.Configure(d.cfg); err != nil {
			return err
		}
	}
	return d.bus.Tx(d.cfg.Address, []byte{cmdTrigger, 0x33, 0x00}, nil)
}

func (d *Device) TriggerHint() time.Duration { return d.cfg.TriggerHint }

// Collect reads one conversion into s. It returns errcode.Busy while the
// sensor is still converting or uncalibrated.
func (d *Device) Collect(s *Sample) error {
	data := d.buf[:]
	if err := d.bus.Tx(d.cfg.Address, nil, data); err != nil {
		return err
	}
	if data[0]&statusCalibrated == 0 || data[0]&statusBusy != 0 {
		return errcode.Busy
	}
	s.RawHumidity = uint32(data[1])<<12 | uint32(data[2])<<4 | uint32(data[3])>>4
	s.RawTemp = uint32(data[3]&0x0F)<<16 | uint32(data[4])<<8 | uint32(data[5])
	return nil
}

// Read triggers a conversion and polls Collect until it succeeds or
// CollectTimeout elapses.
func (d *Device) Read(s *Sample) error {
	if err := d.Trigger(); err != nil {
		return err
	}
	d.cfg.Sleep(d.cfg.TriggerHint)
	for waited := time.Duration(0); ; waited += d.cfg.PollInterval {
		err := d.Collect(s)
		if err != errcode.Busy {
			return err
		}
		if waited >= d.cfg.CollectTimeout {
			return &errcode.E{C: errcode.Timeout, Op: "aht20.read"}
		}
		d.cfg.Sleep(d.cfg.PollInterval)
	}
}

// Sample holds one raw 20-bit reading pair.
type Sample struct {
	RawHumidity uint32
	RawTemp     uint32
}

// DeciCelsius is the temperature in tenths of a degree.
func (s Sample) DeciCelsius() int32 {
	return int32(int64(s.RawTemp)*2000/fullScale) - 500
}

// CentiRelHumidity is relative humidity in hundredths of a percent.
func (s Sample) CentiRelHumidity() int32 {
	return int32(int64(s.RawHumidity) * 10000 / fullScale)
}
