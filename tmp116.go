// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package tmp116

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/physic"
)

const (
	// I2C addresses of the device, selected by the ADD0 strap pin.
	AddrGnd uint16 = 0x48
	AddrVcc uint16 = 0x49
	AddrSda uint16 = 0x4A
	AddrScl uint16 = 0x4B

	// ExpectedDeviceID is the value the device ID register reads on a
	// genuine TMP116. The driver does not check it; callers that want to
	// probe a bus for the part should compare DeviceID() against this.
	ExpectedDeviceID uint16 = 0x1116

	// Addresses of registers to read/write.
	_REGISTER_TEMPERATURE   byte = 0x00
	_REGISTER_CONFIGURATION byte = 0x01
	_REGISTER_HIGH_LIMIT    byte = 0x02
	_REGISTER_LOW_LIMIT     byte = 0x03
	_REGISTER_EEPROM_UNLOCK byte = 0x04
	_REGISTER_EEPROM1       byte = 0x05
	_REGISTER_EEPROM2       byte = 0x06
	_REGISTER_EEPROM3       byte = 0x07
	_REGISTER_EEPROM4       byte = 0x08
	_REGISTER_DEVICE_ID     byte = 0x0F

	// One count of the temperature register is 1/128 degrees Celsius.
	lsbResolution = 0.0078125

	_DEGREES_RESOLUTION physic.Temperature = 7_812_500 * physic.NanoKelvin

	// The minimum temperature the device is specified to measure.
	MinimumTemperature physic.Temperature = physic.ZeroCelsius - 55*physic.Kelvin
	// The maximum temperature the device is specified to measure.
	MaximumTemperature physic.Temperature = physic.ZeroCelsius + 125*physic.Kelvin
)

var errEmptyUpdate = errors.New("tmp116: configuration update specifies no fields")

// Dev represents a TMP116 sensor.
//
// A Dev holds no sensor state between calls; every operation reads or
// writes the device registers directly. The device address may be
// re-targeted with SetAddr, but a Dev must not be shared between
// goroutines without external serialization: the address is plain mutable
// state.
type Dev struct {
	t    Transport
	addr uint16

	mu       sync.Mutex
	shutdown chan bool
}

// New returns a TMP116 using the supplied register transport at the given
// device address. No bus transaction is issued; the first register access
// happens on the first operation.
func New(t Transport, addr uint16) (*Dev, error) {
	if addr < AddrGnd || addr > AddrScl {
		return nil, fmt.Errorf("tmp116: invalid device address %#02x", addr)
	}
	return &Dev{t: t, addr: addr}, nil
}

// NewI2C returns a new TMP116 sensor using the specified bus and address.
// The address must be one of AddrGnd, AddrVcc, AddrSda or AddrScl.
func NewI2C(b i2c.Bus, addr uint16) (*Dev, error) {
	return New(NewI2CTransport(b), addr)
}

// Addr returns the device address the Dev currently targets.
func (dev *Dev) Addr() uint16 {
	return dev.addr
}

// SetAddr re-targets the Dev to another strap address on the same bus.
// Not safe for concurrent use with any other method.
func (dev *Dev) SetAddr(addr uint16) error {
	if addr < AddrGnd || addr > AddrScl {
		return fmt.Errorf("tmp116: invalid device address %#02x", addr)
	}
	dev.addr = addr
	return nil
}

// DecodeTemperature converts a raw temperature register value to degrees
// Celsius. The register is a 16-bit two's-complement count of 1/128°C.
func DecodeTemperature(reg uint16) float64 {
	return float64(int16(reg)) * lsbResolution
}

// EncodeTemperature converts degrees Celsius to the raw register value,
// truncating toward zero to the nearest count. Values outside the
// representable range of -256°C to 255.9921875°C wrap; staying in range is
// the caller's responsibility.
func EncodeTemperature(celsius float64) uint16 {
	return uint16(int16(int64(celsius / lsbResolution)))
}

// Temperature returns the current temperature in degrees Celsius.
//
// If the bus transaction fails the sentinel -256.0 is returned instead of
// an error, matching the lowest value the temperature register can encode.
// This keeps the call total but is ambiguous with a genuine reading of
// register 0x8000; use Sense to get an explicit error.
func (dev *Dev) Temperature() float64 {
	reg, err := dev.t.ReadRegister(dev.addr, _REGISTER_TEMPERATURE)
	if err != nil {
		return -256.0
	}
	return DecodeTemperature(reg)
}

// DeviceID reads the device ID register. The driver does not validate the
// value; see ExpectedDeviceID.
func (dev *Dev) DeviceID() (uint16, error) {
	return dev.t.ReadRegister(dev.addr, _REGISTER_DEVICE_ID)
}

// ConfigurationRegister returns the raw value of the configuration
// register. Refer to the datasheet for interpretation, or use
// Configuration() for the decoded form.
func (dev *Dev) ConfigurationRegister() (uint16, error) {
	return dev.t.ReadRegister(dev.addr, _REGISTER_CONFIGURATION)
}

// Configuration reads and decodes the device configuration, including the
// read-only status flags.
func (dev *Dev) Configuration() (Configuration, error) {
	reg, err := dev.ConfigurationRegister()
	if err != nil {
		return Configuration{}, err
	}
	return DecodeConfiguration(reg), nil
}

// IsDataReady reports whether a conversion result is waiting in the
// temperature register. The flag clears when the temperature or the
// configuration register is read.
func (dev *Dev) IsDataReady() (bool, error) {
	c, err := dev.Configuration()
	if err != nil {
		return false, err
	}
	return c.DataReady, nil
}

// SetConfiguration overwrites the whole configuration register with the
// encoding of c and returns the written value. One write, no read.
func (dev *Dev) SetConfiguration(c Configuration) (uint16, error) {
	return dev.t.WriteRegister(dev.addr, _REGISTER_CONFIGURATION, EncodeConfiguration(c))
}

// UpdateConfiguration applies a partial configuration change with the
// fewest possible bus transactions and returns the resulting register
// value.
//
// An update with no fields set is rejected. An update with all six fields
// set skips reading the device and overwrites the register outright. Any
// other update reads the current register, merges the specified fields
// over it, and writes back only if the merged value differs from what was
// read; when nothing changes, the value read is returned and no write is
// issued.
//
// Note the two paths return differently sourced values: the full
// overwrite echoes the written value with a zero status nibble, while the
// merge path carries the status flags it read.
func (dev *Dev) UpdateConfiguration(u ConfigurationUpdate) (uint16, error) {
	if u.empty() {
		return 0, errEmptyUpdate
	}
	if u.complete() {
		return dev.SetConfiguration(Configuration{
			Mode:        *u.Mode,
			CycleTime:   *u.CycleTime,
			Averages:    *u.Averages,
			AlertMode:   *u.AlertMode,
			Polarity:    *u.Polarity,
			AlertSelect: *u.AlertSelect,
		})
	}
	current, err := dev.ConfigurationRegister()
	if err != nil {
		return 0, err
	}
	c := DecodeConfiguration(current)
	u.apply(&c)
	merged := EncodeConfiguration(c)
	if merged == current {
		return current, nil
	}
	return dev.t.WriteRegister(dev.addr, _REGISTER_CONFIGURATION, merged)
}

// SetHighLimit sets the high alert threshold in degrees Celsius and
// returns the written register value.
func (dev *Dev) SetHighLimit(celsius float64) (uint16, error) {
	return dev.t.WriteRegister(dev.addr, _REGISTER_HIGH_LIMIT, EncodeTemperature(celsius))
}

// SetLowLimit sets the low alert threshold in degrees Celsius and returns
// the written register value.
func (dev *Dev) SetLowLimit(celsius float64) (uint16, error) {
	return dev.t.WriteRegister(dev.addr, _REGISTER_LOW_LIMIT, EncodeTemperature(celsius))
}

// HighLimit reads back the high alert threshold in degrees Celsius.
func (dev *Dev) HighLimit() (float64, error) {
	reg, err := dev.t.ReadRegister(dev.addr, _REGISTER_HIGH_LIMIT)
	if err != nil {
		return 0, err
	}
	return DecodeTemperature(reg), nil
}

// LowLimit reads back the low alert threshold in degrees Celsius.
func (dev *Dev) LowLimit() (float64, error) {
	reg, err := dev.t.ReadRegister(dev.addr, _REGISTER_LOW_LIMIT)
	if err != nil {
		return 0, err
	}
	return DecodeTemperature(reg), nil
}

// Sense reads the temperature from the device and writes the value to the
// specified env variable. Implements physic.SenseEnv. Unlike Temperature,
// a failed transaction is reported as an error.
func (dev *Dev) Sense(env *physic.Env) error {
	dev.mu.Lock()
	defer dev.mu.Unlock()
	reg, err := dev.t.ReadRegister(dev.addr, _REGISTER_TEMPERATURE)
	if err != nil {
		return err
	}
	env.Temperature = physic.ZeroCelsius + physic.Temperature(DecodeTemperature(reg)*float64(physic.Celsius))
	return nil
}

// SenseContinuous continuously reads from the device and writes the value
// to the returned channel. Implements physic.SenseEnv. To terminate the
// continuous read, call Halt().
func (dev *Dev) SenseContinuous(interval time.Duration) (<-chan physic.Env, error) {
	channelSize := 16
	if interval < 16*time.Millisecond {
		return nil, errors.New("tmp116: invalid duration. minimum 16ms")
	}
	dev.mu.Lock()
	if dev.shutdown == nil {
		dev.shutdown = make(chan bool)
	}
	shutdown := dev.shutdown
	dev.mu.Unlock()

	channel := make(chan physic.Env, channelSize)
	go func(channel chan physic.Env, shutdown <-chan bool) {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-shutdown:
				close(channel)
				return
			case <-ticker.C:
				e := physic.Env{}
				err := dev.Sense(&e)
				if err == nil && len(channel) < channelSize {
					channel <- e
				}
			}
		}
	}(channel, shutdown)

	return channel, nil
}

// Precision returns the sensor's precision, or the minimum value between
// steps the device can make. The resolution is 0.0078125 degrees Celsius;
// note that the accuracy of the device is +/- 0.2 degrees Celsius.
func (dev *Dev) Precision(env *physic.Env) {
	env.Temperature = _DEGREES_RESOLUTION
	env.Pressure = 0
	env.Humidity = 0
}

// Halt aborts a SenseContinuous operation if one is in progress, then puts
// the converter into shutdown mode. Implements conn.Resource. The
// configuration register is only written if the device is not already shut
// down.
func (dev *Dev) Halt() error {
	dev.mu.Lock()
	if dev.shutdown != nil {
		close(dev.shutdown)
		dev.shutdown = nil
	}
	dev.mu.Unlock()

	mode := ModeShutdown
	_, err := dev.UpdateConfiguration(ConfigurationUpdate{Mode: &mode})
	return err
}

func (dev *Dev) String() string {
	if s, ok := dev.t.(fmt.Stringer); ok {
		return fmt.Sprintf("tmp116: %s", s.String())
	}
	return fmt.Sprintf("tmp116: %#02x", dev.addr)
}

var _ conn.Resource = &Dev{}
var _ physic.SenseEnv = &Dev{}
