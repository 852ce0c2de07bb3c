// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package tmp116

import (
	"fmt"

	"periph.io/x/conn/v3/i2c"
)

// DebugF the debug function type.
type DebugF func(string, ...interface{})

// Transport moves 16-bit register values to and from the device. The TMP116
// addresses every register as one 8-bit pointer byte followed by a 16-bit
// big-endian word.
//
// A failed bus transaction is reported as a non-nil error; implementations
// must not panic across this boundary. By convention WriteRegister returns
// the value it wrote when the transaction succeeds.
//
// The driver supplies an I2C implementation via NewI2C. Custom transports
// (SMBus wrappers, simulators, test fakes) can be injected with New.
type Transport interface {
	ReadRegister(addr uint16, reg byte) (uint16, error)
	WriteRegister(addr uint16, reg byte, value uint16) (uint16, error)
}

// I2CTransport implements Transport on top of a plain i2c.Bus. The device
// address is taken per call rather than bound at construction so that one
// bus handle can serve all four strap addresses.
type I2CTransport struct {
	bus   i2c.Bus
	debug DebugF
}

func noop(string, ...interface{}) {}

// NewI2CTransport wraps an i2c.Bus in the register Transport used by this
// driver.
func NewI2CTransport(b i2c.Bus) *I2CTransport {
	return &I2CTransport{bus: b, debug: noop}
}

// EnableDebug sets the debugging output using the local print function.
func (t *I2CTransport) EnableDebug(f DebugF) {
	t.debug = f
}

func (t *I2CTransport) ReadRegister(addr uint16, reg byte) (uint16, error) {
	var r [2]byte
	if err := t.bus.Tx(addr, []byte{reg}, r[:]); err != nil {
		return 0, fmt.Errorf("tmp116: read register %#02x: %w", reg, err)
	}
	value := uint16(r[0])<<8 | uint16(r[1])
	t.debug("read register %#02x value %#04x", reg, value)
	return value, nil
}

func (t *I2CTransport) WriteRegister(addr uint16, reg byte, value uint16) (uint16, error) {
	t.debug("write register %#02x value %#04x", reg, value)
	w := []byte{reg, byte(value >> 8), byte(value)}
	if err := t.bus.Tx(addr, w, nil); err != nil {
		return 0, fmt.Errorf("tmp116: write register %#02x: %w", reg, err)
	}
	return value, nil
}

func (t *I2CTransport) String() string {
	return t.bus.String()
}

var _ Transport = &I2CTransport{}
