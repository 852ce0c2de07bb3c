// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package tmp116

import (
	"errors"
	"fmt"
	"time"
)

const (
	// Bits of the EEPROM unlock register.
	eepromUnlockBit uint16 = 1 << 15
	eepromBusyBit   uint16 = 1 << 14

	// Programming one EEPROM word takes 7ms per the datasheet.
	eepromWriteTime = 7 * time.Millisecond
	eepromBusyPolls = 10
)

var errEEPROMBusy = errors.New("tmp116: eeprom still busy after programming wait")

func eepromSlotRegister(slot int) (byte, error) {
	if slot < 1 || slot > 4 {
		return 0, fmt.Errorf("tmp116: invalid eeprom slot %d", slot)
	}
	return _REGISTER_EEPROM1 + byte(slot-1), nil
}

// ReadEEPROM returns the 16-bit word stored in one of the four
// general-purpose EEPROM slots. Slots are numbered 1 through 4.
func (dev *Dev) ReadEEPROM(slot int) (uint16, error) {
	reg, err := eepromSlotRegister(slot)
	if err != nil {
		return 0, err
	}
	return dev.t.ReadRegister(dev.addr, reg)
}

// WriteEEPROM programs a 16-bit word into one of the four general-purpose
// EEPROM slots. Slots are numbered 1 through 4.
//
// The sequence follows section 7.5.3 of the datasheet: unlock, write the
// slot, wait out the programming time while the busy flag is set, then
// lock again. The busy wait is bounded; a device that never reports idle
// results in an error. Programming interrupts any conversion in progress,
// so expect a stale reading immediately after.
func (dev *Dev) WriteEEPROM(slot int, value uint16) error {
	reg, err := eepromSlotRegister(slot)
	if err != nil {
		return err
	}
	if _, err := dev.t.WriteRegister(dev.addr, _REGISTER_EEPROM_UNLOCK, eepromUnlockBit); err != nil {
		return err
	}
	if _, err := dev.t.WriteRegister(dev.addr, reg, value); err != nil {
		return err
	}
	idle := false
	for i := 0; i < eepromBusyPolls; i++ {
		time.Sleep(eepromWriteTime)
		ul, err := dev.t.ReadRegister(dev.addr, _REGISTER_EEPROM_UNLOCK)
		if err != nil {
			return err
		}
		if ul&eepromBusyBit == 0 {
			idle = true
			break
		}
	}
	if !idle {
		return errEEPROMBusy
	}
	_, err = dev.t.WriteRegister(dev.addr, _REGISTER_EEPROM_UNLOCK, 0)
	return err
}
