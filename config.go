// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package tmp116

// ConversionMode selects how the device runs temperature conversions.
type ConversionMode uint16

// ConversionCycle selects the period of one conversion cycle in continuous
// mode. The effective period stretches when Averages calls for more samples
// than fit in the nominal cycle; refer to table 7-7 of the datasheet.
type ConversionCycle uint16

// Averages selects how many samples are averaged into one result.
type Averages uint16

// AlertMode selects between therm mode and alert mode for the limit
// comparison logic. Refer to section 7.4.4 of the datasheet.
type AlertMode uint16

// AlertPolarity selects the active level of the ALERT pin.
type AlertPolarity uint16

// AlertSelect chooses whether the ALERT pin reflects the alert flags or the
// data-ready flag.
type AlertSelect uint16

// Each constant carries its positioned bit pattern in the configuration
// register, so encoding a Configuration is a plain OR. Every possible bit
// pattern of a field's width maps to one of its constants, which is what
// keeps DecodeConfiguration total over all 16-bit inputs.
const (
	ModeContinuous ConversionMode = 0x0000
	ModeShutdown   ConversionMode = 0x0400
	ModeOneShot    ConversionMode = 0x0C00

	Cycle15ms5   ConversionCycle = 0x0000 // 15.5ms, stretched when Averages > Average1
	Cycle125ms   ConversionCycle = 0x0080 // stretched when Averages > Average8
	Cycle250ms   ConversionCycle = 0x0100 // stretched when Averages > Average8
	Cycle500ms   ConversionCycle = 0x0180 // stretched when Averages > Average32
	Cycle1000ms  ConversionCycle = 0x0200
	Cycle4000ms  ConversionCycle = 0x0280
	Cycle8000ms  ConversionCycle = 0x0300
	Cycle16000ms ConversionCycle = 0x0380

	Average1  Averages = 0x0000
	Average8  Averages = 0x0020
	Average32 Averages = 0x0040
	Average64 Averages = 0x0060

	AlertModeAlert AlertMode = 0x0000
	AlertModeTherm AlertMode = 0x0010

	PolarityActiveLow  AlertPolarity = 0x0000
	PolarityActiveHigh AlertPolarity = 0x0008

	SelectAlertFlags AlertSelect = 0x0000
	SelectDataReady  AlertSelect = 0x0004
)

const (
	statusHighAlert  uint16 = 1 << 15
	statusLowAlert   uint16 = 1 << 14
	statusDataReady  uint16 = 1 << 13
	statusEEPROMBusy uint16 = 1 << 12

	// The device accepts 0b10 in bits 11-10 as a second encoding of
	// continuous mode. Decoding normalizes it to ModeContinuous (0b00),
	// so decode followed by encode is not the identity for registers
	// carrying that pattern.
	maskConversionMode  uint16 = 0x0C00
	altContinuousMode   uint16 = 0x0800
	maskConversionCycle uint16 = 0x0380
	maskAverages        uint16 = 0x0060
	maskAlertMode       uint16 = 0x0010
	maskAlertPolarity   uint16 = 0x0008
	maskAlertSelect     uint16 = 0x0004
)

// Configuration is the decoded form of the device configuration register.
//
// The four flag fields are read-only device status. They are populated when
// the value comes from DecodeConfiguration on a live register read and are
// false on a value built from explicit fields, in which case
// EncodeConfiguration leaves the corresponding bits clear. Writing the
// status bits has no effect on the device either way.
type Configuration struct {
	HighAlert  bool
	LowAlert   bool
	DataReady  bool
	EEPROMBusy bool

	Mode        ConversionMode
	CycleTime   ConversionCycle
	Averages    Averages
	AlertMode   AlertMode
	Polarity    AlertPolarity
	AlertSelect AlertSelect
}

// DecodeConfiguration unpacks a raw configuration register value. It is
// total: every 16-bit input yields a valid Configuration because the field
// constants tile their bit widths exactly. Bits 1-0 are reserved and
// ignored.
func DecodeConfiguration(reg uint16) Configuration {
	c := Configuration{
		HighAlert:  reg&statusHighAlert != 0,
		LowAlert:   reg&statusLowAlert != 0,
		DataReady:  reg&statusDataReady != 0,
		EEPROMBusy: reg&statusEEPROMBusy != 0,
	}
	if reg&maskConversionMode == altContinuousMode {
		reg &^= maskConversionMode
	}
	c.Mode = ConversionMode(reg & maskConversionMode)
	c.CycleTime = ConversionCycle(reg & maskConversionCycle)
	c.Averages = Averages(reg & maskAverages)
	c.AlertMode = AlertMode(reg & maskAlertMode)
	c.Polarity = AlertPolarity(reg & maskAlertPolarity)
	c.AlertSelect = AlertSelect(reg & maskAlertSelect)
	return c
}

// EncodeConfiguration packs a Configuration into its register value. The
// reserved bits 1-0 are always zero. Because decoding canonicalizes the
// alternate continuous-mode pattern, decode followed by encode does not
// reproduce every raw register byte-for-byte; that is deliberate.
func EncodeConfiguration(c Configuration) uint16 {
	reg := uint16(c.Mode) | uint16(c.CycleTime) | uint16(c.Averages) |
		uint16(c.AlertMode) | uint16(c.Polarity) | uint16(c.AlertSelect)
	if c.HighAlert {
		reg |= statusHighAlert
	}
	if c.LowAlert {
		reg |= statusLowAlert
	}
	if c.DataReady {
		reg |= statusDataReady
	}
	if c.EEPROMBusy {
		reg |= statusEEPROMBusy
	}
	return reg
}

// ConfigurationUpdate describes a partial configuration change. A nil field
// keeps the device's current setting; a non-nil field overwrites it. Used
// by Dev.UpdateConfiguration.
type ConfigurationUpdate struct {
	Mode        *ConversionMode
	CycleTime   *ConversionCycle
	Averages    *Averages
	AlertMode   *AlertMode
	Polarity    *AlertPolarity
	AlertSelect *AlertSelect
}

func (u *ConfigurationUpdate) empty() bool {
	return u.Mode == nil && u.CycleTime == nil && u.Averages == nil &&
		u.AlertMode == nil && u.Polarity == nil && u.AlertSelect == nil
}

func (u *ConfigurationUpdate) complete() bool {
	return u.Mode != nil && u.CycleTime != nil && u.Averages != nil &&
		u.AlertMode != nil && u.Polarity != nil && u.AlertSelect != nil
}

// apply overwrites the fields of c that u specifies.
func (u *ConfigurationUpdate) apply(c *Configuration) {
	if u.Mode != nil {
		c.Mode = *u.Mode
	}
	if u.CycleTime != nil {
		c.CycleTime = *u.CycleTime
	}
	if u.Averages != nil {
		c.Averages = *u.Averages
	}
	if u.AlertMode != nil {
		c.AlertMode = *u.AlertMode
	}
	if u.Polarity != nil {
		c.Polarity = *u.Polarity
	}
	if u.AlertSelect != nil {
		c.AlertSelect = *u.AlertSelect
	}
}
