// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package tmp116

import (
	"math"
	"testing"
)

func TestDecodeConfiguration(t *testing.T) {
	var tests = []struct {
		reg      uint16
		expected Configuration
	}{
		{0x0000, Configuration{
			Mode: ModeContinuous, CycleTime: Cycle15ms5, Averages: Average1,
			AlertMode: AlertModeAlert, Polarity: PolarityActiveLow, AlertSelect: SelectAlertFlags,
		}},
		{0xFFFF, Configuration{
			HighAlert: true, LowAlert: true, DataReady: true, EEPROMBusy: true,
			Mode: ModeOneShot, CycleTime: Cycle16000ms, Averages: Average64,
			AlertMode: AlertModeTherm, Polarity: PolarityActiveHigh, AlertSelect: SelectDataReady,
		}},
		{0xAAAA, Configuration{
			HighAlert: true, DataReady: true,
			Mode: ModeContinuous, CycleTime: Cycle4000ms, Averages: Average8,
			AlertMode: AlertModeAlert, Polarity: PolarityActiveHigh, AlertSelect: SelectAlertFlags,
		}},
		{0x5555, Configuration{
			LowAlert: true, EEPROMBusy: true,
			Mode: ModeShutdown, CycleTime: Cycle250ms, Averages: Average32,
			AlertMode: AlertModeTherm, Polarity: PolarityActiveLow, AlertSelect: SelectDataReady,
		}},
		// Device default configuration at power-up.
		{0x0220, Configuration{
			Mode: ModeContinuous, CycleTime: Cycle1000ms, Averages: Average8,
			AlertMode: AlertModeAlert, Polarity: PolarityActiveLow, AlertSelect: SelectAlertFlags,
		}},
	}
	for _, test := range tests {
		c := DecodeConfiguration(test.reg)
		if c != test.expected {
			t.Errorf("DecodeConfiguration(%#04x)=%+v expected %+v", test.reg, c, test.expected)
		}
	}
}

// The device accepts both 0b00 and 0b10 in the conversion mode field as
// continuous mode. Decoding must map the alternate pattern to the single
// ModeContinuous constant.
func TestDecodeConfigurationCanonicalizesContinuousMode(t *testing.T) {
	alt := DecodeConfiguration(0x0800)
	if alt.Mode != ModeContinuous {
		t.Errorf("DecodeConfiguration(0x0800).Mode=%#04x expected ModeContinuous", alt.Mode)
	}
	if canonical := DecodeConfiguration(0x0000); alt.Mode != canonical.Mode {
		t.Errorf("alternate continuous pattern decoded to %#04x, canonical to %#04x", alt.Mode, canonical.Mode)
	}
}

func TestEncodeConfiguration(t *testing.T) {
	// Round trips through the codec. The reserved bits 1-0 are always
	// dropped and the alternate continuous-mode pattern collapses to zero,
	// so the result is not always the input.
	var tests = []struct {
		reg      uint16
		expected uint16
	}{
		{0x0000, 0x0000},
		{0xFFFF, 0xFFFC},
		{0xAAAA, 0xA2A8},
		{0x5555, 0x5554},
		{0x0220, 0x0220},
	}
	for _, test := range tests {
		if res := EncodeConfiguration(DecodeConfiguration(test.reg)); res != test.expected {
			t.Errorf("EncodeConfiguration(DecodeConfiguration(%#04x))=%#04x expected %#04x", test.reg, res, test.expected)
		}
	}

	// A value built from explicit fields carries no status flags, so the
	// top nibble of the encoding is always zero.
	c := Configuration{
		Mode:        ModeOneShot,
		CycleTime:   Cycle16000ms,
		Averages:    Average64,
		AlertMode:   AlertModeTherm,
		Polarity:    PolarityActiveHigh,
		AlertSelect: SelectDataReady,
	}
	if res := EncodeConfiguration(c); res != 0x0FFC {
		t.Errorf("EncodeConfiguration(%+v)=%#04x expected 0x0ffc", c, res)
	}
}

// Every 16-bit pattern must decode without loss of the writable fields:
// encoding the decoded value and decoding again has to be stable.
func TestConfigurationCodecTotality(t *testing.T) {
	for reg := 0; reg <= 0xFFFF; reg++ {
		c := DecodeConfiguration(uint16(reg))
		enc := EncodeConfiguration(c)
		if again := DecodeConfiguration(enc); again != c {
			t.Fatalf("codec unstable for %#04x: first %+v, second %+v", reg, c, again)
		}
	}
}

func TestDecodeTemperature(t *testing.T) {
	var tests = []struct {
		reg      uint16
		expected float64
	}{
		{0x0000, 0.0},
		{0x0001, 0.0078125},
		{0x0C80, 25.0},
		{0x7FFF, 255.9921875},
		{0x8000, -256.0},
		{0xFB00, -10.0},
	}
	for _, test := range tests {
		if res := DecodeTemperature(test.reg); res != test.expected {
			t.Errorf("DecodeTemperature(%#04x)=%f expected %f", test.reg, res, test.expected)
		}
	}
}

func TestEncodeTemperature(t *testing.T) {
	var tests = []struct {
		celsius  float64
		expected uint16
	}{
		{0.0, 0x0000},
		{0.0078125, 0x0001},
		{25.0, 0x0C80},
		{255.9921875, 0x7FFF},
		{-256.0, 0x8000},
		{-10.0, 0xFB00},
		// Truncation toward zero, not rounding.
		{25.004, 0x0C80},
		{-0.009, 0xFFFF},
	}
	for _, test := range tests {
		if res := EncodeTemperature(test.celsius); res != test.expected {
			t.Errorf("EncodeTemperature(%f)=%#04x expected %#04x", test.celsius, res, test.expected)
		}
	}
}

// Decoding any register and encoding the result must reproduce the
// register exactly, and encoding an arbitrary in-range temperature must
// land within one count of it.
func TestTemperatureRoundTrip(t *testing.T) {
	for reg := 0; reg <= 0xFFFF; reg += 7 {
		if res := EncodeTemperature(DecodeTemperature(uint16(reg))); res != uint16(reg) {
			t.Fatalf("EncodeTemperature(DecodeTemperature(%#04x))=%#04x", reg, res)
		}
	}
	for _, celsius := range []float64{-255.99, -40.0, -0.004, 0.004, 21.37, 125.0, 255.99} {
		if diff := math.Abs(DecodeTemperature(EncodeTemperature(celsius)) - celsius); diff > 0.0078125 {
			t.Errorf("round trip of %f off by %f, more than one count", celsius, diff)
		}
	}
}
