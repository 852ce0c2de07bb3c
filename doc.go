// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package tmp116 provides a driver for the Texas Instruments TMP116 I2C
// temperature sensor. The TMP117 shares the same register map and works
// with this driver as well.
//
// Range: -55°C - 125°C
//
// Accuracy: +/- 0.2°C
//
// Resolution: 0.0078125°C (1/128°C per count)
//
// The tmp116.Dev type implements the physic.SenseEnv interface for use
// alongside other periph environmental sensors. The raw register surface
// (Temperature, Configuration, UpdateConfiguration, alert limits, EEPROM)
// mirrors the device datasheet and issues at most one read and one write
// per call.
//
// Note that Temperature() reports a failed bus transaction as -256.0, the
// lowest value the temperature register can encode, rather than as an
// error. Use Sense() when you need to tell a failed read apart from a
// reading of -256°C.
//
// For detailed information, refer to the [datasheet].
//
// [datasheet]: https://www.ti.com/lit/ds/symlink/tmp116.pdf
package tmp116
