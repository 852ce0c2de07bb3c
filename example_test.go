// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package tmp116_test

import (
	"fmt"
	"log"

	"github.com/GermanBionicSystems/tmp116"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/host/v3"
)

func Example() {
	// Make sure periph is initialized.
	if _, err := host.Init(); err != nil {
		log.Fatal(err)
	}
	// Open default I²C bus.
	bus, err := i2creg.Open("")
	if err != nil {
		log.Fatalf("failed to open I²C: %v", err)
	}
	defer bus.Close()

	sensor, err := tmp116.NewI2C(bus, tmp116.AddrGnd)
	if err != nil {
		log.Fatal(err)
	}

	// Take a reading.
	env := physic.Env{}
	if err := sensor.Sense(&env); err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Temperature: %s\n", env.Temperature)
}

func ExampleDev_UpdateConfiguration() {
	if _, err := host.Init(); err != nil {
		log.Fatal(err)
	}
	bus, err := i2creg.Open("")
	if err != nil {
		log.Fatalf("failed to open I²C: %v", err)
	}
	defer bus.Close()

	sensor, err := tmp116.NewI2C(bus, tmp116.AddrGnd)
	if err != nil {
		log.Fatal(err)
	}

	// Slow the conversion cycle down and average harder, leaving every
	// other setting as the device has it. No write is issued if the device
	// already runs with these values.
	cycle := tmp116.Cycle4000ms
	avg := tmp116.Average64
	reg, err := sensor.UpdateConfiguration(tmp116.ConfigurationUpdate{
		CycleTime: &cycle,
		Averages:  &avg,
	})
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Configuration register: %#04x\n", reg)
}
