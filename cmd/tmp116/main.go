// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// tmp116 reads a TMP116 temperature sensor and streams readings to the
// terminal, optionally as a colored gradient bar.
package main

import (
	"errors"
	"flag"
	"fmt"
	"image/color"
	"io"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/GermanBionicSystems/tmp116"
	"github.com/maruel/ansi256"
	"github.com/mattn/go-colorable"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/host/v3"
)

var (
	busName  = flag.String("bus", "", "I²C bus to use, empty for the first available")
	addrName = flag.String("addr", "gnd", "ADD0 strap level: gnd, vcc, sda or scl")
	interval = flag.Duration("interval", time.Second, "time between readings")
	noColor  = flag.Bool("nocolor", false, "plain text output, no ANSI colors")
	minTemp  = flag.Float64("min", 0, "temperature mapped to the cold end of the gradient, °C")
	maxTemp  = flag.Float64("max", 40, "temperature mapped to the hot end of the gradient, °C")
)

var addrs = map[string]uint16{
	"gnd": tmp116.AddrGnd,
	"vcc": tmp116.AddrVcc,
	"sda": tmp116.AddrSda,
	"scl": tmp116.AddrScl,
}

// gradient maps a temperature to a color between blue and red.
func gradient(celsius float64) color.NRGBA {
	ratio := (celsius - *minTemp) / (*maxTemp - *minTemp)
	if ratio < 0 {
		ratio = 0
	}
	if ratio > 1 {
		ratio = 1
	}
	return color.NRGBA{R: byte(255 * ratio), B: byte(255 * (1 - ratio)), A: 255}
}

func printReading(w io.Writer, celsius float64) {
	if *noColor {
		fmt.Fprintf(w, "%8.4f°C\n", celsius)
		return
	}
	block := ansi256.Default.Block(gradient(celsius))
	fmt.Fprintf(w, "%s %8.4f°C\033[0m\n", strings.Repeat(block, 4), celsius)
}

func mainImpl() error {
	flag.Parse()
	if flag.NArg() != 0 {
		return errors.New("unexpected arguments")
	}
	addr, ok := addrs[*addrName]
	if !ok {
		return fmt.Errorf("unknown -addr %q", *addrName)
	}

	if _, err := host.Init(); err != nil {
		return err
	}
	bus, err := i2creg.Open(*busName)
	if err != nil {
		return err
	}
	defer bus.Close()

	dev, err := tmp116.NewI2C(bus, addr)
	if err != nil {
		return err
	}

	id, err := dev.DeviceID()
	if err != nil {
		return err
	}
	fmt.Printf("%s device ID %#04x\n", dev, id)
	c, err := dev.Configuration()
	if err != nil {
		return err
	}
	fmt.Printf("configuration: %+v\n", c)

	ch, err := dev.SenseContinuous(*interval)
	if err != nil {
		return err
	}
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt)

	w := colorable.NewColorableStdout()
	for {
		select {
		case env := <-ch:
			printReading(w, env.Temperature.Celsius())
		case <-stop:
			return dev.Halt()
		}
	}
}

func main() {
	if err := mainImpl(); err != nil {
		fmt.Fprintf(os.Stderr, "tmp116: %s.\n", err)
		os.Exit(1)
	}
}
